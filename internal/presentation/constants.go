package presentation

const (
	// PhotosField is the repeated multipart form field carrying files.
	PhotosField = "photos"
	// LimitParam is the listing page-size query parameter.
	LimitParam = "limit"
)
