package entity

// IncomingFile is one file submitted in an upload batch, already read
// off the multipart body.
type IncomingFile struct {
	Name     string
	MimeType string
	Data     []byte
}

// UploadResult is the per-file outcome of a batch upload. Exactly one
// of (Success with StorageKey) or (!Success with Error) is populated.
type UploadResult struct {
	FileName   string `json:"fileName"`
	Success    bool   `json:"success"`
	StorageKey string `json:"storageKey,omitempty"`
	URL        string `json:"url,omitempty"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Error      string `json:"error,omitempty"`
}

// BatchOutcome aggregates per-file results in submission order.
// Successful + Failed always equals len(Results).
type BatchOutcome struct {
	Results         []UploadResult
	Successful      int
	Failed          int
	DevelopmentMode bool
}
