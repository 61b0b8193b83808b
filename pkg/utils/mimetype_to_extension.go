package utils

import "strings"

// mimeTypeToExtension maps the MIME types this service accepts to their
// typical file extensions.
var mimeTypeToExtension = map[string]string{
	"image/bmp":       ".bmp",
	"image/gif":       ".gif",
	"image/heic":      ".heic",
	"image/heif":      ".heif",
	"image/jpeg":      ".jpg",
	"image/png":       ".png",
	"image/svg+xml":   ".svg",
	"image/tiff":      ".tif",
	"image/webp":      ".webp",
	"video/mp4":       ".mp4",
	"video/quicktime": ".mov",
	"video/webm":      ".webm",
}

// GetExtensionFromMimeType returns a common file extension for a given MIME type.
// If no specific extension is found, it defaults to ".bin".
func GetExtensionFromMimeType(mimeType string) string {
	// Remove charset if present (e.g., "image/svg+xml; charset=utf-8")
	cleanedMimeType := strings.TrimSpace(strings.Split(mimeType, ";")[0])
	if ext, ok := mimeTypeToExtension[cleanedMimeType]; ok {
		return ext
	}

	return ".bin"
}

// IsMediaMimeType reports whether the MIME type is one the upload
// surface accepts.
func IsMediaMimeType(mimeType string) bool {
	cleaned := strings.TrimSpace(strings.Split(mimeType, ";")[0])

	return strings.HasPrefix(cleaned, "image/") || strings.HasPrefix(cleaned, "video/")
}
