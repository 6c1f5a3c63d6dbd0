package files

import (
	"path"
	"strings"
)

// =============================================================================
// CONTENT TYPE TABLE
// =============================================================================

// DefaultContentType is returned for unknown or missing extensions
const DefaultContentType = "application/octet-stream"

// contentTypes maps a lowercase extension (with dot) to its MIME type
var contentTypes = map[string]string{
	// Text
	".txt":  "text/plain",
	".htm":  "text/html",
	".html": "text/html",
	".css":  "text/css",
	".js":   "text/javascript",
	".json": "application/json",
	".xml":  "application/xml",
	".csv":  "text/csv",
	".md":   "text/markdown",
	".rtf":  "application/rtf",

	// Archives
	".zip": "application/zip",
	".gz":  "application/gzip",
	".tar": "application/x-tar",
	".7z":  "application/x-7z-compressed",
	".rar": "application/vnd.rar",

	// Images
	".gif":  "image/gif",
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".bmp":  "image/bmp",
	".ico":  "image/x-icon",
	".svg":  "image/svg+xml",
	".webp": "image/webp",
	".tif":  "image/tiff",
	".tiff": "image/tiff",

	// Audio / video
	".mp3":  "audio/mpeg",
	".wav":  "audio/wav",
	".ogg":  "audio/ogg",
	".mp4":  "video/mp4",
	".mpeg": "video/mpeg",
	".webm": "video/webm",
	".avi":  "video/x-msvideo",
	".mov":  "video/quicktime",

	// Documents
	".pdf":  "application/pdf",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	".xls":  "application/vnd.ms-excel",
	".xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	".ppt":  "application/vnd.ms-powerpoint",
	".pptx": "application/vnd.openxmlformats-officedocument.presentationml.presentation",
	".odt":  "application/vnd.oasis.opendocument.text",

	// Binaries
	".exe":  "application/vnd.microsoft.portable-executable",
	".dll":  "application/vnd.microsoft.portable-executable",
	".bin":  "application/octet-stream",
	".wasm": "application/wasm",
}

// ContentTypeFor infers the MIME type of a file from its extension
func ContentTypeFor(name string) string {
	ext := strings.ToLower(path.Ext(name))
	if contentType, ok := contentTypes[ext]; ok {
		return contentType
	}
	return DefaultContentType
}

// knownExtensions returns a copy of all extensions in the table
func knownExtensions() []string {
	result := make([]string, 0, len(contentTypes))
	for ext := range contentTypes {
		result = append(result, ext)
	}
	return result
}
