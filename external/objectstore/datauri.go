package objectstore

import (
	"encoding/base64"
	"errors"
	"strings"
)

var (
	ErrInvalidDataURI = errors.New("invalid data uri")
)

var extensions = map[string]string{
	"image/jpeg":      "jpg",
	"image/jpg":       "jpg",
	"image/png":       "png",
	"image/webp":      "webp",
	"image/heic":      "heic",
	"image/gif":       "gif",
	"audio/mpeg":      "mp3",
	"audio/mp4":       "m4a",
	"audio/aac":       "aac",
	"audio/wav":       "wav",
	"video/mp4":       "mp4",
	"video/quicktime": "mov",
	"application/pdf": "pdf",
}

// Extension returns the file extension used for a content type
func Extension(contentType string) string {
	if ext, ok := extensions[strings.ToLower(contentType)]; ok {
		return ext
	}
	return "bin"
}

// IsDataURI reports whether s looks like a base64 data uri
func IsDataURI(s string) bool {
	return strings.HasPrefix(s, "data:") && strings.Contains(s, ";base64,")
}

// DecodeDataURI splits a base64 data uri into its content type and payload
func DecodeDataURI(s string) (string, []byte, error) {
	if !IsDataURI(s) {
		return "", nil, ErrInvalidDataURI
	}

	meta, payload, _ := strings.Cut(strings.TrimPrefix(s, "data:"), ";base64,")
	contentType := meta
	if i := strings.Index(meta, ";"); i >= 0 {
		contentType = meta[:i]
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, ErrInvalidDataURI
	}
	return contentType, data, nil
}
