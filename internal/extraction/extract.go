// Package extraction validates uploaded resume documents and extracts their
// text where supported.
package extraction

import (
	"regexp"
	"strings"
)

// MaxFileSize is the upload size cap (10 MiB).
const MaxFileSize = 10 << 20

// allowedTypes is the MIME allow-list for uploads: PDF, DOC, DOCX, TXT, PAGES.
var allowedTypes = map[string]bool{
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
	"text/plain":                  true,
	"application/vnd.apple.pages": true,
}

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9.-]`)

// AllowedType reports whether the given content type may be uploaded.
// Parameters like "; charset=utf-8" are ignored.
func AllowedType(contentType string) bool {
	mime, _, _ := strings.Cut(contentType, ";")
	return allowedTypes[strings.TrimSpace(strings.ToLower(mime))]
}

// SanitizeFilename replaces characters that are unsafe in storage keys.
func SanitizeFilename(name string) string {
	return unsafeFilenameChars.ReplaceAllString(name, "_")
}

// ExtractText returns the document's text for supported types. Only
// text/plain is extracted today; PDF, DOC, DOCX, and PAGES are stored
// without text and the second return value is false.
func ExtractText(contentType string, data []byte) (string, bool) {
	mime, _, _ := strings.Cut(contentType, ";")
	if strings.TrimSpace(strings.ToLower(mime)) == "text/plain" {
		return string(data), true
	}
	return "", false
}
