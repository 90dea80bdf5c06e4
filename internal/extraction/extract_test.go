package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllowedType(t *testing.T) {
	tests := []struct {
		contentType string
		allowed     bool
	}{
		{"application/pdf", true},
		{"application/msword", true},
		{"application/vnd.openxmlformats-officedocument.wordprocessingml.document", true},
		{"text/plain", true},
		{"text/plain; charset=utf-8", true},
		{"application/vnd.apple.pages", true},
		{"application/zip", false},
		{"image/png", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.contentType, func(t *testing.T) {
			assert.Equal(t, tt.allowed, AllowedType(tt.contentType))
		})
	}
}

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "my_resume__final_.pdf", SanitizeFilename("my resume (final).pdf"))
	assert.Equal(t, "resume.txt", SanitizeFilename("resume.txt"))
}

func TestExtractText_PlainText(t *testing.T) {
	text, ok := ExtractText("text/plain", []byte("ten years of Go"))
	assert.True(t, ok)
	assert.Equal(t, "ten years of Go", text)
}

func TestExtractText_UnsupportedTypesStoredWithoutText(t *testing.T) {
	_, ok := ExtractText("application/pdf", []byte("%PDF-1.7"))
	assert.False(t, ok)
}
