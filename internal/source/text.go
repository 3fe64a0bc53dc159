package source

import (
	"bytes"
	"errors"
	"strings"
	"unicode/utf8"
)

// TextAdapter is the fallback for plain text
type TextAdapter struct{}

// NewTextAdapter creates the plain text adapter
func NewTextAdapter() *TextAdapter {
	return &TextAdapter{}
}

// Name returns the adapter name
func (a *TextAdapter) Name() string {
	return "text"
}

// CanHandle always returns true
func (a *TextAdapter) CanHandle(name string, contentType string) bool {
	return true
}

// ExtractText strips a UTF-8 BOM and normalizes line endings
func (a *TextAdapter) ExtractText(data []byte) (string, error) {
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))
	if !utf8.Valid(data) {
		return "", errors.New("text is not valid UTF-8")
	}
	s := strings.ReplaceAll(string(data), "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n"), nil
}
