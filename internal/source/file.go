package source

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
)

var defaultRegistry = NewRegistry()

// LoadFile reads a file and extracts its text with the default registry
func LoadFile(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("read %s: %w", path, err)
	}
	return defaultRegistry.Extract(filepath.Base(path), DetectContentType(path, data), data)
}

// Extract runs the default registry
func Extract(name, contentType string, data []byte) (Document, error) {
	if contentType == "" || mediaType(contentType) == "application/octet-stream" {
		contentType = DetectContentType(name, data)
	}
	return defaultRegistry.Extract(name, contentType, data)
}

// DetectContentType sniffs the data, trusting the extension for types the
// sniffer reports as generic
func DetectContentType(name string, data []byte) string {
	ct := http.DetectContentType(data)
	switch mediaType(ct) {
	case "text/plain", "application/octet-stream":
		switch extension(name) {
		case ".pdf":
			return "application/pdf"
		case ".html", ".htm":
			return "text/html; charset=utf-8"
		}
	}
	return ct
}
