package source

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
)

// PDFAdapter extracts the text layer of PDF uploads
type PDFAdapter struct{}

// NewPDFAdapter creates a PDF adapter
func NewPDFAdapter() *PDFAdapter {
	return &PDFAdapter{}
}

// Name returns the adapter name
func (a *PDFAdapter) Name() string {
	return "pdf"
}

// CanHandle accepts application/pdf and .pdf names
func (a *PDFAdapter) CanHandle(name string, contentType string) bool {
	return mediaType(contentType) == "application/pdf" || extension(name) == ".pdf"
}

// ExtractText returns the plain text of every page. Scanned PDFs without a
// text layer come back empty.
func (a *PDFAdapter) ExtractText(data []byte) (text string, err error) {
	if !bytes.HasPrefix(bytes.TrimLeft(data, "\x00\t\r\n "), []byte("%PDF-")) {
		return "", fmt.Errorf("not a pdf")
	}

	// The reader panics on some malformed cross-reference tables
	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("read pdf: %v", r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}

	plain, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("extract pdf text: %w", err)
	}

	var buf strings.Builder
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", fmt.Errorf("read pdf text: %w", err)
	}
	return buf.String(), nil
}
