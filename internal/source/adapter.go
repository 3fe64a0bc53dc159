// Package source turns uploaded or fetched bytes into plain contract text.
package source

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

var (
	// ErrUnsupportedSource is returned when no adapter accepts the input
	ErrUnsupportedSource = errors.New("unsupported source")
	// ErrNoText is returned when extraction yields only whitespace
	ErrNoText = errors.New("no extractable text")
)

// Adapter extracts plain text from one kind of document
type Adapter interface {
	// Name returns the adapter name
	Name() string

	// CanHandle checks the file name or URL and the content type
	CanHandle(name string, contentType string) bool

	// ExtractText returns the document's readable text
	ExtractText(data []byte) (string, error)
}

// Document is extracted text with where it came from
type Document struct {
	Name        string
	ContentType string
	Adapter     string
	Text        string
}

// Registry picks an adapter per input, falling back to plain text
type Registry struct {
	adapters []Adapter
	fallback Adapter
}

// NewRegistry creates a registry with the PDF and HTML adapters and a text fallback
func NewRegistry() *Registry {
	r := &Registry{}
	r.Register(NewPDFAdapter())
	r.Register(NewHTMLAdapter())
	r.fallback = NewTextAdapter()
	return r
}

// Register adds an adapter ahead of the fallback
func (r *Registry) Register(a Adapter) {
	r.adapters = append(r.adapters, a)
}

// FindAdapter returns the first adapter that accepts the input
func (r *Registry) FindAdapter(name, contentType string) Adapter {
	for _, a := range r.adapters {
		if a.CanHandle(name, contentType) {
			return a
		}
	}
	return r.fallback
}

// Extract runs the matching adapter and rejects empty output
func (r *Registry) Extract(name, contentType string, data []byte) (Document, error) {
	a := r.FindAdapter(name, contentType)
	if a == nil {
		return Document{}, fmt.Errorf("%w: %s", ErrUnsupportedSource, name)
	}

	text, err := a.ExtractText(data)
	if err != nil {
		return Document{}, fmt.Errorf("%s adapter: %w", a.Name(), err)
	}
	if strings.TrimSpace(text) == "" {
		return Document{}, fmt.Errorf("%s: %w", name, ErrNoText)
	}

	return Document{
		Name:        name,
		ContentType: contentType,
		Adapter:     a.Name(),
		Text:        text,
	}, nil
}

// extension returns the lowercased extension of a file name or URL path
func extension(name string) string {
	if i := strings.IndexAny(name, "?#"); i >= 0 {
		name = name[:i]
	}
	return strings.ToLower(filepath.Ext(name))
}

// mediaType strips parameters from a Content-Type value
func mediaType(contentType string) string {
	mt, _, _ := strings.Cut(contentType, ";")
	return strings.ToLower(strings.TrimSpace(mt))
}
