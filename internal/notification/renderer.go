package notification

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	texttemplate "text/template"
)

//go:embed layouts/*
var defaultLayouts embed.FS

const (
	htmlLayout = "layout.html"
	textLayout = "layout.txt"
)

// Brand is the contact block printed in every footer.
type Brand struct {
	Name    string
	Email   string
	Phone   string
	Website string
}

// DefaultBrand is used when no brand is configured.
var DefaultBrand = Brand{
	Name:    "PACAM",
	Email:   "info@pacassetmanagement.com",
	Phone:   "+234-XXX-XXXX",
	Website: "www.pacassetmanagement.com",
}

// Renderer lays a Document out as HTML and plain text.
// The layouts are parsed once; Render is safe for concurrent use.
type Renderer struct {
	html  *template.Template
	text  *texttemplate.Template
	brand Brand
}

// RendererOption configures a Renderer.
type RendererOption func(*rendererConfig)

type rendererConfig struct {
	layouts fs.FS
	brand   Brand
}

// WithLayouts replaces the embedded layouts. The filesystem must contain
// layout.html and layout.txt at its root.
func WithLayouts(fsys fs.FS) RendererOption {
	return func(c *rendererConfig) {
		c.layouts = fsys
	}
}

// WithBrand sets the footer contact block.
func WithBrand(b Brand) RendererOption {
	return func(c *rendererConfig) {
		c.brand = b
	}
}

// NewRenderer parses the layouts and returns a ready renderer.
func NewRenderer(opts ...RendererOption) (*Renderer, error) {
	sub, _ := fs.Sub(defaultLayouts, "layouts")
	cfg := rendererConfig{layouts: sub, brand: DefaultBrand}
	for _, opt := range opts {
		opt(&cfg)
	}

	htmlSrc, err := fs.ReadFile(cfg.layouts, htmlLayout)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrLayoutNotFound, htmlLayout, err)
	}
	textSrc, err := fs.ReadFile(cfg.layouts, textLayout)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrLayoutNotFound, textLayout, err)
	}

	h, err := template.New(htmlLayout).Option("missingkey=error").Parse(string(htmlSrc))
	if err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", ErrRenderFailed, htmlLayout, err)
	}
	t, err := texttemplate.New(textLayout).Option("missingkey=error").Parse(string(textSrc))
	if err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", ErrRenderFailed, textLayout, err)
	}

	return &Renderer{html: h, text: t, brand: cfg.brand}, nil
}

// layoutData is what both layouts see.
type layoutData struct {
	Doc           *Document
	Brand         Brand
	FooterHeading string
	Year          int
}

// Render produces the subject, HTML body and text alternative of doc.
// Output depends only on doc and the renderer configuration.
func (r *Renderer) Render(doc *Document) (*Message, error) {
	if doc == nil {
		return nil, ErrNilDocument
	}
	if doc.Subject == "" {
		return nil, fmt.Errorf("%w: document has no subject", ErrRenderFailed)
	}

	data := layoutData{
		Doc:           doc,
		Brand:         r.brand,
		FooterHeading: doc.FooterHeading,
		Year:          doc.Year(),
	}
	if data.FooterHeading == "" {
		data.FooterHeading = r.brand.Name
	}

	var hb, tb bytes.Buffer
	if err := r.html.Execute(&hb, data); err != nil {
		return nil, errors.Join(ErrRenderFailed, err)
	}
	if err := r.text.Execute(&tb, data); err != nil {
		return nil, errors.Join(ErrRenderFailed, err)
	}

	return &Message{
		Subject: doc.Subject,
		HTML:    hb.String(),
		Text:    tb.String(),
	}, nil
}
