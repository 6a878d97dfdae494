package notification

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/yuin/goldmark"

	"github.com/pacam/formrelay/pkg/sanitizer"
)

// Markdown converts catalog copy into fragments.
// It is safe for concurrent use.
type Markdown struct {
	md goldmark.Markdown
}

// NewMarkdown returns a converter with the button extension enabled.
func NewMarkdown() *Markdown {
	return &Markdown{
		md: goldmark.New(goldmark.WithExtensions(ButtonExtension())),
	}
}

// Fragment converts source to sanitized HTML. The plain-text side is the
// markdown itself.
func (m *Markdown) Fragment(source []byte) (Fragment, error) {
	source = bytes.TrimSpace(source)
	if len(source) == 0 {
		return Fragment{}, nil
	}

	var buf bytes.Buffer
	if err := m.md.Convert(source, &buf); err != nil {
		return Fragment{}, fmt.Errorf("%w: convert markdown: %v", ErrRenderFailed, err)
	}

	return Fragment{
		HTML: template.HTML(strings.TrimSpace(sanitizer.SanitizeFragment(buf.String()))),
		Text: string(source) + "\n",
	}, nil
}
