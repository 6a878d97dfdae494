package sanitizer_test

import (
	"testing"

	"github.com/microcosm-cc/bluemonday"
	"github.com/stretchr/testify/assert"

	"github.com/pacam/formrelay/pkg/sanitizer"
)

func TestStripHTML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"script injection", `<p>Hello</p><script>alert('xss')</script>`, "Hello"},
		{"nested tags", `<p>Hello <strong>world</strong></p>`, "Hello world"},
		{"event handler", `<img src="x" onerror="alert('xss')">`, ""},
		{"javascript url", `<a href="javascript:alert('xss')">click</a>`, "click"},
		{"plain text untouched", "Jane Doe", "Jane Doe"},
		{"whitespace trimmed", "  Jane  ", "Jane"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, sanitizer.StripHTML(tt.input))
		})
	}
}

func TestSanitizeFragment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"keeps lists", `<ul><li>one</li><li>two</li></ul>`, `<ul><li>one</li><li>two</li></ul>`},
		{"keeps emphasis", `<p><strong>Note:</strong> <em>read</em></p>`, `<p><strong>Note:</strong> <em>read</em></p>`},
		{"drops script", `<p>ok</p><script>x()</script>`, `<p>ok</p>`},
		{"drops style attribute", `<p style="color:red">x</p>`, `<p>x</p>`},
		{"drops javascript link", `<a href="javascript:x()">y</a>`, `y`},
		{"keeps mailto link", `<a href="mailto:info@pacam.com">mail</a>`, `<a href="mailto:info@pacam.com">mail</a>`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, sanitizer.SanitizeFragment(tt.input))
		})
	}
}

func TestSanitizeHTMLCustom(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "<b>x</b>", sanitizer.SanitizeHTMLCustom("<b>x</b>", nil))
	p := bluemonday.NewPolicy().AllowElements("b")
	assert.Equal(t, "<b>x</b>z", sanitizer.SanitizeHTMLCustom(`<b onclick="y">x</b><i>z</i>`, p))
}

func TestFilename(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want string
	}{
		{"Acme Ltd", "Acme_Ltd"},
		{"../../etc/passwd", "passwd"},
		{`C:\docs\id card.pdf`, "id_card.pdf"},
		{"a  /  b", "b"},
		{"O'Brien & Sons", "O_Brien_Sons"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, sanitizer.Filename(tt.in), tt.in)
	}
}

func TestSanitizeFragment_ButtonClass(t *testing.T) {
	t.Parallel()

	out := sanitizer.SanitizeFragment(`<a href="https://pacam.com" class="btn">Open</a>`)
	assert.Contains(t, out, `class="btn"`)
	assert.Contains(t, out, `href="https://pacam.com"`)

	out = sanitizer.SanitizeFragment(`<a href="https://pacam.com" class="evil">Open</a>`)
	assert.NotContains(t, out, "class=")
}
