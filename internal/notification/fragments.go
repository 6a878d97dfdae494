package notification

import (
	"html/template"
	"strings"
)

// Fragment is a piece of section content in both output formats.
type Fragment struct {
	HTML template.HTML
	Text string
}

// IsZero reports whether the fragment has no content.
func (f Fragment) IsZero() bool {
	return f.HTML == "" && f.Text == ""
}

// Row is a label/value pair.
type Row struct {
	Label string
	Value string
}

const (
	labelStyle = `padding:6px 12px 6px 0;font-weight:bold;color:#374151;vertical-align:top;width:40%;`
	valueStyle = `padding:6px 0;color:#111827;vertical-align:top;word-break:break-word;`
)

// Table renders rows as a two-column table.
func Table(rows ...Row) Fragment {
	if len(rows) == 0 {
		return Fragment{}
	}

	var h, t strings.Builder
	h.WriteString(`<table role="presentation" width="100%" cellpadding="0" cellspacing="0" style="border-collapse:collapse;">`)
	for _, r := range rows {
		h.WriteString(`<tr><td style="` + labelStyle + `">`)
		h.WriteString(template.HTMLEscapeString(r.Label))
		h.WriteString(`:</td><td style="` + valueStyle + `">`)
		h.WriteString(template.HTMLEscapeString(r.Value))
		h.WriteString(`</td></tr>`)

		t.WriteString(r.Label)
		t.WriteString(": ")
		t.WriteString(r.Value)
		t.WriteByte('\n')
	}
	h.WriteString(`</table>`)

	return Fragment{HTML: template.HTML(h.String()), Text: t.String()}
}

// Bullets renders items as an unordered list.
func Bullets(items ...string) Fragment {
	if len(items) == 0 {
		return Fragment{}
	}

	var h, t strings.Builder
	h.WriteString(`<ul style="margin:0;padding-left:20px;">`)
	for _, item := range items {
		h.WriteString(`<li style="margin-bottom:6px;">`)
		h.WriteString(template.HTMLEscapeString(item))
		h.WriteString(`</li>`)

		t.WriteString("- ")
		t.WriteString(item)
		t.WriteByte('\n')
	}
	h.WriteString(`</ul>`)

	return Fragment{HTML: template.HTML(h.String()), Text: t.String()}
}

// Paragraphs renders each string as its own paragraph.
func Paragraphs(ps ...string) Fragment {
	if len(ps) == 0 {
		return Fragment{}
	}

	var h, t strings.Builder
	for i, p := range ps {
		h.WriteString(`<p style="margin:0 0 12px 0;">`)
		h.WriteString(template.HTMLEscapeString(p))
		h.WriteString(`</p>`)

		if i > 0 {
			t.WriteByte('\n')
		}
		t.WriteString(p)
		t.WriteByte('\n')
	}

	return Fragment{HTML: template.HTML(h.String()), Text: t.String()}
}

// Join concatenates fragments, skipping empty ones.
func Join(frags ...Fragment) Fragment {
	var h, t strings.Builder
	for _, f := range frags {
		if f.IsZero() {
			continue
		}
		if t.Len() > 0 {
			t.WriteByte('\n')
		}
		h.WriteString(string(f.HTML))
		t.WriteString(f.Text)
	}
	return Fragment{HTML: template.HTML(h.String()), Text: t.String()}
}
