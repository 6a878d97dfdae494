package sanitizer

import (
	"path"
	"strings"
	"unicode"
)

const maxFilenameLen = 120

// Filename makes s safe to use as an attachment name: path components are
// dropped, anything other than letters, digits, dot, dash and underscore
// becomes an underscore, and runs of underscores collapse.
func Filename(s string) string {
	s = path.Base(strings.ReplaceAll(strings.TrimSpace(s), `\`, "/"))
	if s == "." || s == "/" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s))
	lastUnderscore := false
	for _, r := range s {
		ok := unicode.IsLetter(r) || unicode.IsDigit(r) || r == '.' || r == '-'
		if !ok {
			if lastUnderscore {
				continue
			}
			r = '_'
		}
		lastUnderscore = r == '_'
		b.WriteRune(r)
	}

	out := strings.Trim(b.String(), "_.")
	if len([]rune(out)) > maxFilenameLen {
		out = string([]rune(out)[:maxFilenameLen])
	}
	return out
}
