// Package sanitizer cleans untrusted text before it reaches outgoing email.
package sanitizer

import (
	"regexp"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strictPolicy   *bluemonday.Policy
	fragmentPolicy *bluemonday.Policy
	initOnce       sync.Once
)

func initPolicies() {
	initOnce.Do(func() {
		strictPolicy = bluemonday.StrictPolicy()

		// markup produced from the message copy catalog
		fragmentPolicy = bluemonday.NewPolicy()
		fragmentPolicy.AllowStandardURLs()
		fragmentPolicy.AllowURLSchemes("https", "mailto", "tel")
		fragmentPolicy.AllowElements(
			"p", "br", "hr", "h3", "h4",
			"strong", "b", "em", "i",
			"ul", "ol", "li",
			"blockquote", "code",
		)
		fragmentPolicy.AllowAttrs("href").OnElements("a")
		fragmentPolicy.AllowAttrs("class").Matching(regexp.MustCompile(`^btn$`)).OnElements("a")
		fragmentPolicy.RequireNoFollowOnLinks(false)
		fragmentPolicy.AddTargetBlankToFullyQualifiedLinks(true)
	})
}

// StripHTML removes every tag and returns trimmed plain text.
func StripHTML(s string) string {
	initPolicies()
	return strings.TrimSpace(strictPolicy.Sanitize(s))
}

// SanitizeFragment keeps the small set of formatting tags email bodies use
// and drops scripts, event handlers, styles and unsafe URLs.
func SanitizeFragment(s string) string {
	initPolicies()
	return fragmentPolicy.Sanitize(s)
}

// SanitizeHTMLCustom applies a custom bluemonday policy.
// Returns s unchanged if policy is nil.
func SanitizeHTMLCustom(s string, policy *bluemonday.Policy) string {
	if policy == nil {
		return s
	}
	return policy.Sanitize(s)
}
