package sanitizer

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	emailPolicy *bluemonday.Policy
	initOnce    sync.Once
)

func initPolicies() {
	initOnce.Do(func() {
		// Only the structural tags the notification template emits.
		// No attributes, no links, no styles.
		emailPolicy = bluemonday.NewPolicy()
		emailPolicy.AllowElements("h3", "p", "strong", "br")
	})
}

// EmailHTML strips every element and attribute the admin notification
// does not use. Escaped text content passes through untouched.
func EmailHTML(s string) string {
	initPolicies()
	return emailPolicy.Sanitize(s)
}

// SingleLine collapses CR and LF into spaces so the value is safe to
// place in a mail header.
func SingleLine(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(s)
}
