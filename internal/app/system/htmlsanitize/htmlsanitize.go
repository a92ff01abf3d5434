// Package htmlsanitize strips unsafe markup from notice content before
// it is stored. Notice bodies are rendered by the tenant-facing SPA, so
// anything an admin pastes in is treated as untrusted.
package htmlsanitize

import "github.com/microcosm-cc/bluemonday"

var (
	// body allows basic formatting but no scripts, handlers, or styles.
	body = bluemonday.UGCPolicy()
	// strict strips all markup; used for titles and one-line fields.
	strict = bluemonday.StrictPolicy()
)

// Sanitize removes unsafe markup from HTML content, keeping the basic
// formatting tags the notice composer produces.
func Sanitize(html string) string {
	return body.Sanitize(html)
}

// PlainText strips all markup, leaving text only.
func PlainText(s string) string {
	return strict.Sanitize(s)
}
