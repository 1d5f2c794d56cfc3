// Package sanitize strips citation artifacts from generated report text.
// The model is instructed not to emit a sources section or raw links, but
// that instruction is not trusted; cleaning here is best effort and never
// fails.
package sanitize

import (
	"regexp"
	"strings"
)

var (
	// A whole line that is a Sources:/References: label, with or without
	// trailing content.
	sourceLineRe = regexp.MustCompile(`(?im)^[ \t]*(?:sources?|references?)[ \t]*:[ \t]*.*$`)
	// A whole line that is nothing but an optional [n] or n. index marker
	// followed by a URL.
	linkLineRe = regexp.MustCompile(`(?im)^[ \t]*(?:\[\d+\]|\d+\.)?[ \t]*https?://\S+[ \t]*$`)
	// Any URL left inline within an otherwise kept line.
	inlineURLRe  = regexp.MustCompile(`https?://\S+`)
	newlineRunRe = regexp.MustCompile(`\n{3,}`)
)

// Report applies the cleaning passes in order: drop label lines, drop
// standalone link lines, blank inline URLs, then collapse 3+ newlines to 2
// and trim. Blanking a URL can expose a label line that was hidden behind
// it, so the passes repeat until the text stops changing. The result
// contains no http:// or https:// substring and the function is idempotent.
func Report(raw string) string {
	s := strings.ReplaceAll(raw, "\r\n", "\n")
	for {
		next := sourceLineRe.ReplaceAllString(s, "")
		next = linkLineRe.ReplaceAllString(next, "")
		next = inlineURLRe.ReplaceAllString(next, "")
		if next == s {
			break
		}
		s = next
	}
	s = newlineRunRe.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}
