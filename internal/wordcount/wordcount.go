// Package wordcount approximates how a word processor counts words, which
// differs from a naive whitespace split: markdown links count as their
// label, a raw URL counts as one word, and hyphen/apostrophe compounds
// count once.
package wordcount

import "regexp"

// Limit is the contractual word budget requested from the model. Counts at
// or above it select the warning presentation.
const Limit = 500

var (
	mdLinkRe = regexp.MustCompile(`\[([^\]]+)\]\([^)]+\)`)
	urlRe    = regexp.MustCompile(`https?://\S+`)
	tokenRe  = regexp.MustCompile(`[A-Za-z0-9]+(?:[-'][A-Za-z0-9]+)*`)
)

// Count returns the number of word tokens in text. Empty input yields 0.
func Count(text string) int {
	if text == "" {
		return 0
	}
	s := mdLinkRe.ReplaceAllString(text, "$1")
	s = urlRe.ReplaceAllString(s, "URL")
	return len(tokenRe.FindAllString(s, -1))
}

// UnderLimit reports whether a count is strictly below the requested budget.
func UnderLimit(n int) bool {
	return n < Limit
}
