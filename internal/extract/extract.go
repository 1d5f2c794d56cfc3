// Package extract pulls encyclopedia reference links out of free-form model
// output. The model is asked for a numbered list but extraction only assumes
// one thing: candidate links live on lines that mention the reference domain.
package extract

import (
	"regexp"
	"strings"
)

// DomainMarker is the substring a link must carry, after normalization, to
// count as a reference page.
const DomainMarker = "wikipedia.org"

// MaxReferences caps how many unique links a session keeps.
const MaxReferences = 5

// Reference pairs a link exactly as it appeared in model output with a
// display title derived from its article path.
type Reference struct {
	URL   string
	Title string
}

var linkRe = regexp.MustCompile(`https?://[^\s\)]+wikipedia\.org[^\s\),]*`)

// Links scans raw model text line by line and collects candidate URLs in
// order of appearance; within a line, matches are kept left to right.
// Trailing punctuation is stripped from each match. The result is not
// deduplicated; see Dedupe.
func Links(raw string) []string {
	var urls []string
	for _, line := range strings.Split(strings.TrimSpace(raw), "\n") {
		if !strings.Contains(strings.ToLower(line), DomainMarker) {
			continue
		}
		for _, m := range linkRe.FindAllString(line, -1) {
			urls = append(urls, strings.TrimRight(m, ".,;:"))
		}
	}
	return urls
}

// Normalize strips the fragment and any trailing slash. The normalized form
// is used only for dedup comparison, never for display.
func Normalize(u string) string {
	if i := strings.Index(u, "#"); i >= 0 {
		u = u[:i]
	}
	return strings.TrimRight(u, "/")
}

// Dedupe keeps the first occurrence of each normalized link, drops anything
// whose normalized form lacks the domain marker, and truncates to
// MaxReferences. Discovery order is preserved and originals are kept.
func Dedupe(urls []string) []string {
	seen := make(map[string]struct{}, len(urls))
	unique := make([]string, 0, MaxReferences)
	for _, u := range urls {
		n := Normalize(u)
		if !strings.Contains(n, DomainMarker) {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		unique = append(unique, u)
		if len(unique) == MaxReferences {
			break
		}
	}
	return unique
}

// Title derives a human-readable title from the final /wiki/ path segment,
// with underscores replaced by spaces. Links without a recognizable article
// path fall back to the raw link.
func Title(u string) string {
	const marker = "/wiki/"
	i := strings.LastIndex(u, marker)
	if i < 0 {
		return u
	}
	seg := u[i+len(marker):]
	if j := strings.Index(seg, "#"); j >= 0 {
		seg = seg[:j]
	}
	if seg == "" {
		return u
	}
	return strings.ReplaceAll(seg, "_", " ")
}

// References converts deduped URLs into display pairs.
func References(urls []string) []Reference {
	refs := make([]Reference, 0, len(urls))
	for _, u := range urls {
		refs = append(refs, Reference{URL: u, Title: Title(u)})
	}
	return refs
}
