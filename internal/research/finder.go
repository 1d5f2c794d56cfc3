package research

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/wikibrief/wikibrief/internal/cache"
	"github.com/wikibrief/wikibrief/internal/extract"
	"github.com/wikibrief/wikibrief/internal/llm"
)

// Finder asks the web-search-augmented model for the five most relevant
// Wikipedia pages covering an industry.
type Finder struct {
	Client  llm.Client
	Model   string
	Cache   *cache.LLMCache
	Verbose bool
}

const finderSystemMessage = "You are a business research assistant. Find the 5 most relevant Wikipedia pages for the given industry. Return ONLY a numbered list of 5 Wikipedia URLs, nothing else."

// FindReferences runs the discovery call and, when it yields fewer than
// five distinct links, exactly one narrower fallback call whose matches are
// appended to the first pass rather than replacing it. Fewer than five
// links in the final result is a valid outcome, not an error; the only
// error surface is the remote call itself.
func (f *Finder) FindReferences(ctx context.Context, industry string) ([]extract.Reference, error) {
	if f.Client == nil || strings.TrimSpace(f.Model) == "" {
		return nil, errors.New("finder not configured")
	}

	if f.Verbose {
		log.Debug().Str("stage", "finder").Str("model", f.Model).Str("industry", industry).Msg("reference discovery")
	}
	text, err := completion(ctx, f.Client, f.Cache, f.Model, finderSystemMessage, buildFinderPrompt(industry), 0)
	if err != nil {
		return nil, fmt.Errorf("reference discovery call: %w", err)
	}
	urls := extract.Links(text)

	if len(extract.Dedupe(urls)) < extract.MaxReferences {
		if f.Verbose {
			log.Debug().Str("stage", "finder").Int("found", len(urls)).Msg("running fallback retrieval")
		}
		fbText, err := completion(ctx, f.Client, f.Cache, f.Model, "", "Wikipedia articles "+industry, 0)
		if err != nil {
			return nil, fmt.Errorf("reference fallback call: %w", err)
		}
		urls = append(urls, extract.Links(fbText)...)
	}

	return extract.References(extract.Dedupe(urls)), nil
}

func buildFinderPrompt(industry string) string {
	var sb strings.Builder
	sb.WriteString("Find the 5 most relevant Wikipedia pages for the ")
	sb.WriteString(industry)
	sb.WriteString(" industry.\n\n")
	sb.WriteString("Include: industry overview, major companies, technologies, trends, related sectors.\n\n")
	sb.WriteString("Return exactly 5 URLs:\n")
	for i := 1; i <= extract.MaxReferences; i++ {
		fmt.Fprintf(&sb, "%d. https://en.wikipedia.org/wiki/...\n", i)
	}
	sb.WriteString("\nSearch now.")
	return sb.String()
}
