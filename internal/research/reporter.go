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

// Reporter asks the model to synthesize a short market-research report from
// the discovered reference pages.
type Reporter struct {
	Client  llm.Client
	Model   string
	Cache   *cache.LLMCache
	Verbose bool
}

const reporterSystemMessage = "You are a senior business analyst writing market research reports. " +
	"Write professionally, analytically, and concisely. " +
	"Structure: Overview, Key Players, Trends, Technologies, Outlook. " +
	"Keep reports UNDER 500 words strictly. " +
	"Do not include a sources section or any raw links."

// Generate runs the report call and returns the model's raw text, trimmed.
// The caller is expected to sanitize it; the instruction to omit sources is
// not assumed to be honored.
func (r *Reporter) Generate(ctx context.Context, industry string, refs []extract.Reference) (string, error) {
	if r.Client == nil || strings.TrimSpace(r.Model) == "" {
		return "", errors.New("reporter not configured")
	}
	if r.Verbose {
		log.Debug().Str("stage", "reporter").Str("model", r.Model).Int("references", len(refs)).Msg("report generation")
	}
	text, err := completion(ctx, r.Client, r.Cache, r.Model, reporterSystemMessage, buildReporterPrompt(industry, refs), 0.3)
	if err != nil {
		return "", fmt.Errorf("report generation call: %w", err)
	}
	return text, nil
}

func buildReporterPrompt(industry string, refs []extract.Reference) string {
	var sb strings.Builder
	sb.WriteString("Generate a market research report on ")
	sb.WriteString(industry)
	sb.WriteString(" for business analysts.\n\n")
	sb.WriteString("Wikipedia sources:\n")
	for i, ref := range refs {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, ref.URL)
	}
	sb.WriteString("\nRequirements:\n")
	sb.WriteString("- LESS than 500 words (STRICT)\n")
	sb.WriteString("- Sections: Overview, Key Players, Trends, Technologies, Outlook\n")
	sb.WriteString("- Professional, analytical tone\n")
	sb.WriteString("- Based on the Wikipedia sources above\n")
	sb.WriteString("- Include specific facts and figures\n")
	sb.WriteString("- Do NOT append a sources section or raw URLs\n\n")
	sb.WriteString("Generate the report now.")
	return sb.String()
}
