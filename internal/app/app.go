package app

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	openai "github.com/sashabaranov/go-openai"

	"github.com/wikibrief/wikibrief/internal/cache"
	"github.com/wikibrief/wikibrief/internal/llm"
	"github.com/wikibrief/wikibrief/internal/research"
	"github.com/wikibrief/wikibrief/internal/wordcount"
	"github.com/wikibrief/wikibrief/internal/workflow"
)

// App wires the model client and the workflow runner from configuration.
type App struct {
	cfg    Config
	runner *workflow.Runner
}

func New(cfg Config) (*App, error) {
	if cfg.LLMModel == "" {
		return nil, fmt.Errorf("llm model not configured")
	}
	transportCfg := openai.DefaultConfig(cfg.LLMAPIKey)
	if cfg.LLMBaseURL != "" {
		transportCfg.BaseURL = cfg.LLMBaseURL
	}
	provider := &llm.OpenAIProvider{Inner: openai.NewClientWithConfig(transportCfg)}

	var lc *cache.LLMCache
	if cfg.CacheDir != "" {
		lc = &cache.LLMCache{Dir: cfg.CacheDir}
	}
	runner := &workflow.Runner{
		Finder:   &research.Finder{Client: provider, Model: cfg.LLMModel, Cache: lc, Verbose: cfg.Verbose},
		Reporter: &research.Reporter{Client: provider, Model: cfg.LLMModel, Cache: lc, Verbose: cfg.Verbose},
	}
	return &App{cfg: cfg, runner: runner}, nil
}

// Runner exposes the wired workflow runner for the HTTP server mode.
func (a *App) Runner() *workflow.Runner {
	return a.runner
}

// Run executes the whole guided flow once for the configured industry and
// writes the report artifacts.
func (a *App) Run(ctx context.Context) error {
	sess, err := workflow.Session{}.WithIndustry(a.cfg.Industry)
	if err != nil {
		// Validation failures carry a user-facing message and never reach
		// the model layer.
		return err
	}
	log.Info().Str("industry", sess.Industry).Msg("industry validated")

	sess, err = a.runner.Research(ctx, sess)
	if err != nil {
		return fmt.Errorf("reference discovery failed: %w", err)
	}
	log.Info().Int("count", len(sess.References)).Msg("references found")
	for i, ref := range sess.References {
		log.Info().Int("n", i+1).Str("title", ref.Title).Str("url", ref.URL).Msg("reference")
	}

	sess, err = a.runner.Report(ctx, sess)
	if err != nil {
		return fmt.Errorf("report generation failed: %w", err)
	}

	words := sess.WordCount()
	if wordcount.UnderLimit(words) {
		log.Info().Int("words", words).Int("limit", wordcount.Limit).Msg("report within word budget")
	} else {
		log.Warn().Int("words", words).Int("limit", wordcount.Limit).Msg("report at or over word budget")
	}

	return a.writeArtifacts(sess)
}
