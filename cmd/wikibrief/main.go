package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/wikibrief/wikibrief/internal/app"
	"github.com/wikibrief/wikibrief/internal/server"
)

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	var (
		industry   string
		outDir     string
		configPath string
		serveAddr  string
		llmBaseURL string
		llmModel   string
		llmKey     string
		cacheDir   string
		enablePDF  bool
		verbose    bool
	)

	flag.StringVar(&industry, "industry", "", "Industry to research, e.g. 'Renewable Energy'")
	flag.StringVar(&outDir, "out", "", "Directory for report artifacts (default current directory)")
	flag.StringVar(&configPath, "config", os.Getenv("WIKIBRIEF_CONFIG"), "Path to YAML/JSON config file")
	flag.StringVar(&serveAddr, "serve", "", "Listen address for HTTP mode, e.g. ':8080'")
	flag.StringVar(&llmBaseURL, "llm.base", os.Getenv("LLM_BASE_URL"), "OpenAI-compatible base URL")
	flag.StringVar(&llmModel, "llm.model", os.Getenv("LLM_MODEL"), "Model name")
	flag.StringVar(&llmKey, "llm.key", os.Getenv("LLM_API_KEY"), "API key for the model endpoint")
	flag.StringVar(&cacheDir, "cache.dir", "", "Directory for the LLM response cache; empty disables caching")
	flag.BoolVar(&enablePDF, "enable.pdf", false, "Also render the report as a PDF")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.Parse()

	cfg := app.Config{
		Industry:   industry,
		OutDir:     outDir,
		LLMBaseURL: llmBaseURL,
		LLMModel:   llmModel,
		LLMAPIKey:  llmKey,
		CacheDir:   cacheDir,
		EnablePDF:  enablePDF,
		Verbose:    verbose,
		ListenAddr: serveAddr,
	}
	if configPath != "" {
		fc, err := app.LoadConfigFile(configPath)
		if err != nil {
			log.Error().Err(err).Str("path", configPath).Msg("config file")
			os.Exit(2)
		}
		app.ApplyFileConfig(&cfg, fc)
	}

	if cfg.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	if err := run(cfg); err != nil {
		log.Error().Err(err).Msg("run failed")
		os.Exit(1)
	}
}

func run(cfg app.Config) error {
	a, err := app.New(cfg)
	if err != nil {
		return fmt.Errorf("init app: %w", err)
	}

	if cfg.ListenAddr != "" {
		srv, err := server.New(a.Runner())
		if err != nil {
			return fmt.Errorf("init server: %w", err)
		}
		log.Info().Str("addr", cfg.ListenAddr).Msg("serving workflow API")
		return http.ListenAndServe(cfg.ListenAddr, srv.Routes())
	}

	if cfg.Industry == "" {
		return fmt.Errorf("either -industry or -serve is required")
	}
	return a.Run(context.Background())
}
