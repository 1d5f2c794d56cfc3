package app

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigFile_YAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "wikibrief.yaml")
	content := "" +
		"industry: Renewable Energy\n" +
		"outDir: out\n" +
		"llm:\n" +
		"  base: http://localhost:8080/v1\n" +
		"  model: gpt-4.1\n" +
		"  key: secret\n" +
		"cache:\n" +
		"  dir: .wikibrief-cache\n" +
		"enablePDF: true\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	fc, err := LoadConfigFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if fc.Industry != "Renewable Energy" || fc.LLM.Model != "gpt-4.1" || !fc.EnablePDF {
		t.Fatalf("unexpected config: %+v", fc)
	}
}

func TestLoadConfigFile_JSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "wikibrief.json")
	content := `{"industry":"Biotech","llm":{"model":"gpt-4.1"},"serve":":8080"}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	fc, err := LoadConfigFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if fc.Industry != "Biotech" || fc.Serve != ":8080" {
		t.Fatalf("unexpected config: %+v", fc)
	}
}

func TestApplyFileConfig_FlagsWin(t *testing.T) {
	cfg := Config{Industry: "From Flag", LLMModel: "flag-model"}
	var fc FileConfig
	fc.Industry = "From File"
	fc.LLM.Model = "file-model"
	fc.LLM.APIKey = "file-key"
	fc.Verbose = true

	ApplyFileConfig(&cfg, fc)
	if cfg.Industry != "From Flag" || cfg.LLMModel != "flag-model" {
		t.Fatalf("file overrode explicit flags: %+v", cfg)
	}
	if cfg.LLMAPIKey != "file-key" {
		t.Fatalf("unset field not filled from file: %+v", cfg)
	}
	if !cfg.Verbose {
		t.Fatalf("boolean not applied: %+v", cfg)
	}
}
