package app

// Config holds runtime configuration for the application.
type Config struct {
	// One-shot mode input.
	Industry string
	// OutDir is where report artifacts are written. Empty means the
	// current directory.
	OutDir string

	// LLM
	LLMBaseURL string
	LLMModel   string
	LLMAPIKey  string

	// Behavior
	CacheDir  string
	EnablePDF bool
	Verbose   bool

	// ListenAddr, when set, runs the HTTP workflow server instead of a
	// one-shot research run.
	ListenAddr string
}
