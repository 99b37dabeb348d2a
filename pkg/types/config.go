// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// CorpusFormat identifies the corpus source format.
type CorpusFormat string

const (
	CorpusCSV    CorpusFormat = "csv"
	CorpusSQLite CorpusFormat = "sqlite"
)

// CorpusConfig holds settings for loading the paper corpus.
type CorpusConfig struct {
	// Path is the corpus file: a CSV with titles, summaries and terms
	// columns, or a SQLite database. A missing CSV file yields an empty
	// corpus, not an error.
	Path string `json:"path" yaml:"path"`

	// Format selects the source format: csv (default) or sqlite.
	Format CorpusFormat `json:"format" yaml:"format"`

	// Table is the table to read when Format is sqlite (default "papers").
	Table string `json:"table,omitempty" yaml:"table,omitempty"`
}

// RetrievalConfig holds settings for the relevance ranker.
type RetrievalConfig struct {
	// TopK is the maximum number of records retrieved per turn (default 5).
	TopK int `json:"top_k" yaml:"top_k"`

	// Category is the initial category filter (default "All").
	Category CategoryFilter `json:"category" yaml:"category"`
}

// LLMProvider identifies the generation backend.
type LLMProvider string

const (
	ProviderOllama LLMProvider = "ollama"
	ProviderOpenAI LLMProvider = "openai"
)

// LLMConfig holds settings for the text-generation collaborator.
type LLMConfig struct {
	// Provider selects the backend: ollama (default) or openai for any
	// OpenAI-compatible endpoint.
	Provider LLMProvider `json:"provider" yaml:"provider"`

	// BaseURL is the backend server URL (default "http://localhost:11434").
	BaseURL string `json:"base_url" yaml:"base_url"`

	// Model is the model identifier (default "llama3.2").
	Model string `json:"model" yaml:"model"`

	// Temperature is the sampling temperature (default 0.7).
	Temperature float64 `json:"temperature" yaml:"temperature"`

	// MaxTokens caps the response length. Zero uses the backend default.
	MaxTokens int `json:"max_tokens,omitempty" yaml:"max_tokens,omitempty"`

	// APIKey authenticates against the openai provider. Usually loaded
	// from .secrets/openai-api-key rather than written in config.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`
}

// ReportConfig holds settings for the document renderer.
type ReportConfig struct {
	// Enabled controls whether PDF rendering is available. When false the
	// engine appends an advisory notice instead of attaching a document.
	Enabled bool `json:"enabled" yaml:"enabled"`

	// OutputDir is where the CLI writes attached documents (default "reports").
	OutputDir string `json:"output_dir" yaml:"output_dir"`
}

// ImageConfig holds settings for the image-reference collaborator.
type ImageConfig struct {
	// BaseURL is the prefix for image-lookup references
	// (default "https://source.unsplash.com/800x400/?").
	BaseURL string `json:"base_url" yaml:"base_url"`
}

// AppConfig groups all stage configurations for the chat engine.
type AppConfig struct {
	Corpus    CorpusConfig    `json:"corpus" yaml:"corpus"`
	Retrieval RetrievalConfig `json:"retrieval" yaml:"retrieval"`
	LLM       LLMConfig       `json:"llm" yaml:"llm"`
	Report    ReportConfig    `json:"report" yaml:"report"`
	Image     ImageConfig     `json:"image" yaml:"image"`
}

// DefaultAppConfig returns the configuration used when no config file or
// flags override a value.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		Corpus: CorpusConfig{
			Path:   "arxiv_data.csv",
			Format: CorpusCSV,
			Table:  "papers",
		},
		Retrieval: RetrievalConfig{
			TopK:     5,
			Category: FilterAll,
		},
		LLM: LLMConfig{
			Provider:    ProviderOllama,
			BaseURL:     "http://localhost:11434",
			Model:       "llama3.2",
			Temperature: 0.7,
		},
		Report: ReportConfig{
			Enabled:   true,
			OutputDir: "reports",
		},
		Image: ImageConfig{
			BaseURL: "https://source.unsplash.com/800x400/?",
		},
	}
}
