package config

import "time"

// DefaultBaseURL is TheMealDB search-by-name endpoint.
const DefaultBaseURL = "https://www.themealdb.com/api/json/v1/1/search.php"

// Storage backends understood by the prefs package.
const (
	BackendJSON   = "json"
	BackendBolt   = "bolt"
	BackendMemory = "memory"
)

// Config is the root of the YAML configuration file.
type Config struct {
	API     APIConfig     `yaml:"api" validate:"required"`
	Search  SearchConfig  `yaml:"search"`
	Storage StorageConfig `yaml:"storage" validate:"required"`
	Logging LoggingConfig `yaml:"logging"`
}

// APIConfig describes the outbound recipe API.
type APIConfig struct {
	BaseURL string        `yaml:"base_url" validate:"required,http_url"`
	Timeout time.Duration `yaml:"timeout" validate:"gte=0"`
}

// SearchConfig tunes the fetch cycle.
type SearchConfig struct {
	// DiscardStale drops completions of searches that were superseded by a
	// newer search. When false the last response to arrive wins.
	DiscardStale bool `yaml:"discard_stale"`
}

// StorageConfig selects where the theme preference lives.
type StorageConfig struct {
	Backend string `yaml:"backend" validate:"required,storage_backend"`
	Path    string `yaml:"path"`
}

// LoggingConfig controls the zerolog output.
type LoggingConfig struct {
	Level string `yaml:"level" validate:"omitempty,oneof=trace debug info warn error fatal panic disabled"`
	File  string `yaml:"file"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		API: APIConfig{
			BaseURL: DefaultBaseURL,
		},
		Search: SearchConfig{
			DiscardStale: true,
		},
		Storage: StorageConfig{
			Backend: BackendJSON,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
