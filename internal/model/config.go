// Package model holds the configuration and report types shared between the
// CLI and the pipeline.
package model

import "runtime"

// Config is the resolved configuration for a run. All settings are fixed
// before the core is invoked; the core never reads files or environment.
type Config struct {
	// Method names the calculation scheme (hechrechi, gadol, katan, siduri,
	// boneh, musafi, milui).
	Method string `yaml:"method" mapstructure:"method"`

	// CountNikkud includes vowel-mark values in word sums.
	CountNikkud bool `yaml:"count_nikkud" mapstructure:"count_nikkud"`

	// DistinctVowelizations keeps words differing only in nikkud as separate
	// grouping entries. When false they merge with occurrence counts.
	DistinctVowelizations bool `yaml:"distinct_vowelizations" mapstructure:"distinct_vowelizations"`

	Cache       CacheConfig       `yaml:"cache" mapstructure:"cache"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" mapstructure:"concurrency"`
	Output      OutputConfig      `yaml:"output" mapstructure:"output"`
}

// CacheConfig controls the in-memory value cache.
type CacheConfig struct {
	Enabled bool `yaml:"enabled" mapstructure:"enabled"`
}

// ConcurrencyConfig controls parallel grouping of large texts.
type ConcurrencyConfig struct {
	Workers   int `yaml:"workers" mapstructure:"workers"`
	ChunkSize int `yaml:"chunk_size" mapstructure:"chunk_size"`
}

// OutputConfig controls rendering. Sorting and filtering are presentation
// concerns applied after grouping.
type OutputConfig struct {
	// Format is one of text, json, yaml.
	Format string `yaml:"format" mapstructure:"format"`

	// Sort is one of none (first-seen order), value, size.
	Sort string `yaml:"sort" mapstructure:"sort"`

	// MinWords drops groups with fewer words from the rendered report.
	MinWords int `yaml:"min_words" mapstructure:"min_words"`

	Verbose bool `yaml:"verbose" mapstructure:"verbose"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Method:                "hechrechi",
		CountNikkud:           false,
		DistinctVowelizations: true,
		Cache: CacheConfig{
			Enabled: false,
		},
		Concurrency: ConcurrencyConfig{
			Workers:   runtime.NumCPU(),
			ChunkSize: 512,
		},
		Output: OutputConfig{
			Format:   "text",
			Sort:     "none",
			MinWords: 1,
		},
	}
}
