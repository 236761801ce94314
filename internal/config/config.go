// Package config holds every tunable constant of the symptom engine and its
// collaborators, with file and environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/kuandriy/symptom-gate/internal/extract"
	"github.com/kuandriy/symptom-gate/internal/persist"
)

// DatasetConfig locates the source files.
type DatasetConfig struct {
	Symptoms     string `yaml:"symptoms" json:"symptoms"`
	Descriptions string `yaml:"descriptions" json:"descriptions"`
}

// SimilarityConfig controls how readily text is mapped onto a symptom.
type SimilarityConfig struct {
	// Threshold is the minimum cosine similarity for an extracted phrase to
	// count as a symptom. Raising it trades recall for precision.
	Threshold float64 `yaml:"threshold" json:"threshold"`
}

// LimitsConfig bounds result sizes.
type LimitsConfig struct {
	Related  int `yaml:"related" json:"related"`
	Similar  int `yaml:"similar" json:"similar"`
	Extract  int `yaml:"extract" json:"extract"`
	Diseases int `yaml:"diseases" json:"diseases"`
}

// ExtractConfig shapes candidate phrase generation.
type ExtractConfig struct {
	WindowBefore int      `yaml:"windowBefore" json:"windowBefore"`
	WindowAfter  int      `yaml:"windowAfter" json:"windowAfter"`
	MinTokens    int      `yaml:"minTokens" json:"minTokens"`
	MinChars     int      `yaml:"minChars" json:"minChars"`
	Keywords     []string `yaml:"keywords" json:"keywords"`
}

// ServerConfig configures the HTTP process.
type ServerConfig struct {
	Addr         string `yaml:"addr" json:"addr"`
	Mode         string `yaml:"mode" json:"mode"`
	MaxBodyBytes int64  `yaml:"maxBodyBytes" json:"maxBodyBytes"`
}

// LogConfig sets the structured log level.
type LogConfig struct {
	Level string `yaml:"level" json:"level"`
}

// Config is the full configuration.
type Config struct {
	Dataset    DatasetConfig    `yaml:"dataset" json:"dataset"`
	Similarity SimilarityConfig `yaml:"similarity" json:"similarity"`
	Limits     LimitsConfig     `yaml:"limits" json:"limits"`
	Extract    ExtractConfig    `yaml:"extract" json:"extract"`
	Server     ServerConfig     `yaml:"server" json:"server"`
	Log        LogConfig        `yaml:"log" json:"log"`
}

// Default returns sensible defaults.
func Default() Config {
	return Config{
		Dataset: DatasetConfig{
			Symptoms:     filepath.Join("dataset", "dataset.csv"),
			Descriptions: filepath.Join("dataset", "diseases.csv"),
		},
		Similarity: SimilarityConfig{Threshold: 0.3},
		Limits: LimitsConfig{
			Related:  5,
			Similar:  5,
			Extract:  7,
			Diseases: 8,
		},
		Extract: ExtractConfig{
			WindowBefore: 3,
			WindowAfter:  5,
			MinTokens:    2,
			MinChars:     5,
			Keywords:     append([]string(nil), extract.DefaultKeywords...),
		},
		Server: ServerConfig{
			Addr:         ":5000",
			Mode:         "release",
			MaxBodyBytes: 1 << 20,
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load reads a configuration file over the defaults. Only keys present in the
// file override a default, so a file may set a value to zero on purpose.
// YAML is used for .yaml and .yml files, JSON otherwise. A missing file
// yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return cfg, nil
			}
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Default(), fmt.Errorf("parse config %s: %w", filepath.Base(path), err)
		}
	default:
		if err := persist.Load(path, &cfg); err != nil {
			return Default(), fmt.Errorf("parse config %s: %w", filepath.Base(path), err)
		}
	}
	return cfg, nil
}

// Resolve builds the effective configuration: a .env file is loaded into the
// environment if present, then the config file (path, or SYMPTOM_CONFIG when
// path is empty), then environment overrides.
func Resolve(path string) (Config, error) {
	_ = godotenv.Load()

	if path == "" {
		path = os.Getenv("SYMPTOM_CONFIG")
	}
	cfg, err := Load(path)
	if err != nil {
		return cfg, err
	}
	ApplyEnv(&cfg)
	return cfg, cfg.Validate()
}

// ApplyEnv overrides cfg from environment variables that are set.
func ApplyEnv(cfg *Config) {
	if v := os.Getenv("SYMPTOM_DATASET"); v != "" {
		cfg.Dataset.Symptoms = v
	}
	if v := os.Getenv("SYMPTOM_DESCRIPTIONS"); v != "" {
		cfg.Dataset.Descriptions = v
	}
	if v := os.Getenv("PORT"); v != "" {
		cfg.Server.Addr = ":" + v
	}
	if v := os.Getenv("GIN_MODE"); v != "" {
		cfg.Server.Mode = v
	}
	if v := os.Getenv("SYMPTOM_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
}

// Validate rejects values the engine cannot work with.
func (c Config) Validate() error {
	var errs []error
	if c.Dataset.Symptoms == "" {
		errs = append(errs, errors.New("dataset.symptoms is required"))
	}
	if c.Similarity.Threshold <= 0 || c.Similarity.Threshold > 1 {
		errs = append(errs, fmt.Errorf("similarity.threshold must be in (0,1], got %g", c.Similarity.Threshold))
	}
	limits := []struct {
		name string
		v    int
	}{
		{"limits.related", c.Limits.Related},
		{"limits.similar", c.Limits.Similar},
		{"limits.extract", c.Limits.Extract},
		{"limits.diseases", c.Limits.Diseases},
	}
	for _, l := range limits {
		if l.v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %d", l.name, l.v))
		}
	}
	extractInts := []struct {
		name string
		v    int
	}{
		{"extract.windowBefore", c.Extract.WindowBefore},
		{"extract.windowAfter", c.Extract.WindowAfter},
		{"extract.minTokens", c.Extract.MinTokens},
		{"extract.minChars", c.Extract.MinChars},
	}
	for _, x := range extractInts {
		if x.v < 0 {
			errs = append(errs, fmt.Errorf("%s must not be negative, got %d", x.name, x.v))
		}
	}
	// regexp repetition counts are capped at 1000
	if c.Extract.WindowBefore > 1000 || c.Extract.WindowAfter > 1000 {
		errs = append(errs, errors.New("extract windows must not exceed 1000 words"))
	}
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		errs = append(errs, fmt.Errorf("server.mode must be debug, release or test, got %q", c.Server.Mode))
	}
	if c.Server.MaxBodyBytes <= 0 {
		errs = append(errs, fmt.Errorf("server.maxBodyBytes must be positive, got %d", c.Server.MaxBodyBytes))
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Extraction returns the text extractor parameters.
func (c Config) Extraction() extract.Config {
	return extract.Config{
		Threshold:    c.Similarity.Threshold,
		WindowBefore: c.Extract.WindowBefore,
		WindowAfter:  c.Extract.WindowAfter,
		MinTokens:    c.Extract.MinTokens,
		MinChars:     c.Extract.MinChars,
		Keywords:     c.Extract.Keywords,
	}
}
