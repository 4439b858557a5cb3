// Package config handles loading and managing StressLens configuration.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config is the top-level configuration for StressLens.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Model     ModelConfig     `yaml:"model"`
	Dataset   DatasetConfig   `yaml:"dataset"`
	Narrative NarrativeConfig `yaml:"narrative"`
	Similar   SimilarConfig   `yaml:"similar"`
}

// ServerConfig controls the HTTP daemon.
type ServerConfig struct {
	Port   string `yaml:"port"`
	APIKey string `yaml:"api_key"` // empty disables API-key auth
}

// ModelConfig locates the trained classifier artifact.
// Backend is one of "local", "s3", "gcs".
type ModelConfig struct {
	Backend   string `yaml:"backend"`
	Path      string `yaml:"path"`   // local file path, or object key for s3/gcs
	Bucket    string `yaml:"bucket"` // s3/gcs bucket
	Region    string `yaml:"region"`
	Endpoint  string `yaml:"endpoint"` // s3-compatible endpoint override
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
}

// DatasetConfig locates the historical case corpus. Source is a file path
// (.csv, .json, .db/.sqlite) or a postgres:// DSN; empty means no corpus.
type DatasetConfig struct {
	Source string `yaml:"source"`
}

// NarrativeConfig selects the narrative renderer. Provider is
// "deterministic" or "anthropic"; anthropic always falls back to the
// deterministic renderer on failure.
type NarrativeConfig struct {
	Provider        string `yaml:"provider"`
	AnthropicAPIKey string `yaml:"anthropic_api_key"`
	Model           string `yaml:"model"`
	TimeoutSeconds  int    `yaml:"timeout_seconds"`
}

// SimilarConfig controls the case similarity search.
type SimilarConfig struct {
	TopN int `yaml:"top_n"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{Port: "8080"},
		Model: ModelConfig{
			Backend: "local",
			Path:    "models/stress_model.json",
		},
		Narrative: NarrativeConfig{
			Provider:       "deterministic",
			TimeoutSeconds: 30,
		},
		Similar: SimilarConfig{TopN: 3},
	}
}

// Load reads a config file from the given path, then applies environment
// overrides. If the file does not exist, defaults plus env are returned.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.applyEnv()
	return cfg, nil
}

// applyEnv lets environment variables override file values, so deployments
// can keep secrets out of the config file.
func (c *Config) applyEnv() {
	envOverride(&c.Server.Port, "PORT")
	envOverride(&c.Server.APIKey, "STRESSLENS_API_KEY")
	envOverride(&c.Model.Backend, "MODEL_BACKEND")
	envOverride(&c.Model.Path, "MODEL_PATH")
	envOverride(&c.Model.Bucket, "MODEL_BUCKET")
	envOverride(&c.Model.Region, "AWS_REGION")
	envOverride(&c.Model.Endpoint, "S3_ENDPOINT")
	envOverride(&c.Model.AccessKey, "AWS_ACCESS_KEY_ID")
	envOverride(&c.Model.SecretKey, "AWS_SECRET_ACCESS_KEY")
	envOverride(&c.Dataset.Source, "DATASET_SOURCE")
	envOverride(&c.Narrative.Provider, "NARRATIVE_PROVIDER")
	envOverride(&c.Narrative.AnthropicAPIKey, "ANTHROPIC_API_KEY")
	envOverride(&c.Narrative.Model, "NARRATIVE_MODEL")
	envOverrideInt(&c.Narrative.TimeoutSeconds, "NARRATIVE_TIMEOUT_SECONDS")
	envOverrideInt(&c.Similar.TopN, "SIMILAR_TOP_N")
}

func envOverride(target *string, key string) {
	if v := os.Getenv(key); v != "" {
		*target = v
	}
}

func envOverrideInt(target *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*target = n
		}
	}
}
