package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"edgeneuro/internal/domain"
)

// DatasetConfig holds the generation parameters.
type DatasetConfig struct {
	SamplesPerIntent     int     `yaml:"samples_per_intent"`
	LowercaseProbability float64 `yaml:"lowercase_probability"`
	Seed                 uint64  `yaml:"seed"` // 0 = derive from wall clock
	Output               string  `yaml:"output"`
	SQLitePath           string  `yaml:"sqlite_path,omitempty"` // empty = no SQLite sink
}

// LoggerConfig holds structured-logging settings.
type LoggerConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // "text" or "json"
	Output string `yaml:"output"` // "stdout", "stderr", or a file path
}

// TracerConfig holds OpenTelemetry tracing settings.
type TracerConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Exporter string `yaml:"exporter"` // "stdout" or "noop"
}

// Config is the top-level application configuration.
type Config struct {
	Dataset   DatasetConfig  `yaml:"dataset"`
	Catalog   domain.Catalog `yaml:"catalog"`
	Templates []string       `yaml:"templates"`
	Logger    LoggerConfig   `yaml:"logger"`
	Tracer    TracerConfig   `yaml:"tracer"`
}

// Defaults returns a Config carrying the built-in agent catalog and
// utterance templates.
func Defaults() *Config {
	return &Config{
		Dataset: DatasetConfig{
			SamplesPerIntent:     50,
			LowercaseProbability: 0.1,
			Output:               "edgeneuro_training_data.jsonl",
		},
		Catalog: domain.Catalog{
			{AgentID: "agent_hr", Intents: []string{"payroll issue", "holiday request", "benefits question", "onboarding"}},
			{AgentID: "agent_it", Intents: []string{"vpn access", "password reset", "laptop repair", "software license"}},
			{AgentID: "agent_sales", Intents: []string{"customer lead", "sales report", "crm update", "contract renewal"}},
			{AgentID: "agent_data", Intents: []string{"sql query", "dashboard access", "data warehouse", "snowflake"}},
		},
		Templates: []string{
			"I need help with {intent}",
			"Can you check my {intent}?",
			"Who handles {intent}?",
			"It seems my {intent} is broken",
			"Quick question about {intent}",
		},
		Logger: LoggerConfig{
			Level:  "info",
			Format: "text",
			Output: "stderr",
		},
		Tracer: TracerConfig{
			Enabled:  false,
			Exporter: "noop",
		},
	}
}

// Load reads a YAML config file and applies env var overrides. A missing
// file is not an error: the built-in defaults are used.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			ApplyEnvOverrides(cfg)
			if err := Validate(cfg); err != nil {
				return nil, err
			}
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	ApplyEnvOverrides(cfg)

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnvOverrides maps EDGENEURO_* env vars to config fields.
func ApplyEnvOverrides(cfg *Config) {
	if v := os.Getenv("EDGENEURO_DATASET_OUTPUT"); v != "" {
		cfg.Dataset.Output = v
	}
	if v := os.Getenv("EDGENEURO_DATASET_SAMPLES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Dataset.SamplesPerIntent = n
		}
	}
	if v := os.Getenv("EDGENEURO_DATASET_SEED"); v != "" {
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			cfg.Dataset.Seed = n
		}
	}
	if v := os.Getenv("EDGENEURO_DATASET_SQLITE"); v != "" {
		cfg.Dataset.SQLitePath = v
	}
	if v := os.Getenv("EDGENEURO_LOGGER_LEVEL"); v != "" {
		cfg.Logger.Level = v
	}
	if v := os.Getenv("EDGENEURO_LOGGER_FORMAT"); v != "" {
		cfg.Logger.Format = v
	}
	if v := os.Getenv("EDGENEURO_TRACER_ENABLED"); v == "true" {
		cfg.Tracer.Enabled = true
		if cfg.Tracer.Exporter == "" || cfg.Tracer.Exporter == "noop" {
			cfg.Tracer.Exporter = "stdout"
		}
	}
}
