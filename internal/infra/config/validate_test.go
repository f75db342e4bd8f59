package config

import (
	"strings"
	"testing"
)

func TestValidateCollectsAllErrors(t *testing.T) {
	cfg := Defaults()
	cfg.Dataset.SamplesPerIntent = 0
	cfg.Dataset.LowercaseProbability = 1.5
	cfg.Templates = []string{"broken template"}

	err := Validate(cfg)
	if err == nil {
		t.Fatal("Validate accepted an invalid config")
	}
	ve, ok := err.(*ValidationError)
	if !ok {
		t.Fatalf("error type = %T, want *ValidationError", err)
	}
	if len(ve.Errors) != 3 {
		t.Errorf("collected %d errors, want 3: %v", len(ve.Errors), ve.Errors)
	}
}

func TestValidateRejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{
			name:   "zero samples",
			mutate: func(c *Config) { c.Dataset.SamplesPerIntent = 0 },
			want:   "samples_per_intent",
		},
		{
			name:   "negative probability",
			mutate: func(c *Config) { c.Dataset.LowercaseProbability = -0.1 },
			want:   "lowercase_probability",
		},
		{
			name:   "empty output",
			mutate: func(c *Config) { c.Dataset.Output = "" },
			want:   "dataset.output",
		},
		{
			name:   "empty catalog",
			mutate: func(c *Config) { c.Catalog = nil },
			want:   "catalog",
		},
		{
			name: "duplicate agent",
			mutate: func(c *Config) {
				c.Catalog = append(c.Catalog, c.Catalog[0])
			},
			want: "listed twice",
		},
		{
			name: "agent without intents",
			mutate: func(c *Config) {
				c.Catalog[0].Intents = nil
			},
			want: "no intents",
		},
		{
			name:   "no templates",
			mutate: func(c *Config) { c.Templates = nil },
			want:   "templates",
		},
		{
			name:   "double placeholder",
			mutate: func(c *Config) { c.Templates = []string{"{intent} or {intent}"} },
			want:   "exactly one",
		},
		{
			name:   "bad logger format",
			mutate: func(c *Config) { c.Logger.Format = "xml" },
			want:   "logger.format",
		},
		{
			name: "bad tracer exporter",
			mutate: func(c *Config) {
				c.Tracer.Enabled = true
				c.Tracer.Exporter = "jaeger"
			},
			want: "tracer.exporter",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(cfg)
			err := Validate(cfg)
			if err == nil {
				t.Fatal("Validate accepted an invalid config")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}
