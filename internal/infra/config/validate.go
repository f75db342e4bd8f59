package config

import (
	"fmt"
	"strings"

	"edgeneuro/internal/domain"
)

// ValidationError accumulates config validation errors.
type ValidationError struct {
	Errors []string
}

func (v *ValidationError) Error() string {
	return "config validation failed:\n  - " + strings.Join(v.Errors, "\n  - ")
}

// HasErrors reports whether any validation errors have been recorded.
func (v *ValidationError) HasErrors() bool {
	return len(v.Errors) > 0
}

// Add records a formatted validation error.
func (v *ValidationError) Add(format string, args ...interface{}) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}

// Validate checks cfg for structural correctness. It returns a *ValidationError
// when one or more problems are found, allowing callers to inspect all issues.
func Validate(cfg *Config) error {
	ve := &ValidationError{}
	validateDataset(cfg, ve)
	validateCatalog(cfg, ve)
	validateTemplates(cfg, ve)
	validateLogger(cfg, ve)
	validateTracer(cfg, ve)
	if ve.HasErrors() {
		return ve
	}
	return nil
}

func validateDataset(cfg *Config, ve *ValidationError) {
	if cfg.Dataset.SamplesPerIntent < 1 {
		ve.Add("dataset.samples_per_intent must be >= 1")
	}
	if p := cfg.Dataset.LowercaseProbability; p < 0 || p > 1 {
		ve.Add("dataset.lowercase_probability must be within [0, 1], got %g", p)
	}
	if cfg.Dataset.Output == "" {
		ve.Add("dataset.output must not be empty")
	}
}

func validateCatalog(cfg *Config, ve *ValidationError) {
	if len(cfg.Catalog) == 0 {
		ve.Add("catalog must define at least one agent")
		return
	}
	seen := make(map[string]bool, len(cfg.Catalog))
	for i, e := range cfg.Catalog {
		if e.AgentID == "" {
			ve.Add("catalog[%d].agent must not be empty", i)
			continue
		}
		if seen[e.AgentID] {
			ve.Add("catalog agent %q is listed twice", e.AgentID)
		}
		seen[e.AgentID] = true
		if len(e.Intents) == 0 {
			ve.Add("catalog agent %q has no intents", e.AgentID)
		}
		for j, intent := range e.Intents {
			if strings.TrimSpace(intent) == "" {
				ve.Add("catalog agent %q intent %d is empty", e.AgentID, j)
			}
		}
	}
}

func validateTemplates(cfg *Config, ve *ValidationError) {
	if len(cfg.Templates) == 0 {
		ve.Add("templates must define at least one entry")
		return
	}
	for i, t := range cfg.Templates {
		if !domain.Template(t).Valid() {
			ve.Add("templates[%d] must contain exactly one %s placeholder: %q", i, domain.IntentPlaceholder, t)
		}
	}
}

func validateLogger(cfg *Config, ve *ValidationError) {
	switch strings.ToLower(cfg.Logger.Format) {
	case "", "text", "json":
	default:
		ve.Add("logger.format must be \"text\" or \"json\", got %q", cfg.Logger.Format)
	}
}

func validateTracer(cfg *Config, ve *ValidationError) {
	if !cfg.Tracer.Enabled {
		return
	}
	switch cfg.Tracer.Exporter {
	case "", "stdout", "noop":
	default:
		ve.Add("tracer.exporter must be \"stdout\" or \"noop\", got %q", cfg.Tracer.Exporter)
	}
}
