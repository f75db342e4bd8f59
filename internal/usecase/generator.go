package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"
	"time"

	"edgeneuro/internal/domain"
	"edgeneuro/internal/infra/tracer"
)

// GeneratorOptions bundles the generation parameters.
type GeneratorOptions struct {
	Catalog              domain.Catalog
	Templates            []string
	SamplesPerIntent     int
	LowercaseProbability float64
}

// Generator produces the synthetic routing dataset. All randomness (template
// choice, lowercase flip, final shuffle) flows through the injected rng, so
// a seeded source reproduces a dataset exactly.
type Generator struct {
	catalog          domain.Catalog
	templates        []domain.Template
	samplesPerIntent int
	lowercaseProb    float64
	rng              *rand.Rand
	logger           *slog.Logger
}

// NewGenerator validates opts and returns a Generator drawing from rng.
func NewGenerator(opts GeneratorOptions, rng *rand.Rand, logger *slog.Logger) (*Generator, error) {
	if len(opts.Catalog) == 0 {
		return nil, domain.ErrEmptyCatalog
	}
	if len(opts.Templates) == 0 {
		return nil, domain.ErrEmptyTemplates
	}
	templates := make([]domain.Template, 0, len(opts.Templates))
	for _, t := range opts.Templates {
		tpl := domain.Template(t)
		if !tpl.Valid() {
			return nil, fmt.Errorf("%w: %q", domain.ErrBadTemplate, t)
		}
		templates = append(templates, tpl)
	}
	if opts.SamplesPerIntent < 1 {
		return nil, fmt.Errorf("samples per intent must be >= 1, got %d", opts.SamplesPerIntent)
	}
	if p := opts.LowercaseProbability; p < 0 || p > 1 {
		return nil, fmt.Errorf("lowercase probability must be within [0, 1], got %g", p)
	}

	return &Generator{
		catalog:          opts.Catalog,
		templates:        templates,
		samplesPerIntent: opts.SamplesPerIntent,
		lowercaseProb:    opts.LowercaseProbability,
		rng:              rng,
		logger:           logger,
	}, nil
}

// Sample produces one labeled record for the (agentID, intent) pair: a
// uniformly chosen template filled with the intent, lowercased with the
// configured probability.
func (g *Generator) Sample(agentID, intent string) (domain.TrainingRecord, error) {
	tpl := g.templates[g.rng.IntN(len(g.templates))]
	utterance := tpl.Fill(intent)
	if g.rng.Float64() < g.lowercaseProb {
		utterance = strings.ToLower(utterance)
	}
	return domain.NewTrainingRecord(agentID, intent, utterance)
}

// Build generates the full dataset in catalog order (agents, then intents,
// then repetitions) and applies a uniform shuffle before returning it.
func (g *Generator) Build(ctx context.Context) ([]domain.TrainingRecord, error) {
	_, span := tracer.StartSpan(ctx, "dataset.build")
	defer span.End()

	records := make([]domain.TrainingRecord, 0, g.catalog.NumIntents()*g.samplesPerIntent)
	for _, entry := range g.catalog {
		for _, intent := range entry.Intents {
			for i := 0; i < g.samplesPerIntent; i++ {
				rec, err := g.Sample(entry.AgentID, intent)
				if err != nil {
					return nil, fmt.Errorf("sample %s/%s: %w", entry.AgentID, intent, err)
				}
				records = append(records, rec)
			}
		}
		g.logger.Debug("agent samples generated",
			"agent", entry.AgentID,
			"intents", len(entry.Intents),
			"samples", len(entry.Intents)*g.samplesPerIntent)
	}

	g.rng.Shuffle(len(records), func(i, j int) {
		records[i], records[j] = records[j], records[i]
	})

	span.SetAttributes(tracer.IntAttr("dataset.records", len(records)))
	return records, nil
}

// NewRand returns the run's random source. Seed 0 picks a wall-clock seed;
// any other value reproduces a previous run exactly.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed))
}
