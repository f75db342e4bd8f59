package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"edgeneuro/internal/adapter/sink"
	"edgeneuro/internal/domain"
	"edgeneuro/internal/infra/config"
	"edgeneuro/internal/infra/logger"
	"edgeneuro/internal/infra/tracer"
	"edgeneuro/internal/usecase"
)

func main() {
	// Handle help flag first
	if len(os.Args) >= 2 {
		switch os.Args[1] {
		case "--help", "-h", "help":
			showUsage()
			return
		}
	}

	if len(os.Args) < 2 || strings.HasPrefix(os.Args[1], "-") {
		if err := run(); err != nil {
			fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
			os.Exit(1)
		}
		return
	}

	switch os.Args[1] {
	case "generate":
		if err := run(); err != nil {
			fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
			os.Exit(1)
		}
	case "doctor":
		if err := runDoctor(); err != nil {
			fmt.Fprintf(os.Stderr, "doctor: %v\n", err)
			os.Exit(1)
		}
	case "inspect":
		if err := runInspect(); err != nil {
			fmt.Fprintf(os.Stderr, "inspect: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\nRun 'edgeneuro-dataset --help' for usage information.\n", os.Args[1])
		os.Exit(1)
	}
}

func showUsage() {
	fmt.Println(`edgeneuro-dataset - synthetic training data for the EdgeNeuro intent router

USAGE:
    edgeneuro-dataset [COMMAND] [FLAGS]

COMMANDS:
    generate          Generate the dataset and write it out (default)
    doctor            Validate the config and show the generation plan
    inspect <file>    Verify a JSONL dataset against the catalog

FLAGS:
    --config PATH     Config file (default: config.yaml, env: EDGENEURO_CONFIG)
    --out PATH        Output file (default: edgeneuro_training_data.jsonl)
    --samples N       Samples per intent (default: 50)
    --seed N          Random seed; same seed reproduces the dataset exactly
    --sqlite PATH     Also store the dataset in a SQLite database`)
}

// cliFlags holds optional CLI flags overriding the config file.
type cliFlags struct {
	Output  string
	Samples string
	Seed    string
	SQLite  string
}

// parseFlags extracts --out, --samples, --seed, --sqlite from args.
func parseFlags(args []string) cliFlags {
	var flags cliFlags
	for i := 0; i < len(args); i++ {
		switch {
		case args[i] == "--out" && i+1 < len(args):
			flags.Output = args[i+1]
			i++
		case strings.HasPrefix(args[i], "--out="):
			flags.Output = strings.TrimPrefix(args[i], "--out=")
		case args[i] == "--samples" && i+1 < len(args):
			flags.Samples = args[i+1]
			i++
		case strings.HasPrefix(args[i], "--samples="):
			flags.Samples = strings.TrimPrefix(args[i], "--samples=")
		case args[i] == "--seed" && i+1 < len(args):
			flags.Seed = args[i+1]
			i++
		case strings.HasPrefix(args[i], "--seed="):
			flags.Seed = strings.TrimPrefix(args[i], "--seed=")
		case args[i] == "--sqlite" && i+1 < len(args):
			flags.SQLite = args[i+1]
			i++
		case strings.HasPrefix(args[i], "--sqlite="):
			flags.SQLite = strings.TrimPrefix(args[i], "--sqlite=")
		}
	}
	return flags
}

// applyFlags overlays CLI flags onto the loaded config.
func applyFlags(cfg *config.Config, flags cliFlags) error {
	if flags.Output != "" {
		cfg.Dataset.Output = flags.Output
	}
	if flags.SQLite != "" {
		cfg.Dataset.SQLitePath = flags.SQLite
	}
	if flags.Samples != "" {
		n, err := strconv.Atoi(flags.Samples)
		if err != nil {
			return fmt.Errorf("--samples: %w", err)
		}
		cfg.Dataset.SamplesPerIntent = n
	}
	if flags.Seed != "" {
		n, err := strconv.ParseUint(flags.Seed, 10, 64)
		if err != nil {
			return fmt.Errorf("--seed: %w", err)
		}
		cfg.Dataset.Seed = n
	}
	return nil
}

func configPath() string {
	// Check --config flag in os.Args.
	for i, arg := range os.Args {
		if arg == "--config" && i+1 < len(os.Args) {
			return os.Args[i+1]
		}
		if strings.HasPrefix(arg, "--config=") {
			return strings.TrimPrefix(arg, "--config=")
		}
	}
	if p := os.Getenv("EDGENEURO_CONFIG"); p != "" {
		return p
	}
	return "config.yaml"
}

func run() error {
	// 1. Config
	cfg, err := config.Load(configPath())
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := applyFlags(cfg, parseFlags(os.Args[1:])); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	// 2. Logger & Tracer
	log, logCloser, err := logger.New(cfg.Logger)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer logCloser()

	ctx := context.Background()
	tracerShutdown, err := tracer.Setup(ctx, cfg.Tracer)
	if err != nil {
		return fmt.Errorf("tracer: %w", err)
	}
	defer tracerShutdown(ctx)

	// 3. Generator
	runID := usecase.NewRunID()
	gen, err := usecase.NewGenerator(usecase.GeneratorOptions{
		Catalog:              cfg.Catalog,
		Templates:            cfg.Templates,
		SamplesPerIntent:     cfg.Dataset.SamplesPerIntent,
		LowercaseProbability: cfg.Dataset.LowercaseProbability,
	}, usecase.NewRand(cfg.Dataset.Seed), log)
	if err != nil {
		return fmt.Errorf("generator: %w", err)
	}

	log.Info("generating synthetic routing dataset",
		"run_id", runID,
		"agents", len(cfg.Catalog),
		"intents", cfg.Catalog.NumIntents(),
		"samples_per_intent", cfg.Dataset.SamplesPerIntent)

	// 4. Build
	records, err := gen.Build(ctx)
	if err != nil {
		return fmt.Errorf("build dataset: %w", err)
	}

	// 5. Sinks
	sinks := []domain.DatasetSink{sink.NewJSONLSink(cfg.Dataset.Output)}
	if cfg.Dataset.SQLitePath != "" {
		sq, err := sink.NewSQLiteSink(cfg.Dataset.SQLitePath)
		if err != nil {
			return fmt.Errorf("sqlite sink: %w", err)
		}
		defer sq.Close()
		sinks = append(sinks, sq)
	}

	if err := persist(ctx, sinks, runID, records); err != nil {
		return err
	}

	log.Info("dataset written", "run_id", runID, "records", len(records), "output", cfg.Dataset.Output)
	fmt.Printf("Generated %d examples in %s (run %s)\n", len(records), cfg.Dataset.Output, runID)
	return nil
}

// persist writes the dataset through every configured sink. Any failure is
// fatal to the run; nothing is retried.
func persist(ctx context.Context, sinks []domain.DatasetSink, runID string, records []domain.TrainingRecord) error {
	ctx, span := tracer.StartSpan(ctx, "dataset.persist")
	defer span.End()

	for _, s := range sinks {
		if _, err := s.Write(ctx, runID, records); err != nil {
			tracer.RecordError(span, err)
			return fmt.Errorf("persist dataset: %w", err)
		}
	}
	span.SetAttributes(tracer.IntAttr("dataset.records", len(records)))
	return nil
}
