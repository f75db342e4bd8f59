package main

import (
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"

	"edgeneuro/internal/adapter/sink"
	"edgeneuro/internal/infra/config"
	"edgeneuro/internal/usecase"
)

// runInspect reads a JSONL dataset back and verifies every record against
// the catalog invariants, then prints the label distribution.
func runInspect() error {
	var path string
	args := os.Args[2:]
	for i := 0; i < len(args); i++ {
		if args[i] == "--config" {
			i++ // skip the flag value
			continue
		}
		if strings.HasPrefix(args[i], "-") {
			continue
		}
		path = args[i]
		break
	}
	if path == "" {
		return fmt.Errorf("usage: edgeneuro-dataset inspect <dataset.jsonl>")
	}

	cfg, err := config.Load(configPath())
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	records, err := sink.ReadJSONL(path)
	if err != nil {
		return fmt.Errorf("read dataset: %w", err)
	}

	stats, err := usecase.Verify(records, cfg.Catalog)
	if err != nil {
		return err
	}

	fmt.Printf("%s: %d records, all valid\n", path, stats.Records)
	for _, agent := range slices.Sorted(maps.Keys(stats.PerAgent)) {
		fmt.Printf("  %-14s %d\n", agent, stats.PerAgent[agent])
	}
	return nil
}
