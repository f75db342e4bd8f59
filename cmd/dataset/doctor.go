package main

import (
	"fmt"
	"os"
	"strings"

	"edgeneuro/internal/infra/config"
)

// runDoctor loads the config and reports the generation plan, failing when
// the config does not validate.
func runDoctor() error {
	cfgPath := configPath()

	fmt.Println("edgeneuro-dataset doctor")
	fmt.Println(strings.Repeat("=", 50))
	fmt.Println()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Printf("[FAIL] Config (%s)\n       %v\n", cfgPath, err)
		return fmt.Errorf("config invalid")
	}
	fmt.Printf("[PASS] Config: %s\n", describeConfigSource(cfgPath))

	fmt.Printf("[PASS] Catalog: %d agents, %d intents\n", len(cfg.Catalog), cfg.Catalog.NumIntents())
	for _, e := range cfg.Catalog {
		fmt.Printf("       %-14s %s\n", e.AgentID, strings.Join(e.Intents, ", "))
	}

	fmt.Printf("[PASS] Templates: %d\n", len(cfg.Templates))

	planned := cfg.Catalog.NumIntents() * cfg.Dataset.SamplesPerIntent
	fmt.Printf("[PASS] Plan: %d records (%d per intent) -> %s\n",
		planned, cfg.Dataset.SamplesPerIntent, cfg.Dataset.Output)
	if cfg.Dataset.SQLitePath != "" {
		fmt.Printf("[PASS] SQLite sink: %s\n", cfg.Dataset.SQLitePath)
	}
	if cfg.Dataset.Seed != 0 {
		fmt.Printf("[PASS] Seed: %d (runs are reproducible)\n", cfg.Dataset.Seed)
	}
	return nil
}

func describeConfigSource(path string) string {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fmt.Sprintf("built-in defaults (%s not found)", path)
	}
	return path
}
