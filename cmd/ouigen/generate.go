package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/tamirms/ouigen"
)

// buildArtifact runs the shared generate/check pipeline: read the registry,
// build the table, render the artifact.
func buildArtifact(cfg genConfig) ([]byte, ouigen.Stats, error) {
	records, err := ouigen.ReadFile(cfg.Input)
	if err != nil {
		return nil, ouigen.Stats{}, err
	}
	logrus.WithFields(logrus.Fields{
		"input":   cfg.Input,
		"records": len(records),
	}).Debug("registry parsed")

	table, err := ouigen.Build(records,
		ouigen.WithChunkSize(cfg.ChunkSize),
		ouigen.WithWorkers(cfg.Workers),
	)
	if err != nil {
		return nil, ouigen.Stats{}, err
	}

	artifact, err := ouigen.Generate(table, cfg.Format, ouigen.GenOptions{
		PackageName: cfg.Package,
		Source:      cfg.Input,
	})
	if err != nil {
		return nil, ouigen.Stats{}, err
	}
	return artifact, table.Stats(), nil
}

func runGenerate(v *viper.Viper) error {
	if err := loadConfig(v); err != nil {
		return err
	}
	if err := setupLogging(v); err != nil {
		return err
	}
	cfg, err := genConfigFromViper(v)
	if err != nil {
		return err
	}

	artifact, stats, err := buildArtifact(cfg)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(cfg.Output); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	if err := os.WriteFile(cfg.Output, artifact, 0o644); err != nil {
		return fmt.Errorf("write artifact: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"dropped_malformed": stats.DroppedMalformed,
		"dropped_unknown":   stats.DroppedUnknown,
		"fingerprint":       fmt.Sprintf("%016x", ouigen.Fingerprint(artifact)),
	}).Debug("artifact written")

	color.Green("Generated: %s", cfg.Output)
	fmt.Printf("Entries:   %d\n", stats.Entries)
	fmt.Printf("Chunks:    %d (chunk size %d)\n", stats.Chunks, stats.ChunkSize)
	return nil
}
