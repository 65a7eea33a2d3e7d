package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/viper"

	"github.com/tamirms/ouigen"
	ouierrors "github.com/tamirms/ouigen/errors"
)

func runCheck(v *viper.Viper) error {
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

	artifact, _, err := buildArtifact(cfg)
	if err != nil {
		return err
	}

	existing, err := os.ReadFile(cfg.Output)
	if err != nil {
		return fmt.Errorf("%w: %v", ouierrors.ErrStaleArtifact, err)
	}

	if ouigen.Fingerprint(existing) != ouigen.Fingerprint(artifact) {
		color.Red("Stale: %s (run ouigen generate)", cfg.Output)
		return fmt.Errorf("%w: %s", ouierrors.ErrStaleArtifact, cfg.Output)
	}

	color.Green("Up to date: %s", cfg.Output)
	return nil
}
