package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/tamirms/ouigen"
	ouierrors "github.com/tamirms/ouigen/errors"
)

const (
	defaultInput        = "mac-prefixes"
	defaultGoOutput     = "vendordb/vendordb.go"
	defaultHeaderOutput = "src/macprefixes.h"
)

// genConfig is the resolved configuration shared by generate and check.
type genConfig struct {
	Input     string
	Output    string
	Format    string
	Package   string
	ChunkSize int
	Workers   int
}

// loadConfig merges an optional config file and OUIGEN_* environment
// variables into v on top of the bound flags.
func loadConfig(v *viper.Viper) error {
	if configFile := v.GetString("config"); configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config file: %w", err)
		}
	}
	v.SetEnvPrefix("OUIGEN")
	v.AutomaticEnv()
	return nil
}

// genConfigFromViper resolves and validates the generate/check configuration.
// The output path defaults by format: vendordb/vendordb.go for Go source,
// src/macprefixes.h for the C++ header.
func genConfigFromViper(v *viper.Viper) (genConfig, error) {
	cfg := genConfig{
		Input:     v.GetString("input"),
		Output:    v.GetString("output"),
		Format:    v.GetString("format"),
		Package:   v.GetString("package"),
		ChunkSize: v.GetInt("chunk_size"),
		Workers:   v.GetInt("workers"),
	}
	if cfg.Input == "" {
		cfg.Input = defaultInput
	}
	if cfg.Format == "" {
		cfg.Format = ouigen.FormatGo
	}
	switch cfg.Format {
	case ouigen.FormatGo:
		if cfg.Output == "" {
			cfg.Output = defaultGoOutput
		}
	case ouigen.FormatHeader:
		if cfg.Output == "" {
			cfg.Output = defaultHeaderOutput
		}
	default:
		return genConfig{}, fmt.Errorf("%w: %q", ouierrors.ErrUnknownFormat, cfg.Format)
	}
	if cfg.ChunkSize == 0 {
		cfg.ChunkSize = ouigen.DefaultChunkSize
	}
	if cfg.ChunkSize < 0 {
		return genConfig{}, fmt.Errorf("%w: %d", ouierrors.ErrChunkSizeInvalid, cfg.ChunkSize)
	}
	if cfg.Workers < 0 {
		return genConfig{}, fmt.Errorf("%w: %d", ouierrors.ErrWorkersInvalid, cfg.Workers)
	}
	return cfg, nil
}

// setupLogging configures the global logrus logger from the resolved flags.
func setupLogging(v *viper.Viper) error {
	level, err := logrus.ParseLevel(v.GetString("log_level"))
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	logrus.SetLevel(level)
	if v.GetBool("json_logs") {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return nil
}
