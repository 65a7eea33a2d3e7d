package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tamirms/ouigen"
	ouierrors "github.com/tamirms/ouigen/errors"
)

func TestGenConfigDefaults(t *testing.T) {
	cfg, err := genConfigFromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, defaultInput, cfg.Input)
	assert.Equal(t, defaultGoOutput, cfg.Output)
	assert.Equal(t, ouigen.FormatGo, cfg.Format)
	assert.Equal(t, ouigen.DefaultChunkSize, cfg.ChunkSize)
	assert.Equal(t, 0, cfg.Workers)
}

func TestGenConfigHeaderOutputDefault(t *testing.T) {
	v := viper.New()
	v.Set("format", ouigen.FormatHeader)

	cfg, err := genConfigFromViper(v)
	require.NoError(t, err)
	assert.Equal(t, defaultHeaderOutput, cfg.Output)
}

func TestGenConfigExplicitOutputWins(t *testing.T) {
	v := viper.New()
	v.Set("format", ouigen.FormatHeader)
	v.Set("output", "firmware/prefixes.h")

	cfg, err := genConfigFromViper(v)
	require.NoError(t, err)
	assert.Equal(t, "firmware/prefixes.h", cfg.Output)
}

func TestGenConfigValidation(t *testing.T) {
	t.Run("unknown format", func(t *testing.T) {
		v := viper.New()
		v.Set("format", "yaml")
		_, err := genConfigFromViper(v)
		assert.ErrorIs(t, err, ouierrors.ErrUnknownFormat)
	})
	t.Run("negative chunk size", func(t *testing.T) {
		v := viper.New()
		v.Set("chunk_size", -5)
		_, err := genConfigFromViper(v)
		assert.ErrorIs(t, err, ouierrors.ErrChunkSizeInvalid)
	})
	t.Run("negative workers", func(t *testing.T) {
		v := viper.New()
		v.Set("workers", -1)
		_, err := genConfigFromViper(v)
		assert.ErrorIs(t, err, ouierrors.ErrWorkersInvalid)
	})
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ouigen.yaml")
	require.NoError(t, os.WriteFile(path, []byte("chunk_size: 100\nformat: header\n"), 0o644))

	v := viper.New()
	v.Set("config", path)
	require.NoError(t, loadConfig(v))

	cfg, err := genConfigFromViper(v)
	require.NoError(t, err)
	assert.Equal(t, 100, cfg.ChunkSize)
	assert.Equal(t, ouigen.FormatHeader, cfg.Format)
	assert.Equal(t, defaultHeaderOutput, cfg.Output)
}

func TestLoadConfigMissingFile(t *testing.T) {
	v := viper.New()
	v.Set("config", filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, loadConfig(v))
}
