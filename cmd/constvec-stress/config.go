package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/momentics/constvec/api"
)

// stressConfig drives one stress run.
type stressConfig struct {
	Capacity  int
	Pushers   int
	PerPusher int
	Readers   int
	Rounds    int
	Pin       bool
	LogLevel  string
}

func defaultStressConfig() stressConfig {
	return stressConfig{
		Capacity:  1 << 16,
		Pushers:   8,
		PerPusher: 1 << 13,
		Readers:   2,
		Rounds:    1,
		Pin:       false,
		LogLevel:  "info",
	}
}

// fileConfig is the on-disk layout shared by TOML and YAML files.
// Pointer fields distinguish "absent" from zero values.
type fileConfig struct {
	Capacity  *int    `toml:"capacity" yaml:"capacity"`
	Pushers   *int    `toml:"pushers" yaml:"pushers"`
	PerPusher *int    `toml:"per_pusher" yaml:"per_pusher"`
	Readers   *int    `toml:"readers" yaml:"readers"`
	Rounds    *int    `toml:"rounds" yaml:"rounds"`
	Pin       *bool   `toml:"pin" yaml:"pin"`
	LogLevel  *string `toml:"log_level" yaml:"log_level"`
}

// loadStressConfig reads a .toml, .yaml or .yml file over the defaults.
func loadStressConfig(path string) (stressConfig, error) {
	cfg := defaultStressConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return stressConfig{}, fmt.Errorf("load stress config: %w", err)
	}

	var raw fileConfig
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		meta, err := toml.Decode(string(data), &raw)
		if err != nil {
			return stressConfig{}, fmt.Errorf("load stress config: %w", err)
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			return stressConfig{}, fmt.Errorf("load stress config: unknown key %q: %w", undecoded[0].String(), api.ErrInvalidArgument)
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
			return stressConfig{}, fmt.Errorf("load stress config: %w", err)
		}
	default:
		return stressConfig{}, fmt.Errorf("load stress config: unsupported extension %q: %w", ext, api.ErrInvalidArgument)
	}

	raw.apply(&cfg)
	if err := cfg.validate(); err != nil {
		return stressConfig{}, err
	}
	return cfg, nil
}

func (raw fileConfig) apply(cfg *stressConfig) {
	if raw.Capacity != nil {
		cfg.Capacity = *raw.Capacity
	}
	if raw.Pushers != nil {
		cfg.Pushers = *raw.Pushers
	}
	if raw.PerPusher != nil {
		cfg.PerPusher = *raw.PerPusher
	}
	if raw.Readers != nil {
		cfg.Readers = *raw.Readers
	}
	if raw.Rounds != nil {
		cfg.Rounds = *raw.Rounds
	}
	if raw.Pin != nil {
		cfg.Pin = *raw.Pin
	}
	if raw.LogLevel != nil {
		cfg.LogLevel = strings.TrimSpace(*raw.LogLevel)
	}
}

func (cfg stressConfig) validate() error {
	switch {
	case cfg.Capacity < 0:
		return fmt.Errorf("capacity %d: %w", cfg.Capacity, api.ErrInvalidArgument)
	case cfg.Pushers < 1:
		return fmt.Errorf("pushers %d: %w", cfg.Pushers, api.ErrInvalidArgument)
	case cfg.PerPusher < 0:
		return fmt.Errorf("per_pusher %d: %w", cfg.PerPusher, api.ErrInvalidArgument)
	case cfg.Readers < 0:
		return fmt.Errorf("readers %d: %w", cfg.Readers, api.ErrInvalidArgument)
	case cfg.Rounds < 1:
		return fmt.Errorf("rounds %d: %w", cfg.Rounds, api.ErrInvalidArgument)
	}
	return nil
}
