package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the YAML config file. Pointer fields distinguish an
// absent setting from a zero value.
type fileConfig struct {
	Game        *string `yaml:"game"`
	APIRoot     *string `yaml:"api_root"`
	Timeout     *string `yaml:"timeout"`
	MinInterval *string `yaml:"min_interval"`
	State       *string `yaml:"state"`
	Width       *int    `yaml:"width"`
	Height      *int    `yaml:"height"`
	Footer      *bool   `yaml:"footer"`
	Trace       *bool   `yaml:"trace"`
	LogFile     *string `yaml:"log_file"`
}

// loadFile reads the YAML config at path. An empty path yields an empty
// config; a named file that does not exist is an error.
func loadFile(path string) (fileConfig, error) {
	var cfg fileConfig
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, fmt.Errorf("config file %s not found", path)
		}
		return cfg, fmt.Errorf("read config file: %w", err)
	}
	dec := yaml.NewDecoder(strings.NewReader(string(data)))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return fileConfig{}, fmt.Errorf("parse config file %s: %w", path, err)
	}
	return cfg, nil
}

func orString(v *string, fallback string) string {
	if v == nil {
		return fallback
	}
	return *v
}

func orInt(v *int, fallback int) int {
	if v == nil {
		return fallback
	}
	return *v
}

func orBool(v *bool, fallback bool) bool {
	if v == nil {
		return fallback
	}
	return *v
}
