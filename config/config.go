/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/suparena/tablestore/errors"
)

// Stage selects which configured table a write or delete targets.
type Stage string

const (
	StageDev  Stage = "dev"
	StageProd Stage = "prod"
)

// ParseStage converts a stage string (case-insensitive) to a Stage value.
func ParseStage(s string) (Stage, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dev", "development":
		return StageDev, nil
	case "prod", "production", "":
		return StageProd, nil
	default:
		return "", fmt.Errorf("unknown stage %q: %w", s, errors.ErrInvalidInput)
	}
}

// Config holds the connection settings for a table session. The production
// connection string is required; the development one is optional and, when
// present, changes write routing (see datastore/azt).
type Config struct {
	ProdConnectionString string `yaml:"prodConnectionString"`
	DevConnectionString  string `yaml:"devConnectionString,omitempty"`
	Stage                Stage  `yaml:"stage"`
}

// Validate checks that the configuration can open a storage account.
func (c *Config) Validate() error {
	if c.ProdConnectionString == "" {
		return fmt.Errorf("prodConnectionString must not be empty: %w", errors.ErrNoStorageAccount)
	}
	if c.Stage == "" {
		c.Stage = StageProd
	}
	if c.Stage != StageDev && c.Stage != StageProd {
		return errors.NewValidationError("stage", fmt.Sprintf("unknown stage %q", c.Stage))
	}
	return nil
}

// HasDev reports whether a development storage account is configured.
func (c *Config) HasDev() bool {
	return c.DevConnectionString != ""
}

// Load reads a Config from a YAML file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// FromEnv builds a Config from environment variables:
// AZURE_TABLES_CONNECTION_STRING, AZURE_TABLES_DEV_CONNECTION_STRING and
// AZURE_TABLES_STAGE. Callers that keep settings in a .env file can load it
// first with godotenv.
func FromEnv() (*Config, error) {
	stage, err := ParseStage(os.Getenv("AZURE_TABLES_STAGE"))
	if err != nil {
		return nil, err
	}
	cfg := &Config{
		ProdConnectionString: os.Getenv("AZURE_TABLES_CONNECTION_STRING"),
		DevConnectionString:  os.Getenv("AZURE_TABLES_DEV_CONNECTION_STRING"),
		Stage:                stage,
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
