/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package config

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/suparena/tablestore/errors"
)

func TestParseStage(t *testing.T) {
	cases := []struct {
		in      string
		want    Stage
		wantErr bool
	}{
		{"dev", StageDev, false},
		{"Development", StageDev, false},
		{"prod", StageProd, false},
		{"PRODUCTION", StageProd, false},
		{"", StageProd, false},
		{"staging", "", true},
	}
	for _, c := range cases {
		got, err := ParseStage(c.in)
		if c.wantErr {
			if err == nil {
				t.Errorf("ParseStage(%q): expected error", c.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseStage(%q): unexpected error %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseStage(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestValidate(t *testing.T) {
	t.Run("MissingProdConnectionString", func(t *testing.T) {
		cfg := &Config{Stage: StageProd}
		err := cfg.Validate()
		if err == nil {
			t.Fatal("expected validation error")
		}
		if !stderrors.Is(err, errors.ErrNoStorageAccount) {
			t.Errorf("expected ErrNoStorageAccount, got %v", err)
		}
	})

	t.Run("DefaultsStageToProd", func(t *testing.T) {
		cfg := &Config{ProdConnectionString: "UseDevelopmentStorage=true"}
		if err := cfg.Validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Stage != StageProd {
			t.Errorf("expected stage to default to prod, got %q", cfg.Stage)
		}
	})
}

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tablestore.yaml")
	content := []byte(
		"prodConnectionString: UseDevelopmentStorage=true\n" +
			"devConnectionString: UseDevelopmentStorage=true;DevAccount\n" +
			"stage: dev\n")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Stage != StageDev {
		t.Errorf("expected stage dev, got %q", cfg.Stage)
	}
	if !cfg.HasDev() {
		t.Error("expected HasDev to be true")
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("AZURE_TABLES_CONNECTION_STRING", "UseDevelopmentStorage=true")
	t.Setenv("AZURE_TABLES_DEV_CONNECTION_STRING", "")
	t.Setenv("AZURE_TABLES_STAGE", "prod")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv failed: %v", err)
	}
	if cfg.HasDev() {
		t.Error("expected HasDev to be false")
	}
	if cfg.Stage != StageProd {
		t.Errorf("expected stage prod, got %q", cfg.Stage)
	}
}
