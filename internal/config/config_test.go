// Package config provides global CLI configuration.
package config

import (
	"os"
	"path/filepath"
	"testing"
)

// TestLoadMissingFileReturnsDefaults verifies zero-setup behavior.
func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.DefaultRAM != DefaultRAM {
		t.Errorf("DefaultRAM = %q, want %q", cfg.DefaultRAM, DefaultRAM)
	}
	if cfg.Java != "java" {
		t.Errorf("Java = %q, want %q", cfg.Java, "java")
	}
}

// TestLoadPartialFileFillsDefaults verifies that unset fields fall back
// to built-in defaults.
func TestLoadPartialFileFillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("default_ram: 8G\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.DefaultRAM != "8G" {
		t.Errorf("DefaultRAM = %q, want %q", cfg.DefaultRAM, "8G")
	}
	if cfg.Java != "java" {
		t.Errorf("Java = %q, want %q", cfg.Java, "java")
	}
}

// TestWriteLoadRoundTrip verifies persistence.
func TestWriteLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	want := &Config{DefaultRAM: "2G", Java: "/opt/jdk/bin/java"}
	if err := Write(path, want); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got.DefaultRAM != want.DefaultRAM || got.Java != want.Java {
		t.Errorf("Load() = %+v, want %+v", got, want)
	}
}
