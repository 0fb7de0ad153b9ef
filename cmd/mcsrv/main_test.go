// Package main provides sanity tests for the mcsrv command initialization.
package main

import (
	"testing"
)

// TestRootCommandInitialization verifies that the root command exists and
// has all expected subcommands registered.
func TestRootCommandInitialization(t *testing.T) {
	if rootCmd == nil {
		t.Fatal("rootCmd is nil")
	}

	expectedCommands := []string{
		"version", "register", "unregister", "list", "status",
		"start", "stop", "cmd", "console", "ram", "autostart", "boot",
	}

	for _, name := range expectedCommands {
		found := false
		for _, cmd := range rootCmd.Commands() {
			if cmd.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("expected command %q not found", name)
		}
	}
}

// TestGlobalFlagsExist verifies that the global flags are registered on
// the root command.
func TestGlobalFlagsExist(t *testing.T) {
	flags := []string{"debug", "json", "quiet"}

	for _, name := range flags {
		if rootCmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("expected global flag %q not found", name)
		}
	}
}

// TestRootCommandHasUse verifies the root command has the correct Use field.
func TestRootCommandHasUse(t *testing.T) {
	if rootCmd.Use != "mcsrv" {
		t.Errorf("expected root command Use to be 'mcsrv', got %q", rootCmd.Use)
	}
}

// TestSubcommandsHaveShortDescription verifies all subcommands describe
// themselves for help output.
func TestSubcommandsHaveShortDescription(t *testing.T) {
	for _, cmd := range rootCmd.Commands() {
		if cmd.Short == "" {
			t.Errorf("command %q is missing Short description", cmd.Name())
		}
	}
}
