// Package main provides shared helper functions for CLI commands.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mcsrv/cli/internal/config"
	"github.com/mcsrv/cli/internal/registry"
	"github.com/mcsrv/cli/internal/server"
)

// loadDeps builds the server collaborator set from the global config.
// Collaborators left zero fall back to the real implementations.
func loadDeps() (server.Deps, error) {
	cfg, err := config.Load(config.Path())
	if err != nil {
		return server.Deps{}, err
	}
	return server.Deps{Java: cfg.Java, DefaultRAM: cfg.DefaultRAM}, nil
}

// openRegistry returns the home-directory registry whose entities are
// constructed with the configured collaborators.
func openRegistry() (*registry.Registry, error) {
	deps, err := loadDeps()
	if err != nil {
		return nil, err
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}
	path := filepath.Join(homeDir, registry.Filename)

	return registry.NewWithFile(path, func(p string) (*server.Server, error) {
		return server.NewWithDeps(p, deps)
	}), nil
}

// resolveServer finds a server by id or by directory path.
//
// An argument naming an existing directory constructs the entity
// directly; anything else is matched (case folded) against the ids of
// the registered servers.
//
// Parameters:
//   - arg: A server id or a directory path
//
// Returns:
//   - *server.Server: The resolved entity
//   - error: Construction errors, or a not-registered error
func resolveServer(arg string) (*server.Server, error) {
	if info, err := os.Stat(arg); err == nil && info.IsDir() {
		deps, err := loadDeps()
		if err != nil {
			return nil, err
		}
		return server.NewWithDeps(arg, deps)
	}

	reg, err := openRegistry()
	if err != nil {
		return nil, err
	}
	servers, err := reg.ListServers()
	if err != nil {
		return nil, err
	}

	id := strings.ToLower(arg)
	for _, srv := range servers {
		if srv.ID() == id {
			return srv, nil
		}
	}

	return nil, fmt.Errorf("no registered server with id %q (run 'mcsrv list')", id)
}
