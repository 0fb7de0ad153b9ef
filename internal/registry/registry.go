// Package registry tracks which directories on this host are managed
// servers.
//
// The registry is a single durable file, one absolute directory path
// per line. Identity is enforced at registration time: two directories
// whose derived ids collide may not both be registered. Paths whose
// directory has disappeared are pruned lazily on the next full load.
//
// Concurrent CLI invocations against the same file are not coordinated;
// last writer wins. The tool is single-invocation by usage model.
package registry

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/mcsrv/cli/internal/server"
)

// Filename is the registry file name in the user's home directory.
const Filename = ".mcsrvrc"

// IDConflictError reports two registered directories sharing an id.
type IDConflictError struct {
	// ID is the colliding derived id.
	ID string

	// ExistingPath is the directory already registered under ID.
	ExistingPath string
}

func (e *IDConflictError) Error() string {
	return fmt.Sprintf("a server with id %q is already registered at %s; rename one of the directories",
		e.ID, e.ExistingPath)
}

// ConstructFunc builds a server entity from a directory path. It
// exists so tests can construct entities with fake collaborators.
type ConstructFunc func(path string) (*server.Server, error)

// Registry is the durable list of managed server paths.
type Registry struct {
	path      string
	construct ConstructFunc
}

// New returns the registry backed by ~/.mcsrvrc.
func New() *Registry {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}
	return NewWithFile(filepath.Join(homeDir, Filename), nil)
}

// NewWithFile returns a registry backed by an explicit file.
//
// Parameters:
//   - path: The registry file path
//   - construct: Entity constructor; nil uses server.New
//
// Returns:
//   - *Registry: The registry
func NewWithFile(path string, construct ConstructFunc) *Registry {
	if construct == nil {
		construct = server.New
	}
	return &Registry{path: path, construct: construct}
}

// File returns the backing file path.
func (r *Registry) File() string {
	return r.path
}

// ListCachedPaths reads the registered paths without validating them.
// A missing registry file yields an empty list.
func (r *Registry) ListCachedPaths() ([]string, error) {
	f, err := os.Open(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read registry: %w", err)
	}
	defer f.Close()

	var paths []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			paths = append(paths, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read registry: %w", err)
	}
	return paths, nil
}

// Unregister removes the given paths from the registry, rewriting the
// file with the surviving entries. Paths not present are ignored; an
// empty argument is a no-op.
func (r *Registry) Unregister(paths []string) error {
	if len(paths) == 0 {
		return nil
	}

	current, err := r.ListCachedPaths()
	if err != nil {
		return err
	}

	remove := make(map[string]bool, len(paths))
	for _, p := range paths {
		remove[p] = true
	}

	var sb strings.Builder
	for _, p := range current {
		if !remove[p] {
			sb.WriteString(p)
			sb.WriteByte('\n')
		}
	}

	if err := os.WriteFile(r.path, []byte(sb.String()), 0644); err != nil {
		return fmt.Errorf("failed to rewrite registry: %w", err)
	}
	return nil
}

// ListServers constructs an entity for every registered path.
//
// Paths whose directory no longer exists are pruned from the registry
// with a diagnostic after the full pass; other construction failures
// propagate.
func (r *Registry) ListServers() ([]*server.Server, error) {
	paths, err := r.ListCachedPaths()
	if err != nil {
		return nil, err
	}

	var servers []*server.Server
	var stale []string
	for _, p := range paths {
		srv, err := r.construct(p)
		if err != nil {
			if errors.Is(err, server.ErrNotFound) {
				log.Warn("server directory no longer exists, removing it", "path", p)
				stale = append(stale, p)
				continue
			}
			return nil, err
		}
		servers = append(servers, srv)
	}

	if err := r.Unregister(stale); err != nil {
		return nil, err
	}
	return servers, nil
}

// Register adds a server to the registry.
//
// Re-registering the same canonical path is an idempotent no-op. A
// different path whose derived id collides with a registered server
// fails with IDConflictError without touching the registry.
//
// Parameters:
//   - srv: The entity to register
//
// Returns:
//   - error: *IDConflictError on collision, or I/O errors
func (r *Registry) Register(srv *server.Server) error {
	existing, err := r.ListServers()
	if err != nil {
		return err
	}

	for _, other := range existing {
		if other.ID() != srv.ID() {
			continue
		}
		if other.Path() == srv.Path() {
			return nil
		}
		return &IDConflictError{ID: srv.ID(), ExistingPath: other.Path()}
	}

	f, err := os.OpenFile(r.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open registry: %w", err)
	}
	defer f.Close()

	if _, err := fmt.Fprintln(f, srv.Path()); err != nil {
		return fmt.Errorf("failed to append to registry: %w", err)
	}
	return nil
}
