// Package server implements the managed server entity.
//
// A Server is a registered directory on disk holding a launchable jar.
// Its identity is derived from the directory name, its durable settings
// live in the directory's .mcsrvmeta file, and its runtime state is
// discovered by matching a screen session named after its id. The
// entity assumes exclusive ownership of its metadata file for the
// lifetime of the process.
package server

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/mcsrv/cli/internal/meta"
	"github.com/mcsrv/cli/internal/procstats"
	"github.com/mcsrv/cli/internal/screen"
	"github.com/mcsrv/cli/internal/tui"
)

// sessionPrefix namespaces this tool's screen sessions.
const sessionPrefix = "mc-"

var (
	// ErrNotFound reports that a path is not an existing directory.
	ErrNotFound = errors.New("not a server directory")

	// ErrNoJar reports that a directory holds no launchable jar.
	ErrNoJar = errors.New("no server jar found")

	// ErrCancelled reports an aborted jar disambiguation.
	ErrCancelled = errors.New("jar selection cancelled")

	// ErrAlreadyRunning reports a start attempt on a live server.
	ErrAlreadyRunning = errors.New("server is already running")
)

// Metadata keys recognized by the entity. Unrecognized keys are
// preserved verbatim but never interpreted.
const (
	keyJar       = "jar"
	keyRAM       = "ram"
	keyAutostart = "autostart"
)

// JarChooser resolves an ambiguous jar choice. It returns the chosen
// candidate, or "" when the user cancelled.
type JarChooser func(title string, options []string) (string, error)

// Deps are the external collaborators of a Server. Zero fields are
// filled with the real implementations, so tests can substitute only
// what they need.
type Deps struct {
	// Screen enumerates, spawns, and addresses multiplexer sessions.
	Screen screen.API

	// Stats samples resource usage of a session's workload.
	Stats procstats.Provider

	// ChooseJar disambiguates between multiple jar candidates.
	ChooseJar JarChooser

	// Java is the launch binary (default "java").
	Java string

	// DefaultRAM is the allocation used when the server has no stored
	// ram value (default "4G").
	DefaultRAM string
}

// fill replaces zero fields with real implementations.
func (d Deps) fill() Deps {
	if d.Screen == nil {
		d.Screen = screen.NewClient()
	}
	if d.Stats == nil {
		d.Stats = procstats.NewProvider()
	}
	if d.ChooseJar == nil {
		d.ChooseJar = tui.Pick
	}
	if d.Java == "" {
		d.Java = "java"
	}
	if d.DefaultRAM == "" {
		d.DefaultRAM = "4G"
	}
	return d
}

// Server is one managed server directory.
type Server struct {
	path string
	data *meta.Data
	jar  string

	deps Deps

	// session handle cache, valid only for this entity's in-memory
	// lifetime and invalidated explicitly on Start.
	handle      *screen.Session
	handleValid bool
}

// New constructs a Server for a directory using real collaborators.
func New(path string) (*Server, error) {
	return NewWithDeps(path, Deps{})
}

// NewWithDeps constructs a Server with explicit collaborators.
//
// The path is canonicalized (relative segments and symlinks resolved)
// and must be an existing directory. Metadata is loaded, the launch jar
// is resolved, and the metadata file is rewritten to lock the selection
// in for future runs.
//
// Parameters:
//   - path: The server directory
//   - deps: Collaborators; zero fields use the real implementations
//
// Returns:
//   - *Server: The constructed entity
//   - error: ErrNotFound, ErrNoJar, or ErrCancelled (wrapped)
func NewWithDeps(path string, deps Deps) (*Server, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path %s: %w", path, err)
	}
	canonical, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, abs)
	}
	info, err := os.Stat(canonical)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, canonical)
	}

	s := &Server{path: canonical, deps: deps.fill()}

	if _, err := os.Stat(s.DataFile()); os.IsNotExist(err) {
		log.Debug("no metadata file found", "server", s.ID())
	}
	s.data, err = meta.Load(s.DataFile())
	if err != nil {
		return nil, err
	}

	if err := s.locateJar(); err != nil {
		return nil, err
	}
	if err := s.saveData(); err != nil {
		return nil, err
	}

	return s, nil
}

// Path returns the canonical server directory.
func (s *Server) Path() string {
	return s.path
}

// ID is the entity's uniqueness key: the final path element, case
// folded. Two registered servers may never share an id.
func (s *Server) ID() string {
	return strings.ToLower(filepath.Base(s.path))
}

// SessionName is the screen session name bound to this server.
func (s *Server) SessionName() string {
	return sessionPrefix + s.ID()
}

// DataFile returns the metadata file path.
func (s *Server) DataFile() string {
	return filepath.Join(s.path, meta.Filename)
}

// Jar returns the absolute path of the selected launch jar.
func (s *Server) Jar() string {
	return s.jar
}

// Data exposes the raw metadata mapping (read-only use).
func (s *Server) Data() *meta.Data {
	return s.data
}

// locateJar resolves the launch artifact.
//
// Resolution order: the stored jar reference if the file still exists,
// then a directory scan. One candidate auto-selects, several require a
// user choice, none is fatal.
func (s *Server) locateJar() error {
	if name, ok := s.data.Get(keyJar); ok {
		p := filepath.Join(s.path, name)
		if info, err := os.Stat(p); err == nil && info.Mode().IsRegular() {
			s.jar = p
			return nil
		}
		log.Warn("saved jar not found, rescanning", "server", s.ID(), "jar", name)
	}

	matches, err := filepath.Glob(filepath.Join(s.path, "*.jar"))
	if err != nil {
		return fmt.Errorf("failed to scan %s: %w", s.path, err)
	}

	var candidates []string
	for _, m := range matches {
		if info, err := os.Stat(m); err == nil && info.Mode().IsRegular() {
			candidates = append(candidates, filepath.Base(m))
		}
	}

	switch len(candidates) {
	case 0:
		return fmt.Errorf("%w in %s", ErrNoJar, s.path)
	case 1:
		s.data.Set(keyJar, candidates[0])
		s.jar = filepath.Join(s.path, candidates[0])
		return nil
	}

	choice, err := s.deps.ChooseJar("Which .jar runs your server?", candidates)
	if err != nil {
		return fmt.Errorf("jar selection failed: %w", err)
	}
	if choice == "" {
		return fmt.Errorf("%w for %s", ErrCancelled, s.path)
	}
	s.data.Set(keyJar, choice)
	s.jar = filepath.Join(s.path, choice)
	return nil
}

// saveData rewrites the metadata file.
func (s *Server) saveData() error {
	return meta.Save(s.DataFile(), s.data)
}

// Handle returns the live session bound to this server, or nil when no
// session with the derived name is running. The result is memoized for
// the entity's in-memory lifetime; InvalidateHandle discards it.
func (s *Server) Handle() (*screen.Session, error) {
	if s.handleValid {
		return s.handle, nil
	}

	sessions, err := s.deps.Screen.ListSessions()
	if err != nil {
		return nil, err
	}

	s.handle = nil
	for i := range sessions {
		if sessions[i].Name == s.SessionName() {
			s.handle = &sessions[i]
			break
		}
	}
	s.handleValid = true
	return s.handle, nil
}

// InvalidateHandle discards the cached session handle. Called at the
// one mutation point (Start) known to change its answer.
func (s *Server) InvalidateHandle() {
	s.handle = nil
	s.handleValid = false
}

// Running reports whether a session with this server's name is live.
func (s *Server) Running() (bool, error) {
	h, err := s.Handle()
	if err != nil {
		return false, err
	}
	return h != nil, nil
}

// Autostarts reports the persisted autostart flag. Any stored value
// other than the literal "true" reads as false.
func (s *Server) Autostarts() bool {
	v, _ := s.data.Get(keyAutostart)
	return v == "true"
}

// SetAutostart persists the autostart flag.
func (s *Server) SetAutostart(enabled bool) error {
	if enabled {
		s.data.Set(keyAutostart, "true")
	} else {
		s.data.Set(keyAutostart, "false")
	}
	return s.saveData()
}

// RAM returns the effective memory allocation: the stored value when
// present and well-formed, else the configured default.
func (s *Server) RAM() string {
	stored, ok := s.data.Get(keyRAM)
	if !ok {
		return s.deps.DefaultRAM
	}
	normalized, err := NormalizeRAM(stored)
	if err != nil {
		log.Warn("stored ram value is malformed, using default",
			"server", s.ID(), "ram", stored, "default", s.deps.DefaultRAM)
		return s.deps.DefaultRAM
	}
	return normalized
}

// SetRAM validates, normalizes, and persists a memory allocation.
// On a malformed token nothing is written.
func (s *Server) SetRAM(token string) error {
	normalized, err := NormalizeRAM(token)
	if err != nil {
		return err
	}
	s.data.Set(keyRAM, normalized)
	return s.saveData()
}

// Start spawns the server inside a new detached session.
//
// The effective allocation is the validated override when given, else
// the stored/default RAM. Startup is not awaited: liveness is
// discovered on the next query. Starting a server whose session is
// already live fails with ErrAlreadyRunning rather than spawning a
// duplicate session name.
//
// Parameters:
//   - ramOverride: Optional memory token; "" uses the stored value
//
// Returns:
//   - error: ErrInvalidRAM, ErrAlreadyRunning, or spawn failures
func (s *Server) Start(ramOverride string) error {
	ram := s.RAM()
	if ramOverride != "" {
		normalized, err := NormalizeRAM(ramOverride)
		if err != nil {
			return err
		}
		ram = normalized
	}

	running, err := s.Running()
	if err != nil {
		return err
	}
	if running {
		return fmt.Errorf("%w: %s", ErrAlreadyRunning, s.ID())
	}

	s.InvalidateHandle()

	log.Debug("starting server", "server", s.ID(), "ram", ram, "jar", filepath.Base(s.jar))
	argv := []string{s.deps.Java, "-Xmx" + ram, "-jar", filepath.Base(s.jar)}
	return s.deps.Screen.Spawn(s.SessionName(), s.path, argv)
}

// SendCommand forwards text into the server console. When execute is
// true an end-of-line marker is appended so the server runs it.
// Liveness is not validated here; screen reports its own error when the
// session is gone.
func (s *Server) SendCommand(text string, execute bool) error {
	if execute {
		text += "\r"
	}
	return s.deps.Screen.Send(s.SessionName(), text)
}

// Stop asks the server to shut down by sending the stop command into
// its console. The session ends when the server process exits.
func (s *Server) Stop() error {
	return s.SendCommand("stop", true)
}

// OpenConsole attaches the controlling terminal to the server's
// session and blocks until the user detaches.
func (s *Server) OpenConsole() error {
	h, err := s.Handle()
	if err != nil {
		return err
	}
	target := s.SessionName()
	if h != nil {
		target = h.String()
	}
	return s.deps.Screen.Attach(target)
}

// Stats reports CPU and memory usage of the server's workload.
//
// Returns (0, 0) without touching the stats provider when the server
// is not running. Memory is reported in GB rounded to two decimals.
func (s *Server) Stats() (cpuPercent float64, memoryGB float64, err error) {
	h, err := s.Handle()
	if err != nil {
		return 0, 0, err
	}
	if h == nil {
		return 0, 0, nil
	}

	cpu, rss, err := s.deps.Stats.SampleChild(h.PID, procstats.SampleInterval)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to sample %s: %w", s.ID(), err)
	}
	return cpu, math.Round(float64(rss)/1e9*100) / 100, nil
}
