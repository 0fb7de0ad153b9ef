// Package meta provides the per-server metadata store.
//
// Every managed server directory carries a .mcsrvmeta file holding
// key=value configuration (selected jar, RAM allocation, autostart flag).
// The format is deliberately tolerant: lines starting with '#' are
// comments, malformed lines are skipped, and unrecognized keys are
// preserved verbatim so older binaries never destroy newer settings.
package meta

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Filename is the metadata file name inside each server directory.
const Filename = ".mcsrvmeta"

// Data is an ordered string-to-string mapping.
//
// Insertion order is preserved so that Save rewrites the file in a
// stable order and diffs of .mcsrvmeta stay readable.
type Data struct {
	keys []string
	vals map[string]string
}

// NewData returns an empty mapping.
func NewData() *Data {
	return &Data{vals: make(map[string]string)}
}

// Get returns the value for key and whether it is present.
func (d *Data) Get(key string) (string, bool) {
	v, ok := d.vals[key]
	return v, ok
}

// GetDefault returns the value for key, or def when absent.
func (d *Data) GetDefault(key, def string) string {
	if v, ok := d.vals[key]; ok {
		return v
	}
	return def
}

// Set stores a value, appending the key to the order on first use.
func (d *Data) Set(key, value string) {
	if _, ok := d.vals[key]; !ok {
		d.keys = append(d.keys, key)
	}
	d.vals[key] = value
}

// Has reports whether key is present.
func (d *Data) Has(key string) bool {
	_, ok := d.vals[key]
	return ok
}

// Len returns the number of entries.
func (d *Data) Len() int {
	return len(d.keys)
}

// Keys returns the keys in insertion order.
func (d *Data) Keys() []string {
	out := make([]string, len(d.keys))
	copy(out, d.keys)
	return out
}

// Load reads a metadata file into an ordered mapping.
//
// A missing file is not an error: a server that has never been
// configured simply has no metadata yet, so an empty mapping is
// returned. Comment lines ('#' prefix) and lines without a '=' or with
// an empty key are skipped silently.
//
// Parameters:
//   - path: Path to the .mcsrvmeta file
//
// Returns:
//   - *Data: The loaded mapping (never nil)
//   - error: Read errors other than the file not existing
func Load(path string) (*Data, error) {
	d := NewData()

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return d, nil
		}
		return nil, fmt.Errorf("failed to read metadata file: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok || key == "" {
			continue
		}
		d.Set(key, value)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read metadata file: %w", err)
	}

	return d, nil
}

// Save rewrites the metadata file wholesale, one key=value line per
// entry in insertion order. Called after every mutation so the file is
// durable before the mutating operation returns.
//
// Parameters:
//   - path: Path to the .mcsrvmeta file
//   - d: The mapping to persist
//
// Returns:
//   - error: Any error that occurred during writing
func Save(path string, d *Data) error {
	var sb strings.Builder
	for _, key := range d.keys {
		sb.WriteString(key)
		sb.WriteByte('=')
		sb.WriteString(d.vals[key])
		sb.WriteByte('\n')
	}

	if err := os.WriteFile(path, []byte(sb.String()), 0644); err != nil {
		return fmt.Errorf("failed to write metadata file: %w", err)
	}
	return nil
}
