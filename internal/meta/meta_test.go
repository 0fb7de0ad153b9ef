// Package meta provides the per-server metadata store.
package meta

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

// TestLoadMissingFile verifies that a missing metadata file yields an
// empty mapping rather than an error.
func TestLoadMissingFile(t *testing.T) {
	d, err := Load(filepath.Join(t.TempDir(), Filename))
	if err != nil {
		t.Fatalf("Load() error = %v, want nil", err)
	}
	if d.Len() != 0 {
		t.Errorf("Load() returned %d entries, want 0", d.Len())
	}
}

// TestLoadTolerantParser verifies that comments and malformed lines are
// skipped without failing the load.
func TestLoadTolerantParser(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    map[string]string
	}{
		{
			name:    "plain entries",
			content: "jar=server.jar\nram=4G\n",
			want:    map[string]string{"jar": "server.jar", "ram": "4G"},
		},
		{
			name:    "comments skipped",
			content: "# managed by mcsrv\njar=server.jar\n# ram=8G\n",
			want:    map[string]string{"jar": "server.jar"},
		},
		{
			name:    "malformed lines skipped",
			content: "no-equals-here\n=emptykey\njar=server.jar\n",
			want:    map[string]string{"jar": "server.jar"},
		},
		{
			name:    "value may contain equals",
			content: "jvmflags=-Dfoo=bar\n",
			want:    map[string]string{"jvmflags": "-Dfoo=bar"},
		},
		{
			name:    "empty value kept",
			content: "jar=\n",
			want:    map[string]string{"jar": ""},
		},
		{
			name:    "unrecognized keys preserved",
			content: "jar=a.jar\nfuture_key=whatever\n",
			want:    map[string]string{"jar": "a.jar", "future_key": "whatever"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), Filename)
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}

			d, err := Load(path)
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}

			got := make(map[string]string)
			for _, k := range d.Keys() {
				got[k], _ = d.Get(k)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Load() = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestSaveLoadRoundTrip verifies that save followed by load yields the
// same mapping in the same order.
func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), Filename)

	d := NewData()
	d.Set("jar", "paper-1.20.jar")
	d.Set("ram", "4G")
	d.Set("autostart", "true")

	if err := Save(path, d); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if !reflect.DeepEqual(loaded.Keys(), d.Keys()) {
		t.Errorf("key order after round trip = %v, want %v", loaded.Keys(), d.Keys())
	}
	for _, k := range d.Keys() {
		want, _ := d.Get(k)
		got, _ := loaded.Get(k)
		if got != want {
			t.Errorf("value for %q = %q, want %q", k, got, want)
		}
	}
}

// TestSetPreservesInsertionOrder verifies that updating an existing key
// does not move it to the end.
func TestSetPreservesInsertionOrder(t *testing.T) {
	d := NewData()
	d.Set("jar", "a.jar")
	d.Set("ram", "4G")
	d.Set("jar", "b.jar")

	want := []string{"jar", "ram"}
	if !reflect.DeepEqual(d.Keys(), want) {
		t.Errorf("Keys() = %v, want %v", d.Keys(), want)
	}
	if v, _ := d.Get("jar"); v != "b.jar" {
		t.Errorf("Get(jar) = %q, want %q", v, "b.jar")
	}
}
