package config

import (
	"bytes"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/matzehuels/columns/pkg/errors"
)

const (
	keyMax   = "plugin:columns:max_columns"
	keySpawn = "plugin:columns:spawn_direction"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s := NewStore()
	if err := s.AddValue(keyMax, 3); err != nil {
		t.Fatalf("AddValue() error = %v", err)
	}
	if err := s.AddValue(keySpawn, "right"); err != nil {
		t.Fatalf("AddValue() error = %v", err)
	}
	return s
}

func TestAddValue(t *testing.T) {
	s := newTestStore(t)

	if v, ok := s.Int(keyMax); !ok || v != 3 {
		t.Errorf("Int() = %d, %v, want 3, true", v, ok)
	}
	if v, ok := s.String(keySpawn); !ok || v != "right" {
		t.Errorf("String() = %q, %v, want right, true", v, ok)
	}
	if _, ok := s.String(keyMax); ok {
		t.Error("String() on an integer key should report false")
	}
	if _, ok := s.Int("plugin:columns:missing"); ok {
		t.Error("Int() on an unregistered key should report false")
	}

	if err := s.Set(keyMax, 5); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := s.AddValue(keyMax, 3); err != nil {
		t.Fatalf("AddValue() error = %v", err)
	}
	if v, _ := s.Int(keyMax); v != 5 {
		t.Errorf("re-registering reset the value to %d, want 5", v)
	}

	if err := s.AddValue("", 1); !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("AddValue(\"\") = %v, want %s", err, errors.ErrCodeInvalidConfig)
	}
	if err := s.AddValue("x", 1.5); !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("AddValue(float) = %v, want %s", err, errors.ErrCodeInvalidConfig)
	}
}

func TestSet(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   any
		wantErr bool
	}{
		{"int", keyMax, 4, false},
		{"int64", keyMax, int64(4), false},
		{"string", keySpawn, "left", false},
		{"wrong type", keyMax, "4", true},
		{"unsupported type", keyMax, 4.0, true},
		{"unregistered", "plugin:columns:gap", 4, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestStore(t)
			err := s.Set(tt.key, tt.value)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Set() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("Set() code = %s, want %s", errors.GetCode(err), errors.ErrCodeInvalidConfig)
			}
		})
	}
}

func TestLoadBytes(t *testing.T) {
	s := newTestStore(t)

	unknown, err := s.LoadBytes([]byte(`
[plugin.columns]
max_columns = 4
gap = 10

[general]
border = 2
`))
	if err != nil {
		t.Fatalf("LoadBytes() error = %v", err)
	}
	if want := []string{"general:border", "plugin:columns:gap"}; !slices.Equal(unknown, want) {
		t.Errorf("unknown = %v, want %v", unknown, want)
	}
	if v, _ := s.Int(keyMax); v != 4 {
		t.Errorf("max_columns = %d, want 4", v)
	}
	if v, _ := s.String(keySpawn); v != "right" {
		t.Errorf("spawn_direction = %q, want right", v)
	}
}

func TestLoadBytesDottedKeys(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.LoadBytes([]byte(`plugin.columns.spawn_direction = "left"`)); err != nil {
		t.Fatalf("LoadBytes() error = %v", err)
	}
	if v, _ := s.String(keySpawn); v != "left" {
		t.Errorf("spawn_direction = %q, want left", v)
	}
}

func TestLoadBytesRevertsMissingKeys(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.LoadBytes([]byte("[plugin.columns]\nmax_columns = 5\n")); err != nil {
		t.Fatalf("LoadBytes() error = %v", err)
	}
	if _, err := s.LoadBytes([]byte("")); err != nil {
		t.Fatalf("LoadBytes() error = %v", err)
	}
	if v, _ := s.Int(keyMax); v != 3 {
		t.Errorf("max_columns = %d, want default 3", v)
	}
}

func TestLoadBytesErrorsLeaveStoreUnchanged(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"type mismatch", "[plugin.columns]\nmax_columns = \"four\"\nspawn_direction = \"left\"\n"},
		{"float", "[plugin.columns]\nmax_columns = 2.5\n"},
		{"syntax", "[plugin.columns\nmax_columns = 2\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestStore(t)
			_, err := s.LoadBytes([]byte(tt.data))
			if !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Fatalf("LoadBytes() error = %v, want %s", err, errors.ErrCodeInvalidConfig)
			}
			if v, _ := s.Int(keyMax); v != 3 {
				t.Errorf("max_columns = %d, want 3", v)
			}
			if v, _ := s.String(keySpawn); v != "right" {
				t.Errorf("spawn_direction = %q, want right", v)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "columns.toml")

	s := newTestStore(t)
	if err := s.Set(keyMax, 7); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Load(path); err != nil {
		t.Fatalf("Load(missing) error = %v", err)
	}
	if v, _ := s.Int(keyMax); v != 3 {
		t.Errorf("missing file: max_columns = %d, want 3", v)
	}

	if err := os.WriteFile(path, []byte("[plugin.columns]\nmax_columns = 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Load(path); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if v, _ := s.Int(keyMax); v != 2 {
		t.Errorf("max_columns = %d, want 2", v)
	}
}

func TestEncode(t *testing.T) {
	s := newTestStore(t)
	var buf bytes.Buffer
	if err := s.Encode(&buf); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	out := buf.String()
	for _, want := range []string{"[plugin.columns]", "max_columns = 3", `spawn_direction = "right"`} {
		if !strings.Contains(out, want) {
			t.Errorf("Encode() missing %q in:\n%s", want, out)
		}
	}

	round := newTestStore(t)
	if err := round.Set(keyMax, 9); err != nil {
		t.Fatal(err)
	}
	if _, err := round.LoadBytes(buf.Bytes()); err != nil {
		t.Fatalf("LoadBytes(Encode()) error = %v", err)
	}
	if v, _ := round.Int(keyMax); v != 3 {
		t.Errorf("max_columns = %d, want 3", v)
	}
}

func TestKeys(t *testing.T) {
	s := newTestStore(t)
	if got, want := s.Keys(), []string{keyMax, keySpawn}; !slices.Equal(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	got, err := DefaultPath()
	if err != nil {
		t.Fatalf("DefaultPath() error = %v", err)
	}
	if want := filepath.Join("/tmp/xdg", "columns", "columns.toml"); got != want {
		t.Errorf("DefaultPath() = %q, want %q", got, want)
	}

	t.Setenv("XDG_CONFIG_HOME", "")
	got, err = DefaultPath()
	if err != nil {
		t.Fatalf("DefaultPath() error = %v", err)
	}
	home, _ := os.UserHomeDir()
	if want := filepath.Join(home, ".config", "columns", "columns.toml"); got != want {
		t.Errorf("DefaultPath() = %q, want %q", got, want)
	}
}
