package config

import (
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/columns/pkg/errors"
)

// Separator joins nested table names into a key.
const Separator = ":"

// Store is a thread-safe map of registered keys to int64 or string values.
type Store struct {
	mu       sync.RWMutex
	defaults map[string]any
	values   map[string]any
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		defaults: make(map[string]any),
		values:   make(map[string]any),
	}
}

// AddValue registers key with a default. Integer defaults are stored as
// int64. Registering a key twice keeps its current value.
func (s *Store) AddValue(key string, def any) error {
	if key == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "empty config key")
	}
	v, ok := normalize(def)
	if !ok {
		return errors.New(errors.ErrCodeInvalidConfig, "%s: unsupported default type %T", key, def)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.defaults[key] = v
	if _, exists := s.values[key]; !exists {
		s.values[key] = v
	}
	return nil
}

// Int returns the value of an integer key.
func (s *Store) Int(key string) (int64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key].(int64)
	return v, ok
}

// String returns the value of a string key.
func (s *Store) String(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key].(string)
	return v, ok
}

// Set updates a registered key. The value must match the type of the
// key's default.
func (s *Store) Set(key string, value any) error {
	v, ok := normalize(value)
	if !ok {
		return errors.New(errors.ErrCodeInvalidConfig, "%s: unsupported type %T", key, value)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	def, registered := s.defaults[key]
	if !registered {
		return errors.New(errors.ErrCodeInvalidConfig, "unknown config key %q", key)
	}
	if !sameType(def, v) {
		return errors.New(errors.ErrCodeInvalidConfig, "%s: want %s, got %s", key, typeName(def), typeName(v))
	}
	s.values[key] = v
	return nil
}

// Keys returns the registered keys in sorted order.
func (s *Store) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Sorted(maps.Keys(s.defaults))
}

// Values returns a copy of the current values.
func (s *Store) Values() map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return maps.Clone(s.values)
}

// Load reads a TOML file into the store. A missing file resets every key
// to its default. See [Store.LoadBytes] for the returned keys.
func (s *Store) Load(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		s.reset()
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read %s", path)
	}
	unknown, err := s.LoadBytes(data)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "load %s", path)
	}
	return unknown, nil
}

// LoadBytes decodes TOML and replaces the store's values: keys present in
// data take the decoded value, registered keys absent from data revert to
// their default. Keys that are not registered are returned in sorted order
// and otherwise ignored. On error the store is left unchanged.
func (s *Store) LoadBytes(data []byte) ([]string, error) {
	var raw map[string]any
	if _, err := toml.Decode(string(data), &raw); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode toml")
	}

	flat := make(map[string]any)
	flatten("", raw, flat)

	s.mu.Lock()
	defer s.mu.Unlock()

	next := maps.Clone(s.defaults)
	var unknown []string
	for _, key := range slices.Sorted(maps.Keys(flat)) {
		def, registered := s.defaults[key]
		if !registered {
			unknown = append(unknown, key)
			continue
		}
		v, ok := normalize(flat[key])
		if !ok || !sameType(def, v) {
			return nil, errors.New(errors.ErrCodeInvalidConfig, "%s: want %s, got %T", key, typeName(def), flat[key])
		}
		next[key] = v
	}
	s.values = next
	return unknown, nil
}

// Encode writes the current values as TOML, nesting keys by [Separator].
func (s *Store) Encode(w io.Writer) error {
	tree := make(map[string]any)
	for key, v := range s.Values() {
		parts := strings.Split(key, Separator)
		m := tree
		for _, p := range parts[:len(parts)-1] {
			sub, ok := m[p].(map[string]any)
			if !ok {
				sub = make(map[string]any)
				m[p] = sub
			}
			m = sub
		}
		m[parts[len(parts)-1]] = v
	}
	return toml.NewEncoder(w).Encode(tree)
}

func (s *Store) reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values = maps.Clone(s.defaults)
}

func flatten(prefix string, m map[string]any, out map[string]any) {
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + Separator + k
		}
		if sub, ok := v.(map[string]any); ok {
			flatten(key, sub, out)
			continue
		}
		out[key] = v
	}
}

func normalize(v any) (any, bool) {
	switch x := v.(type) {
	case int64, string:
		return x, true
	case int:
		return int64(x), true
	case int32:
		return int64(x), true
	}
	return nil, false
}

func sameType(a, b any) bool {
	return typeName(a) == typeName(b)
}

func typeName(v any) string {
	switch v.(type) {
	case int64:
		return "integer"
	case string:
		return "string"
	}
	return fmt.Sprintf("%T", v)
}
