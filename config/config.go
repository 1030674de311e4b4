package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync/atomic"
)

// Configuration keys.
const (
	KeyEnabled  = "enabled"
	KeyPrefixes = "prefixes"
)

// ErrInvalid is wrapped by all errors caused by malformed configuration
// values.
var ErrInvalid = errors.New("invalid configuration")

// Source is a read-only view of configuration values.
type Source interface {
	Get(key string) (interface{}, bool)
}

// MapSource is a Source backed by a map.
type MapSource map[string]interface{}

func (m MapSource) Get(key string) (interface{}, bool) {
	v, ok := m[key]
	return v, ok
}

// --- Snapshot --------------------------------------------------------------

// Snapshot is an immutable configuration.
type Snapshot struct {
	enabled  bool
	prefixes map[string][]string
}

// NewSnapshot creates a snapshot. The prefix table is copied; prefixes may
// be given with or without surrounding dashes.
func NewSnapshot(enabled bool, prefixes map[string][]string) *Snapshot {
	s := &Snapshot{enabled: enabled, prefixes: make(map[string][]string, len(prefixes))}
	for prop, list := range prefixes {
		clean := make([]string, 0, len(list))
		for _, p := range list {
			if p = strings.Trim(strings.TrimSpace(p), "-"); p != "" {
				clean = append(clean, p)
			}
		}
		s.prefixes[prop] = clean
	}
	return s
}

// Enabled tells whether prefixing is switched on.
func (s *Snapshot) Enabled() bool {
	return s.enabled
}

// Prefixes returns the vendor prefixes configured for property, without
// dashes, in configuration order. Unconfigured properties have none.
func (s *Snapshot) Prefixes(property string) []string {
	list := s.prefixes[property]
	if len(list) == 0 {
		return nil
	}
	return append([]string(nil), list...)
}

// Prefixed returns the prefixed variants of property, e.g.
// "-webkit-transform".
func (s *Snapshot) Prefixed(property string) []string {
	list := s.prefixes[property]
	if len(list) == 0 {
		return nil
	}
	names := make([]string, len(list))
	for i, p := range list {
		names[i] = "-" + p + "-" + property
	}
	return names
}

// Properties lists all properties with at least one prefix, sorted.
func (s *Snapshot) Properties() []string {
	props := make([]string, 0, len(s.prefixes))
	for prop, list := range s.prefixes {
		if len(list) > 0 {
			props = append(props, prop)
		}
	}
	sort.Strings(props)
	return props
}

// Default is the configuration used if the host provides none.
func Default() *Snapshot {
	return NewSnapshot(true, map[string][]string{
		"animation":           {"webkit", "moz", "o"},
		"appearance":          {"webkit", "moz"},
		"backface-visibility": {"webkit"},
		"box-sizing":          {"webkit", "moz"},
		"perspective":         {"webkit", "moz"},
		"transform":           {"webkit", "moz", "ms", "o"},
		"transform-origin":    {"webkit", "moz", "ms", "o"},
		"transition":          {"webkit", "moz", "o"},
		"user-select":         {"webkit", "moz", "ms"},
	})
}

// FromSource reads a snapshot from src. Missing keys fall back to Default.
func FromSource(src Source) (*Snapshot, error) {
	def := Default()
	enabled := def.enabled
	if v, ok := src.Get(KeyEnabled); ok && v != nil {
		b, isBool := v.(bool)
		if !isBool {
			return nil, fmt.Errorf("%w: %q must be a boolean, is %T", ErrInvalid, KeyEnabled, v)
		}
		enabled = b
	}
	prefixes := def.prefixes
	if v, ok := src.Get(KeyPrefixes); ok && v != nil {
		table, err := prefixTable(v)
		if err != nil {
			return nil, err
		}
		prefixes = table
	}
	return NewSnapshot(enabled, prefixes), nil
}

func prefixTable(v interface{}) (map[string][]string, error) {
	switch t := v.(type) {
	case map[string][]string:
		return t, nil
	case map[string]interface{}:
		table := make(map[string][]string, len(t))
		for prop, raw := range t {
			list, err := stringList(raw)
			if err != nil {
				return nil, fmt.Errorf("%w: %s.%s: %v", ErrInvalid, KeyPrefixes, prop, err)
			}
			table[prop] = list
		}
		return table, nil
	}
	return nil, fmt.Errorf("%w: %q must be a mapping, is %T", ErrInvalid, KeyPrefixes, v)
}

func stringList(v interface{}) ([]string, error) {
	switch t := v.(type) {
	case nil:
		return nil, nil
	case []string:
		return t, nil
	case string:
		return []string{t}, nil
	case []interface{}:
		list := make([]string, len(t))
		for i, x := range t {
			s, ok := x.(string)
			if !ok {
				return nil, fmt.Errorf("prefix #%d is %T, not a string", i, x)
			}
			list[i] = s
		}
		return list, nil
	}
	return nil, fmt.Errorf("expected a list of prefixes, have %T", v)
}

// --- Store -----------------------------------------------------------------

// Store holds the current snapshot. Readers always see a complete
// snapshot; Reload replaces it as a whole.
type Store struct {
	current atomic.Pointer[Snapshot]
}

// NewStore creates a store holding initial, or Default() if initial is nil.
func NewStore(initial *Snapshot) *Store {
	if initial == nil {
		initial = Default()
	}
	s := &Store{}
	s.current.Store(initial)
	return s
}

// Load returns the current snapshot.
func (s *Store) Load() *Snapshot {
	return s.current.Load()
}

// Swap installs snap and returns the snapshot it replaces.
func (s *Store) Swap(snap *Snapshot) *Snapshot {
	return s.current.Swap(snap)
}

// Reload reads a new snapshot from src and installs it. If src is
// malformed, the current snapshot stays in place.
func (s *Store) Reload(src Source) error {
	snap, err := FromSource(src)
	if err != nil {
		tracer().Errorf("configuration not reloaded: %v", err)
		return err
	}
	s.Swap(snap)
	tracer().Debugf("configuration reloaded, enabled=%v, %d properties", snap.Enabled(), len(snap.Properties()))
	return nil
}
