package config

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Namespace is the settings section the keys may be nested in, as in
//
//	css-auto-prefix:
//	  enabled: true
//	  prefixes:
//	    transform: [webkit, moz]
const Namespace = "css-auto-prefix"

// YAMLSource is a Source decoded from a YAML document. Keys may be given at
// top level or nested in the Namespace section.
type YAMLSource struct {
	values map[string]interface{}
}

var _ Source = &YAMLSource{}

// ReadYAML decodes a YAML configuration. An empty document yields an empty
// source.
func ReadYAML(r io.Reader) (*YAMLSource, error) {
	var values map[string]interface{}
	if err := yaml.NewDecoder(r).Decode(&values); err != nil && err != io.EOF {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if ns, ok := values[Namespace].(map[string]interface{}); ok {
		values = ns
	}
	return &YAMLSource{values: values}, nil
}

// LoadYAML reads a YAML configuration file.
func LoadYAML(path string) (*YAMLSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open configuration: %w", err)
	}
	defer f.Close()
	src, err := ReadYAML(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	tracer().Debugf("loaded configuration from %s", path)
	return src, nil
}

func (y *YAMLSource) Get(key string) (interface{}, bool) {
	v, ok := y.values[key]
	return v, ok
}
