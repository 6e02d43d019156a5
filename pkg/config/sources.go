package config

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// yamlSource reads YAML configuration files.
type yamlSource struct {
	values
}

func (s *yamlSource) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	var m map[string]any
	if err := yaml.Unmarshal(data, &m); err != nil {
		return fmt.Errorf("parse yaml config: %w", err)
	}
	s.values = flatten(m)
	return nil
}

// tomlSource reads TOML configuration files.
type tomlSource struct {
	values
}

func (s *tomlSource) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	var m map[string]any
	if err := toml.Unmarshal(data, &m); err != nil {
		return fmt.Errorf("parse toml config: %w", err)
	}
	s.values = flatten(m)
	return nil
}

// flatSource reads line-oriented key=value files. Blank lines and lines
// starting with '#' or ';' are skipped; anything without '=' is ignored.
type flatSource struct {
	values
}

func (s *flatSource) Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	defer f.Close()

	if s.values == nil {
		s.values = values{}
	}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, ";") {
			continue
		}
		key, val, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		s.values[strings.TrimSpace(key)] = strings.TrimSpace(val)
	}
	return scanner.Err()
}

// flatten collapses nested maps into dotted keys so that accessors see a
// single flat namespace regardless of backend.
func flatten(m map[string]any) values {
	out := values{}
	flattenInto(out, "", m)
	return out
}

func flattenInto(out values, prefix string, m map[string]any) {
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if nested, ok := v.(map[string]any); ok {
			flattenInto(out, key, nested)
			continue
		}
		out[key] = v
	}
}
