package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	errs "dbpool/pkg/errors"
)

// Source supplies configuration values to the pool. Accessors never fail;
// a missing or mistyped key yields the caller's default.
type Source interface {
	Load(path string) error
	GetString(key, defaultValue string) string
	GetInt(key string, defaultValue int) int
	GetBool(key string, defaultValue bool) bool
}

// Recognized keys and their environment overrides. Environment variables
// take precedence over file values.
var envOverrides = map[string]string{
	"ip":                "DBPOOL_IP",
	"port":              "DBPOOL_PORT",
	"username":          "DBPOOL_USERNAME",
	"password":          "DBPOOL_PASSWORD",
	"dbname":            "DBPOOL_DBNAME",
	"driver":            "DBPOOL_DRIVER",
	"initSize":          "DBPOOL_INIT_SIZE",
	"maxSize":           "DBPOOL_MAX_SIZE",
	"maxIdleTime":       "DBPOOL_MAX_IDLE_TIME",
	"connectionTimeOut": "DBPOOL_CONNECTION_TIMEOUT",
}

// New loads a Source for the given path, selecting the backend by file
// extension (.yaml/.yml, .toml, anything else is treated as line-oriented
// key=value). A structured backend that fails to parse falls back to the
// key=value parser; if the file cannot be read at all the returned Source
// serves defaults only. The returned error, when non-nil, describes how the
// load degraded; the Source is always usable.
func New(path string) (Source, error) {
	src := forExtension(path)

	err := src.Load(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		// Structured parse failed; retry with the flat parser.
		flat := &flatSource{values: values{}}
		if ferr := flat.Load(path); ferr == nil {
			applyEnv(flat.values)
			return flat, fmt.Errorf("structured config rejected, using key=value fallback: %w", err)
		}
	}
	if err != nil {
		empty := &flatSource{values: values{}}
		applyEnv(empty.values)
		return empty, fmt.Errorf("%w: %s (using defaults)", errs.ErrConfigNotFound, path)
	}

	applyEnv(src.raw())
	return src, nil
}

// backend is a Source that exposes its flattened value map so the factory
// can layer environment overrides on top.
type backend interface {
	Source
	raw() values
}

// forExtension selects a config backend by file extension.
func forExtension(path string) backend {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return &yamlSource{}
	case ".toml":
		return &tomlSource{}
	default:
		// .ini, .conf and unknown extensions share the key=value parser
		return &flatSource{}
	}
}

func applyEnv(v values) {
	for key, env := range envOverrides {
		if val := os.Getenv(env); val != "" {
			v[key] = val
		}
	}
}

// values holds flattened key/value pairs shared by all backends.
type values map[string]any

func (v values) GetString(key, defaultValue string) string {
	raw, ok := v[key]
	if !ok {
		return defaultValue
	}
	if s, ok := raw.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", raw)
}

func (v values) GetInt(key string, defaultValue int) int {
	raw, ok := v[key]
	if !ok {
		return defaultValue
	}
	switch n := raw.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case uint64:
		return int(n)
	case float64:
		return int(n)
	case string:
		if i, err := strconv.Atoi(strings.TrimSpace(n)); err == nil {
			return i
		}
	}
	return defaultValue
}

func (v values) GetBool(key string, defaultValue bool) bool {
	raw, ok := v[key]
	if !ok {
		return defaultValue
	}
	switch b := raw.(type) {
	case bool:
		return b
	case string:
		if parsed, err := strconv.ParseBool(strings.TrimSpace(b)); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func (v values) raw() values { return v }
