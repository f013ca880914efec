// Package config provides the library wide defaults for assertions.
// Values are looked up in the process environment (FLUENT_* variables) and in ".fluent"
// and ".fluent.toml" files found in the working directory and its parents.
// The environment wins over files, nearer files win over files in parent directories.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/mazzegi/log"
)

const EnvPrefix = "FLUENT_"

const (
	KeyFailFast          = "fail_fast"
	KeyThreadDumpOnError = "thread_dump_on_error"
	KeyRepresentation    = "representation"
	KeyDateLocation      = "date_location"
)

type Config struct {
	FailFast          bool
	ThreadDumpOnError bool
	// Representation is "standard" or "localized:<bcp47-tag>", e.g. "localized:de".
	Representation string
	// DateLocation is an IANA zone name used to parse and render dates; empty means UTC.
	DateLocation string
}

func Default() Config {
	return Config{
		Representation: "standard",
	}
}

// Load loads the config for the current working directory and process environment.
func Load() Config {
	wd, err := os.Getwd()
	if err != nil {
		log.Warnf("config: getwd: %v", err)
		return LoadFrom("", os.Environ())
	}
	return LoadFrom(wd, os.Environ())
}

// LoadFrom loads the config looking up files from dir upwards. An empty dir skips file lookup.
func LoadFrom(dir string, environ []string) Config {
	vs := fromEnviron(environ)
	if dir != "" {
		merge(loadFiles(dir), vs)
	}
	return apply(vs, Default())
}

var global Config
var globalOnce sync.Once

func Global() Config {
	globalOnce.Do(func() {
		global = Load()
	})
	return global
}

func fromEnviron(environ []string) map[string]any {
	vs := map[string]any{}
	for _, kv := range environ {
		k, v, _ := strings.Cut(kv, "=")
		k = strings.TrimSpace(k)
		if !strings.HasPrefix(k, EnvPrefix) {
			continue
		}
		k = strings.ToLower(strings.TrimPrefix(k, EnvPrefix))
		if k == "" {
			continue
		}
		v = unquote(strings.TrimSpace(v))
		if v == "" {
			vs[k] = true
		} else {
			vs[k] = v
		}
	}
	return vs
}

// merge merges "from" into "to", keeping already existing values
func merge(from map[string]any, to map[string]any) {
	for k, v := range from {
		if _, ok := to[k]; !ok {
			to[k] = v
		}
	}
}

func unquote(s string) string {
	if (strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`)) ||
		(strings.HasPrefix(s, `'`) && strings.HasSuffix(s, `'`)) {
		return s[1 : len(s)-1]
	}
	return s
}

func apply(vs map[string]any, cfg Config) Config {
	for k, v := range vs {
		var err error
		switch k {
		case KeyFailFast:
			cfg.FailFast, err = toBool(v)
		case KeyThreadDumpOnError:
			cfg.ThreadDumpOnError, err = toBool(v)
		case KeyRepresentation:
			cfg.Representation = fmt.Sprintf("%v", v)
		case KeyDateLocation:
			cfg.DateLocation = fmt.Sprintf("%v", v)
		default:
			log.Debugf("config: ignore unknown key %q", k)
		}
		if err != nil {
			log.Warnf("config: key %q: %v", k, err)
		}
	}
	return cfg
}

func toBool(v any) (bool, error) {
	switch v := v.(type) {
	case bool:
		return v, nil
	case string:
		b, err := strconv.ParseBool(v)
		if err != nil {
			return false, fmt.Errorf("parse bool %q: %w", v, err)
		}
		return b, nil
	default:
		return false, fmt.Errorf("cannot use %T as bool", v)
	}
}
