package config

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/mazzegi/log"
)

const (
	File     = ".fluent"
	FileToml = ".fluent.toml"
)

func loadFile(path string) (map[string]any, error) {
	vs := map[string]any{}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		k, v, _ := strings.Cut(line, "=")
		k = strings.ToLower(strings.TrimSpace(k))
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
	return vs, scanner.Err()
}

func loadFileToml(path string) (map[string]any, error) {
	vs := map[string]any{}
	_, err := toml.DecodeFile(path, &vs)
	if err != nil {
		return nil, err
	}
	return vs, nil
}

// loadFiles collects values from dir and all of its parents. ".fluent" is evaluated before ".fluent.toml".
func loadFiles(dir string) map[string]any {
	dir, err := filepath.Abs(dir)
	if err != nil {
		log.Warnf("config: abs %q: %v", dir, err)
		return map[string]any{}
	}

	all := map[string]any{}
	for {
		if vs, err := loadFile(filepath.Join(dir, File)); err == nil {
			merge(vs, all)
		} else if !os.IsNotExist(err) {
			log.Warnf("config: load %q: %v", filepath.Join(dir, File), err)
		}
		if vs, err := loadFileToml(filepath.Join(dir, FileToml)); err == nil {
			merge(vs, all)
		} else if !os.IsNotExist(err) {
			log.Warnf("config: load %q: %v", filepath.Join(dir, FileToml), err)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return all
}
