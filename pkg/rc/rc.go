// Package rc loads the configuration of the calculator shell from rc.yaml.
package rc

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Editors supported by the shell.
const (
	EditorKey  = "key"
	EditorLine = "line"
)

// Config is the content of rc.yaml.
type Config struct {
	// Prompt is shown by the line editor.
	Prompt string `yaml:"prompt"`
	// DB is the path of the result database; empty means the default.
	DB string `yaml:"db"`
	// Restore makes the shell resume from the saved accumulator.
	Restore bool `yaml:"restore"`
	// Record makes the shell save every result.
	Record bool `yaml:"record"`
	// Precision is the number of digits after the decimal point shown in
	// results. -1 shows as many digits as needed.
	Precision int `yaml:"precision"`
	// Editor is either "key" or "line".
	Editor string `yaml:"editor"`
}

// Default returns the configuration used when there is no rc file.
func Default() Config {
	return Config{
		Prompt:    "> ",
		Record:    true,
		Precision: 10,
		Editor:    EditorKey,
	}
}

// Load reads the rc file at the given path. A missing file is not an error
// and results in the default configuration.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), err
	}
	defer f.Close()
	cfg, err := Parse(f)
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse parses the content of an rc file. Fields missing from the file keep
// their default values; unknown fields are an error.
func Parse(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return Default(), err
	}
	return cfg, cfg.Validate()
}

// Validate checks that the fields of the Config have sensible values.
func (c Config) Validate() error {
	if c.Editor != EditorKey && c.Editor != EditorLine {
		return fmt.Errorf("editor must be %q or %q, got %q", EditorKey, EditorLine, c.Editor)
	}
	if c.Precision < -1 || c.Precision > 15 {
		return fmt.Errorf("precision must be between -1 and 15, got %d", c.Precision)
	}
	return nil
}

// Path returns the default path of the rc file.
func Path() (string, error) {
	return xdgPath("XDG_CONFIG_HOME", ".config", "rc.yaml")
}

// DBPath returns the default path of the result database.
func DBPath() (string, error) {
	return xdgPath("XDG_STATE_HOME", filepath.Join(".local", "state"), "db.bolt")
}

func xdgPath(env, fallback, name string) (string, error) {
	if dir := os.Getenv(env); dir != "" {
		return filepath.Join(dir, "tddcalc", name), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot find home directory: %w", err)
	}
	return filepath.Join(home, fallback, "tddcalc", name), nil
}
