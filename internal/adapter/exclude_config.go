package adapter

import (
	"errors"
	"fmt"
	"os"

	m "github.com/mouse-blink/libwizard/internal/model"
	"gopkg.in/yaml.v3"
)

// ErrConfigNotFound is returned when the exclude file does not exist.
// Callers can check for this with errors.Is(err, adapter.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("exclude file not found")

// DefaultExcludeFile is looked up in the working directory when no exclude
// file is configured.
const DefaultExcludeFile = "excludes.json"

// ExcludeConfig maps a rewriter name to its list of glob patterns.
//
//	{"LicenseRewriter": ["node_modules", "# comments are ignored", "**/*.min.js"]}
//
// The file may be written as JSON or YAML.
type ExcludeConfig map[string][]string

// LoadExcludeConfig reads and parses the exclude file at path.
func LoadExcludeConfig(path m.Path) (ExcludeConfig, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", path, ErrConfigNotFound)
		}

		return nil, err
	}

	cfg, err := ParseExcludeConfig(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return cfg, nil
}

// ParseExcludeConfig decodes an exclude config document.
func ParseExcludeConfig(data []byte) (ExcludeConfig, error) {
	var cfg ExcludeConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	if cfg == nil {
		cfg = ExcludeConfig{}
	}

	return cfg, nil
}

// Patterns returns the raw patterns configured for section.
func (c ExcludeConfig) Patterns(section string) []string {
	return c[section]
}
