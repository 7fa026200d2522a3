package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/revelaction/polarity/entity"
)

// DefaultChapterPattern builds a document path from a chapter number.
const DefaultChapterPattern = "chapters/chapter_%d.txt"

// Config is the configuration of a scoring run.
type Config struct {
	// DocumentPath is the chapter (or any UTF-8 text file) to score.
	DocumentPath string `yaml:"document_path"`

	// LexiconPaths are merged in order. YAML files or SQLite databases.
	LexiconPaths []string `yaml:"lexicon_paths"`

	Entities entity.Table `yaml:"entities"`

	LogLevel string `yaml:"log_level"`
}

// Default returns the configuration used when no file is given: the
// positive and negative word lists and the three tracked characters.
func Default() Config {
	return Config{
		LexiconPaths: []string{"dicts/positive-words.yml", "dicts/negative-words.yml"},
		Entities:     entity.DefaultTable(),
		LogLevel:     "info",
	}
}

// Load reads the YAML file at path over the defaults. Keys absent from the
// file keep their default value.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return cfg, nil
}

// ChapterPath returns the document path of chapter n.
func ChapterPath(n int) string {
	return fmt.Sprintf(DefaultChapterPattern, n)
}

// Validate checks the values needed for a scoring run.
func (c Config) Validate() error {
	if c.DocumentPath == "" {
		return errors.New("document path is required")
	}

	if len(c.Entities) == 0 {
		return errors.New("at least one entity is required")
	}

	seen := map[string]bool{}
	for _, e := range c.Entities {
		name := e.Name
		if strings.TrimSpace(name) == "" {
			return errors.New("entity name can not be empty")
		}

		// names key the entity subsets verbatim
		if strings.TrimSpace(name) != name {
			return fmt.Errorf("entity %q has leading or trailing spaces", name)
		}

		if seen[name] {
			return fmt.Errorf("entity %q is defined twice", name)
		}
		seen[name] = true

		if len(e.Aliases) == 0 {
			return fmt.Errorf("entity %q has no aliases", name)
		}

		for _, a := range e.Aliases {
			if strings.TrimSpace(a) == "" {
				return fmt.Errorf("entity %q has an empty alias", name)
			}
		}
	}

	switch c.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}

	return nil
}
