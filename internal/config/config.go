// Package config handles loading user settings for the Selik trainer.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/louttit/selik/internal/memory"
)

// DefaultFile is the settings file looked up in the working directory.
const DefaultFile = "selik.yaml"

// Config holds all user settings for the trainer.
type Config struct {
	MemoryFile string `yaml:"memory_file"` // performance memory location
	QuizLimit  int    `yaml:"quiz_limit"`  // max words per session, 0 = all
	ShowPinyin bool   `yaml:"show_pinyin"` // annotate prompts with pinyin
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		MemoryFile: memory.DefaultFile,
		QuizLimit:  0,
		ShowPinyin: true,
	}
}

// Load reads settings from a YAML file, falling back to defaults when
// the file is absent.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}

// Save writes settings to a YAML file.
func Save(path string, cfg *Config) error {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
