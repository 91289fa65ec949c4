package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Config struct {
	// PythonPath overrides interpreter discovery for the analysis
	// pipeline. Empty means look up python3/python in PATH.
	PythonPath string `yaml:"python_path,omitempty"`
	// ScriptPath overrides pipeline script discovery
	ScriptPath string `yaml:"script_path,omitempty"`
	// WordLimit bounds the generated summary (advisory)
	WordLimit int `yaml:"word_limit"`
	// LogFile receives diagnostics; the terminal belongs to the UI
	LogFile string `yaml:"log_file,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		WordLimit: 250,
	}
}

func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "wellchat"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

func Exists() bool {
	path, err := ConfigPath()
	if err != nil {
		return false
	}
	_, err = os.Stat(path)
	return err == nil
}

func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	if cfg.WordLimit <= 0 {
		cfg.WordLimit = 250
	}

	return &cfg, nil
}

func (c *Config) Save() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	path, err := ConfigPath()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0600)
}
