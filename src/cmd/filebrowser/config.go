package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// ClientConfig is the optional YAML file read by the command line client
type ClientConfig struct {
	RemoteURL string        `yaml:"remote_url"`
	Timeout   time.Duration `yaml:"timeout"`
}

func defaultConfigPath() string {
	homedir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homedir, ".config", "filebrowser", "client.yml")
}

// readClientConfig loads configPath. A missing file is only an error when
// required is set, i.e. the path was given explicitly.
func readClientConfig(configPath string, required bool) (*ClientConfig, error) {
	var cfg ClientConfig
	if configPath == "" {
		return &cfg, nil
	}

	file, err := os.Open(configPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !required {
			return &cfg, nil
		}
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	if err := yaml.NewDecoder(file).Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse config %s: %w", configPath, err)
	}

	if cfg.Timeout < 0 {
		return nil, fmt.Errorf("parse config %s: timeout must not be negative", configPath)
	}

	return &cfg, nil
}
