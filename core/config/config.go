package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/noesisnoema/pbxmend/core/logger"
	"gopkg.in/yaml.v3"
)

// FileName is the optional per-repository config file.
const FileName = ".pbxmend.yaml"

// DefaultProjectPath is where the project description lives relative to
// the repository root.
const DefaultProjectPath = "NoesisNoema.xcodeproj/project.pbxproj"

type Config struct {
	Project      string `yaml:"project"`
	SwiftVersion string `yaml:"swift_version"`
}

func Default() *Config {
	return &Config{
		Project:      DefaultProjectPath,
		SwiftVersion: "5.0",
	}
}

func Load() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("cannot determine working dir: %w", err)
	}

	filePath := filepath.Join(wd, FileName)
	if _, err := os.Stat(filePath); err != nil {
		logger.Debug("No config file found, using default config")
		return Default(), nil
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", filePath, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse yaml: %w", err)
	}
	if cfg.Project == "" {
		cfg.Project = DefaultProjectPath
	}
	if cfg.SwiftVersion == "" {
		cfg.SwiftVersion = "5.0"
	}
	logger.Debug("Config file found: %s", filePath)
	logger.Debug("Config: %+v", cfg)

	return &cfg, nil
}
