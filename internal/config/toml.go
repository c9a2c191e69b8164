package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file. Unset keys stay nil.
type FileConfig struct {
	LLM     LLMConfig     `toml:"llm"`
	Browser BrowserConfig `toml:"browser"`
	Game    GameConfig    `toml:"game"`
	History HistoryConfig `toml:"history"`
}

type LLMConfig struct {
	Provider *string `toml:"provider"`
	Model    *string `toml:"model"`
}

type BrowserConfig struct {
	Driver      *string `toml:"driver"`
	URL         *string `toml:"url"`
	Headless    *bool   `toml:"headless"`
	KeyDelay    *string `toml:"key-delay"`
	SettleDelay *string `toml:"settle-delay"`
	ProfileDir  *string `toml:"profile-dir"`
}

type GameConfig struct {
	MaxAttempts   *int    `toml:"max-attempts"`
	MaxRejections *int    `toml:"max-rejections"`
	Answer        *string `toml:"answer"`
}

type HistoryConfig struct {
	DB *string `toml:"db"`
}

// LoadFile reads a TOML config from the given path. Missing file is not an error.
func LoadFile(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}
