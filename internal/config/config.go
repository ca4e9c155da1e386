package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	API  APIConfig `mapstructure:"api"`
	UI   UIConfig  `mapstructure:"ui"`
	Log  LogConfig `mapstructure:"log"`
	Keys KeyConfig `mapstructure:"keys"`
}

type APIConfig struct {
	URL         string        `mapstructure:"url"`
	HTTPTimeout time.Duration `mapstructure:"http_timeout"`
	UserAgent   string        `mapstructure:"user_agent"`
}

type UIConfig struct {
	Theme            string `mapstructure:"theme"`
	WordWrapMaxWidth int    `mapstructure:"word_wrap_max_width"`
	WordWrapMinWidth int    `mapstructure:"word_wrap_min_width"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

type KeyConfig struct {
	Bindings KeyBindings `mapstructure:"bindings"`
}

type KeyBindings struct {
	Next   string `mapstructure:"next"`
	Prev   string `mapstructure:"prev"`
	Reset  string `mapstructure:"reset"`
	Search string `mapstructure:"search"`
	Help   string `mapstructure:"help"`
	Quit   string `mapstructure:"quit"`
	Back   string `mapstructure:"back"`
}

func defaultConfig() *Config {
	return &Config{
		API: APIConfig{
			URL:         "https://jsonplaceholder.typicode.com/posts",
			HTTPTimeout: 30 * time.Second,
			UserAgent:   "postcard/1.0 (terminal post reader)",
		},
		UI: UIConfig{
			Theme:            "dusk",
			WordWrapMaxWidth: 100,
			WordWrapMinWidth: 40,
		},
		Log: LogConfig{
			Level: "off",
			File:  "",
		},
		Keys: KeyConfig{
			Bindings: KeyBindings{
				Next:   "right",
				Prev:   "left",
				Reset:  "r",
				Search: "/",
				Help:   "?",
				Quit:   "q",
				Back:   "esc",
			},
		},
	}
}

func Load(configPath string) (*Config, error) {
	v := viper.New()

	cfg := defaultConfig()
	v.SetDefault("api", cfg.API)
	v.SetDefault("ui", cfg.UI)
	v.SetDefault("log", cfg.Log)
	v.SetDefault("keys", cfg.Keys)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		homeDir, _ := os.UserHomeDir()
		configDir := filepath.Join(homeDir, ".config", "postcard")

		v.SetConfigName("config")
		v.SetConfigType("toml")
		v.AddConfigPath(configDir)
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("POSTCARD")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	config.Log.File = expandPath(config.Log.File)

	return &config, nil
}

// expandPath expands ~ to the home directory and converts to an absolute path.
func expandPath(path string) string {
	if path == "" {
		return path
	}

	if len(path) >= 2 && path[:2] == "~/" {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path[2:])
	}

	if !filepath.IsAbs(path) {
		if abs, err := filepath.Abs(path); err == nil {
			path = abs
		}
	}

	return path
}

func Save(config *Config, path string) error {
	v := viper.New()

	// Durations serialized as strings for TOML readability
	apiCfg := map[string]interface{}{
		"url":          config.API.URL,
		"http_timeout": config.API.HTTPTimeout.String(),
		"user_agent":   config.API.UserAgent,
	}

	v.Set("api", apiCfg)
	v.Set("ui", config.UI)
	v.Set("log", config.Log)
	v.Set("keys", config.Keys)

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	return v.WriteConfigAs(path)
}

func GenerateDefaultConfig(path string) error {
	return Save(defaultConfig(), path)
}
