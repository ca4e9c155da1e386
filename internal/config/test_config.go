package config

import "time"

// TestConfig returns a config suitable for testing
func TestConfig() *Config {
	return &Config{
		API: APIConfig{
			URL:         "http://127.0.0.1:0/posts",
			HTTPTimeout: 5 * time.Second,
			UserAgent:   "postcard-test/1.0",
		},
		UI:   defaultConfig().UI,
		Log:  defaultConfig().Log,
		Keys: defaultConfig().Keys,
	}
}
