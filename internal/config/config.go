package config

import "time"

// Config holds client configuration values.
type Config struct {
	ServerURL         string        `mapstructure:"server_url" yaml:"server_url"`
	Username          string        `mapstructure:"username" yaml:"username"`
	LogLevel          string        `mapstructure:"log_level" yaml:"log_level"`
	DialTimeout       time.Duration `mapstructure:"dial_timeout" yaml:"dial_timeout"`
	ReconnectMinDelay time.Duration `mapstructure:"reconnect_min_delay" yaml:"reconnect_min_delay"`
	ReconnectMaxDelay time.Duration `mapstructure:"reconnect_max_delay" yaml:"reconnect_max_delay"`
}

// Default returns configuration with reasonable starter defaults.
func Default() Config {
	return Config{
		ServerURL:         "ws://localhost:8080/ws",
		LogLevel:          "info",
		DialTimeout:       10 * time.Second,
		ReconnectMinDelay: 500 * time.Millisecond,
		ReconnectMaxDelay: 30 * time.Second,
	}
}
