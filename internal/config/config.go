package config

import "time"

// Config holds server configuration values.
type Config struct {
	Addr              string        `mapstructure:"addr" yaml:"addr"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout" yaml:"read_header_timeout"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout"`
	LogLevel          string        `mapstructure:"log_level" yaml:"log_level"`
	DatabasePath      string        `mapstructure:"database_path" yaml:"database_path"`
	JWTSecret         string        `mapstructure:"jwt_secret" yaml:"jwt_secret"`
	JWTIssuer         string        `mapstructure:"jwt_issuer" yaml:"jwt_issuer"`
	JWTAudience       string        `mapstructure:"jwt_audience" yaml:"jwt_audience"`
	TranslatorURL     string        `mapstructure:"translator_url" yaml:"translator_url"`
	TranslatorAPIKey  string        `mapstructure:"translator_api_key" yaml:"translator_api_key"`
	MaxLanguages      int           `mapstructure:"max_languages" yaml:"max_languages"`
	MaxMessageLength  int           `mapstructure:"max_message_length" yaml:"max_message_length"`
}

// Default returns configuration with reasonable starter defaults.
func Default() Config {
	return Config{
		Addr:              ":8080",
		ReadHeaderTimeout: 5 * time.Second,
		ShutdownTimeout:   5 * time.Second,
		LogLevel:          "info",
		DatabasePath:      "babelchat.db",
		JWTSecret:         "dev-secret-change-for-production",
		JWTIssuer:         "babelchat",
		JWTAudience:       "babelchat",
		TranslatorURL:     "http://localhost:5000",
		MaxLanguages:      20,
		MaxMessageLength:  5000,
	}
}
