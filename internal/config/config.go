package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	LLM    LLMConfig    `mapstructure:"llm"    validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// LLMConfig contains all settings for the optional live generation backend.
//
// GeminiAPIKey is deliberately not marked required: an empty key means no
// live backend is configured and the service runs in fallback-only mode.
type LLMConfig struct {
	GeminiAPIKey      string `mapstructure:"gemini_api_key"`
	ModelName         string `mapstructure:"model_name"          validate:"required"`
	MaxRetries        int    `mapstructure:"max_retries"         validate:"gte=0,lte=10"`
	RetryDelaySeconds int    `mapstructure:"retry_delay_seconds" validate:"gte=0,lte=60"`
	TimeoutSeconds    int    `mapstructure:"timeout_seconds"     validate:"gt=0,lte=120"`
}

// BackendConfigured reports whether a live generation backend is available.
// This is the single flag the orchestrator consults before attempting a
// live generation call.
func (c LLMConfig) BackendConfigured() bool {
	return c.GeminiAPIKey != ""
}
