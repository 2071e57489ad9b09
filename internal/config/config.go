package config

import (
	"os"
	"strconv"
)

// Config is read once from the environment at process start and passed by
// reference to the components that need it. Nothing here is required: a
// missing database URL puts the backend in demo mode (fallback data), a
// missing Telegram token disables the bot, a missing OpenAI key disables
// the chat model client. Startup never aborts on absent configuration.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	OpenAI   OpenAIConfig
	Telegram TelegramConfig
	Log      LogConfig
}

type ServerConfig struct {
	Addr        string
	MetricsAddr string
	Debug       bool
}

type DatabaseConfig struct {
	URL string
}

type OpenAIConfig struct {
	APIKey     string
	ChatModel  string
	EmbedModel string
	BaseURL    string
}

type TelegramConfig struct {
	Token string
	Debug bool
}

type LogConfig struct {
	Level string
}

func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:        getEnvOrDefault("SERVER_ADDR", ":8000"),
			MetricsAddr: getEnvOrDefault("METRICS_ADDR", ":9090"),
			Debug:       getEnvBoolOrDefault("SERVER_DEBUG", false),
		},
		Database: DatabaseConfig{
			URL: os.Getenv("DATABASE_URL"),
		},
		OpenAI: OpenAIConfig{
			APIKey:     os.Getenv("OPENAI_API_KEY"),
			ChatModel:  getEnvOrDefault("OPENAI_CHAT_MODEL", "gpt-4o-mini"),
			EmbedModel: getEnvOrDefault("OPENAI_EMBED_MODEL", "text-embedding-3-small"),
			BaseURL:    getEnvOrDefault("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		},
		Telegram: TelegramConfig{
			Token: os.Getenv("TELEGRAM_BOT_TOKEN"),
			Debug: getEnvBoolOrDefault("TELEGRAM_DEBUG", false),
		},
		Log: LogConfig{
			Level: getEnvOrDefault("LOG_LEVEL", "info"),
		},
	}
}

func (c *Config) HasDatabase() bool { return c.Database.URL != "" }
func (c *Config) HasOpenAI() bool   { return c.OpenAI.APIKey != "" }
func (c *Config) HasTelegram() bool { return c.Telegram.Token != "" }

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
