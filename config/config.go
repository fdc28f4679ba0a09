package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Session storage. "memory" keeps conversations in-process; "redis"
	// shares them across instances.
	SessionStore  string `mapstructure:"SESSION_STORE"`
	SessionTTLMin int    `mapstructure:"SESSION_TTL_MIN"`

	// Redis configuration (used when SESSION_STORE is "redis").
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int    `mapstructure:"REDIS_DB"`

	// Hosted-model relay.
	GeminiAPIKey  string `mapstructure:"GEMINI_API_KEY"`
	GeminiModel   string `mapstructure:"GEMINI_MODEL"`
	RelayFallback bool   `mapstructure:"RELAY_FALLBACK"`

	// Optional YAML overrides for the built-in menu and schedule data.
	MenuFile     string `mapstructure:"MENU_FILE"`
	ScheduleFile string `mapstructure:"SCHEDULE_FILE"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 60)
	viper.SetDefault("SESSION_STORE", "memory")
	viper.SetDefault("SESSION_TTL_MIN", 30)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("GEMINI_MODEL", "models/gemini-1.5-flash")
	viper.SetDefault("RELAY_FALLBACK", false)
	viper.SetDefault("MENU_FILE", "")
	viper.SetDefault("SCHEDULE_FILE", "")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	if AppConfig.Env == "" {
		return "development"
	}
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
