package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"mobile-recharge-client/internal/pkg/logger"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

// APIConfig holds the recharge backend connection settings.
type APIConfig struct {
	BaseURL     string        `yaml:"base_url"`
	HTTPTimeout time.Duration `yaml:"http_timeout_seconds"`
}

// Redis connection config. Redis backs the durable client-side storage that
// every instance of a profile shares.
type RedisConfig struct {
	Addr           string        `yaml:"addr"`
	Password       string        `yaml:"password"`
	DB             int           `yaml:"db"`
	EnableTLS      bool          `yaml:"enable_tls"`
	ConnectTimeout time.Duration `yaml:"connect_timeout_seconds"`
	CertContent    string        `yaml:"cert_content"`
}

type LogConfig struct {
	LogLevel string `yaml:"level"`
}

// AppConfig is the main config struct that holds all configs
type AppConfig struct {
	API     APIConfig   `yaml:"api"`
	Redis   RedisConfig `yaml:"redis"`
	Logging LogConfig   `yaml:"logging"`
}

func assignDefaultConfigValues(cfg *AppConfig) *AppConfig {

	// log config defaults
	cfg.Logging.LogLevel = GetEnvOrDefaultAsString("LOGGING_LEVEL", cfg.Logging.LogLevel)

	// API config defaults
	cfg.API.BaseURL = GetEnvOrDefaultAsString("API_BASE_URL", cfg.API.BaseURL)
	if cfg.API.BaseURL == "" {
		cfg.API.BaseURL = "https://mobile-recharge-backend-9hk1.onrender.com/api"
	}
	if secs := GetEnvOrDefaultAsInt("API_HTTP_TIMEOUT_SECONDS", 0); secs > 0 {
		cfg.API.HTTPTimeout = time.Duration(secs) * time.Second
	} else if cfg.API.HTTPTimeout == 0 {
		cfg.API.HTTPTimeout = 10 * time.Second
	}

	// Redis config defaults
	cfg.Redis.Addr = GetEnvOrDefaultAsString("REDIS_ADDR", cfg.Redis.Addr)
	if cfg.Redis.Addr == "" {
		cfg.Redis.Addr = "localhost:6379"
	}
	cfg.Redis.Password = GetEnvOrDefaultAsString("REDIS_PASSWORD", cfg.Redis.Password)
	cfg.Redis.DB = GetEnvOrDefaultAsInt("REDIS_DB", cfg.Redis.DB)
	enableTLSDefault := 0
	if cfg.Redis.EnableTLS {
		enableTLSDefault = 1
	}
	cfg.Redis.EnableTLS = GetEnvOrDefaultAsInt("REDIS_ENABLE_TLS", enableTLSDefault) == 1
	if secs := GetEnvOrDefaultAsInt("REDIS_CONNECT_TIMEOUT_SECONDS", 0); secs > 0 {
		cfg.Redis.ConnectTimeout = time.Duration(secs) * time.Second
	} else if cfg.Redis.ConnectTimeout == 0 {
		cfg.Redis.ConnectTimeout = 10 * time.Second
	}
	cfg.Redis.CertContent = GetEnvOrDefaultAsString("REDIS_TLS_CERT", cfg.Redis.CertContent)

	return cfg
}

// LoadFromConfigFilePath loads and parses a config file into AppConfig.
func LoadFromConfigFilePath(configPath string) (*AppConfig, error) {
	var cfg AppConfig

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			// No file is fine: env vars and defaults cover everything.
			logger.Debug("Config file not found, using environment and defaults",
				slog.String("path", configPath))
			return assignDefaultConfigValues(&cfg), nil
		}
		logger.Error("Failed to read config file", err, slog.String("path", configPath))
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		logger.Error("Failed to unmarshal config", err)
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// yaml carries plain numbers for the *_seconds fields
	cfg.API.HTTPTimeout *= time.Second
	cfg.Redis.ConnectTimeout *= time.Second

	return assignDefaultConfigValues(&cfg), nil
}

// LoadFromConfig loads .env, then the config file named by CONFIG_PATH.
func LoadFromConfig() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debug("No .env file loaded", slog.String("reason", err.Error()))
	}
	configPath := GetEnvOrDefaultAsString("CONFIG_PATH", "configs/config.yaml")
	return LoadFromConfigFilePath(configPath)
}

// GetEnvOrDefaultAsInt returns the env value parsed as int, or the default.
func GetEnvOrDefaultAsInt(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.ParseInt(valueStr, 10, 64)
	if err != nil {
		return defaultValue
	}
	return int(value)
}

// GetEnvOrDefaultAsString returns the value of the given env variable or the default value if not set.
func GetEnvOrDefaultAsString(key, defaultVal string) string {
	if val, exists := os.LookupEnv(key); exists {
		if val != "" {
			return val
		}
	}
	return defaultVal
}
