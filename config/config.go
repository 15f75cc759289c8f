package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	StorageDriverMemory = "memory"
	StorageDriverRedis  = "redis"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// To-do REST backend
	Backend BackendConfig

	// Browser sessions and their server-side state
	Session      SessionConfig
	Storage      StorageConfig
	Redis        RedisConfig
	Auth         AuthConfig
	Confirmation ConfirmationConfig
	TaskList     TaskListConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type BackendConfig struct {
	BaseURL string
	// Zero means no client-side timeout.
	Timeout time.Duration
}

type SessionConfig struct {
	CookieName string
	MaxAge     int // seconds
	Domain     string
	Secure     bool
}

type StorageConfig struct {
	Driver string // "memory" or "redis"
	Size   int    // memory driver capacity
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
}

type AuthConfig struct {
	RateLimitPerMin int
}

type ConfirmationConfig struct {
	TTL  time.Duration
	Size int
}

type TaskListConfig struct {
	IdleTTL time.Duration
	Size    int
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Backend
	cfg.Backend.BaseURL = viper.GetString("backend.base_url")
	cfg.Backend.Timeout = viper.GetDuration("backend.timeout")

	// Session & state
	cfg.Session.CookieName = viper.GetString("session.cookie_name")
	cfg.Session.MaxAge = viper.GetInt("session.max_age")
	cfg.Session.Domain = viper.GetString("session.domain")
	cfg.Session.Secure = viper.GetBool("session.secure")

	cfg.Storage.Driver = strings.ToLower(viper.GetString("storage.driver"))
	cfg.Storage.Size = viper.GetInt("storage.size")

	cfg.Redis.Addr = viper.GetString("redis.addr")
	cfg.Redis.Password = expandEnvVar(viper.GetString("redis.password"))
	cfg.Redis.DB = viper.GetInt("redis.db")
	cfg.Redis.Prefix = viper.GetString("redis.prefix")

	cfg.Auth.RateLimitPerMin = viper.GetInt("auth.rate_limit_per_min")

	cfg.Confirmation.TTL = viper.GetDuration("confirmation.ttl")
	cfg.Confirmation.Size = viper.GetInt("confirmation.size")

	cfg.TaskList.IdleTTL = viper.GetDuration("tasklist.idle_ttl")
	cfg.TaskList.Size = viper.GetInt("tasklist.size")

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (cfg *Config) validate() error {
	if cfg.Backend.BaseURL == "" {
		return fmt.Errorf("backend.base_url is required")
	}
	switch cfg.Storage.Driver {
	case StorageDriverMemory:
	case StorageDriverRedis:
		if cfg.Redis.Addr == "" {
			return fmt.Errorf("redis.addr is required when storage.driver is %q", StorageDriverRedis)
		}
	default:
		return fmt.Errorf("unknown storage.driver %q", cfg.Storage.Driver)
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("backend.base_url", "http://localhost:4000/api/v1")
	viper.SetDefault("backend.timeout", "0s")

	viper.SetDefault("session.cookie_name", "todo_session")
	viper.SetDefault("session.max_age", 30*24*60*60)
	viper.SetDefault("session.secure", false)

	viper.SetDefault("storage.driver", StorageDriverMemory)
	viper.SetDefault("storage.size", 10000)
	viper.SetDefault("redis.addr", "localhost:6379")
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("redis.prefix", "todo-web:")

	viper.SetDefault("auth.rate_limit_per_min", 30)
	viper.SetDefault("confirmation.ttl", "10m")
	viper.SetDefault("confirmation.size", 10000)
	viper.SetDefault("tasklist.idle_ttl", "2h")
	viper.SetDefault("tasklist.size", 10000)
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
		return ""
	}

	return value
}
