// config/config.go
package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	DB      DBConfig      `mapstructure:"database"`
	Redis   RedisConfig   `mapstructure:"redis"`
	CORS    CORSConfig    `mapstructure:"cors"`
	Session SessionConfig `mapstructure:"session"`
}

// ServerConfig holds server specific configuration
type ServerConfig struct {
	Port int    `mapstructure:"port"`
	Host string `mapstructure:"host"`
}

// DBConfig holds database specific configuration
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
}

// RedisConfig holds the job-list cache connection settings
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	// JobListTTL bounds staleness of the cached public job board, in seconds.
	JobListTTL int `mapstructure:"job_list_ttl"`
}

// CORSConfig holds CORS specific configuration
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// SessionConfig holds the settings for verifying session tokens issued by
// the identity provider bridge.
type SessionConfig struct {
	Secret string `mapstructure:"secret"`
}

// JobListTTLDuration returns the cache TTL as a time.Duration.
func (r RedisConfig) JobListTTLDuration() time.Duration {
	return time.Duration(r.JobListTTL) * time.Second
}

// Load configuration from file and environment variables
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AddConfigPath("/app/config")
	viper.AddConfigPath("/app")

	// --- Set Default Values ---
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.host", "localhost")
	viper.SetDefault("database.host", "localhost")
	viper.SetDefault("database.port", 5432)
	viper.SetDefault("database.user", "postgres")
	viper.SetDefault("database.password", "postgres")
	viper.SetDefault("database.name", "jobboard")
	viper.SetDefault("redis.addr", "localhost:6379")
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("redis.job_list_ttl", 60)
	viper.SetDefault("cors.allowed_origins", []string{"http://localhost:3000", "http://127.0.0.1:3000"})
	viper.SetDefault("session.secret", "dev-session-secret")

	// --- Read Config File (Optional) ---
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Config file not found, using defaults and environment variables.")
		} else {
			log.Printf("Error reading config file: %v", err)
		}
	}

	// --- Bind Environment Variables ---
	viper.SetEnvPrefix("JOBBOARD")
	viper.AutomaticEnv()
	viper.BindEnv("cors.allowed_origins", "CORS_ALLOWED_ORIGINS")
	viper.BindEnv("session.secret", "SESSION_SECRET")

	// --- Unmarshal Config ---
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	// --- Manual Override from Specific Environment Variables (Highest Priority) ---
	if portStr := os.Getenv("SERVER_PORT"); portStr != "" {
		if port, err := strconv.Atoi(portStr); err == nil {
			cfg.Server.Port = port
		}
	}
	if host := os.Getenv("SERVER_HOST"); host != "" {
		cfg.Server.Host = host
	}
	if host := os.Getenv("DB_HOST"); host != "" {
		cfg.DB.Host = host
	}
	if portStr := os.Getenv("DB_PORT"); portStr != "" {
		if port, err := strconv.Atoi(portStr); err == nil {
			cfg.DB.Port = port
		}
	}
	if user := os.Getenv("DB_USER"); user != "" {
		cfg.DB.User = user
	}
	if pass := os.Getenv("DB_PASSWORD"); pass != "" {
		cfg.DB.Password = pass
	}
	if name := os.Getenv("DB_NAME"); name != "" {
		cfg.DB.Name = name
	}
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		cfg.Redis.Addr = addr
	}
	if pass := os.Getenv("REDIS_PASSWORD"); pass != "" {
		cfg.Redis.Password = pass
	}
	if secret := os.Getenv("SESSION_SECRET"); secret != "" {
		cfg.Session.Secret = secret
	}

	// Handle CORS_ALLOWED_ORIGINS env var (comma-separated string -> slice)
	if originsStr := os.Getenv("CORS_ALLOWED_ORIGINS"); originsStr != "" {
		cfg.CORS.AllowedOrigins = strings.Split(originsStr, ",")
		for i, origin := range cfg.CORS.AllowedOrigins {
			cfg.CORS.AllowedOrigins[i] = strings.TrimSpace(origin)
		}
	}

	log.Printf("Configuration loaded: Server Port=%d, DB Host=%s, Redis Addr=%s, Allowed Origins=%v",
		cfg.Server.Port, cfg.DB.Host, cfg.Redis.Addr, cfg.CORS.AllowedOrigins)

	return &cfg, nil
}
