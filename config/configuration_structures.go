package config

import (
	"log/slog"
	"strings"
	"time"
)

type DatabaseConfig struct {
	DSN            string `yaml:"dsn"`
	ConnectRetries int    `yaml:"connect_retries"`
	MigrateOnStart bool   `yaml:"migrate_on_start"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type S3Config struct {
	Bucket    string `yaml:"bucket"`
	Region    string `yaml:"region"`
	Endpoint  string `yaml:"endpoint"`
	Local     bool   `yaml:"local"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
}

type JWTConfig struct {
	SecretKey string `yaml:"secret_key"`
}

type AdminConfig struct {
	AdminToken string `yaml:"admin_token"`
}

// TTL : lifetimes in seconds
type TTL struct {
	S3AndRedis int `yaml:"s3AndRedis"`
	Recipients int `yaml:"recipients"`
}

func (t TTL) CacheTTL() time.Duration {
	return time.Duration(t.S3AndRedis) * time.Second
}

func (t TTL) RecipientTTL() time.Duration {
	return time.Duration(t.Recipients) * time.Second
}

// SigningConfig : limits applied to generated signing sessions
type SigningConfig struct {
	PublicOrigin       string `yaml:"public_origin"`
	TokenLength        int    `yaml:"token_length"`
	MaxUploadBytes     int64  `yaml:"max_upload_bytes"`
	MaxPages           int    `yaml:"max_pages"`
	LoadTimeoutSeconds int    `yaml:"load_timeout_seconds"`
}

func (s SigningConfig) LoadTimeout() time.Duration {
	return time.Duration(s.LoadTimeoutSeconds) * time.Second
}

type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// SlogLevel maps the configured level name, info when unknown
func (l LoggingConfig) SlogLevel() slog.Level {
	switch strings.ToLower(l.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
