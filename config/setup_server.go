package config

import (
	"errors"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"gopkg.in/yaml.v3"
)

const (
	defaultServerAddr     = ":8080"
	defaultTokenLength    = 32
	defaultMaxUploadBytes = 25 << 20
	defaultMaxPages       = 500
	defaultLoadTimeout    = 30
	defaultCacheTTL       = 300
	defaultRecipientTTL   = 60
	defaultConnectRetries = 10
)

type AppConfig struct {
	DatabaseConfig DatabaseConfig `yaml:"databaseConfig"`
	RedisConfig    RedisConfig    `yaml:"redisConfig"`
	ServerAddr     string         `yaml:"serverAddr"`
	S3Config       S3Config       `yaml:"s3Config"`
	JWT            JWTConfig      `yaml:"jwt"`
	Admin          AdminConfig    `yaml:"admin"`
	TTL            TTL            `yaml:"TTL"`
	Signing        SigningConfig  `yaml:"signing"`
	CORS           CORSConfig     `yaml:"cors"`
	Logging        LoggingConfig  `yaml:"logging"`
}

// LoadConfig reads the yaml file at path, then .env and SIGN_* environment
// overrides, then fills defaults. A missing file is not an error.
func LoadConfig(path string) (*AppConfig, error) {
	var cfg AppConfig

	file, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(file, &cfg); err != nil {
			return nil, err
		}
	case !errors.Is(err, os.ErrNotExist):
		return nil, err
	}

	_ = godotenv.Load()
	applyEnv(&cfg)
	applyDefaults(&cfg)

	return &cfg, nil
}

func applyEnv(cfg *AppConfig) {
	overrides := map[string]*string{
		"SIGN_DATABASE_DSN":  &cfg.DatabaseConfig.DSN,
		"SIGN_REDIS_ADDR":    &cfg.RedisConfig.Addr,
		"SIGN_S3_BUCKET":     &cfg.S3Config.Bucket,
		"SIGN_JWT_SECRET":    &cfg.JWT.SecretKey,
		"SIGN_ADMIN_TOKEN":   &cfg.Admin.AdminToken,
		"SIGN_PUBLIC_ORIGIN": &cfg.Signing.PublicOrigin,
		"SIGN_SERVER_ADDR":   &cfg.ServerAddr,
		"SIGN_LOG_LEVEL":     &cfg.Logging.Level,
	}
	for key, target := range overrides {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			*target = v
		}
	}
	if v := os.Getenv("SIGN_CORS_ORIGINS"); v != "" {
		cfg.CORS.AllowedOrigins = strings.Split(v, ",")
	}
}

func applyDefaults(cfg *AppConfig) {
	if cfg.ServerAddr == "" {
		cfg.ServerAddr = defaultServerAddr
	}
	if cfg.Signing.TokenLength <= 0 {
		cfg.Signing.TokenLength = defaultTokenLength
	}
	if cfg.Signing.MaxUploadBytes <= 0 {
		cfg.Signing.MaxUploadBytes = defaultMaxUploadBytes
	}
	if cfg.Signing.MaxPages <= 0 {
		cfg.Signing.MaxPages = defaultMaxPages
	}
	if cfg.Signing.LoadTimeoutSeconds <= 0 {
		cfg.Signing.LoadTimeoutSeconds = defaultLoadTimeout
	}
	if cfg.TTL.S3AndRedis <= 0 {
		cfg.TTL.S3AndRedis = defaultCacheTTL
	}
	if cfg.TTL.Recipients <= 0 {
		cfg.TTL.Recipients = defaultRecipientTTL
	}
	if cfg.DatabaseConfig.ConnectRetries <= 0 {
		cfg.DatabaseConfig.ConnectRetries = defaultConnectRetries
	}
}

// SetupServer returns the server and its router; the router is wrapped in CORS
func SetupServer(cfg *AppConfig) (*http.Server, *chi.Mux) {
	router := chi.NewRouter()

	origins := cfg.CORS.AllowedOrigins
	if len(origins) == 0 && cfg.Signing.PublicOrigin != "" {
		origins = []string{cfg.Signing.PublicOrigin}
	}
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept", "Authorization"},
		// credentials only with an explicit origin list; an empty list allows any origin
		AllowCredentials: len(origins) > 0,
	})

	server := &http.Server{
		Addr:              cfg.ServerAddr,
		Handler:           corsHandler.Handler(router),
		ReadHeaderTimeout: 10 * time.Second,
	}

	return server, router
}

func SetupDatabase(cfg *DatabaseConfig) (*Database, error) {
	return NewDatabaseConnection("postgres", cfg.DSN, cfg.ConnectRetries)
}

func SetupRedis(cfg *RedisConfig, retries int) (*RedisClient, error) {
	return NewRedisClient(cfg, retries)
}
