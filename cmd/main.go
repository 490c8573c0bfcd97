package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Vierra-Digital/Vierra-Website-sub000/config"
	_ "github.com/Vierra-Digital/Vierra-Website-sub000/docs"
	"github.com/Vierra-Digital/Vierra-Website-sub000/internal/handler"
	"github.com/Vierra-Digital/Vierra-Website-sub000/internal/pdfdoc"
	"github.com/Vierra-Digital/Vierra-Website-sub000/internal/repository"
	"github.com/Vierra-Digital/Vierra-Website-sub000/internal/security"
	"github.com/Vierra-Digital/Vierra-Website-sub000/internal/service"
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"
)

// @title Vierra signing links
// @version 1.0
// @description REST API for placing signature fields on PDFs and issuing signing links

// @host localhost:8080

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
func main() {
	issueFor := flag.String("issue-token", "", "print an operator access token for this email and exit")
	tokenTTL := flag.Duration("token-ttl", 24*time.Hour, "lifetime of the token printed by -issue-token")
	flag.Parse()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.LoadConfig("config.yaml")
	if err != nil {
		slog.Error("config load failed", "error", err)
		os.Exit(1)
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.Logging.SlogLevel()})))

	jwtService := security.NewJWTService(&cfg.JWT)

	if *issueFor != "" {
		token, err := issueOperatorToken(jwtService, *issueFor, *tokenTTL)
		if err != nil {
			slog.Error("token issue failed", "error", err)
			os.Exit(1)
		}
		fmt.Println(token)
		return
	}

	db, err := config.SetupDatabase(&cfg.DatabaseConfig)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := db.Close(); err != nil {
			slog.Warn("database close failed", "error", err)
		}
	}()

	if cfg.DatabaseConfig.MigrateOnStart {
		if err := db.Migrate(ctx); err != nil {
			slog.Error("migrations failed", "error", err)
			os.Exit(1)
		}
	}

	redisClient, err := config.SetupRedis(&cfg.RedisConfig, cfg.DatabaseConfig.ConnectRetries)
	if err != nil {
		slog.Error("redis connection failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			slog.Warn("redis close failed", "error", err)
		}
	}()

	srv, router := config.SetupServer(cfg)

	sessionRepo := repository.NewSigningSessionRepository(db)
	deliveryRepo := repository.NewDeliveryRepository()
	recipientRepo := repository.NewRecipientRepository()
	cacheRepo := repository.NewCacheRepository(redisClient, cfg.TTL.CacheTTL())

	s3Service, err := service.NewS3Service(ctx, &cfg.S3Config)
	if err != nil {
		slog.Error("s3 service setup failed", "error", err)
		os.Exit(1)
	}

	signingService := service.NewSigningService(
		sessionRepo,
		deliveryRepo,
		recipientRepo,
		cacheRepo,
		s3Service,
		pdfdoc.NewInspector(cfg.Signing.MaxPages),
		cfg.Signing,
		cfg.TTL.CacheTTL(),
	)
	recipientService := service.NewRecipientService(recipientRepo, db, cfg.TTL.RecipientTTL())

	signingHandler := handler.NewSigningHandler(signingService, &cfg.TTL, &cfg.Signing)
	recipientHandler := handler.NewRecipientHandler(recipientService)

	router.Get("/swagger/*", httpSwagger.WrapHandler)

	setupSigningRoutes(router, signingHandler, jwtService, cfg)
	setupRecipientRoutes(router, recipientHandler, jwtService, cfg)

	runServer(ctx, srv)
}

// issueOperatorToken mints a bearer token for the admin endpoints
func issueOperatorToken(jwtService *security.JWTService, email string, ttl time.Duration) (string, error) {
	if jwtService.SecretKey == "" {
		return "", errors.New("jwt secret_key is not configured")
	}
	if ttl <= 0 {
		return "", fmt.Errorf("token ttl must be positive, got %s", ttl)
	}
	return jwtService.GenerateAccessToken(email, email, ttl)
}

func setupSigningRoutes(r chi.Router, h *handler.SigningHandler, jwtService *security.JWTService, cfg *config.AppConfig) {
	r.Group(func(r chi.Router) {
		r.Use(security.JWTMiddleware(jwtService, cfg.Admin.AdminToken))
		r.Post("/api/generateSignLink", h.GenerateSignLink)
		r.Post("/api/admin/saveToFiles", h.SaveToFiles)
	})

	r.Get("/api/sign/{token}", h.GetSigningSession)
}

func setupRecipientRoutes(r chi.Router, h *handler.RecipientHandler, jwtService *security.JWTService, cfg *config.AppConfig) {
	r.Group(func(r chi.Router) {
		r.Use(security.JWTMiddleware(jwtService, cfg.Admin.AdminToken))
		r.Get("/api/admin/users", h.ListStaff)
		r.Get("/api/admin/clients", h.ListClients)
	})
}

func runServer(ctx context.Context, server *http.Server) {
	serverErrors := make(chan error, 1)
	go func() {
		slog.Info("server started", "addr", server.Addr)
		serverErrors <- server.ListenAndServe()
	}()

	signalChannel := make(chan os.Signal, 1)
	signal.Notify(signalChannel, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", "error", err)
			return
		}
	case sig := <-signalChannel:
		slog.Info("shutdown signal received", "signal", sig.String())
	}

	shutDownCtx, shutDownCancel := context.WithTimeout(ctx, 5*time.Second)
	defer shutDownCancel()

	if err := server.Shutdown(shutDownCtx); err != nil {
		slog.Warn("server shutdown failed", "error", err)
	} else {
		slog.Info("server stopped")
	}
}
