package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-golf-advising-backend/config"
	v1 "go-golf-advising-backend/internal/delivery/http/v1"
	"go-golf-advising-backend/internal/domain"
	"go-golf-advising-backend/internal/repository/memory"
	"go-golf-advising-backend/internal/repository/postgres"
	"go-golf-advising-backend/internal/usecase"
	"go-golf-advising-backend/pkg/auth"
	"go-golf-advising-backend/pkg/database"
	"go-golf-advising-backend/pkg/logger"
	"go-golf-advising-backend/pkg/openai"
	"go-golf-advising-backend/pkg/redis"
	"go-golf-advising-backend/pkg/security"
	"go-golf-advising-backend/pkg/successtoken"

	"github.com/go-playground/validator/v10"
)

func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting golf advising backend", "port", cfg.Port)

	// The dev fallback secret is for local environments only. Production
	// fails closed instead of silently signing with a public constant.
	if cfg.IsProduction() && (cfg.SignupSuccessSecret == "" || cfg.SessionSecret == "") {
		logger.Log.Error("SIGNUP_SUCCESS_SECRET and SESSION_SECRET must be set in production")
		os.Exit(1)
	}
	if cfg.SignupSuccessSecret == "" {
		logger.Log.Warn("SIGNUP_SUCCESS_SECRET not set, using dev fallback secret")
	}

	// 3. Setup Persistence (postgres when configured, in-memory otherwise)
	var (
		userRepo        domain.UserRepository
		profileRepo     domain.ProfileRepository
		testimonialRepo domain.TestimonialRepository
	)
	if cfg.DBUrl != "" {
		dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
		if err != nil {
			logger.Log.Error("Failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer dbPool.Close()

		userRepo = postgres.NewUserRepository(dbPool)
		profileRepo = postgres.NewProfileRepository(dbPool)
		testimonialRepo = postgres.NewTestimonialRepository(dbPool)
	} else {
		store := memory.NewSeededStore()
		userRepo = memory.NewUserRepository(store)
		profileRepo = memory.NewProfileRepository(store)
		testimonialRepo = memory.NewTestimonialRepository(store)
	}

	// 4. Setup Redis for rate limiting (optional)
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, rate limiting falls back to in-memory", "error", err)
	}
	defer redis.Close()

	// 5. Setup UseCases
	validate := validator.New()
	hasher := security.NewBcryptHasher()
	generator := openai.NewClient(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL)

	authUC := usecase.NewAuthUsecase(userRepo, hasher, validate)
	profileUC := usecase.NewProfileUsecase(profileRepo, validate)
	recommendationUC := usecase.NewRecommendationUsecase(profileRepo, generator)
	testimonialUC := usecase.NewTestimonialUsecase(testimonialRepo, validate)

	// 6. Token signers
	successTokens := successtoken.New(cfg.SignupSuccessSecret)
	sessionSecret := cfg.SessionSecret
	if sessionSecret == "" {
		sessionSecret = successtoken.DevFallbackSecret
	}
	sessions := auth.NewSessionIssuer(sessionSecret)

	// 7. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:           authUC,
		ProfileUC:        profileUC,
		RecommendationUC: recommendationUC,
		TestimonialUC:    testimonialUC,
		SuccessTokens:    successTokens,
		Sessions:         sessions,
		Config:           cfg,
	})

	// 8. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
