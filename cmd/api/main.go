package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"jtrack-backend/config"
	"jtrack-backend/internal/cache"
	v1 "jtrack-backend/internal/delivery/http/v1"
	"jtrack-backend/internal/domain"
	"jtrack-backend/internal/repository/postgres"
	"jtrack-backend/internal/repository/redisrepo"
	"jtrack-backend/internal/usecase"
	"jtrack-backend/pkg/auth"
	"jtrack-backend/pkg/database"
	"jtrack-backend/pkg/logger"
	"jtrack-backend/pkg/redis"
	"jtrack-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// @title           JTrack API
// @version         1.0
// @description     Backend for the JTrack job application tracker.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting jtrack backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (optional: rate limiting and preferences degrade without it)
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, using in-memory fallbacks", "error", err)
	}
	defer redis.Close()

	// 5. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	applicationRepo := postgres.NewApplicationRepository(dbPool)
	interviewRepo := postgres.NewInterviewRepository(dbPool)
	referralRepo := postgres.NewReferralRepository(dbPool)

	var preferenceRepo domain.PreferenceRepository
	if client := redis.Client(); client != nil {
		preferenceRepo = redisrepo.NewPreferenceRepository(client)
	} else {
		preferenceRepo = redisrepo.NewMemoryPreferenceRepository()
	}

	// 6. Setup per-user cache sessions
	sessions := cache.NewManager(applicationRepo, interviewRepo, referralRepo)

	// 7. Setup UseCases
	validate := validator.New()
	validation.RegisterValidators(validate)

	policy := domain.DeleteConfirmPolicy{
		Applications: cfg.DeleteConfirmApplications,
		Interviews:   cfg.DeleteConfirmInterviews,
		Referrals:    cfg.DeleteConfirmReferrals,
	}

	gotrue := auth.NewGoTrueClient(cfg.SupabaseUrl, cfg.SupabaseKey)
	authUC := usecase.NewAuthUsecase(gotrue, userRepo, sessions, validate)
	applicationUC := usecase.NewApplicationUsecase(sessions, applicationRepo, validate, policy)
	interviewUC := usecase.NewInterviewUsecase(sessions, interviewRepo, applicationRepo, validate, policy)
	referralUC := usecase.NewReferralUsecase(sessions, referralRepo, applicationRepo, validate, policy)
	analyticsUC := usecase.NewAnalyticsUsecase(sessions)
	preferenceUC := usecase.NewPreferenceUsecase(preferenceRepo, validate)

	// 8. Setup Auth Provider (JWKS)
	jwksURL := cfg.SupabaseUrl + "/auth/v1/.well-known/jwks.json"
	jwksProvider := auth.NewProvider(jwksURL)

	// 9. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:        authUC,
		ApplicationUC: applicationUC,
		InterviewUC:   interviewUC,
		ReferralUC:    referralUC,
		AnalyticsUC:   analyticsUC,
		PreferenceUC:  preferenceUC,
		JWKSProvider:  jwksProvider,
		Config:        cfg,
	})

	// 10. Start Server
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
