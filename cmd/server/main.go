package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/primevest/backend/internal/config"
	"github.com/primevest/backend/internal/database"
	"github.com/primevest/backend/internal/handlers"
	"github.com/primevest/backend/internal/jobs"
	"github.com/primevest/backend/internal/routes"
	"github.com/primevest/backend/internal/services/auth"
	"github.com/primevest/backend/internal/services/dashboard"
	"github.com/primevest/backend/internal/services/investment"
	"github.com/primevest/backend/internal/services/referral"
	"github.com/primevest/backend/internal/services/roi"
	"github.com/primevest/backend/internal/services/settings"
	"github.com/primevest/backend/internal/services/wallet"
)

func main() {
	// Initialize configuration
	cfg := config.LoadConfig()

	// Initialize database
	db, err := database.InitDB(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// Initialize Redis client used for read-side caching. The platform runs
	// without it; tree reads just skip the cache.
	var redisClient *redis.Client
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.URL,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if _, err := client.Ping(context.Background()).Result(); err != nil {
		log.Printf("Redis unavailable, referral tree caching disabled: %v", err)
	} else {
		redisClient = client
	}

	// Initialize services
	walletService := wallet.NewWalletService(db)
	settingsService := settings.NewSettingsService(db)
	referralService := referral.NewReferralService(
		db,
		walletService,
		redisClient,
		time.Duration(cfg.Engine.TreeCacheTTL)*time.Second,
	)
	roiService := roi.NewRoiService(db, walletService, referralService, settingsService)
	investmentService := investment.NewInvestmentService(db, referralService, settingsService)
	authService := auth.NewAuthService(db, cfg.JWT)
	dashboardService := dashboard.NewDashboardService(db, referralService)

	// Initialize router
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := routes.SetupRouter(routes.Handlers{
		Auth:       handlers.NewAuthHandler(authService),
		Investment: handlers.NewInvestmentHandler(investmentService),
		Roi:        handlers.NewRoiHandler(roiService),
		Referral:   handlers.NewReferralHandler(referralService),
		Dashboard:  handlers.NewDashboardHandler(dashboardService),
		Admin:      handlers.NewAdminHandler(settingsService),
	}, cfg.FrontendURL)

	// Schedule the daily accrual cycle
	dailyJob := jobs.NewDailyRoiJob(roiService)
	if err := dailyJob.Start(cfg.Engine.RunHourUTC); err != nil {
		log.Fatalf("Failed to start daily ROI job: %v", err)
	}

	// Start server
	srv := startServer(router, cfg.Server)

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	dailyJob.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}

// startServer starts the HTTP server
func startServer(router *gin.Engine, cfg config.ServerConfig) *http.Server {
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	log.Printf("Server started on port %s", cfg.Port)
	return srv
}
