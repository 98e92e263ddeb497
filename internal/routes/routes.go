package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/primevest/backend/internal/handlers"
	"github.com/primevest/backend/internal/middleware"
)

// Handlers groups everything the router needs
type Handlers struct {
	Auth       *handlers.AuthHandler
	Investment *handlers.InvestmentHandler
	Roi        *handlers.RoiHandler
	Referral   *handlers.ReferralHandler
	Dashboard  *handlers.DashboardHandler
	Admin      *handlers.AdminHandler
}

// SetupRouter configures the gin engine with all routes and middleware
func SetupRouter(h Handlers, frontendURL string) *gin.Engine {
	router := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{frontendURL}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	rateLimiter := middleware.NewRateLimiter(20, 40)
	router.Use(rateLimiter.Limit())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", h.Auth.Register)
		authGroup.POST("/login", h.Auth.Login)
	}

	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.POST("/investments", h.Investment.Create)
		protected.GET("/investments", h.Investment.List)

		protected.GET("/roi/history", h.Roi.History)

		protected.GET("/referrals/tree", h.Referral.GetTree)

		protected.GET("/dashboard", h.Dashboard.Get)
	}

	admin := api.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		admin.POST("/roi/process-daily", h.Roi.ProcessDaily)
		admin.GET("/levels", h.Admin.GetLevels)
		admin.PUT("/levels", h.Admin.SetLevels)
	}

	return router
}
