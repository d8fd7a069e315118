package api

import (
	"net/http"

	"github.com/alligatorO15/fin-dashboard/internal/api/handlers"
	"github.com/alligatorO15/fin-dashboard/internal/api/middleware"
	"github.com/alligatorO15/fin-dashboard/internal/config"
	"github.com/alligatorO15/fin-dashboard/internal/service"
	"github.com/gin-gonic/gin"
)

type Server struct {
	router   *gin.Engine
	config   *config.Config
	services *service.Services
}

func NewServer(cfg *config.Config, services *service.Services) *Server {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())

	server := &Server{
		router:   router,
		config:   cfg,
		services: services,
	}

	server.setupRoutes()

	return server
}

func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

// Handler для httptest
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) setupRoutes() {
	s.router.Use(middleware.CORS(s.config.CORSAllowedOrigins))
	s.router.Use(middleware.RequestLogger())

	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := s.router.Group("/api/v1")

	authHandler := handlers.NewAuthHandler(s.services.Auth, s.config)
	categoryHandler := handlers.NewCategoryHandler(s.services.Category)
	transactionHandler := handlers.NewTransactionHandler(s.services.Transaction)
	analyticsHandler := handlers.NewAnalyticsHandler(s.services.Analytics)

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// публичные
	auth := api.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/refresh", authHandler.Refresh)
		auth.POST("/logout", authHandler.Logout)
	}

	protected := api.Group("")
	protected.Use(middleware.Auth(s.services.Auth))
	{
		protected.POST("/auth/logout-all", authHandler.LogoutAll)

		categories := protected.Group("/categories")
		{
			categories.POST("", categoryHandler.Create)
			categories.GET("", categoryHandler.List)
			categories.GET("/:id", categoryHandler.GetByID)
			categories.PUT("/:id", categoryHandler.Update)
			categories.DELETE("/:id", categoryHandler.Delete)
		}

		transactions := protected.Group("/transactions")
		{
			transactions.POST("", transactionHandler.Create)
			transactions.GET("", transactionHandler.List)
			transactions.GET("/:id", transactionHandler.GetByID)
			transactions.PUT("/:id", transactionHandler.Update)
			transactions.PATCH("/:id/reported", transactionHandler.SetReported)
			transactions.DELETE("/:id", transactionHandler.Delete)
		}

		analytics := protected.Group("/analytics")
		{
			analytics.GET("/snapshot", analyticsHandler.GetSnapshot)
			analytics.GET("/category-trends", analyticsHandler.GetCategoryTrends)
			analytics.GET("/recurring", analyticsHandler.GetRecurring)
			analytics.GET("/anomalies", analyticsHandler.GetAnomalies)
			analytics.GET("/predictions", analyticsHandler.GetPredictions)
		}
	}
}
