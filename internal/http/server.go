package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/jingjie2002/GM-Tools-Admin/internal/domain"
	"github.com/jingjie2002/GM-Tools-Admin/internal/http/handlers"
	"github.com/jingjie2002/GM-Tools-Admin/internal/http/middleware"
	"github.com/jingjie2002/GM-Tools-Admin/internal/infrastructure/auth"
	"github.com/jingjie2002/GM-Tools-Admin/internal/infrastructure/logger"
	"github.com/jingjie2002/GM-Tools-Admin/internal/websocket"
)

// Server represents the HTTP server
type Server struct {
	router        *gin.Engine
	jwtService    auth.JWTService
	sessions      domain.SessionStore
	adminHandler  *handlers.AdminHandler
	playerHandler *handlers.PlayerHandler
	auditHandler  *handlers.AuditHandler
	hub           *websocket.Hub
	errorHandler  *middleware.ErrorHandler
	port          string
}

// NewServer creates a new HTTP server
func NewServer(
	jwtService auth.JWTService,
	sessions domain.SessionStore,
	adminHandler *handlers.AdminHandler,
	playerHandler *handlers.PlayerHandler,
	auditHandler *handlers.AuditHandler,
	hub *websocket.Hub,
	errorHandler *middleware.ErrorHandler,
	log *logger.Logger,
	port string,
) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	router.Use(errorHandler.RequestIDMiddleware())
	router.Use(errorHandler.TimeoutMiddleware(30 * time.Second))
	router.Use(errorHandler.ErrorHandlerMiddleware())
	router.Use(middleware.LoggerMiddleware(log))
	router.Use(gin.Recovery())

	server := &Server{
		router:        router,
		jwtService:    jwtService,
		sessions:      sessions,
		adminHandler:  adminHandler,
		playerHandler: playerHandler,
		auditHandler:  auditHandler,
		hub:           hub,
		errorHandler:  errorHandler,
		port:          port,
	}

	server.setupRoutes()
	return server
}

// setupRoutes configures all the routes
func (s *Server) setupRoutes() {
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	s.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	s.router.GET("/ws", s.hub.ServeWS)

	v1 := s.router.Group("/api/v1")
	{
		authRoutes := v1.Group("/auth")
		{
			authRoutes.POST("/login", s.adminHandler.Login)
		}

		protected := v1.Group("/")
		protected.Use(middleware.JWTMiddleware(s.jwtService, s.sessions))
		{
			protected.POST("/auth/logout", s.adminHandler.Logout)
			protected.GET("/auth/me", s.adminHandler.Me)

			playerRoutes := protected.Group("/players")
			{
				playerRoutes.GET("", s.playerHandler.Search)
				playerRoutes.POST("/give-item", s.playerHandler.GiveItem)
				playerRoutes.POST("/deduct-gold", s.playerHandler.DeductGold)
				playerRoutes.POST("/ban", s.playerHandler.Ban)
				playerRoutes.POST("/unban", s.playerHandler.Unban)
				playerRoutes.POST("/batch-ban", middleware.RequireRole(domain.RoleSuperAdmin), s.playerHandler.BatchBan)
			}

			protected.GET("/stats/daily", middleware.RequireRole(domain.RoleSuperAdmin), s.playerHandler.Stats)

			auditRoutes := protected.Group("/audit")
			{
				auditRoutes.GET("/logs", s.auditHandler.ListLogs)

				// Only a second authority may decide pending operations.
				review := auditRoutes.Group("/")
				review.Use(middleware.RequireRole(domain.RoleSuperAdmin))
				{
					review.GET("/pending", s.auditHandler.ListPending)
					review.POST("/:log_id/approve", s.auditHandler.Approve)
					review.POST("/:log_id/reject", s.auditHandler.Reject)
				}
			}
		}
	}
}

// Start starts the HTTP server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%s", s.port)
	return s.router.Run(addr)
}
