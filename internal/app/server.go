package app

import (
	"github.com/jingjie2002/GM-Tools-Admin/internal/domain"
	"github.com/jingjie2002/GM-Tools-Admin/internal/http"
	"github.com/jingjie2002/GM-Tools-Admin/internal/http/handlers"
	"github.com/jingjie2002/GM-Tools-Admin/internal/http/middleware"
	"github.com/jingjie2002/GM-Tools-Admin/internal/infrastructure/auth"
	"github.com/jingjie2002/GM-Tools-Admin/internal/infrastructure/logger"
	"github.com/jingjie2002/GM-Tools-Admin/internal/websocket"
)

func (a *application) InitHTTPServer(
	jwtService auth.JWTService,
	sessions domain.SessionStore,
	adminHandler *handlers.AdminHandler,
	playerHandler *handlers.PlayerHandler,
	auditHandler *handlers.AuditHandler,
	hub *websocket.Hub,
	errorHandler *middleware.ErrorHandler,
	log *logger.Logger,
) *http.Server {
	port := a.config.Server.Port
	if port == "" {
		port = "8080"
	}
	return http.NewServer(jwtService, sessions, adminHandler, playerHandler, auditHandler, hub, errorHandler, log, port)
}
