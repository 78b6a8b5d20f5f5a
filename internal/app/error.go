package app

import (
	"github.com/jingjie2002/GM-Tools-Admin/internal/http/middleware"
	"github.com/jingjie2002/GM-Tools-Admin/internal/infrastructure/logger"
)

func (a *application) InitErrorHandler(log *logger.Logger) *middleware.ErrorHandler {
	return middleware.NewErrorHandler(log)
}
