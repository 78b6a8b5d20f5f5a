package app

import (
	"github.com/jingjie2002/GM-Tools-Admin/internal/config"
	"github.com/jingjie2002/GM-Tools-Admin/internal/infrastructure/logger"
)

func (a *application) InitLogger() *logger.Logger {
	return logger.NewLogger(config.GetEnvironment(), a.config.Log.Level)
}
