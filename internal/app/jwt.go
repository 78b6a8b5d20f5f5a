package app

import (
	"github.com/jingjie2002/GM-Tools-Admin/internal/infrastructure/auth"
)

func (a *application) InitJWTService() auth.JWTService {
	return auth.NewJWTService(&a.config.JWT)
}
