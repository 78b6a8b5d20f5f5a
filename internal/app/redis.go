package app

import (
	"github.com/jingjie2002/GM-Tools-Admin/internal/domain"
	"github.com/jingjie2002/GM-Tools-Admin/internal/infrastructure/logger"
	"github.com/jingjie2002/GM-Tools-Admin/internal/infrastructure/redis"
)

func (a *application) InitRedis(log *logger.Logger) (*redis.Service, error) {
	return redis.NewService(&redis.Config{
		Addr:     a.config.Redis.Addr,
		Password: a.config.Redis.Password,
		DB:       a.config.Redis.DB,
	}, log)
}

func (a *application) InitLocker(svc *redis.Service) domain.DistributedLocker {
	return svc
}

func (a *application) InitSessionStore(svc *redis.Service) domain.SessionStore {
	return svc
}
