package app

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/jingjie2002/GM-Tools-Admin/internal/http"
	"github.com/jingjie2002/GM-Tools-Admin/internal/infrastructure/banqueue"
	"github.com/jingjie2002/GM-Tools-Admin/internal/infrastructure/events"
	"github.com/jingjie2002/GM-Tools-Admin/internal/infrastructure/logger"
	"github.com/jingjie2002/GM-Tools-Admin/internal/infrastructure/redis"
	"github.com/jingjie2002/GM-Tools-Admin/internal/infrastructure/scheduler"
	"github.com/jingjie2002/GM-Tools-Admin/internal/websocket"
)

// registerHooks ties component lifecycles to the fx application. Startup
// brings the queue workers and the expiry sweeper up before the HTTP
// server begins accepting requests; shutdown drains them in reverse.
func (a *application) registerHooks(
	lifecycle fx.Lifecycle,
	server *http.Server,
	engine *banqueue.Engine,
	sweeper *scheduler.BanExpirySweeper,
	hub *websocket.Hub,
	kafkaSub *events.KafkaSubscriber,
	redisSvc *redis.Service,
	log *logger.Logger,
) {
	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			engine.Start()

			if err := sweeper.Start(); err != nil {
				return err
			}

			go func() {
				if err := server.Start(); err != nil {
					log.Error("HTTP server stopped", zap.Error(err))
				}
			}()

			log.Info("GM Tools Admin Service started",
				zap.String("port", a.config.Server.Port))
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down GM Tools Admin Service")

			engine.Stop()
			sweeper.Stop()
			hub.Close()

			if kafkaSub != nil {
				if err := kafkaSub.Close(); err != nil {
					log.Error("Kafka subscriber close failed", zap.Error(err))
				}
			}

			if err := redisSvc.Close(); err != nil {
				log.Error("Redis close failed", zap.Error(err))
			}

			return nil
		},
	})
}
