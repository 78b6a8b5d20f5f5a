package app

import (
	"context"
	"flag"
	"fmt"
	"log"

	"go.uber.org/fx"

	"github.com/jingjie2002/GM-Tools-Admin/internal/config"
)

// Application provides application level setup
type Application interface {
	Setup()
	GetContext() context.Context
}

// application represents context and configure file
type application struct {
	ctx    context.Context
	config *config.Config
}

// NewApplication creates a new application
func NewApplication(ctx context.Context) Application {
	return &application{ctx: ctx}
}

// GetContext returns application context
func (a *application) GetContext() context.Context {
	return a.ctx
}

// Setup creates a new fx application with all modules
func (a *application) Setup() {
	fmt.Println("[x] Starting GM Tools Admin Service...")

	path := flag.String("e", "./config", "env file directory")
	flag.Parse()

	if err := a.setupViper(*path); err != nil {
		log.Panic(err.Error())
	}

	app := fx.New(
		fx.Provide(
			a.InitLogger,
			a.InitDatabase,
			a.InitRedis,
			a.InitLocker,
			a.InitSessionStore,
			a.InitJWTService,
			a.InitRepositories,
			a.InitQueueMetrics,
			a.InitWebsocketHub,
			a.InitEventPublisher,
			a.InitPlayerUseCase,
			a.InitPlayerBanner,
			a.InitBanQueueEngine,
			a.InitBanQueue,
			a.InitAuditUseCase,
			a.InitAdminUseCase,
			a.InitBanExpirySweeper,
			a.InitErrorHandler,
			a.InitAdminHandler,
			a.InitPlayerHandler,
			a.InitAuditHandler,
			a.InitHTTPServer,
		),
		fx.Invoke(a.registerHooks),
	)

	app.Run()
}
