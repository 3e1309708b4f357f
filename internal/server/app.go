// Package server wires the application together: configuration, logging, the
// database pool, services, and the HTTP endpoint, plus graceful shutdown on
// OS signals.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/docport/internal/logging"
	"github.com/dmitrijs2005/docport/internal/server/config"
	"github.com/dmitrijs2005/docport/internal/server/httpapi"
	"github.com/dmitrijs2005/docport/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/docport/internal/server/services"
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	manager repomanager.RepositoryManager
	httpSrv *httpapi.Server
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	manager, err := repomanager.NewPostgresRepositoryManager(ctx, cfg.DatabaseDSN, repomanager.PoolOptions{
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxLifetime: cfg.DBConnMaxLifetime,
	})
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	us := services.NewUserService(manager.Users())
	ds := services.NewDocumentService(manager.Documents())

	httpSrv := httpapi.NewServer(httpapi.Options{
		Addr:            cfg.EndpointAddrHTTP,
		GinMode:         cfg.GinMode,
		CORSOrigins:     cfg.CORSAllowedOrigins,
		ShutdownTimeout: cfg.ShutdownTimeout,
	}, logger, us, ds)

	return &App{config: cfg, logger: logger, manager: manager, httpSrv: httpSrv}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := app.httpSrv.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}()

	wg.Wait()

	if err := app.manager.Close(); err != nil {
		app.logger.Error(ctx, "Error closing db pool", "error", err.Error())
	}
	app.logger.Info(ctx, "App stopped")
}
