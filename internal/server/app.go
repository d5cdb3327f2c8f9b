// Package server initializes and runs the file store server.
// It prepares the storage root and the user registry, wires the services
// together, handles graceful shutdown, and starts the TCP server.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/filekeeper/internal/filex"
	"github.com/dmitrijs2005/filekeeper/internal/logging"
	"github.com/dmitrijs2005/filekeeper/internal/server/config"
	"github.com/dmitrijs2005/filekeeper/internal/server/repositories/registry"
	"github.com/dmitrijs2005/filekeeper/internal/server/router"
	"github.com/dmitrijs2005/filekeeper/internal/server/services"
	"github.com/dmitrijs2005/filekeeper/internal/server/tcp"
)

type App struct {
	config *config.Config
	logger logging.Logger
	router *router.Router
}

func NewApp(c *config.Config) (*App, error) {

	slog := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(slog)

	if _, err := filex.EnsureDir(c.StorePath); err != nil {
		return nil, fmt.Errorf("store init error: %w", err)
	}

	repo, err := registry.NewJSONFileRepository(c.RegistryPath)
	if err != nil {
		return nil, fmt.Errorf("registry init error: %w", err)
	}

	us := services.NewUserService(repo, c)
	ns := services.NewNavigatorService(repo)
	ts := services.NewTransferService()

	r := router.New(us, ns, ts, logger)

	return &App{config: c, logger: logger, router: r}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startTCPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s := tcp.NewServer(app.config.BindAddr, app.router, app.logger)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startTCPServer(ctx, cancelFunc)
	}()

	wg.Wait()

}
