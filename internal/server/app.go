// Package server initializes and runs the main application server.
// It selects the storage backend, loads the durable collections, wires the
// services, handles graceful shutdown, and starts the HTTP server.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/taskboard/internal/logging"
	"github.com/dmitrijs2005/taskboard/internal/server/config"
	"github.com/dmitrijs2005/taskboard/internal/server/httpapi"
	"github.com/dmitrijs2005/taskboard/internal/server/projects"
	"github.com/dmitrijs2005/taskboard/internal/server/storage"
	"github.com/dmitrijs2005/taskboard/internal/server/users"
)

type App struct {
	config         *config.Config
	logger         logging.Logger
	userService    *users.Service
	projectService *projects.Service
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	slogger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(slogger)

	store, err := newStore(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("storage init error: %w", err)
	}

	userRepo, err := users.NewMemoryRepository(ctx, store)
	if err != nil {
		return nil, fmt.Errorf("users init error: %w", err)
	}

	projectRepo, err := projects.NewMemoryRepository(ctx, store)
	if err != nil {
		return nil, fmt.Errorf("projects init error: %w", err)
	}

	us := users.NewService(userRepo, c)
	ps := projects.NewService(projectRepo)

	return &App{config: c, logger: logger, userService: us, projectService: ps}, nil
}

// newStore picks the durable backend for the write-through collections.
func newStore(ctx context.Context, c *config.Config) (storage.Store, error) {
	switch c.StorageBackend {
	case config.StorageFile:
		return storage.NewFileStore(c.DataDir)
	case config.StorageS3:
		return storage.NewS3Store(ctx, storage.S3Options{
			User:         c.S3RootUser,
			Password:     c.S3RootPassword,
			Bucket:       c.S3Bucket,
			Region:       c.S3Region,
			BaseEndpoint: c.S3BaseEndpoint,
		})
	case config.StoragePostgres:
		return storage.NewPostgresStore(ctx, c.DatabaseDSN)
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", c.StorageBackend)
	}
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

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s, err := httpapi.NewHTTPServer(app.config.EndpointAddrHTTP, app.logger, app.userService, app.projectService, app.config.SecretKey)

	if err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
		return
	}

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
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()
}
