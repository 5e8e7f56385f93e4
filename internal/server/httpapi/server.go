// Package httpapi is the thin HTTP transport over the application services:
// it maps verbs and paths to core operations and shapes their responses.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/taskboard/internal/logging"
	"github.com/dmitrijs2005/taskboard/internal/server/projects"
	"github.com/dmitrijs2005/taskboard/internal/server/users"
)

type HTTPServer struct {
	address   string
	logger    logging.Logger
	users     *users.Service
	projects  *projects.Service
	jwtSecret []byte
}

func NewHTTPServer(a string, l logging.Logger, us *users.Service, ps *projects.Service, secretKey string) (*HTTPServer, error) {
	return &HTTPServer{
		address:   a,
		logger:    l.With("module", "http_server"),
		users:     us,
		projects:  ps,
		jwtSecret: []byte(secretKey),
	}, nil
}

func (s *HTTPServer) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /ping", s.ping)
	mux.HandleFunc("POST /register", s.register)
	mux.HandleFunc("POST /login", s.login)
	mux.HandleFunc("POST /projects", s.withAuth(s.createProject))
	mux.HandleFunc("POST /projects/{projectId}/tasks", s.withAuth(s.addTask))
	mux.HandleFunc("PATCH /projects/{projectId}/tasks/{taskId}", s.withAuth(s.updateTaskStatus))

	return s.withRequestLog(mux)
}

func (s *HTTPServer) Run(ctx context.Context) error {

	srv := &http.Server{Addr: s.address, Handler: s.routes()}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
