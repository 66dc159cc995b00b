package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"trello-sheets-sync/internal/middleware"
	syncHTTP "trello-sheets-sync/internal/sync/delivery/http"
	"trello-sheets-sync/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Sync domain
	syncHandler syncHTTP.Handler
	middleware  middleware.Middleware
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	// Sync domain
	SyncHandler syncHTTP.Handler
	Middleware  middleware.Middleware
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		syncHandler: cfg.SyncHandler,
		middleware:  cfg.Middleware,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.syncHandler == nil {
		return errors.New("sync handler is required")
	}
	return nil
}
