package httpserver

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	"smart-task-bot/internal/middleware"
	tgDelivery "smart-task-bot/internal/task/delivery/telegram"
	"smart-task-bot/pkg/log"
)

const EnvironmentProduction = "production"

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Task domain
	telegramHandler tgDelivery.Handler
	middleware      middleware.Middleware

	readyCheckFn func(ctx context.Context) error
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	// TelegramHandler is optional; without it no webhook route is registered.
	TelegramHandler tgDelivery.Handler
	Middleware      middleware.Middleware

	// ReadyCheck reports whether dependencies (the database) are reachable.
	ReadyCheck func(ctx context.Context) error
}

// New creates a new HTTPServer instance with all routes registered.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		telegramHandler: cfg.TelegramHandler,
		middleware:      cfg.Middleware,
		readyCheckFn:    cfg.ReadyCheck,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	srv.mapHandlers()
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
	return nil
}
