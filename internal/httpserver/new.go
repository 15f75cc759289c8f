package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"todo-web/config"
	"todo-web/pkg/log"
	"todo-web/pkg/storage"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Session state
	storage storage.Storage

	// Domains
	backend      config.BackendConfig
	session      config.SessionConfig
	auth         config.AuthConfig
	confirmation config.ConfirmationConfig
	taskList     config.TaskListConfig
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	// Storage backs credentials and flash notifications.
	Storage storage.Storage

	Backend      config.BackendConfig
	Session      config.SessionConfig
	Auth         config.AuthConfig
	Confirmation config.ConfirmationConfig
	TaskList     config.TaskListConfig
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:            logger,
		gin:          gin.New(),
		port:         cfg.Port,
		mode:         cfg.Mode,
		environment:  cfg.Environment,
		storage:      cfg.Storage,
		backend:      cfg.Backend,
		session:      cfg.Session,
		auth:         cfg.Auth,
		confirmation: cfg.Confirmation,
		taskList:     cfg.TaskList,
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
	if srv.storage == nil {
		return errors.New("storage is required")
	}
	if srv.backend.BaseURL == "" {
		return errors.New("backend base url is required")
	}
	return nil
}
