package app

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kegliz/qre/internal/config"
	"github.com/kegliz/qre/internal/estimatorsvc"
	"github.com/kegliz/qre/internal/logger"
	"github.com/kegliz/qre/internal/server/router"

	"github.com/kegliz/qre/internal/server"
)

type (
	ServerOptions struct {
		C       *config.Config
		Version string
	}

	appServer struct {
		logger  *logger.Logger
		router  *router.Router
		store   estimatorsvc.AlgorithmStore
		version string
	}

	appServerOptions struct {
		logger  *logger.Logger
		router  *router.Router
		store   estimatorsvc.AlgorithmStore
		version string
	}
)

// newAppServer creates a new appServer.
func newAppServer(options appServerOptions) *appServer {
	a := &appServer{
		logger:  options.logger,
		router:  options.router,
		store:   options.store,
		version: options.version,
	}
	a.router.SetRoutes(a.routes())
	return a
}

// Listen implements server.Server.
func (a *appServer) Listen(port int, localOnly bool) error {
	a.logger.Debug().Str("version", a.version).Msg("debug resource estimator server")
	a.logger.Info().
		Int("port", port).
		Bool("localOnly", localOnly).
		Msg("Starting resource estimator service")
	return a.router.Start(port, localOnly)
}

// Shutdown implements server.Server.
func (a *appServer) Shutdown(ctx context.Context) error {
	return a.router.Shutdown(ctx)
}

func NewServer(options ServerOptions) (server.Server, error) {
	l, r := server.NewLoggerAndRouter(server.EngineOptions{
		Debug: options.C.GetBool("debug"),
	})
	app := newAppServer(appServerOptions{
		logger:  l,
		router:  r,
		store:   estimatorsvc.NewAlgorithmStore(),
		version: options.Version,
	})

	return app, nil
}

func (a *appServer) getLoggerFromContext(c *gin.Context) (*logger.Logger, error) {
	if loggerInstance, ok := c.Get("logger"); ok {
		if loggerInstance, ok := loggerInstance.(*logger.Logger); ok {
			return loggerInstance, nil
		}
	}
	err := errors.New("logger not found in context")
	a.logger.Error().Err(err).Send()
	c.String(http.StatusInternalServerError, internalServerErrorMsg)
	return nil, err
}
