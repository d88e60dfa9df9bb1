//
//  Copyright © Opsrig Inc. All rights reserved.
//

package service

import (
	"context"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/opsrig/scriptout/internal/logging"
)

var logger = logging.GetLogger("service")

// Options tunes the validation service. Zero values fall back to the
// documented defaults.
type Options struct {
	// MaxBytes caps the accepted output size. Default 1 MiB.
	MaxBytes int
	// History is the number of validation records retained. Default 64.
	History int
}

// Server is the HTTP validation service.
type Server struct {
	echo *echo.Echo
}

// CreateServer creates and starts a validation service on the given
// port. The returned server runs until [Server.Stop] is called.
func CreateServer(port int, opts Options) (*Server, error) {
	if opts.MaxBytes <= 0 {
		opts.MaxBytes = 1 << 20
	}
	if opts.History <= 0 {
		opts.History = 64
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	newHandlers(NewStore(opts.History), opts.MaxBytes).register(e)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Start in a goroutine since e.Start() blocks.
	go func() {
		logger.Infof("validation service listening on :%d", port)
		if err := e.Start(fmt.Sprintf(":%d", port)); err != nil && err != http.ErrServerClosed {
			e.Logger.Fatal(err)
		}
	}()

	return &Server{echo: e}, nil
}

// Stop gracefully shuts down the HTTP server.
func (s *Server) Stop(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
