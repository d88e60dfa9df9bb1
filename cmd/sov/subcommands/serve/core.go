//
//  Copyright © Opsrig Inc. All rights reserved.
//

package serve

import (
	"context"
	"os"
	"os/signal"

	"github.com/urfave/cli/v3"

	"github.com/opsrig/scriptout/internal/logging"
	"github.com/opsrig/scriptout/pkg/core/config"
	"github.com/opsrig/scriptout/pkg/service"
)

var logger = logging.GetLogger("serve")

// Execute runs the serve command, starting the HTTP validation service.
// It shuts down gracefully on interrupt.
func Execute(ctx context.Context, cmd *cli.Command) error {
	config.Load()

	port := cmd.Int("port")
	if port == 0 {
		port = config.VConfig.GetInt(config.ServerPort)
	}

	server, err := service.CreateServer(port, service.Options{
		MaxBytes: config.VConfig.GetInt(config.ServerMaxBytes),
		History:  config.VConfig.GetInt(config.ServerHistory),
	})
	if err != nil {
		return err
	}

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit
	logger.Info("Shutting down server...")

	if err := server.Stop(ctx); err != nil {
		return err
	}

	logger.Info("Server exited gracefully.")
	return nil
}
