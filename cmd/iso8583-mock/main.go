// Command iso8583-mock starts the Mastercard-style ISO 8583 mock
// authorization server.
package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/alovak/iso8583-mock/simulator"
	"golang.org/x/exp/slog"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout))

	app := simulator.NewApp(logger, simulator.ConfigFromEnv())
	if err := app.Start(); err != nil {
		logger.Error("starting app", "err", err)
		os.Exit(1)
	}

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	sig := <-c

	logger.Info("shutdown signal received", slog.String("signal", sig.String()))

	app.Shutdown()
}
