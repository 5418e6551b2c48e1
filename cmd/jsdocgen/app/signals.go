/*
Package app signal handling provides graceful shutdown for jsdocgen. A first
SIGINT or SIGTERM cancels the running generation and shuts components down; a
second one forces an immediate exit. SIGHUP reloads the environment
configuration.
*/
package app

import (
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"

	"github.com/sonemaro/jsdocgen/internal/config"
	"github.com/sonemaro/jsdocgen/pkg/logger"
)

// signalState tracks the state of signal handling
type signalState struct {
	shutdownInitiated atomic.Bool
}

// setupSignalHandling initializes signal handling for graceful shutdown
func (a *App) setupSignalHandling() {
	state := &signalState{}

	a.log.Debug("Initializing signal handlers")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan,
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGHUP,
	)

	go a.handleSignals(sigChan, state)
}

// handleSignals processes incoming system signals
func (a *App) handleSignals(sigChan chan os.Signal, state *signalState) {
	for sig := range sigChan {
		a.log.WithFields(logger.Fields{
			"signal": sig.String(),
		}).Debug("Received system signal")

		switch sig {
		case syscall.SIGINT, syscall.SIGTERM:
			if !state.shutdownInitiated.CompareAndSwap(false, true) {
				a.handleForcedShutdown()
				return
			}

			a.log.Info("Interrupt received, cancelling run")
			if err := a.Shutdown(); err != nil {
				a.log.WithFields(logger.Fields{
					"error": err,
				}).Error("Shutdown encountered errors")
			}

		case syscall.SIGHUP:
			a.handleHangup()
		}
	}
}

// handleForcedShutdown performs an immediate shutdown
func (a *App) handleForcedShutdown() {
	a.log.Warn("Second interrupt received, forcing shutdown")

	a.cancel()
	if a.progress != nil {
		a.progress.Stop()
	}

	os.Exit(1)
}

// handleHangup reloads configuration on SIGHUP
func (a *App) handleHangup() {
	a.log.Info("Received SIGHUP signal")

	a.mu.Lock()
	defer a.mu.Unlock()

	newConfig, err := config.Load()
	if err != nil {
		a.log.WithFields(logger.Fields{
			"error": err,
		}).Error("Failed to reload configuration")
		return
	}

	a.config = &newConfig
	a.initComponents()

	a.log.Info("Configuration reloaded successfully")
}
