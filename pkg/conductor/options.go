package conductor

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
)

// Sets the time allowed for a service to start before timing out
func StartupTimeout(d time.Duration) func(*Conductor) {
	return func(c *Conductor) {
		c.startTimeout = d
	}
}

// Sets the time allowed for a service to stop before timing out
func ShutdownTimeout(d time.Duration) func(*Conductor) {
	return func(c *Conductor) {
		c.stopTimeout = d
	}
}

// tells the Conductor to log lifecycle events
func Noisy() func(*Conductor) {
	return func(c *Conductor) {
		c.noisy = true
	}
}

// Logger sets where lifecycle events and failures are logged.
func Logger(log *zap.Logger) func(*Conductor) {
	return func(c *Conductor) {
		c.log = log.Named("conductor")
	}
}

// This hooks SIGTERM and SIGINT and will shut down the Conductor
// if one is detected.
func HookSignals() func(*Conductor) {
	return func(c *Conductor) {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)
		go func() {
			defer signal.Stop(sigCh)
			select {
			case sig := <-sigCh: // sigterm/sigint caught
				c.log.Info("caught signal, shutting down", zap.Stringer("signal", sig))
				c.Stop()
			case <-c.shutdown: // service is closing down..
			}
		}()
	}
}
