package conductor

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

const (
	startupTimeout  time.Duration = time.Duration(5 * time.Second)
	shutdownTimeout time.Duration = time.Duration(5 * time.Second)
)

type Service interface {
	Run(chan bool, chan bool, chan context.Context) error
}

type serviceState struct {
	name     string
	service  Service
	ready    chan bool
	stopped  chan bool
	shutdown chan context.Context
}

type Conductor struct {
	started      bool          // Have we been started yet?
	noisy        bool          // Should we log lifecycle events?
	log          *zap.Logger   // where lifecycle events go
	startTimeout time.Duration // How long should we wait for each service to start before we die?
	stopTimeout  time.Duration // How long should we wait for each service to stop before we kill it?
	shutdown     chan bool     // channel to block on, indicates everything has stopped, returned from Start()
	stopOnce     sync.Once
	services     []*serviceState
	err          error // why startup failed, if it did
}

/* Create a new conductor instance, accepts Option funcs
for changing default behaviours */
func NewConductor(opts ...func(*Conductor)) *Conductor {
	c := Conductor{
		started:      false,
		noisy:        false,
		log:          zap.NewNop(),
		startTimeout: startupTimeout,
		stopTimeout:  shutdownTimeout,
		shutdown:     make(chan bool),
		services:     []*serviceState{},
	}

	for _, optFn := range opts {
		optFn(&c)
	}
	return &c
}

/* Add a Service with a name to be started in order when Start is called */
func (c *Conductor) Service(name string, service Service) {
	if c.started {
		panic("Cannot call Conductor.Service after Conductor.Start")
	}
	c.services = append(c.services,
		&serviceState{name, service, make(chan bool, 1), make(chan bool, 1), make(chan context.Context, 1)})
}

/* Start the conductor, each service is started in turn */
func (c *Conductor) Start() chan bool {
	c.started = true

	// start each Service one at a time, this gives us service dependency order.
	for i, srv := range c.services {
		c.logf("starting service", zap.String("service", srv.name))
		err := srv.service.Run(srv.ready, srv.stopped, srv.shutdown)
		if err != nil {
			// Service has failed to start with an error, shutdown everything
			c.log.Error("service failed to start", zap.String("service", srv.name), zap.Error(err))
			c.err = fmt.Errorf("service %s failed to start: %w", srv.name, err)
			go c.stop(c.services[:i])
			break
		}
		select {
		case <-time.After(c.startTimeout):
			// Service has timed out, shutdown everything
			c.log.Error("service timed out during startup", zap.String("service", srv.name))
			c.err = fmt.Errorf("service %s timed out during startup", srv.name)
			go c.stop(c.services[:i+1])
			return c.shutdown
		case <-srv.ready:
			c.logf("service started", zap.String("service", srv.name))
			continue
		}
	}
	return c.shutdown
}

// Err reports why startup failed, or nil. Read it after the channel
// returned by Start is closed.
func (c *Conductor) Err() error {
	return c.err
}

// Stop begins shutting down every service; the channel returned by Start
// is closed once they have stopped or the timeout has passed.
func (c *Conductor) Stop() {
	c.stop(c.services)
}

func (c *Conductor) stop(services []*serviceState) {
	c.stopOnce.Do(func() {
		// signal all services they should shutdown within timeout seconds
		ctx, cancel := context.WithTimeout(context.Background(), c.stopTimeout)
		defer cancel()

		wg := sync.WaitGroup{}
		// we're waiting for this many services to close..
		wg.Add(len(services))

		// create a done channel that gets closed when all services are shutdown
		done := make(chan bool)
		go func() {
			wg.Wait()
			close(done)
		}()

		// decrement our waitgroup when each service says it has stopped
		for _, state := range services {
			c.logf("requesting shutdown", zap.String("service", state.name))
			state.shutdown <- ctx
			go func(s *serviceState) {
				<-s.stopped
				c.logf("shutdown complete", zap.String("service", s.name))
				wg.Done()
			}(state)
		}

		// Wait for either all services to close, or the timeout to occur then signal shutdown.
		select {
		case <-done:
			c.logf("all services stopped")
		case <-time.After(c.stopTimeout + time.Second):
			c.log.Warn("timeout exceeded waiting for services to stop")
		}
		close(c.shutdown)
	})
}

func (c *Conductor) logf(msg string, fields ...zap.Field) {
	if c.noisy {
		c.log.Info(msg, fields...)
	}
}
