package main

import (
	"time"

	giga "github.com/dogecoinfoundation/gigabase58/pkg"
	"github.com/dogecoinfoundation/gigabase58/pkg/conductor"
	"github.com/dogecoinfoundation/gigabase58/pkg/webapi"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

func Server(conf giga.Config) error {
	log, err := giga.NewLogger(conf)
	if err != nil {
		return err
	}
	defer log.Sync()

	c := conductor.NewConductor(
		conductor.Logger(log),
		conductor.HookSignals(),
		conductor.Noisy(),
		conductor.ShutdownTimeout(time.Duration(conf.WebAPI.ShutdownTimeout)*time.Second),
	)

	api, err := giga.NewAPI(conf, log)
	if err != nil {
		return errors.Wrap(err, "invalid codec defaults")
	}
	log.Info("codec defaults", zap.Stringer("codec", api.Defaults()))

	// Start the web API
	web, err := webapi.NewWebAPI(conf, api, log)
	if err != nil {
		return err
	}
	c.Service("WebAPI", web)

	<-c.Start()
	return c.Err()
}
