// Command tagsim stands in for the positioning hardware: it reports the
// position of one tag to the backend's POST /position endpoint, optionally
// checking a set of credentials against POST /token first.
package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-autonav/internal/adapter"
	"github.com/MKhiriev/go-autonav/internal/config"
	"github.com/MKhiriev/go-autonav/internal/logger"
	"github.com/MKhiriev/go-autonav/internal/workers"
)

func main() {
	log := logger.NewLogger("tagsim")

	cfg, err := config.GetTagSimConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	positioning, err := adapter.NewHTTPPositioningAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating adapter")
	}

	version, err := positioning.Version(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("backend is not reachable")
	}
	log.Info().Str("version", version).Msg("connected to backend")

	if cfg.Username != "" && cfg.Password != "" {
		if _, err = positioning.Login(ctx, cfg.Username, cfg.Password); err != nil {
			log.Fatal().Err(err).Msg("login failed")
		}
		me, err := positioning.Me(ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("token check failed")
		}
		log.Info().Str("username", me.Username).Str("role", me.Role.String()).Msg("credentials accepted")
	}

	if err = workers.NewWorkers(workers.NewPositionReporter(positioning, *cfg, log)).Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("position reporting stopped")
	}
}
