package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/coffeeshop-env/internal/adapter"
	"github.com/MKhiriev/coffeeshop-env/internal/config"
	"github.com/MKhiriev/coffeeshop-env/internal/handler"
	"github.com/MKhiriev/coffeeshop-env/internal/logger"
	"github.com/MKhiriev/coffeeshop-env/internal/server"
	"github.com/MKhiriev/coffeeshop-env/internal/service"
	"github.com/MKhiriev/coffeeshop-env/internal/workers"
	"github.com/MKhiriev/coffeeshop-env/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewLogger("envserver")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	var provider adapter.IdentityProviderAdapter
	if cfg.Adapter.CheckProvider {
		provider, err = adapter.NewHTTPIdentityProviderAdapter(cfg.Auth0, cfg.Adapter, log)
		if err != nil {
			log.Fatal().Err(err).Msg("error creating identity provider adapter")
		}
	}

	services, err := service.NewServices(cfg, buildInfo, provider, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if provider != nil {
		if err = services.EnvironmentService.VerifyProvider(ctx); err != nil {
			log.Warn().Err(err).Msg("identity provider check failed")
		}
	}

	workers.NewWorkers(services, cfg.Adapter, log).Run(ctx)

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Fatal().Err(err).Msg("error running server")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
