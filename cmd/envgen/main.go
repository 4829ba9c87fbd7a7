package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/coffeeshop-env/internal/adapter"
	"github.com/MKhiriev/coffeeshop-env/internal/config"
	"github.com/MKhiriev/coffeeshop-env/internal/logger"
	"github.com/MKhiriev/coffeeshop-env/internal/render"
	"github.com/MKhiriev/coffeeshop-env/internal/service"
	"github.com/MKhiriev/coffeeshop-env/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(os.Stderr, buildInfo)

	log := logger.NewCLILogger("envgen")
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

	environmentService, err := service.NewEnvironmentService(cfg.Environment(), provider, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating environment service")
	}

	ctx := context.Background()
	if provider != nil {
		if err = environmentService.VerifyProvider(ctx); err != nil {
			log.Fatal().Err(err).Msg("identity provider check failed")
		}
	}

	if err = writeEnvironment(cfg.Output, environmentService.GetEnvironment(ctx)); err != nil {
		log.Fatal().Err(err).Msg("error writing environment")
	}

	log.Info().
		Str("target", cfg.App.Target).
		Str("format", cfg.Output.Format).
		Str("path", cfg.Output.Path).
		Msg("environment generated")
}

// writeEnvironment renders env to cfg.Path, or to stdout when no path is set.
func writeEnvironment(cfg config.Output, env models.Environment) error {
	if cfg.Path == "" {
		return render.Render(os.Stdout, env, cfg.Format)
	}

	f, err := os.Create(cfg.Path)
	if err != nil {
		return fmt.Errorf("error creating output file: %w", err)
	}

	if err = render.Render(f, env, cfg.Format); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

func printBuildInfo(w io.Writer, info models.AppBuildInfo) {
	fmt.Fprintf(w, "Build version: %s\n", info.BuildVersion())
	fmt.Fprintf(w, "Build date: %s\n", info.BuildDate())
	fmt.Fprintf(w, "Build commit: %s\n", info.BuildCommit())
}
