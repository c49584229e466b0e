package cli

import (
	"context"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/MohitGedela/GeoShield/pkg/cli/config"
	"github.com/MohitGedela/GeoShield/pkg/usecase"
	"github.com/MohitGedela/GeoShield/pkg/utils/logging"
)

func cmdValidate() *cli.Command {
	var appCfg config.App
	var repoCfg config.Repository
	var checkStore bool

	var flags []cli.Flag
	flags = append(flags, appCfg.Flags()...)
	flags = append(flags, repoCfg.Flags()...)
	flags = append(flags, &cli.BoolFlag{
		Name:        "check-store",
		Usage:       "Check assignment consistency of the stored requests and volunteers",
		Sources:     cli.EnvVars("GEOSHIELD_CHECK_STORE"),
		Destination: &checkStore,
	})

	return &cli.Command{
		Name:    "validate",
		Aliases: []string{"v"},
		Usage:   "Validate the configuration file and optionally check store consistency",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := logging.Default()

			appConfig, err := appCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "configuration validation failed")
			}
			logger.Info("Configuration validation passed",
				"path", appCfg.Path(),
				"safe_zone_count", len(appConfig.SafeZones),
			)
			for _, zone := range appConfig.SafeZones {
				logger.Info("Safe zone validated",
					"id", zone.ID,
					"name", zone.Name,
					"capacity", zone.Capacity,
				)
			}

			if !checkStore {
				return nil
			}

			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to configure repository")
			}
			defer func() {
				if err := repo.Close(); err != nil {
					logger.Error("failed to close repository", "error", err.Error())
				}
			}()

			violations, err := usecase.New(repo).Assignment.ValidateStore(ctx)
			if err != nil {
				return goerr.Wrap(err, "store consistency check failed")
			}
			if len(violations) > 0 {
				for _, v := range violations {
					logger.Warn("Store consistency issue found",
						"request_id", v.RequestID,
						"volunteer_id", v.VolunteerID,
						"message", v.Message,
					)
				}
				return fmt.Errorf("store consistency check found %d issue(s)", len(violations))
			}

			logger.Info("Store consistency check passed", "repository", repoCfg)
			return nil
		},
	}
}
