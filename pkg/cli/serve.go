package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"

	"github.com/MohitGedela/GeoShield/pkg/cli/config"
	httpctrl "github.com/MohitGedela/GeoShield/pkg/controller/http"
	"github.com/MohitGedela/GeoShield/pkg/controller/ws"
	"github.com/MohitGedela/GeoShield/pkg/service/broadcast"
	"github.com/MohitGedela/GeoShield/pkg/service/worker"
	"github.com/MohitGedela/GeoShield/pkg/usecase"
	"github.com/MohitGedela/GeoShield/pkg/utils/errutil"
	"github.com/MohitGedela/GeoShield/pkg/utils/logging"
)

const shutdownTimeout = 10 * time.Second

func cmdServe() *cli.Command {
	var addr string
	var clientURL string
	var observerBuffer int64
	var verificationTTL time.Duration
	var exposeCode bool
	var sweepInterval time.Duration
	var appCfg config.App
	var repoCfg config.Repository
	var slackCfg config.Slack

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Listen address",
			Category:    "Server",
			Value:       ":3001",
			Sources:     cli.EnvVars("GEOSHIELD_ADDR"),
			Destination: &addr,
		},
		&cli.StringFlag{
			Name:        "client-url",
			Usage:       "Origin of the web client, allowed by CORS and the socket endpoint (\"*\" allows any)",
			Category:    "Server",
			Value:       httpctrl.DefaultClientURL,
			Sources:     cli.EnvVars("GEOSHIELD_CLIENT_URL"),
			Destination: &clientURL,
		},
		&cli.Int64Flag{
			Name:        "observer-buffer",
			Usage:       "Per-observer event queue length; an observer whose queue fills is disconnected",
			Category:    "Server",
			Value:       64,
			Sources:     cli.EnvVars("GEOSHIELD_OBSERVER_BUFFER"),
			Destination: &observerBuffer,
		},
		&cli.DurationFlag{
			Name:        "verification-ttl",
			Usage:       "Lifetime of a phone verification code",
			Category:    "Verification",
			Value:       usecase.DefaultVerificationTTL,
			Sources:     cli.EnvVars("GEOSHIELD_VERIFICATION_TTL"),
			Destination: &verificationTTL,
		},
		&cli.BoolFlag{
			Name:        "expose-verification-code",
			Usage:       "Return verification codes in the send-code response (no SMS gateway is wired)",
			Category:    "Verification",
			Value:       true,
			Sources:     cli.EnvVars("GEOSHIELD_EXPOSE_VERIFICATION_CODE"),
			Destination: &exposeCode,
		},
		&cli.DurationFlag{
			Name:        "verification-sweep-interval",
			Usage:       "How often expired verification codes are purged",
			Category:    "Verification",
			Value:       time.Minute,
			Sources:     cli.EnvVars("GEOSHIELD_VERIFICATION_SWEEP_INTERVAL"),
			Destination: &sweepInterval,
		},
	}
	flags = append(flags, appCfg.Flags()...)
	flags = append(flags, repoCfg.Flags()...)
	flags = append(flags, slackCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start the coordination server",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			appConfig, err := appCfg.Configure()
			if err != nil {
				return err
			}

			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to configure repository")
			}
			defer func() {
				if err := repo.Close(); err != nil {
					errutil.Handle(ctx, err, "failed to close repository")
				}
			}()

			notifier, err := slackCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to configure slack notifier")
			}

			hub := broadcast.New(broadcast.WithBufferSize(int(observerBuffer)))

			ucOpts := []usecase.Option{
				usecase.WithBroadcaster(hub),
				usecase.WithVerificationTTL(verificationTTL),
				usecase.WithExposeVerificationCode(exposeCode),
			}
			if notifier != nil {
				ucOpts = append(ucOpts, usecase.WithNotifier(notifier))
			}
			uc := usecase.New(repo, ucOpts...)

			if err := uc.SafeZone.Seed(ctx, appConfig.ToSafeZones()); err != nil {
				return goerr.Wrap(err, "failed to seed safe zones")
			}

			socket := ws.New(hub, uc, ws.WithAllowedOrigin(clientURL))
			server := &http.Server{
				Addr: addr,
				Handler: httpctrl.New(uc,
					httpctrl.WithClientURL(clientURL),
					httpctrl.WithObserverEndpoint(socket, hub),
				),
				ReadHeaderTimeout: 30 * time.Second,
			}

			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()

			sweeper := worker.NewVerificationSweepWorker(uc.Verification, sweepInterval)
			if err := sweeper.Start(ctx); err != nil {
				return goerr.Wrap(err, "failed to start verification sweep worker")
			}

			eg, egCtx := errgroup.WithContext(ctx)
			eg.Go(func() error {
				logging.Default().Info("Starting server",
					"addr", addr,
					"client_url", clientURL,
					"repository", repoCfg,
					"slack", slackCfg,
					"safe_zones", len(appConfig.SafeZones),
				)
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					return goerr.Wrap(err, "failed to start server", goerr.V("addr", addr))
				}
				return nil
			})
			eg.Go(func() error {
				<-egCtx.Done()
				logging.Default().Info("Shutting down server")

				sweeper.Stop()
				// Socket connections are hijacked, so Shutdown does not wait for
				// them. Closing the hub ends their write pumps.
				hub.Close()

				shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer cancel()
				if err := server.Shutdown(shutdownCtx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server")
				}
				logging.Default().Info("Server stopped")
				return nil
			})

			return eg.Wait()
		},
	}
}
