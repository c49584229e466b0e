package config

import (
	"context"
	"log/slog"

	"github.com/MohitGedela/GeoShield/pkg/domain/interfaces"
	"github.com/MohitGedela/GeoShield/pkg/service/slack"
	"github.com/MohitGedela/GeoShield/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// Slack holds CLI flags for coordinator notifications
type Slack struct {
	botToken  string
	channelID string
	apiURL    string
}

func (x *Slack) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-bot-token",
			Usage:       "Slack Bot User OAuth Token (for coordinator notifications)",
			Category:    "Slack",
			Destination: &x.botToken,
			Sources:     cli.EnvVars("GEOSHIELD_SLACK_BOT_TOKEN"),
		},
		&cli.StringFlag{
			Name:        "slack-channel-id",
			Usage:       "Slack channel ID that receives urgent requests and forwarded alerts",
			Category:    "Slack",
			Destination: &x.channelID,
			Sources:     cli.EnvVars("GEOSHIELD_SLACK_CHANNEL_ID"),
		},
	}
}

func (x Slack) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("bot-token.len", len(x.botToken)),
		slog.String("channel-id", x.channelID),
	)
}

// IsConfigured checks if Slack notification configuration is complete
func (x *Slack) IsConfigured() bool {
	return x.botToken != "" && x.channelID != ""
}

// Configure returns a notifier posting to the configured channel, or nil when Slack
// is not configured. Setting only one of the two flags is an error.
func (x *Slack) Configure(ctx context.Context) (interfaces.Notifier, error) {
	if x.botToken == "" && x.channelID == "" {
		return nil, nil
	}
	if !x.IsConfigured() {
		return nil, goerr.Wrap(ErrInvalidConfig, "--slack-bot-token and --slack-channel-id must be set together")
	}

	var opts []slack.Option
	if x.apiURL != "" {
		opts = append(opts, slack.WithAPIURL(x.apiURL))
	}
	svc, err := slack.New(x.botToken, opts...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to initialize slack service")
	}

	// Resolve the channel once so a bad channel ID shows up at startup
	name, err := svc.GetChannelName(ctx, x.channelID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to resolve slack channel", goerr.V("channel_id", x.channelID))
	}
	logging.Default().Info("Slack notifications enabled", "channel", name)

	return slack.NewNotifier(svc, x.channelID), nil
}
