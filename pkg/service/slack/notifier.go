package slack

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/MohitGedela/GeoShield/pkg/domain/interfaces"
	"github.com/MohitGedela/GeoShield/pkg/domain/model"
	"github.com/MohitGedela/GeoShield/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"github.com/slack-go/slack"
)

// maxSectionTextBytes keeps section text under Slack's 3000 character limit
const maxSectionTextBytes = 2900

// Notifier posts coordinator notifications to a single channel
type Notifier struct {
	svc       Service
	channelID string
}

var _ interfaces.Notifier = &Notifier{}

func NewNotifier(svc Service, channelID string) *Notifier {
	return &Notifier{svc: svc, channelID: channelID}
}

// NotifyUrgentRequest posts a newly created Urgent request
func (n *Notifier) NotifyUrgentRequest(ctx context.Context, req *model.Request) error {
	blocks := buildRequestBlocks(":rotating_light: Urgent request: "+req.Type, req)
	text := fmt.Sprintf("Urgent %s request: %s", req.Type, req.Description)

	if _, err := n.svc.PostMessage(ctx, n.channelID, blocks, text); err != nil {
		return goerr.Wrap(err, "failed to notify urgent request", goerr.V(model.RequestIDKey, req.ID))
	}
	return nil
}

// NotifyAlertForwarded posts one message summarizing an alert sent to volunteers
func (n *Notifier) NotifyAlertForwarded(ctx context.Context, req *model.Request, alerts []*model.Alert) error {
	if len(alerts) == 0 {
		return nil
	}

	blocks := buildRequestBlocks(fmt.Sprintf(":mega: Alert forwarded to %d volunteer(s)", len(alerts)), req)
	blocks = append(blocks, slack.NewSectionBlock(
		slack.NewTextBlockObject(slack.MarkdownType, "*Message:* "+truncate(alerts[0].Message, maxSectionTextBytes), false, false),
		nil, nil,
	))

	text := fmt.Sprintf("Alert for %s request forwarded to %d volunteer(s)", req.Type, len(alerts))
	if _, err := n.svc.PostMessage(ctx, n.channelID, blocks, text); err != nil {
		return goerr.Wrap(err, "failed to notify forwarded alert", goerr.V(model.RequestIDKey, req.ID))
	}
	return nil
}

func buildRequestBlocks(title string, req *model.Request) []slack.Block {
	blocks := []slack.Block{
		slack.NewHeaderBlock(
			slack.NewTextBlockObject(slack.PlainTextType, truncate(title, 150), true, false),
		),
	}

	if req.Description != "" {
		blocks = append(blocks, slack.NewSectionBlock(
			slack.NewTextBlockObject(slack.MarkdownType, truncate(req.Description, maxSectionTextBytes), false, false),
			nil, nil,
		))
	}

	fields := []*slack.TextBlockObject{
		slack.NewTextBlockObject(slack.MarkdownType, "*Urgency:*\n"+urgencyLabel(req.Urgency), false, false),
		slack.NewTextBlockObject(slack.MarkdownType, fmt.Sprintf("*Status:*\n%s", req.Status), false, false),
	}
	if req.PeopleCount > 0 {
		fields = append(fields, slack.NewTextBlockObject(slack.MarkdownType, fmt.Sprintf("*People:*\n%d", req.PeopleCount), false, false))
	}
	fields = append(fields, slack.NewTextBlockObject(slack.MarkdownType, "*Location:*\n"+locationText(req.Location), false, false))
	blocks = append(blocks, slack.NewSectionBlock(nil, fields, nil))

	contextParts := []string{fmt.Sprintf("Request `%s`", req.ID)}
	if req.SurvivorName != "" {
		contextParts = append(contextParts, "From: "+req.SurvivorName)
	}
	blocks = append(blocks, slack.NewContextBlock("",
		slack.NewTextBlockObject(slack.MarkdownType, strings.Join(contextParts, "  |  "), false, false),
	))

	return blocks
}

func urgencyLabel(u types.Urgency) string {
	switch u {
	case types.UrgencyUrgent:
		return ":red_circle: Urgent"
	case types.UrgencyHigh:
		return ":large_orange_circle: High"
	case types.UrgencyLow:
		return ":white_circle: Low"
	default:
		return ":large_blue_circle: " + u.Normalize().String()
	}
}

func locationText(loc model.Location) string {
	link := fmt.Sprintf("https://www.google.com/maps?q=%.6f,%.6f", loc.Lat, loc.Lng)
	if loc.Address != "" {
		return fmt.Sprintf("<%s|%s>", link, loc.Address)
	}
	return fmt.Sprintf("<%s|%.4f, %.4f>", link, loc.Lat, loc.Lng)
}

// truncate cuts s to at most maxBytes without splitting a UTF-8 sequence
func truncate(s string, maxBytes int) string {
	if len(s) <= maxBytes {
		return s
	}
	cut := maxBytes - len("…")
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "…"
}
