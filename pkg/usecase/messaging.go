package usecase

import (
	"context"
	"slices"
	"strings"

	"github.com/MohitGedela/GeoShield/pkg/domain/model"
	"github.com/MohitGedela/GeoShield/pkg/domain/types"
	"github.com/MohitGedela/GeoShield/pkg/utils/async"
	"github.com/MohitGedela/GeoShield/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// MessagingUseCase appends direct messages and forwarded alerts and publishes them to
// every observer. Observers pick out the records addressed to them.
type MessagingUseCase struct {
	core *core
}

type SendMessageInput struct {
	FromUserID string          `json:"fromUserId" validate:"required"`
	FromName   string          `json:"fromName"`
	ToUserID   string          `json:"toUserId" validate:"required"`
	RequestID  model.RequestID `json:"requestId"`
	Content    string          `json:"content" validate:"required"`
}

type ForwardAlertInput struct {
	RequestID    model.RequestID     `json:"requestId" validate:"required"`
	VolunteerIDs []model.VolunteerID `json:"volunteerIds" validate:"required,min=1,dive,required"`
	Message      string              `json:"message"`
}

// SendMessage stores a direct message and publishes newMessage
func (uc *MessagingUseCase) SendMessage(ctx context.Context, input SendMessageInput) (*model.Message, error) {
	if input.FromUserID == "" {
		return nil, goerr.Wrap(ErrMissingField, "sender is required", goerr.V(FieldKey, "fromUserId"))
	}
	if input.ToUserID == "" {
		return nil, goerr.Wrap(ErrMissingField, "recipient is required", goerr.V(FieldKey, "toUserId"))
	}
	if strings.TrimSpace(input.Content) == "" {
		return nil, goerr.Wrap(ErrMissingField, "message content is required", goerr.V(FieldKey, "content"))
	}

	c := uc.core
	c.mu.Lock()
	defer c.mu.Unlock()

	msg := &model.Message{
		ID:         model.NewMessageID(),
		FromUserID: input.FromUserID,
		FromName:   input.FromName,
		ToUserID:   input.ToUserID,
		RequestID:  input.RequestID,
		Content:    input.Content,
		Timestamp:  c.timestamp(),
	}

	created, err := c.repo.Message().Create(ctx, msg)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create message")
	}

	c.publish(ctx, types.EventNewMessage, created)
	return created, nil
}

// MarkRead flags a message as read and publishes messageRead. Marking twice keeps the
// first read time.
func (uc *MessagingUseCase) MarkRead(ctx context.Context, id model.MessageID) (*model.Message, error) {
	c := uc.core
	c.mu.Lock()
	defer c.mu.Unlock()

	msg, err := c.repo.Message().Get(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get message", goerr.V(model.MessageIDKey, id))
	}
	if msg.Read {
		return msg, nil
	}

	now := c.timestamp()
	msg.Read = true
	msg.ReadAt = &now

	updated, err := c.repo.Message().Update(ctx, msg)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update message", goerr.V(model.MessageIDKey, id))
	}

	c.publish(ctx, types.EventMessageRead, updated)
	return updated, nil
}

// ListMessages returns the messages a user sent or received, oldest first
func (uc *MessagingUseCase) ListMessages(ctx context.Context, userID string) ([]*model.Message, error) {
	if userID == "" {
		return nil, goerr.Wrap(ErrMissingField, "userId is required", goerr.V(FieldKey, "userId"))
	}
	messages, err := uc.core.repo.Message().ListByUser(ctx, userID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list messages", goerr.V(model.UserIDKey, userID))
	}
	return messages, nil
}

// ForwardAlert sends one alert per distinct volunteer about a request and publishes
// alertForwarded for each
func (uc *MessagingUseCase) ForwardAlert(ctx context.Context, input ForwardAlertInput) ([]*model.Alert, error) {
	volunteerIDs := slices.DeleteFunc(slices.Clone(input.VolunteerIDs), func(id model.VolunteerID) bool {
		return id == ""
	})
	slices.Sort(volunteerIDs)
	volunteerIDs = slices.Compact(volunteerIDs)
	if len(volunteerIDs) == 0 {
		return nil, goerr.Wrap(ErrMissingField, "at least one volunteer is required", goerr.V(FieldKey, "volunteerIds"))
	}

	c := uc.core
	c.mu.Lock()
	defer c.mu.Unlock()

	req, err := c.repo.Request().Get(ctx, input.RequestID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get request", goerr.V(model.RequestIDKey, input.RequestID))
	}

	message := input.Message
	if message == "" {
		message = req.Description
	}

	now := c.timestamp()
	alerts := make([]*model.Alert, 0, len(volunteerIDs))
	for _, volID := range volunteerIDs {
		alert := &model.Alert{
			ID:          model.NewAlertID(),
			RequestID:   req.ID,
			VolunteerID: volID,
			Message:     message,
			RequestType: req.Type,
			Urgency:     req.Urgency,
			Location:    req.Location,
			Timestamp:   now,
		}
		created, err := c.repo.Alert().Create(ctx, alert)
		if err != nil {
			// alerts already in the log are still announced so observers match the store
			uc.publishAlerts(ctx, alerts)
			return nil, goerr.Wrap(err, "failed to create alert",
				goerr.V(model.RequestIDKey, req.ID),
				goerr.V(model.VolunteerIDKey, volID),
				goerr.V("forwarded", len(alerts)))
		}
		alerts = append(alerts, created)
	}

	uc.publishAlerts(ctx, alerts)
	logging.From(ctx).Info("alert forwarded", "request_id", req.ID, "recipients", len(alerts))

	if c.notifier != nil {
		async.Dispatch(ctx, func(ctx context.Context) error {
			return c.notifier.NotifyAlertForwarded(ctx, req, alerts)
		})
	}

	return alerts, nil
}

func (uc *MessagingUseCase) publishAlerts(ctx context.Context, alerts []*model.Alert) {
	for _, alert := range alerts {
		uc.core.publish(ctx, types.EventAlertForwarded, alert)
	}
}
