package memory

import (
	"context"
	"sync"

	"github.com/MohitGedela/GeoShield/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
)

type messageRepository struct {
	mu       sync.RWMutex
	messages map[model.MessageID]*model.Message
	order    []model.MessageID
}

func newMessageRepository() *messageRepository {
	return &messageRepository{
		messages: make(map[model.MessageID]*model.Message),
	}
}

func (r *messageRepository) Create(ctx context.Context, msg *model.Message) (*model.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if msg.ID == "" {
		return nil, goerr.New("message ID is required")
	}
	if _, exists := r.messages[msg.ID]; exists {
		return nil, goerr.Wrap(model.ErrAlreadyExists, "message already exists", goerr.V(model.MessageIDKey, msg.ID))
	}

	r.messages[msg.ID] = copyMessage(msg)
	r.order = append(r.order, msg.ID)
	return copyMessage(msg), nil
}

func (r *messageRepository) Get(ctx context.Context, id model.MessageID) (*model.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	msg, exists := r.messages[id]
	if !exists {
		return nil, goerr.Wrap(model.ErrNotFound, "message not found", goerr.V(model.MessageIDKey, id))
	}
	return copyMessage(msg), nil
}

func (r *messageRepository) ListByUser(ctx context.Context, userID string) ([]*model.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	messages := make([]*model.Message, 0)
	for _, id := range r.order {
		msg := r.messages[id]
		if msg.FromUserID == userID || msg.ToUserID == userID {
			messages = append(messages, copyMessage(msg))
		}
	}
	return messages, nil
}

func (r *messageRepository) Update(ctx context.Context, msg *model.Message) (*model.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.messages[msg.ID]; !exists {
		return nil, goerr.Wrap(model.ErrNotFound, "message not found", goerr.V(model.MessageIDKey, msg.ID))
	}
	r.messages[msg.ID] = copyMessage(msg)
	return copyMessage(msg), nil
}

type alertRepository struct {
	mu     sync.RWMutex
	alerts []*model.Alert
}

func newAlertRepository() *alertRepository {
	return &alertRepository{}
}

func (r *alertRepository) Create(ctx context.Context, alert *model.Alert) (*model.Alert, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if alert.ID == "" {
		return nil, goerr.New("alert ID is required")
	}
	for _, existing := range r.alerts {
		if existing.ID == alert.ID {
			return nil, goerr.Wrap(model.ErrAlreadyExists, "alert already exists", goerr.V("alert_id", alert.ID))
		}
	}

	copied := *alert
	r.alerts = append(r.alerts, &copied)
	result := copied
	return &result, nil
}

func (r *alertRepository) ListByVolunteer(ctx context.Context, volunteerID model.VolunteerID) ([]*model.Alert, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	alerts := make([]*model.Alert, 0)
	for _, a := range r.alerts {
		if a.VolunteerID == volunteerID {
			copied := *a
			alerts = append(alerts, &copied)
		}
	}
	return alerts, nil
}
