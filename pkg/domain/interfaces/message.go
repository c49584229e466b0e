package interfaces

import (
	"context"

	"github.com/MohitGedela/GeoShield/pkg/domain/model"
)

// MessageRepository defines the interface for direct message data access
type MessageRepository interface {
	Create(ctx context.Context, msg *model.Message) (*model.Message, error)
	Get(ctx context.Context, id model.MessageID) (*model.Message, error)

	// ListByUser retrieves messages sent or received by userID, oldest first
	ListByUser(ctx context.Context, userID string) ([]*model.Message, error)

	// Update replaces an existing message. Returns model.ErrNotFound if absent.
	Update(ctx context.Context, msg *model.Message) (*model.Message, error)
}

// AlertRepository is an append-only log of forwarded alerts
type AlertRepository interface {
	Create(ctx context.Context, alert *model.Alert) (*model.Alert, error)

	// ListByVolunteer retrieves alerts forwarded to volunteerID, oldest first
	ListByVolunteer(ctx context.Context, volunteerID model.VolunteerID) ([]*model.Alert, error)
}
