package firestore

import (
	"context"
	"slices"

	"cloud.google.com/go/firestore"
	"github.com/MohitGedela/GeoShield/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type messageRepository struct {
	client     *firestore.Client
	collection collection
}

func newMessageRepository(client *firestore.Client) *messageRepository {
	return &messageRepository{
		client:     client,
		collection: collection{name: CollectionMessages},
	}
}

func (r *messageRepository) Create(ctx context.Context, msg *model.Message) (*model.Message, error) {
	if msg.ID == "" {
		return nil, goerr.New("message ID is required")
	}

	_, err := r.collection.ref(r.client).Doc(msg.ID.String()).Create(ctx, msg)
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return nil, goerr.Wrap(model.ErrAlreadyExists, "message already exists", goerr.V(model.MessageIDKey, msg.ID))
		}
		return nil, goerr.Wrap(err, "failed to create message", goerr.V(model.MessageIDKey, msg.ID))
	}

	created := *msg
	return &created, nil
}

func (r *messageRepository) Get(ctx context.Context, id model.MessageID) (*model.Message, error) {
	docSnap, err := r.collection.ref(r.client).Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(model.ErrNotFound, "message not found", goerr.V(model.MessageIDKey, id))
		}
		return nil, goerr.Wrap(err, "failed to get message", goerr.V(model.MessageIDKey, id))
	}

	var msg model.Message
	if err := docSnap.DataTo(&msg); err != nil {
		return nil, goerr.Wrap(err, "failed to decode message", goerr.V(model.MessageIDKey, id))
	}
	return &msg, nil
}

func (r *messageRepository) ListByUser(ctx context.Context, userID string) ([]*model.Message, error) {
	// Firestore has no OR across fields without a composite filter, so merge the two directions
	sent, err := decodeAll[model.Message](r.collection.ref(r.client).Where("from_user_id", "==", userID).Documents(ctx), "messages")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list sent messages", goerr.V(model.UserIDKey, userID))
	}
	received, err := decodeAll[model.Message](r.collection.ref(r.client).Where("to_user_id", "==", userID).Documents(ctx), "messages")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list received messages", goerr.V(model.UserIDKey, userID))
	}

	seen := make(map[model.MessageID]struct{}, len(sent))
	messages := make([]*model.Message, 0, len(sent)+len(received))
	for _, msg := range append(sent, received...) {
		if _, dup := seen[msg.ID]; dup {
			continue
		}
		seen[msg.ID] = struct{}{}
		messages = append(messages, msg)
	}

	slices.SortStableFunc(messages, func(a, b *model.Message) int {
		return a.Timestamp.Compare(b.Timestamp)
	})
	return messages, nil
}

func (r *messageRepository) Update(ctx context.Context, msg *model.Message) (*model.Message, error) {
	if _, err := r.Get(ctx, msg.ID); err != nil {
		return nil, err
	}

	if _, err := r.collection.ref(r.client).Doc(msg.ID.String()).Set(ctx, msg); err != nil {
		return nil, goerr.Wrap(err, "failed to update message", goerr.V(model.MessageIDKey, msg.ID))
	}
	updated := *msg
	return &updated, nil
}

type alertRepository struct {
	client     *firestore.Client
	collection collection
}

func newAlertRepository(client *firestore.Client) *alertRepository {
	return &alertRepository{
		client:     client,
		collection: collection{name: CollectionAlerts},
	}
}

func (r *alertRepository) Create(ctx context.Context, alert *model.Alert) (*model.Alert, error) {
	if alert.ID == "" {
		return nil, goerr.New("alert ID is required")
	}

	_, err := r.collection.ref(r.client).Doc(string(alert.ID)).Create(ctx, alert)
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return nil, goerr.Wrap(model.ErrAlreadyExists, "alert already exists", goerr.V("alert_id", alert.ID))
		}
		return nil, goerr.Wrap(err, "failed to create alert", goerr.V("alert_id", alert.ID))
	}

	created := *alert
	return &created, nil
}

func (r *alertRepository) ListByVolunteer(ctx context.Context, volunteerID model.VolunteerID) ([]*model.Alert, error) {
	iter := r.collection.ref(r.client).
		Where("volunteer_id", "==", volunteerID.String()).
		OrderBy("timestamp", firestore.Asc).
		Documents(ctx)
	return decodeAll[model.Alert](iter, "alerts")
}
