package interfaces

import (
	"context"

	"github.com/MohitGedela/GeoShield/pkg/domain/model"
)

// Broadcaster fans an event out to every currently connected observer.
// Delivery is best effort and at most once; Broadcast must not block on slow observers.
type Broadcaster interface {
	Broadcast(ctx context.Context, event *model.Event)
}
