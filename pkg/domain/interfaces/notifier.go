package interfaces

import (
	"context"

	"github.com/MohitGedela/GeoShield/pkg/domain/model"
)

// Notifier delivers out-of-band coordinator notifications. Failures never roll back
// the command that triggered them.
type Notifier interface {
	NotifyUrgentRequest(ctx context.Context, req *model.Request) error
	NotifyAlertForwarded(ctx context.Context, req *model.Request, alerts []*model.Alert) error
}
