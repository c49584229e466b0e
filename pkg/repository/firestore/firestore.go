package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/MohitGedela/GeoShield/pkg/domain/interfaces"
	"github.com/m-mizutani/goerr/v2"
)

type Firestore struct {
	client       *firestore.Client
	request      *requestRepository
	volunteer    *volunteerRepository
	user         *userRepository
	safeZone     *safeZoneRepository
	checkIn      *checkInRepository
	message      *messageRepository
	alert        *alertRepository
	verification *verificationRepository
}

var _ interfaces.Repository = &Firestore{}

type Option func(*Firestore)

// WithCollectionPrefix isolates all collections under "<prefix>_<name>"
func WithCollectionPrefix(prefix string) Option {
	return func(f *Firestore) {
		f.collections().setPrefix(prefix)
	}
}

// New connects to Firestore. An empty databaseID selects the default database.
func New(ctx context.Context, projectID, databaseID string, opts ...Option) (*Firestore, error) {
	if databaseID == "" {
		databaseID = firestore.DefaultDatabaseID
	}
	client, err := firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client",
			goerr.V("projectID", projectID),
			goerr.V("databaseID", databaseID))
	}

	f := &Firestore{
		client:       client,
		request:      newRequestRepository(client),
		volunteer:    newVolunteerRepository(client),
		user:         newUserRepository(client),
		safeZone:     newSafeZoneRepository(client),
		checkIn:      newCheckInRepository(client),
		message:      newMessageRepository(client),
		alert:        newAlertRepository(client),
		verification: newVerificationRepository(client),
	}

	for _, opt := range opts {
		opt(f)
	}

	return f, nil
}

type prefixSetters []*collection

func (p prefixSetters) setPrefix(prefix string) {
	for _, c := range p {
		c.prefix = prefix
	}
}

func (f *Firestore) collections() prefixSetters {
	return prefixSetters{
		&f.request.collection,
		&f.volunteer.collection,
		&f.user.collection,
		&f.safeZone.collection,
		&f.checkIn.collection,
		&f.message.collection,
		&f.alert.collection,
		&f.verification.pending,
		&f.verification.verified,
	}
}

func (f *Firestore) Request() interfaces.RequestRepository {
	return f.request
}

func (f *Firestore) Volunteer() interfaces.VolunteerRepository {
	return f.volunteer
}

func (f *Firestore) User() interfaces.UserRepository {
	return f.user
}

func (f *Firestore) SafeZone() interfaces.SafeZoneRepository {
	return f.safeZone
}

func (f *Firestore) CheckIn() interfaces.CheckInRepository {
	return f.checkIn
}

func (f *Firestore) Message() interfaces.MessageRepository {
	return f.message
}

func (f *Firestore) Alert() interfaces.AlertRepository {
	return f.alert
}

func (f *Firestore) Verification() interfaces.VerificationRepository {
	return f.verification
}

func (f *Firestore) Close() error {
	if f.client != nil {
		return f.client.Close()
	}
	return nil
}
