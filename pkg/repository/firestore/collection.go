package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"
)

// Collection names. migrate builds its index plan from the same names.
const (
	CollectionRequests      = "requests"
	CollectionVolunteers    = "volunteers"
	CollectionUsers         = "users"
	CollectionSafeZones     = "safe_zones"
	CollectionCheckIns      = "check_ins"
	CollectionMessages      = "messages"
	CollectionAlerts        = "alerts"
	CollectionVerifications = "verifications"
	CollectionVerifiedPhone = "verified_phones"
)

type collection struct {
	name   string
	prefix string
}

func (c collection) String() string {
	if c.prefix != "" {
		return c.prefix + "_" + c.name
	}
	return c.name
}

func (c collection) ref(client *firestore.Client) *firestore.CollectionRef {
	return client.Collection(c.String())
}

// decodeAll drains iter into freshly allocated values of T
func decodeAll[T any](iter *firestore.DocumentIterator, what string) ([]*T, error) {
	defer iter.Stop()

	results := make([]*T, 0)
	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate "+what)
		}

		var v T
		if err := docSnap.DataTo(&v); err != nil {
			return nil, goerr.Wrap(err, "failed to decode "+what, goerr.V("doc_id", docSnap.Ref.ID))
		}
		results = append(results, &v)
	}
	return results, nil
}

// first returns the first document decoded as T, or nil when the query is empty
func first[T any](ctx context.Context, q firestore.Query, what string) (*T, error) {
	results, err := decodeAll[T](q.Limit(1).Documents(ctx), what)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}
	return results[0], nil
}
