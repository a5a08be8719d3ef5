// Package persistence implements repository interfaces for storage backends.
package persistence

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/lifeplan/backend/internal/application/adapter"
	"github.com/lifeplan/backend/internal/domain/entity"
	domainerror "github.com/lifeplan/backend/internal/domain/error"
	"github.com/lifeplan/backend/internal/integration/persistence/model"
)

// usersCollection is the Firestore collection holding one ledger document
// per user, keyed by uid.
const usersCollection = "users"

// firestoreStateRepository persists the ledger aggregate as one Firestore
// document per user. Writes merge at the document level: top-level fields
// written concurrently do not erase each other, but a nested collection is
// replaced wholesale by the last writer of its field.
type firestoreStateRepository struct {
	client *firestore.Client
}

// NewFirestoreStateRepository creates the remote-backend state repository.
func NewFirestoreStateRepository(client *firestore.Client) adapter.StateRepository {
	return &firestoreStateRepository{client: client}
}

// Save upserts the aggregate under the identity's uid with merge semantics.
// The document goes over as map data; the client only accepts MergeAll for
// maps. Unavailability is not retried or queued here; the error propagates
// so the caller can surface a persistent warning.
func (r *firestoreStateRepository) Save(ctx context.Context, identity entity.Identity, state *entity.LedgerState) error {
	ref := r.client.Collection(usersCollection).Doc(identity.UID)
	if _, err := ref.Set(ctx, model.FromEntity(state).ToMap(), firestore.MergeAll); err != nil {
		return domainerror.NewLedgerError(
			domainerror.ErrCodeStoreUnreachable,
			"failed to write ledger state",
			err,
		)
	}
	return nil
}

// Load fetches the stored aggregate. A document that does not exist yet is
// the seed state for the requesting identity; any other failure propagates,
// as "could not reach storage" must never masquerade as "no data yet".
func (r *firestoreStateRepository) Load(ctx context.Context, identity entity.Identity) (*entity.LedgerState, error) {
	snap, err := r.client.Collection(usersCollection).Doc(identity.UID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return entity.SeedState(identity), nil
		}
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeStoreUnreachable,
			"failed to read ledger state",
			err,
		)
	}

	var doc model.StateDocument
	if err := snap.DataTo(&doc); err != nil {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeStateSerialization,
			"failed to deserialize ledger state",
			err,
		)
	}
	return doc.ToEntity(), nil
}
