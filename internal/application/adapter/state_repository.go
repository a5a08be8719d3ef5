// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/lifeplan/backend/internal/domain/entity"
)

// StateRepository abstracts persistence of the whole per-user ledger
// aggregate. The backend (remote document store or local keyed store) is
// selected once at process start; every call routes to the same backend.
type StateRepository interface {
	// Save upserts the full ledger state under a key derived from identity.
	Save(ctx context.Context, identity entity.Identity, state *entity.LedgerState) error

	// Load returns the stored state for the identity. Absence of stored data
	// is not an error: it returns the seed state with User set to identity.
	// A backend that cannot be reached returns an error instead, so callers
	// can tell "no data yet" from "could not reach storage".
	Load(ctx context.Context, identity entity.Identity) (*entity.LedgerState, error)
}
