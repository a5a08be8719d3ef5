package persistence

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/option"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/lifeplan/backend/internal/domain/entity"
	domainerror "github.com/lifeplan/backend/internal/domain/error"
)

// newUnreachableClient builds a real Firestore client over a connection that
// leads nowhere. Writes exercise the client-side encoding path first, so a
// document the client refuses to encode fails with an encoding error instead
// of a transport error.
func newUnreachableClient(t *testing.T) *firestore.Client {
	t.Helper()

	conn, err := grpc.NewClient("localhost:1", grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		t.Fatalf("failed to create grpc connection: %v", err)
	}

	client, err := firestore.NewClient(context.Background(), "test-project", option.WithGRPCConn(conn))
	if err != nil {
		t.Fatalf("failed to create firestore client: %v", err)
	}
	t.Cleanup(func() { client.Close() })
	return client
}

func TestFirestoreStateRepository_SaveEncodesMergeWrite(t *testing.T) {
	repo := NewFirestoreStateRepository(newUnreachableClient(t))
	identity := entity.Identity{UID: "u1", Name: "Ana", Email: "ana@example.com"}

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	err := repo.Save(ctx, identity, entity.SeedState(identity))
	if err == nil {
		t.Fatal("expected an error against an unreachable backend")
	}

	// Merge writes are only accepted for map data. The save must get past
	// the client's encoding checks and fail at transport, nowhere earlier.
	if strings.Contains(err.Error(), "MergeAll") {
		t.Fatalf("write rejected client-side before reaching transport: %v", err)
	}

	var ledgerErr *domainerror.LedgerError
	if !errors.As(err, &ledgerErr) {
		t.Fatalf("expected a ledger error, got %v", err)
	}
	if ledgerErr.Code != domainerror.ErrCodeStoreUnreachable {
		t.Errorf("expected store-unreachable code, got %s", ledgerErr.Code)
	}
}
