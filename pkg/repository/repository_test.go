package repository_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/MohitGedela/GeoShield/pkg/domain/interfaces"
	"github.com/MohitGedela/GeoShield/pkg/repository/firestore"
	"github.com/MohitGedela/GeoShield/pkg/repository/memory"
)

func newMemoryRepository(t *testing.T) interfaces.Repository {
	return memory.New()
}

func newFirestoreRepository(t *testing.T) interfaces.Repository {
	t.Helper()

	projectID := os.Getenv("TEST_FIRESTORE_PROJECT_ID")
	if projectID == "" {
		t.Skip("TEST_FIRESTORE_PROJECT_ID not set")
	}

	databaseID := os.Getenv("TEST_FIRESTORE_DATABASE_ID")
	if databaseID == "" {
		t.Skip("TEST_FIRESTORE_DATABASE_ID not set")
	}

	ctx := context.Background()
	prefix := fmt.Sprintf("test_%d", time.Now().UnixNano())
	repo, err := firestore.New(ctx, projectID, databaseID, firestore.WithCollectionPrefix(prefix))
	if err != nil {
		t.Fatalf("failed to create firestore repository: %v", err)
	}
	t.Cleanup(func() {
		if err := repo.Close(); err != nil {
			t.Errorf("failed to close firestore repository: %v", err)
		}
	})
	return repo
}

// testTime returns a timestamp Firestore can round-trip exactly
func testTime() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

func uniquePhone(t *testing.T) string {
	t.Helper()
	return fmt.Sprintf("+1555%d", time.Now().UnixNano()%10000000)
}
