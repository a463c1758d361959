package indexes_test

import (
	"testing"

	"github.com/dalemusser/classboard/internal/app/system/indexes"
	"github.com/dalemusser/classboard/internal/testutil"
)

func TestEnsureAll_Idempotent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	// Running again must be a no-op, not a conflict.
	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("second EnsureAll failed: %v", err)
	}

	cur, err := db.Collection("announcements").Indexes().List(ctx)
	if err != nil {
		t.Fatalf("listing indexes failed: %v", err)
	}
	var specs []struct {
		Name string `bson:"name"`
	}
	if err := cur.All(ctx, &specs); err != nil {
		t.Fatalf("decoding indexes failed: %v", err)
	}

	found := false
	for _, s := range specs {
		if s.Name == "end_date_asc" {
			found = true
		}
	}
	if !found {
		t.Error("expected end_date_asc index on announcements")
	}
}
