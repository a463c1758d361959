package indexes

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

/*
EnsureAll is called at startup. Each ensure* function is idempotent.
We aggregate errors so any problem is visible and startup can fail fast.
*/
func EnsureAll(ctx context.Context, db *mongo.Database) error {
	var problems []string

	if err := ensureAnnouncements(ctx, db); err != nil {
		problems = append(problems, "announcements: "+err.Error())
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

// ensureAnnouncements creates the index backing the announcement queries.
//
// end_date ascending serves three access paths at once: the active-window
// filter (end_date >= now) and the sort order of both list endpoints.
// The teachers collection needs nothing beyond its _id lookup.
func ensureAnnouncements(ctx context.Context, db *mongo.Database) error {
	c := db.Collection("announcements")

	_, err := c.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "end_date", Value: 1}},
		Options: options.Index().SetName("end_date_asc"),
	})
	if err != nil && !isOptionsConflictErr(err) {
		return err
	}
	return nil
}

// Mongo/DocDB sometimes returns IndexOptionsConflict when an index with the
// same keys already exists under a different name (or options differ).
func isOptionsConflictErr(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "IndexOptionsConflict")
}
