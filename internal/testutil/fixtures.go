package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/dalemusser/classboard/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateTeacher inserts a teacher record keyed by username, with a bcrypt
// password hash the way the platform's account tooling writes them.
func (f *Fixtures) CreateTeacher(ctx context.Context, username string) models.Teacher {
	f.t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("test-password"), bcrypt.MinCost)
	if err != nil {
		f.t.Fatalf("failed to hash test password: %v", err)
	}

	teacher := models.Teacher{
		Username:     username,
		FullName:     "Test Teacher",
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}

	if _, err := f.db.Collection("teachers").InsertOne(ctx, teacher); err != nil {
		f.t.Fatalf("failed to create test teacher: %v", err)
	}

	return teacher
}

// CreateAnnouncement inserts an announcement with the given window.
// startDate may be nil for "active from the beginning of time."
func (f *Fixtures) CreateAnnouncement(ctx context.Context, message string, startDate *time.Time, endDate time.Time) models.Announcement {
	f.t.Helper()

	ann := models.Announcement{
		ID:        primitive.NewObjectID(),
		Message:   message,
		StartDate: startDate,
		EndDate:   endDate,
		CreatedBy: "fixture-teacher",
		CreatedAt: time.Now().UTC(),
	}

	if _, err := f.db.Collection("announcements").InsertOne(ctx, ann); err != nil {
		f.t.Fatalf("failed to create test announcement: %v", err)
	}

	return ann
}
