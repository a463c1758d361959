package announcement

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/classboard/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when no announcement matches the given id.
var ErrNotFound = errors.New("announcement not found")

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("announcements")}
}

// endDateAsc is the ordering of both list queries.
var endDateAsc = bson.D{{Key: "end_date", Value: 1}}

// ListActive returns announcements whose visibility window contains now:
// end_date >= now and start_date absent, null, or <= now. Sorted ascending
// by end_date.
func (s *Store) ListActive(ctx context.Context, now time.Time) ([]models.Announcement, error) {
	filter := bson.M{
		"end_date": bson.M{"$gte": now},
		// {"start_date": nil} matches documents where the field is an
		// explicit null AND documents where it is missing entirely.
		"$or": bson.A{
			bson.M{"start_date": nil},
			bson.M{"start_date": bson.M{"$lte": now}},
		},
	}
	return s.find(ctx, filter)
}

// ListAll returns every stored announcement, sorted ascending by end_date.
func (s *Store) ListAll(ctx context.Context) ([]models.Announcement, error) {
	return s.find(ctx, bson.M{})
}

func (s *Store) find(ctx context.Context, filter bson.M) ([]models.Announcement, error) {
	cur, err := s.c.Find(ctx, filter, options.Find().SetSort(endDateAsc))
	if err != nil {
		return nil, err
	}

	anns := []models.Announcement{}
	if err := cur.All(ctx, &anns); err != nil {
		return nil, err
	}
	return anns, nil
}

// GetByID loads one announcement. Returns ErrNotFound when absent.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Announcement, error) {
	var ann models.Announcement
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&ann); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &ann, nil
}

// CreateInput holds the fields a caller supplies when creating an
// announcement. StartDate nil stores an explicit null.
type CreateInput struct {
	Message   string
	StartDate *time.Time
	EndDate   time.Time
	CreatedBy string
}

// Create inserts a new announcement and returns it with its assigned id
// and creation timestamp.
func (s *Store) Create(ctx context.Context, in CreateInput) (models.Announcement, error) {
	ann := models.Announcement{
		ID:        primitive.NewObjectID(),
		Message:   in.Message,
		StartDate: in.StartDate,
		EndDate:   in.EndDate,
		CreatedBy: in.CreatedBy,
		CreatedAt: time.Now().UTC(),
	}

	if _, err := s.c.InsertOne(ctx, ann); err != nil {
		return models.Announcement{}, err
	}
	return ann, nil
}

// UpdateInput holds a partial update. Nil pointer fields are left
// unchanged; ClearStartDate sets start_date to null and wins over
// StartDate if both are set.
type UpdateInput struct {
	Message        *string
	EndDate        *time.Time
	StartDate      *time.Time
	ClearStartDate bool
}

// Empty reports whether the input would modify nothing.
func (in UpdateInput) Empty() bool {
	return in.Message == nil && in.EndDate == nil && in.StartDate == nil && !in.ClearStartDate
}

// Update applies the provided fields to one announcement and returns the
// post-update record. Returns ErrNotFound when no document matches;
// unspecified fields keep their prior values.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, in UpdateInput) (*models.Announcement, error) {
	set := bson.M{}
	if in.Message != nil {
		set["message"] = *in.Message
	}
	if in.EndDate != nil {
		set["end_date"] = *in.EndDate
	}
	if in.ClearStartDate {
		set["start_date"] = nil
	} else if in.StartDate != nil {
		set["start_date"] = *in.StartDate
	}

	res, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, ErrNotFound
	}

	return s.GetByID(ctx, id)
}

// Delete physically removes one announcement. Returns ErrNotFound when no
// document matches.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
