// Package teacher reads the shared teachers collection. The collection is
// owned by the wider platform; this service only checks that a username
// exists, plus an optional startup seed for fresh databases.
package teacher

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("teachers")}
}

// Exists reports whether a teacher record with the given username exists.
// The teachers collection is keyed by username: the document _id is the
// username string.
func (s *Store) Exists(ctx context.Context, username string) (bool, error) {
	err := s.c.FindOne(ctx, bson.M{"_id": username}).Err()
	if err == nil {
		return true, nil
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	return false, err
}

// Seed upserts a teacher credential, hashing the password with bcrypt.
// Used by the startup hook so a fresh database has at least one teacher
// that can manage announcements.
func (s *Store) Seed(ctx context.Context, username, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		return err
	}

	_, err = s.c.UpdateOne(ctx,
		bson.M{"_id": username},
		bson.M{
			"$set":         bson.M{"password_hash": string(hash)},
			"$setOnInsert": bson.M{"created_at": time.Now().UTC()},
		},
		options.Update().SetUpsert(true),
	)
	return err
}
