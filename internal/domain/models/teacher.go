package models

import "time"

// Teacher is a credential record in the shared teachers collection.
//
// The collection is keyed by username: the document _id IS the username
// string. This service only checks existence; the wider platform owns
// authentication against PasswordHash.
type Teacher struct {
	Username     string    `bson:"_id" json:"username"`
	FullName     string    `bson:"full_name,omitempty" json:"full_name,omitempty"`
	PasswordHash string    `bson:"password_hash,omitempty" json:"-"` // bcrypt
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}
