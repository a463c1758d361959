package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Announcement is a timed message shown to everyone on the platform.
//
// NOTE:
//   - StartDate is intentionally stored without omitempty so a cleared
//     value is an explicit BSON null. The active-announcements query
//     matches null and missing alike, but existing documents written by
//     earlier tooling use explicit nulls and we keep that shape.
//   - EndDate is always present on a stored announcement.
type Announcement struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Message   string             `bson:"message" json:"message"`
	StartDate *time.Time         `bson:"start_date" json:"start_date"` // nil means active from the beginning of time
	EndDate   time.Time          `bson:"end_date" json:"end_date"`
	CreatedBy string             `bson:"created_by" json:"created_by"` // teacher username, set once at creation
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}
