// internal/app/features/announcements/handler.go
package announcements

import (
	announcementstore "github.com/dalemusser/classboard/internal/app/store/announcement"
	teacherstore "github.com/dalemusser/classboard/internal/app/store/teacher"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler owns all Announcements handlers.
type Handler struct {
	Store    *announcementstore.Store
	Teachers *teacherstore.Store
	Log      *zap.Logger
}

// NewHandler constructs an Announcements Handler.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Store:    announcementstore.New(db),
		Teachers: teacherstore.New(db),
		Log:      logger,
	}
}
