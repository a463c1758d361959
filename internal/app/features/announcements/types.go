// internal/app/features/announcements/types.go
package announcements

import (
	"github.com/dalemusser/classboard/internal/app/system/dates"
	"github.com/dalemusser/classboard/internal/domain/models"
)

// View is the transport representation of an announcement. Timestamps are
// RFC 3339 UTC strings; start_date is null when the announcement has been
// active from the beginning of time.
type View struct {
	ID        string  `json:"id"`
	Message   string  `json:"message"`
	StartDate *string `json:"start_date"`
	EndDate   string  `json:"end_date"`
	CreatedBy string  `json:"created_by"`
	CreatedAt string  `json:"created_at"`
}

// NewView projects a stored announcement into its transport shape.
func NewView(ann models.Announcement) View {
	return View{
		ID:        ann.ID.Hex(),
		Message:   ann.Message,
		StartDate: dates.FormatPtr(ann.StartDate),
		EndDate:   dates.Format(ann.EndDate),
		CreatedBy: ann.CreatedBy,
		CreatedAt: dates.Format(ann.CreatedAt),
	}
}

// newViews projects a result set, always returning a non-nil slice so an
// empty list encodes as [] rather than null.
func newViews(anns []models.Announcement) []View {
	views := make([]View, 0, len(anns))
	for _, ann := range anns {
		views = append(views, NewView(ann))
	}
	return views
}

// createRequest is the JSON body for POST /announcements. Pointer fields
// distinguish absent from empty.
type createRequest struct {
	Message         *string `json:"message"`
	StartDate       *string `json:"start_date"`
	EndDate         *string `json:"end_date"`
	TeacherUsername string  `json:"teacher_username"`
}

// updateRequest is the JSON body for PUT /announcements/{id}. Absent
// fields leave the stored values unchanged; start_date set to the empty
// string clears the stored value to null.
type updateRequest struct {
	Message         *string `json:"message"`
	StartDate       *string `json:"start_date"`
	EndDate         *string `json:"end_date"`
	TeacherUsername string  `json:"teacher_username"`
}
