// internal/app/features/announcements/announcements.go
package announcements

import (
	"context"
	"errors"
	"net/http"
	"time"

	announcementstore "github.com/dalemusser/classboard/internal/app/store/announcement"
	"github.com/dalemusser/classboard/internal/app/system/dates"
	"github.com/dalemusser/classboard/internal/app/system/httpjson"
	"github.com/dalemusser/classboard/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// requireTeacher verifies that username names an existing teacher record.
// It writes the failure response itself and reports whether the caller
// should continue. Any known teacher may manage any announcement; there is
// no ownership tie to the original creator.
func (h *Handler) requireTeacher(ctx context.Context, w http.ResponseWriter, username string) bool {
	ok, err := h.Teachers.Exists(ctx, username)
	if err != nil {
		h.Log.Error("teacher lookup failed", zap.Error(err), zap.String("teacher_username", username))
		httpjson.Error(w, http.StatusInternalServerError, "Internal Server Error")
		return false
	}
	if !ok {
		httpjson.Error(w, http.StatusUnauthorized, "Invalid teacher credentials")
		return false
	}
	return true
}

// ListActive handles GET /announcements.
// Public: returns announcements whose window contains the current time,
// sorted ascending by end_date.
func (h *Handler) ListActive(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	anns, err := h.Store.ListActive(ctx, time.Now().UTC())
	if err != nil {
		h.Log.Error("failed to list active announcements", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	httpjson.Write(w, http.StatusOK, newViews(anns))
}

// ListAll handles GET /announcements/all?teacher_username=...
// Returns every announcement, active or not, sorted ascending by end_date.
func (h *Handler) ListAll(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if !h.requireTeacher(ctx, w, r.URL.Query().Get("teacher_username")) {
		return
	}

	anns, err := h.Store.ListAll(ctx)
	if err != nil {
		h.Log.Error("failed to list announcements", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	httpjson.Write(w, http.StatusOK, newViews(anns))
}

// Create handles POST /announcements.
// end_date is required; start_date is optional and an empty string is
// treated the same as absent. Dates accept a full ISO-8601 date-time or a
// bare YYYY-MM-DD, which means midnight UTC that day.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	var req createRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	if !h.requireTeacher(ctx, w, req.TeacherUsername) {
		return
	}

	if req.Message == nil {
		httpjson.Error(w, http.StatusBadRequest, "message is required")
		return
	}
	if req.EndDate == nil {
		httpjson.Error(w, http.StatusBadRequest, "end_date is required")
		return
	}

	endDate, err := dates.Parse(*req.EndDate)
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Invalid end_date format")
		return
	}

	var startDate *time.Time
	if req.StartDate != nil && *req.StartDate != "" {
		t, err := dates.Parse(*req.StartDate)
		if err != nil {
			httpjson.Error(w, http.StatusBadRequest, "Invalid start_date format")
			return
		}
		startDate = &t
	}

	// The message is stored verbatim, and start_date is not required to
	// precede end_date.
	ann, err := h.Store.Create(ctx, announcementstore.CreateInput{
		Message:   *req.Message,
		StartDate: startDate,
		EndDate:   endDate,
		CreatedBy: req.TeacherUsername,
	})
	if err != nil {
		h.Log.Error("failed to create announcement", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	httpjson.Write(w, http.StatusOK, NewView(ann))
}

// Update handles PUT /announcements/{id}.
// Each field is optional: absent means leave unchanged. start_date set to
// the empty string clears the stored value to null, while message
// overwrites with whatever was provided, including an empty string.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	var req updateRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	if !h.requireTeacher(ctx, w, req.TeacherUsername) {
		return
	}

	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Invalid announcement id")
		return
	}

	var in announcementstore.UpdateInput
	in.Message = req.Message
	if req.EndDate != nil {
		t, err := dates.Parse(*req.EndDate)
		if err != nil {
			httpjson.Error(w, http.StatusBadRequest, "Invalid end_date format")
			return
		}
		in.EndDate = &t
	}
	if req.StartDate != nil {
		if *req.StartDate == "" {
			in.ClearStartDate = true
		} else {
			t, err := dates.Parse(*req.StartDate)
			if err != nil {
				httpjson.Error(w, http.StatusBadRequest, "Invalid start_date format")
				return
			}
			in.StartDate = &t
		}
	}

	if in.Empty() {
		httpjson.Error(w, http.StatusBadRequest, "No fields to update")
		return
	}

	ann, err := h.Store.Update(ctx, id, in)
	if err != nil {
		if errors.Is(err, announcementstore.ErrNotFound) {
			httpjson.Error(w, http.StatusNotFound, "Announcement not found")
			return
		}
		h.Log.Error("failed to update announcement", zap.Error(err), zap.String("id", id.Hex()))
		httpjson.Error(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	httpjson.Write(w, http.StatusOK, NewView(*ann))
}

// Delete handles DELETE /announcements/{id}?teacher_username=...
// Deletion is physical removal; there is no soft delete.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if !h.requireTeacher(ctx, w, r.URL.Query().Get("teacher_username")) {
		return
	}

	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Invalid announcement id")
		return
	}

	if err := h.Store.Delete(ctx, id); err != nil {
		if errors.Is(err, announcementstore.ErrNotFound) {
			httpjson.Error(w, http.StatusNotFound, "Announcement not found")
			return
		}
		h.Log.Error("failed to delete announcement", zap.Error(err), zap.String("id", id.Hex()))
		httpjson.Error(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	httpjson.Write(w, http.StatusOK, map[string]string{"message": "Announcement deleted"})
}
