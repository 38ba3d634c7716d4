package admin

import (
	"context"
	"log"
	"net/http"

	"bookingadmin/internal/api"
	"bookingadmin/internal/booking"
	"bookingadmin/pkg/netlify"
)

const (
	bookingFormName = "booking"
	statusFormName  = "booking-status"
)

func (h Handlers) handleList(w http.ResponseWriter, r *http.Request) {
	cfg := h.Cfg.Netlify
	if cfg.AccessToken == "" || cfg.SiteID == "" {
		api.WriteError(w, http.StatusInternalServerError, "missing NETLIFY_ACCESS_TOKEN or SITE_ID")
		return
	}

	ctx := r.Context()

	forms, err := h.Store.SiteForms(ctx, cfg.SiteID)
	if err != nil {
		log.Printf("admin: list forms failed: %v", err)
		api.WriteError(w, http.StatusInternalServerError, serverError(err))
		return
	}

	// A missing form means an empty side of the join, not a failure: the
	// status form only exists after the first decision is recorded.
	bookings, err := h.submissionsFor(ctx, forms, bookingFormName)
	if err != nil {
		log.Printf("admin: list booking submissions failed: %v", err)
		api.WriteError(w, http.StatusInternalServerError, serverError(err))
		return
	}
	statuses, err := h.submissionsFor(ctx, forms, statusFormName)
	if err != nil {
		log.Printf("admin: list status submissions failed: %v", err)
		api.WriteError(w, http.StatusInternalServerError, serverError(err))
		return
	}

	items := booking.MergeItems(bookings, booking.LatestStatuses(statuses))
	pending, approved, denied := booking.Summary(items)

	api.WriteJSON(w, http.StatusOK, ListResponse{
		OK:       true,
		Total:    len(items),
		Pending:  pending,
		Approved: approved,
		Denied:   denied,
		Items:    items,
	})
}

func (h Handlers) submissionsFor(ctx context.Context, forms []netlify.Form, name string) ([]netlify.Submission, error) {
	for _, f := range forms {
		if f.Name == name {
			return h.Store.FormSubmissions(ctx, f.ID)
		}
	}
	return nil, nil
}
