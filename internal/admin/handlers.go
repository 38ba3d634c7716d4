package admin

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strings"

	"bookingadmin/internal/api"
	"bookingadmin/internal/booking"
	"bookingadmin/pkg/config"
)

type Handlers struct {
	Cfg      config.Config
	Store    Store
	Notifier Notifier
}

// Handle is the whole admin surface: one endpoint dispatching on method and
// an action parameter.
func (h Handlers) Handle(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodOptions:
		// Preflight; CORS headers are set by middleware.
		api.WriteOK(w)
	case http.MethodGet:
		h.handleGet(w, r)
	case http.MethodPost:
		h.handlePost(w, r)
	default:
		api.WriteError(w, http.StatusMethodNotAllowed, "method_not_allowed")
	}
}

func (h Handlers) handleGet(w http.ResponseWriter, r *http.Request) {
	action := strings.ToLower(r.URL.Query().Get("action"))
	switch action {
	case "poll":
		api.WriteOK(w)
	case "list":
		h.handleList(w, r)
	default:
		api.WriteError(w, http.StatusBadRequest, "bad_action")
	}
}

func (h Handlers) handlePost(w http.ResponseWriter, r *http.Request) {
	var req ActionRequest
	body, err := io.ReadAll(r.Body)
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, serverError(err))
		return
	}
	// An absent body means an empty request, but a present-and-broken one is
	// the caller's mistake.
	if len(bytes.TrimSpace(body)) > 0 {
		if err := json.Unmarshal(body, &req); err != nil {
			api.WriteError(w, http.StatusBadRequest, "bad_json")
			return
		}
	}

	action, err := booking.ParseAction(req.Action)
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, "bad_action")
		return
	}

	ctx := r.Context()

	// Decisions persist as status-form records before anything else; if that
	// fails the customer is never emailed.
	if status, ok := booking.StatusFor(action); ok {
		if err := h.recordStatus(ctx, status, req); err != nil {
			log.Printf("admin: record status failed: action=%s booking=%s: %v", action, req.ID, err)
			api.WriteError(w, http.StatusInternalServerError, serverError(err))
			return
		}
	}

	if err := h.Notifier.Send(ctx, action, req.notifyMessage()); err != nil {
		log.Printf("admin: notify failed: action=%s booking=%s: %v", action, req.ID, err)
		api.WriteError(w, http.StatusInternalServerError, serverError(err))
		return
	}

	// Cancelled bookings are removed from the store so they stop showing up.
	// The status record and the email are already out at this point; a failed
	// delete leaves them standing.
	if action == booking.ActionCancel {
		if err := h.Store.DeleteSubmission(ctx, req.ID); err != nil {
			log.Printf("admin: delete submission failed: booking=%s: %v", req.ID, err)
			api.WriteError(w, http.StatusInternalServerError, serverError(err))
			return
		}
	}

	api.WriteOK(w)
}

func serverError(err error) string {
	if err == nil || err.Error() == "" {
		return "server_error"
	}
	return err.Error()
}
