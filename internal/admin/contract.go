package admin

import (
	"context"
	"net/url"

	"bookingadmin/internal/booking"
	"bookingadmin/internal/notify"
	"bookingadmin/pkg/netlify"
)

// Store is the slice of the submissions store this handler needs. Satisfied
// by netlify.Client; faked in tests.
type Store interface {
	SiteForms(ctx context.Context, siteID string) ([]netlify.Form, error)
	FormSubmissions(ctx context.Context, formID string) ([]netlify.Submission, error)
	DeleteSubmission(ctx context.Context, submissionID string) error
	SubmitForm(ctx context.Context, postURL string, values url.Values) error
}

// Notifier delivers the customer email for an operator action. Satisfied by
// notify.GmailMailer; faked in tests.
type Notifier interface {
	Send(ctx context.Context, action booking.Action, msg notify.Message) error
}
