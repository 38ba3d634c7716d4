package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"bookingadmin/internal/api"
	"bookingadmin/internal/booking"
	"bookingadmin/internal/notify"
	"bookingadmin/pkg/config"
	"bookingadmin/pkg/netlify"
)

type stubStore struct{}

func (stubStore) SiteForms(ctx context.Context, siteID string) ([]netlify.Form, error) {
	return nil, nil
}

func (stubStore) FormSubmissions(ctx context.Context, formID string) ([]netlify.Submission, error) {
	return nil, nil
}

func (stubStore) DeleteSubmission(ctx context.Context, submissionID string) error { return nil }

func (stubStore) SubmitForm(ctx context.Context, postURL string, values url.Values) error {
	return nil
}

type stubNotifier struct{}

func (stubNotifier) Send(ctx context.Context, action booking.Action, msg notify.Message) error {
	return nil
}

func testRouter() http.Handler {
	cfg := config.Load()
	cfg.AdminKey = "secret"
	return NewRouter(Dependencies{
		Cfg:      cfg,
		Store:    stubStore{},
		Notifier: stubNotifier{},
	})
}

func TestRouter_HealthzNeedsNoKey(t *testing.T) {
	rec := httptest.NewRecorder()
	testRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusOK || rec.Body.String() != "ok" {
		t.Fatalf("expected 200 ok, got %d %q", rec.Code, rec.Body.String())
	}
}

func TestRouter_AdminEndpointRequiresKey(t *testing.T) {
	rec := httptest.NewRecorder()
	testRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/?action=poll", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	var env api.Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if env.OK || env.Error != "unauthorized" {
		t.Fatalf("unexpected envelope: %+v", env)
	}
}

func TestRouter_PollWithKey(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/?action=poll", nil)
	r.Header.Set(api.AdminKeyHeader, "secret")
	rec := httptest.NewRecorder()
	testRouter().ServeHTTP(rec, r)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("expected CORS header on success, got %q", got)
	}
}

func TestRouter_PreflightSkipsAuth(t *testing.T) {
	rec := httptest.NewRecorder()
	testRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var env api.Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if !env.OK {
		t.Fatalf("expected ok:true on preflight")
	}
	if got := rec.Header().Get("Access-Control-Allow-Methods"); got != "GET,POST,OPTIONS" {
		t.Fatalf("unexpected allowed methods: %q", got)
	}
}
