package booking

import (
	"testing"

	"bookingadmin/pkg/netlify"
)

func TestLatestStatuses_LastScanOrderWins(t *testing.T) {
	statuses := []netlify.Submission{
		{ID: "s1", CreatedAt: "2024-05-02T10:00:00Z", Data: map[string]any{"booking_id": "B1", "status": "Approved"}},
		{ID: "s2", CreatedAt: "2024-05-01T10:00:00Z", Data: map[string]any{"booking_id": "B1", "status": "denied", "message": "no slots"}},
	}

	info, ok := LatestStatuses(statuses)["B1"]
	if !ok {
		t.Fatalf("expected entry for B1")
	}
	// The second record is older by created_at but later in scan order.
	if info.Status != "denied" {
		t.Fatalf("expected denied, got %q", info.Status)
	}
	if info.Message != "no slots" {
		t.Fatalf("expected message %q, got %q", "no slots", info.Message)
	}
}

func TestLatestStatuses_FallsBackToIDAndSkipsBlank(t *testing.T) {
	statuses := []netlify.Submission{
		{ID: "s1", Data: map[string]any{"id": "B2", "status": "APPROVED"}},
		{ID: "s2", Data: map[string]any{"status": "denied"}},
	}

	byID := LatestStatuses(statuses)
	if len(byID) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(byID))
	}
	if byID["B2"].Status != "approved" {
		t.Fatalf("expected lowercased approved, got %q", byID["B2"].Status)
	}
}

func TestMergeItems_Defaults(t *testing.T) {
	bookings := []netlify.Submission{
		{ID: "B1", CreatedAt: "2024-05-01T10:00:00Z", Data: map[string]any{"name": "Ana"}},
	}

	items := MergeItems(bookings, map[string]StatusInfo{})
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	it := items[0]
	if it.FullDay != "no" {
		t.Fatalf("expected fullDay no, got %q", it.FullDay)
	}
	if it.Status != "pending" {
		t.Fatalf("expected pending, got %q", it.Status)
	}
	if it.AdminNote != "" {
		t.Fatalf("expected empty admin_note, got %q", it.AdminNote)
	}
}

func TestMergeItems_StatusPrecedence(t *testing.T) {
	bookings := []netlify.Submission{
		{ID: "B1", Data: map[string]any{"status": "approved"}},
		{ID: "B2", Data: map[string]any{"status": "approved"}},
	}
	byID := map[string]StatusInfo{
		"B1": {Status: "cancelled", Message: "gone"},
		// B2 has a record with an empty status; the raw field wins.
		"B2": {Status: ""},
	}

	items := MergeItems(bookings, byID)
	got := map[string]Item{}
	for _, it := range items {
		got[it.ID] = it
	}
	if got["B1"].Status != "cancelled" || got["B1"].AdminNote != "gone" {
		t.Fatalf("expected recorded status to win, got %+v", got["B1"])
	}
	if got["B2"].Status != "approved" {
		t.Fatalf("expected raw status fallback, got %q", got["B2"].Status)
	}
}

func TestMergeItems_SortsNewestFirstUnparsableLast(t *testing.T) {
	bookings := []netlify.Submission{
		{ID: "old", CreatedAt: "2024-01-01T00:00:00Z"},
		{ID: "garbage", CreatedAt: "not-a-date"},
		{ID: "new", CreatedAt: "2024-06-01T00:00:00Z"},
	}

	items := MergeItems(bookings, nil)
	if items[0].ID != "new" || items[1].ID != "old" || items[2].ID != "garbage" {
		t.Fatalf("unexpected order: %s, %s, %s", items[0].ID, items[1].ID, items[2].ID)
	}
}

func TestSummary_UncategorizedCountsNowhere(t *testing.T) {
	items := []Item{
		{Status: "pending"},
		{Status: "Approved"},
		{Status: "weird"},
	}

	pending, approved, denied := Summary(items)
	if pending != 1 || approved != 1 || denied != 0 {
		t.Fatalf("expected 1/1/0, got %d/%d/%d", pending, approved, denied)
	}
}
