package booking

import (
	"sort"
	"strings"
	"time"

	"bookingadmin/pkg/netlify"
)

// LatestStatuses indexes status submissions by booking id. The scan keeps the
// last record seen per id, in whatever order the store returned them; records
// without a booking id are skipped.
func LatestStatuses(statuses []netlify.Submission) map[string]StatusInfo {
	byID := make(map[string]StatusInfo, len(statuses))
	for _, s := range statuses {
		id := s.Field("booking_id")
		if id == "" {
			id = s.Field("id")
		}
		if id == "" {
			continue
		}
		byID[id] = StatusInfo{
			Status:    strings.ToLower(s.Field("status")),
			Message:   s.Field("message"),
			UpdatedAt: s.CreatedAt,
		}
	}
	return byID
}

// MergeItems joins bookings with their latest status records and sorts the
// result newest first. A booking with no status record stays pending.
func MergeItems(bookings []netlify.Submission, byID map[string]StatusInfo) []Item {
	items := make([]Item, 0, len(bookings))
	for _, b := range bookings {
		merged := byID[b.ID]

		status := merged.Status
		if status == "" {
			status = b.Field("status")
		}
		if status == "" {
			status = string(StatusPending)
		}

		fullDay := b.Field("fullDay")
		if fullDay == "" {
			fullDay = "no"
		}

		items = append(items, Item{
			ID:        b.ID,
			CreatedAt: b.CreatedAt,
			Name:      b.Field("name"),
			Email:     b.Field("email"),
			Phone:     b.Field("phone"),
			Service:   b.Field("service"),
			Start:     b.Field("start"),
			End:       b.Field("end"),
			FullDay:   fullDay,
			Status:    status,
			AdminNote: merged.Message,
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return parseCreatedAt(items[i].CreatedAt).After(parseCreatedAt(items[j].CreatedAt))
	})

	return items
}

// Summary counts items per decision bucket. Statuses outside the three known
// buckets count toward none of them.
func Summary(items []Item) (pending, approved, denied int) {
	for _, it := range items {
		switch strings.ToLower(it.Status) {
		case string(StatusPending):
			pending++
		case string(StatusApproved):
			approved++
		case string(StatusDenied):
			denied++
		}
	}
	return pending, approved, denied
}

// parseCreatedAt treats unparsable timestamps as the zero time so they sort
// to the end of the newest-first list.
func parseCreatedAt(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
