package notify

import (
	"fmt"
	"strings"

	"bookingadmin/internal/booking"
)

const defaultFromName = "Mimi's Animal Care"

// Message is everything the customer email needs from the action payload.
type Message struct {
	CustomerEmail string
	CustomerName  string
	Service       string
	Start         string
	End           string
	Note          string
}

func statusLine(action booking.Action) string {
	switch action {
	case booking.ActionApprove:
		return "Approved ✅"
	case booking.ActionDeny:
		return "Declined"
	case booking.ActionCancel:
		return "Cancelled"
	default:
		return "Update"
	}
}

// Subject combines the sender display name, the decision label and the
// service, e.g. `Mimi's Animal Care — Approved ✅: Dog Walking`.
func Subject(fromName string, action booking.Action, msg Message) string {
	if fromName == "" {
		fromName = defaultFromName
	}
	return fmt.Sprintf("%s — %s: %s", fromName, statusLine(action), msg.Service)
}

// Body renders the plain-text customer email.
func Body(action booking.Action, msg Message) string {
	name := msg.CustomerName
	if name == "" {
		name = "there"
	}

	lines := []string{fmt.Sprintf("Hi %s,", name)}
	switch action {
	case booking.ActionApprove:
		lines = append(lines, "Good news — your request is approved!")
	case booking.ActionDeny:
		lines = append(lines, "Thanks for your request. Unfortunately I’m not available for that time.")
	case booking.ActionCancel:
		lines = append(lines, "Your booking has been cancelled per request.")
	default:
		lines = append(lines, "Here’s an update on your request:")
	}

	lines = append(lines,
		"",
		fmt.Sprintf("Service: %s", msg.Service),
		fmt.Sprintf("When: %s → %s", msg.Start, msg.End),
	)
	if note := strings.TrimSpace(msg.Note); note != "" {
		lines = append(lines, "", fmt.Sprintf("Note from Mimi: %s", note))
	}
	lines = append(lines,
		"",
		"Reply to this email if you have any questions.",
		"— Mimi",
	)

	return strings.Join(lines, "\n")
}
