package booking

import (
	"fmt"
	"strings"
)

// Action is an operator decision taken on a booking.
type Action string

const (
	ActionApprove Action = "approve"
	ActionDeny    Action = "deny"
	ActionEmail   Action = "email"
	ActionCancel  Action = "cancel"
)

func ParseAction(s string) (Action, error) {
	a := Action(strings.ToLower(s))
	switch a {
	case ActionApprove, ActionDeny, ActionEmail, ActionCancel:
		return a, nil
	default:
		return "", fmt.Errorf("unknown action: %s", s)
	}
}

// Status is the decision state of a booking as recorded in the status form.
type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusDenied    Status = "denied"
	StatusCancelled Status = "cancelled"
)

var actionStatus = map[Action]Status{
	ActionApprove: StatusApproved,
	ActionDeny:    StatusDenied,
	ActionCancel:  StatusCancelled,
}

// StatusFor maps a decision action to the status it records. The email action
// records nothing and returns ok=false.
func StatusFor(a Action) (Status, bool) {
	s, ok := actionStatus[a]
	return s, ok
}
