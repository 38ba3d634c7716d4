package admin

import (
	"bookingadmin/internal/booking"
	"bookingadmin/internal/notify"
)

// ActionRequest is the POST body sent by the operator UI. All fields except
// action are echoes of the booking being acted on.
type ActionRequest struct {
	Action        string `json:"action"`
	ID            string `json:"id"`
	CustomerEmail string `json:"customerEmail"`
	CustomerName  string `json:"customerName"`
	Service       string `json:"service"`
	Start         string `json:"start"`
	End           string `json:"end"`
	Message       string `json:"message"`
}

func (r ActionRequest) notifyMessage() notify.Message {
	return notify.Message{
		CustomerEmail: r.CustomerEmail,
		CustomerName:  r.CustomerName,
		Service:       r.Service,
		Start:         r.Start,
		End:           r.End,
		Note:          r.Message,
	}
}

// ListResponse is the listing payload: merged items plus aggregate counts.
type ListResponse struct {
	OK       bool           `json:"ok"`
	Total    int            `json:"total"`
	Pending  int            `json:"pending"`
	Approved int            `json:"approved"`
	Denied   int            `json:"denied"`
	Items    []booking.Item `json:"items"`
}
