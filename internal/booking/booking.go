package booking

// Item is a booking joined with its latest known status record, shaped for
// the operator UI. Bookings are created by the public intake form; only
// status and admin_note are derived here.
type Item struct {
	ID        string `json:"id"`
	CreatedAt string `json:"created_at"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Service   string `json:"service"`
	Start     string `json:"start"`
	End       string `json:"end"`
	FullDay   string `json:"fullDay"`
	Status    string `json:"status"`
	AdminNote string `json:"admin_note"`
}

// StatusInfo is the latest recorded decision for one booking.
type StatusInfo struct {
	Status    string
	Message   string
	UpdatedAt string
}
