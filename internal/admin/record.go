package admin

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strings"

	"bookingadmin/internal/booking"
)

// defaultSiteURL is where status-form posts land when SITE_URL is unset.
const defaultSiteURL = "https://mimisanimalcare.com/"

// recordStatus appends a booking-status record by posting the status form to
// the site, the same way the intake form posts bookings. Records are
// append-only; the listing merge picks the latest one per booking.
func (h Handlers) recordStatus(ctx context.Context, status booking.Status, req ActionRequest) error {
	postURL := strings.TrimSpace(h.Cfg.Netlify.SiteURL)
	if postURL == "" {
		postURL = defaultSiteURL
	}

	values := url.Values{
		"form-name":  {statusFormName},
		"booking_id": {req.ID},
		"status":     {string(status)},
		"service":    {req.Service},
		"start":      {req.Start},
		"end":        {req.End},
		"customer":   {req.CustomerName},
		"message":    {req.Message},
	}

	if err := h.Store.SubmitForm(ctx, postURL, values); err != nil {
		log.Printf("admin: status form post failed: url=%s: %v", postURL, err)
		return fmt.Errorf("failed to record status")
	}
	return nil
}
