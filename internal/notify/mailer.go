package notify

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/smtp"
	"strings"

	"bookingadmin/internal/booking"
	"bookingadmin/pkg/config"
)

const (
	gmailHost = "smtp.gmail.com"
	gmailPort = "465"
)

// GmailMailer sends customer notifications through the configured Gmail
// account. Port 465 means the connection is TLS from the first byte, so the
// plain smtp.SendMail helper (which expects STARTTLS) does not apply here.
type GmailMailer struct {
	Cfg config.MailConfig
}

// Send composes and delivers the notification for one operator action.
func (m GmailMailer) Send(ctx context.Context, action booking.Action, msg Message) error {
	if m.Cfg.User == "" || m.Cfg.AppPassword == "" {
		return fmt.Errorf("missing GMAIL_USER or GMAIL_APP_PASSWORD")
	}

	to := strings.TrimSpace(msg.CustomerEmail)
	if to == "" {
		return fmt.Errorf("no customerEmail provided")
	}

	fromName := m.Cfg.FromName
	if fromName == "" {
		fromName = defaultFromName
	}

	recipients := []string{to}
	headers := []string{
		fmt.Sprintf("From: %q <%s>", fromName, m.Cfg.User),
		"To: " + to,
	}
	if m.Cfg.OwnerEmail != "" {
		recipients = append(recipients, m.Cfg.OwnerEmail)
		headers = append(headers, "Cc: "+m.Cfg.OwnerEmail)
	}
	headers = append(headers,
		"Subject: "+Subject(m.Cfg.FromName, action, msg),
		"MIME-Version: 1.0",
		`Content-Type: text/plain; charset="UTF-8"`,
	)

	payload := []byte(strings.Join(headers, "\r\n") + "\r\n\r\n" + Body(action, msg))

	return m.send(ctx, recipients, payload)
}

func (m GmailMailer) send(ctx context.Context, recipients []string, payload []byte) error {
	addr := gmailHost + ":" + gmailPort

	dialer := tls.Dialer{Config: &tls.Config{ServerName: gmailHost}}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("smtp dial: %w", err)
	}

	c, err := smtp.NewClient(conn, gmailHost)
	if err != nil {
		conn.Close()
		return fmt.Errorf("smtp handshake: %w", err)
	}
	defer c.Close()

	auth := smtp.PlainAuth("", m.Cfg.User, m.Cfg.AppPassword, gmailHost)
	if err := c.Auth(auth); err != nil {
		return fmt.Errorf("smtp auth: %w", err)
	}

	if err := c.Mail(m.Cfg.User); err != nil {
		return fmt.Errorf("smtp mail from: %w", err)
	}
	for _, rcpt := range recipients {
		if err := c.Rcpt(rcpt); err != nil {
			return fmt.Errorf("smtp rcpt %s: %w", rcpt, err)
		}
	}

	w, err := c.Data()
	if err != nil {
		return fmt.Errorf("smtp data: %w", err)
	}
	if _, err := w.Write(payload); err != nil {
		return fmt.Errorf("smtp write: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("smtp close: %w", err)
	}

	return c.Quit()
}
