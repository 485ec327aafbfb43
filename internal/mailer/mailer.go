package mailer

import (
	"context"
	"fmt"
	"time"

	"gopkg.in/gomail.v2"
)

// SMTP is the mail transport configuration for one run. The password comes
// from the environment; it is never embedded in the binary.
type SMTP struct {
	Host     string
	Port     int
	From     string
	Password string
}

// Notification is one payslip email: a plain-text body plus the PDF
// attachment. The attachment is named after the file's base name.
type Notification struct {
	To         string
	Subject    string
	Body       string
	Attachment string
}

// DeliveryError marks a failed send to one recipient. It carries the cause so
// batch summaries can tell auth, network and attachment failures apart.
type DeliveryError struct {
	Recipient string
	Err       error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("mailer: send to %s: %v", e.Recipient, e.Err)
}

func (e *DeliveryError) Unwrap() error { return e.Err }

// Message builds the MIME multipart message for one notification.
func Message(from string, n Notification) *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", n.To)
	m.SetHeader("Subject", n.Subject)
	m.SetDateHeader("Date", time.Now())
	m.SetBody("text/plain", n.Body)
	m.Attach(n.Attachment)
	return m
}

// Send opens one SMTP session, upgrades to TLS, authenticates, sends the
// notification and tears the session down. Sessions are not reused across
// notifications. The dial-and-send runs in its own goroutine so the ctx
// deadline is honored even though the SMTP client cannot be canceled
// mid-call.
func Send(ctx context.Context, cfg SMTP, n Notification) error {
	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.From, cfg.Password)

	done := make(chan error, 1)
	go func() {
		done <- d.DialAndSend(Message(cfg.From, n))
	}()

	select {
	case <-ctx.Done():
		return &DeliveryError{Recipient: n.To, Err: ctx.Err()}
	case err := <-done:
		if err != nil {
			return &DeliveryError{Recipient: n.To, Err: err}
		}
	}
	return nil
}
