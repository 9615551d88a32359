package notify

import (
	"fmt"

	"geofence-attendance-backend/config"
	"geofence-attendance-backend/internal/model"

	"gopkg.in/gomail.v2"
)

// Notifier is told about every persisted attendance event. Failures are
// reported but never block the pipeline: the event is already durable.
type Notifier interface {
	// AttendanceRecorded receives the user, the stored event and the
	// geofence it relates to. fence is nil for EXIT events resolved outside
	// all geofences.
	AttendanceRecorded(user *model.User, event *model.AttendanceEvent, fence *model.Geofence) error
}

// Noop discards notifications. Used when SMTP is not configured.
type Noop struct{}

func (Noop) AttendanceRecorded(*model.User, *model.AttendanceEvent, *model.Geofence) error {
	return nil
}

// EmailNotifier mails the user a short note on ENTER/EXIT.
type EmailNotifier struct {
	dialer *gomail.Dialer
	from   string
}

// NewEmailNotifierFromEnv builds an email notifier from SMTP_* env vars, or
// returns Noop when SMTP_HOST is unset.
func NewEmailNotifierFromEnv() Notifier {
	host := config.GetEnv("SMTP_HOST", "")
	if host == "" {
		return Noop{}
	}
	port := config.GetEnvAsInt("SMTP_PORT", 587)
	user := config.GetEnv("SMTP_USER", "")
	pass := config.GetEnv("SMTP_PASSWORD", "")
	from := config.GetEnv("SMTP_FROM", user)

	return &EmailNotifier{
		dialer: gomail.NewDialer(host, port, user, pass),
		from:   from,
	}
}

func (n *EmailNotifier) AttendanceRecorded(user *model.User, event *model.AttendanceEvent, fence *model.Geofence) error {
	if user.Email == "" {
		return nil
	}

	place := "the workplace"
	if fence != nil {
		place = fence.Name
	}

	var subject, body string
	if event.EventType == model.EventEnter {
		subject = "Checked in"
		body = fmt.Sprintf("You checked in at %s on %s.", place, event.OccurredAt.Format("Mon, 02 Jan 2006 15:04"))
	} else {
		subject = "Checked out"
		body = fmt.Sprintf("You checked out of %s on %s.", place, event.OccurredAt.Format("Mon, 02 Jan 2006 15:04"))
	}

	m := gomail.NewMessage()
	m.SetHeader("From", n.from)
	m.SetHeader("To", user.Email)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	return n.dialer.DialAndSend(m)
}
