package mailer

import (
	"fmt"

	"leave-management-backend/config"
	"leave-management-backend/internal/model"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// Mailer sends review-decision notifications to employees. It is best-effort:
// failures are logged and never surface to the request that triggered them.
type Mailer struct {
	host     string
	port     int
	username string
	password string
	from     string
	log      *zap.Logger
}

// NewFromEnv builds a mailer from SMTP_* environment variables. Returns nil
// when SMTP_HOST is unset, which disables notifications entirely.
func NewFromEnv(log *zap.Logger) *Mailer {
	host := config.GetEnv("SMTP_HOST", "")
	if host == "" {
		return nil
	}
	return &Mailer{
		host:     host,
		port:     config.GetEnvAsInt("SMTP_PORT", 587),
		username: config.GetEnv("SMTP_USER", ""),
		password: config.GetEnv("SMTP_PASS", ""),
		from:     config.GetEnv("SMTP_FROM", "noreply@leave-management.local"),
		log:      log,
	}
}

func (m *Mailer) NotifyReviewDecision(email, firstName string, app *model.LeaveApplication, review *model.LeaveReview) {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", email)
	msg.SetHeader("Subject", fmt.Sprintf("Your leave request has been %s", review.Status))

	body := fmt.Sprintf("Hello %s,\n\nYour %s leave request for %s to %s has been %s.",
		firstName,
		app.LeaveType,
		app.StartDate.Format("2006-01-02"),
		app.EndDate.Format("2006-01-02"),
		review.Status,
	)
	if review.Comments != nil && *review.Comments != "" {
		body += fmt.Sprintf("\n\nReviewer comments: %s", *review.Comments)
	}
	msg.SetBody("text/plain", body)

	dialer := gomail.NewDialer(m.host, m.port, m.username, m.password)
	if err := dialer.DialAndSend(msg); err != nil {
		m.log.Warn("failed to send review notification",
			zap.String("to", email),
			zap.Uint("application_id", app.LeaveApplicationID),
			zap.Error(err))
	}
}
