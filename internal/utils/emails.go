package utils

import (
	"fmt"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"

	"github.com/fakoredeDamilola/mongodb-eduhub-project/internal/config"
)

// Mailer sends account emails over SMTP. It is disabled when no SMTP
// username is configured.
type Mailer struct {
	cfg config.SMTPConfig
	log *zap.Logger
}

func NewMailer(cfg config.SMTPConfig, log *zap.Logger) *Mailer {
	return &Mailer{cfg: cfg, log: log}
}

// SendWelcome mails a short welcome note to a newly registered user.
func (m *Mailer) SendWelcome(to string, firstName string) error {
	if m.cfg.Username == "" {
		m.log.Debug("smtp not configured, skipping welcome email", zap.String("to", to))
		return nil
	}

	body := fmt.Sprintf(`<p>Hi %s,</p>
<p>Welcome to EduHub! Your account is ready — browse the published courses and enroll whenever you like.</p>
<p>&copy; EduHub. All rights reserved.</p>`, firstName)

	mailer := gomail.NewMessage()
	mailer.SetHeader("From", m.cfg.Username)
	mailer.SetHeader("To", to)
	mailer.SetHeader("Subject", "Welcome to EduHub")
	mailer.SetBody("text/html", body)

	dialer := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.Username, m.cfg.Password)
	if err := dialer.DialAndSend(mailer); err != nil {
		m.log.Error("failed to send welcome email", zap.String("to", to), zap.Error(err))
		return err
	}

	m.log.Info("welcome email sent", zap.String("to", to))
	return nil
}
