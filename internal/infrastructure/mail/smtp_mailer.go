package mail

import (
	"context"
	"errors"
	"log"

	"gopkg.in/gomail.v2"

	"appraisal_desk/internal/config"
	"appraisal_desk/internal/usecase/interfaces"
)

var ErrMailerNotConfigured = errors.New("smtp configuration incomplete: check SMTP_HOST, SMTP_USER, SMTP_PASSWORD")

// SMTPMailer sends plain-text mail over SMTP with STARTTLS.
type SMTPMailer struct {
	cfg config.Mail
}

var _ interfaces.IMailSender = (*SMTPMailer)(nil)

func NewSMTPMailer(cfg config.Mail) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

// Send delivers one message. The SMTP dial has no context plumbing, so only
// an already-cancelled context is honored before dialing; per-recipient
// isolation is the dispatcher's job.
func (m *SMTPMailer) Send(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if m.cfg.Host == "" || m.cfg.User == "" || m.cfg.Password == "" {
		return ErrMailerNotConfigured
	}

	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", m.cfg.User, m.cfg.SenderName)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	d := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.User, m.cfg.Password)
	if err := d.DialAndSend(msg); err != nil {
		return err
	}
	log.Printf("[notify][smtp] sent to=%s subject=%q", to, subject)
	return nil
}
