// Package mailer sends transactional plain-text email over an SMTP relay.
// Delivery is synchronous and best-effort: one message per call, no retry,
// no queue, no delivery confirmation.
package mailer

import (
	"context"

	"github.com/wneessen/go-mail"
	"go.uber.org/zap"

	"github.com/support-portal/backend/internal/apperr"
	"github.com/support-portal/backend/internal/config"
)

type Mailer struct {
	host     string
	port     int
	user     string
	password string
	sender   string
	log      *zap.Logger
}

func New(cfg *config.Config, log *zap.Logger) *Mailer {
	return &Mailer{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		user:     cfg.SMTPUser,
		password: cfg.SMTPPassword,
		sender:   cfg.SMTPSender,
		log:      log,
	}
}

// Send opens a session, authenticates, sends one plain-text message and
// closes the session. Transport failures come back as a DeliveryError and
// are logged here; the raw cause is never shown to end users. With no SMTP
// host configured every send fails the same soft way, so dev environments
// run without a relay.
func (m *Mailer) Send(ctx context.Context, to, subject, body string) error {
	if m.host == "" {
		m.log.Warn("email not sent, SMTP is not configured", zap.String("to", to), zap.String("subject", subject))
		return apperr.NewDeliveryError(errSMTPDisabled)
	}

	msg := mail.NewMsg()
	if err := msg.From(m.sender); err != nil {
		return apperr.NewDeliveryError(err)
	}
	if err := msg.To(to); err != nil {
		return apperr.NewDeliveryError(err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, body)

	client, err := mail.NewClient(m.host,
		mail.WithPort(m.port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(m.user),
		mail.WithPassword(m.password),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	)
	if err != nil {
		m.log.Error("smtp client setup failed", zap.Error(err))
		return apperr.NewDeliveryError(err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		m.log.Warn("smtp send failed", zap.String("to", to), zap.String("subject", subject), zap.Error(err))
		return apperr.NewDeliveryError(err)
	}

	m.log.Info("email sent", zap.String("to", to), zap.String("subject", subject))
	return nil
}

type smtpDisabledError struct{}

func (smtpDisabledError) Error() string { return "smtp is not configured" }

var errSMTPDisabled = smtpDisabledError{}
