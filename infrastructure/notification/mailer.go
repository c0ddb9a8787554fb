package notification

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/dealerhub/dealer-ops-api/internal/config"
)

// Mailer envia notificações por e-mail. As chamadas dos usecases são
// fire-and-forget: falha de envio nunca derruba a operação de negócio.
type Mailer interface {
	Send(to []string, subject, body string)
}

type smtpMailer struct {
	cfg config.SMTP
}

func NewMailer(cfg config.SMTP) Mailer {
	return &smtpMailer{cfg: cfg}
}

func (m *smtpMailer) Send(to []string, subject, body string) {
	if !m.cfg.Enabled || len(to) == 0 {
		return
	}

	go func() {
		addr := fmt.Sprintf("%s:%s", m.cfg.Host, m.cfg.Port)

		msg := strings.Join([]string{
			"From: " + m.cfg.From,
			"To: " + strings.Join(to, ", "),
			"Subject: " + subject,
			"MIME-Version: 1.0",
			"Content-Type: text/plain; charset=\"utf-8\"",
			"",
			body,
		}, "\r\n")

		var auth smtp.Auth
		if m.cfg.User != "" {
			auth = smtp.PlainAuth("", m.cfg.User, m.cfg.Password, m.cfg.Host)
		}

		if err := smtp.SendMail(addr, auth, m.cfg.From, to, []byte(msg)); err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"to":      to,
				"subject": subject,
			}).Error("Erro ao enviar e-mail de notificação")
			return
		}

		logrus.WithField("subject", subject).Debug("E-mail de notificação enviado")
	}()
}
