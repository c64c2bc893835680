package mailer

import (
	"context"
	"fmt"
	"net"
	"net/smtp"
	"strconv"
	"strings"
	"time"

	"github.com/muhammadheryan/marketplace/utils/logger"
	"go.uber.org/zap"
)

// LogMailer writes messages to the application log instead of sending them.
type LogMailer struct{}

func NewLogMailer() *LogMailer {
	return &LogMailer{}
}

func (m *LogMailer) Send(_ context.Context, to, subject, body string) error {
	logger.Info("[LogMailer] mail",
		zap.String("to", to),
		zap.String("subject", subject),
		zap.String("body", body))
	return nil
}

type SMTPMailer struct {
	addr string
	from string
	auth smtp.Auth
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// NewSMTPMailer authenticates with PLAIN auth when a user is configured.
func NewSMTPMailer(host string, port int, user, password, from string) *SMTPMailer {
	var auth smtp.Auth
	if user != "" {
		auth = smtp.PlainAuth("", user, password, host)
	}
	return &SMTPMailer{
		addr: net.JoinHostPort(host, strconv.Itoa(port)),
		from: from,
		auth: auth,
		send: smtp.SendMail,
	}
}

// Send honours ctx by abandoning the wait; smtp.SendMail itself has no deadline.
func (m *SMTPMailer) Send(ctx context.Context, to, subject, body string) error {
	msg := buildMessage(m.from, to, subject, body, time.Now().UTC())

	errCh := make(chan error, 1)
	go func() {
		errCh <- m.send(m.addr, m.auth, m.from, []string{to}, msg)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("smtp send to %s: %w", to, err)
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func buildMessage(from, to, subject, body string, date time.Time) []byte {
	var b strings.Builder
	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + to + "\r\n")
	b.WriteString("Subject: " + subject + "\r\n")
	b.WriteString("Date: " + date.Format(time.RFC1123Z) + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(body)
	b.WriteString("\r\n")
	return []byte(b.String())
}
