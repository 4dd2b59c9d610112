package email

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/smtp"
	"strconv"
	"strings"

	"github.com/jordan-wright/email"
)

// Endpoint is the SMTP host and port of a mail service.
type Endpoint struct {
	Host string
	Port int
}

var wellKnownServices = map[string]Endpoint{
	"gmail":    {Host: "smtp.gmail.com", Port: 587},
	"outlook":  {Host: "smtp.office365.com", Port: 587},
	"hotmail":  {Host: "smtp-mail.outlook.com", Port: 587},
	"yahoo":    {Host: "smtp.mail.yahoo.com", Port: 465},
	"sendgrid": {Host: "smtp.sendgrid.net", Port: 587},
	"mailgun":  {Host: "smtp.mailgun.org", Port: 587},
	"ethereal": {Host: "smtp.ethereal.email", Port: 587},
}

// ResolveService maps a service name such as "gmail" to its SMTP endpoint.
func ResolveService(name string) (Endpoint, bool) {
	ep, ok := wellKnownServices[strings.ToLower(strings.TrimSpace(name))]
	return ep, ok
}

// SMTPSender is the production implementation of the Sender interface.
type SMTPSender struct {
	host     string
	port     int
	username string
	password string
}

// NewSMTPSender creates a new SMTP sender. Host and port are required.
func NewSMTPSender(host string, port int, username, password string) (*SMTPSender, error) {
	if host == "" || port <= 0 {
		return nil, fmt.Errorf("SMTP host and port are required")
	}
	return &SMTPSender{host: host, port: port, username: username, password: password}, nil
}

// Addr returns host:port of the SMTP server.
func (s *SMTPSender) Addr() string {
	return s.host + ":" + strconv.Itoa(s.port)
}

func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(msg.To) == 0 {
		return fmt.Errorf("message has no recipients")
	}

	e := email.NewEmail()
	e.From = msg.From
	e.To = msg.To
	e.Subject = msg.Subject
	e.HTML = []byte(msg.HTML)
	if msg.Text != "" {
		e.Text = []byte(msg.Text)
	}
	if msg.ReplyTo != "" {
		e.ReplyTo = []string{msg.ReplyTo}
	}

	var auth smtp.Auth
	if s.username != "" {
		auth = smtp.PlainAuth("", s.username, s.password, s.host)
	}
	tlsConfig := &tls.Config{
		ServerName: s.host,
		MinVersion: tls.VersionTLS12,
	}

	var err error
	if s.port == 465 {
		err = e.SendWithTLS(s.Addr(), auth, tlsConfig)
	} else {
		err = e.SendWithStartTLS(s.Addr(), auth, tlsConfig)
	}
	if err != nil {
		return fmt.Errorf("failed to send email to %s via %s: %w", strings.Join(msg.To, ","), s.host, err)
	}
	return nil
}
