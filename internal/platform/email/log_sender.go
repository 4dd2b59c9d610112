package email

import (
	"context"
	"fmt"
	"strings"

	"github.com/rlsh74/tnsystems-website/internal/pkg/log"
	"github.com/rlsh74/tnsystems-website/internal/platform/config"
)

// LogSender writes messages to the log instead of delivering them.
// It is the development transport when no SMTP server is configured.
type LogSender struct{}

func (LogSender) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	log.InfoWithContext(ctx, "[email] From: %s | To: %s | Subject: %s (%d bytes html)",
		msg.From, strings.Join(msg.To, ","), msg.Subject, len(msg.HTML))
	log.Debug("[email] body:\n%s", msg.HTML)
	return nil
}

// NewSenderFromConfig picks the transport for the runtime mode.
// Production always uses SMTP; development uses SMTP only when a host is configured explicitly.
func NewSenderFromConfig(cfg *config.Config) (Sender, error) {
	host, port := cfg.Email.SMTPHost, cfg.Email.SMTPPort
	if host == "" && cfg.IsProduction() {
		ep, ok := ResolveService(cfg.Email.Service)
		if !ok {
			return nil, fmt.Errorf("unknown EMAIL_SERVICE %q and no SMTP_HOST set", cfg.Email.Service)
		}
		host = ep.Host
		if port == 0 {
			port = ep.Port
		}
	}
	if host == "" {
		return LogSender{}, nil
	}
	if port == 0 {
		port = 587
	}
	sender, err := NewSMTPSender(host, port, cfg.Email.User, cfg.Email.Pass)
	if err != nil {
		return nil, err
	}
	return sender, nil
}
