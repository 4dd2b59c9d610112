package services

import (
	"context"

	"github.com/rlsh74/tnsystems-website/contact/compose"
	contactErrors "github.com/rlsh74/tnsystems-website/contact/errors"
	"github.com/rlsh74/tnsystems-website/contact/models"
	"github.com/rlsh74/tnsystems-website/internal/pkg/log"
	platformconfig "github.com/rlsh74/tnsystems-website/internal/platform/config"
	platformemail "github.com/rlsh74/tnsystems-website/internal/platform/email"
)

// ContactService delivers validated submissions by email.
type ContactService interface {
	Submit(ctx context.Context, sub *models.ContactSubmission) error
}

type Service struct {
	sender    platformemail.Sender
	addresses compose.Addresses
}

var _ ContactService = (*Service)(nil)

func NewService(sender platformemail.Sender, addresses compose.Addresses) *Service {
	return &Service{
		sender:    sender,
		addresses: addresses,
	}
}

// AddressesFromConfig collects the fixed mail parties from configuration.
func AddressesFromConfig(cfg *platformconfig.Config) compose.Addresses {
	return compose.Addresses{
		From:         cfg.FromAddress(),
		CompanyEmail: cfg.Email.CompanyEmail,
		OrgName:      cfg.App.OrgName,
		Website:      cfg.App.Website,
	}
}

// Submit sends the operator notification and then the acknowledgment.
// The acknowledgment is not attempted when the notification fails, and a
// notification already sent is not recalled when the acknowledgment fails.
func (s *Service) Submit(ctx context.Context, sub *models.ContactSubmission) error {
	msgs, err := compose.Compose(*sub, s.addresses)
	if err != nil {
		log.ErrorWithContext(ctx, "[contact] %v", err)
		return contactErrors.WrapComposeError(err)
	}

	if err := s.sender.Send(ctx, msgs.Notification); err != nil {
		log.ErrorWithContext(ctx, "[contact] notification to %s failed: %v", s.addresses.CompanyEmail, err)
		return contactErrors.WrapDeliveryError("notification", err)
	}

	if err := s.sender.Send(ctx, msgs.Acknowledgment); err != nil {
		log.ErrorWithContext(ctx, "[contact] acknowledgment to %s failed: %v", sub.Email, err)
		return contactErrors.WrapDeliveryError("acknowledgment", err)
	}

	log.InfoWithContext(ctx, "Contact form submission: %s (%s) - %s", sub.Name, sub.Email, industryLabel(sub.Industry))
	return nil
}

func industryLabel(i models.Industry) string {
	if i == "" {
		return "no industry"
	}
	return string(i)
}
