package contact

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethan-tjh/portfolio-backend/internal/pkg/email"
	"github.com/ethan-tjh/portfolio-backend/internal/pkg/logger"
)

// ErrNoReceiver means neither an owner inbox nor a sender address is configured.
var ErrNoReceiver = errors.New("contact receiver not configured")

// Mailer is the part of the email service the relay needs
type Mailer interface {
	SendSync(ctx context.Context, msg *email.QueuedEmail) error
	Queue(msg *email.QueuedEmail)
}

// Config names the site owner
type Config struct {
	Receiver    string // owner inbox
	Sender      string // sending address, used as the inbox when Receiver is empty
	OwnerName   string // signature on the confirmation mail
	RelaySender string // display name on the owner notification
}

// Service relays contact form submissions
type Service struct {
	mailer Mailer
	config Config
}

// NewService creates contact service
func NewService(mailer Mailer, config Config) *Service {
	if config.Receiver == "" {
		config.Receiver = config.Sender
	}
	if config.RelaySender == "" {
		config.RelaySender = "Portfolio Contact"
	}
	return &Service{mailer: mailer, config: config}
}

// Submit notifies the owner and queues a confirmation to the visitor.
// Only the owner notification is awaited.
func (s *Service) Submit(ctx context.Context, req *SubmitRequest) error {
	if s.config.Receiver == "" {
		return ErrNoReceiver
	}

	err := s.mailer.SendSync(ctx, &email.QueuedEmail{
		To:           s.config.Receiver,
		FromName:     s.config.RelaySender,
		ReplyTo:      req.Email,
		Subject:      "Portfolio Contact: " + req.Subject,
		TemplateName: email.TemplateContactOwner,
		Data: map[string]string{
			"Name":    req.Name,
			"Email":   req.Email,
			"Subject": req.Subject,
			"Message": req.Message,
		},
	})
	if err != nil {
		return fmt.Errorf("notify owner: %w", err)
	}

	s.mailer.Queue(&email.QueuedEmail{
		To:           req.Email,
		ToName:       req.Name,
		FromName:     s.config.OwnerName,
		Subject:      fmt.Sprintf("Thanks for reaching out, %s!", req.Name),
		TemplateName: email.TemplateContactConfirmation,
		Data: map[string]string{
			"Name":      req.Name,
			"Message":   req.Message,
			"Signature": s.config.OwnerName,
		},
	})

	logger.FromContext(ctx).Info().Str("reply_to", req.Email).Msg("Contact message relayed")
	return nil
}
