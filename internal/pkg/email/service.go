package email

import (
	"bytes"
	"context"
	"errors"
	"html/template"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// ErrUnknownTemplate is returned when a message names a template that was never loaded.
var ErrUnknownTemplate = errors.New("unknown email template")

// Transport delivers a rendered message
type Transport interface {
	Send(ctx context.Context, msg *EmailMessage) error
}

// LogTransport logs messages instead of delivering them (no API key configured).
type LogTransport struct{}

func (LogTransport) Send(_ context.Context, msg *EmailMessage) error {
	log.Info().
		Str("to", msg.To).
		Str("reply_to", msg.ReplyTo).
		Str("subject", msg.Subject).
		Msg("Email delivery disabled, message logged only")
	return nil
}

// Service handles email sending with templates
type Service struct {
	transport    Transport
	templates    map[string]*template.Template
	baseTemplate *template.Template
	queue        chan *QueuedEmail
	wg           sync.WaitGroup
	closeOnce    sync.Once
}

// QueuedEmail represents an email in the send queue
type QueuedEmail struct {
	To           string
	ToName       string
	FromName     string
	ReplyTo      string
	Subject      string
	TemplateName string
	Data         interface{}
}

// NewService creates email service. Without an API key messages are only logged.
func NewService(config SendGridConfig) *Service {
	var transport Transport = LogTransport{}
	if config.APIKey != "" {
		transport = NewSendGridClient(config)
	}
	return NewServiceWithTransport(transport)
}

// NewServiceWithTransport creates email service over any transport
func NewServiceWithTransport(transport Transport) *Service {
	s := &Service{
		transport: transport,
		templates: make(map[string]*template.Template),
		queue:     make(chan *QueuedEmail, 100),
	}

	s.baseTemplate = template.Must(template.New("base").Parse(BaseTemplate))
	s.loadTemplates()

	s.wg.Add(1)
	go s.worker()

	return s
}

// loadTemplates loads all email templates
func (s *Service) loadTemplates() {
	templates := map[string]string{
		TemplateContactOwner:        ContactOwnerTemplate,
		TemplateContactConfirmation: ContactConfirmationTemplate,
	}

	for name, content := range templates {
		tmpl, err := template.New(name).Parse(content)
		if err != nil {
			log.Error().Err(err).Str("template", name).Msg("Failed to parse email template")
			continue
		}
		s.templates[name] = tmpl
	}
}

// worker processes queued emails asynchronously
func (s *Service) worker() {
	defer s.wg.Done()

	for email := range s.queue {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := s.send(ctx, email); err != nil {
			log.Error().Err(err).
				Str("to", email.To).
				Str("template", email.TemplateName).
				Msg("Failed to send email")
		}
		cancel()
	}
}

// send renders and delivers the email
func (s *Service) send(ctx context.Context, email *QueuedEmail) error {
	tmpl, ok := s.templates[email.TemplateName]
	if !ok {
		return ErrUnknownTemplate
	}

	var contentBuf bytes.Buffer
	if err := tmpl.Execute(&contentBuf, email.Data); err != nil {
		return err
	}

	var htmlBuf bytes.Buffer
	if err := s.baseTemplate.Execute(&htmlBuf, map[string]interface{}{
		"Content": template.HTML(contentBuf.String()),
	}); err != nil {
		return err
	}

	return s.transport.Send(ctx, &EmailMessage{
		To:          email.To,
		ToName:      email.ToName,
		FromName:    email.FromName,
		ReplyTo:     email.ReplyTo,
		Subject:     email.Subject,
		HTMLContent: htmlBuf.String(),
	})
}

// Queue adds an email to the async send queue
func (s *Service) Queue(email *QueuedEmail) {
	select {
	case s.queue <- email:
	default:
		log.Warn().Str("to", email.To).Msg("Email queue full, dropping email")
	}
}

// SendSync sends an email synchronously (blocking)
func (s *Service) SendSync(ctx context.Context, email *QueuedEmail) error {
	return s.send(ctx, email)
}

// Close drains the queue and stops the email worker
func (s *Service) Close() {
	s.closeOnce.Do(func() {
		close(s.queue)
	})
	s.wg.Wait()
}
