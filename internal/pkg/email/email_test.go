package email

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

type recordingTransport struct {
	mu   sync.Mutex
	sent []*EmailMessage
}

func (r *recordingTransport) Send(_ context.Context, msg *EmailMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, msg)
	return nil
}

func TestSendSyncRendersTemplate(t *testing.T) {
	tr := &recordingTransport{}
	svc := NewServiceWithTransport(tr)
	defer svc.Close()

	err := svc.SendSync(context.Background(), &QueuedEmail{
		To:           "owner@example.com",
		ReplyTo:      "visitor@example.com",
		Subject:      "Portfolio Contact: Hi",
		TemplateName: TemplateContactOwner,
		Data: map[string]string{
			"Name":    "Ann",
			"Email":   "visitor@example.com",
			"Subject": "Hi",
			"Message": "<script>alert(1)</script>",
		},
	})
	if err != nil {
		t.Fatalf("send: %v", err)
	}

	if len(tr.sent) != 1 {
		t.Fatalf("expected 1 message, got %d", len(tr.sent))
	}
	msg := tr.sent[0]
	if msg.ReplyTo != "visitor@example.com" {
		t.Fatalf("reply-to = %q", msg.ReplyTo)
	}
	if strings.Contains(msg.HTMLContent, "<script>") {
		t.Fatal("visitor input must be escaped")
	}
	if !strings.Contains(msg.HTMLContent, "Ann") {
		t.Fatal("name missing from body")
	}
}

func TestSendSyncUnknownTemplate(t *testing.T) {
	svc := NewServiceWithTransport(&recordingTransport{})
	defer svc.Close()

	err := svc.SendSync(context.Background(), &QueuedEmail{TemplateName: "nope"})
	if !errors.Is(err, ErrUnknownTemplate) {
		t.Fatalf("expected ErrUnknownTemplate, got %v", err)
	}
}

func TestQueueDeliversBeforeClose(t *testing.T) {
	tr := &recordingTransport{}
	svc := NewServiceWithTransport(tr)

	svc.Queue(&QueuedEmail{
		To:           "visitor@example.com",
		TemplateName: TemplateContactConfirmation,
		Data:         map[string]string{"Name": "Ann", "Message": "hello", "Signature": "Ethan"},
	})
	svc.Close()
	svc.Close()

	if len(tr.sent) != 1 {
		t.Fatalf("expected queued mail delivered on close, got %d", len(tr.sent))
	}
}

func TestSendGridClientPayload(t *testing.T) {
	var got SendGridRequest
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode: %v", err)
		}
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	client := NewSendGridClient(SendGridConfig{APIKey: "key", FromEmail: "noreply@example.com", FromName: "Portfolio Contact", Endpoint: srv.URL})
	err := client.Send(context.Background(), &EmailMessage{
		To:          "owner@example.com",
		ReplyTo:     "visitor@example.com",
		Subject:     "Hello",
		HTMLContent: "<p>hi</p>",
	})
	if err != nil {
		t.Fatalf("send: %v", err)
	}

	if auth != "Bearer key" {
		t.Fatalf("authorization = %q", auth)
	}
	if got.ReplyTo == nil || got.ReplyTo.Email != "visitor@example.com" {
		t.Fatalf("reply_to missing: %+v", got.ReplyTo)
	}
	if got.From.Name != "Portfolio Contact" || len(got.Content) != 1 {
		t.Fatalf("unexpected request %+v", got)
	}
}

func TestSendGridClientErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := NewSendGridClient(SendGridConfig{APIKey: "bad", Endpoint: srv.URL})
	if err := client.Send(context.Background(), &EmailMessage{To: "a@b.co"}); err == nil {
		t.Fatal("expected error on 401")
	}
}
