package mailer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestResendSenderSend(t *testing.T) {
	var got resendEmailRequest
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/emails" {
			t.Errorf("path = %s", r.URL.Path)
		}
		auth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	s := NewResendSender("re_test_key", "NestorAI <support@nestorai.app>", srv.URL)
	err := s.Send(context.Background(), "owner@example.com", "New Lead", "<p>hi</p>")
	if err != nil {
		t.Fatalf("Send: %v", err)
	}

	if auth != "Bearer re_test_key" {
		t.Errorf("auth header = %q", auth)
	}
	if got.To != "owner@example.com" || got.Subject != "New Lead" || got.Html != "<p>hi</p>" {
		t.Errorf("unexpected payload: %+v", got)
	}
	if got.From != "NestorAI <support@nestorai.app>" {
		t.Errorf("from = %q", got.From)
	}
}

func TestResendSenderSendUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"message":"invalid to address"}`))
	}))
	defer srv.Close()

	s := NewResendSender("re_test_key", "support@nestorai.app", srv.URL)
	err := s.Send(context.Background(), "not-an-address", "New Lead", "<p>hi</p>")
	if err == nil {
		t.Fatal("expected error on non-success status")
	}
	if !strings.Contains(err.Error(), "422") {
		t.Errorf("error should carry status: %v", err)
	}
}
