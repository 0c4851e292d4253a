package mailer

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const defaultGmailBaseURL = "https://gmail.googleapis.com"

var _ Sender = (*GmailSender)(nil)

// GmailSender relays mail through the Gmail API using a long-lived OAuth2
// refresh token. Access tokens are minted and renewed by the token source.
type GmailSender struct {
	cli    *resty.Client
	sender string
}

type gmailSendRequest struct {
	Raw string `json:"raw"`
}

// NewGmailSender builds the OAuth2-backed transport. The context governs
// token refresh for the lifetime of the sender.
func NewGmailSender(ctx context.Context, clientId, clientSecret, refreshToken, sender, baseURL string) *GmailSender {
	if baseURL == "" {
		baseURL = defaultGmailBaseURL
	}
	oc := &oauth2.Config{
		ClientID:     clientId,
		ClientSecret: clientSecret,
		Endpoint:     google.Endpoint,
	}
	ts := oc.TokenSource(ctx, &oauth2.Token{RefreshToken: refreshToken})
	cli := resty.NewWithClient(oauth2.NewClient(ctx, ts)).SetBaseURL(baseURL)
	return &GmailSender{cli: cli, sender: sender}
}

func (s *GmailSender) Send(ctx context.Context, to, subject, html string) error {
	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", s.sender)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(html)

	raw := base64.URLEncoding.EncodeToString([]byte(msg.String()))
	resp, err := s.cli.R().
		SetContext(ctx).
		SetBody(gmailSendRequest{Raw: raw}).
		Post("/gmail/v1/users/me/messages/send")
	if err != nil {
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("gmail api error: %s: %s", resp.Status(), resp.String())
	}
	return nil
}
