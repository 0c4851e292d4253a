package mailer

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"
)

const defaultResendBaseURL = "https://api.resend.com"

var _ Sender = (*ResendSender)(nil)

// ResendSender delivers mail through the Resend HTTP API with a bearer key.
type ResendSender struct {
	cli  *resty.Client
	from string
}

type resendEmailRequest struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Html    string `json:"html"`
}

// NewResendSender builds a Resend transport. baseURL is overridable for tests;
// empty selects the production endpoint.
func NewResendSender(apiKey, from, baseURL string) *ResendSender {
	if baseURL == "" {
		baseURL = defaultResendBaseURL
	}
	cli := resty.New().
		SetBaseURL(baseURL).
		SetAuthToken(apiKey).
		SetHeader("Content-Type", "application/json")
	return &ResendSender{cli: cli, from: from}
}

func (s *ResendSender) Send(ctx context.Context, to, subject, html string) error {
	resp, err := s.cli.R().
		SetContext(ctx).
		SetBody(resendEmailRequest{From: s.from, To: to, Subject: subject, Html: html}).
		Post("/emails")
	if err != nil {
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("resend api error: %s: %s", resp.Status(), resp.String())
	}
	return nil
}
