package mailer

import "context"

// Sender submits one HTML email to the outbound mail channel. Implementations
// differ only in transport: direct API key vs OAuth2-backed relay.
type Sender interface {
	Send(ctx context.Context, to, subject, html string) error
}
