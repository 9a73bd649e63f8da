package interfaces

import "context"

// IMailSender abstracts the outbound notification transport. Sends are
// irreversible: a successful Send may not be rolled back by any later
// failure in the calling operation.

type IMailSender interface {
	Send(ctx context.Context, to, subject, body string) error
}
