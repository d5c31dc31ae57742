package gateway

import "context"

// Intent is a client-side payment handle issued by the provider. The
// frontend completes the card flow with the client secret; the backend
// only ever sees the reference.
type Intent struct {
	Reference    string
	ClientSecret string
}

type Gateway interface {
	// CreateIntent opens a transaction for the given amount in the
	// smallest currency unit.
	CreateIntent(ctx context.Context, amount int64, currency string) (Intent, error)

	// ConfirmSucceeded reports whether the referenced transaction
	// reached a terminal success status.
	ConfirmSucceeded(ctx context.Context, reference string) (bool, error)
}
