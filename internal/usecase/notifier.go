package usecase

import "context"

// Notifier delivers best-effort notifications about domain activity to an
// external consumer. Failures are logged by callers, never surfaced to the
// client.
type Notifier interface {
	Publish(ctx context.Context, kind string, payload any) error
}
