package output

import "context"

// Notifier delivers user-facing messages outside the guild's public surface.
type Notifier interface {
	DirectMessage(ctx context.Context, userID, content string) error
}
