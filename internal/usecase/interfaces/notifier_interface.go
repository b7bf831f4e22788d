package interfaces

import (
	"context"

	"gestao_backoffice/internal/domain/entities"
)

// INotifier delivers user-facing notifications. Delivery is fire-and-forget: Notify
// never blocks on a remote system and never fails the caller.
type INotifier interface {
	Notify(ctx context.Context, n entities.Notification)
}
