package response

import (
	"gestao_backoffice/internal/domain/entities"
	"gestao_backoffice/pkg"
)

type NotificationResponse struct {
	Severity   string `json:"severity"`
	Title      string `json:"title"`
	Detail     string `json:"detail,omitempty"`
	DurationMS int64  `json:"duration_ms"`
}

func FromNotifications(ns []entities.Notification) []NotificationResponse {
	out := make([]NotificationResponse, 0, len(ns))
	for _, n := range ns {
		out = append(out, NotificationResponse{
			Severity:   string(n.Severity),
			Title:      n.Title,
			Detail:     n.Detail,
			DurationMS: n.Duration.Milliseconds(),
		})
	}
	return out
}

// Envelope wraps a successful action result with the notifications raised while
// handling it.
type Envelope[T any] struct {
	Data          T                      `json:"data"`
	Notifications []NotificationResponse `json:"notifications"`
}

// ErrorResponse is pkg.HTTPError plus the notifications raised before the failure.
type ErrorResponse struct {
	pkg.HTTPError
	Notifications []NotificationResponse `json:"notifications,omitempty"`
}
