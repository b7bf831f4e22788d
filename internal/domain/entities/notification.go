package entities

import "time"

type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityInfo    Severity = "info"
	SeverityWarn    Severity = "warn"
	SeverityError   Severity = "error"
)

// Notification is a user-facing message about the result of an action. Duration is
// how long a client should keep it visible; zero lets the client decide.
type Notification struct {
	Severity Severity      `json:"severity"`
	Title    string        `json:"title"`
	Detail   string        `json:"detail,omitempty"`
	Duration time.Duration `json:"-"`
}
