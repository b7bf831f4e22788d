package request

import (
	"errors"
	"strings"
	"time"

	"gestao_backoffice/internal/workflow"
)

const dateLayout = "2006-01-02"

var ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")

// ActionRequest is the body of POST /<entities>/:id/actions.
//
// actor_id and actor_name are ignored when the caller is authenticated; the token
// claims win.
type ActionRequest struct {
	Action      string         `json:"action" binding:"required"`
	ActorID     string         `json:"actor_id"`
	ActorName   string         `json:"actor_name"`
	Observation string         `json:"observation"`
	Payload     map[string]any `json:"payload"`
}

// ToWorkflow builds the engine request for the entity at id.
func ToWorkflow[A ~string](r ActionRequest, id string) workflow.ActionRequest[A] {
	return workflow.ActionRequest[A]{
		EntityID:    id,
		Action:      A(strings.TrimSpace(r.Action)),
		ActorID:     r.ActorID,
		ActorName:   r.ActorName,
		Observation: r.Observation,
		Payload:     workflow.Payload(r.Payload),
	}
}

// parseDate reads an optional YYYY-MM-DD field as midnight in loc.
func parseDate(s string, loc *time.Location) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	if loc == nil {
		loc = time.UTC
	}
	t, err := time.ParseInLocation(dateLayout, s, loc)
	if err != nil {
		return nil, ErrInvalidDate
	}
	return &t, nil
}
