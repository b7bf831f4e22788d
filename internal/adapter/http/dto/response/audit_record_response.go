package response

import (
	"time"

	"gestao_backoffice/internal/domain/entities"
)

type AuditRecordResponse struct {
	ID           string         `json:"id"`
	EntityKind   string         `json:"entity_kind"`
	EntityID     string         `json:"entity_id"`
	Action       string         `json:"action"`
	StatusBefore string         `json:"status_before"`
	StatusAfter  string         `json:"status_after"`
	Observation  string         `json:"observation,omitempty"`
	ActorID      string         `json:"actor_id"`
	ActorName    string         `json:"actor_name"`
	OccurredAt   time.Time      `json:"occurred_at"`
	Extra        map[string]any `json:"extra,omitempty"`
}

func FromAuditRecords(records []entities.AuditRecord) []AuditRecordResponse {
	out := make([]AuditRecordResponse, 0, len(records))
	for _, r := range records {
		out = append(out, AuditRecordResponse{
			ID:           r.ID,
			EntityKind:   string(r.EntityKind),
			EntityID:     r.EntityID,
			Action:       r.Action,
			StatusBefore: r.StatusBefore,
			StatusAfter:  r.StatusAfter,
			Observation:  r.Observation,
			ActorID:      r.ActorID,
			ActorName:    r.ActorName,
			OccurredAt:   r.OccurredAt,
			Extra:        r.Extra,
		})
	}
	return out
}
