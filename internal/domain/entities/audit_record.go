package entities

import "time"

// EntityKind names the aggregate an AuditRecord belongs to.
type EntityKind string

const (
	EntityKindContract    EntityKind = "contract"
	EntityKindOvertime    EntityKind = "overtime"
	EntityKindUserAccount EntityKind = "user_account"
)

// AuditRecord is one executed status transition.
//
// Records are immutable and append-only: the ordered list for an entity replays its
// whole history and always ends in the entity's current status.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (entity_key-index): entity_key = "<kind>#<entity_id>", sort key occurred_at
type AuditRecord struct {
	ID           string         `json:"id"`
	EntityKind   EntityKind     `json:"entity_kind"`
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
