package interfaces

import (
	"context"

	"gestao_backoffice/internal/domain/entities"
)

// IAuditRecordRepository reads the transition history of an entity.
//
// Records are only written by the entity repositories' Update, in the same write as
// the entity. ListByEntity returns them oldest first.
type IAuditRecordRepository interface {
	ListByEntity(ctx context.Context, kind entities.EntityKind, entityID string) ([]entities.AuditRecord, error)
}
