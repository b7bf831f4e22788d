package interfaces

import (
	"context"

	"gestao_backoffice/internal/domain/entities"
	"gestao_backoffice/internal/workflow"
)

// IOvertimeRepository abstracts persistence for OvertimeRecord.
type IOvertimeRepository interface {
	Create(ctx context.Context, o entities.OvertimeRecord) (entities.OvertimeRecord, error)
	GetByID(ctx context.Context, id string) (entities.OvertimeRecord, error)
	List(ctx context.Context) ([]entities.OvertimeRecord, error)
	Update(ctx context.Context, change workflow.Change[entities.OvertimeRecord]) (workflow.Result[entities.OvertimeRecord], error)
}
