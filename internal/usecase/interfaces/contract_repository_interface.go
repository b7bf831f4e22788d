package interfaces

import (
	"context"

	"gestao_backoffice/internal/domain/entities"
	"gestao_backoffice/internal/workflow"
)

// IContractRepository abstracts persistence for Contract.
//
// Update is the workflow gateway: it stores the transitioned contract together with
// its audit record and never partially.
type IContractRepository interface {
	Create(ctx context.Context, c entities.Contract) (entities.Contract, error)
	GetByID(ctx context.Context, id string) (entities.Contract, error)
	List(ctx context.Context) ([]entities.Contract, error)
	Update(ctx context.Context, change workflow.Change[entities.Contract]) (workflow.Result[entities.Contract], error)
}
