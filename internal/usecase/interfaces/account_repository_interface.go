package interfaces

import (
	"context"

	"gestao_backoffice/internal/domain/entities"
	"gestao_backoffice/internal/workflow"
)

// IAccountRepository abstracts persistence for UserAccount.

type IAccountRepository interface {
	Create(ctx context.Context, u entities.UserAccount) (entities.UserAccount, error)
	GetByID(ctx context.Context, id string) (entities.UserAccount, error)
	List(ctx context.Context) ([]entities.UserAccount, error)
	Update(ctx context.Context, change workflow.Change[entities.UserAccount]) (workflow.Result[entities.UserAccount], error)
}
