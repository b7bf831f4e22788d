package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/mail"
	"strings"

	"gestao_backoffice/internal/domain/entities"
	"gestao_backoffice/internal/domain/flows"
	"gestao_backoffice/internal/usecase/interfaces"
	"gestao_backoffice/internal/workflow"

	"github.com/google/uuid"
)

var (
	ErrAccountNotFound = errors.New("user account not found")
	ErrInvalidAccount  = errors.New("invalid user account")
)

var accountSuccessDetail = map[entities.AccountAction]string{
	entities.AccountActionSuspender: "Conta suspensa",
	entities.AccountActionReativar:  "Conta reativada",
}

// IAccountUseCase exposes user account administration: suspension and reactivation.

type IAccountUseCase interface {
	Create(ctx context.Context, u entities.UserAccount) (entities.UserAccount, error)
	GetByID(ctx context.Context, id string) (entities.UserAccount, error)
	List(ctx context.Context) ([]entities.UserAccount, error)
	Transition(ctx context.Context, req workflow.ActionRequest[entities.AccountAction]) (entities.UserAccount, error)
	History(ctx context.Context, id string) ([]entities.AuditRecord, error)
	AvailableActions(u entities.UserAccount) []entities.AccountAction
}

type AccountUseCase struct {
	repo     interfaces.IAccountRepository
	audit    interfaces.IAuditRecordRepository
	notifier interfaces.INotifier
	clock    *workflow.Clock
	engine   *workflow.Engine[entities.UserAccount, entities.AccountStatus, entities.AccountAction]
}

var _ IAccountUseCase = (*AccountUseCase)(nil)

func NewAccountUseCase(
	repo interfaces.IAccountRepository,
	audit interfaces.IAuditRecordRepository,
	notifier interfaces.INotifier,
	clock *workflow.Clock,
	observer workflow.Observer,
) (*AccountUseCase, error) {
	flow, err := flows.NewAccountFlow()
	if err != nil {
		return nil, err
	}
	if clock == nil {
		clock = workflow.NewClock(nil)
	}
	engine, err := workflow.NewEngine[entities.UserAccount, entities.AccountStatus, entities.AccountAction](flow, repo,
		workflow.WithClock[entities.UserAccount, entities.AccountStatus, entities.AccountAction](clock),
		workflow.WithObserver[entities.UserAccount, entities.AccountStatus, entities.AccountAction](observer),
	)
	if err != nil {
		return nil, err
	}
	return &AccountUseCase{repo: repo, audit: audit, notifier: notifier, clock: clock, engine: engine}, nil
}

// Create registers an account as ATIVO, or INATIVO when asked to. Accounts are never
// created suspended; suspension goes through Transition so it is audited.
func (uc *AccountUseCase) Create(ctx context.Context, u entities.UserAccount) (entities.UserAccount, error) {
	u.Nome = strings.TrimSpace(u.Nome)
	u.Email = strings.TrimSpace(u.Email)
	u.Perfil = strings.TrimSpace(u.Perfil)
	if u.Status == "" {
		u.Status = entities.AccountStatusAtivo
	}
	switch {
	case u.Nome == "":
		return entities.UserAccount{}, fmt.Errorf("%w: nome is required", ErrInvalidAccount)
	case !validEmail(u.Email):
		return entities.UserAccount{}, fmt.Errorf("%w: email is invalid", ErrInvalidAccount)
	case u.Status != entities.AccountStatusAtivo && u.Status != entities.AccountStatusInativo:
		return entities.UserAccount{}, fmt.Errorf("%w: status must be ATIVO or INATIVO", ErrInvalidAccount)
	}

	now := uc.clock.Now()
	created, err := uc.repo.Create(ctx, entities.UserAccount{
		ID:        uuid.NewString(),
		Nome:      u.Nome,
		Email:     u.Email,
		Perfil:    u.Perfil,
		Status:    u.Status,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return entities.UserAccount{}, err
	}
	log.Printf("[accounts][usecase] created id=%s status=%s", created.ID, created.Status)
	return created, nil
}

func (uc *AccountUseCase) GetByID(ctx context.Context, id string) (entities.UserAccount, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.UserAccount{}, ErrInvalidID
	}

	u, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return entities.UserAccount{}, err
	}
	if u.ID == "" {
		return entities.UserAccount{}, ErrAccountNotFound
	}
	return u, nil
}

func (uc *AccountUseCase) List(ctx context.Context) ([]entities.UserAccount, error) {
	return uc.repo.List(ctx)
}

func (uc *AccountUseCase) Transition(ctx context.Context, req workflow.ActionRequest[entities.AccountAction]) (entities.UserAccount, error) {
	req, err := normalizeRequest(req, entities.AccountActions)
	if err != nil {
		return entities.UserAccount{}, err
	}

	current, err := uc.GetByID(ctx, req.EntityID)
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			notifyError(ctx, uc.notifier, "Conta não encontrada")
		}
		return entities.UserAccount{}, err
	}
	return runTransition(ctx, uc.engine, uc.notifier, current, req, accountSuccessDetail[req.Action])
}

func (uc *AccountUseCase) History(ctx context.Context, id string) ([]entities.AuditRecord, error) {
	u, err := uc.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return uc.audit.ListByEntity(ctx, entities.EntityKindUserAccount, u.ID)
}

func (uc *AccountUseCase) AvailableActions(u entities.UserAccount) []entities.AccountAction {
	return uc.engine.Adapter().Table().AvailableActions(u.Status)
}

func validEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}
