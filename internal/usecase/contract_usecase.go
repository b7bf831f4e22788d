package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"gestao_backoffice/internal/domain/entities"
	"gestao_backoffice/internal/domain/flows"
	"gestao_backoffice/internal/usecase/interfaces"
	"gestao_backoffice/internal/workflow"

	"github.com/google/uuid"
)

var (
	ErrContractNotFound = errors.New("contract not found")
	ErrInvalidContract  = errors.New("invalid contract")
)

var contractSuccessDetail = map[entities.ContractAction]string{
	entities.ContractActionEnviarAprovacao: "Contrato enviado para aprovação",
	entities.ContractActionAprovar:         "Contrato aprovado",
	entities.ContractActionReprovar:        "Contrato reprovado",
	entities.ContractActionAtivar:          "Contrato ativado",
	entities.ContractActionEncerrar:        "Contrato encerrado",
	entities.ContractActionCancelar:        "Contrato cancelado",
}

// IContractUseCase exposes the contract lifecycle:
//   - register a draft contract
//   - move it through analysis, approval and activation (Transition)
//   - read its audit trail (History)

type IContractUseCase interface {
	Create(ctx context.Context, c entities.Contract) (entities.Contract, error)
	GetByID(ctx context.Context, id string) (entities.Contract, error)
	List(ctx context.Context) ([]entities.Contract, error)
	Transition(ctx context.Context, req workflow.ActionRequest[entities.ContractAction]) (entities.Contract, error)
	History(ctx context.Context, id string) ([]entities.AuditRecord, error)
	AvailableActions(c entities.Contract) []entities.ContractAction
}

type ContractUseCase struct {
	repo     interfaces.IContractRepository
	audit    interfaces.IAuditRecordRepository
	notifier interfaces.INotifier
	clock    *workflow.Clock
	engine   *workflow.Engine[entities.Contract, entities.ContractStatus, entities.ContractAction]
}

var _ IContractUseCase = (*ContractUseCase)(nil)

func NewContractUseCase(
	repo interfaces.IContractRepository,
	audit interfaces.IAuditRecordRepository,
	notifier interfaces.INotifier,
	clock *workflow.Clock,
	observer workflow.Observer,
) (*ContractUseCase, error) {
	flow, err := flows.NewContractFlow()
	if err != nil {
		return nil, err
	}
	if clock == nil {
		clock = workflow.NewClock(nil)
	}
	engine, err := workflow.NewEngine[entities.Contract, entities.ContractStatus, entities.ContractAction](flow, repo,
		workflow.WithClock[entities.Contract, entities.ContractStatus, entities.ContractAction](clock),
		workflow.WithObserver[entities.Contract, entities.ContractStatus, entities.ContractAction](observer),
	)
	if err != nil {
		return nil, err
	}
	return &ContractUseCase{repo: repo, audit: audit, notifier: notifier, clock: clock, engine: engine}, nil
}

func (u *ContractUseCase) Create(ctx context.Context, c entities.Contract) (entities.Contract, error) {
	c.Numero = strings.TrimSpace(c.Numero)
	c.Descricao = strings.TrimSpace(c.Descricao)
	c.Fornecedor = strings.TrimSpace(c.Fornecedor)
	switch {
	case c.Numero == "":
		return entities.Contract{}, fmt.Errorf("%w: numero is required", ErrInvalidContract)
	case c.Valor < 0:
		return entities.Contract{}, fmt.Errorf("%w: valor must not be negative", ErrInvalidContract)
	case c.DataInicio != nil && c.DataFim != nil && !c.DataFim.After(*c.DataInicio):
		return entities.Contract{}, fmt.Errorf("%w: %s", ErrInvalidContract, flows.ErrContractEndBeforeStart)
	}

	now := u.clock.Now()
	created := entities.Contract{
		ID:         uuid.NewString(),
		Numero:     c.Numero,
		Descricao:  c.Descricao,
		Fornecedor: c.Fornecedor,
		Valor:      c.Valor,
		DataInicio: c.DataInicio,
		DataFim:    c.DataFim,
		Status:     entities.ContractStatusRascunho,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	created, err := u.repo.Create(ctx, created)
	if err != nil {
		return entities.Contract{}, err
	}
	log.Printf("[contracts][usecase] created id=%s numero=%s", created.ID, created.Numero)
	return created, nil
}

func (u *ContractUseCase) GetByID(ctx context.Context, id string) (entities.Contract, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Contract{}, ErrInvalidID
	}

	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Contract{}, err
	}
	if c.ID == "" {
		return entities.Contract{}, ErrContractNotFound
	}
	return c, nil
}

func (u *ContractUseCase) List(ctx context.Context) ([]entities.Contract, error) {
	return u.repo.List(ctx)
}

func (u *ContractUseCase) Transition(ctx context.Context, req workflow.ActionRequest[entities.ContractAction]) (entities.Contract, error) {
	req, err := normalizeRequest(req, entities.ContractActions)
	if err != nil {
		return entities.Contract{}, err
	}

	current, err := u.GetByID(ctx, req.EntityID)
	if err != nil {
		if errors.Is(err, ErrContractNotFound) {
			notifyError(ctx, u.notifier, "Contrato não encontrado")
		}
		return entities.Contract{}, err
	}
	return runTransition(ctx, u.engine, u.notifier, current, req, contractSuccessDetail[req.Action])
}

func (u *ContractUseCase) History(ctx context.Context, id string) ([]entities.AuditRecord, error) {
	c, err := u.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return u.audit.ListByEntity(ctx, entities.EntityKindContract, c.ID)
}

func (u *ContractUseCase) AvailableActions(c entities.Contract) []entities.ContractAction {
	return u.engine.Adapter().Table().AvailableActions(c.Status)
}
