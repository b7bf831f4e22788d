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
	ErrOvertimeNotFound = errors.New("overtime record not found")
	ErrInvalidOvertime  = errors.New("invalid overtime record")
)

var overtimeSuccessDetail = map[entities.OvertimeAction]string{
	entities.OvertimeActionAprovar:  "Horas extras aprovadas",
	entities.OvertimeActionReprovar: "Horas extras reprovadas",
}

// IOvertimeUseCase exposes overtime logging and approval.

type IOvertimeUseCase interface {
	Create(ctx context.Context, o entities.OvertimeRecord) (entities.OvertimeRecord, error)
	GetByID(ctx context.Context, id string) (entities.OvertimeRecord, error)
	List(ctx context.Context) ([]entities.OvertimeRecord, error)
	Transition(ctx context.Context, req workflow.ActionRequest[entities.OvertimeAction]) (entities.OvertimeRecord, error)
	History(ctx context.Context, id string) ([]entities.AuditRecord, error)
	AvailableActions(o entities.OvertimeRecord) []entities.OvertimeAction
}

type OvertimeUseCase struct {
	repo     interfaces.IOvertimeRepository
	audit    interfaces.IAuditRecordRepository
	notifier interfaces.INotifier
	clock    *workflow.Clock
	engine   *workflow.Engine[entities.OvertimeRecord, entities.OvertimeStatus, entities.OvertimeAction]
}

var _ IOvertimeUseCase = (*OvertimeUseCase)(nil)

func NewOvertimeUseCase(
	repo interfaces.IOvertimeRepository,
	audit interfaces.IAuditRecordRepository,
	notifier interfaces.INotifier,
	clock *workflow.Clock,
	observer workflow.Observer,
) (*OvertimeUseCase, error) {
	flow, err := flows.NewOvertimeFlow()
	if err != nil {
		return nil, err
	}
	if clock == nil {
		clock = workflow.NewClock(nil)
	}
	engine, err := workflow.NewEngine[entities.OvertimeRecord, entities.OvertimeStatus, entities.OvertimeAction](flow, repo,
		workflow.WithClock[entities.OvertimeRecord, entities.OvertimeStatus, entities.OvertimeAction](clock),
		workflow.WithObserver[entities.OvertimeRecord, entities.OvertimeStatus, entities.OvertimeAction](observer),
	)
	if err != nil {
		return nil, err
	}
	return &OvertimeUseCase{repo: repo, audit: audit, notifier: notifier, clock: clock, engine: engine}, nil
}

func (u *OvertimeUseCase) Create(ctx context.Context, o entities.OvertimeRecord) (entities.OvertimeRecord, error) {
	o.FuncionarioID = strings.TrimSpace(o.FuncionarioID)
	o.FuncionarioNome = strings.TrimSpace(o.FuncionarioNome)
	switch {
	case o.FuncionarioID == "":
		return entities.OvertimeRecord{}, fmt.Errorf("%w: funcionario_id is required", ErrInvalidOvertime)
	case o.Data.IsZero():
		return entities.OvertimeRecord{}, fmt.Errorf("%w: data is required", ErrInvalidOvertime)
	case o.HorasExtras <= 0:
		return entities.OvertimeRecord{}, fmt.Errorf("%w: horas_extras must be positive", ErrInvalidOvertime)
	}

	now := u.clock.Now()
	created, err := u.repo.Create(ctx, entities.OvertimeRecord{
		ID:              uuid.NewString(),
		FuncionarioID:   o.FuncionarioID,
		FuncionarioNome: o.FuncionarioNome,
		Data:            workflow.StartOfDay(o.Data.In(u.clock.Location())),
		HorasExtras:     o.HorasExtras,
		Status:          entities.OvertimeStatusPendente,
		CreatedAt:       now,
		UpdatedAt:       now,
	})
	if err != nil {
		return entities.OvertimeRecord{}, err
	}
	log.Printf("[overtime][usecase] created id=%s funcionario_id=%s horas=%.2f", created.ID, created.FuncionarioID, created.HorasExtras)
	return created, nil
}

func (u *OvertimeUseCase) GetByID(ctx context.Context, id string) (entities.OvertimeRecord, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.OvertimeRecord{}, ErrInvalidID
	}

	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.OvertimeRecord{}, err
	}
	if o.ID == "" {
		return entities.OvertimeRecord{}, ErrOvertimeNotFound
	}
	return o, nil
}

func (u *OvertimeUseCase) List(ctx context.Context) ([]entities.OvertimeRecord, error) {
	return u.repo.List(ctx)
}

func (u *OvertimeUseCase) Transition(ctx context.Context, req workflow.ActionRequest[entities.OvertimeAction]) (entities.OvertimeRecord, error) {
	req, err := normalizeRequest(req, entities.OvertimeActions)
	if err != nil {
		return entities.OvertimeRecord{}, err
	}

	current, err := u.GetByID(ctx, req.EntityID)
	if err != nil {
		if errors.Is(err, ErrOvertimeNotFound) {
			notifyError(ctx, u.notifier, "Registro de horas extras não encontrado")
		}
		return entities.OvertimeRecord{}, err
	}
	return runTransition(ctx, u.engine, u.notifier, current, req, overtimeSuccessDetail[req.Action])
}

func (u *OvertimeUseCase) History(ctx context.Context, id string) ([]entities.AuditRecord, error) {
	o, err := u.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return u.audit.ListByEntity(ctx, entities.EntityKindOvertime, o.ID)
}

func (u *OvertimeUseCase) AvailableActions(o entities.OvertimeRecord) []entities.OvertimeAction {
	return u.engine.Adapter().Table().AvailableActions(o.Status)
}
