package flows

import (
	"errors"
	"time"

	"gestao_backoffice/internal/domain/entities"
	"gestao_backoffice/internal/workflow"
)

const (
	KeyTipoSuspensao       = "tipoSuspensao"
	KeyMotivoSuspensao     = "motivoSuspensao"
	KeyDataInicioSuspensao = "dataInicioSuspensao"
	KeyDataFimSuspensao    = "dataFimSuspensao"
)

type accountGuard = workflow.Guard[entities.UserAccount, entities.AccountAction]

// AccountFlow suspends and reactivates user accounts.
type AccountFlow struct {
	table      *workflow.TransitionTable[entities.AccountStatus, entities.AccountAction]
	guards     map[entities.AccountAction][]accountGuard
	projection workflow.FieldProjection[entities.AccountAction]
}

var _ workflow.Adapter[entities.UserAccount, entities.AccountStatus, entities.AccountAction] = (*AccountFlow)(nil)

func NewAccountFlow() (*AccountFlow, error) {
	type tr = workflow.Transition[entities.AccountStatus, entities.AccountAction]
	table, err := workflow.NewTransitionTable(
		tr{From: entities.AccountStatusAtivo, Action: entities.AccountActionSuspender, To: entities.AccountStatusSuspenso},
		tr{From: entities.AccountStatusSuspenso, Action: entities.AccountActionReativar, To: entities.AccountStatusAtivo},
		tr{From: entities.AccountStatusInativo, Action: entities.AccountActionReativar, To: entities.AccountStatusAtivo},
	)
	if err != nil {
		return nil, err
	}

	return &AccountFlow{
		table: table,
		guards: map[entities.AccountAction][]accountGuard{
			entities.AccountActionSuspender: {
				suspensionFields,
				workflow.ForbidSelfAction[entities.UserAccount, entities.AccountAction](ErrSelfSuspension),
			},
			entities.AccountActionReativar: {
				workflow.ForbidSelfAction[entities.UserAccount, entities.AccountAction](ErrSelfReactivation),
			},
		},
		projection: workflow.FieldProjection[entities.AccountAction]{
			entities.AccountActionSuspender: {KeyTipoSuspensao, KeyMotivoSuspensao, KeyDataInicioSuspensao, KeyDataFimSuspensao},
		},
	}, nil
}

func (f *AccountFlow) Kind() entities.EntityKind { return entities.EntityKindUserAccount }

func (f *AccountFlow) Table() *workflow.TransitionTable[entities.AccountStatus, entities.AccountAction] {
	return f.table
}

func (f *AccountFlow) Actions() []entities.AccountAction { return entities.AccountActions }

func (f *AccountFlow) AlwaysForbidden() []entities.AccountAction { return nil }

func (f *AccountFlow) Guards(action entities.AccountAction) []accountGuard {
	return f.guards[action]
}

func (f *AccountFlow) Projection() workflow.FieldProjection[entities.AccountAction] {
	return f.projection
}

func (f *AccountFlow) ID(u entities.UserAccount) string { return u.ID }

func (f *AccountFlow) Status(u entities.UserAccount) entities.AccountStatus { return u.Status }

func (f *AccountFlow) WithStatus(u entities.UserAccount, s entities.AccountStatus) entities.UserAccount {
	u.Status = s
	return u
}

func (f *AccountFlow) Apply(u entities.UserAccount, req workflow.ActionRequest[entities.AccountAction], at time.Time) entities.UserAccount {
	switch req.Action {
	case entities.AccountActionSuspender:
		loc := at.Location()
		kind := suspensionType(req.Payload)
		u.TipoSuspensao = kind
		u.MotivoSuspensao = req.Payload.String(KeyMotivoSuspensao)
		u.DataInicioSuspensao = nil
		u.DataFimSuspensao = nil
		if start, ok, err := req.Payload.Date(KeyDataInicioSuspensao, loc); ok && err == nil {
			u.DataInicioSuspensao = timePtr(start)
		}
		if kind == entities.SuspensionTypeTemporaria {
			if end, ok, err := req.Payload.Date(KeyDataFimSuspensao, loc); ok && err == nil {
				u.DataFimSuspensao = timePtr(end)
			}
		}
		u.SuspensoPorID = req.ActorID
		u.SuspensoPorNome = req.ActorName
		u.DataReativacao = nil
	case entities.AccountActionReativar:
		u.TipoSuspensao = ""
		u.MotivoSuspensao = ""
		u.DataInicioSuspensao = nil
		u.DataFimSuspensao = nil
		u.SuspensoPorID = ""
		u.SuspensoPorNome = ""
		u.DataReativacao = timePtr(at)
	}
	u.UpdatedAt = at
	return u
}

func suspensionType(p workflow.Payload) entities.SuspensionType {
	if s := p.String(KeyTipoSuspensao); s != "" {
		return entities.SuspensionType(s)
	}
	return entities.SuspensionTypePermanente
}

// suspensionFields checks the suspension form. A temporary suspension needs an end
// date strictly after its start and may not start before today.
func suspensionFields(_ entities.UserAccount, req workflow.ActionRequest[entities.AccountAction], now time.Time) error {
	var errs []error
	p := req.Payload
	loc := now.Location()

	if p.String(KeyMotivoSuspensao) == "" {
		errs = append(errs, ErrSuspensionReasonRequired)
	}

	kind := suspensionType(p)
	if kind != entities.SuspensionTypeTemporaria && kind != entities.SuspensionTypePermanente {
		errs = append(errs, ErrSuspensionTypeInvalid)
	}

	start, hasStart, err := p.Date(KeyDataInicioSuspensao, loc)
	switch {
	case err != nil:
		errs = append(errs, err)
		hasStart = false
	case !hasStart:
		errs = append(errs, ErrSuspensionStartRequired)
	}

	if kind == entities.SuspensionTypeTemporaria {
		end, hasEnd, err := p.Date(KeyDataFimSuspensao, loc)
		switch {
		case err != nil:
			errs = append(errs, err)
		case !hasEnd:
			errs = append(errs, ErrSuspensionEndRequired)
		case hasStart && !end.After(start):
			errs = append(errs, ErrSuspensionEndNotAfterStart)
		}
		if hasStart && start.Before(workflow.StartOfDay(now)) {
			errs = append(errs, ErrSuspensionStartInPast)
		}
	}
	return errors.Join(errs...)
}
