package flows

import (
	"errors"
	"time"

	"gestao_backoffice/internal/domain/entities"
	"gestao_backoffice/internal/workflow"
)

// Payload keys accepted by contract actions.
const (
	KeyContractDataInicio = "dataInicio"
)

type contractGuard = workflow.Guard[entities.Contract, entities.ContractAction]

// ContractFlow is the contract lifecycle:
//
//	RASCUNHO --ENVIAR_APROVACAO--> EM_ANALISE --APROVAR--> APROVADO --ATIVAR--> EM_VIGOR --ENCERRAR--> ENCERRADO
//	                               EM_ANALISE --REPROVAR--> REPROVADO
//	any non-terminal --CANCELAR--> CANCELADO
type ContractFlow struct {
	table      *workflow.TransitionTable[entities.ContractStatus, entities.ContractAction]
	guards     map[entities.ContractAction][]contractGuard
	projection workflow.FieldProjection[entities.ContractAction]
}

var _ workflow.Adapter[entities.Contract, entities.ContractStatus, entities.ContractAction] = (*ContractFlow)(nil)

func NewContractFlow() (*ContractFlow, error) {
	transitions := []workflow.Transition[entities.ContractStatus, entities.ContractAction]{
		{From: entities.ContractStatusRascunho, Action: entities.ContractActionEnviarAprovacao, To: entities.ContractStatusEmAnalise},
		{From: entities.ContractStatusEmAnalise, Action: entities.ContractActionAprovar, To: entities.ContractStatusAprovado},
		{From: entities.ContractStatusEmAnalise, Action: entities.ContractActionReprovar, To: entities.ContractStatusReprovado},
		{From: entities.ContractStatusAprovado, Action: entities.ContractActionAtivar, To: entities.ContractStatusEmVigor},
		{From: entities.ContractStatusEmVigor, Action: entities.ContractActionEncerrar, To: entities.ContractStatusEncerrado},
	}
	for _, s := range entities.ContractStatuses {
		if !s.Terminal() {
			transitions = append(transitions, workflow.Transition[entities.ContractStatus, entities.ContractAction]{
				From: s, Action: entities.ContractActionCancelar, To: entities.ContractStatusCancelado,
			})
		}
	}

	table, err := workflow.NewTransitionTable(transitions...)
	if err != nil {
		return nil, err
	}

	return &ContractFlow{
		table: table,
		guards: map[entities.ContractAction][]contractGuard{
			entities.ContractActionEnviarAprovacao: {contractReadyForAnalysis},
			entities.ContractActionReprovar:        {workflow.RequireObservation[entities.Contract, entities.ContractAction](ErrRejectionReasonRequired)},
			entities.ContractActionAtivar:          {contractStartDateKnown},
			entities.ContractActionCancelar:        {workflow.RequireObservation[entities.Contract, entities.ContractAction](ErrCancellationReasonRequired)},
		},
		projection: workflow.FieldProjection[entities.ContractAction]{
			entities.ContractActionAtivar: {KeyContractDataInicio},
		},
	}, nil
}

func (f *ContractFlow) Kind() entities.EntityKind { return entities.EntityKindContract }

func (f *ContractFlow) Table() *workflow.TransitionTable[entities.ContractStatus, entities.ContractAction] {
	return f.table
}

func (f *ContractFlow) Actions() []entities.ContractAction { return entities.ContractActions }

func (f *ContractFlow) AlwaysForbidden() []entities.ContractAction { return nil }

func (f *ContractFlow) Guards(action entities.ContractAction) []contractGuard {
	return f.guards[action]
}

func (f *ContractFlow) Projection() workflow.FieldProjection[entities.ContractAction] {
	return f.projection
}

func (f *ContractFlow) ID(c entities.Contract) string { return c.ID }

func (f *ContractFlow) Status(c entities.Contract) entities.ContractStatus { return c.Status }

func (f *ContractFlow) WithStatus(c entities.Contract, s entities.ContractStatus) entities.Contract {
	c.Status = s
	return c
}

func (f *ContractFlow) Apply(c entities.Contract, req workflow.ActionRequest[entities.ContractAction], at time.Time) entities.Contract {
	if obs := req.Observation; obs != "" {
		c.Observacao = obs
	}
	switch req.Action {
	case entities.ContractActionAprovar, entities.ContractActionReprovar:
		c.AprovadorID = req.ActorID
		c.AprovadorNome = req.ActorName
		c.DataAprovacao = timePtr(at)
	case entities.ContractActionAtivar:
		if start, ok, err := req.Payload.Date(KeyContractDataInicio, at.Location()); ok && err == nil {
			c.DataInicio = timePtr(start)
		}
		c.DataAtivacao = timePtr(at)
	case entities.ContractActionEncerrar:
		c.DataEncerramento = timePtr(at)
	}
	c.UpdatedAt = at
	return c
}

func contractReadyForAnalysis(c entities.Contract, _ workflow.ActionRequest[entities.ContractAction], _ time.Time) error {
	var errs []error
	if c.Valor <= 0 {
		errs = append(errs, ErrContractValueRequired)
	}
	if c.DataInicio == nil {
		errs = append(errs, ErrContractStartDateRequired)
	} else if c.DataFim != nil && !c.DataFim.After(*c.DataInicio) {
		errs = append(errs, ErrContractEndBeforeStart)
	}
	return errors.Join(errs...)
}

func contractStartDateKnown(c entities.Contract, req workflow.ActionRequest[entities.ContractAction], now time.Time) error {
	start, ok, err := req.Payload.Date(KeyContractDataInicio, now.Location())
	if err != nil {
		return err
	}
	if !ok {
		if c.DataInicio == nil {
			return ErrContractStartDateRequired
		}
		start = *c.DataInicio
	}
	if c.DataFim != nil && !c.DataFim.After(start) {
		return ErrContractEndBeforeStart
	}
	return nil
}

func timePtr(t time.Time) *time.Time {
	return &t
}
