package flows

import (
	"time"

	"gestao_backoffice/internal/domain/entities"
	"gestao_backoffice/internal/workflow"
)

const (
	KeyHorasExtrasAprovadas = "horasExtrasAprovadas"
)

type overtimeGuard = workflow.Guard[entities.OvertimeRecord, entities.OvertimeAction]

// OvertimeFlow approves or rejects a pending overtime entry.
type OvertimeFlow struct {
	table      *workflow.TransitionTable[entities.OvertimeStatus, entities.OvertimeAction]
	guards     map[entities.OvertimeAction][]overtimeGuard
	projection workflow.FieldProjection[entities.OvertimeAction]
}

var _ workflow.Adapter[entities.OvertimeRecord, entities.OvertimeStatus, entities.OvertimeAction] = (*OvertimeFlow)(nil)

func NewOvertimeFlow() (*OvertimeFlow, error) {
	table, err := workflow.NewTransitionTable(
		workflow.Transition[entities.OvertimeStatus, entities.OvertimeAction]{
			From: entities.OvertimeStatusPendente, Action: entities.OvertimeActionAprovar, To: entities.OvertimeStatusAprovado,
		},
		workflow.Transition[entities.OvertimeStatus, entities.OvertimeAction]{
			From: entities.OvertimeStatusPendente, Action: entities.OvertimeActionReprovar, To: entities.OvertimeStatusReprovado,
		},
	)
	if err != nil {
		return nil, err
	}

	return &OvertimeFlow{
		table: table,
		guards: map[entities.OvertimeAction][]overtimeGuard{
			entities.OvertimeActionAprovar:  {approvedHoursWithinRecorded},
			entities.OvertimeActionReprovar: {workflow.RequireObservation[entities.OvertimeRecord, entities.OvertimeAction](ErrRejectionReasonRequired)},
		},
		projection: workflow.FieldProjection[entities.OvertimeAction]{
			entities.OvertimeActionAprovar: {KeyHorasExtrasAprovadas},
		},
	}, nil
}

func (f *OvertimeFlow) Kind() entities.EntityKind { return entities.EntityKindOvertime }

func (f *OvertimeFlow) Table() *workflow.TransitionTable[entities.OvertimeStatus, entities.OvertimeAction] {
	return f.table
}

func (f *OvertimeFlow) Actions() []entities.OvertimeAction { return entities.OvertimeActions }

func (f *OvertimeFlow) AlwaysForbidden() []entities.OvertimeAction { return nil }

func (f *OvertimeFlow) Guards(action entities.OvertimeAction) []overtimeGuard {
	return f.guards[action]
}

func (f *OvertimeFlow) Projection() workflow.FieldProjection[entities.OvertimeAction] {
	return f.projection
}

func (f *OvertimeFlow) ID(o entities.OvertimeRecord) string { return o.ID }

func (f *OvertimeFlow) Status(o entities.OvertimeRecord) entities.OvertimeStatus { return o.Status }

func (f *OvertimeFlow) WithStatus(o entities.OvertimeRecord, s entities.OvertimeStatus) entities.OvertimeRecord {
	o.Status = s
	return o
}

func (f *OvertimeFlow) Apply(o entities.OvertimeRecord, req workflow.ActionRequest[entities.OvertimeAction], at time.Time) entities.OvertimeRecord {
	switch req.Action {
	case entities.OvertimeActionAprovar:
		hours := o.HorasExtras
		if v, ok, err := req.Payload.Float(KeyHorasExtrasAprovadas); ok && err == nil {
			hours = v
		}
		o.HorasExtrasAprovadas = &hours
	case entities.OvertimeActionReprovar:
		zero := 0.0
		o.HorasExtrasAprovadas = &zero
	}
	o.AprovadorID = req.ActorID
	o.AprovadorNome = req.ActorName
	o.DataAprovacao = timePtr(at)
	if req.Observation != "" {
		o.Observacao = req.Observation
	}
	o.UpdatedAt = at
	return o
}

// approvedHoursWithinRecorded: an approver may cut the logged hours but never raise
// them. Omitting the value approves everything that was logged.
func approvedHoursWithinRecorded(o entities.OvertimeRecord, req workflow.ActionRequest[entities.OvertimeAction], _ time.Time) error {
	hours, ok, err := req.Payload.Float(KeyHorasExtrasAprovadas)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	if hours < 0 {
		return ErrApprovedHoursNegative
	}
	if hours > o.HorasExtras {
		return ErrApprovedHoursExceeded
	}
	return nil
}
