package flows

import (
	"context"
	"errors"
	"testing"
	"time"

	"gestao_backoffice/internal/domain/entities"
	"gestao_backoffice/internal/workflow"
)

var (
	brt   = time.FixedZone("BRT", -3*3600)
	today = time.Date(2026, 10, 19, 10, 30, 0, 0, brt)
)

type recordingGateway[E any] struct {
	changes []workflow.Change[E]
}

func (g *recordingGateway[E]) Update(_ context.Context, c workflow.Change[E]) (workflow.Result[E], error) {
	g.changes = append(g.changes, c)
	return workflow.Success(c.Entity), nil
}

func fixedClock() *workflow.Clock {
	return workflow.NewClockFunc(func() time.Time { return today }, brt)
}

func contractEngine(t *testing.T) (*workflow.Engine[entities.Contract, entities.ContractStatus, entities.ContractAction], *recordingGateway[entities.Contract]) {
	t.Helper()
	flow, err := NewContractFlow()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	gw := &recordingGateway[entities.Contract]{}
	e, err := workflow.NewEngine[entities.Contract, entities.ContractStatus, entities.ContractAction](flow, gw,
		workflow.WithClock[entities.Contract, entities.ContractStatus, entities.ContractAction](fixedClock()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return e, gw
}

func overtimeEngine(t *testing.T) (*workflow.Engine[entities.OvertimeRecord, entities.OvertimeStatus, entities.OvertimeAction], *recordingGateway[entities.OvertimeRecord]) {
	t.Helper()
	flow, err := NewOvertimeFlow()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	gw := &recordingGateway[entities.OvertimeRecord]{}
	e, err := workflow.NewEngine[entities.OvertimeRecord, entities.OvertimeStatus, entities.OvertimeAction](flow, gw,
		workflow.WithClock[entities.OvertimeRecord, entities.OvertimeStatus, entities.OvertimeAction](fixedClock()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return e, gw
}

func accountEngine(t *testing.T) (*workflow.Engine[entities.UserAccount, entities.AccountStatus, entities.AccountAction], *recordingGateway[entities.UserAccount]) {
	t.Helper()
	flow, err := NewAccountFlow()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	gw := &recordingGateway[entities.UserAccount]{}
	e, err := workflow.NewEngine[entities.UserAccount, entities.AccountStatus, entities.AccountAction](flow, gw,
		workflow.WithClock[entities.UserAccount, entities.AccountStatus, entities.AccountAction](fixedClock()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return e, gw
}

func validContract(status entities.ContractStatus) entities.Contract {
	start := time.Date(2026, 11, 1, 0, 0, 0, 0, brt)
	end := time.Date(2027, 10, 31, 0, 0, 0, 0, brt)
	return entities.Contract{ID: "ct-1", Numero: "2026/001", Valor: 1500, DataInicio: &start, DataFim: &end, Status: status}
}

func TestContractFlow_Approve(t *testing.T) {
	e, gw := contractEngine(t)

	out, err := e.Execute(context.Background(), validContract(entities.ContractStatusEmAnalise), workflow.ActionRequest[entities.ContractAction]{
		EntityID: "ct-1", Action: entities.ContractActionAprovar, ActorID: "u-9", ActorName: "Maria",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Kind != workflow.OutcomeCommitted || out.Entity.Status != entities.ContractStatusAprovado {
		t.Fatalf("unexpected outcome: %+v", out)
	}
	if out.Entity.AprovadorID != "u-9" || out.Entity.AprovadorNome != "Maria" || out.Entity.DataAprovacao == nil {
		t.Fatalf("expected approver stamped, got %+v", out.Entity)
	}
	if len(gw.changes) != 1 {
		t.Fatalf("expected 1 gateway call, got %d", len(gw.changes))
	}
	a := gw.changes[0].Audit
	if a.StatusBefore != "EM_ANALISE" || a.StatusAfter != "APROVADO" || a.EntityKind != entities.EntityKindContract {
		t.Fatalf("unexpected audit record: %+v", a)
	}
}

func TestContractFlow_ApproveFromDraftIsIllegal(t *testing.T) {
	e, gw := contractEngine(t)

	out, err := e.Execute(context.Background(), validContract(entities.ContractStatusRascunho), workflow.ActionRequest[entities.ContractAction]{
		Action: entities.ContractActionAprovar, ActorID: "u-9",
	})
	if !errors.Is(err, workflow.ErrIllegalTransition) {
		t.Fatalf("expected ErrIllegalTransition, got %v", err)
	}
	if out.Reason != workflow.ReasonIllegalTransition || len(gw.changes) != 0 {
		t.Fatalf("expected no gateway call, got outcome %+v calls %d", out, len(gw.changes))
	}
}

func TestContractFlow_Cancel(t *testing.T) {
	for _, s := range entities.ContractStatuses {
		t.Run(string(s), func(t *testing.T) {
			e, gw := contractEngine(t)
			out, err := e.Execute(context.Background(), validContract(s), workflow.ActionRequest[entities.ContractAction]{
				Action: entities.ContractActionCancelar, ActorID: "u-9", Observation: "supplier withdrew",
			})
			if s.Terminal() {
				if !errors.Is(err, workflow.ErrIllegalTransition) || len(gw.changes) != 0 {
					t.Fatalf("expected illegal transition from terminal %s, got %v", s, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out.Entity.Status != entities.ContractStatusCancelado || out.Entity.Observacao != "supplier withdrew" {
				t.Fatalf("unexpected entity: %+v", out.Entity)
			}
		})
	}
}

func TestContractFlow_Guards(t *testing.T) {
	cases := []struct {
		name     string
		contract entities.Contract
		req      workflow.ActionRequest[entities.ContractAction]
		want     []error
	}{
		{
			name:     "reject needs observation",
			contract: validContract(entities.ContractStatusEmAnalise),
			req:      workflow.ActionRequest[entities.ContractAction]{Action: entities.ContractActionReprovar, ActorID: "u-9", Observation: "   "},
			want:     []error{ErrRejectionReasonRequired},
		},
		{
			name:     "cancel needs observation",
			contract: validContract(entities.ContractStatusEmVigor),
			req:      workflow.ActionRequest[entities.ContractAction]{Action: entities.ContractActionCancelar, ActorID: "u-9"},
			want:     []error{ErrCancellationReasonRequired},
		},
		{
			name:     "submission needs value and start date",
			contract: entities.Contract{ID: "ct-1", Status: entities.ContractStatusRascunho},
			req:      workflow.ActionRequest[entities.ContractAction]{Action: entities.ContractActionEnviarAprovacao, ActorID: "u-9"},
			want:     []error{ErrContractValueRequired, ErrContractStartDateRequired},
		},
		{
			name:     "activation end before payload start",
			contract: validContract(entities.ContractStatusAprovado),
			req: workflow.ActionRequest[entities.ContractAction]{
				Action: entities.ContractActionAtivar, ActorID: "u-9",
				Payload: workflow.Payload{KeyContractDataInicio: "2028-01-01"},
			},
			want: []error{ErrContractEndBeforeStart},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e, gw := contractEngine(t)
			out, err := e.Execute(context.Background(), tc.contract, tc.req)
			if !errors.Is(err, workflow.ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
			if len(out.Violations) != len(tc.want) {
				t.Fatalf("expected %d violations, got %q", len(tc.want), out.Violations)
			}
			for _, w := range tc.want {
				if !errors.Is(err, w) {
					t.Fatalf("expected %v in %v", w, err)
				}
			}
			if len(gw.changes) != 0 {
				t.Fatalf("gateway must not be called on validation failure")
			}
		})
	}
}

func TestContractFlow_FullLifecycleAuditChain(t *testing.T) {
	e, gw := contractEngine(t)
	c := validContract(entities.ContractStatusRascunho)

	steps := []workflow.ActionRequest[entities.ContractAction]{
		{Action: entities.ContractActionEnviarAprovacao, ActorID: "u-1"},
		{Action: entities.ContractActionAprovar, ActorID: "u-2"},
		{Action: entities.ContractActionAtivar, ActorID: "u-2", Payload: workflow.Payload{KeyContractDataInicio: "2026-11-02", "valor": 1}},
		{Action: entities.ContractActionEncerrar, ActorID: "u-2"},
	}
	for _, req := range steps {
		out, err := e.Execute(context.Background(), c, req)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", req.Action, err)
		}
		c = out.Entity
	}

	if c.Status != entities.ContractStatusEncerrado || c.DataAtivacao == nil || c.DataEncerramento == nil {
		t.Fatalf("unexpected final contract: %+v", c)
	}
	if c.Valor != 1500 {
		t.Fatalf("payload keys outside the projection must be ignored, valor=%v", c.Valor)
	}
	if got := c.DataInicio.Format("2006-01-02"); got != "2026-11-02" {
		t.Fatalf("expected activation to move start date, got %s", got)
	}
	for i := 1; i < len(gw.changes); i++ {
		prev, cur := gw.changes[i-1].Audit, gw.changes[i].Audit
		if !cur.OccurredAt.After(prev.OccurredAt) {
			t.Fatalf("audit %d not strictly after %d", i, i-1)
		}
		if prev.StatusAfter != cur.StatusBefore {
			t.Fatalf("broken chain: %s then %s", prev.StatusAfter, cur.StatusBefore)
		}
	}
	if last := gw.changes[len(gw.changes)-1].Audit; last.StatusAfter != string(c.Status) {
		t.Fatalf("history must end in current status")
	}
}

func TestOvertimeFlow(t *testing.T) {
	pending := entities.OvertimeRecord{ID: "ot-1", FuncionarioID: "emp-1", HorasExtras: 2, Status: entities.OvertimeStatusPendente}

	t.Run("approve more than logged", func(t *testing.T) {
		e, gw := overtimeEngine(t)
		_, err := e.Execute(context.Background(), pending, workflow.ActionRequest[entities.OvertimeAction]{
			Action: entities.OvertimeActionAprovar, ActorID: "mgr-1",
			Payload: workflow.Payload{KeyHorasExtrasAprovadas: 5.0},
		})
		if !errors.Is(err, ErrApprovedHoursExceeded) {
			t.Fatalf("expected ErrApprovedHoursExceeded, got %v", err)
		}
		if len(gw.changes) != 0 {
			t.Fatalf("gateway must not be called")
		}
	})

	t.Run("negative hours", func(t *testing.T) {
		e, _ := overtimeEngine(t)
		_, err := e.Execute(context.Background(), pending, workflow.ActionRequest[entities.OvertimeAction]{
			Action: entities.OvertimeActionAprovar, ActorID: "mgr-1",
			Payload: workflow.Payload{KeyHorasExtrasAprovadas: -1.0},
		})
		if !errors.Is(err, ErrApprovedHoursNegative) {
			t.Fatalf("expected ErrApprovedHoursNegative, got %v", err)
		}
	})

	t.Run("non numeric hours", func(t *testing.T) {
		e, _ := overtimeEngine(t)
		_, err := e.Execute(context.Background(), pending, workflow.ActionRequest[entities.OvertimeAction]{
			Action: entities.OvertimeActionAprovar, ActorID: "mgr-1",
			Payload: workflow.Payload{KeyHorasExtrasAprovadas: "lots"},
		})
		if !errors.Is(err, workflow.ErrInvalidPayloadField) {
			t.Fatalf("expected ErrInvalidPayloadField, got %v", err)
		}
	})

	t.Run("not a number hours", func(t *testing.T) {
		e, gw := overtimeEngine(t)
		_, err := e.Execute(context.Background(), pending, workflow.ActionRequest[entities.OvertimeAction]{
			Action: entities.OvertimeActionAprovar, ActorID: "mgr-1",
			Payload: workflow.Payload{KeyHorasExtrasAprovadas: "NaN"},
		})
		if !errors.Is(err, workflow.ErrInvalidPayloadField) {
			t.Fatalf("expected ErrInvalidPayloadField, got %v", err)
		}
		if len(gw.changes) != 0 {
			t.Fatalf("expected no gateway write, got %d", len(gw.changes))
		}
	})

	t.Run("partial approval", func(t *testing.T) {
		e, gw := overtimeEngine(t)
		out, err := e.Execute(context.Background(), pending, workflow.ActionRequest[entities.OvertimeAction]{
			Action: entities.OvertimeActionAprovar, ActorID: "mgr-1", ActorName: "Carlos",
			Payload: workflow.Payload{KeyHorasExtrasAprovadas: 1.5},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Entity.Status != entities.OvertimeStatusAprovado || *out.Entity.HorasExtrasAprovadas != 1.5 {
			t.Fatalf("unexpected entity: %+v", out.Entity)
		}
		if out.Entity.AprovadorID != "mgr-1" || out.Entity.DataAprovacao == nil {
			t.Fatalf("approver not stamped: %+v", out.Entity)
		}
		if gw.changes[0].Audit.Extra[KeyHorasExtrasAprovadas] != 1.5 {
			t.Fatalf("approved hours missing from audit extra: %+v", gw.changes[0].Audit.Extra)
		}
	})

	t.Run("approval without value approves everything", func(t *testing.T) {
		e, _ := overtimeEngine(t)
		out, err := e.Execute(context.Background(), pending, workflow.ActionRequest[entities.OvertimeAction]{
			Action: entities.OvertimeActionAprovar, ActorID: "mgr-1",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if *out.Entity.HorasExtrasAprovadas != 2 {
			t.Fatalf("expected 2 approved hours, got %v", *out.Entity.HorasExtrasAprovadas)
		}
	})

	t.Run("reject needs observation", func(t *testing.T) {
		e, _ := overtimeEngine(t)
		_, err := e.Execute(context.Background(), pending, workflow.ActionRequest[entities.OvertimeAction]{
			Action: entities.OvertimeActionReprovar, ActorID: "mgr-1",
		})
		if !errors.Is(err, ErrRejectionReasonRequired) {
			t.Fatalf("expected ErrRejectionReasonRequired, got %v", err)
		}
	})

	t.Run("already approved", func(t *testing.T) {
		e, _ := overtimeEngine(t)
		approved := pending
		approved.Status = entities.OvertimeStatusAprovado
		_, err := e.Execute(context.Background(), approved, workflow.ActionRequest[entities.OvertimeAction]{
			Action: entities.OvertimeActionReprovar, ActorID: "mgr-1", Observation: "late",
		})
		if !errors.Is(err, workflow.ErrIllegalTransition) {
			t.Fatalf("expected ErrIllegalTransition, got %v", err)
		}
	})
}

func TestAccountFlow_Suspend(t *testing.T) {
	active := entities.UserAccount{ID: "usr-1", Nome: "João", Status: entities.AccountStatusAtivo}

	cases := []struct {
		name    string
		actorID string
		payload workflow.Payload
		want    []error
	}{
		{
			name:    "self suspension with valid fields",
			actorID: "usr-1",
			payload: workflow.Payload{KeyMotivoSuspensao: "audit", KeyDataInicioSuspensao: "2026-10-19", KeyTipoSuspensao: "PERMANENTE"},
			want:    []error{ErrSelfSuspension},
		},
		{
			name:    "anonymous actor",
			actorID: "",
			payload: workflow.Payload{KeyMotivoSuspensao: "audit", KeyDataInicioSuspensao: "2026-10-19", KeyTipoSuspensao: "PERMANENTE"},
			want:    []error{workflow.ErrActorRequired},
		},
		{
			name:    "missing reason and start",
			actorID: "adm-1",
			payload: workflow.Payload{KeyTipoSuspensao: "PERMANENTE"},
			want:    []error{ErrSuspensionReasonRequired, ErrSuspensionStartRequired},
		},
		{
			name:    "temporary ending the day it starts",
			actorID: "adm-1",
			payload: workflow.Payload{KeyMotivoSuspensao: "x", KeyTipoSuspensao: "TEMPORARIA", KeyDataInicioSuspensao: "2026-10-19", KeyDataFimSuspensao: "2026-10-19"},
			want:    []error{ErrSuspensionEndNotAfterStart},
		},
		{
			name:    "temporary without end",
			actorID: "adm-1",
			payload: workflow.Payload{KeyMotivoSuspensao: "x", KeyTipoSuspensao: "TEMPORARIA", KeyDataInicioSuspensao: "2026-10-20"},
			want:    []error{ErrSuspensionEndRequired},
		},
		{
			name:    "temporary starting yesterday",
			actorID: "adm-1",
			payload: workflow.Payload{KeyMotivoSuspensao: "x", KeyTipoSuspensao: "TEMPORARIA", KeyDataInicioSuspensao: "2026-10-18", KeyDataFimSuspensao: "2026-10-25"},
			want:    []error{ErrSuspensionStartInPast},
		},
		{
			name:    "unknown type",
			actorID: "adm-1",
			payload: workflow.Payload{KeyMotivoSuspensao: "x", KeyTipoSuspensao: "PARCIAL", KeyDataInicioSuspensao: "2026-10-19"},
			want:    []error{ErrSuspensionTypeInvalid},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e, gw := accountEngine(t)
			out, err := e.Execute(context.Background(), active, workflow.ActionRequest[entities.AccountAction]{
				EntityID: "usr-1", Action: entities.AccountActionSuspender, ActorID: tc.actorID, Payload: tc.payload,
			})
			if !errors.Is(err, workflow.ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
			if len(out.Violations) != len(tc.want) {
				t.Fatalf("expected %d violations, got %q", len(tc.want), out.Violations)
			}
			for _, w := range tc.want {
				if !errors.Is(err, w) {
					t.Fatalf("expected %v in %v", w, err)
				}
			}
			if len(gw.changes) != 0 {
				t.Fatalf("gateway must not be called")
			}
		})
	}
}

func TestAccountFlow_SuspendAndReactivate(t *testing.T) {
	e, gw := accountEngine(t)
	acc := entities.UserAccount{ID: "usr-1", Status: entities.AccountStatusAtivo}

	out, err := e.Execute(context.Background(), acc, workflow.ActionRequest[entities.AccountAction]{
		Action: entities.AccountActionSuspender, ActorID: "adm-1", ActorName: "Admin",
		Payload: workflow.Payload{
			KeyMotivoSuspensao:     "policy violation",
			KeyTipoSuspensao:       "TEMPORARIA",
			KeyDataInicioSuspensao: "2026-10-19",
			KeyDataFimSuspensao:    "2026-10-26",
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s := out.Entity
	if s.Status != entities.AccountStatusSuspenso || s.TipoSuspensao != entities.SuspensionTypeTemporaria || s.DataFimSuspensao == nil {
		t.Fatalf("unexpected suspended account: %+v", s)
	}
	if s.SuspensoPorID != "adm-1" || s.MotivoSuspensao != "policy violation" {
		t.Fatalf("unexpected suspension stamp: %+v", s)
	}

	_, err = e.Execute(context.Background(), s, workflow.ActionRequest[entities.AccountAction]{
		Action: entities.AccountActionReativar, ActorID: "usr-1",
	})
	if !errors.Is(err, ErrSelfReactivation) {
		t.Fatalf("expected ErrSelfReactivation, got %v", err)
	}

	out, err = e.Execute(context.Background(), s, workflow.ActionRequest[entities.AccountAction]{
		Action: entities.AccountActionReativar, ActorID: "adm-1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r := out.Entity
	if r.Status != entities.AccountStatusAtivo || r.DataInicioSuspensao != nil || r.MotivoSuspensao != "" || r.DataReativacao == nil {
		t.Fatalf("suspension not cleared: %+v", r)
	}
	if len(gw.changes) != 2 {
		t.Fatalf("expected 2 commits, got %d", len(gw.changes))
	}

	inactive := entities.UserAccount{ID: "usr-2", Status: entities.AccountStatusInativo}
	if _, err := e.Execute(context.Background(), inactive, workflow.ActionRequest[entities.AccountAction]{
		Action: entities.AccountActionReativar, ActorID: "adm-1",
	}); err != nil {
		t.Fatalf("unexpected error reactivating inactive account: %v", err)
	}
	if _, err := e.Execute(context.Background(), inactive, workflow.ActionRequest[entities.AccountAction]{
		Action: entities.AccountActionSuspender, ActorID: "adm-1",
	}); !errors.Is(err, workflow.ErrIllegalTransition) {
		t.Fatalf("expected ErrIllegalTransition suspending inactive account, got %v", err)
	}
}

func TestPermanentSuspensionDropsEndDate(t *testing.T) {
	e, _ := accountEngine(t)
	out, err := e.Execute(context.Background(), entities.UserAccount{ID: "usr-1", Status: entities.AccountStatusAtivo}, workflow.ActionRequest[entities.AccountAction]{
		Action: entities.AccountActionSuspender, ActorID: "adm-1",
		Payload: workflow.Payload{KeyMotivoSuspensao: "fraud", KeyDataInicioSuspensao: "2026-01-01", KeyDataFimSuspensao: "2026-02-01"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Entity.TipoSuspensao != entities.SuspensionTypePermanente || out.Entity.DataFimSuspensao != nil {
		t.Fatalf("unexpected entity: %+v", out.Entity)
	}
}

func TestFlows_RequireActor(t *testing.T) {
	t.Run("contract", func(t *testing.T) {
		e, gw := contractEngine(t)
		_, err := e.Execute(context.Background(), validContract(entities.ContractStatusEmAnalise), workflow.ActionRequest[entities.ContractAction]{
			Action: entities.ContractActionAprovar,
		})
		if !errors.Is(err, workflow.ErrActorRequired) || len(gw.changes) != 0 {
			t.Fatalf("expected ErrActorRequired without a write, got %v (%d writes)", err, len(gw.changes))
		}
	})

	t.Run("overtime", func(t *testing.T) {
		e, gw := overtimeEngine(t)
		pending := entities.OvertimeRecord{ID: "ot-1", HorasExtras: 2, Status: entities.OvertimeStatusPendente}
		_, err := e.Execute(context.Background(), pending, workflow.ActionRequest[entities.OvertimeAction]{
			Action: entities.OvertimeActionAprovar, ActorName: "Carlos",
		})
		if !errors.Is(err, workflow.ErrActorRequired) || len(gw.changes) != 0 {
			t.Fatalf("expected ErrActorRequired without a write, got %v (%d writes)", err, len(gw.changes))
		}
	})

	t.Run("account", func(t *testing.T) {
		e, gw := accountEngine(t)
		inactive := entities.UserAccount{ID: "usr-2", Status: entities.AccountStatusInativo}
		_, err := e.Execute(context.Background(), inactive, workflow.ActionRequest[entities.AccountAction]{
			Action: entities.AccountActionReativar, ActorID: " ",
		})
		if !errors.Is(err, workflow.ErrActorRequired) || len(gw.changes) != 0 {
			t.Fatalf("expected ErrActorRequired without a write, got %v (%d writes)", err, len(gw.changes))
		}
	})
}
