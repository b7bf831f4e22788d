package usecase

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"gestao_backoffice/internal/domain/entities"
	"gestao_backoffice/internal/domain/flows"
	mock_interfaces "gestao_backoffice/internal/usecase/interfaces/mocks"
	"gestao_backoffice/internal/workflow"

	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)

func testClock() *workflow.Clock {
	return workflow.NewClockFunc(func() time.Time { return fixedNow }, time.UTC)
}

type contractMocks struct {
	repo     *mock_interfaces.MockIContractRepository
	audit    *mock_interfaces.MockIAuditRecordRepository
	notifier *mock_interfaces.MockINotifier
}

func newContractUseCase(t *testing.T) (*ContractUseCase, contractMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := contractMocks{
		repo:     mock_interfaces.NewMockIContractRepository(ctrl),
		audit:    mock_interfaces.NewMockIAuditRecordRepository(ctrl),
		notifier: mock_interfaces.NewMockINotifier(ctrl),
	}
	uc, err := NewContractUseCase(m.repo, m.audit, m.notifier, testClock(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return uc, m
}

func TestContractUseCase_Create(t *testing.T) {
	start := time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC)
	before := start.Add(-24 * time.Hour)

	t.Run("invalid input", func(t *testing.T) {
		uc, _ := newContractUseCase(t)
		cases := []entities.Contract{
			{Numero: "   "},
			{Numero: "1", Valor: -1},
			{Numero: "1", DataInicio: &start, DataFim: &before},
		}
		for _, c := range cases {
			if _, err := uc.Create(context.Background(), c); !errors.Is(err, ErrInvalidContract) {
				t.Fatalf("expected ErrInvalidContract for %+v, got %v", c, err)
			}
		}
	})

	t.Run("creates draft", func(t *testing.T) {
		uc, m := newContractUseCase(t)
		m.repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Contract{})).DoAndReturn(
			func(_ context.Context, c entities.Contract) (entities.Contract, error) {
				if c.ID == "" || c.Numero != "2026/001" || c.Status != entities.ContractStatusRascunho {
					t.Fatalf("unexpected contract: %+v", c)
				}
				if !c.CreatedAt.Equal(fixedNow) || !c.UpdatedAt.Equal(fixedNow) {
					t.Fatalf("expected clock timestamps, got %v %v", c.CreatedAt, c.UpdatedAt)
				}
				return c, nil
			},
		)

		res, err := uc.Create(context.Background(), entities.Contract{Numero: " 2026/001 ", Valor: 100, Status: entities.ContractStatusAprovado})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.ContractStatusRascunho {
			t.Fatalf("caller must not choose the initial status, got %s", res.Status)
		}
	})
}

func TestContractUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc, _ := newContractUseCase(t)
		if _, err := uc.GetByID(context.Background(), " "); !errors.Is(err, ErrInvalidID) {
			t.Fatalf("expected ErrInvalidID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc, m := newContractUseCase(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "ct-1").Return(entities.Contract{}, nil)
		if _, err := uc.GetByID(context.Background(), "ct-1"); !errors.Is(err, ErrContractNotFound) {
			t.Fatalf("expected ErrContractNotFound, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		uc, m := newContractUseCase(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "ct-1").Return(entities.Contract{}, errors.New("db"))
		if _, err := uc.GetByID(context.Background(), "ct-1"); err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestContractUseCase_Transition(t *testing.T) {
	inAnalysis := entities.Contract{ID: "ct-1", Numero: "2026/001", Valor: 100, Status: entities.ContractStatusEmAnalise}

	t.Run("invalid request", func(t *testing.T) {
		uc, _ := newContractUseCase(t)
		_, err := uc.Transition(context.Background(), workflow.ActionRequest[entities.ContractAction]{Action: entities.ContractActionAprovar})
		if !errors.Is(err, ErrInvalidID) {
			t.Fatalf("expected ErrInvalidID, got %v", err)
		}
		_, err = uc.Transition(context.Background(), workflow.ActionRequest[entities.ContractAction]{EntityID: "ct-1", Action: "PUBLICAR"})
		if !errors.Is(err, ErrInvalidAction) {
			t.Fatalf("expected ErrInvalidAction, got %v", err)
		}
	})

	t.Run("not found notifies", func(t *testing.T) {
		uc, m := newContractUseCase(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "ct-1").Return(entities.Contract{}, nil)
		m.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Do(func(_ context.Context, n entities.Notification) {
			if n.Severity != entities.SeverityError {
				t.Fatalf("expected error notification, got %+v", n)
			}
		})

		_, err := uc.Transition(context.Background(), workflow.ActionRequest[entities.ContractAction]{EntityID: "ct-1", Action: entities.ContractActionAprovar})
		if !errors.Is(err, ErrContractNotFound) {
			t.Fatalf("expected ErrContractNotFound, got %v", err)
		}
	})

	t.Run("committed", func(t *testing.T) {
		uc, m := newContractUseCase(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "ct-1").Return(inAnalysis, nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c workflow.Change[entities.Contract]) (workflow.Result[entities.Contract], error) {
				if c.EntityID != "ct-1" || c.Entity.Status != entities.ContractStatusAprovado {
					t.Fatalf("unexpected change: %+v", c)
				}
				if c.Audit.StatusBefore != "EM_ANALISE" || c.Audit.StatusAfter != "APROVADO" || c.Audit.ActorID != "u-9" {
					t.Fatalf("unexpected audit: %+v", c.Audit)
				}
				return workflow.Success(c.Entity), nil
			},
		)
		m.notifier.EXPECT().Notify(gomock.Any(), entities.Notification{
			Severity: entities.SeveritySuccess, Title: titleSuccess, Detail: "Contrato aprovado", Duration: successDuration,
		})

		res, err := uc.Transition(context.Background(), workflow.ActionRequest[entities.ContractAction]{
			EntityID: " ct-1 ", Action: "aprovar", ActorID: "u-9", ActorName: "Maria",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.ContractStatusAprovado || res.AprovadorNome != "Maria" {
			t.Fatalf("unexpected contract: %+v", res)
		}
	})

	t.Run("illegal transition never reaches the gateway", func(t *testing.T) {
		uc, m := newContractUseCase(t)
		draft := inAnalysis
		draft.Status = entities.ContractStatusRascunho
		m.repo.EXPECT().GetByID(gomock.Any(), "ct-1").Return(draft, nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).Times(0)
		m.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Do(func(_ context.Context, n entities.Notification) {
			if n.Severity != entities.SeverityWarn || n.Title != titleActionNotAllowed {
				t.Fatalf("unexpected notification: %+v", n)
			}
		})

		res, err := uc.Transition(context.Background(), workflow.ActionRequest[entities.ContractAction]{EntityID: "ct-1", Action: entities.ContractActionAprovar})
		if !errors.Is(err, workflow.ErrIllegalTransition) {
			t.Fatalf("expected ErrIllegalTransition, got %v", err)
		}
		if res.Status != entities.ContractStatusRascunho {
			t.Fatalf("rejected transition must return the unchanged entity")
		}
	})

	t.Run("each violation is notified", func(t *testing.T) {
		uc, m := newContractUseCase(t)
		draft := entities.Contract{ID: "ct-1", Status: entities.ContractStatusRascunho}
		m.repo.EXPECT().GetByID(gomock.Any(), "ct-1").Return(draft, nil)
		m.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Times(2)

		_, err := uc.Transition(context.Background(), workflow.ActionRequest[entities.ContractAction]{EntityID: "ct-1", Action: entities.ContractActionEnviarAprovacao, ActorID: "u-9"})
		if !errors.Is(err, flows.ErrContractValueRequired) || !errors.Is(err, flows.ErrContractStartDateRequired) {
			t.Fatalf("expected both violations, got %v", err)
		}
	})

	t.Run("backend message is surfaced", func(t *testing.T) {
		uc, m := newContractUseCase(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "ct-1").Return(inAnalysis, nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(workflow.Failure[entities.Contract](http.StatusConflict, "contrato bloqueado"), nil)
		m.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Do(func(_ context.Context, n entities.Notification) {
			if n.Severity != entities.SeverityError || n.Detail != "contrato bloqueado" {
				t.Fatalf("unexpected notification: %+v", n)
			}
		})

		_, err := uc.Transition(context.Background(), workflow.ActionRequest[entities.ContractAction]{
			EntityID: "ct-1", Action: entities.ContractActionReprovar, ActorID: "u-9", Observation: "valor acima do orçamento",
		})
		if !errors.Is(err, workflow.ErrPersistence) {
			t.Fatalf("expected ErrPersistence, got %v", err)
		}
	})
}

func TestContractUseCase_History(t *testing.T) {
	t.Run("unknown contract", func(t *testing.T) {
		uc, m := newContractUseCase(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "ct-1").Return(entities.Contract{}, nil)
		if _, err := uc.History(context.Background(), "ct-1"); !errors.Is(err, ErrContractNotFound) {
			t.Fatalf("expected ErrContractNotFound, got %v", err)
		}
	})

	t.Run("lists audit records", func(t *testing.T) {
		uc, m := newContractUseCase(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "ct-1").Return(entities.Contract{ID: "ct-1"}, nil)
		m.audit.EXPECT().ListByEntity(gomock.Any(), entities.EntityKindContract, "ct-1").Return([]entities.AuditRecord{{ID: "a1"}}, nil)

		records, err := uc.History(context.Background(), "ct-1")
		if err != nil || len(records) != 1 {
			t.Fatalf("unexpected result: %+v %v", records, err)
		}
	})
}

func TestContractUseCase_AvailableActions(t *testing.T) {
	uc, _ := newContractUseCase(t)
	got := uc.AvailableActions(entities.Contract{Status: entities.ContractStatusEmAnalise})
	if len(got) != 3 {
		t.Fatalf("expected APROVAR, CANCELAR and REPROVAR, got %v", got)
	}
	if got := uc.AvailableActions(entities.Contract{Status: entities.ContractStatusEncerrado}); len(got) != 0 {
		t.Fatalf("terminal status must have no actions, got %v", got)
	}
}
