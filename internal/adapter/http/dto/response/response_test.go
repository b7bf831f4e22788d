package response

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"gestao_backoffice/internal/domain/entities"
	"gestao_backoffice/pkg"
)

func TestFromContract(t *testing.T) {
	now := time.Now().UTC()
	res := FromContract(entities.Contract{
		ID:        "ct-1",
		Numero:    "2026/001",
		Valor:     1500,
		Status:    entities.ContractStatusEmAnalise,
		CreatedAt: now,
		UpdatedAt: now,
	}, []entities.ContractAction{entities.ContractActionAprovar, entities.ContractActionReprovar})

	if res.ID != "ct-1" || res.Status != "EM_ANALISE" || res.Valor != 1500 {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if len(res.AvailableActions) != 2 || res.AvailableActions[0] != "APROVAR" {
		t.Fatalf("unexpected actions: %v", res.AvailableActions)
	}
}

func TestFromContract_TerminalHasEmptyActionList(t *testing.T) {
	body, err := json.Marshal(FromContract(entities.Contract{Status: entities.ContractStatusCancelado}, nil))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(body), `"available_actions":[]`) {
		t.Fatalf("expected empty list instead of null, got %s", body)
	}
}

func TestFromOvertime_DateOnly(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)
	res := FromOvertime(entities.OvertimeRecord{Data: time.Date(2026, 10, 18, 0, 0, 0, 0, loc)}, nil)
	if res.Data != "2026-10-18" {
		t.Fatalf("expected 2026-10-18, got %s", res.Data)
	}
}

func TestFromNotifications(t *testing.T) {
	res := FromNotifications([]entities.Notification{
		{Severity: entities.SeverityWarn, Title: "Atenção", Detail: "x", Duration: 5 * time.Second},
	})
	if len(res) != 1 || res[0].Severity != "warn" || res[0].DurationMS != 5000 {
		t.Fatalf("unexpected notifications: %+v", res)
	}
}

func TestErrorResponse_FlattensHTTPError(t *testing.T) {
	body, err := json.Marshal(ErrorResponse{
		HTTPError:     pkg.HTTPError{Code: "VALIDATION_ERROR", Message: "m", Details: []string{"a"}},
		Notifications: FromNotifications([]entities.Notification{{Severity: entities.SeverityWarn, Title: "t"}}),
	})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	s := string(body)
	for _, want := range []string{`"code":"VALIDATION_ERROR"`, `"details":["a"]`, `"notifications":[`} {
		if !strings.Contains(s, want) {
			t.Fatalf("expected %s in %s", want, s)
		}
	}
}
