package handlers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gestao_backoffice/internal/adapter/http/handlers/mocks"
	"gestao_backoffice/internal/adapter/http/middleware"
	"gestao_backoffice/internal/domain/entities"
	"gestao_backoffice/internal/usecase"
	"gestao_backoffice/internal/workflow"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/mock/gomock"
)

const accountTestSecret = "segredo"

func newAccountRouter(t *testing.T, auth bool) (*gin.Engine, *mocks.MockIAccountUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	uc := mocks.NewMockIAccountUseCase(gomock.NewController(t))
	h := NewAccountHandler(uc)

	r := gin.New()
	g := r.Group("/v1/accounts")
	if auth {
		g.Use(middleware.RequireActor(accountTestSecret))
	}
	g.POST("", h.CreateAccount)
	g.POST("/:id/actions", h.ExecuteAccountAction)
	g.GET("/:id/history", h.GetAccountHistory)
	return r, uc
}

func TestAccountHandler_CreateAccount(t *testing.T) {
	t.Run("missing email", func(t *testing.T) {
		r, _ := newAccountRouter(t, false)
		w := doJSON(r, http.MethodPost, "/v1/accounts", `{"nome":"Ana"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("rejected by usecase", func(t *testing.T) {
		r, uc := newAccountRouter(t, false)
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.UserAccount{}, usecase.ErrInvalidAccount)
		w := doJSON(r, http.MethodPost, "/v1/accounts", `{"nome":"Ana","email":"ana"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestAccountHandler_ExecuteAccountAction_ActorFromToken(t *testing.T) {
	r, uc := newAccountRouter(t, true)
	uc.EXPECT().Transition(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req workflow.ActionRequest[entities.AccountAction]) (entities.UserAccount, error) {
			if req.ActorID != "adm-1" || req.ActorName != "Admin" {
				t.Fatalf("body actor must be replaced by the token actor, got %q %q", req.ActorID, req.ActorName)
			}
			return entities.UserAccount{ID: "u-1", Status: entities.AccountStatusSuspenso}, nil
		},
	)
	uc.EXPECT().AvailableActions(gomock.Any()).Return([]entities.AccountAction{entities.AccountActionReativar})

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, middleware.ActorClaims{
		Name: "Admin",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "adm-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString([]byte(accountTestSecret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/v1/accounts/u-1/actions",
		bytes.NewBufferString(`{"action":"SUSPENDER","actor_id":"u-1","payload":{"motivoSuspensao":"x","dataInicioSuspensao":"2026-10-19"}}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
}

func TestAccountHandler_ExecuteAccountAction_Unauthenticated(t *testing.T) {
	r, _ := newAccountRouter(t, true)
	w := doJSON(r, http.MethodPost, "/v1/accounts/u-1/actions", `{"action":"REATIVAR"}`)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestAccountHandler_GetAccountHistory_NotFound(t *testing.T) {
	r, uc := newAccountRouter(t, false)
	uc.EXPECT().History(gomock.Any(), "u-1").Return(nil, usecase.ErrAccountNotFound)
	w := doJSON(r, http.MethodGet, "/v1/accounts/u-1/history", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
