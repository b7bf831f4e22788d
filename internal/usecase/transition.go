package usecase

import (
	"context"
	"errors"
	"slices"
	"strings"
	"time"

	"gestao_backoffice/internal/domain/entities"
	"gestao_backoffice/internal/usecase/interfaces"
	"gestao_backoffice/internal/workflow"
)

var (
	ErrInvalidID     = errors.New("invalid id")
	ErrInvalidAction = errors.New("invalid action")
)

const (
	successDuration = 3 * time.Second
	warnDuration    = 5 * time.Second
	errorDuration   = 5 * time.Second

	titleSuccess          = "Sucesso"
	titleValidation       = "Atenção"
	titleActionNotAllowed = "Ação não disponível"
	titleError            = "Erro"
)

// runTransition executes req on entity and reports the outcome to the notifier.
// Every failure path raises at least one notification.
func runTransition[E any, S ~string, A ~string](
	ctx context.Context,
	engine *workflow.Engine[E, S, A],
	notifier interfaces.INotifier,
	entity E,
	req workflow.ActionRequest[A],
	successDetail string,
) (E, error) {
	out, err := engine.Execute(ctx, entity, req)
	if err != nil {
		notifyRejection(ctx, notifier, err)
		return entity, err
	}
	notify(ctx, notifier, entities.Notification{
		Severity: entities.SeveritySuccess,
		Title:    titleSuccess,
		Detail:   successDetail,
		Duration: successDuration,
	})
	return out.Entity, nil
}

func notifyRejection(ctx context.Context, notifier interfaces.INotifier, err error) {
	rej, ok := workflow.AsRejection(err)
	if !ok {
		notifyError(ctx, notifier, err.Error())
		return
	}
	switch rej.Reason {
	case workflow.ReasonIllegalTransition:
		notify(ctx, notifier, entities.Notification{
			Severity: entities.SeverityWarn,
			Title:    titleActionNotAllowed,
			Detail:   workflow.ErrIllegalTransition.Error(),
			Duration: warnDuration,
		})
	case workflow.ReasonValidationError:
		for _, v := range rej.Violations {
			notify(ctx, notifier, entities.Notification{
				Severity: entities.SeverityWarn,
				Title:    titleValidation,
				Detail:   v,
				Duration: warnDuration,
			})
		}
	default:
		notifyError(ctx, notifier, rej.Message)
	}
}

func notifyError(ctx context.Context, notifier interfaces.INotifier, detail string) {
	notify(ctx, notifier, entities.Notification{
		Severity: entities.SeverityError,
		Title:    titleError,
		Detail:   detail,
		Duration: errorDuration,
	})
}

func notify(ctx context.Context, notifier interfaces.INotifier, n entities.Notification) {
	if notifier != nil {
		notifier.Notify(ctx, n)
	}
}

// normalizeRequest trims the identifiers of req and checks the action is one of actions.
func normalizeRequest[A ~string](req workflow.ActionRequest[A], actions []A) (workflow.ActionRequest[A], error) {
	req.EntityID = strings.TrimSpace(req.EntityID)
	req.Action = A(strings.ToUpper(strings.TrimSpace(string(req.Action))))
	req.ActorID = strings.TrimSpace(req.ActorID)
	req.ActorName = strings.TrimSpace(req.ActorName)
	if req.EntityID == "" {
		return req, ErrInvalidID
	}
	if !slices.Contains(actions, req.Action) {
		return req, ErrInvalidAction
	}
	return req, nil
}
