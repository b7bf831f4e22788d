package workflow

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"gestao_backoffice/internal/domain/entities"

	"github.com/google/uuid"
)

// Adapter binds the engine to one entity kind: its transition table, guard set and
// field projection, plus accessors on the entity itself.
type Adapter[E any, S ~string, A ~string] interface {
	Kind() entities.EntityKind
	Table() *TransitionTable[S, A]
	// Actions is the closed action enumeration of the kind.
	Actions() []A
	// AlwaysForbidden lists declared actions deliberately left without any entry.
	AlwaysForbidden() []A
	Guards(action A) []Guard[E, A]
	Projection() FieldProjection[A]

	ID(entity E) string
	Status(entity E) S
	WithStatus(entity E, status S) E
	// Apply merges the action's effects onto a copy of entity. The payload is already
	// restricted to the projection of the action.
	Apply(entity E, req ActionRequest[A], at time.Time) E
}

// Change is the unit handed to the gateway: the updated entity and the audit record
// describing how it got there.
type Change[E any] struct {
	EntityID string
	Entity   E
	Audit    entities.AuditRecord
}

// ResultError is the backend error carried by a failed Result.
type ResultError struct {
	StatusCode int    `json:"status_code"`
	Message    string `json:"message"`
}

// Result is the success/failure envelope returned by a Gateway.
type Result[E any] struct {
	IsSuccess bool         `json:"is_success"`
	Data      *E           `json:"data,omitempty"`
	Error     *ResultError `json:"error,omitempty"`
}

func Success[E any](data E) Result[E] {
	return Result[E]{IsSuccess: true, Data: &data}
}

func Failure[E any](statusCode int, message string) Result[E] {
	return Result[E]{Error: &ResultError{StatusCode: statusCode, Message: message}}
}

// Gateway persists a Change. A returned error (network failure, timeout) and a
// Result with IsSuccess=false are both treated as persistence failures.
type Gateway[E any] interface {
	Update(ctx context.Context, change Change[E]) (Result[E], error)
}

// Observer is notified of every Execute outcome; used for metrics.
type Observer interface {
	ObserveTransition(kind entities.EntityKind, action string, outcome OutcomeKind, reason Reason)
}

type OutcomeKind string

const (
	OutcomeCommitted OutcomeKind = "Committed"
	OutcomeRejected  OutcomeKind = "Rejected"
)

// Outcome is the structured result of Execute.
//
// Committed outcomes carry the persisted entity and the audit record written with it.
// Rejected outcomes carry the reason and, for validation failures, every violation.
type Outcome[E any] struct {
	Kind       OutcomeKind
	Entity     E
	Audit      *entities.AuditRecord
	Reason     Reason
	Violations []string
	Message    string
}

// Engine executes one guarded transition per call. It keeps no per-entity state: the
// caller supplies the current entity and the gateway is the source of truth.
//
// There is no locking between calls on the same entity; two concurrent calls validate
// against their own snapshots and both reach the gateway.
type Engine[E any, S ~string, A ~string] struct {
	adapter  Adapter[E, S, A]
	gateway  Gateway[E]
	clock    *Clock
	observer Observer
}

type Option[E any, S ~string, A ~string] func(*Engine[E, S, A])

func WithClock[E any, S ~string, A ~string](c *Clock) Option[E, S, A] {
	return func(e *Engine[E, S, A]) { e.clock = c }
}

func WithObserver[E any, S ~string, A ~string](o Observer) Option[E, S, A] {
	return func(e *Engine[E, S, A]) { e.observer = o }
}

// NewEngine registers adapter, checking that its table covers the action enumeration.
func NewEngine[E any, S ~string, A ~string](adapter Adapter[E, S, A], gateway Gateway[E], opts ...Option[E, S, A]) (*Engine[E, S, A], error) {
	if adapter == nil || adapter.Table() == nil {
		return nil, fmt.Errorf("workflow: adapter without transition table")
	}
	if gateway == nil {
		return nil, fmt.Errorf("workflow: %s gateway not configured", adapter.Kind())
	}
	if err := adapter.Table().CheckCoverage(adapter.Actions(), adapter.AlwaysForbidden()...); err != nil {
		return nil, fmt.Errorf("workflow: %s: %w", adapter.Kind(), err)
	}

	e := &Engine[E, S, A]{adapter: adapter, gateway: gateway}
	for _, opt := range opts {
		opt(e)
	}
	if e.clock == nil {
		e.clock = NewClock(time.UTC)
	}
	return e, nil
}

// Adapter exposes the registered adapter, e.g. to list available actions.
func (e *Engine[E, S, A]) Adapter() Adapter[E, S, A] {
	return e.adapter
}

// Execute validates req against the transition table and guards, then persists the
// updated entity with its audit record. The returned error is a *RejectionError
// exactly when the outcome is Rejected.
func (e *Engine[E, S, A]) Execute(ctx context.Context, entity E, req ActionRequest[A]) (Outcome[E], error) {
	kind := e.adapter.Kind()
	entityID := e.adapter.ID(entity)
	from := e.adapter.Status(entity)
	if req.EntityID == "" {
		req.EntityID = entityID
	}
	req.Observation = trimmed(req.Observation)

	// Validating
	to, ok := e.adapter.Table().Resolve(from, req.Action)
	if !ok {
		log.Printf("[workflow][engine] illegal transition kind=%s entity_id=%s status=%s action=%s", kind, entityID, from, req.Action)
		return e.reject(entity, &RejectionError{
			Reason:   ReasonIllegalTransition,
			Stage:    StageValidating,
			Kind:     kind,
			EntityID: entityID,
			Status:   string(from),
			Action:   string(req.Action),
			Message:  ErrIllegalTransition.Error(),
		})
	}

	// Guarding
	at := e.clock.Now()
	guards := e.adapter.Guards(req.Action)
	guards = append([]Guard[E, A]{matchEntity[E, A](entityID), requireActor[E, A]()}, guards...)
	res := Evaluate(guards, entity, req, at)
	if !res.Allowed {
		log.Printf("[workflow][engine] guard violations kind=%s entity_id=%s action=%s violations=%q", kind, entityID, req.Action, res.Violations)
		return e.reject(entity, &RejectionError{
			Reason:     ReasonValidationError,
			Stage:      StageGuarding,
			Kind:       kind,
			EntityID:   entityID,
			Status:     string(from),
			Action:     string(req.Action),
			Violations: res.Violations,
			Message:    strings.Join(res.Violations, "; "),
			causes:     res.Errors(),
		})
	}

	// Persisting
	projected := req
	projected.Payload = e.adapter.Projection().Filter(req.Action, req.Payload)
	updated := e.adapter.WithStatus(e.adapter.Apply(entity, projected, at), to)

	record := entities.AuditRecord{
		ID:           uuid.NewString(),
		EntityKind:   kind,
		EntityID:     entityID,
		Action:       string(req.Action),
		StatusBefore: string(from),
		StatusAfter:  string(to),
		Observation:  req.Observation,
		ActorID:      req.ActorID,
		ActorName:    req.ActorName,
		OccurredAt:   at,
	}
	if len(projected.Payload) > 0 {
		record.Extra = map[string]any(projected.Payload)
	}

	result, err := e.gateway.Update(ctx, Change[E]{EntityID: entityID, Entity: updated, Audit: record})
	if err != nil || !result.IsSuccess {
		msg := DefaultPersistenceMessage
		var causes []error
		if err != nil {
			causes = append(causes, err)
		}
		if result.Error != nil && trimmed(result.Error.Message) != "" {
			msg = result.Error.Message
		}
		log.Printf("[workflow][engine] persistence failed kind=%s entity_id=%s action=%s err=%v message=%q", kind, entityID, req.Action, err, msg)
		return e.reject(entity, &RejectionError{
			Reason:   ReasonPersistenceError,
			Stage:    StagePersisting,
			Kind:     kind,
			EntityID: entityID,
			Status:   string(from),
			Action:   string(req.Action),
			Message:  msg,
			causes:   causes,
		})
	}

	committed := updated
	if result.Data != nil {
		committed = *result.Data
	}
	log.Printf("[workflow][engine] committed kind=%s entity_id=%s action=%s %s->%s audit_id=%s", kind, entityID, req.Action, from, to, record.ID)
	e.observe(req.Action, OutcomeCommitted, "")
	return Outcome[E]{Kind: OutcomeCommitted, Entity: committed, Audit: &record}, nil
}

func (e *Engine[E, S, A]) reject(entity E, rej *RejectionError) (Outcome[E], error) {
	e.observe(A(rej.Action), OutcomeRejected, rej.Reason)
	return Outcome[E]{
		Kind:       OutcomeRejected,
		Entity:     entity,
		Reason:     rej.Reason,
		Violations: rej.Violations,
		Message:    rej.Message,
	}, rej
}

func (e *Engine[E, S, A]) observe(action A, kind OutcomeKind, reason Reason) {
	if e.observer != nil {
		e.observer.ObserveTransition(e.adapter.Kind(), string(action), kind, reason)
	}
}

func matchEntity[E any, A ~string](entityID string) Guard[E, A] {
	return func(_ E, req ActionRequest[A], _ time.Time) error {
		if req.EntityID != "" && req.EntityID != entityID {
			return ErrEntityMismatch
		}
		return nil
	}
}

// Every audit record names who acted.
func requireActor[E any, A ~string]() Guard[E, A] {
	return func(_ E, req ActionRequest[A], _ time.Time) error {
		if trimmed(req.ActorID) == "" {
			return ErrActorRequired
		}
		return nil
	}
}
