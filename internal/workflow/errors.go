package workflow

import (
	"errors"
	"fmt"
	"strings"

	"gestao_backoffice/internal/domain/entities"
)

var (
	ErrConflictingTransition = errors.New("conflicting transition")
	ErrIncompleteTransition  = errors.New("incomplete transition")
	ErrUncoveredAction       = errors.New("action has no transition and is not declared forbidden")
	ErrInvalidPayloadField   = errors.New("invalid payload field")
	ErrEntityMismatch        = errors.New("request entity id does not match entity")
	ErrActorRequired         = errors.New("acting user is required")

	ErrIllegalTransition = errors.New("action not available")
	ErrValidation        = errors.New("validation failed")
	ErrPersistence       = errors.New("persistence failed")
)

// DefaultPersistenceMessage is used when the gateway gives no message of its own.
const DefaultPersistenceMessage = "could not save the changes, please try again"

// Reason classifies why an Execute call was rejected.
type Reason string

const (
	ReasonIllegalTransition Reason = "IllegalTransition"
	ReasonValidationError   Reason = "ValidationError"
	ReasonPersistenceError  Reason = "PersistenceError"
)

// Stage is the step of an Execute call: Validating -> Guarding -> Persisting.
type Stage string

const (
	StageValidating Stage = "Validating"
	StageGuarding   Stage = "Guarding"
	StagePersisting Stage = "Persisting"
)

func (r Reason) sentinel() error {
	switch r {
	case ReasonIllegalTransition:
		return ErrIllegalTransition
	case ReasonValidationError:
		return ErrValidation
	default:
		return ErrPersistence
	}
}

// RejectionError is returned by Engine.Execute whenever the outcome is Rejected.
//
// It matches ErrIllegalTransition, ErrValidation or ErrPersistence with errors.Is, as
// well as every individual guard violation.
type RejectionError struct {
	Reason     Reason
	Stage      Stage
	Kind       entities.EntityKind
	EntityID   string
	Status     string
	Action     string
	Violations []string
	Message    string

	causes []error
}

func (e *RejectionError) Error() string {
	switch e.Reason {
	case ReasonIllegalTransition:
		return fmt.Sprintf("%s %s: action %s not available in status %s", e.Kind, e.EntityID, e.Action, e.Status)
	case ReasonValidationError:
		return fmt.Sprintf("%s %s: %s: %s", e.Kind, e.EntityID, ErrValidation, strings.Join(e.Violations, "; "))
	default:
		return fmt.Sprintf("%s %s: %s: %s", e.Kind, e.EntityID, ErrPersistence, e.Message)
	}
}

func (e *RejectionError) Unwrap() []error {
	return append([]error{e.Reason.sentinel()}, e.causes...)
}

// AsRejection extracts a *RejectionError from err.
func AsRejection(err error) (*RejectionError, bool) {
	var rej *RejectionError
	if errors.As(err, &rej) {
		return rej, true
	}
	return nil, false
}

func trimmed(s string) string {
	return strings.TrimSpace(s)
}
