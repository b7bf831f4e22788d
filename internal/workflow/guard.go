package workflow

import (
	"errors"
	"time"
)

// Guard is a pure precondition on an action. It returns nil when satisfied. A guard
// may report several violations at once by returning errors.Join(...).
type Guard[E any, A ~string] func(entity E, req ActionRequest[A], now time.Time) error

// GuardResult is the batch outcome of evaluating a guard set.
type GuardResult struct {
	Allowed    bool
	Violations []string

	errs []error
}

// Err joins every violation, or returns nil when allowed.
func (r GuardResult) Err() error {
	if r.Allowed {
		return nil
	}
	return errors.Join(r.errs...)
}

// Errors returns the individual violation errors.
func (r GuardResult) Errors() []error {
	return append([]error(nil), r.errs...)
}

// Evaluate runs every guard and collects all violations; it never stops at the first
// failure. Guards receive their own copy of the payload.
func Evaluate[E any, A ~string](guards []Guard[E, A], entity E, req ActionRequest[A], now time.Time) GuardResult {
	var errs []error
	for _, g := range guards {
		if g == nil {
			continue
		}
		in := req
		in.Payload = req.Payload.clone()
		if err := g(entity, in, now); err != nil {
			errs = append(errs, flatten(err)...)
		}
	}

	res := GuardResult{Allowed: len(errs) == 0, errs: errs}
	for _, err := range errs {
		res.Violations = append(res.Violations, err.Error())
	}
	return res
}

func flatten(err error) []error {
	joined, ok := err.(interface{ Unwrap() []error })
	if !ok {
		return []error{err}
	}
	var out []error
	for _, e := range joined.Unwrap() {
		if e != nil {
			out = append(out, flatten(e)...)
		}
	}
	return out
}

// RequireObservation fails with err when the request carries no observation.
func RequireObservation[E any, A ~string](err error) Guard[E, A] {
	return func(_ E, req ActionRequest[A], _ time.Time) error {
		if trimmed(req.Observation) == "" {
			return err
		}
		return nil
	}
}

// ForbidSelfAction fails with err when the actor is the entity itself.
func ForbidSelfAction[E any, A ~string](err error) Guard[E, A] {
	return func(_ E, req ActionRequest[A], _ time.Time) error {
		if req.ActorID != "" && req.ActorID == req.EntityID {
			return err
		}
		return nil
	}
}
