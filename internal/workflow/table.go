package workflow

import (
	"fmt"
	"sort"
)

// Transition is one allowed edge: Action applied in From moves the entity to To.
type Transition[S ~string, A ~string] struct {
	From   S
	Action A
	To     S
}

type transitionKey[S ~string, A ~string] struct {
	from   S
	action A
}

// TransitionTable maps (status, action) to the next status. Any pair not registered
// is forbidden. A table is immutable once built.
type TransitionTable[S ~string, A ~string] struct {
	entries map[transitionKey[S, A]]S
	ordered []Transition[S, A]
}

// NewTransitionTable builds a table, rejecting two entries that send the same
// (status, action) pair to different statuses. Exact duplicates are collapsed.
func NewTransitionTable[S ~string, A ~string](transitions ...Transition[S, A]) (*TransitionTable[S, A], error) {
	t := &TransitionTable[S, A]{entries: make(map[transitionKey[S, A]]S, len(transitions))}
	for _, tr := range transitions {
		if tr.From == "" || tr.Action == "" || tr.To == "" {
			return nil, fmt.Errorf("%w: %q --%q--> %q", ErrIncompleteTransition, tr.From, tr.Action, tr.To)
		}
		key := transitionKey[S, A]{from: tr.From, action: tr.Action}
		if existing, ok := t.entries[key]; ok {
			if existing != tr.To {
				return nil, fmt.Errorf("%w: (%s, %s) -> %s and %s", ErrConflictingTransition, tr.From, tr.Action, existing, tr.To)
			}
			continue
		}
		t.entries[key] = tr.To
		t.ordered = append(t.ordered, tr)
	}
	return t, nil
}

// MustTransitionTable is NewTransitionTable for package-level tables.
func MustTransitionTable[S ~string, A ~string](transitions ...Transition[S, A]) *TransitionTable[S, A] {
	t, err := NewTransitionTable(transitions...)
	if err != nil {
		panic(err)
	}
	return t
}

// Resolve returns the status reached by applying action in from, or false when the
// pair is forbidden.
func (t *TransitionTable[S, A]) Resolve(from S, action A) (S, bool) {
	to, ok := t.entries[transitionKey[S, A]{from: from, action: action}]
	return to, ok
}

// AvailableActions lists the actions registered for from, sorted.
func (t *TransitionTable[S, A]) AvailableActions(from S) []A {
	var out []A
	for _, tr := range t.ordered {
		if tr.From == from {
			out = append(out, tr.Action)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Transitions returns the registered edges in registration order.
func (t *TransitionTable[S, A]) Transitions() []Transition[S, A] {
	return append([]Transition[S, A](nil), t.ordered...)
}

// CheckCoverage verifies every declared action either has at least one entry or is
// explicitly listed as forbidden from every status.
func (t *TransitionTable[S, A]) CheckCoverage(actions []A, alwaysForbidden ...A) error {
	forbidden := make(map[A]struct{}, len(alwaysForbidden))
	for _, a := range alwaysForbidden {
		forbidden[a] = struct{}{}
	}
	covered := make(map[A]struct{}, len(t.ordered))
	for _, tr := range t.ordered {
		covered[tr.Action] = struct{}{}
	}

	for _, a := range actions {
		_, isCovered := covered[a]
		_, isForbidden := forbidden[a]
		switch {
		case isCovered && isForbidden:
			return fmt.Errorf("%w: %s has entries but is declared always-forbidden", ErrUncoveredAction, a)
		case !isCovered && !isForbidden:
			return fmt.Errorf("%w: %s", ErrUncoveredAction, a)
		}
	}
	return nil
}
