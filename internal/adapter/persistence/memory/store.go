package memory

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"sync"

	"gestao_backoffice/internal/domain/entities"
	"gestao_backoffice/internal/usecase/interfaces"
	"gestao_backoffice/internal/workflow"
)

var ErrAlreadyExists = errors.New("item already exists")

// AuditLog is an append-only in-memory audit record store.
type AuditLog struct {
	mu      sync.RWMutex
	ids     map[string]struct{}
	records []entities.AuditRecord
}

var _ interfaces.IAuditRecordRepository = (*AuditLog)(nil)

func NewAuditLog() *AuditLog {
	return &AuditLog{ids: map[string]struct{}{}}
}

func (l *AuditLog) append(r entities.AuditRecord) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, dup := l.ids[r.ID]; dup {
		return false
	}
	l.ids[r.ID] = struct{}{}
	l.records = append(l.records, r)
	return true
}

func (l *AuditLog) ListByEntity(_ context.Context, kind entities.EntityKind, entityID string) ([]entities.AuditRecord, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := []entities.AuditRecord{}
	for _, r := range l.records {
		if r.EntityKind == kind && r.EntityID == entityID {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].OccurredAt.Before(out[j].OccurredAt) })
	return out, nil
}

// Store keeps entities of one kind in memory and writes their audit records to a
// shared AuditLog. Update holds the store lock across both writes.
type Store[E any] struct {
	mu    sync.RWMutex
	kind  entities.EntityKind
	id    func(E) string
	items map[string]E
	order []string
	audit *AuditLog
}

func newStore[E any](kind entities.EntityKind, id func(E) string, audit *AuditLog) *Store[E] {
	return &Store[E]{kind: kind, id: id, items: map[string]E{}, audit: audit}
}

func NewContractStore(audit *AuditLog) *Store[entities.Contract] {
	return newStore(entities.EntityKindContract, func(c entities.Contract) string { return c.ID }, audit)
}

func NewOvertimeStore(audit *AuditLog) *Store[entities.OvertimeRecord] {
	return newStore(entities.EntityKindOvertime, func(o entities.OvertimeRecord) string { return o.ID }, audit)
}

func NewAccountStore(audit *AuditLog) *Store[entities.UserAccount] {
	return newStore(entities.EntityKindUserAccount, func(u entities.UserAccount) string { return u.ID }, audit)
}

var (
	_ interfaces.IContractRepository = (*Store[entities.Contract])(nil)
	_ interfaces.IOvertimeRepository = (*Store[entities.OvertimeRecord])(nil)
	_ interfaces.IAccountRepository  = (*Store[entities.UserAccount])(nil)
)

func (s *Store[E]) Create(_ context.Context, e E) (E, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.id(e)
	if _, ok := s.items[id]; ok {
		var zero E
		return zero, ErrAlreadyExists
	}
	s.items[id] = e
	s.order = append(s.order, id)
	return e, nil
}

// GetByID returns the zero value when id is unknown.
func (s *Store[E]) GetByID(_ context.Context, id string) (E, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.items[id], nil
}

func (s *Store[E]) List(_ context.Context) ([]E, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]E, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.items[id])
	}
	return out, nil
}

func (s *Store[E]) Update(ctx context.Context, change workflow.Change[E]) (workflow.Result[E], error) {
	if err := ctx.Err(); err != nil {
		return workflow.Result[E]{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[change.EntityID]; !ok {
		return workflow.Failure[E](http.StatusNotFound, fmt.Sprintf("%s %s not found", s.kind, change.EntityID)), nil
	}
	if !s.audit.append(change.Audit) {
		return workflow.Failure[E](http.StatusConflict, "audit record already registered"), nil
	}
	s.items[change.EntityID] = change.Entity
	return workflow.Success(change.Entity), nil
}
