package metrics

import (
	"gestao_backoffice/internal/domain/entities"
	"gestao_backoffice/internal/workflow"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the approval workflows.
type Metrics struct {
	// Transition outcomes by entity kind, action and rejection reason
	TransitionOutcome *prometheus.CounterVec
}

var _ workflow.Observer = (*Metrics)(nil)

// New creates the workflow metrics and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		TransitionOutcome: f.NewCounterVec(prometheus.CounterOpts{
			Name: "backoffice_workflow_transitions_total",
			Help: "Total transition attempts by entity kind, action, outcome and rejection reason",
		}, []string{"kind", "action", "outcome", "reason"}), // reason is empty for committed transitions
	}
}

// ObserveTransition records one engine outcome.
func (m *Metrics) ObserveTransition(kind entities.EntityKind, action string, outcome workflow.OutcomeKind, reason workflow.Reason) {
	if m != nil {
		m.TransitionOutcome.WithLabelValues(string(kind), action, string(outcome), string(reason)).Inc()
	}
}
