package notify

import (
	"context"
	"log"
	"sync"

	"gestao_backoffice/internal/domain/entities"
	"gestao_backoffice/internal/usecase/interfaces"
)

// LogSink writes notifications to the process log.
type LogSink struct{}

var _ interfaces.INotifier = LogSink{}

func (LogSink) Notify(_ context.Context, n entities.Notification) {
	log.Printf("[notify][log] severity=%s title=%q detail=%q", n.Severity, n.Title, n.Detail)
}

// Multi fans a notification out to every sink, in order.
type Multi []interfaces.INotifier

var _ interfaces.INotifier = Multi(nil)

func (m Multi) Notify(ctx context.Context, n entities.Notification) {
	for _, s := range m {
		if s != nil {
			s.Notify(ctx, n)
		}
	}
}

// Collector gathers the notifications raised while serving one request so they can
// be returned in the response body.
type Collector struct {
	mu    sync.Mutex
	items []entities.Notification
}

func (c *Collector) add(n entities.Notification) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append(c.items, n)
}

// Notifications returns a copy of what was collected so far.
func (c *Collector) Notifications() []entities.Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]entities.Notification, len(c.items))
	copy(out, c.items)
	return out
}

type collectorKey struct{}

// WithCollector attaches a fresh Collector to ctx.
func WithCollector(ctx context.Context) (context.Context, *Collector) {
	c := &Collector{}
	return context.WithValue(ctx, collectorKey{}, c), c
}

func CollectorFrom(ctx context.Context) (*Collector, bool) {
	c, ok := ctx.Value(collectorKey{}).(*Collector)
	return c, ok
}

// RequestSink adds notifications to the Collector carried by the context, if any.
type RequestSink struct{}

var _ interfaces.INotifier = RequestSink{}

func (RequestSink) Notify(ctx context.Context, n entities.Notification) {
	if c, ok := CollectorFrom(ctx); ok {
		c.add(n)
	}
}
