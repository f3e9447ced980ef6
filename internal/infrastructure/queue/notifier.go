package queue

import (
	"context"
	"hash/fnv"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/seobuddy/seobuddy-api/internal/api/metrics"
	"github.com/seobuddy/seobuddy-api/internal/core/domain"
)

const (
	defaultWorkers = 4
	channelBuffer  = 128
)

// LeadPublisher delivers a single lead notification to the outbound channel.
type LeadPublisher interface {
	PublishLead(ctx context.Context, lead domain.Lead) error
}

// Notifier fans captured leads out to a fixed set of workers using consistent
// hashing on the lead email, so notifications for one contact stay ordered.
type Notifier struct {
	workers   []chan domain.Lead
	publisher LeadPublisher
	log       zerolog.Logger
}

// NewNotifier creates a Notifier with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewNotifier(numWorkers int, publisher LeadPublisher, log zerolog.Logger) *Notifier {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	n := &Notifier{
		workers:   make([]chan domain.Lead, numWorkers),
		publisher: publisher,
		log:       log,
	}
	for i := range n.workers {
		n.workers[i] = make(chan domain.Lead, channelBuffer)
	}
	return n
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (n *Notifier) Start(ctx context.Context) {
	for i, ch := range n.workers {
		go n.runWorker(ctx, i, ch)
	}
}

// Enqueue hands a lead to the worker responsible for its email.
// The call is non-blocking up to channelBuffer capacity.
func (n *Notifier) Enqueue(lead domain.Lead) {
	idx := n.shardIndex(lead.Email)
	n.workers[idx] <- lead
	metrics.NotificationQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(n.workers[idx])))
}

// shardIndex maps an email deterministically to a worker index.
func (n *Notifier) shardIndex(email string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(email))
	return int(h.Sum32()) % len(n.workers)
}

func (n *Notifier) runWorker(ctx context.Context, id int, ch <-chan domain.Lead) {
	for {
		select {
		case <-ctx.Done():
			return
		case lead, ok := <-ch:
			if !ok {
				return
			}
			start := time.Now()
			if err := n.publisher.PublishLead(ctx, lead); err != nil {
				n.log.Error().Err(err).
					Str("email", lead.Email).
					Int("worker_id", id).
					Msg("lead notification failed")
				continue
			}
			metrics.NotificationPublishDuration.Observe(time.Since(start).Seconds())
			metrics.NotificationQueueDepth.WithLabelValues(strconv.Itoa(id)).Set(float64(len(ch)))
		}
	}
}
