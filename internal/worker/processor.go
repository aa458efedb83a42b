package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"

	"banksystem/internal/metrics"
	"banksystem/internal/model"
)

const (
	auditQueue    = "audit_group"
	insertTimeout = 5 * time.Second
	drainTimeout  = 10 * time.Second
	drainPoll     = 50 * time.Millisecond
)

var errDrainTimeout = errors.New("worker: audit subscription did not drain in time")

type AuditStore interface {
	Insert(ctx context.Context, event model.AuditEvent) error
}

// AuditWorker listens on the audit subject and persists every event.
type AuditWorker struct {
	store    AuditStore
	natsConn *nats.Conn
	log      *zap.Logger
}

func NewAuditWorker(store AuditStore, nc *nats.Conn, log *zap.Logger) *AuditWorker {
	return &AuditWorker{
		store:    store,
		natsConn: nc,
		log:      log,
	}
}

// Run subscribes to the audit subject and blocks until ctx is cancelled.
// On shutdown the subscription is drained and Run returns once every
// buffered event has been handled or drainTimeout has passed.
func (w *AuditWorker) Run(ctx context.Context) error {
	// Queue group: each event goes to exactly one worker replica.
	sub, err := w.natsConn.QueueSubscribe(model.AuditSubject, auditQueue, func(m *nats.Msg) {
		w.handle(ctx, m.Data)
	})
	if err != nil {
		return fmt.Errorf("worker: failed to subscribe to NATS: %w", err)
	}

	w.log.Info("audit worker is running", zap.String("subject", model.AuditSubject))

	<-ctx.Done()

	w.log.Info("audit worker received shutdown signal, draining subscription")
	if err := sub.Drain(); err != nil {
		return fmt.Errorf("worker: drain subscription: %w", err)
	}
	return waitDrained(sub.IsValid, drainTimeout, drainPoll)
}

// waitDrained polls valid until it reports false, which nats does once a
// drained subscription has delivered its last message.
func waitDrained(valid func() bool, timeout, poll time.Duration) error {
	deadline := time.Now().Add(timeout)
	for valid() {
		if time.Now().After(deadline) {
			return errDrainTimeout
		}
		time.Sleep(poll)
	}
	return nil
}

func (w *AuditWorker) handle(ctx context.Context, data []byte) {
	var event model.AuditEvent
	if err := json.Unmarshal(data, &event); err != nil {
		metrics.AuditEventsStored.WithLabelValues("malformed").Inc()
		w.log.Error("worker: failed to unmarshal audit event", zap.Error(err))
		return
	}
	if event.ID == "" {
		metrics.AuditEventsStored.WithLabelValues("malformed").Inc()
		w.log.Error("worker: audit event without id", zap.String("request_id", event.RequestID))
		return
	}

	// Drain keeps delivering after ctx is cancelled; those events are stored too.
	insertCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), insertTimeout)
	defer cancel()

	if err := w.store.Insert(insertCtx, event); err != nil {
		metrics.AuditEventsStored.WithLabelValues("failed").Inc()
		w.log.Error("worker: failed to store audit event",
			zap.String("id", event.ID),
			zap.String("request_id", event.RequestID),
			zap.Error(err),
		)
		return
	}

	metrics.AuditEventsStored.WithLabelValues("stored").Inc()
	w.log.Debug("worker: audit event stored", zap.String("id", event.ID))
}

// Start implements the infrastructure.Server interface.
func (w *AuditWorker) Start(ctx context.Context) error {
	return w.Run(ctx)
}

// Stop implements the infrastructure.Server interface (no-op, shutdown is via ctx).
func (w *AuditWorker) Stop(ctx context.Context) error {
	return nil
}
