//go:generate mockery --name Writer --output ./mocks
package auditlog

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/doitintl/hello/account-onboarding/framework/connection"
	"github.com/doitintl/hello/account-onboarding/logger"
)

const (
	auditLogsCollection = "auditLogs"

	// queueSize bounds the amount of unwritten events held in memory. A full
	// queue drops the event, it never blocks the caller.
	queueSize = 64
)

// Event is one audit record.
type Event struct {
	ID        string                 `firestore:"-"`
	Action    string                 `firestore:"action"`
	Actor     string                 `firestore:"actor"`
	Details   map[string]interface{} `firestore:"details"`
	Timestamp time.Time              `firestore:"timestamp"`
}

// Writer records audit events without ever failing its caller.
type Writer interface {
	// WriteAndForget enqueues the event for background persistence. It
	// returns immediately; write failures are logged and discarded.
	WriteAndForget(ctx context.Context, event Event)

	// Close stops accepting events and drains the queue.
	Close()
}

type writer struct {
	loggerProvider logger.Provider
	conn           *connection.Connection
	events         chan Event
	done           chan struct{}
}

// NewWriter starts the background audit writer.
func NewWriter(log logger.Provider, conn *connection.Connection) Writer {
	w := &writer{
		loggerProvider: log,
		conn:           conn,
		events:         make(chan Event, queueSize),
		done:           make(chan struct{}),
	}

	go w.run()

	return w
}

func (w *writer) WriteAndForget(ctx context.Context, event Event) {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}

	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}

	if event.Actor == "" {
		if email, ok := ctx.Value("email").(string); ok {
			event.Actor = email
		}
	}

	select {
	case w.events <- event:
	default:
		w.loggerProvider(ctx).Warningf("audit queue full, dropping event %s", event.Action)
	}
}

func (w *writer) Close() {
	close(w.events)
	<-w.done
}

func (w *writer) run() {
	defer close(w.done)

	ctx := context.Background()
	log := w.loggerProvider(ctx)

	for event := range w.events {
		docRef := w.conn.Firestore(ctx).Collection(auditLogsCollection).Doc(event.ID)

		if _, err := docRef.Set(ctx, &event); err != nil {
			log.Errorf("could not persist audit event %s: %v", event.Action, err)
		}
	}
}
