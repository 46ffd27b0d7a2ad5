// Package notifier delivers post change notifications via PostgreSQL
// LISTEN/NOTIFY.
//
// The storage layer fires a NOTIFY on every committed mutation; the notifier
// holds a dedicated connection from the pool, listens on the posts channel
// and fans events out to subscribers. If the connection drops it reconnects
// after a fixed delay.
package notifier

import (
	"context"
	"encoding/json"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"postboard/storage"
)

// Event represents a post change notification.
type Event struct {
	// Op is the mutation kind: "created", "updated", "deleted" or "cleared".
	Op string `json:"op"`

	// ID is the affected post id. Empty for "cleared".
	ID string `json:"id"`

	// ReceivedAt is when the event was received.
	ReceivedAt time.Time `json:"-"`
}

// Handler is called when an event is received.
// Handlers run synchronously on the listen loop and should be quick.
type Handler func(event *Event)

// Config holds configuration for the notifier.
type Config struct {
	// ReconnectDelay is how long to wait before reconnecting after a
	// disconnect. Default: 5 seconds
	ReconnectDelay time.Duration

	// OnError is called when the listen loop fails.
	// If nil, errors are silently ignored.
	OnError func(err error)
}

// DefaultConfig returns the default notifier configuration.
func DefaultConfig() *Config {
	return &Config{
		ReconnectDelay: 5 * time.Second,
	}
}

// Notifier listens for post change notifications and dispatches them to
// subscribers.
type Notifier struct {
	pool   *pgxpool.Pool
	config *Config

	mu        sync.RWMutex
	subs      map[int64]Handler
	nextSubID int64

	started atomic.Bool
	done    chan struct{}
	cancel  context.CancelFunc
}

// New creates a notifier over the given connection pool.
func New(pool *pgxpool.Pool, config *Config) *Notifier {
	if config == nil {
		config = DefaultConfig()
	}
	if config.ReconnectDelay == 0 {
		config.ReconnectDelay = DefaultConfig().ReconnectDelay
	}

	return &Notifier{
		pool:   pool,
		config: config,
		subs:   make(map[int64]Handler),
		done:   make(chan struct{}),
	}
}

// Start begins listening. It returns immediately and runs the listen loop
// in a goroutine.
func (n *Notifier) Start(ctx context.Context) error {
	if !n.started.CompareAndSwap(false, true) {
		return ErrAlreadyStarted
	}

	ctx, n.cancel = context.WithCancel(ctx)
	go n.run(ctx)

	return nil
}

// Stop stops listening and waits for the loop to exit.
func (n *Notifier) Stop() error {
	if !n.started.Load() {
		return ErrNotStarted
	}

	n.cancel()
	<-n.done

	n.started.Store(false)
	return nil
}

// Subscribe registers a handler for post change events.
// Returns a function to unsubscribe.
func (n *Notifier) Subscribe(handler Handler) func() {
	n.mu.Lock()
	defer n.mu.Unlock()

	id := n.nextSubID
	n.nextSubID++
	n.subs[id] = handler

	return func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		delete(n.subs, id)
	}
}

// IsRunning returns true if the notifier is running.
func (n *Notifier) IsRunning() bool {
	return n.started.Load()
}

// run keeps the listen loop alive, reconnecting after failures.
func (n *Notifier) run(ctx context.Context) {
	defer close(n.done)

	for {
		if err := n.listenLoop(ctx); err != nil {
			if ctx.Err() != nil {
				return
			}
			if n.config.OnError != nil {
				n.config.OnError(err)
			}
			select {
			case <-ctx.Done():
				return
			case <-time.After(n.config.ReconnectDelay):
			}
		}
	}
}

// listenLoop acquires a dedicated connection, subscribes and processes
// notifications until an error occurs.
func (n *Notifier) listenLoop(ctx context.Context) error {
	conn, err := n.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	if _, err := conn.Exec(ctx, "LISTEN "+storage.ChannelPostsChanged); err != nil {
		return err
	}

	for {
		notification, err := conn.Conn().WaitForNotification(ctx)
		if err != nil {
			return err
		}

		event := &Event{ReceivedAt: time.Now()}
		if err := json.Unmarshal([]byte(notification.Payload), event); err != nil {
			// Malformed payloads are dropped, not fatal to the loop.
			continue
		}

		n.dispatch(event)
	}
}

// dispatch sends an event to all subscribed handlers.
func (n *Notifier) dispatch(event *Event) {
	n.mu.RLock()
	handlers := make([]Handler, 0, len(n.subs))
	for _, h := range n.subs {
		handlers = append(handlers, h)
	}
	n.mu.RUnlock()

	for _, h := range handlers {
		h(event)
	}
}
