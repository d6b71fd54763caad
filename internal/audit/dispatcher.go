package audit

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

type Sink interface {
	Log(ctx context.Context, ev Event) error
}

// Dispatcher writes events in the background. A full queue drops the
// event: auditing never blocks or fails a request.
type Dispatcher struct {
	sink  Sink
	log   zerolog.Logger
	queue chan Event
	done  chan struct{}

	mu     sync.RWMutex
	closed bool
}

func NewDispatcher(sink Sink, log zerolog.Logger) *Dispatcher {
	d := &Dispatcher{
		sink:  sink,
		log:   log.With().Str("component", "audit").Logger(),
		queue: make(chan Event, 100),
		done:  make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)

	for ev := range d.queue {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := d.sink.Log(ctx, ev); err != nil {
			d.log.Error().Err(err).Str("action", ev.Action).Msg("audit write failed")
		}
		cancel()
	}
}

// Dispatch is safe on a nil Dispatcher.
func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}

	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		return
	}

	select {
	case d.queue <- ev:
	default:
		d.log.Warn().Str("action", ev.Action).Msg("audit queue full, dropping event")
	}
}

// Close stops accepting events and waits for the queued ones to be written.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	close(d.queue)
	d.mu.Unlock()

	<-d.done
}
