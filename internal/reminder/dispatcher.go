package reminder

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

type scheduler interface {
	Schedule(ctx context.Context, appointmentID uint, due time.Time) error
}

// Dispatcher is the fire-and-forget side used by the booking flow.
// Enqueue never blocks; failures are logged here and go no further.
type Dispatcher struct {
	queue scheduler
	lead  time.Duration
	log   zerolog.Logger
	now   func() time.Time

	jobs chan Job
	done chan struct{}

	mu     sync.RWMutex
	closed bool
}

func NewDispatcher(queue scheduler, lead time.Duration, log zerolog.Logger) *Dispatcher {
	d := &Dispatcher{
		queue: queue,
		lead:  lead,
		log:   log.With().Str("component", "reminder").Logger(),
		now:   time.Now,
		jobs:  make(chan Job, 100),
		done:  make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)

	for job := range d.jobs {
		d.push(job)
	}
}

func (d *Dispatcher) push(job Job) {
	now := d.now()
	if !job.StartAt.After(now) {
		return
	}

	due := job.StartAt.Add(-d.lead)
	if due.Before(now) {
		due = now
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := d.queue.Schedule(ctx, job.AppointmentID, due); err != nil {
		d.log.Error().
			Err(err).
			Uint("appointment_id", job.AppointmentID).
			Msg("enqueue reminder failed")
		return
	}

	d.log.Debug().
		Uint("appointment_id", job.AppointmentID).
		Time("due", due).
		Msg("reminder scheduled")
}

func (d *Dispatcher) Enqueue(job Job) {
	if d == nil {
		return
	}

	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		return
	}

	select {
	case d.jobs <- job:
	default:
		d.log.Warn().Uint("appointment_id", job.AppointmentID).Msg("reminder queue full, dropping job")
	}
}

func (d *Dispatcher) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	close(d.jobs)
	d.mu.Unlock()

	<-d.done
}
