package reminder

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/rs/zerolog"

	"github.com/6laercio/saude-integrada-api/internal/domain/appointment"
	"github.com/6laercio/saude-integrada-api/internal/models"
)

const (
	maxAttempts  = 3
	baseBackoff  = time.Minute
	defaultBatch = 100
)

type AppointmentLoader interface {
	GetDetailed(ctx context.Context, id uint) (*models.Appointment, error)
}

// Worker drains due reminders from the queue.
type Worker struct {
	queue    *RedisQueue
	loader   AppointmentLoader
	notifier Notifier
	log      zerolog.Logger
	now      func() time.Time
	batch    int64
}

func NewWorker(
	queue *RedisQueue,
	loader AppointmentLoader,
	notifier Notifier,
	log zerolog.Logger,
) *Worker {
	return &Worker{
		queue:    queue,
		loader:   loader,
		notifier: notifier,
		log:      log.With().Str("component", "reminder_worker").Logger(),
		now:      time.Now,
		batch:    defaultBatch,
	}
}

// Sweep delivers every reminder due now and returns how many went out.
func (w *Worker) Sweep(ctx context.Context) (int, error) {
	ids, err := w.queue.Due(ctx, w.now(), w.batch)
	if err != nil {
		return 0, fmt.Errorf("list due reminders: %w", err)
	}

	sent := 0
	for _, id := range ids {
		won, err := w.queue.Claim(ctx, id)
		if err != nil {
			return sent, fmt.Errorf("claim reminder %d: %w", id, err)
		}
		if !won {
			continue
		}

		ok, err := w.deliver(ctx, id)
		if err != nil {
			w.retry(ctx, id, err)
			continue
		}
		_ = w.queue.Forget(ctx, id)
		if ok {
			sent++
		}
	}
	return sent, nil
}

// deliver reports false when the appointment no longer wants a reminder.
func (w *Worker) deliver(ctx context.Context, id uint) (bool, error) {
	ap, err := w.loader.GetDetailed(ctx, id)
	if errors.Is(err, appointment.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if !appointment.Status(ap.Status).Remindable() {
		w.log.Debug().Uint("appointment_id", id).Str("status", ap.Status).Msg("reminder skipped")
		return false, nil
	}

	if err := w.notifier.Notify(ctx, ap); err != nil {
		return false, err
	}
	return true, nil
}

func (w *Worker) retry(ctx context.Context, id uint, cause error) {
	log := w.log.With().Uint("appointment_id", id).Logger()

	attempts, err := w.queue.Attempt(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("record reminder attempt failed")
		return
	}

	if attempts >= maxAttempts {
		_ = w.queue.Forget(ctx, id)
		log.Error().Err(cause).Int64("attempts", attempts).Msg("reminder dropped")
		return
	}

	if err := w.queue.Schedule(ctx, id, w.now().Add(backoff(attempts))); err != nil {
		log.Error().Err(err).Msg("reschedule reminder failed")
		return
	}
	log.Warn().Err(cause).Int64("attempts", attempts).Msg("reminder failed, will retry")
}

// backoff doubles per attempt: 1m, 2m, 4m...
func backoff(attempt int64) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	return baseBackoff << (attempt - 1)
}

// Start runs Sweep every interval until the returned scheduler is stopped.
func (w *Worker) Start(ctx context.Context, every time.Duration) (*gocron.Scheduler, error) {
	s := gocron.NewScheduler(time.UTC)
	s.SingletonModeAll()

	_, err := s.Every(every).Do(func() {
		n, err := w.Sweep(ctx)
		if err != nil {
			w.log.Error().Err(err).Msg("reminder sweep failed")
			return
		}
		if n > 0 {
			w.log.Info().Int("sent", n).Msg("reminders sent")
		}
	})
	if err != nil {
		return nil, fmt.Errorf("schedule sweep: %w", err)
	}

	s.StartAsync()
	return s, nil
}
