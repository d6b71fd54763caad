package reminder

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/6laercio/saude-integrada-api/internal/models"
	"github.com/6laercio/saude-integrada-api/internal/timezone"
)

// Notifier delivers one reminder. ap has Patient and Doctor loaded.
type Notifier interface {
	Notify(ctx context.Context, ap *models.Appointment) error
}

// LogNotifier writes the reminder as a structured log line.
type LogNotifier struct {
	log zerolog.Logger
	loc *time.Location
}

func NewLogNotifier(log zerolog.Logger, tz string) *LogNotifier {
	return &LogNotifier{
		log: log.With().Str("component", "reminder").Logger(),
		loc: timezone.Location(tz),
	}
}

func (n *LogNotifier) Notify(_ context.Context, ap *models.Appointment) error {
	ev := n.log.Info().
		Uint("appointment_id", ap.ID).
		Str("quando", timezone.Format(ap.StartAt, n.loc))

	if ap.Patient != nil {
		ev = ev.Str("paciente", ap.Patient.Name).Str("telefone", ap.Patient.Phone)
	}
	if ap.Doctor != nil {
		ev = ev.Str("medico", ap.Doctor.Name).Str("especialidade", ap.Doctor.Specialty)
	}

	ev.Msg("lembrete de consulta")
	return nil
}
