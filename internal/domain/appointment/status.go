package appointment

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
	StatusNoShow    Status = "no-show"
)

var statuses = []Status{
	StatusScheduled,
	StatusConfirmed,
	StatusCancelled,
	StatusCompleted,
	StatusNoShow,
}

func Statuses() []Status {
	out := make([]Status, len(statuses))
	copy(out, statuses)
	return out
}

func (s Status) IsValid() bool {
	for _, v := range statuses {
		if v == s {
			return true
		}
	}
	return false
}

func ParseStatus(raw string) (Status, bool) {
	s := Status(raw)
	return s, s.IsValid()
}

// InitialStatus é o status de todo agendamento recém-criado.
func InitialStatus() Status {
	return StatusScheduled
}

// HoldsSlot reports whether an appointment in this status occupies the
// doctor's calendar. Only scheduled appointments do.
func (s Status) HoldsSlot() bool {
	return s == StatusScheduled
}

// Remindable reports whether a reminder should still go out.
func (s Status) Remindable() bool {
	return s == StatusScheduled || s == StatusConfirmed
}

// ===============================
// Transitions
// ===============================

// CanCancel define se um agendamento pode ser cancelado
func CanCancel(current Status) error {
	if current != StatusScheduled && current != StatusConfirmed {
		return ErrInvalidState
	}
	return nil
}

// CanComplete define se um agendamento pode ser concluído
func CanComplete(current Status) error {
	if current != StatusScheduled && current != StatusConfirmed {
		return ErrInvalidState
	}
	return nil
}
