package appointment

import (
	"context"

	"github.com/6laercio/saude-integrada-api/internal/models"
)

// SlotFinder returns the scheduled appointments of a doctor whose slot
// may intersect w, ignoring excludeID (0 excludes nothing).
type SlotFinder interface {
	FindScheduledOverlapping(
		ctx context.Context,
		doctorID uint,
		w Window,
		excludeID uint,
	) ([]models.Appointment, error)
}

type ConflictResolver struct {
	store SlotFinder
}

func NewConflictResolver(store SlotFinder) *ConflictResolver {
	return &ConflictResolver{store: store}
}

// HasConflict only reports. Callers decide what a conflict means.
func (r *ConflictResolver) HasConflict(
	ctx context.Context,
	doctorID uint,
	w Window,
	excludeID uint,
) (bool, error) {

	candidates, err := r.store.FindScheduledOverlapping(ctx, doctorID, w, excludeID)
	if err != nil {
		return false, err
	}

	for _, ap := range candidates {
		if excludeID != 0 && ap.ID == excludeID {
			continue
		}
		if ap.DoctorID != doctorID || !Status(ap.Status).HoldsSlot() {
			continue
		}
		if WindowAt(ap.StartAt).Overlaps(w) {
			return true, nil
		}
	}

	return false, nil
}
