package appointment

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/6laercio/saude-integrada-api/internal/models"
)

// sliceFinder hands back every row it holds, leaving the filtering to the
// resolver.
type sliceFinder struct {
	rows []models.Appointment
	err  error
}

func (f sliceFinder) FindScheduledOverlapping(
	_ context.Context,
	_ uint,
	_ Window,
	_ uint,
) ([]models.Appointment, error) {
	return f.rows, f.err
}

func TestConflictResolver_HasConflict(t *testing.T) {
	rows := []models.Appointment{
		{ID: 1, DoctorID: 1, StartAt: at("10:00"), Status: string(StatusScheduled)},
		{ID: 2, DoctorID: 1, StartAt: at("11:00"), Status: string(StatusCancelled)},
		{ID: 3, DoctorID: 2, StartAt: at("12:00"), Status: string(StatusScheduled)},
	}
	r := NewConflictResolver(sliceFinder{rows: rows})
	ctx := context.Background()

	cases := []struct {
		name     string
		doctorID uint
		start    string
		exclude  uint
		want     bool
	}{
		{"overlapping scheduled", 1, "10:15", 0, true},
		{"adjacent after", 1, "10:30", 0, false},
		{"adjacent before", 1, "09:30", 0, false},
		{"cancelled frees the slot", 1, "11:00", 0, false},
		{"self is excluded", 1, "10:10", 1, false},
		{"other doctor", 1, "12:00", 0, false},
		{"other doctor own slot", 2, "12:10", 0, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := r.HasConflict(ctx, tc.doctorID, WindowAt(at(tc.start)), tc.exclude)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestConflictResolver_PropagatesStoreError(t *testing.T) {
	boom := errors.New("store down")
	r := NewConflictResolver(sliceFinder{err: boom})

	_, err := r.HasConflict(context.Background(), 1, WindowAt(at("10:00")), 0)
	assert.ErrorIs(t, err, boom)
}
