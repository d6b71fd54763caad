package appointment

import (
	"context"
	"maps"
	"sync"
	"time"

	domain "github.com/6laercio/saude-integrada-api/internal/domain/appointment"
	"github.com/6laercio/saude-integrada-api/internal/models"
	"github.com/6laercio/saude-integrada-api/internal/reminder"
)

// fakeStore is a map-backed store. A transaction holds mu for its whole
// duration and restores the previous rows when fn fails.
type fakeStore struct {
	mu           sync.Mutex
	nextID       uint
	appointments map[uint]models.Appointment
	patients     map[uint]models.Patient
	doctors      map[uint]models.Doctor

	lockErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		appointments: map[uint]models.Appointment{},
		patients: map[uint]models.Patient{
			1: {ID: 1, Name: "Carla Dias", Phone: "11999990001"},
		},
		doctors: map[uint]models.Doctor{
			1: {ID: 1, Name: "Ana Souza", License: "CRM1001", Specialty: "Cardiologia"},
			2: {ID: 2, Name: "Bruno Reis", License: "CRM1002", Specialty: "Pediatria"},
		},
	}
}

type fakeRepo struct {
	s    *fakeStore
	inTx bool
}

func (r *fakeRepo) lock() func() {
	if r.inTx {
		return func() {}
	}
	r.s.mu.Lock()
	return r.s.mu.Unlock
}

func (r *fakeRepo) Transaction(ctx context.Context, fn func(tx domain.Repository) error) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	snapshot := maps.Clone(r.s.appointments)
	if err := fn(&fakeRepo{s: r.s, inTx: true}); err != nil {
		r.s.appointments = snapshot
		return err
	}
	return nil
}

func (r *fakeRepo) PatientExists(_ context.Context, id uint) (bool, error) {
	defer r.lock()()
	_, ok := r.s.patients[id]
	return ok, nil
}

func (r *fakeRepo) LockDoctor(_ context.Context, id uint) (bool, error) {
	defer r.lock()()
	if r.s.lockErr != nil {
		return false, r.s.lockErr
	}
	_, ok := r.s.doctors[id]
	return ok, nil
}

func (r *fakeRepo) FindScheduledOverlapping(
	_ context.Context,
	doctorID uint,
	w domain.Window,
	excludeID uint,
) ([]models.Appointment, error) {
	defer r.lock()()

	var out []models.Appointment
	for _, ap := range r.s.appointments {
		if ap.DoctorID != doctorID || ap.ID == excludeID || ap.Status != string(domain.StatusScheduled) {
			continue
		}
		if ap.StartAt.Before(w.End) && ap.EndAt.After(w.Start) {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (r *fakeRepo) Create(_ context.Context, ap *models.Appointment) error {
	defer r.lock()()
	r.s.nextID++
	ap.ID = r.s.nextID
	ap.CreatedAt = time.Now()
	ap.UpdatedAt = ap.CreatedAt
	r.s.appointments[ap.ID] = *ap
	return nil
}

func (r *fakeRepo) Get(_ context.Context, id uint) (*models.Appointment, error) {
	defer r.lock()()
	ap, ok := r.s.appointments[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &ap, nil
}

func (r *fakeRepo) GetDetailed(ctx context.Context, id uint) (*models.Appointment, error) {
	defer r.lock()()
	ap, ok := r.s.appointments[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	p := r.s.patients[ap.PatientID]
	d := r.s.doctors[ap.DoctorID]
	ap.Patient, ap.Doctor = &p, &d
	return &ap, nil
}

func (r *fakeRepo) Update(_ context.Context, ap *models.Appointment) error {
	defer r.lock()()
	if _, ok := r.s.appointments[ap.ID]; !ok {
		return domain.ErrNotFound
	}
	ap.UpdatedAt = time.Now()
	r.s.appointments[ap.ID] = *ap
	return nil
}

func (r *fakeRepo) Delete(_ context.Context, id uint) error {
	defer r.lock()()
	if _, ok := r.s.appointments[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.appointments, id)
	return nil
}

func (r *fakeRepo) List(_ context.Context, f domain.Filter) ([]models.Appointment, error) {
	defer r.lock()()
	var out []models.Appointment
	for _, ap := range r.s.appointments {
		if f.DoctorID != nil && ap.DoctorID != *f.DoctorID {
			continue
		}
		out = append(out, ap)
	}
	return out, nil
}

func (s *fakeStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.appointments)
}

// recordingQueue captures reminder jobs.
type recordingQueue struct {
	mu   sync.Mutex
	jobs []reminder.Job
}

func (q *recordingQueue) Enqueue(job reminder.Job) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.jobs = append(q.jobs, job)
}
