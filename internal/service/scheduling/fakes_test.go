package scheduling

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// memStore is an in-memory AppointmentStore honoring the same contracts
// as the SQL-backed implementation, including slot uniqueness among
// non-canceled appointments.
type memStore struct {
	mu      sync.Mutex
	appts   map[uuid.UUID]*Appointment
	ratings map[uuid.UUID]float64
	order   []uuid.UUID
}

func newMemStore() *memStore {
	return &memStore{
		appts:   make(map[uuid.UUID]*Appointment),
		ratings: make(map[uuid.UUID]float64),
	}
}

func (m *memStore) clone(a *Appointment) *Appointment {
	cp := *a
	if a.Prescription != nil {
		p := *a.Prescription
		p.Medicines = append([]Medicine(nil), a.Prescription.Medicines...)
		p.Tests = append([]PrescribedTest(nil), a.Prescription.Tests...)
		cp.Prescription = &p
	}
	if a.Rating != nil {
		r := *a.Rating
		cp.Rating = &r
	}
	if a.Review != nil {
		v := *a.Review
		cp.Review = &v
	}
	return &cp
}

func (m *memStore) slotHeld(doctorID uuid.UUID, date time.Time, slot string, except uuid.UUID) bool {
	for _, a := range m.appts {
		if a.ID != except && a.DoctorID == doctorID && a.Date.Equal(date) &&
			a.TimeSlot == slot && a.Status != StatusCanceled {
			return true
		}
	}
	return false
}

func (m *memStore) Create(_ context.Context, patientID, doctorID uuid.UUID, date time.Time, timeSlot string) (*Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.slotHeld(doctorID, date, timeSlot, uuid.Nil) {
		return nil, ErrSlotTaken
	}
	a := &Appointment{
		ID:        uuid.New(),
		PatientID: patientID,
		DoctorID:  doctorID,
		Date:      date,
		TimeSlot:  timeSlot,
		Status:    StatusScheduled,
		CreatedAt: time.Now(),
	}
	m.appts[a.ID] = a
	m.order = append(m.order, a.ID)
	return m.clone(a), nil
}

func (m *memStore) Get(_ context.Context, id uuid.UUID) (*Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	a, ok := m.appts[id]
	if !ok {
		return nil, ErrNotFound
	}
	return m.clone(a), nil
}

func (m *memStore) UpdateStatus(_ context.Context, id uuid.UUID, status Status) (*Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	a, ok := m.appts[id]
	if !ok {
		return nil, ErrNotFound
	}
	a.Status = status
	return m.clone(a), nil
}

func (m *memStore) UpdateSchedule(_ context.Context, id uuid.UUID, date time.Time, timeSlot string) (*Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	a, ok := m.appts[id]
	if !ok {
		return nil, ErrNotFound
	}
	if m.slotHeld(a.DoctorID, date, timeSlot, id) {
		return nil, ErrSlotTaken
	}
	a.Date = date
	a.TimeSlot = timeSlot
	a.Status = StatusRescheduled
	return m.clone(a), nil
}

func (m *memStore) SetPrescription(_ context.Context, id uuid.UUID, p Prescription, status Status) (*Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	a, ok := m.appts[id]
	if !ok {
		return nil, ErrNotFound
	}
	a.Prescription = &p
	a.Status = status
	return m.clone(a), nil
}

func (m *memStore) SetTestResult(_ context.Context, id, testID uuid.UUID, result string) (*Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	a, ok := m.appts[id]
	if !ok {
		return nil, ErrNotFound
	}
	if a.Prescription == nil {
		return nil, ErrTestNotFound
	}
	for i := range a.Prescription.Tests {
		if a.Prescription.Tests[i].ID == testID {
			a.Prescription.Tests[i].Result = result
			return m.clone(a), nil
		}
	}
	return nil, ErrTestNotFound
}

func (m *memStore) SetReview(_ context.Context, id uuid.UUID, rating int, review string) (*Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	a, ok := m.appts[id]
	if !ok {
		return nil, ErrNotFound
	}
	a.Rating = &rating
	a.Review = &review
	return m.clone(a), nil
}

func (m *memStore) RecomputeDoctorRating(_ context.Context, doctorID uuid.UUID) (float64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var sum, n float64
	for _, a := range m.appts {
		if a.DoctorID == doctorID && a.Rating != nil {
			sum += float64(*a.Rating)
			n++
		}
	}
	avg := 0.0
	if n > 0 {
		avg = sum / n
	}
	m.ratings[doctorID] = avg
	return avg, nil
}

func (m *memStore) BookedSlots(_ context.Context, doctorID uuid.UUID, date time.Time) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []string
	for _, id := range m.order {
		a := m.appts[id]
		if a.DoctorID == doctorID && a.Date.Equal(date) && a.Status != StatusCanceled {
			out = append(out, a.TimeSlot)
		}
	}
	return out, nil
}

func (m *memStore) ListByPatient(_ context.Context, patientID uuid.UUID, exclude ...Status) ([]*Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	skip := make(map[Status]bool, len(exclude))
	for _, s := range exclude {
		skip[s] = true
	}
	var out []*Appointment
	for _, id := range m.order {
		a := m.appts[id]
		if a.PatientID == patientID && !skip[a.Status] {
			out = append(out, m.clone(a))
		}
	}
	return out, nil
}

func (m *memStore) ListByDoctor(_ context.Context, doctorID uuid.UUID) ([]*Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []*Appointment
	for _, id := range m.order {
		if a := m.appts[id]; a.DoctorID == doctorID {
			out = append(out, m.clone(a))
		}
	}
	return out, nil
}

func (m *memStore) ListAll(_ context.Context) ([]*Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []*Appointment
	for _, id := range m.order {
		out = append(out, m.clone(m.appts[id]))
	}
	return out, nil
}

func (m *memStore) ListPendingTests(_ context.Context) ([]*Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []*Appointment
	for _, id := range m.order {
		a := m.appts[id]
		if a.Status == StatusCompleted && a.Prescription != nil && len(a.Prescription.PendingTests()) > 0 {
			out = append(out, m.clone(a))
		}
	}
	return out, nil
}

func (m *memStore) ListCompletedTests(_ context.Context) ([]*Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []*Appointment
	for _, id := range m.order {
		a := m.appts[id]
		if a.Status != StatusCompleted || a.Prescription == nil || len(a.Prescription.Tests) == 0 {
			continue
		}
		if len(a.Prescription.PendingTests()) == 0 {
			out = append(out, m.clone(a))
		}
	}
	return out, nil
}

// memLeaves is a LeaveCalendar over a fixed set of doctor-day blocks.
type memLeaves struct {
	blocked map[string]bool
	err     error
}

func newMemLeaves() *memLeaves {
	return &memLeaves{blocked: make(map[string]bool)}
}

func (m *memLeaves) block(doctorID uuid.UUID, date time.Time) {
	m.blocked[doctorID.String()+date.Format(time.DateOnly)] = true
}

func (m *memLeaves) OnApprovedLeave(_ context.Context, doctorID uuid.UUID, date time.Time) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	return m.blocked[doctorID.String()+date.Format(time.DateOnly)], nil
}

// recordNotifier captures which events fired.
type recordNotifier struct {
	canceled    []uuid.UUID
	rescheduled []uuid.UUID
}

func (r *recordNotifier) AppointmentCanceled(_ context.Context, a *Appointment) {
	r.canceled = append(r.canceled, a.ID)
}

func (r *recordNotifier) AppointmentRescheduled(_ context.Context, a *Appointment) {
	r.rescheduled = append(r.rescheduled, a.ID)
}
