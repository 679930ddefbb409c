// Package scheduling implements the appointment lifecycle: booking,
// availability, rescheduling, consultation flow, prescriptions, lab test
// results and patient reviews.
package scheduling

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// CreateRequest is the input for booking a new appointment.
type CreateRequest struct {
	PatientID uuid.UUID `json:"patient_id"`
	DoctorID  uuid.UUID `json:"doctor_id"`
	Date      time.Time `json:"appointment_date"`
	TimeSlot  string    `json:"time_slot"`
}

// PrescriptionRequest is the consultation outcome submitted by a doctor.
// Tests are ordered by name only; ids and empty results are assigned here.
type PrescriptionRequest struct {
	Medicines []Medicine `json:"medicines"`
	Tests     []string   `json:"tests"`
	Notes     string     `json:"notes"`
}

// DayAvailability describes one doctor-day for the booking UI.
type DayAvailability struct {
	// Unavailable is set when the doctor has an approved leave on the day;
	// UnavailableSlots is then the full catalog.
	Unavailable      bool     `json:"unavailable"`
	UnavailableSlots []string `json:"unavailable_slots"`
}

// PatientAppointments is a patient's upcoming bookings plus the subset
// whose doctor has since been granted leave on the booked date.
type PatientAppointments struct {
	Appointments []*Appointment `json:"appointments"`
	// OnLeaveIDs flags appointments that need rescheduling because the
	// doctor's leave was approved after booking.
	OnLeaveIDs []uuid.UUID `json:"on_leave_ids"`
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Appointment, error)
	Get(ctx context.Context, id uuid.UUID) (*Appointment, error)
	UnavailableSlots(ctx context.Context, doctorID uuid.UUID, date time.Time) (*DayAvailability, error)

	Cancel(ctx context.Context, id uuid.UUID) (*Appointment, error)
	Reschedule(ctx context.Context, id uuid.UUID, date time.Time, timeSlot string) (*Appointment, error)
	MarkAbsent(ctx context.Context, id uuid.UUID) (*Appointment, error)
	StartConsultation(ctx context.Context, id uuid.UUID) (*Appointment, error)

	SubmitPrescription(ctx context.Context, id uuid.UUID, req PrescriptionRequest) (*Appointment, error)
	UpdateTestResult(ctx context.Context, id, testID uuid.UUID, result string) (*Appointment, error)
	SubmitReview(ctx context.Context, id uuid.UUID, rating int, review string) (*Appointment, error)

	ListByPatient(ctx context.Context, patientID uuid.UUID) (*PatientAppointments, error)
	PatientRecords(ctx context.Context, patientID uuid.UUID) ([]*Appointment, error)
	ListByDoctor(ctx context.Context, doctorID uuid.UUID) ([]*Appointment, error)
	ListAll(ctx context.Context) ([]*Appointment, error)
	PendingTests(ctx context.Context) ([]*Appointment, error)
	CompletedTests(ctx context.Context) ([]*Appointment, error)
}

type schedulingService struct {
	store    AppointmentStore
	leaves   LeaveCalendar
	catalog  *Catalog
	notifier Notifier
	logger   *slog.Logger
	now      func() time.Time
}

// Option customizes the service at construction time.
type Option func(*schedulingService)

// WithClock overrides the time source. Used by tests to pin "today".
func WithClock(now func() time.Time) Option {
	return func(s *schedulingService) { s.now = now }
}

func New(store AppointmentStore, leaves LeaveCalendar, catalog *Catalog, notifier Notifier, logger *slog.Logger, opts ...Option) Service {
	s := &schedulingService{
		store:    store,
		leaves:   leaves,
		catalog:  catalog,
		notifier: notifier,
		logger:   logger,
		now:      time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *schedulingService) Create(ctx context.Context, req CreateRequest) (*Appointment, error) {
	if req.PatientID == uuid.Nil || req.DoctorID == uuid.Nil || req.Date.IsZero() || req.TimeSlot == "" {
		return nil, ErrMissingFields
	}
	if !s.catalog.Contains(req.TimeSlot) {
		return nil, ErrUnknownTimeSlot
	}

	date := DateOnly(req.Date)

	onLeave, err := s.leaves.OnApprovedLeave(ctx, req.DoctorID, date)
	if err != nil {
		return nil, fmt.Errorf("checking doctor leave: %w", err)
	}
	if onLeave {
		return nil, ErrDoctorOnLeave
	}

	if err := s.rejectPastSlot(date, req.TimeSlot); err != nil {
		return nil, err
	}

	appt, err := s.store.Create(ctx, req.PatientID, req.DoctorID, date, req.TimeSlot)
	if err != nil {
		return nil, err
	}

	s.logger.Info("appointment booked",
		"appointment_id", appt.ID,
		"doctor_id", appt.DoctorID,
		"date", appt.Date.Format(time.DateOnly),
		"time_slot", appt.TimeSlot,
	)

	return appt, nil
}

// rejectPastSlot blocks same-day bookings whose slot start has already
// passed. Future dates are never checked; a slot exactly at the current
// instant counts as past.
func (s *schedulingService) rejectPastSlot(date time.Time, timeSlot string) error {
	now := s.now()
	if !DateOnly(now).Equal(date) {
		return nil
	}

	start, err := s.catalog.SlotStart(date, timeSlot, now.Location())
	if err != nil {
		return err
	}
	if !start.After(now) {
		return ErrPastTimeSlot
	}
	return nil
}

func (s *schedulingService) Get(ctx context.Context, id uuid.UUID) (*Appointment, error) {
	return s.store.Get(ctx, id)
}

func (s *schedulingService) UnavailableSlots(ctx context.Context, doctorID uuid.UUID, date time.Time) (*DayAvailability, error) {
	if doctorID == uuid.Nil || date.IsZero() {
		return nil, ErrMissingFields
	}

	date = DateOnly(date)

	onLeave, err := s.leaves.OnApprovedLeave(ctx, doctorID, date)
	if err != nil {
		return nil, fmt.Errorf("checking doctor leave: %w", err)
	}
	if onLeave {
		// Whole day is blocked; no point listing individual bookings.
		return &DayAvailability{Unavailable: true, UnavailableSlots: s.catalog.Slots()}, nil
	}

	booked, err := s.store.BookedSlots(ctx, doctorID, date)
	if err != nil {
		return nil, err
	}
	if booked == nil {
		booked = []string{}
	}
	return &DayAvailability{UnavailableSlots: booked}, nil
}

func (s *schedulingService) Cancel(ctx context.Context, id uuid.UUID) (*Appointment, error) {
	appt, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	// Canceling twice is a no-op rather than an error.
	if appt.Status == StatusCanceled {
		return appt, nil
	}

	to, err := nextStatus(appt.Status, actionCancel)
	if err != nil {
		return nil, err
	}

	updated, err := s.store.UpdateStatus(ctx, id, to)
	if err != nil {
		return nil, err
	}

	s.notifier.AppointmentCanceled(ctx, updated)

	s.logger.Info("appointment canceled", "appointment_id", id)

	return updated, nil
}

func (s *schedulingService) Reschedule(ctx context.Context, id uuid.UUID, date time.Time, timeSlot string) (*Appointment, error) {
	if date.IsZero() || timeSlot == "" {
		return nil, ErrMissingFields
	}
	if !s.catalog.Contains(timeSlot) {
		return nil, ErrUnknownTimeSlot
	}

	appt, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := nextStatus(appt.Status, actionReschedule); err != nil {
		return nil, err
	}

	date = DateOnly(date)

	onLeave, err := s.leaves.OnApprovedLeave(ctx, appt.DoctorID, date)
	if err != nil {
		return nil, fmt.Errorf("checking doctor leave: %w", err)
	}
	if onLeave {
		return nil, ErrDoctorOnLeave
	}

	if err := s.rejectPastSlot(date, timeSlot); err != nil {
		return nil, err
	}

	updated, err := s.store.UpdateSchedule(ctx, id, date, timeSlot)
	if err != nil {
		return nil, err
	}

	s.notifier.AppointmentRescheduled(ctx, updated)

	s.logger.Info("appointment rescheduled",
		"appointment_id", id,
		"date", date.Format(time.DateOnly),
		"time_slot", timeSlot,
	)

	return updated, nil
}

func (s *schedulingService) MarkAbsent(ctx context.Context, id uuid.UUID) (*Appointment, error) {
	return s.transition(ctx, id, actionMarkAbsent)
}

func (s *schedulingService) StartConsultation(ctx context.Context, id uuid.UUID) (*Appointment, error) {
	return s.transition(ctx, id, actionStartConsultation)
}

func (s *schedulingService) transition(ctx context.Context, id uuid.UUID, a action) (*Appointment, error) {
	appt, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	to, err := nextStatus(appt.Status, a)
	if err != nil {
		return nil, err
	}
	return s.store.UpdateStatus(ctx, id, to)
}

func (s *schedulingService) SubmitPrescription(ctx context.Context, id uuid.UUID, req PrescriptionRequest) (*Appointment, error) {
	appt, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	to, err := nextStatus(appt.Status, actionComplete)
	if err != nil {
		return nil, err
	}

	p := Prescription{
		Medicines: append([]Medicine(nil), req.Medicines...),
		Notes:     req.Notes,
	}
	for _, name := range req.Tests {
		p.Tests = append(p.Tests, PrescribedTest{ID: uuid.New(), Name: name})
	}

	updated, err := s.store.SetPrescription(ctx, id, p, to)
	if err != nil {
		return nil, err
	}

	s.logger.Info("prescription submitted",
		"appointment_id", id,
		"medicines", len(p.Medicines),
		"tests", len(p.Tests),
	)

	return updated, nil
}

func (s *schedulingService) UpdateTestResult(ctx context.Context, id, testID uuid.UUID, result string) (*Appointment, error) {
	if result == "" {
		return nil, ErrMissingFields
	}
	return s.store.SetTestResult(ctx, id, testID, result)
}

func (s *schedulingService) SubmitReview(ctx context.Context, id uuid.UUID, rating int, review string) (*Appointment, error) {
	if rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}

	appt, err := s.store.SetReview(ctx, id, rating, review)
	if err != nil {
		return nil, err
	}

	avg, err := s.store.RecomputeDoctorRating(ctx, appt.DoctorID)
	if err != nil {
		return nil, fmt.Errorf("recomputing doctor rating: %w", err)
	}

	s.logger.Info("review submitted",
		"appointment_id", id,
		"doctor_id", appt.DoctorID,
		"doctor_rating", avg,
	)

	return appt, nil
}

func (s *schedulingService) ListByPatient(ctx context.Context, patientID uuid.UUID) (*PatientAppointments, error) {
	appts, err := s.store.ListByPatient(ctx, patientID, StatusCompleted)
	if err != nil {
		return nil, err
	}

	out := &PatientAppointments{Appointments: appts}
	for _, a := range appts {
		if a.Status == StatusCanceled {
			continue
		}
		onLeave, err := s.leaves.OnApprovedLeave(ctx, a.DoctorID, a.Date)
		if err != nil {
			return nil, fmt.Errorf("checking doctor leave: %w", err)
		}
		if onLeave {
			out.OnLeaveIDs = append(out.OnLeaveIDs, a.ID)
		}
	}
	return out, nil
}

func (s *schedulingService) PatientRecords(ctx context.Context, patientID uuid.UUID) ([]*Appointment, error) {
	appts, err := s.store.ListByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}

	var out []*Appointment
	for _, a := range appts {
		if a.Status == StatusCompleted && a.Prescription != nil {
			out = append(out, a)
		}
	}
	return out, nil
}

func (s *schedulingService) ListByDoctor(ctx context.Context, doctorID uuid.UUID) ([]*Appointment, error) {
	return s.store.ListByDoctor(ctx, doctorID)
}

func (s *schedulingService) ListAll(ctx context.Context) ([]*Appointment, error) {
	return s.store.ListAll(ctx)
}

func (s *schedulingService) PendingTests(ctx context.Context) ([]*Appointment, error) {
	return s.store.ListPendingTests(ctx)
}

func (s *schedulingService) CompletedTests(ctx context.Context) ([]*Appointment, error) {
	return s.store.ListCompletedTests(ctx)
}
