package scheduling

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Medicine is a single prescribed medication line.
type Medicine struct {
	Name   string `json:"name"`
	Dosage string `json:"dosage"`
}

// PrescribedTest is a lab test ordered on a prescription. Result stays
// empty until lab staff record an outcome.
type PrescribedTest struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Result string    `json:"result"`
}

// Prescription is the consultation outcome attached to a completed
// appointment.
type Prescription struct {
	Medicines []Medicine       `json:"medicines"`
	Tests     []PrescribedTest `json:"tests"`
	Notes     string           `json:"notes"`
}

// PendingTests returns the ordered tests that have no recorded result yet.
func (p *Prescription) PendingTests() []PrescribedTest {
	var out []PrescribedTest
	for _, t := range p.Tests {
		if t.Result == "" {
			out = append(out, t)
		}
	}
	return out
}

// Appointment is a booking of one doctor-day-slot by one patient.
type Appointment struct {
	ID           uuid.UUID     `json:"id"`
	PatientID    uuid.UUID     `json:"patient_id"`
	DoctorID     uuid.UUID     `json:"doctor_id"`
	Date         time.Time     `json:"appointment_date"`
	TimeSlot     string        `json:"time_slot"`
	Status       Status        `json:"status"`
	Prescription *Prescription `json:"prescription,omitempty"`
	Rating       *int          `json:"rating,omitempty"`
	Review       *string       `json:"review,omitempty"`
	CreatedAt    time.Time     `json:"created_at"`
}

// Doctor is the directory projection the scheduler and notification
// pipeline need. Account management lives elsewhere.
type Doctor struct {
	ID             uuid.UUID `json:"id"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	Specialization string    `json:"specialization"`
	Email          string    `json:"email"`
	Rating         float64   `json:"rating"`
}

func (d *Doctor) FullName() string {
	return d.FirstName + " " + d.LastName
}

// Patient is the directory projection for booking and notifications.
type Patient struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

// AppointmentStore is the persistence contract for appointments.
//
// Create and UpdateSchedule must enforce doctor-day-slot uniqueness among
// non-canceled appointments atomically, returning ErrSlotTaken on
// collision. Lookups by id return ErrNotFound when no row matches.
type AppointmentStore interface {
	// Create books the slot with status scheduled.
	Create(ctx context.Context, patientID, doctorID uuid.UUID, date time.Time, timeSlot string) (*Appointment, error)

	Get(ctx context.Context, id uuid.UUID) (*Appointment, error)

	UpdateStatus(ctx context.Context, id uuid.UUID, status Status) (*Appointment, error)

	// UpdateSchedule moves the appointment to a new date and slot and sets
	// status rescheduled, in one write.
	UpdateSchedule(ctx context.Context, id uuid.UUID, date time.Time, timeSlot string) (*Appointment, error)

	// SetPrescription attaches the prescription and moves the appointment
	// to the given status in one write.
	SetPrescription(ctx context.Context, id uuid.UUID, p Prescription, status Status) (*Appointment, error)

	// SetTestResult records a result for one ordered test, returning
	// ErrTestNotFound when the appointment carries no such test.
	SetTestResult(ctx context.Context, id, testID uuid.UUID, result string) (*Appointment, error)

	SetReview(ctx context.Context, id uuid.UUID, rating int, review string) (*Appointment, error)

	// RecomputeDoctorRating recalculates the doctor's mean rating from all
	// rated appointments and persists it on the doctor row, returning the
	// new value. Runs in a transaction.
	RecomputeDoctorRating(ctx context.Context, doctorID uuid.UUID) (float64, error)

	// BookedSlots lists slot labels held by non-canceled appointments for
	// the doctor on the given date.
	BookedSlots(ctx context.Context, doctorID uuid.UUID, date time.Time) ([]string, error)

	// ListByPatient returns the patient's appointments, newest first,
	// skipping any whose status is in exclude.
	ListByPatient(ctx context.Context, patientID uuid.UUID, exclude ...Status) ([]*Appointment, error)

	ListByDoctor(ctx context.Context, doctorID uuid.UUID) ([]*Appointment, error)

	ListAll(ctx context.Context) ([]*Appointment, error)

	// ListPendingTests returns completed appointments with at least one
	// test lacking a result.
	ListPendingTests(ctx context.Context) ([]*Appointment, error)

	// ListCompletedTests returns completed appointments whose tests all
	// have results (and at least one test).
	ListCompletedTests(ctx context.Context) ([]*Appointment, error)
}

// LeaveCalendar answers whether a doctor has an approved leave covering a
// calendar date.
type LeaveCalendar interface {
	OnApprovedLeave(ctx context.Context, doctorID uuid.UUID, date time.Time) (bool, error)
}

// Directory resolves doctor and patient profiles for bookings and
// outbound notifications.
type Directory interface {
	Doctor(ctx context.Context, id uuid.UUID) (*Doctor, error)
	Patient(ctx context.Context, id uuid.UUID) (*Patient, error)
}

// Notifier receives lifecycle events after the state change is persisted.
// Implementations must not fail the calling operation.
type Notifier interface {
	AppointmentCanceled(ctx context.Context, appt *Appointment)
	AppointmentRescheduled(ctx context.Context, appt *Appointment)
}

// NopNotifier discards all events.
type NopNotifier struct{}

func (NopNotifier) AppointmentCanceled(context.Context, *Appointment)    {}
func (NopNotifier) AppointmentRescheduled(context.Context, *Appointment) {}
