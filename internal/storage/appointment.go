// Package storage implements the service persistence contracts on top of
// the generated ent client. Uniqueness and transactional invariants are
// enforced here, backed by database constraints.
package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ecarehq/ecare_backend/internal/repo"
	entappt "github.com/ecarehq/ecare_backend/internal/repo/appointment"
	"github.com/ecarehq/ecare_backend/internal/schema"
	"github.com/ecarehq/ecare_backend/internal/service/scheduling"
)

// AppointmentStore is the Postgres-backed scheduling.AppointmentStore.
// Slot uniqueness rides on the partial unique index over
// (doctor_id, appointment_date, time_slot) for non-canceled rows.
type AppointmentStore struct {
	client *repo.Client
}

func NewAppointmentStore(client *repo.Client) *AppointmentStore {
	return &AppointmentStore{client: client}
}

func (s *AppointmentStore) Create(ctx context.Context, patientID, doctorID uuid.UUID, date time.Time, timeSlot string) (*scheduling.Appointment, error) {
	row, err := s.client.Appointment.Create().
		SetPatientID(patientID).
		SetDoctorID(doctorID).
		SetAppointmentDate(date).
		SetTimeSlot(timeSlot).
		Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			return nil, scheduling.ErrSlotTaken
		}
		return nil, fmt.Errorf("creating appointment: %w", err)
	}
	return toAppointment(row), nil
}

func (s *AppointmentStore) Get(ctx context.Context, id uuid.UUID) (*scheduling.Appointment, error) {
	row, err := s.client.Appointment.Get(ctx, id)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, scheduling.ErrNotFound
		}
		return nil, fmt.Errorf("fetching appointment: %w", err)
	}
	return toAppointment(row), nil
}

func (s *AppointmentStore) UpdateStatus(ctx context.Context, id uuid.UUID, status scheduling.Status) (*scheduling.Appointment, error) {
	row, err := s.client.Appointment.UpdateOneID(id).
		SetStatus(entappt.Status(status)).
		Save(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, scheduling.ErrNotFound
		}
		return nil, fmt.Errorf("updating appointment status: %w", err)
	}
	return toAppointment(row), nil
}

func (s *AppointmentStore) UpdateSchedule(ctx context.Context, id uuid.UUID, date time.Time, timeSlot string) (*scheduling.Appointment, error) {
	row, err := s.client.Appointment.UpdateOneID(id).
		SetAppointmentDate(date).
		SetTimeSlot(timeSlot).
		SetStatus(entappt.StatusRescheduled).
		Save(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, scheduling.ErrNotFound
		}
		if repo.IsConstraintError(err) {
			return nil, scheduling.ErrSlotTaken
		}
		return nil, fmt.Errorf("rescheduling appointment: %w", err)
	}
	return toAppointment(row), nil
}

func (s *AppointmentStore) SetPrescription(ctx context.Context, id uuid.UUID, p scheduling.Prescription, status scheduling.Status) (*scheduling.Appointment, error) {
	row, err := s.client.Appointment.UpdateOneID(id).
		SetPrescription(toSchemaPrescription(&p)).
		SetStatus(entappt.Status(status)).
		Save(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, scheduling.ErrNotFound
		}
		return nil, fmt.Errorf("attaching prescription: %w", err)
	}
	return toAppointment(row), nil
}

func (s *AppointmentStore) SetTestResult(ctx context.Context, id, testID uuid.UUID, result string) (*scheduling.Appointment, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	row, err := tx.Appointment.Query().
		Where(entappt.ID(id)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, scheduling.ErrNotFound
		}
		return nil, fmt.Errorf("fetching appointment: %w", err)
	}
	if row.Prescription == nil {
		return nil, scheduling.ErrTestNotFound
	}

	found := false
	for i := range row.Prescription.Tests {
		if row.Prescription.Tests[i].ID == testID {
			row.Prescription.Tests[i].Result = result
			found = true
			break
		}
	}
	if !found {
		return nil, scheduling.ErrTestNotFound
	}

	row, err = tx.Appointment.UpdateOneID(id).
		SetPrescription(row.Prescription).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("saving test result: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing test result: %w", err)
	}
	return toAppointment(row), nil
}

func (s *AppointmentStore) SetReview(ctx context.Context, id uuid.UUID, rating int, review string) (*scheduling.Appointment, error) {
	row, err := s.client.Appointment.UpdateOneID(id).
		SetRating(rating).
		SetReview(review).
		Save(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, scheduling.ErrNotFound
		}
		return nil, fmt.Errorf("saving review: %w", err)
	}
	return toAppointment(row), nil
}

func (s *AppointmentStore) RecomputeDoctorRating(ctx context.Context, doctorID uuid.UUID) (float64, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return 0, fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	ratings, err := tx.Appointment.Query().
		Where(
			entappt.DoctorID(doctorID),
			entappt.RatingNotNil(),
		).
		Select(entappt.FieldRating).
		Ints(ctx)
	if err != nil {
		return 0, fmt.Errorf("loading ratings: %w", err)
	}

	avg := 0.0
	if len(ratings) > 0 {
		sum := 0
		for _, r := range ratings {
			sum += r
		}
		avg = float64(sum) / float64(len(ratings))
	}

	if err := tx.Doctor.UpdateOneID(doctorID).SetRating(avg).Exec(ctx); err != nil {
		return 0, fmt.Errorf("saving doctor rating: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing doctor rating: %w", err)
	}
	return avg, nil
}

func (s *AppointmentStore) BookedSlots(ctx context.Context, doctorID uuid.UUID, date time.Time) ([]string, error) {
	slots, err := s.client.Appointment.Query().
		Where(
			entappt.DoctorID(doctorID),
			entappt.AppointmentDateEQ(date),
			entappt.StatusNEQ(entappt.StatusCanceled),
		).
		Order(repo.Asc(entappt.FieldTimeSlot)).
		Select(entappt.FieldTimeSlot).
		Strings(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing booked slots: %w", err)
	}
	return slots, nil
}

func (s *AppointmentStore) ListByPatient(ctx context.Context, patientID uuid.UUID, exclude ...scheduling.Status) ([]*scheduling.Appointment, error) {
	q := s.client.Appointment.Query().
		Where(entappt.PatientID(patientID))
	if len(exclude) > 0 {
		skip := make([]entappt.Status, 0, len(exclude))
		for _, st := range exclude {
			skip = append(skip, entappt.Status(st))
		}
		q = q.Where(entappt.StatusNotIn(skip...))
	}
	rows, err := q.Order(repo.Desc(entappt.FieldAppointmentDate)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing patient appointments: %w", err)
	}
	return toAppointments(rows), nil
}

func (s *AppointmentStore) ListByDoctor(ctx context.Context, doctorID uuid.UUID) ([]*scheduling.Appointment, error) {
	rows, err := s.client.Appointment.Query().
		Where(entappt.DoctorID(doctorID)).
		Order(repo.Desc(entappt.FieldAppointmentDate)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing doctor appointments: %w", err)
	}
	return toAppointments(rows), nil
}

func (s *AppointmentStore) ListAll(ctx context.Context) ([]*scheduling.Appointment, error) {
	rows, err := s.client.Appointment.Query().
		Order(repo.Desc(entappt.FieldAppointmentDate)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing appointments: %w", err)
	}
	return toAppointments(rows), nil
}

// Test worklists filter on the prescription JSON in Go; the candidate set
// is narrowed to completed appointments with a prescription first.
func (s *AppointmentStore) ListPendingTests(ctx context.Context) ([]*scheduling.Appointment, error) {
	rows, err := s.completedWithPrescription(ctx)
	if err != nil {
		return nil, err
	}

	var out []*scheduling.Appointment
	for _, row := range rows {
		a := toAppointment(row)
		if a.Prescription != nil && len(a.Prescription.PendingTests()) > 0 {
			out = append(out, a)
		}
	}
	return out, nil
}

func (s *AppointmentStore) ListCompletedTests(ctx context.Context) ([]*scheduling.Appointment, error) {
	rows, err := s.completedWithPrescription(ctx)
	if err != nil {
		return nil, err
	}

	var out []*scheduling.Appointment
	for _, row := range rows {
		a := toAppointment(row)
		if a.Prescription == nil || len(a.Prescription.Tests) == 0 {
			continue
		}
		if len(a.Prescription.PendingTests()) == 0 {
			out = append(out, a)
		}
	}
	return out, nil
}

func (s *AppointmentStore) completedWithPrescription(ctx context.Context) ([]*repo.Appointment, error) {
	rows, err := s.client.Appointment.Query().
		Where(
			entappt.StatusEQ(entappt.StatusCompleted),
			entappt.PrescriptionNotNil(),
		).
		Order(repo.Desc(entappt.FieldAppointmentDate)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing completed appointments: %w", err)
	}
	return rows, nil
}

func toAppointments(rows []*repo.Appointment) []*scheduling.Appointment {
	out := make([]*scheduling.Appointment, 0, len(rows))
	for _, r := range rows {
		out = append(out, toAppointment(r))
	}
	return out
}

func toAppointment(row *repo.Appointment) *scheduling.Appointment {
	return &scheduling.Appointment{
		ID:           row.ID,
		PatientID:    row.PatientID,
		DoctorID:     row.DoctorID,
		Date:         row.AppointmentDate,
		TimeSlot:     row.TimeSlot,
		Status:       scheduling.Status(row.Status),
		Prescription: toServicePrescription(row.Prescription),
		Rating:       row.Rating,
		Review:       row.Review,
		CreatedAt:    row.CreatedAt,
	}
}

func toServicePrescription(p *schema.Prescription) *scheduling.Prescription {
	if p == nil {
		return nil
	}
	out := &scheduling.Prescription{Notes: p.Notes}
	for _, m := range p.Medicines {
		out.Medicines = append(out.Medicines, scheduling.Medicine{Name: m.Name, Dosage: m.Dosage})
	}
	for _, t := range p.Tests {
		out.Tests = append(out.Tests, scheduling.PrescribedTest{ID: t.ID, Name: t.Name, Result: t.Result})
	}
	return out
}

func toSchemaPrescription(p *scheduling.Prescription) *schema.Prescription {
	out := &schema.Prescription{Notes: p.Notes}
	for _, m := range p.Medicines {
		out.Medicines = append(out.Medicines, schema.Medicine{Name: m.Name, Dosage: m.Dosage})
	}
	for _, t := range p.Tests {
		out.Tests = append(out.Tests, schema.PrescribedTest{ID: t.ID, Name: t.Name, Result: t.Result})
	}
	return out
}
