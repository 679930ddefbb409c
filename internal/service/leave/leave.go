// Package leave manages doctor leave requests and the approval workflow
// that blocks appointment booking on approved days.
package leave

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Status is the leave request workflow state.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Leave is a doctor's request to be absent over an inclusive date range.
type Leave struct {
	ID        uuid.UUID `json:"id"`
	DoctorID  uuid.UUID `json:"doctor_id"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Reason    string    `json:"reason"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// Store is the persistence contract for leave requests.
//
// Create must reject a request overlapping any existing leave of the same
// doctor, regardless of the existing leave's status, atomically with the
// insert, returning ErrOverlap. Two ranges overlap when
// existing.start <= new.end && existing.end >= new.start.
type Store interface {
	Create(ctx context.Context, doctorID uuid.UUID, start, end time.Time, reason string) (*Leave, error)
	Get(ctx context.Context, id uuid.UUID) (*Leave, error)
	ListByDoctor(ctx context.Context, doctorID uuid.UUID) ([]*Leave, error)
	ListAll(ctx context.Context) ([]*Leave, error)
	Delete(ctx context.Context, id uuid.UUID) error
	SetStatus(ctx context.Context, id uuid.UUID, status Status) (*Leave, error)

	// HasApprovedLeave reports whether an approved leave of the doctor
	// covers the given calendar date.
	HasApprovedLeave(ctx context.Context, doctorID uuid.UUID, date time.Time) (bool, error)
}

type Service interface {
	// Apply files a new leave request with status pending.
	Apply(ctx context.Context, doctorID uuid.UUID, start, end time.Time, reason string) (*Leave, error)

	ListByDoctor(ctx context.Context, doctorID uuid.UUID) ([]*Leave, error)
	ListAll(ctx context.Context) ([]*Leave, error)

	// Cancel removes a leave request entirely, whatever its status.
	Cancel(ctx context.Context, id uuid.UUID) error

	// SetStatus moves a request to any workflow state (admin decision).
	SetStatus(ctx context.Context, id uuid.UUID, status Status) (*Leave, error)

	// OnApprovedLeave reports whether booking is blocked for the doctor on
	// the given date. Satisfies the scheduler's leave calendar dependency.
	OnApprovedLeave(ctx context.Context, doctorID uuid.UUID, date time.Time) (bool, error)
}

type leaveService struct {
	store  Store
	logger *slog.Logger
}

func New(store Store, logger *slog.Logger) Service {
	return &leaveService{store: store, logger: logger}
}

func (s *leaveService) Apply(ctx context.Context, doctorID uuid.UUID, start, end time.Time, reason string) (*Leave, error) {
	if doctorID == uuid.Nil || start.IsZero() || end.IsZero() || reason == "" {
		return nil, ErrMissingFields
	}

	start, end = dateOnly(start), dateOnly(end)
	if start.After(end) {
		return nil, ErrInvalidDateRange
	}

	l, err := s.store.Create(ctx, doctorID, start, end, reason)
	if err != nil {
		return nil, err
	}

	s.logger.Info("leave requested",
		"leave_id", l.ID,
		"doctor_id", doctorID,
		"start", start.Format(time.DateOnly),
		"end", end.Format(time.DateOnly),
	)

	return l, nil
}

func (s *leaveService) ListByDoctor(ctx context.Context, doctorID uuid.UUID) ([]*Leave, error) {
	return s.store.ListByDoctor(ctx, doctorID)
}

func (s *leaveService) ListAll(ctx context.Context) ([]*Leave, error) {
	return s.store.ListAll(ctx)
}

func (s *leaveService) Cancel(ctx context.Context, id uuid.UUID) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("leave canceled", "leave_id", id)
	return nil
}

func (s *leaveService) SetStatus(ctx context.Context, id uuid.UUID, status Status) (*Leave, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	l, err := s.store.SetStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}

	s.logger.Info("leave status updated", "leave_id", id, "status", status)

	return l, nil
}

func (s *leaveService) OnApprovedLeave(ctx context.Context, doctorID uuid.UUID, date time.Time) (bool, error) {
	return s.store.HasApprovedLeave(ctx, doctorID, dateOnly(date))
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
