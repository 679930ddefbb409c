package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ecarehq/ecare_backend/internal/repo"
	entleave "github.com/ecarehq/ecare_backend/internal/repo/doctorleave"
	"github.com/ecarehq/ecare_backend/internal/service/leave"
)

// LeaveStore is the Postgres-backed leave.Store.
type LeaveStore struct {
	client *repo.Client
}

func NewLeaveStore(client *repo.Client) *LeaveStore {
	return &LeaveStore{client: client}
}

// Create inserts the request after an overlap check against every existing
// leave of the doctor, in one transaction. The doctor's leave rows are
// locked for the duration so two concurrent requests cannot both pass.
func (s *LeaveStore) Create(ctx context.Context, doctorID uuid.UUID, start, end time.Time, reason string) (*leave.Leave, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	overlaps, err := tx.DoctorLeave.Query().
		Where(
			entleave.DoctorID(doctorID),
			entleave.StartDateLTE(end),
			entleave.EndDateGTE(start),
		).
		ForUpdate().
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("checking leave overlap: %w", err)
	}
	if overlaps {
		return nil, leave.ErrOverlap
	}

	row, err := tx.DoctorLeave.Create().
		SetDoctorID(doctorID).
		SetStartDate(start).
		SetEndDate(end).
		SetReason(reason).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("creating leave request: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing leave request: %w", err)
	}
	return toLeave(row), nil
}

func (s *LeaveStore) Get(ctx context.Context, id uuid.UUID) (*leave.Leave, error) {
	row, err := s.client.DoctorLeave.Get(ctx, id)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, leave.ErrNotFound
		}
		return nil, fmt.Errorf("fetching leave request: %w", err)
	}
	return toLeave(row), nil
}

func (s *LeaveStore) ListByDoctor(ctx context.Context, doctorID uuid.UUID) ([]*leave.Leave, error) {
	rows, err := s.client.DoctorLeave.Query().
		Where(entleave.DoctorID(doctorID)).
		Order(repo.Desc(entleave.FieldStartDate)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing doctor leaves: %w", err)
	}
	return toLeaves(rows), nil
}

func (s *LeaveStore) ListAll(ctx context.Context) ([]*leave.Leave, error) {
	rows, err := s.client.DoctorLeave.Query().
		Order(repo.Desc(entleave.FieldStartDate)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing leaves: %w", err)
	}
	return toLeaves(rows), nil
}

func (s *LeaveStore) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.client.DoctorLeave.DeleteOneID(id).Exec(ctx); err != nil {
		if repo.IsNotFound(err) {
			return leave.ErrNotFound
		}
		return fmt.Errorf("deleting leave request: %w", err)
	}
	return nil
}

func (s *LeaveStore) SetStatus(ctx context.Context, id uuid.UUID, status leave.Status) (*leave.Leave, error) {
	row, err := s.client.DoctorLeave.UpdateOneID(id).
		SetStatus(entleave.Status(status)).
		Save(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, leave.ErrNotFound
		}
		return nil, fmt.Errorf("updating leave status: %w", err)
	}
	return toLeave(row), nil
}

func (s *LeaveStore) HasApprovedLeave(ctx context.Context, doctorID uuid.UUID, date time.Time) (bool, error) {
	blocked, err := s.client.DoctorLeave.Query().
		Where(
			entleave.DoctorID(doctorID),
			entleave.StatusEQ(entleave.StatusApproved),
			entleave.StartDateLTE(date),
			entleave.EndDateGTE(date),
		).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("checking approved leave: %w", err)
	}
	return blocked, nil
}

func toLeaves(rows []*repo.DoctorLeave) []*leave.Leave {
	out := make([]*leave.Leave, 0, len(rows))
	for _, r := range rows {
		out = append(out, toLeave(r))
	}
	return out
}

func toLeave(row *repo.DoctorLeave) *leave.Leave {
	return &leave.Leave{
		ID:        row.ID,
		DoctorID:  row.DoctorID,
		StartDate: row.StartDate,
		EndDate:   row.EndDate,
		Reason:    row.Reason,
		Status:    leave.Status(row.Status),
		CreatedAt: row.CreatedAt,
	}
}
