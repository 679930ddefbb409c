package storage

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ecarehq/ecare_backend/internal/repo"
	"github.com/ecarehq/ecare_backend/internal/service/scheduling"
)

// Directory resolves doctor and patient profiles for the scheduler and
// the notification workers.
type Directory struct {
	client *repo.Client
}

func NewDirectory(client *repo.Client) *Directory {
	return &Directory{client: client}
}

func (d *Directory) Doctor(ctx context.Context, id uuid.UUID) (*scheduling.Doctor, error) {
	row, err := d.client.Doctor.Get(ctx, id)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, scheduling.ErrNotFound
		}
		return nil, fmt.Errorf("fetching doctor: %w", err)
	}
	return &scheduling.Doctor{
		ID:             row.ID,
		FirstName:      row.FirstName,
		LastName:       row.LastName,
		Specialization: row.Specialization,
		Email:          row.Email,
		Rating:         row.Rating,
	}, nil
}

func (d *Directory) Patient(ctx context.Context, id uuid.UUID) (*scheduling.Patient, error) {
	row, err := d.client.Patient.Get(ctx, id)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, scheduling.ErrNotFound
		}
		return nil, fmt.Errorf("fetching patient: %w", err)
	}
	return &scheduling.Patient{
		ID:    row.ID,
		Name:  row.Name,
		Email: row.Email,
	}, nil
}
