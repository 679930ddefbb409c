package leave

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
)

// memStore mirrors the SQL store's contracts, including the any-status
// overlap rule on Create.
type memStore struct {
	mu     sync.Mutex
	leaves map[uuid.UUID]*Leave
	order  []uuid.UUID
}

func newMemStore() *memStore {
	return &memStore{leaves: make(map[uuid.UUID]*Leave)}
}

func (m *memStore) Create(_ context.Context, doctorID uuid.UUID, start, end time.Time, reason string) (*Leave, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, l := range m.leaves {
		if l.DoctorID == doctorID && !l.StartDate.After(end) && !l.EndDate.Before(start) {
			return nil, ErrOverlap
		}
	}
	l := &Leave{
		ID:        uuid.New(),
		DoctorID:  doctorID,
		StartDate: start,
		EndDate:   end,
		Reason:    reason,
		Status:    StatusPending,
		CreatedAt: time.Now(),
	}
	m.leaves[l.ID] = l
	m.order = append(m.order, l.ID)
	cp := *l
	return &cp, nil
}

func (m *memStore) Get(_ context.Context, id uuid.UUID) (*Leave, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	l, ok := m.leaves[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *l
	return &cp, nil
}

func (m *memStore) ListByDoctor(_ context.Context, doctorID uuid.UUID) ([]*Leave, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []*Leave
	for _, id := range m.order {
		if l := m.leaves[id]; l.DoctorID == doctorID {
			cp := *l
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *memStore) ListAll(_ context.Context) ([]*Leave, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []*Leave
	for _, id := range m.order {
		cp := *m.leaves[id]
		out = append(out, &cp)
	}
	return out, nil
}

func (m *memStore) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.leaves[id]; !ok {
		return ErrNotFound
	}
	delete(m.leaves, id)
	for i, oid := range m.order {
		if oid == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

func (m *memStore) SetStatus(_ context.Context, id uuid.UUID, status Status) (*Leave, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	l, ok := m.leaves[id]
	if !ok {
		return nil, ErrNotFound
	}
	l.Status = status
	cp := *l
	return &cp, nil
}

func (m *memStore) HasApprovedLeave(_ context.Context, doctorID uuid.UUID, date time.Time) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, l := range m.leaves {
		if l.DoctorID == doctorID && l.Status == StatusApproved &&
			!l.StartDate.After(date) && !l.EndDate.Before(date) {
			return true, nil
		}
	}
	return false, nil
}

func newTestService(t *testing.T) (Service, *memStore) {
	t.Helper()

	store := newMemStore()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(store, logger), store
}

func day(d int) time.Time {
	return time.Date(2026, 4, d, 0, 0, 0, 0, time.UTC)
}

func TestApply(t *testing.T) {
	svc, _ := newTestService(t)
	doctor := uuid.New()

	l, err := svc.Apply(context.Background(), doctor, day(10), day(12), "conference")
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if l.Status != StatusPending {
		t.Errorf("Status = %s, want %s", l.Status, StatusPending)
	}
	if !l.StartDate.Equal(day(10)) || !l.EndDate.Equal(day(12)) {
		t.Errorf("range = [%v, %v], want [%v, %v]", l.StartDate, l.EndDate, day(10), day(12))
	}
}

func TestApplyValidation(t *testing.T) {
	svc, _ := newTestService(t)
	doctor := uuid.New()

	tests := []struct {
		name    string
		doctor  uuid.UUID
		start   time.Time
		end     time.Time
		reason  string
		wantErr error
	}{
		{"missing doctor", uuid.Nil, day(10), day(12), "x", ErrMissingFields},
		{"missing start", doctor, time.Time{}, day(12), "x", ErrMissingFields},
		{"missing end", doctor, day(10), time.Time{}, "x", ErrMissingFields},
		{"missing reason", doctor, day(10), day(12), "", ErrMissingFields},
		{"start after end", doctor, day(12), day(10), "x", ErrInvalidDateRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Apply(context.Background(), tt.doctor, tt.start, tt.end, tt.reason); !errors.Is(err, tt.wantErr) {
				t.Errorf("Apply() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestApplyOverlap(t *testing.T) {
	svc, _ := newTestService(t)
	doctor := uuid.New()

	if _, err := svc.Apply(context.Background(), doctor, day(10), day(12), "conference"); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	tests := []struct {
		name    string
		start   time.Time
		end     time.Time
		wantErr error
	}{
		{"inside", day(11), day(11), ErrOverlap},
		{"spans", day(9), day(13), ErrOverlap},
		{"touches start", day(8), day(10), ErrOverlap},
		{"touches end", day(12), day(14), ErrOverlap},
		{"before", day(7), day(9), nil},
		{"after", day(13), day(15), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Apply(context.Background(), doctor, tt.start, tt.end, "more leave")
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Apply() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestOverlapChecksAnyStatus(t *testing.T) {
	svc, store := newTestService(t)
	doctor := uuid.New()

	l, err := svc.Apply(context.Background(), doctor, day(10), day(12), "conference")
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if _, err := store.SetStatus(context.Background(), l.ID, StatusRejected); err != nil {
		t.Fatalf("SetStatus() error = %v", err)
	}

	// A rejected leave still blocks overlapping requests until canceled.
	if _, err := svc.Apply(context.Background(), doctor, day(11), day(13), "retry"); !errors.Is(err, ErrOverlap) {
		t.Errorf("Apply() error = %v, want ErrOverlap", err)
	}

	// Another doctor is unaffected.
	if _, err := svc.Apply(context.Background(), uuid.New(), day(10), day(12), "also away"); err != nil {
		t.Errorf("Apply(other doctor) error = %v", err)
	}
}

func TestCancelFreesRange(t *testing.T) {
	svc, _ := newTestService(t)
	doctor := uuid.New()

	l, err := svc.Apply(context.Background(), doctor, day(10), day(12), "conference")
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if err := svc.Cancel(context.Background(), l.ID); err != nil {
		t.Fatalf("Cancel() error = %v", err)
	}
	if _, err := svc.Apply(context.Background(), doctor, day(10), day(12), "again"); err != nil {
		t.Errorf("Apply() after cancel error = %v", err)
	}

	if err := svc.Cancel(context.Background(), uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Errorf("Cancel(unknown) error = %v, want ErrNotFound", err)
	}
}

func TestSetStatus(t *testing.T) {
	svc, _ := newTestService(t)
	doctor := uuid.New()

	l, err := svc.Apply(context.Background(), doctor, day(10), day(12), "conference")
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	got, err := svc.SetStatus(context.Background(), l.ID, StatusApproved)
	if err != nil {
		t.Fatalf("SetStatus() error = %v", err)
	}
	if got.Status != StatusApproved {
		t.Errorf("Status = %s, want %s", got.Status, StatusApproved)
	}

	if _, err := svc.SetStatus(context.Background(), l.ID, Status("maybe")); !errors.Is(err, ErrInvalidStatus) {
		t.Errorf("SetStatus(maybe) error = %v, want ErrInvalidStatus", err)
	}
	if _, err := svc.SetStatus(context.Background(), uuid.New(), StatusApproved); !errors.Is(err, ErrNotFound) {
		t.Errorf("SetStatus(unknown) error = %v, want ErrNotFound", err)
	}
}

func TestOnApprovedLeave(t *testing.T) {
	svc, _ := newTestService(t)
	doctor := uuid.New()

	l, err := svc.Apply(context.Background(), doctor, day(10), day(12), "conference")
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	// Pending leave does not block booking.
	on, err := svc.OnApprovedLeave(context.Background(), doctor, day(11))
	if err != nil {
		t.Fatalf("OnApprovedLeave() error = %v", err)
	}
	if on {
		t.Error("OnApprovedLeave(pending) = true, want false")
	}

	if _, err := svc.SetStatus(context.Background(), l.ID, StatusApproved); err != nil {
		t.Fatalf("SetStatus() error = %v", err)
	}

	tests := []struct {
		name string
		date time.Time
		want bool
	}{
		{"first day", day(10), true},
		{"middle", day(11), true},
		{"last day", day(12), true},
		{"before", day(9), false},
		{"after", day(13), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			on, err := svc.OnApprovedLeave(context.Background(), doctor, tt.date)
			if err != nil {
				t.Fatalf("OnApprovedLeave() error = %v", err)
			}
			if on != tt.want {
				t.Errorf("OnApprovedLeave(%s) = %v, want %v", tt.date.Format(time.DateOnly), on, tt.want)
			}
		})
	}
}
