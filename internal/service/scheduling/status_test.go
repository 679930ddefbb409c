package scheduling

import (
	"errors"
	"testing"
)

func TestNextStatus(t *testing.T) {
	tests := []struct {
		from    Status
		action  action
		want    Status
		wantErr bool
	}{
		{StatusScheduled, actionCancel, StatusCanceled, false},
		{StatusScheduled, actionReschedule, StatusRescheduled, false},
		{StatusScheduled, actionMarkAbsent, StatusAbsent, false},
		{StatusScheduled, actionStartConsultation, StatusInConsultation, false},
		{StatusScheduled, actionComplete, StatusCompleted, false},

		{StatusRescheduled, actionCancel, StatusCanceled, false},
		{StatusRescheduled, actionReschedule, StatusRescheduled, false},
		{StatusRescheduled, actionComplete, StatusCompleted, false},

		{StatusInConsultation, actionComplete, StatusCompleted, false},
		{StatusInConsultation, actionCancel, "", true},
		{StatusInConsultation, actionReschedule, "", true},

		{StatusCanceled, actionReschedule, "", true},
		{StatusCompleted, actionCancel, "", true},
		{StatusCompleted, actionComplete, "", true},
		{StatusAbsent, actionStartConsultation, "", true},
	}
	for _, tt := range tests {
		t.Run(string(tt.from)+"/"+string(tt.action), func(t *testing.T) {
			got, err := nextStatus(tt.from, tt.action)
			if tt.wantErr {
				if !errors.Is(err, ErrIllegalTransition) {
					t.Fatalf("nextStatus(%s, %s) error = %v, want ErrIllegalTransition", tt.from, tt.action, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("nextStatus(%s, %s) error = %v", tt.from, tt.action, err)
			}
			if got != tt.want {
				t.Errorf("nextStatus(%s, %s) = %s, want %s", tt.from, tt.action, got, tt.want)
			}
		})
	}
}

func TestStatusValid(t *testing.T) {
	for _, s := range []Status{
		StatusScheduled, StatusRescheduled, StatusCanceled,
		StatusCompleted, StatusAbsent, StatusInConsultation,
	} {
		if !s.Valid() {
			t.Errorf("%s.Valid() = false, want true", s)
		}
	}
	if Status("booked").Valid() {
		t.Error(`Status("booked").Valid() = true, want false`)
	}
}
