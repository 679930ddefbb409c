package scheduling

import "fmt"

// Status is the appointment lifecycle state.
type Status string

const (
	StatusScheduled      Status = "scheduled"
	StatusRescheduled    Status = "rescheduled"
	StatusCanceled       Status = "canceled"
	StatusCompleted      Status = "completed"
	StatusAbsent         Status = "absent"
	StatusInConsultation Status = "in_consultation"
)

func (s Status) Valid() bool {
	switch s {
	case StatusScheduled, StatusRescheduled, StatusCanceled,
		StatusCompleted, StatusAbsent, StatusInConsultation:
		return true
	}
	return false
}

type action string

const (
	actionCancel            action = "cancel"
	actionReschedule        action = "reschedule"
	actionMarkAbsent        action = "mark_absent"
	actionStartConsultation action = "start_consultation"
	actionComplete          action = "complete"
)

// transitions is the closed state machine: from-state × action → to-state.
// A rescheduled appointment behaves exactly like a scheduled one; canceled,
// completed and absent are terminal.
var transitions = map[Status]map[action]Status{
	StatusScheduled: {
		actionCancel:            StatusCanceled,
		actionReschedule:        StatusRescheduled,
		actionMarkAbsent:        StatusAbsent,
		actionStartConsultation: StatusInConsultation,
		actionComplete:          StatusCompleted,
	},
	StatusRescheduled: {
		actionCancel:            StatusCanceled,
		actionReschedule:        StatusRescheduled,
		actionMarkAbsent:        StatusAbsent,
		actionStartConsultation: StatusInConsultation,
		actionComplete:          StatusCompleted,
	},
	StatusInConsultation: {
		actionComplete: StatusCompleted,
	},
}

// nextStatus resolves the transition table, returning ErrIllegalTransition
// for any pair the table does not allow.
func nextStatus(from Status, a action) (Status, error) {
	if to, ok := transitions[from][a]; ok {
		return to, nil
	}
	return "", fmt.Errorf("%w: cannot %s a %s appointment", ErrIllegalTransition, a, from)
}
