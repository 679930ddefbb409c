package scheduling

import "errors"

var (
	ErrMissingFields     = errors.New("all fields are required")
	ErrUnknownTimeSlot   = errors.New("unknown time slot")
	ErrPastTimeSlot      = errors.New("cannot book an appointment for a past time slot")
	ErrDoctorOnLeave     = errors.New("doctor is on leave on the selected date")
	ErrSlotTaken         = errors.New("time slot already booked")
	ErrNotFound          = errors.New("appointment not found")
	ErrTestNotFound      = errors.New("test not found on appointment")
	ErrInvalidRating     = errors.New("rating must be between 1 and 5")
	ErrIllegalTransition = errors.New("illegal appointment status transition")
)
