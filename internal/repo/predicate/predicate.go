// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Appointment is the predicate function for appointment builders.
type Appointment func(*sql.Selector)

// Doctor is the predicate function for doctor builders.
type Doctor func(*sql.Selector)

// DoctorLeave is the predicate function for doctorleave builders.
type DoctorLeave func(*sql.Selector)

// Patient is the predicate function for patient builders.
type Patient func(*sql.Selector)
