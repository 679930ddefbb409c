// Code generated by ent, DO NOT EDIT.

package repo

import (
	"time"

	"github.com/ecarehq/ecare_backend/internal/repo/appointment"
	"github.com/ecarehq/ecare_backend/internal/repo/doctor"
	"github.com/ecarehq/ecare_backend/internal/repo/doctorleave"
	"github.com/ecarehq/ecare_backend/internal/repo/patient"
	"github.com/ecarehq/ecare_backend/internal/schema"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	appointmentMixin := schema.Appointment{}.Mixin()
	appointmentMixinFields0 := appointmentMixin[0].Fields()
	_ = appointmentMixinFields0
	appointmentMixinFields1 := appointmentMixin[1].Fields()
	_ = appointmentMixinFields1
	appointmentFields := schema.Appointment{}.Fields()
	_ = appointmentFields
	// appointmentDescCreatedAt is the schema descriptor for created_at field.
	appointmentDescCreatedAt := appointmentMixinFields1[0].Descriptor()
	// appointment.DefaultCreatedAt holds the default value on creation for the created_at field.
	appointment.DefaultCreatedAt = appointmentDescCreatedAt.Default.(func() time.Time)
	// appointmentDescUpdatedAt is the schema descriptor for updated_at field.
	appointmentDescUpdatedAt := appointmentMixinFields1[1].Descriptor()
	// appointment.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	appointment.DefaultUpdatedAt = appointmentDescUpdatedAt.Default.(func() time.Time)
	// appointment.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	appointment.UpdateDefaultUpdatedAt = appointmentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// appointmentDescTimeSlot is the schema descriptor for time_slot field.
	appointmentDescTimeSlot := appointmentFields[3].Descriptor()
	// appointment.TimeSlotValidator is a validator for the "time_slot" field. It is called by the builders before save.
	appointment.TimeSlotValidator = appointmentDescTimeSlot.Validators[0].(func(string) error)
	// appointmentDescRating is the schema descriptor for rating field.
	appointmentDescRating := appointmentFields[6].Descriptor()
	// appointment.RatingValidator is a validator for the "rating" field. It is called by the builders before save.
	appointment.RatingValidator = appointmentDescRating.Validators[0].(func(int) error)
	// appointmentDescID is the schema descriptor for id field.
	appointmentDescID := appointmentMixinFields0[0].Descriptor()
	// appointment.DefaultID holds the default value on creation for the id field.
	appointment.DefaultID = appointmentDescID.Default.(func() uuid.UUID)
	doctorMixin := schema.Doctor{}.Mixin()
	doctorMixinFields0 := doctorMixin[0].Fields()
	_ = doctorMixinFields0
	doctorMixinFields1 := doctorMixin[1].Fields()
	_ = doctorMixinFields1
	doctorFields := schema.Doctor{}.Fields()
	_ = doctorFields
	// doctorDescCreatedAt is the schema descriptor for created_at field.
	doctorDescCreatedAt := doctorMixinFields1[0].Descriptor()
	// doctor.DefaultCreatedAt holds the default value on creation for the created_at field.
	doctor.DefaultCreatedAt = doctorDescCreatedAt.Default.(func() time.Time)
	// doctorDescUpdatedAt is the schema descriptor for updated_at field.
	doctorDescUpdatedAt := doctorMixinFields1[1].Descriptor()
	// doctor.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	doctor.DefaultUpdatedAt = doctorDescUpdatedAt.Default.(func() time.Time)
	// doctor.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	doctor.UpdateDefaultUpdatedAt = doctorDescUpdatedAt.UpdateDefault.(func() time.Time)
	// doctorDescFirstName is the schema descriptor for first_name field.
	doctorDescFirstName := doctorFields[0].Descriptor()
	// doctor.FirstNameValidator is a validator for the "first_name" field. It is called by the builders before save.
	doctor.FirstNameValidator = doctorDescFirstName.Validators[0].(func(string) error)
	// doctorDescLastName is the schema descriptor for last_name field.
	doctorDescLastName := doctorFields[1].Descriptor()
	// doctor.LastNameValidator is a validator for the "last_name" field. It is called by the builders before save.
	doctor.LastNameValidator = doctorDescLastName.Validators[0].(func(string) error)
	// doctorDescSpecialization is the schema descriptor for specialization field.
	doctorDescSpecialization := doctorFields[2].Descriptor()
	// doctor.DefaultSpecialization holds the default value on creation for the specialization field.
	doctor.DefaultSpecialization = doctorDescSpecialization.Default.(string)
	// doctorDescEmail is the schema descriptor for email field.
	doctorDescEmail := doctorFields[3].Descriptor()
	// doctor.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	doctor.EmailValidator = doctorDescEmail.Validators[0].(func(string) error)
	// doctorDescRating is the schema descriptor for rating field.
	doctorDescRating := doctorFields[4].Descriptor()
	// doctor.DefaultRating holds the default value on creation for the rating field.
	doctor.DefaultRating = doctorDescRating.Default.(float64)
	// doctorDescID is the schema descriptor for id field.
	doctorDescID := doctorMixinFields0[0].Descriptor()
	// doctor.DefaultID holds the default value on creation for the id field.
	doctor.DefaultID = doctorDescID.Default.(func() uuid.UUID)
	doctorleaveMixin := schema.DoctorLeave{}.Mixin()
	doctorleaveMixinFields0 := doctorleaveMixin[0].Fields()
	_ = doctorleaveMixinFields0
	doctorleaveMixinFields1 := doctorleaveMixin[1].Fields()
	_ = doctorleaveMixinFields1
	doctorleaveFields := schema.DoctorLeave{}.Fields()
	_ = doctorleaveFields
	// doctorleaveDescCreatedAt is the schema descriptor for created_at field.
	doctorleaveDescCreatedAt := doctorleaveMixinFields1[0].Descriptor()
	// doctorleave.DefaultCreatedAt holds the default value on creation for the created_at field.
	doctorleave.DefaultCreatedAt = doctorleaveDescCreatedAt.Default.(func() time.Time)
	// doctorleaveDescUpdatedAt is the schema descriptor for updated_at field.
	doctorleaveDescUpdatedAt := doctorleaveMixinFields1[1].Descriptor()
	// doctorleave.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	doctorleave.DefaultUpdatedAt = doctorleaveDescUpdatedAt.Default.(func() time.Time)
	// doctorleave.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	doctorleave.UpdateDefaultUpdatedAt = doctorleaveDescUpdatedAt.UpdateDefault.(func() time.Time)
	// doctorleaveDescReason is the schema descriptor for reason field.
	doctorleaveDescReason := doctorleaveFields[3].Descriptor()
	// doctorleave.ReasonValidator is a validator for the "reason" field. It is called by the builders before save.
	doctorleave.ReasonValidator = doctorleaveDescReason.Validators[0].(func(string) error)
	// doctorleaveDescID is the schema descriptor for id field.
	doctorleaveDescID := doctorleaveMixinFields0[0].Descriptor()
	// doctorleave.DefaultID holds the default value on creation for the id field.
	doctorleave.DefaultID = doctorleaveDescID.Default.(func() uuid.UUID)
	patientMixin := schema.Patient{}.Mixin()
	patientMixinFields0 := patientMixin[0].Fields()
	_ = patientMixinFields0
	patientMixinFields1 := patientMixin[1].Fields()
	_ = patientMixinFields1
	patientFields := schema.Patient{}.Fields()
	_ = patientFields
	// patientDescCreatedAt is the schema descriptor for created_at field.
	patientDescCreatedAt := patientMixinFields1[0].Descriptor()
	// patient.DefaultCreatedAt holds the default value on creation for the created_at field.
	patient.DefaultCreatedAt = patientDescCreatedAt.Default.(func() time.Time)
	// patientDescUpdatedAt is the schema descriptor for updated_at field.
	patientDescUpdatedAt := patientMixinFields1[1].Descriptor()
	// patient.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	patient.DefaultUpdatedAt = patientDescUpdatedAt.Default.(func() time.Time)
	// patient.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	patient.UpdateDefaultUpdatedAt = patientDescUpdatedAt.UpdateDefault.(func() time.Time)
	// patientDescName is the schema descriptor for name field.
	patientDescName := patientFields[0].Descriptor()
	// patient.NameValidator is a validator for the "name" field. It is called by the builders before save.
	patient.NameValidator = patientDescName.Validators[0].(func(string) error)
	// patientDescEmail is the schema descriptor for email field.
	patientDescEmail := patientFields[1].Descriptor()
	// patient.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	patient.EmailValidator = patientDescEmail.Validators[0].(func(string) error)
	// patientDescID is the schema descriptor for id field.
	patientDescID := patientMixinFields0[0].Descriptor()
	// patient.DefaultID holds the default value on creation for the id field.
	patient.DefaultID = patientDescID.Default.(func() uuid.UUID)
}
