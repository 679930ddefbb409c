package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Medicine is one prescribed medication line inside the prescription JSON.
type Medicine struct {
	Name   string `json:"name"`
	Dosage string `json:"dosage"`
}

// PrescribedTest is one ordered lab test inside the prescription JSON.
type PrescribedTest struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Result string    `json:"result"`
}

// Prescription is the consultation outcome stored as a JSON column.
type Prescription struct {
	Medicines []Medicine       `json:"medicines"`
	Tests     []PrescribedTest `json:"tests"`
	Notes     string           `json:"notes"`
}

// Appointment is one booking of a doctor-day-slot by a patient.
type Appointment struct {
	ent.Schema
}

func (Appointment) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Appointment) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("patient_id", uuid.UUID{}),
		field.UUID("doctor_id", uuid.UUID{}),
		field.Time("appointment_date").
			SchemaType(map[string]string{
				dialect.Postgres: "date",
			}),
		field.String("time_slot").
			NotEmpty(),
		field.Enum("status").
			Values(
				"scheduled",
				"rescheduled",
				"canceled",
				"completed",
				"absent",
				"in_consultation",
			).
			Default("scheduled"),
		field.JSON("prescription", &Prescription{}).
			Optional(),
		field.Int("rating").
			Range(1, 5).
			Optional().
			Nillable(),
		field.String("review").
			Optional().
			Nillable(),
	}
}

func (Appointment) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("patient", Patient.Type).
			Ref("appointments").
			Field("patient_id").
			Required().
			Unique(),
		edge.From("doctor", Doctor.Type).
			Ref("appointments").
			Field("doctor_id").
			Required().
			Unique(),
	}
}

func (Appointment) Indexes() []ent.Index {
	return []ent.Index{
		// One live booking per doctor-day-slot. Canceled rows do not hold
		// the slot, so the constraint is a partial index.
		index.Fields("doctor_id", "appointment_date", "time_slot").
			Unique().
			Annotations(entsql.IndexWhere("status != 'canceled'")),
		index.Fields("patient_id", "status"),
		index.Fields("status"),
	}
}
