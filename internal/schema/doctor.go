package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// Doctor holds the clinic doctor profile the scheduler needs.
type Doctor struct {
	ent.Schema
}

func (Doctor) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Doctor) Fields() []ent.Field {
	return []ent.Field{
		field.String("first_name").
			NotEmpty(),
		field.String("last_name").
			NotEmpty(),
		field.String("specialization").
			Default(""),
		field.String("email").
			NotEmpty().
			Unique(),
		// Mean of appointment review ratings, recomputed on each review.
		field.Float("rating").
			Default(0),
	}
}

func (Doctor) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("appointments", Appointment.Type),
		edge.To("leaves", DoctorLeave.Type),
	}
}
