package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// DoctorLeave is a doctor's absence request over an inclusive date range.
type DoctorLeave struct {
	ent.Schema
}

func (DoctorLeave) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (DoctorLeave) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("doctor_id", uuid.UUID{}),
		field.Time("start_date").
			SchemaType(map[string]string{
				dialect.Postgres: "date",
			}),
		field.Time("end_date").
			SchemaType(map[string]string{
				dialect.Postgres: "date",
			}),
		field.String("reason").
			NotEmpty(),
		field.Enum("status").
			Values("pending", "approved", "rejected").
			Default("pending"),
	}
}

func (DoctorLeave) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("doctor", Doctor.Type).
			Ref("leaves").
			Field("doctor_id").
			Required().
			Unique(),
	}
}

func (DoctorLeave) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("doctor_id", "start_date", "end_date"),
		index.Fields("doctor_id", "status"),
	}
}
