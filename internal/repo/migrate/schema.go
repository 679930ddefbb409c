// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AppointmentsColumns holds the columns for the "appointments" table.
	AppointmentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "appointment_date", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "time_slot", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"scheduled", "rescheduled", "canceled", "completed", "absent", "in_consultation"}, Default: "scheduled"},
		{Name: "prescription", Type: field.TypeJSON, Nullable: true},
		{Name: "rating", Type: field.TypeInt, Nullable: true},
		{Name: "review", Type: field.TypeString, Nullable: true},
		{Name: "doctor_id", Type: field.TypeUUID},
		{Name: "patient_id", Type: field.TypeUUID},
	}
	// AppointmentsTable holds the schema information for the "appointments" table.
	AppointmentsTable = &schema.Table{
		Name:       "appointments",
		Columns:    AppointmentsColumns,
		PrimaryKey: []*schema.Column{AppointmentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "appointments_doctors_appointments",
				Columns:    []*schema.Column{AppointmentsColumns[9]},
				RefColumns: []*schema.Column{DoctorsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "appointments_patients_appointments",
				Columns:    []*schema.Column{AppointmentsColumns[10]},
				RefColumns: []*schema.Column{PatientsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "appointment_doctor_id_appointment_date_time_slot",
				Unique:  true,
				Columns: []*schema.Column{AppointmentsColumns[9], AppointmentsColumns[3], AppointmentsColumns[4]},
				Annotation: &entsql.IndexAnnotation{
					Where: "status != 'canceled'",
				},
			},
			{
				Name:    "appointment_patient_id_status",
				Unique:  false,
				Columns: []*schema.Column{AppointmentsColumns[10], AppointmentsColumns[5]},
			},
			{
				Name:    "appointment_status",
				Unique:  false,
				Columns: []*schema.Column{AppointmentsColumns[5]},
			},
		},
	}
	// DoctorsColumns holds the columns for the "doctors" table.
	DoctorsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "first_name", Type: field.TypeString},
		{Name: "last_name", Type: field.TypeString},
		{Name: "specialization", Type: field.TypeString, Default: ""},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "rating", Type: field.TypeFloat64, Default: 0},
	}
	// DoctorsTable holds the schema information for the "doctors" table.
	DoctorsTable = &schema.Table{
		Name:       "doctors",
		Columns:    DoctorsColumns,
		PrimaryKey: []*schema.Column{DoctorsColumns[0]},
	}
	// DoctorLeavesColumns holds the columns for the "doctor_leaves" table.
	DoctorLeavesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "start_date", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "end_date", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "reason", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "approved", "rejected"}, Default: "pending"},
		{Name: "doctor_id", Type: field.TypeUUID},
	}
	// DoctorLeavesTable holds the schema information for the "doctor_leaves" table.
	DoctorLeavesTable = &schema.Table{
		Name:       "doctor_leaves",
		Columns:    DoctorLeavesColumns,
		PrimaryKey: []*schema.Column{DoctorLeavesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "doctor_leaves_doctors_leaves",
				Columns:    []*schema.Column{DoctorLeavesColumns[7]},
				RefColumns: []*schema.Column{DoctorsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "doctorleave_doctor_id_start_date_end_date",
				Unique:  false,
				Columns: []*schema.Column{DoctorLeavesColumns[7], DoctorLeavesColumns[3], DoctorLeavesColumns[4]},
			},
			{
				Name:    "doctorleave_doctor_id_status",
				Unique:  false,
				Columns: []*schema.Column{DoctorLeavesColumns[7], DoctorLeavesColumns[6]},
			},
		},
	}
	// PatientsColumns holds the columns for the "patients" table.
	PatientsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString},
		{Name: "email", Type: field.TypeString, Unique: true},
	}
	// PatientsTable holds the schema information for the "patients" table.
	PatientsTable = &schema.Table{
		Name:       "patients",
		Columns:    PatientsColumns,
		PrimaryKey: []*schema.Column{PatientsColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AppointmentsTable,
		DoctorsTable,
		DoctorLeavesTable,
		PatientsTable,
	}
)

func init() {
	AppointmentsTable.ForeignKeys[0].RefTable = DoctorsTable
	AppointmentsTable.ForeignKeys[1].RefTable = PatientsTable
	DoctorLeavesTable.ForeignKeys[0].RefTable = DoctorsTable
}
