// Package notify publishes appointment lifecycle events to NATS for the
// email workers. Publishing is best effort; a broker outage never fails
// the operation that triggered the event.
package notify

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"github.com/ecarehq/ecare_backend/internal/service/scheduling"
)

const (
	SubjectAppointmentCanceled    = "ecare.appointment.canceled"
	SubjectAppointmentRescheduled = "ecare.appointment.rescheduled"
)

// AppointmentEvent is the wire payload for appointment lifecycle events.
type AppointmentEvent struct {
	AppointmentID uuid.UUID `json:"appointment_id"`
	PatientID     uuid.UUID `json:"patient_id"`
	DoctorID      uuid.UUID `json:"doctor_id"`
	Date          time.Time `json:"appointment_date"`
	TimeSlot      string    `json:"time_slot"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// NatsNotifier is the scheduling.Notifier backed by a NATS connection.
type NatsNotifier struct {
	conn   *nats.Conn
	logger *slog.Logger
}

func NewNatsNotifier(conn *nats.Conn, logger *slog.Logger) *NatsNotifier {
	return &NatsNotifier{conn: conn, logger: logger}
}

func (n *NatsNotifier) AppointmentCanceled(ctx context.Context, appt *scheduling.Appointment) {
	n.publish(ctx, SubjectAppointmentCanceled, appt)
}

func (n *NatsNotifier) AppointmentRescheduled(ctx context.Context, appt *scheduling.Appointment) {
	n.publish(ctx, SubjectAppointmentRescheduled, appt)
}

func (n *NatsNotifier) publish(_ context.Context, subject string, appt *scheduling.Appointment) {
	evt := AppointmentEvent{
		AppointmentID: appt.ID,
		PatientID:     appt.PatientID,
		DoctorID:      appt.DoctorID,
		Date:          appt.Date,
		TimeSlot:      appt.TimeSlot,
		OccurredAt:    time.Now(),
	}

	payload, err := json.Marshal(evt)
	if err != nil {
		n.logger.Error("marshaling appointment event", "subject", subject, "error", err)
		return
	}
	if err := n.conn.Publish(subject, payload); err != nil {
		n.logger.Error("publishing appointment event",
			"subject", subject,
			"appointment_id", appt.ID,
			"error", err,
		)
		return
	}

	n.logger.Debug("appointment event published", "subject", subject, "appointment_id", appt.ID)
}
