package app

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"
	"go.uber.org/fx"

	"github.com/ecarehq/ecare_backend/internal/notify"
	"github.com/ecarehq/ecare_backend/internal/service/scheduling"
	"github.com/ecarehq/ecare_backend/pkg/email"
)

// WorkerModule registers all NATS event workers.
var WorkerModule = fx.Module("workers",
	fx.Invoke(RegisterWorkers),
)

type WorkerParams struct {
	fx.In

	Lc        fx.Lifecycle
	NC        *nats.Conn
	Directory scheduling.Directory
	Email     *email.Client
	Logger    *slog.Logger
}

func RegisterWorkers(p WorkerParams) {
	p.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			startEmailWorker(p.NC, p.Directory, p.Email, p.Logger)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			// Drain handled by ProvideNatsClient
			return nil
		},
	})
}

// ---------------------------------------------------------------------------
// email_worker
// ---------------------------------------------------------------------------

const emailSendTimeout = 10 * time.Second

// startEmailWorker notifies patients about canceled and rescheduled
// appointments. Sends are best effort; failures are logged and dropped.
func startEmailWorker(nc *nats.Conn, dir scheduling.Directory, client *email.Client, logger *slog.Logger) {
	build := func(subject string) func(notify.AppointmentEvent, email.AppointmentEmailData) email.Message {
		if subject == notify.SubjectAppointmentCanceled {
			return func(_ notify.AppointmentEvent, data email.AppointmentEmailData) email.Message {
				return email.BuildAppointmentCanceledEmail(data)
			}
		}
		return func(_ notify.AppointmentEvent, data email.AppointmentEmailData) email.Message {
			return email.BuildAppointmentRescheduledEmail(data)
		}
	}

	for _, subject := range []string{
		notify.SubjectAppointmentCanceled,
		notify.SubjectAppointmentRescheduled,
	} {
		buildMsg := build(subject)
		_, err := nc.Subscribe(subject, func(msg *nats.Msg) {
			var evt notify.AppointmentEvent
			if err := json.Unmarshal(msg.Data, &evt); err != nil {
				logger.Warn("email_worker: bad event payload", "subject", msg.Subject, "err", err)
				return
			}

			ctx, cancel := context.WithTimeout(context.Background(), emailSendTimeout)
			defer cancel()

			patient, err := dir.Patient(ctx, evt.PatientID)
			if err != nil {
				logger.Warn("email_worker: patient not found", "patient_id", evt.PatientID, "err", err)
				return
			}
			doctor, err := dir.Doctor(ctx, evt.DoctorID)
			if err != nil {
				logger.Warn("email_worker: doctor not found", "doctor_id", evt.DoctorID, "err", err)
				return
			}

			data := email.AppointmentEmailData{
				PatientName: patient.Name,
				Email:       patient.Email,
				DoctorName:  doctor.FullName(),
				Date:        evt.Date.Format(time.DateOnly),
				TimeSlot:    evt.TimeSlot,
			}

			if err := client.Send(ctx, buildMsg(evt, data)); err != nil {
				logger.Warn("email_worker: send failed",
					"subject", msg.Subject,
					"appointment_id", evt.AppointmentID,
					"err", err,
				)
				return
			}

			logger.Debug("email_worker: notification sent",
				"subject", msg.Subject,
				"appointment_id", evt.AppointmentID,
			)
		})
		if err != nil {
			logger.Error("email_worker: subscribe failed", "subject", subject, "err", err)
		}
	}

	logger.Info("email_worker: started")
}
