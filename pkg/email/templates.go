package email

import (
	"fmt"
)

// AppointmentEmailData contains the data needed for appointment email templates.
type AppointmentEmailData struct {
	PatientName string
	Email       string
	DoctorName  string
	Date        string // e.g. "2026-03-16"
	TimeSlot    string // e.g. "9:30 AM"
	AppName     string
}

func (d AppointmentEmailData) appName() string {
	if d.AppName == "" {
		return "eCare"
	}
	return d.AppName
}

func (d AppointmentEmailData) patientName() string {
	if d.PatientName == "" {
		return "there"
	}
	return d.PatientName
}

// BuildAppointmentCanceledEmail creates the notification sent to the patient
// when their appointment is canceled.
func BuildAppointmentCanceledEmail(data AppointmentEmailData) Message {
	appName := data.appName()
	patientName := data.patientName()

	subject := fmt.Sprintf("Your appointment on %s has been canceled", data.Date)

	textBody := fmt.Sprintf(`Hi %s,

Your appointment with Dr. %s on %s at %s has been canceled.

If you did not request this cancellation, or you would like to book a new
appointment, please visit your patient dashboard.

Thanks,
The %s Team`,
		patientName, data.DoctorName, data.Date, data.TimeSlot, appName)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #dc2626;">Appointment canceled</h2>
    <p>Hi %s,</p>
    <p>Your appointment with <strong>Dr. %s</strong> on <strong>%s</strong> at <strong>%s</strong> has been canceled.</p>
    <p>If you did not request this cancellation, or you would like to book a new appointment, please visit your patient dashboard.</p>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">Thanks,<br>The %s Team</p>
</body>
</html>`,
		patientName, data.DoctorName, data.Date, data.TimeSlot, appName)

	return Message{
		To:       []string{data.Email},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}

// BuildAppointmentRescheduledEmail creates the notification sent to the
// patient when their appointment is moved to a new date or time slot.
func BuildAppointmentRescheduledEmail(data AppointmentEmailData) Message {
	appName := data.appName()
	patientName := data.patientName()

	subject := fmt.Sprintf("Your appointment has been rescheduled to %s", data.Date)

	textBody := fmt.Sprintf(`Hi %s,

Your appointment with Dr. %s has been rescheduled.

New date: %s
New time: %s

If this time does not work for you, you can reschedule or cancel from your
patient dashboard.

Thanks,
The %s Team`,
		patientName, data.DoctorName, data.Date, data.TimeSlot, appName)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #2563eb;">Appointment rescheduled</h2>
    <p>Hi %s,</p>
    <p>Your appointment with <strong>Dr. %s</strong> has been rescheduled.</p>
    <p style="background-color: #f3f4f6; padding: 10px 15px; border-radius: 4px;">
        New date: <strong>%s</strong><br>
        New time: <strong>%s</strong>
    </p>
    <p>If this time does not work for you, you can reschedule or cancel from your patient dashboard.</p>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">Thanks,<br>The %s Team</p>
</body>
</html>`,
		patientName, data.DoctorName, data.Date, data.TimeSlot, appName)

	return Message{
		To:       []string{data.Email},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}
