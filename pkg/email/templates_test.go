package email

import (
	"strings"
	"testing"
)

func TestBuildAppointmentCanceledEmail(t *testing.T) {
	msg := BuildAppointmentCanceledEmail(AppointmentEmailData{
		PatientName: "Jordan Lee",
		Email:       "jordan@example.com",
		DoctorName:  "Sam Carter",
		Date:        "2026-03-16",
		TimeSlot:    "9:30 AM",
	})

	if len(msg.To) != 1 || msg.To[0] != "jordan@example.com" {
		t.Errorf("To = %v, want [jordan@example.com]", msg.To)
	}
	if !strings.Contains(msg.Subject, "canceled") {
		t.Errorf("Subject = %q, want cancellation subject", msg.Subject)
	}
	for _, body := range []string{msg.TextBody, msg.HTMLBody} {
		for _, want := range []string{"Jordan Lee", "Sam Carter", "2026-03-16", "9:30 AM"} {
			if !strings.Contains(body, want) {
				t.Errorf("body missing %q", want)
			}
		}
	}
}

func TestBuildAppointmentRescheduledEmail(t *testing.T) {
	msg := BuildAppointmentRescheduledEmail(AppointmentEmailData{
		Email:      "jordan@example.com",
		DoctorName: "Sam Carter",
		Date:       "2026-03-20",
		TimeSlot:   "2:00 PM",
		AppName:    "ClinicX",
	})

	if !strings.Contains(msg.Subject, "rescheduled") {
		t.Errorf("Subject = %q, want reschedule subject", msg.Subject)
	}
	// Empty patient name falls back to a generic greeting.
	if !strings.Contains(msg.TextBody, "Hi there") {
		t.Errorf("TextBody missing fallback greeting:\n%s", msg.TextBody)
	}
	if !strings.Contains(msg.TextBody, "ClinicX") {
		t.Error("TextBody missing app name override")
	}
}
