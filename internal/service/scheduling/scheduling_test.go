package scheduling

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
)

var testNow = time.Date(2026, 3, 16, 11, 15, 0, 0, time.UTC) // a Monday, mid-morning

func newTestService(t *testing.T) (Service, *memStore, *memLeaves, *recordNotifier) {
	t.Helper()

	store := newMemStore()
	leaves := newMemLeaves()
	notifier := &recordNotifier{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := New(store, leaves, MustCatalog(), notifier, logger,
		WithClock(func() time.Time { return testNow }))
	return svc, store, leaves, notifier
}

func mustCreate(t *testing.T, svc Service, patientID, doctorID uuid.UUID, date time.Time, slot string) *Appointment {
	t.Helper()

	appt, err := svc.Create(context.Background(), CreateRequest{
		PatientID: patientID,
		DoctorID:  doctorID,
		Date:      date,
		TimeSlot:  slot,
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	return appt
}

func TestCreate(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	patient, doctor := uuid.New(), uuid.New()
	tomorrow := testNow.AddDate(0, 0, 1)

	appt := mustCreate(t, svc, patient, doctor, tomorrow, "9:30 AM")

	if appt.Status != StatusScheduled {
		t.Errorf("Status = %s, want %s", appt.Status, StatusScheduled)
	}
	if want := DateOnly(tomorrow); !appt.Date.Equal(want) {
		t.Errorf("Date = %v, want %v", appt.Date, want)
	}
	if appt.ID == uuid.Nil {
		t.Error("ID is nil")
	}
}

func TestCreateValidation(t *testing.T) {
	svc, _, leaves, _ := newTestService(t)
	patient, doctor := uuid.New(), uuid.New()
	tomorrow := testNow.AddDate(0, 0, 1)

	onLeaveDoctor := uuid.New()
	leaves.block(onLeaveDoctor, DateOnly(tomorrow))

	tests := []struct {
		name    string
		req     CreateRequest
		wantErr error
	}{
		{
			"missing patient",
			CreateRequest{DoctorID: doctor, Date: tomorrow, TimeSlot: "9:30 AM"},
			ErrMissingFields,
		},
		{
			"missing doctor",
			CreateRequest{PatientID: patient, Date: tomorrow, TimeSlot: "9:30 AM"},
			ErrMissingFields,
		},
		{
			"missing date",
			CreateRequest{PatientID: patient, DoctorID: doctor, TimeSlot: "9:30 AM"},
			ErrMissingFields,
		},
		{
			"missing slot",
			CreateRequest{PatientID: patient, DoctorID: doctor, Date: tomorrow},
			ErrMissingFields,
		},
		{
			"unknown slot",
			CreateRequest{PatientID: patient, DoctorID: doctor, Date: tomorrow, TimeSlot: "8:00 AM"},
			ErrUnknownTimeSlot,
		},
		{
			"doctor on leave",
			CreateRequest{PatientID: patient, DoctorID: onLeaveDoctor, Date: tomorrow, TimeSlot: "9:30 AM"},
			ErrDoctorOnLeave,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Create(context.Background(), tt.req); !errors.Is(err, tt.wantErr) {
				t.Errorf("Create() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestCreateSameDayPastSlot(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	patient, doctor := uuid.New(), uuid.New()

	// Clock is pinned at 11:15 AM.
	tests := []struct {
		name    string
		date    time.Time
		slot    string
		wantErr error
	}{
		{"earlier today", testNow, "10:30 AM", ErrPastTimeSlot},
		{"later today", testNow, "11:30 AM", nil},
		{"afternoon today", testNow, "2:00 PM", nil},
		{"past slot tomorrow", testNow.AddDate(0, 0, 1), "9:30 AM", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), CreateRequest{
				PatientID: patient,
				DoctorID:  doctor,
				Date:      tt.date,
				TimeSlot:  tt.slot,
			})
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Create() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestCreateSlotExactlyNow(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	// A slot starting at the current instant counts as past.
	at1130 := time.Date(2026, 3, 16, 11, 30, 0, 0, time.UTC)
	store := newMemStore()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc = New(store, newMemLeaves(), MustCatalog(), NopNotifier{}, logger,
		WithClock(func() time.Time { return at1130 }))

	_, err := svc.Create(context.Background(), CreateRequest{
		PatientID: uuid.New(),
		DoctorID:  uuid.New(),
		Date:      at1130,
		TimeSlot:  "11:30 AM",
	})
	if !errors.Is(err, ErrPastTimeSlot) {
		t.Errorf("Create() error = %v, want ErrPastTimeSlot", err)
	}
}

func TestCreateSlotConflict(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	doctor := uuid.New()
	tomorrow := testNow.AddDate(0, 0, 1)

	mustCreate(t, svc, uuid.New(), doctor, tomorrow, "9:30 AM")

	// Same doctor, same day, same slot.
	_, err := svc.Create(context.Background(), CreateRequest{
		PatientID: uuid.New(),
		DoctorID:  doctor,
		Date:      tomorrow,
		TimeSlot:  "9:30 AM",
	})
	if !errors.Is(err, ErrSlotTaken) {
		t.Fatalf("Create() error = %v, want ErrSlotTaken", err)
	}

	// Other doctors and other slots stay free.
	mustCreate(t, svc, uuid.New(), uuid.New(), tomorrow, "9:30 AM")
	mustCreate(t, svc, uuid.New(), doctor, tomorrow, "10:00 AM")
}

func TestCreateReleasesCanceledSlot(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	doctor := uuid.New()
	tomorrow := testNow.AddDate(0, 0, 1)

	appt := mustCreate(t, svc, uuid.New(), doctor, tomorrow, "9:30 AM")
	if _, err := svc.Cancel(context.Background(), appt.ID); err != nil {
		t.Fatalf("Cancel() error = %v", err)
	}

	mustCreate(t, svc, uuid.New(), doctor, tomorrow, "9:30 AM")
}

func TestUnavailableSlots(t *testing.T) {
	svc, _, leaves, _ := newTestService(t)
	doctor := uuid.New()
	tomorrow := testNow.AddDate(0, 0, 1)

	mustCreate(t, svc, uuid.New(), doctor, tomorrow, "9:30 AM")
	canceled := mustCreate(t, svc, uuid.New(), doctor, tomorrow, "10:00 AM")
	if _, err := svc.Cancel(context.Background(), canceled.ID); err != nil {
		t.Fatalf("Cancel() error = %v", err)
	}

	day, err := svc.UnavailableSlots(context.Background(), doctor, tomorrow)
	if err != nil {
		t.Fatalf("UnavailableSlots() error = %v", err)
	}
	if day.Unavailable {
		t.Error("Unavailable = true, want false")
	}
	if len(day.UnavailableSlots) != 1 || day.UnavailableSlots[0] != "9:30 AM" {
		t.Errorf("UnavailableSlots = %v, want [9:30 AM]", day.UnavailableSlots)
	}

	// Approved leave blocks the whole day.
	leaves.block(doctor, DateOnly(tomorrow))
	day, err = svc.UnavailableSlots(context.Background(), doctor, tomorrow)
	if err != nil {
		t.Fatalf("UnavailableSlots() error = %v", err)
	}
	if !day.Unavailable {
		t.Error("Unavailable = false, want true")
	}
	if len(day.UnavailableSlots) != len(DefaultTimeSlots) {
		t.Errorf("len(UnavailableSlots) = %d, want %d", len(day.UnavailableSlots), len(DefaultTimeSlots))
	}
}

func TestCancel(t *testing.T) {
	svc, _, _, notifier := newTestService(t)
	appt := mustCreate(t, svc, uuid.New(), uuid.New(), testNow.AddDate(0, 0, 1), "9:30 AM")

	got, err := svc.Cancel(context.Background(), appt.ID)
	if err != nil {
		t.Fatalf("Cancel() error = %v", err)
	}
	if got.Status != StatusCanceled {
		t.Errorf("Status = %s, want %s", got.Status, StatusCanceled)
	}
	if len(notifier.canceled) != 1 || notifier.canceled[0] != appt.ID {
		t.Errorf("canceled notifications = %v, want [%s]", notifier.canceled, appt.ID)
	}

	// Second cancel is a no-op and does not notify again.
	got, err = svc.Cancel(context.Background(), appt.ID)
	if err != nil {
		t.Fatalf("second Cancel() error = %v", err)
	}
	if got.Status != StatusCanceled {
		t.Errorf("Status = %s, want %s", got.Status, StatusCanceled)
	}
	if len(notifier.canceled) != 1 {
		t.Errorf("canceled notifications = %d, want 1", len(notifier.canceled))
	}

	if _, err := svc.Cancel(context.Background(), uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Errorf("Cancel(unknown) error = %v, want ErrNotFound", err)
	}
}

func TestCancelCompletedFails(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	appt := mustCreate(t, svc, uuid.New(), uuid.New(), testNow.AddDate(0, 0, 1), "9:30 AM")

	if _, err := svc.SubmitPrescription(context.Background(), appt.ID, PrescriptionRequest{Notes: "rest"}); err != nil {
		t.Fatalf("SubmitPrescription() error = %v", err)
	}
	if _, err := svc.Cancel(context.Background(), appt.ID); !errors.Is(err, ErrIllegalTransition) {
		t.Errorf("Cancel(completed) error = %v, want ErrIllegalTransition", err)
	}
}

func TestReschedule(t *testing.T) {
	svc, _, leaves, notifier := newTestService(t)
	doctor := uuid.New()
	tomorrow := testNow.AddDate(0, 0, 1)
	nextWeek := testNow.AddDate(0, 0, 7)

	appt := mustCreate(t, svc, uuid.New(), doctor, tomorrow, "9:30 AM")

	got, err := svc.Reschedule(context.Background(), appt.ID, nextWeek, "10:00 AM")
	if err != nil {
		t.Fatalf("Reschedule() error = %v", err)
	}
	if got.Status != StatusRescheduled {
		t.Errorf("Status = %s, want %s", got.Status, StatusRescheduled)
	}
	if !got.Date.Equal(DateOnly(nextWeek)) || got.TimeSlot != "10:00 AM" {
		t.Errorf("moved to (%v, %s), want (%v, 10:00 AM)", got.Date, got.TimeSlot, DateOnly(nextWeek))
	}
	if len(notifier.rescheduled) != 1 {
		t.Errorf("rescheduled notifications = %d, want 1", len(notifier.rescheduled))
	}

	// Old slot is free again.
	mustCreate(t, svc, uuid.New(), doctor, tomorrow, "9:30 AM")

	// Rescheduling again is allowed.
	if _, err := svc.Reschedule(context.Background(), appt.ID, nextWeek, "11:00 AM"); err != nil {
		t.Fatalf("second Reschedule() error = %v", err)
	}

	// Target conflicts and leave days are rejected.
	other := mustCreate(t, svc, uuid.New(), doctor, nextWeek, "12:00 PM")
	if _, err := svc.Reschedule(context.Background(), other.ID, nextWeek, "11:00 AM"); !errors.Is(err, ErrSlotTaken) {
		t.Errorf("Reschedule(conflict) error = %v, want ErrSlotTaken", err)
	}
	leaveDay := testNow.AddDate(0, 0, 3)
	leaves.block(doctor, DateOnly(leaveDay))
	if _, err := svc.Reschedule(context.Background(), other.ID, leaveDay, "9:30 AM"); !errors.Is(err, ErrDoctorOnLeave) {
		t.Errorf("Reschedule(leave day) error = %v, want ErrDoctorOnLeave", err)
	}
}

func TestRescheduleCanceledFails(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	appt := mustCreate(t, svc, uuid.New(), uuid.New(), testNow.AddDate(0, 0, 1), "9:30 AM")
	if _, err := svc.Cancel(context.Background(), appt.ID); err != nil {
		t.Fatalf("Cancel() error = %v", err)
	}

	_, err := svc.Reschedule(context.Background(), appt.ID, testNow.AddDate(0, 0, 2), "9:30 AM")
	if !errors.Is(err, ErrIllegalTransition) {
		t.Errorf("Reschedule(canceled) error = %v, want ErrIllegalTransition", err)
	}
}

func TestConsultationFlow(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	appt := mustCreate(t, svc, uuid.New(), uuid.New(), testNow.AddDate(0, 0, 1), "9:30 AM")

	got, err := svc.StartConsultation(context.Background(), appt.ID)
	if err != nil {
		t.Fatalf("StartConsultation() error = %v", err)
	}
	if got.Status != StatusInConsultation {
		t.Errorf("Status = %s, want %s", got.Status, StatusInConsultation)
	}

	// In consultation, only completion is allowed.
	if _, err := svc.MarkAbsent(context.Background(), appt.ID); !errors.Is(err, ErrIllegalTransition) {
		t.Errorf("MarkAbsent(in_consultation) error = %v, want ErrIllegalTransition", err)
	}

	got, err = svc.SubmitPrescription(context.Background(), appt.ID, PrescriptionRequest{
		Medicines: []Medicine{{Name: "Amoxicillin", Dosage: "500mg 3x daily"}},
		Tests:     []string{"CBC", "Lipid Panel"},
		Notes:     "Follow up in two weeks.",
	})
	if err != nil {
		t.Fatalf("SubmitPrescription() error = %v", err)
	}
	if got.Status != StatusCompleted {
		t.Errorf("Status = %s, want %s", got.Status, StatusCompleted)
	}
	if got.Prescription == nil {
		t.Fatal("Prescription is nil")
	}
	if len(got.Prescription.Tests) != 2 {
		t.Fatalf("len(Tests) = %d, want 2", len(got.Prescription.Tests))
	}
	for _, ts := range got.Prescription.Tests {
		if ts.ID == uuid.Nil {
			t.Error("test ID is nil")
		}
		if ts.Result != "" {
			t.Errorf("test %s Result = %q, want empty", ts.Name, ts.Result)
		}
	}
}

func TestMarkAbsent(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	appt := mustCreate(t, svc, uuid.New(), uuid.New(), testNow.AddDate(0, 0, 1), "9:30 AM")

	got, err := svc.MarkAbsent(context.Background(), appt.ID)
	if err != nil {
		t.Fatalf("MarkAbsent() error = %v", err)
	}
	if got.Status != StatusAbsent {
		t.Errorf("Status = %s, want %s", got.Status, StatusAbsent)
	}

	// Absent is terminal.
	if _, err := svc.StartConsultation(context.Background(), appt.ID); !errors.Is(err, ErrIllegalTransition) {
		t.Errorf("StartConsultation(absent) error = %v, want ErrIllegalTransition", err)
	}
}

func TestUpdateTestResult(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	appt := mustCreate(t, svc, uuid.New(), uuid.New(), testNow.AddDate(0, 0, 1), "9:30 AM")

	got, err := svc.SubmitPrescription(context.Background(), appt.ID, PrescriptionRequest{Tests: []string{"CBC"}})
	if err != nil {
		t.Fatalf("SubmitPrescription() error = %v", err)
	}
	testID := got.Prescription.Tests[0].ID

	got, err = svc.UpdateTestResult(context.Background(), appt.ID, testID, "WBC 6.1")
	if err != nil {
		t.Fatalf("UpdateTestResult() error = %v", err)
	}
	if got.Prescription.Tests[0].Result != "WBC 6.1" {
		t.Errorf("Result = %q, want %q", got.Prescription.Tests[0].Result, "WBC 6.1")
	}

	if _, err := svc.UpdateTestResult(context.Background(), appt.ID, uuid.New(), "x"); !errors.Is(err, ErrTestNotFound) {
		t.Errorf("UpdateTestResult(unknown test) error = %v, want ErrTestNotFound", err)
	}
	if _, err := svc.UpdateTestResult(context.Background(), appt.ID, testID, ""); !errors.Is(err, ErrMissingFields) {
		t.Errorf("UpdateTestResult(empty result) error = %v, want ErrMissingFields", err)
	}
}

func TestSubmitReview(t *testing.T) {
	svc, store, _, _ := newTestService(t)
	doctor := uuid.New()
	tomorrow := testNow.AddDate(0, 0, 1)

	first := mustCreate(t, svc, uuid.New(), doctor, tomorrow, "9:30 AM")
	second := mustCreate(t, svc, uuid.New(), doctor, tomorrow, "10:00 AM")

	if _, err := svc.SubmitReview(context.Background(), first.ID, 6, "great"); !errors.Is(err, ErrInvalidRating) {
		t.Errorf("SubmitReview(6) error = %v, want ErrInvalidRating", err)
	}
	if _, err := svc.SubmitReview(context.Background(), first.ID, 0, "bad"); !errors.Is(err, ErrInvalidRating) {
		t.Errorf("SubmitReview(0) error = %v, want ErrInvalidRating", err)
	}

	got, err := svc.SubmitReview(context.Background(), first.ID, 5, "great doctor")
	if err != nil {
		t.Fatalf("SubmitReview() error = %v", err)
	}
	if got.Rating == nil || *got.Rating != 5 {
		t.Errorf("Rating = %v, want 5", got.Rating)
	}
	if _, err := svc.SubmitReview(context.Background(), second.ID, 3, "fine"); err != nil {
		t.Fatalf("SubmitReview() error = %v", err)
	}

	// Doctor rating is the mean of all rated appointments.
	if avg := store.ratings[doctor]; avg != 4 {
		t.Errorf("doctor rating = %v, want 4", avg)
	}
}

func TestListByPatient(t *testing.T) {
	svc, _, leaves, _ := newTestService(t)
	patient, doctor := uuid.New(), uuid.New()
	tomorrow := testNow.AddDate(0, 0, 1)
	nextWeek := testNow.AddDate(0, 0, 7)

	upcoming := mustCreate(t, svc, patient, doctor, tomorrow, "9:30 AM")
	affected := mustCreate(t, svc, patient, doctor, nextWeek, "10:00 AM")
	done := mustCreate(t, svc, patient, doctor, tomorrow, "11:00 AM")
	if _, err := svc.SubmitPrescription(context.Background(), done.ID, PrescriptionRequest{Notes: "ok"}); err != nil {
		t.Fatalf("SubmitPrescription() error = %v", err)
	}
	mustCreate(t, svc, uuid.New(), doctor, tomorrow, "12:00 PM") // other patient

	leaves.block(doctor, DateOnly(nextWeek))

	got, err := svc.ListByPatient(context.Background(), patient)
	if err != nil {
		t.Fatalf("ListByPatient() error = %v", err)
	}
	// Completed appointments are excluded from the upcoming view.
	if len(got.Appointments) != 2 {
		t.Fatalf("len(Appointments) = %d, want 2", len(got.Appointments))
	}
	for _, a := range got.Appointments {
		if a.ID != upcoming.ID && a.ID != affected.ID {
			t.Errorf("unexpected appointment %s", a.ID)
		}
	}
	if len(got.OnLeaveIDs) != 1 || got.OnLeaveIDs[0] != affected.ID {
		t.Errorf("OnLeaveIDs = %v, want [%s]", got.OnLeaveIDs, affected.ID)
	}
}

func TestPatientRecords(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	patient := uuid.New()
	tomorrow := testNow.AddDate(0, 0, 1)

	mustCreate(t, svc, patient, uuid.New(), tomorrow, "9:30 AM")
	done := mustCreate(t, svc, patient, uuid.New(), tomorrow, "10:00 AM")
	if _, err := svc.SubmitPrescription(context.Background(), done.ID, PrescriptionRequest{Notes: "rest"}); err != nil {
		t.Fatalf("SubmitPrescription() error = %v", err)
	}

	got, err := svc.PatientRecords(context.Background(), patient)
	if err != nil {
		t.Fatalf("PatientRecords() error = %v", err)
	}
	if len(got) != 1 || got[0].ID != done.ID {
		t.Errorf("PatientRecords() = %d records, want the completed one", len(got))
	}
}

func TestLabWorklists(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	tomorrow := testNow.AddDate(0, 0, 1)

	pending := mustCreate(t, svc, uuid.New(), uuid.New(), tomorrow, "9:30 AM")
	got, err := svc.SubmitPrescription(context.Background(), pending.ID, PrescriptionRequest{Tests: []string{"CBC"}})
	if err != nil {
		t.Fatalf("SubmitPrescription() error = %v", err)
	}

	noTests := mustCreate(t, svc, uuid.New(), uuid.New(), tomorrow, "10:00 AM")
	if _, err := svc.SubmitPrescription(context.Background(), noTests.ID, PrescriptionRequest{Notes: "no labs"}); err != nil {
		t.Fatalf("SubmitPrescription() error = %v", err)
	}

	list, err := svc.PendingTests(context.Background())
	if err != nil {
		t.Fatalf("PendingTests() error = %v", err)
	}
	if len(list) != 1 || list[0].ID != pending.ID {
		t.Fatalf("PendingTests() = %d, want the one with an open test", len(list))
	}

	if _, err := svc.UpdateTestResult(context.Background(), pending.ID, got.Prescription.Tests[0].ID, "normal"); err != nil {
		t.Fatalf("UpdateTestResult() error = %v", err)
	}

	list, err = svc.PendingTests(context.Background())
	if err != nil {
		t.Fatalf("PendingTests() error = %v", err)
	}
	if len(list) != 0 {
		t.Errorf("PendingTests() after result = %d, want 0", len(list))
	}

	list, err = svc.CompletedTests(context.Background())
	if err != nil {
		t.Fatalf("CompletedTests() error = %v", err)
	}
	if len(list) != 1 || list[0].ID != pending.ID {
		t.Errorf("CompletedTests() = %d, want the resulted one", len(list))
	}
}
