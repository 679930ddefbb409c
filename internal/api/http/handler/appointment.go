package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/ecarehq/ecare_backend/internal/service/scheduling"
)

type AppointmentHandler struct {
	svc scheduling.Service
}

func NewAppointmentHandler(svc scheduling.Service) *AppointmentHandler {
	return &AppointmentHandler{svc: svc}
}

func mapSchedulingError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, scheduling.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, scheduling.ErrTestNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, scheduling.ErrSlotTaken):
		return conflict(c, err.Error())
	case errors.Is(err, scheduling.ErrDoctorOnLeave):
		return conflict(c, err.Error())
	case errors.Is(err, scheduling.ErrIllegalTransition):
		return conflict(c, err.Error())
	case errors.Is(err, scheduling.ErrMissingFields),
		errors.Is(err, scheduling.ErrUnknownTimeSlot),
		errors.Is(err, scheduling.ErrPastTimeSlot),
		errors.Is(err, scheduling.ErrInvalidRating):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

func parseDate(s string) (time.Time, error) {
	return time.Parse(time.DateOnly, s)
}

// POST /appointments
func (h *AppointmentHandler) Book(c fiber.Ctx) error {
	var body struct {
		PatientID string `json:"patient_id"`
		DoctorID  string `json:"doctor_id"`
		Date      string `json:"appointment_date"`
		TimeSlot  string `json:"time_slot"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.PatientID == "" || body.DoctorID == "" || body.Date == "" || body.TimeSlot == "" {
		return badRequest(c, scheduling.ErrMissingFields.Error())
	}

	patientID, err := uuid.Parse(body.PatientID)
	if err != nil {
		return badRequest(c, "invalid patient_id")
	}
	doctorID, err := uuid.Parse(body.DoctorID)
	if err != nil {
		return badRequest(c, "invalid doctor_id")
	}
	date, err := parseDate(body.Date)
	if err != nil {
		return badRequest(c, "invalid appointment_date, expected YYYY-MM-DD")
	}

	appt, err := h.svc.Create(c.Context(), scheduling.CreateRequest{
		PatientID: patientID,
		DoctorID:  doctorID,
		Date:      date,
		TimeSlot:  body.TimeSlot,
	})
	if err != nil {
		return mapSchedulingError(c, err)
	}

	return created(c, appt)
}

// GET /appointments/unavailable?doctor_id=...&date=YYYY-MM-DD
func (h *AppointmentHandler) UnavailableSlots(c fiber.Ctx) error {
	doctorID, err := uuid.Parse(c.Query("doctor_id"))
	if err != nil {
		return badRequest(c, "invalid doctor_id")
	}
	date, err := parseDate(c.Query("date"))
	if err != nil {
		return badRequest(c, "invalid date, expected YYYY-MM-DD")
	}

	day, err := h.svc.UnavailableSlots(c.Context(), doctorID, date)
	if err != nil {
		return mapSchedulingError(c, err)
	}

	return ok(c, day)
}

// GET /appointments/:id
func (h *AppointmentHandler) GetByID(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	appt, err := h.svc.Get(c.Context(), id)
	if err != nil {
		return mapSchedulingError(c, err)
	}

	return ok(c, appt)
}

// GET /appointments
func (h *AppointmentHandler) List(c fiber.Ctx) error {
	if raw := c.Query("doctor_id"); raw != "" {
		doctorID, err := uuid.Parse(raw)
		if err != nil {
			return badRequest(c, "invalid doctor_id")
		}
		appts, err := h.svc.ListByDoctor(c.Context(), doctorID)
		if err != nil {
			return mapSchedulingError(c, err)
		}
		return ok(c, appts)
	}

	appts, err := h.svc.ListAll(c.Context())
	if err != nil {
		return mapSchedulingError(c, err)
	}
	return ok(c, appts)
}

// PATCH /appointments/:id/cancel
func (h *AppointmentHandler) Cancel(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	appt, err := h.svc.Cancel(c.Context(), id)
	if err != nil {
		return mapSchedulingError(c, err)
	}

	return ok(c, appt)
}

// PATCH /appointments/:id/reschedule
func (h *AppointmentHandler) Reschedule(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	var body struct {
		Date     string `json:"appointment_date"`
		TimeSlot string `json:"time_slot"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Date == "" || body.TimeSlot == "" {
		return badRequest(c, scheduling.ErrMissingFields.Error())
	}
	date, err := parseDate(body.Date)
	if err != nil {
		return badRequest(c, "invalid appointment_date, expected YYYY-MM-DD")
	}

	appt, err := h.svc.Reschedule(c.Context(), id, date, body.TimeSlot)
	if err != nil {
		return mapSchedulingError(c, err)
	}

	return ok(c, appt)
}

// PATCH /appointments/:id/absent
func (h *AppointmentHandler) MarkAbsent(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	appt, err := h.svc.MarkAbsent(c.Context(), id)
	if err != nil {
		return mapSchedulingError(c, err)
	}

	return ok(c, appt)
}

// PATCH /appointments/:id/start-consultation
func (h *AppointmentHandler) StartConsultation(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	appt, err := h.svc.StartConsultation(c.Context(), id)
	if err != nil {
		return mapSchedulingError(c, err)
	}

	return ok(c, appt)
}

// POST /appointments/:id/prescription
func (h *AppointmentHandler) Prescribe(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	var body struct {
		Medicines []scheduling.Medicine `json:"medicines"`
		Tests     []string              `json:"tests"`
		Notes     string                `json:"notes"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	appt, err := h.svc.SubmitPrescription(c.Context(), id, scheduling.PrescriptionRequest{
		Medicines: body.Medicines,
		Tests:     body.Tests,
		Notes:     body.Notes,
	})
	if err != nil {
		return mapSchedulingError(c, err)
	}

	return ok(c, appt)
}

// POST /appointments/:id/review
func (h *AppointmentHandler) Review(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	var body struct {
		Rating int    `json:"rating"`
		Review string `json:"review"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	appt, err := h.svc.SubmitReview(c.Context(), id, body.Rating, body.Review)
	if err != nil {
		return mapSchedulingError(c, err)
	}

	return ok(c, appt)
}

// GET /patients/:id/appointments
func (h *AppointmentHandler) ListByPatient(c fiber.Ctx) error {
	patientID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	appts, err := h.svc.ListByPatient(c.Context(), patientID)
	if err != nil {
		return mapSchedulingError(c, err)
	}

	return ok(c, appts)
}

// GET /patients/:id/records
func (h *AppointmentHandler) PatientRecords(c fiber.Ctx) error {
	patientID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	records, err := h.svc.PatientRecords(c.Context(), patientID)
	if err != nil {
		return mapSchedulingError(c, err)
	}

	return ok(c, records)
}
