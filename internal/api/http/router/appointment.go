package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/ecarehq/ecare_backend/internal/api/http/handler"
)

func (r *Router) registerAppointmentRoutes(
	api fiber.Router,
	ah *handler.AppointmentHandler,
	authRequired fiber.Handler,
	adminOnly fiber.Handler,
	staffOnly fiber.Handler,
) {
	appts := api.Group("/appointments", authRequired)

	// /unavailable must be registered before /:id
	appts.Get("/unavailable", ah.UnavailableSlots)
	appts.Get("/", adminOnly, ah.List)
	appts.Post("/", ah.Book)

	a := appts.Group("/:id")
	a.Get("/", ah.GetByID)
	a.Patch("/cancel", ah.Cancel)
	a.Patch("/reschedule", ah.Reschedule)
	a.Patch("/absent", staffOnly, ah.MarkAbsent)
	a.Patch("/start-consultation", staffOnly, ah.StartConsultation)
	a.Post("/prescription", staffOnly, ah.Prescribe)
	a.Post("/review", ah.Review)

	patients := api.Group("/patients", authRequired)
	patients.Get("/:id/appointments", ah.ListByPatient)
	patients.Get("/:id/records", ah.PatientRecords)
}
