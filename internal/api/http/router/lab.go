package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/ecarehq/ecare_backend/internal/api/http/handler"
)

func (r *Router) registerLabRoutes(
	api fiber.Router,
	lh *handler.LabHandler,
	authRequired fiber.Handler,
	labOnly fiber.Handler,
) {
	lab := api.Group("/lab", authRequired, labOnly)
	lab.Get("/tests/pending", lh.PendingTests)
	lab.Get("/tests/completed", lh.CompletedTests)

	// Result entry lives under the appointment resource.
	api.Put("/appointments/:id/tests/:testId", authRequired, labOnly, lh.UpdateTestResult)
}
