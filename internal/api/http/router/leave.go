package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/ecarehq/ecare_backend/internal/api/http/handler"
)

func (r *Router) registerLeaveRoutes(
	api fiber.Router,
	lh *handler.LeaveHandler,
	authRequired fiber.Handler,
	adminOnly fiber.Handler,
) {
	leaves := api.Group("/leaves", authRequired)

	leaves.Get("/", adminOnly, lh.ListAll)
	leaves.Patch("/status", adminOnly, lh.UpdateStatus)

	leaves.Post("/:doctorId", lh.Apply)
	leaves.Get("/:doctorId", lh.ListByDoctor)
	leaves.Delete("/:leaveId", lh.Cancel)
}
