package handler

import (
	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/ecarehq/ecare_backend/internal/service/scheduling"
)

// LabHandler serves the lab staff worklists and test result entry.
type LabHandler struct {
	svc scheduling.Service
}

func NewLabHandler(svc scheduling.Service) *LabHandler {
	return &LabHandler{svc: svc}
}

// GET /lab/tests/pending
func (h *LabHandler) PendingTests(c fiber.Ctx) error {
	appts, err := h.svc.PendingTests(c.Context())
	if err != nil {
		return mapSchedulingError(c, err)
	}
	return ok(c, appts)
}

// GET /lab/tests/completed
func (h *LabHandler) CompletedTests(c fiber.Ctx) error {
	appts, err := h.svc.CompletedTests(c.Context())
	if err != nil {
		return mapSchedulingError(c, err)
	}
	return ok(c, appts)
}

// PUT /appointments/:id/tests/:testId
func (h *LabHandler) UpdateTestResult(c fiber.Ctx) error {
	apptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}
	testID, err := uuid.Parse(c.Params("testId"))
	if err != nil {
		return badRequest(c, "invalid test id")
	}

	var body struct {
		Result string `json:"result"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Result == "" {
		return badRequest(c, "result is required")
	}

	appt, err := h.svc.UpdateTestResult(c.Context(), apptID, testID, body.Result)
	if err != nil {
		return mapSchedulingError(c, err)
	}

	return ok(c, appt)
}
