package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/ecarehq/ecare_backend/internal/service/leave"
)

type LeaveHandler struct {
	svc leave.Service
}

func NewLeaveHandler(svc leave.Service) *LeaveHandler {
	return &LeaveHandler{svc: svc}
}

func mapLeaveError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, leave.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, leave.ErrOverlap):
		return conflict(c, err.Error())
	case errors.Is(err, leave.ErrMissingFields),
		errors.Is(err, leave.ErrInvalidDateRange),
		errors.Is(err, leave.ErrInvalidStatus):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// POST /leaves/:doctorId
func (h *LeaveHandler) Apply(c fiber.Ctx) error {
	doctorID, err := uuid.Parse(c.Params("doctorId"))
	if err != nil {
		return badRequest(c, "invalid doctor id")
	}

	var body struct {
		StartDate string `json:"start_date"`
		EndDate   string `json:"end_date"`
		Reason    string `json:"reason"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.StartDate == "" || body.EndDate == "" || body.Reason == "" {
		return badRequest(c, leave.ErrMissingFields.Error())
	}

	start, err := parseDate(body.StartDate)
	if err != nil {
		return badRequest(c, "invalid start_date, expected YYYY-MM-DD")
	}
	end, err := parseDate(body.EndDate)
	if err != nil {
		return badRequest(c, "invalid end_date, expected YYYY-MM-DD")
	}

	l, err := h.svc.Apply(c.Context(), doctorID, start, end, body.Reason)
	if err != nil {
		return mapLeaveError(c, err)
	}

	return created(c, l)
}

// GET /leaves/:doctorId
func (h *LeaveHandler) ListByDoctor(c fiber.Ctx) error {
	doctorID, err := uuid.Parse(c.Params("doctorId"))
	if err != nil {
		return badRequest(c, "invalid doctor id")
	}

	leaves, err := h.svc.ListByDoctor(c.Context(), doctorID)
	if err != nil {
		return mapLeaveError(c, err)
	}

	return ok(c, leaves)
}

// GET /leaves
func (h *LeaveHandler) ListAll(c fiber.Ctx) error {
	leaves, err := h.svc.ListAll(c.Context())
	if err != nil {
		return mapLeaveError(c, err)
	}
	return ok(c, leaves)
}

// PATCH /leaves/status
func (h *LeaveHandler) UpdateStatus(c fiber.Ctx) error {
	var body struct {
		LeaveID string `json:"leave_id"`
		Status  string `json:"status"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	leaveID, err := uuid.Parse(body.LeaveID)
	if err != nil {
		return badRequest(c, "invalid leave_id")
	}

	l, err := h.svc.SetStatus(c.Context(), leaveID, leave.Status(body.Status))
	if err != nil {
		return mapLeaveError(c, err)
	}

	return ok(c, l)
}

// DELETE /leaves/:leaveId
func (h *LeaveHandler) Cancel(c fiber.Ctx) error {
	leaveID, err := uuid.Parse(c.Params("leaveId"))
	if err != nil {
		return badRequest(c, "invalid leave id")
	}

	if err := h.svc.Cancel(c.Context(), leaveID); err != nil {
		return mapLeaveError(c, err)
	}

	return noContent(c)
}
