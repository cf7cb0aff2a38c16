package handler

import (
	"errors"
	"strconv"

	"leave-management-backend/internal/model"
	"leave-management-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type LeaveHandler struct {
	usecase *usecase.LeaveUsecase
	log     *zap.Logger
}

func NewLeaveHandler(u *usecase.LeaveUsecase, log *zap.Logger) *LeaveHandler {
	return &LeaveHandler{usecase: u, log: log}
}

func (h *LeaveHandler) RequestLeave(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)

	var input struct {
		LeaveType string `json:"leaveType"`
		LeaveMode string `json:"leaveMode"`
		StartDate string `json:"startDate"`
		EndDate   string `json:"endDate"`
		Reason    string `json:"reason"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "Invalid request body"})
	}

	detail, err := h.usecase.Submit(userID, usecase.SubmitLeaveInput{
		LeaveType: input.LeaveType,
		LeaveMode: input.LeaveMode,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		Reason:    input.Reason,
	})
	if err != nil {
		var vErr *usecase.ValidationError
		switch {
		case errors.As(err, &vErr):
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": vErr.Message})
		case errors.Is(err, usecase.ErrEmployeeNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Employee not found"})
		default:
			h.log.Error("leave request failed", zap.Uint("user_id", userID), zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to submit leave request"})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(applicationJSON(detail))
}

func (h *LeaveHandler) GetApplications(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)

	details, err := h.usecase.List(userID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
		case errors.Is(err, usecase.ErrEmployeeNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Employee record not found"})
		default:
			h.log.Error("listing applications failed", zap.Uint("user_id", userID), zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch leave applications"})
		}
	}

	list := make([]fiber.Map, 0, len(details))
	for i := range details {
		list = append(list, applicationJSON(&details[i]))
	}
	return c.JSON(list)
}

func (h *LeaveHandler) ReviewLeave(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)

	applicationID, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Leave application not found"})
	}

	var input struct {
		Status   string  `json:"status"`
		Comments *string `json:"comments"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if input.Status == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Status is required"})
	}
	if input.Status != model.LeaveStatusAccepted && input.Status != model.LeaveStatusDenied {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Status must be accepted or denied"})
	}

	detail, err := h.usecase.Review(userID, uint(applicationID), input.Status, input.Comments)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrNotAdmin):
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Unauthorized"})
		case errors.Is(err, usecase.ErrApplicationNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Leave application not found"})
		default:
			h.log.Error("review failed", zap.Uint("user_id", userID), zap.Uint64("application_id", applicationID), zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to review leave application"})
		}
	}

	return c.JSON(applicationJSON(detail))
}
