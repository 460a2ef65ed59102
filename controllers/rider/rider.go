package rider

import (
	"strconv"

	"parcel-delivery/logger"
	riderModel "parcel-delivery/models/rider"
	riderService "parcel-delivery/services/rider"
	"parcel-delivery/types"
	riderTypes "parcel-delivery/types/rider"

	"github.com/gofiber/fiber/v2"
)

// RiderController handles rider-directory HTTP requests.
type RiderController struct {
	Service *riderService.Service
}

// NewRiderController creates a new rider controller.
func NewRiderController(service *riderService.Service) *RiderController {
	return &RiderController{Service: service}
}

func (rc *RiderController) errResponse(c *fiber.Ctx, err error) error {
	status := types.StatusOf(err)
	if status == fiber.StatusInternalServerError {
		logger.Error("Rider request failed", err)
	}
	return c.Status(status).JSON(types.ApiResponse{
		Status:  status,
		Message: err.Error(),
	})
}

// Store registers a new rider application.
func (rc *RiderController) Store(c *fiber.Ctx) error {
	var req riderTypes.RiderRegisterRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	rd, err := rc.Service.Register(req)
	if err != nil {
		return rc.errResponse(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Rider application submitted successfully",
		Data:    rd,
	})
}

// Pending lists riders awaiting approval.
func (rc *RiderController) Pending(c *fiber.Ctx) error {
	riders, err := rc.Service.ListByStatus(riderModel.StatusPending)
	if err != nil {
		return rc.errResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Pending riders retrieved successfully",
		Data:    riders,
	})
}

// Active lists approved riders.
func (rc *RiderController) Active(c *fiber.Ctx) error {
	riders, err := rc.Service.ListByStatus(riderModel.StatusActive)
	if err != nil {
		return rc.errResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Active riders retrieved successfully",
		Data:    riders,
	})
}

// Available lists active riders free for assignment, optionally by district.
func (rc *RiderController) Available(c *fiber.Ctx) error {
	riders, err := rc.Service.ListAvailable(c.Query("district"))
	if err != nil {
		return rc.errResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Available riders retrieved successfully",
		Data:    riders,
	})
}

// SetStatus approves or rejects a rider application.
func (rc *RiderController) SetStatus(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid rider id",
		})
	}

	var req riderTypes.SetStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	rd, err := rc.Service.SetStatus(uint(id), req.Status, req.Email)
	if err != nil {
		return rc.errResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Rider status updated successfully",
		Data:    rd,
	})
}
