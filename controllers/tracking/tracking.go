package tracking

import (
	"parcel-delivery/logger"
	trackingService "parcel-delivery/services/tracking"
	"parcel-delivery/types"
	trackingTypes "parcel-delivery/types/tracking"

	"github.com/gofiber/fiber/v2"
)

// TrackingController handles tracking-timeline HTTP requests.
type TrackingController struct {
	Service *trackingService.Service
}

// NewTrackingController creates a new tracking controller.
func NewTrackingController(service *trackingService.Service) *TrackingController {
	return &TrackingController{Service: service}
}

func (tc *TrackingController) errResponse(c *fiber.Ctx, err error) error {
	status := types.StatusOf(err)
	if status == fiber.StatusInternalServerError {
		logger.Error("Tracking request failed", err)
	}
	return c.Status(status).JSON(types.ApiResponse{
		Status:  status,
		Message: err.Error(),
	})
}

// Store appends a tracking event.
func (tc *TrackingController) Store(c *fiber.Ctx) error {
	var req trackingTypes.AppendEventRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	ev, err := tc.Service.Append(req)
	if err != nil {
		return tc.errResponse(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Tracking event recorded successfully",
		Data:    ev,
	})
}

// Show returns the timeline for a tracking reference, oldest first.
func (tc *TrackingController) Show(c *fiber.Ctx) error {
	events, err := tc.Service.Events(c.Params("trackingId"))
	if err != nil {
		return tc.errResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Tracking events retrieved successfully",
		Data:    events,
	})
}
