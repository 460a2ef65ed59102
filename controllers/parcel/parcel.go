package parcel

import (
	"strconv"

	"parcel-delivery/constants"
	"parcel-delivery/logger"
	"parcel-delivery/middleware"
	"parcel-delivery/repository"
	parcelService "parcel-delivery/services/parcel"
	"parcel-delivery/types"
	parcelTypes "parcel-delivery/types/parcel"

	"github.com/gofiber/fiber/v2"
)

// ParcelController handles parcel-related HTTP requests.
type ParcelController struct {
	Service *parcelService.Service
	Roles   middleware.RoleLookup
}

// NewParcelController creates a new parcel controller.
func NewParcelController(service *parcelService.Service, roles middleware.RoleLookup) *ParcelController {
	return &ParcelController{Service: service, Roles: roles}
}

func (pc *ParcelController) errResponse(c *fiber.Ctx, err error) error {
	status := types.StatusOf(err)
	if status == fiber.StatusInternalServerError {
		logger.Error("Parcel request failed", err)
	}
	return c.Status(status).JSON(types.ApiResponse{
		Status:  status,
		Message: err.Error(),
	})
}

func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return 0, types.ErrValidation("invalid parcel id")
	}
	return uint(id), nil
}

// Index lists parcels. Non-admin callers may only see their own parcels;
// an unfiltered or mismatched request is rejected.
func (pc *ParcelController) Index(c *fiber.Ctx) error {
	caller := middleware.CallerEmail(c)
	requested := c.Query("email")

	if requested != caller {
		role, err := pc.Roles.RoleOf(caller)
		if err != nil {
			return pc.errResponse(c, err)
		}
		if role != constants.RoleAdmin {
			return pc.errResponse(c, types.ErrForbidden("you may only list your own parcels"))
		}
	}

	parcels, err := pc.Service.List(repository.ParcelFilter{
		CreatedBy:      requested,
		PaymentStatus:  c.Query("payment_status"),
		DeliveryStatus: c.Query("delivery_status"),
	})
	if err != nil {
		return pc.errResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Parcels retrieved successfully",
		Data:    parcels,
	})
}

// Show fetches one parcel by identifier.
func (pc *ParcelController) Show(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return pc.errResponse(c, err)
	}

	p, err := pc.Service.Get(id)
	if err != nil {
		return pc.errResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Parcel retrieved successfully",
		Data:    p,
	})
}

// Store creates a new parcel.
func (pc *ParcelController) Store(c *fiber.Ctx) error {
	var req parcelTypes.ParcelCreateRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	p, err := pc.Service.Create(req)
	if err != nil {
		return pc.errResponse(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Parcel created successfully",
		Data:    p,
	})
}

// AssignRider assigns a rider to a parcel.
func (pc *ParcelController) AssignRider(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return pc.errResponse(c, err)
	}

	var req parcelTypes.AssignRiderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	p, err := pc.Service.AssignRider(id, req.RiderID)
	if err != nil {
		return pc.errResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Rider assigned successfully",
		Data:    p,
	})
}

// UpdateStatus advances the parcel's delivery status.
func (pc *ParcelController) UpdateStatus(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return pc.errResponse(c, err)
	}

	var req parcelTypes.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	p, err := pc.Service.UpdateDeliveryStatus(id, req.Status, req.UpdatedBy)
	if err != nil {
		return pc.errResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Delivery status updated successfully",
		Data:    p,
	})
}

// CashOut marks a parcel's earnings as settled.
func (pc *ParcelController) CashOut(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return pc.errResponse(c, err)
	}

	p, err := pc.Service.CashOut(id)
	if err != nil {
		return pc.errResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Parcel cashed out successfully",
		Data:    p,
	})
}

// Destroy deletes a parcel.
func (pc *ParcelController) Destroy(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return pc.errResponse(c, err)
	}

	if err := pc.Service.Delete(id); err != nil {
		return pc.errResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Parcel deleted successfully",
		Data:    types.MutationResult{ID: id, Modified: true},
	})
}

// StatusCount aggregates parcel counts by delivery status.
func (pc *ParcelController) StatusCount(c *fiber.Ctx) error {
	counts, err := pc.Service.StatusCounts()
	if err != nil {
		return pc.errResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Status counts retrieved successfully",
		Data:    counts,
	})
}

// RiderParcels lists the calling rider's active work.
func (pc *ParcelController) RiderParcels(c *fiber.Ctx) error {
	email := c.Query("email")
	if email == "" {
		email = middleware.CallerEmail(c)
	}

	parcels, err := pc.Service.RiderParcels(email)
	if err != nil {
		return pc.errResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Rider parcels retrieved successfully",
		Data:    parcels,
	})
}

// RiderCompletedParcels lists the calling rider's completed work,
// optionally narrowed to a calendar period.
func (pc *ParcelController) RiderCompletedParcels(c *fiber.Ctx) error {
	email := c.Query("email")
	if email == "" {
		email = middleware.CallerEmail(c)
	}

	parcels, err := pc.Service.RiderCompletedParcels(email, c.Query("period"))
	if err != nil {
		return pc.errResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Completed parcels retrieved successfully",
		Data:    parcels,
	})
}
