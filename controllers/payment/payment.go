package payment

import (
	"parcel-delivery/logger"
	"parcel-delivery/middleware"
	paymentService "parcel-delivery/services/payment"
	"parcel-delivery/types"
	paymentTypes "parcel-delivery/types/payment"
	"parcel-delivery/utils"

	"github.com/gofiber/fiber/v2"
)

// PaymentController handles payment-related HTTP requests.
type PaymentController struct {
	Service *paymentService.Service
	Logger  *logger.AsyncLogger
}

// NewPaymentController creates a new payment controller.
func NewPaymentController(service *paymentService.Service, asyncLogger *logger.AsyncLogger) *PaymentController {
	return &PaymentController{Service: service, Logger: asyncLogger}
}

// sendResponseWithLog sends the response and pushes an audit row. Money
// movement is the one surface every dispute comes back to.
func (pc *PaymentController) sendResponseWithLog(c *fiber.Ctx, status int, response types.ApiResponse) error {
	result := c.Status(status).JSON(response)
	if pc.Logger != nil {
		pc.Logger.Log(utils.CreateSanitizedLogEntry(c, status))
	}
	return result
}

func (pc *PaymentController) errResponse(c *fiber.Ctx, err error) error {
	status := types.StatusOf(err)
	if status == fiber.StatusInternalServerError {
		logger.Error("Payment request failed", err)
	}
	return pc.sendResponseWithLog(c, status, types.ApiResponse{
		Status:  status,
		Message: err.Error(),
	})
}

// Index lists payments, filtered by owner email.
func (pc *PaymentController) Index(c *fiber.Ctx) error {
	email := c.Query("email")
	if email == "" {
		email = middleware.CallerEmail(c)
	}

	payments, err := pc.Service.List(email)
	if err != nil {
		return pc.errResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Payments retrieved successfully",
		Data:    payments,
	})
}

// Store records a completed payment and flips the parcel to paid.
func (pc *PaymentController) Store(c *fiber.Ctx) error {
	var req paymentTypes.RecordPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return pc.sendResponseWithLog(c, fiber.StatusBadRequest, types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	if caller := middleware.CallerEmail(c); caller != "" && req.Email != caller {
		return pc.errResponse(c, types.ErrForbidden("payments may only be recorded for your own email"))
	}

	record, err := pc.Service.Record(req)
	if err != nil {
		return pc.errResponse(c, err)
	}

	return pc.sendResponseWithLog(c, fiber.StatusCreated, types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Payment recorded successfully",
		Data:    record,
	})
}

// CreateIntent asks the gateway for a client-side confirmation token.
func (pc *PaymentController) CreateIntent(c *fiber.Ctx) error {
	var req paymentTypes.CreateIntentRequest
	if err := c.BodyParser(&req); err != nil {
		return pc.sendResponseWithLog(c, fiber.StatusBadRequest, types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	secret, err := pc.Service.CreateIntent(req.AmountInCents)
	if err != nil {
		return pc.errResponse(c, err)
	}

	return pc.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Payment intent created successfully",
		Data:    paymentTypes.CreateIntentResponse{ClientSecret: secret},
	})
}
