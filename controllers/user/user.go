package user

import (
	"strconv"

	"parcel-delivery/logger"
	userService "parcel-delivery/services/user"
	"parcel-delivery/types"
	userTypes "parcel-delivery/types/user"

	"github.com/gofiber/fiber/v2"
)

// UserController handles user-directory HTTP requests.
type UserController struct {
	Service *userService.Service
}

// NewUserController creates a new user controller.
func NewUserController(service *userService.Service) *UserController {
	return &UserController{Service: service}
}

func (uc *UserController) errResponse(c *fiber.Ctx, err error) error {
	status := types.StatusOf(err)
	if status == fiber.StatusInternalServerError {
		logger.Error("User request failed", err)
	}
	return c.Status(status).JSON(types.ApiResponse{
		Status:  status,
		Message: err.Error(),
	})
}

// Store creates the user on first login or refreshes the last-login stamp.
func (uc *UserController) Store(c *fiber.Ctx) error {
	var req userTypes.UpsertUserRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	u, created, err := uc.Service.Upsert(req.Email, req.DisplayName)
	if err != nil {
		return uc.errResponse(c, err)
	}

	status := fiber.StatusOK
	message := "User already exists"
	if created {
		status = fiber.StatusCreated
		message = "User created successfully"
	}
	return c.Status(status).JSON(types.ApiResponse{
		Status:  status,
		Message: message,
		Data:    u,
	})
}

// Role returns the role stored for an email.
func (uc *UserController) Role(c *fiber.Ctx) error {
	role, err := uc.Service.RoleOf(c.Params("email"))
	if err != nil {
		return uc.errResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Role retrieved successfully",
		Data:    userTypes.RoleResponse{Role: role},
	})
}

// SetRole changes a user's role.
func (uc *UserController) SetRole(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid user id",
		})
	}

	var req userTypes.SetRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	u, err := uc.Service.SetRole(uint(id), req.Role)
	if err != nil {
		return uc.errResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Role updated successfully",
		Data:    u,
	})
}

// Search finds users by partial email match.
func (uc *UserController) Search(c *fiber.Ctx) error {
	users, err := uc.Service.Search(c.Query("email"))
	if err != nil {
		return uc.errResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Users retrieved successfully",
		Data:    users,
	})
}
