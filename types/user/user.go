package user

// UpsertUserRequest is the payload for POST /users.
type UpsertUserRequest struct {
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
}

// SetRoleRequest is the payload for PATCH /users/:id/role.
type SetRoleRequest struct {
	Role string `json:"role"`
}

// RoleResponse is the payload for GET /users/:email/role.
type RoleResponse struct {
	Role string `json:"role"`
}
