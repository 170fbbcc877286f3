package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mfarouk/marketpro-api/internal/domain/entity"
	"github.com/mfarouk/marketpro-api/internal/domain/enum"
	"github.com/mfarouk/marketpro-api/internal/presentation/http/dto/request"
	"github.com/mfarouk/marketpro-api/internal/presentation/http/dto/response"
	"github.com/mfarouk/marketpro-api/internal/store"
	"github.com/mfarouk/marketpro-api/pkg/apperror"
)

// UserHandler handles user management HTTP requests
type UserHandler struct {
	store *store.Store
}

// NewUserHandler creates a new user handler
func NewUserHandler(s *store.Store) *UserHandler {
	return &UserHandler{store: s}
}

// List handles listing users
func (h *UserHandler) List(c *gin.Context) {
	users := h.store.Users()
	sanitized := make([]entity.User, len(users))
	for i, u := range users {
		sanitized[i] = u.Sanitized()
	}
	response.OK(c, "Users retrieved successfully", sanitized)
}

// Create handles creating a user
func (h *UserHandler) Create(c *gin.Context) {
	var req request.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if h.store.FindUserByUsername(req.Username) != nil {
		response.Error(c, apperror.NewConflictError("Username already taken"))
		return
	}

	role := enum.UserRoleEmployee
	if req.Role != "" {
		parsed, ok := enum.ParseUserRole(req.Role)
		if !ok {
			response.BadRequest(c, "Invalid role")
			return
		}
		role = parsed
	}

	user := h.store.AddUser(store.AddUserInput{
		Username:    req.Username,
		Password:    req.Password,
		Role:        role,
		Name:        req.Name,
		Phone:       req.Phone,
		Address:     req.Address,
		Permissions: req.Permissions,
	})
	response.Created(c, "User created successfully", user.Sanitized())
}

// Update handles updating a user
func (h *UserHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid user ID")
		return
	}

	var req request.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := store.UpdateUserInput{
		Password:    req.Password,
		Name:        req.Name,
		Phone:       req.Phone,
		Address:     req.Address,
		Permissions: req.Permissions,
	}
	if req.Role != nil {
		role, ok := enum.ParseUserRole(*req.Role)
		if !ok {
			response.BadRequest(c, "Invalid role")
			return
		}
		input.Role = &role
	}

	user := h.store.UpdateUser(id, input)
	if user == nil {
		response.NotFound(c, "User not found")
		return
	}
	response.OK(c, "User updated successfully", user.Sanitized())
}

// Delete handles deleting a user
func (h *UserHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid user ID")
		return
	}

	h.store.DeleteUser(id)
	response.NoContent(c)
}
