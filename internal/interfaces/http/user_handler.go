package http

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/club-api/internal/application/dto"
	"github.com/tu-usuario/club-api/internal/application/usecase"
	"github.com/tu-usuario/club-api/internal/domain"
)

// UserHandler maneja las peticiones HTTP del recurso User.
type UserHandler struct {
	uc *usecase.UserUseCase
}

// NewUserHandler construye el handler inyectando el caso de uso.
func NewUserHandler(uc *usecase.UserUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// GetAll godoc
// @Summary      Listar usuarios
// @Tags         users
// @Produce      json
// @Success      200  {object}  map[string][]dto.UserResponse
// @Router       /users/getall [get]
func (h *UserHandler) GetAll(c *fiber.Ctx) error {
	users, err := h.uc.List(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{Message: err.Error()})
	}
	return c.JSON(fiber.Map{"users": users})
}

// GetByID godoc
// @Summary      Obtener usuario por ID
// @Tags         users
// @Produce      json
// @Param        id   path  int  true  "ID del usuario"
// @Success      200  {object}  map[string]dto.UserResponse
// @Failure      404  {object}  dto.MessageResponse
// @Router       /users/{id} [get]
func (h *UserHandler) GetByID(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.MessageResponse{Message: "User not found."})
	}
	user, err := h.uc.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{Message: err.Error()})
	}
	if user == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.MessageResponse{Message: fmt.Sprintf("User with id %d not found.", id)})
	}
	return c.JSON(fiber.Map{"user": user})
}

// Register godoc
// @Summary      Registrar usuario
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "first_name, last_name, email, password"
// @Success      201   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.MessageResponse
// @Failure      409   {object}  dto.MessageResponse
// @Router       /users/register [post]
func (h *UserHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{Message: "Invalid request body."})
	}
	if err := h.uc.Register(c.UserContext(), in); err != nil {
		if _, ok := domain.AsValidation(err); ok {
			return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{Message: "All fields are required."})
		}
		if errors.Is(err, domain.ErrEmailAlreadyExists) {
			return c.Status(fiber.StatusConflict).JSON(dto.MessageResponse{Message: "Email already exists."})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "User registered successfully!"})
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.MessageResponse
// @Failure      401   {object}  dto.MessageResponse
// @Router       /users/login [post]
func (h *UserHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{Message: "Invalid request body."})
	}
	user, token, err := h.uc.Login(in)
	if err != nil {
		if _, ok := domain.AsValidation(err); ok {
			return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{Message: "Email and password are required."})
		}
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.MessageResponse{Message: "Invalid email or password."})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{Message: err.Error()})
	}
	return c.JSON(dto.LoginResponse{Message: "Login successful!", User: *user, Token: token})
}

// Deactivate godoc
// @Summary      Desactivar usuario (soft-disable)
// @Tags         users
// @Produce      json
// @Param        id   path  int  true  "ID del usuario"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.MessageResponse
// @Router       /users/deactivate/{id} [put]
func (h *UserHandler) Deactivate(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.MessageResponse{Message: "User not found."})
	}
	if err := h.uc.Deactivate(id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.MessageResponse{Message: "User not found."})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: fmt.Sprintf("User with ID %d has been deactivated.", id)})
}

// Update godoc
// @Summary      Actualizar usuario (parcial, con cambio de password opcional)
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del usuario"
// @Param        body  body  dto.UpdateUserRequest  true  "campos a actualizar"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.MessageResponse
// @Failure      404   {object}  dto.MessageResponse
// @Router       /users/update/{id} [put]
func (h *UserHandler) Update(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.MessageResponse{Message: "User not found."})
	}
	var in dto.UpdateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{Message: "Invalid request body."})
	}
	if err := h.uc.Update(c.UserContext(), id, in); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.MessageResponse{Message: "User not found."})
		case errors.Is(err, domain.ErrInvalidCredentials):
			// En update el password incorrecto es 400, no 401 como en login.
			return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{Message: "Current password is incorrect."})
		case errors.Is(err, domain.ErrEmailAlreadyExists):
			return c.Status(fiber.StatusConflict).JSON(dto.MessageResponse{Message: "Email already exists."})
		}
		if _, ok := domain.AsValidation(err); ok {
			return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{Message: "Current password is required to update the password."})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "User updated successfully!"})
}

// Me godoc
// @Summary      Usuario autenticado
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[string]dto.UserResponse
// @Failure      401  {object}  dto.MessageResponse
// @Router       /users/me [get]
func (h *UserHandler) Me(c *fiber.Ctx) error {
	user, err := h.uc.GetByID(GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{Message: err.Error()})
	}
	if user == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.MessageResponse{Message: "User not found."})
	}
	return c.JSON(fiber.Map{"user": user})
}
