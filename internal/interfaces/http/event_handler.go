package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/club-api/internal/application/dto"
	"github.com/tu-usuario/club-api/internal/application/usecase"
	"github.com/tu-usuario/club-api/internal/domain"
)

// EventHandler maneja las peticiones HTTP del recurso Event.
type EventHandler struct {
	uc *usecase.EventUseCase
}

// NewEventHandler construye el handler inyectando el caso de uso.
func NewEventHandler(uc *usecase.EventUseCase) *EventHandler {
	return &EventHandler{uc: uc}
}

// GetAll godoc
// @Summary      Listar eventos
// @Tags         events
// @Produce      json
// @Success      200  {object}  map[string][]dto.EventResponse
// @Router       /events/getall [get]
func (h *EventHandler) GetAll(c *fiber.Ctx) error {
	events, err := h.uc.List(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{Message: err.Error()})
	}
	return c.JSON(fiber.Map{"events": events})
}

// Create godoc
// @Summary      Crear evento
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateEventRequest  true  "title, start_date, end_date, created_by"
// @Success      201   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.MessageResponse
// @Router       /events/create [post]
func (h *EventHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateEventRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{Message: "Invalid request body."})
	}
	if err := h.uc.Create(c.UserContext(), in); err != nil {
		if _, ok := domain.AsValidation(err); ok {
			return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{Message: "Title, start_date, end_date, and created_by are required."})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{Message: "Invalid date format."})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "Event created successfully!"})
}

// Delete godoc
// @Summary      Borrar evento
// @Tags         events
// @Produce      json
// @Param        id   path  int  true  "ID del evento"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.MessageResponse
// @Router       /events/delete/{id} [delete]
func (h *EventHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.MessageResponse{Message: "Event not found."})
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.MessageResponse{Message: "Event not found."})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "Event deleted successfully!"})
}
