package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/club-api/internal/application/dto"
	"github.com/tu-usuario/club-api/internal/application/usecase"
	"github.com/tu-usuario/club-api/internal/domain"
)

// AnnouncementHandler maneja las peticiones HTTP del recurso Announcement.
type AnnouncementHandler struct {
	uc *usecase.AnnouncementUseCase
}

// NewAnnouncementHandler construye el handler inyectando el caso de uso.
func NewAnnouncementHandler(uc *usecase.AnnouncementUseCase) *AnnouncementHandler {
	return &AnnouncementHandler{uc: uc}
}

// GetAll godoc
// @Summary      Listar anuncios
// @Tags         announcements
// @Produce      json
// @Success      200  {object}  map[string][]dto.AnnouncementResponse
// @Router       /announcements/getall [get]
func (h *AnnouncementHandler) GetAll(c *fiber.Ctx) error {
	announcements, err := h.uc.List(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{Message: err.Error()})
	}
	return c.JSON(fiber.Map{"announcements": announcements})
}

// Create godoc
// @Summary      Crear anuncio
// @Tags         announcements
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAnnouncementRequest  true  "title, content, created_by"
// @Success      201   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.MessageResponse
// @Router       /announcements/create [post]
func (h *AnnouncementHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAnnouncementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{Message: "Invalid request body."})
	}
	if err := h.uc.Create(c.UserContext(), in); err != nil {
		if _, ok := domain.AsValidation(err); ok {
			return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{Message: "Title, content, and created_by are required."})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "Announcement created successfully!"})
}

// Delete godoc
// @Summary      Borrar anuncio
// @Tags         announcements
// @Produce      json
// @Param        id   path  int  true  "ID del anuncio"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.MessageResponse
// @Router       /announcements/delete/{id} [delete]
func (h *AnnouncementHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.MessageResponse{Message: "Announcement not found."})
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.MessageResponse{Message: "Announcement not found."})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "Announcement deleted successfully!"})
}
