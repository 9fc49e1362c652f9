package dto

import "github.com/tu-usuario/club-api/internal/domain/entity"

// CreateEventRequest entrada para crear un evento. Las fechas llegan como
// strings del contrato; no se valida el orden start/end.
type CreateEventRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	CreatedBy   int64  `json:"created_by"`
}

// EventResponse proyección pública de un evento (sin is_active).
type EventResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	CreatedBy   int64  `json:"created_by"`
	CreatedAt   string `json:"created_at"`
}

// ToEventResponse convierte la entidad a su proyección pública.
func ToEventResponse(e *entity.Event) *EventResponse {
	if e == nil {
		return nil
	}
	return &EventResponse{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		StartDate:   FormatTime(e.StartDate),
		EndDate:     FormatTime(e.EndDate),
		CreatedBy:   e.CreatedBy,
		CreatedAt:   FormatTime(e.CreatedAt),
	}
}
