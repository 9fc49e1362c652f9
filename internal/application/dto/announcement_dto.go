package dto

import "github.com/tu-usuario/club-api/internal/domain/entity"

// CreateAnnouncementRequest entrada para crear un anuncio.
type CreateAnnouncementRequest struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	CreatedBy int64  `json:"created_by"`
}

// AnnouncementResponse proyección pública de un anuncio (sin is_active).
type AnnouncementResponse struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	CreatedBy int64  `json:"created_by"`
	CreatedAt string `json:"created_at"`
}

// ToAnnouncementResponse convierte la entidad a su proyección pública.
func ToAnnouncementResponse(a *entity.Announcement) *AnnouncementResponse {
	if a == nil {
		return nil
	}
	return &AnnouncementResponse{
		ID:        a.ID,
		Title:     a.Title,
		Content:   a.Content,
		CreatedBy: a.CreatedBy,
		CreatedAt: FormatTime(a.CreatedAt),
	}
}
