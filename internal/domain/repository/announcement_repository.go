package repository

import "github.com/tu-usuario/club-api/internal/domain/entity"

// AnnouncementRepository define el puerto de persistencia para Announcement.
type AnnouncementRepository interface {
	Create(a *entity.Announcement) error
	GetByID(id int64) (*entity.Announcement, error)
	List() ([]*entity.Announcement, error)
	Delete(id int64) error
}
