package repository

import (
	"time"

	"github.com/tu-usuario/club-api/internal/domain/entity"
)

// EventRepository define el puerto de persistencia para Event.
type EventRepository interface {
	Create(event *entity.Event) error
	GetByID(id int64) (*entity.Event, error)
	List() ([]*entity.Event, error)
	Delete(id int64) error
	// DeactivateEnded marca como inactivos los eventos cuya fecha de fin ya
	// pasó y devuelve cuántas filas cambió.
	DeactivateEnded(now time.Time) (int64, error)
}
