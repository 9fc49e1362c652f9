package usecase

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/tu-usuario/club-api/internal/application/cache"
	"github.com/tu-usuario/club-api/internal/application/dto"
	"github.com/tu-usuario/club-api/internal/domain"
	"github.com/tu-usuario/club-api/internal/domain/entity"
	"github.com/tu-usuario/club-api/internal/domain/repository"
)

// EventUseCase casos de uso para eventos: listado cacheado, creación y borrado
// duro.
type EventUseCase struct {
	repo repository.EventRepository
	list *cache.ListCache[dto.EventResponse]
	log  zerolog.Logger
}

// NewEventUseCase construye el caso de uso.
func NewEventUseCase(repo repository.EventRepository, store cache.Store, ttl time.Duration, log zerolog.Logger) *EventUseCase {
	return &EventUseCase{
		repo: repo,
		list: cache.NewListCache[dto.EventResponse](store, "events", ttl, log),
		log:  log,
	}
}

// List devuelve todos los eventos, con lectura a través del cache.
func (uc *EventUseCase) List(ctx context.Context) ([]dto.EventResponse, error) {
	if items, ok := uc.list.Lookup(ctx); ok {
		return items, nil
	}
	rows, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.EventResponse, 0, len(rows))
	for _, e := range rows {
		items = append(items, *dto.ToEventResponse(e))
	}
	uc.list.Fill(ctx, items)
	return items, nil
}

// Create valida presencia de campos, persiste el evento e invalida el snapshot
// de listado antes de reportar éxito. No se valida el orden start/end: se
// aceptan las fechas tal como llegan.
func (uc *EventUseCase) Create(ctx context.Context, in dto.CreateEventRequest) error {
	var missing []string
	if in.Title == "" {
		missing = append(missing, "title")
	}
	if in.StartDate == "" {
		missing = append(missing, "start_date")
	}
	if in.EndDate == "" {
		missing = append(missing, "end_date")
	}
	if in.CreatedBy == 0 {
		missing = append(missing, "created_by")
	}
	if len(missing) > 0 {
		return domain.NewValidationError(missing...)
	}

	start, err := dto.ParseTime(in.StartDate)
	if err != nil {
		return domain.ErrInvalidInput
	}
	end, err := dto.ParseTime(in.EndDate)
	if err != nil {
		return domain.ErrInvalidInput
	}

	event := &entity.Event{
		Title:       in.Title,
		Description: in.Description,
		StartDate:   start,
		EndDate:     end,
		CreatedBy:   in.CreatedBy,
		IsActive:    true,
		CreatedAt:   time.Now(),
	}
	if err := uc.repo.Create(event); err != nil {
		return err
	}
	uc.list.Invalidate(ctx)
	return nil
}

// Delete borra el evento en duro. Falla con ErrNotFound si la fila no existe;
// en ese caso no se emite ninguna invalidación.
func (uc *EventUseCase) Delete(ctx context.Context, id int64) error {
	event, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if event == nil {
		return domain.ErrNotFound
	}
	if err := uc.repo.Delete(id); err != nil {
		return err
	}
	uc.list.Invalidate(ctx)
	return nil
}

// DeactivateEnded marca como inactivos los eventos ya terminados e invalida el
// snapshot si cambió alguna fila. Pensado para ejecutarse desde el cron.
func (uc *EventUseCase) DeactivateEnded(ctx context.Context) error {
	n, err := uc.repo.DeactivateEnded(time.Now())
	if err != nil {
		return err
	}
	if n > 0 {
		uc.log.Info().Int64("events", n).Msg("eventos terminados marcados como inactivos")
		uc.list.Invalidate(ctx)
	}
	return nil
}
