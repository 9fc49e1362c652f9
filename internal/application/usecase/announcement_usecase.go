package usecase

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/tu-usuario/club-api/internal/application/cache"
	"github.com/tu-usuario/club-api/internal/application/dto"
	"github.com/tu-usuario/club-api/internal/application/ports"
	"github.com/tu-usuario/club-api/internal/domain"
	"github.com/tu-usuario/club-api/internal/domain/entity"
	"github.com/tu-usuario/club-api/internal/domain/repository"
)

// AnnouncementUseCase casos de uso para anuncios: listado cacheado, creación y
// borrado duro. Si hay notifier configurado, la creación dispara una
// notificación fire-and-forget a los miembros.
type AnnouncementUseCase struct {
	repo     repository.AnnouncementRepository
	list     *cache.ListCache[dto.AnnouncementResponse]
	notifier ports.Notifier // opcional, puede ser nil
}

// NewAnnouncementUseCase construye el caso de uso. notifier puede ser nil.
func NewAnnouncementUseCase(repo repository.AnnouncementRepository, store cache.Store, ttl time.Duration, notifier ports.Notifier, log zerolog.Logger) *AnnouncementUseCase {
	return &AnnouncementUseCase{
		repo:     repo,
		list:     cache.NewListCache[dto.AnnouncementResponse](store, "announcements", ttl, log),
		notifier: notifier,
	}
}

// List devuelve todos los anuncios, con lectura a través del cache.
func (uc *AnnouncementUseCase) List(ctx context.Context) ([]dto.AnnouncementResponse, error) {
	if items, ok := uc.list.Lookup(ctx); ok {
		return items, nil
	}
	rows, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.AnnouncementResponse, 0, len(rows))
	for _, a := range rows {
		items = append(items, *dto.ToAnnouncementResponse(a))
	}
	uc.list.Fill(ctx, items)
	return items, nil
}

// Create valida presencia de campos, persiste el anuncio e invalida el
// snapshot de listado antes de reportar éxito.
func (uc *AnnouncementUseCase) Create(ctx context.Context, in dto.CreateAnnouncementRequest) error {
	var missing []string
	if in.Title == "" {
		missing = append(missing, "title")
	}
	if in.Content == "" {
		missing = append(missing, "content")
	}
	if in.CreatedBy == 0 {
		missing = append(missing, "created_by")
	}
	if len(missing) > 0 {
		return domain.NewValidationError(missing...)
	}

	a := &entity.Announcement{
		Title:     in.Title,
		Content:   in.Content,
		CreatedBy: in.CreatedBy,
		IsActive:  true,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(a); err != nil {
		return err
	}
	uc.list.Invalidate(ctx)
	if uc.notifier != nil {
		go uc.notifier.AnnouncementCreated(a.Title, a.Content)
	}
	return nil
}

// Delete borra el anuncio en duro. Falla con ErrNotFound si la fila no existe;
// en ese caso no se emite ninguna invalidación.
func (uc *AnnouncementUseCase) Delete(ctx context.Context, id int64) error {
	a, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if a == nil {
		return domain.ErrNotFound
	}
	if err := uc.repo.Delete(id); err != nil {
		return err
	}
	uc.list.Invalidate(ctx)
	return nil
}
