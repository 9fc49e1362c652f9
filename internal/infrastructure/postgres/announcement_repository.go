package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/club-api/internal/domain/entity"
	"github.com/tu-usuario/club-api/internal/domain/repository"
)

var _ repository.AnnouncementRepository = (*AnnouncementRepo)(nil)

// AnnouncementRepo implementación del puerto AnnouncementRepository sobre PostgreSQL.
type AnnouncementRepo struct {
	pool *pgxpool.Pool
}

// NewAnnouncementRepository construye el adaptador de persistencia para anuncios.
func NewAnnouncementRepository(pool *pgxpool.Pool) *AnnouncementRepo {
	return &AnnouncementRepo{pool: pool}
}

// Create persiste un nuevo anuncio y asigna el ID generado.
func (r *AnnouncementRepo) Create(a *entity.Announcement) error {
	query := `
		INSERT INTO announcements (title, content, created_by, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.pool.QueryRow(context.Background(), query,
		a.Title, a.Content, a.CreatedBy, a.IsActive, a.CreatedAt,
	).Scan(&a.ID)
	if err != nil {
		return fmt.Errorf("insert announcement: %w", err)
	}
	return nil
}

// GetByID obtiene un anuncio por ID. Devuelve (nil, nil) si no existe.
func (r *AnnouncementRepo) GetByID(id int64) (*entity.Announcement, error) {
	query := `
		SELECT id, title, content, COALESCE(created_by, 0), is_active, created_at
		FROM announcements WHERE id = $1`
	var a entity.Announcement
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&a.ID, &a.Title, &a.Content, &a.CreatedBy, &a.IsActive, &a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get announcement by id: %w", err)
	}
	return &a, nil
}

// List devuelve todos los anuncios en orden de creación.
func (r *AnnouncementRepo) List() ([]*entity.Announcement, error) {
	query := `
		SELECT id, title, content, COALESCE(created_by, 0), is_active, created_at
		FROM announcements ORDER BY id`
	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list announcements: %w", err)
	}
	defer rows.Close()
	var list []*entity.Announcement
	for rows.Next() {
		var a entity.Announcement
		if err := rows.Scan(&a.ID, &a.Title, &a.Content, &a.CreatedBy, &a.IsActive, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan announcement: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// Delete borra un anuncio por ID.
func (r *AnnouncementRepo) Delete(id int64) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM announcements WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete announcement: %w", err)
	}
	return nil
}
