package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/club-api/internal/domain/entity"
	"github.com/tu-usuario/club-api/internal/domain/repository"
)

var _ repository.EventRepository = (*EventRepo)(nil)

// EventRepo implementación del puerto EventRepository sobre PostgreSQL.
type EventRepo struct {
	pool *pgxpool.Pool
}

// NewEventRepository construye el adaptador de persistencia para eventos.
func NewEventRepository(pool *pgxpool.Pool) *EventRepo {
	return &EventRepo{pool: pool}
}

// Create persiste un nuevo evento y asigna el ID generado.
func (r *EventRepo) Create(event *entity.Event) error {
	query := `
		INSERT INTO events (title, description, start_date, end_date, created_by, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.pool.QueryRow(context.Background(), query,
		event.Title, event.Description, event.StartDate, event.EndDate,
		event.CreatedBy, event.IsActive, event.CreatedAt,
	).Scan(&event.ID)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	return nil
}

// GetByID obtiene un evento por ID. Devuelve (nil, nil) si no existe.
func (r *EventRepo) GetByID(id int64) (*entity.Event, error) {
	query := `
		SELECT id, title, COALESCE(description, ''), start_date, end_date, COALESCE(created_by, 0), is_active, created_at
		FROM events WHERE id = $1`
	var e entity.Event
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&e.ID, &e.Title, &e.Description, &e.StartDate, &e.EndDate,
		&e.CreatedBy, &e.IsActive, &e.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get event by id: %w", err)
	}
	return &e, nil
}

// List devuelve todos los eventos en orden de creación.
func (r *EventRepo) List() ([]*entity.Event, error) {
	query := `
		SELECT id, title, COALESCE(description, ''), start_date, end_date, COALESCE(created_by, 0), is_active, created_at
		FROM events ORDER BY id`
	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()
	var list []*entity.Event
	for rows.Next() {
		var e entity.Event
		if err := rows.Scan(&e.ID, &e.Title, &e.Description, &e.StartDate, &e.EndDate, &e.CreatedBy, &e.IsActive, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// Delete borra un evento por ID.
func (r *EventRepo) Delete(id int64) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}

// DeactivateEnded marca como inactivos los eventos con end_date anterior a now.
func (r *EventRepo) DeactivateEnded(now time.Time) (int64, error) {
	tag, err := r.pool.Exec(context.Background(),
		`UPDATE events SET is_active = FALSE WHERE is_active AND end_date < $1`, now)
	if err != nil {
		return 0, fmt.Errorf("deactivate ended events: %w", err)
	}
	return tag.RowsAffected(), nil
}
