package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Bootstrap crea las tablas si no existen. Reemplaza un esquema de migraciones
// completo: el servicio arranca contra una base vacía.
func Bootstrap(ctx context.Context, pool *pgxpool.Pool) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id         BIGSERIAL PRIMARY KEY,
			first_name VARCHAR(50)  NOT NULL,
			last_name  VARCHAR(50)  NOT NULL,
			email      VARCHAR(100) NOT NULL UNIQUE,
			password   VARCHAR(128) NOT NULL,
			role       VARCHAR(20)  NOT NULL DEFAULT 'user' CHECK (role IN ('admin', 'user')),
			is_active  BOOLEAN      NOT NULL DEFAULT TRUE,
			created_at TIMESTAMP    NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS events (
			id          BIGSERIAL PRIMARY KEY,
			title       VARCHAR(100) NOT NULL,
			description TEXT,
			start_date  TIMESTAMP NOT NULL,
			end_date    TIMESTAMP NOT NULL,
			created_by  BIGINT REFERENCES users (id),
			is_active   BOOLEAN   NOT NULL DEFAULT TRUE,
			created_at  TIMESTAMP NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS announcements (
			id         BIGSERIAL PRIMARY KEY,
			title      VARCHAR(100) NOT NULL,
			content    TEXT NOT NULL,
			created_by BIGINT REFERENCES users (id),
			is_active  BOOLEAN   NOT NULL DEFAULT TRUE,
			created_at TIMESTAMP NOT NULL DEFAULT now()
		)`,
	}
	for _, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("bootstrap schema: %w", err)
		}
	}
	return nil
}
