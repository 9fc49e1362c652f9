package entity

import "time"

// Announcement representa un anuncio publicado a los miembros del club.
// CreatedBy es una referencia débil a users.id. Se borra en duro.
type Announcement struct {
	ID        int64
	Title     string
	Content   string
	CreatedBy int64
	IsActive  bool
	CreatedAt time.Time
}
