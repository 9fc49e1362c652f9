package entity

import "time"

// Event representa un evento del club. CreatedBy es una referencia débil a
// users.id (sin cascada ni propiedad). Los eventos se borran en duro.
type Event struct {
	ID          int64
	Title       string
	Description string
	StartDate   time.Time
	EndDate     time.Time
	CreatedBy   int64
	IsActive    bool
	CreatedAt   time.Time
}
