package ports

// Notifier notifica a los miembros sobre hechos del club. Las implementaciones
// deben ser seguras para llamarse desde una goroutine (se usa fire-and-forget).
type Notifier interface {
	AnnouncementCreated(title, content string)
}
