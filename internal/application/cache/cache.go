package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog"
)

// Store define el puerto hacia el almacén clave-valor con TTL.
// Get devuelve (nil, nil) cuando la clave no existe: un miss no es un error.
// Invalidate sobre una clave ausente es un no-op.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Invalidate(ctx context.Context, key string) error
}

// ListKey devuelve la clave del snapshot de listado para un tipo de entidad
// ("users", "events", "announcements").
func ListKey(kind string) string {
	return kind + ":getall"
}

// ListCache mantiene el snapshot serializado de "todas las filas" de un tipo
// de entidad, con expiración fija. El snapshot es derivado, no autoritativo:
// la base de datos siempre puede reconstruirlo.
//
// Cualquier fallo del Store degrada a acceso directo a la base: se registra
// en warn y la petición continúa. La consistencia ofrecida es visibilidad
// eventual dentro de la ventana del TTL, no lectura linearizable.
type ListCache[T any] struct {
	store Store
	key   string
	ttl   time.Duration
	log   zerolog.Logger
}

// NewListCache construye el cache de listado para un tipo de entidad.
func NewListCache[T any](store Store, kind string, ttl time.Duration, log zerolog.Logger) *ListCache[T] {
	return &ListCache[T]{
		store: store,
		key:   ListKey(kind),
		ttl:   ttl,
		log:   log.With().Str("cache_key", ListKey(kind)).Logger(),
	}
}

// Key devuelve la clave usada por este cache.
func (c *ListCache[T]) Key() string { return c.key }

// Lookup intenta resolver el listado desde el cache. Devuelve (items, true)
// en hit; (nil, false) en miss o ante cualquier fallo del Store.
func (c *ListCache[T]) Lookup(ctx context.Context) ([]T, bool) {
	raw, err := c.store.Get(ctx, c.key)
	if err != nil {
		c.log.Warn().Err(err).Msg("cache get falló, se consulta la base directamente")
		return nil, false
	}
	if raw == nil {
		return nil, false
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		c.log.Warn().Err(err).Msg("snapshot de cache corrupto, se descarta")
		return nil, false
	}
	return items, true
}

// Fill escribe el snapshot con el TTL configurado. Best-effort: un fallo se
// registra y no afecta la respuesta que ya se va a servir desde la base.
func (c *ListCache[T]) Fill(ctx context.Context, items []T) {
	raw, err := json.Marshal(items)
	if err != nil {
		c.log.Warn().Err(err).Msg("serializar snapshot de cache")
		return
	}
	if err := c.store.Set(ctx, c.key, raw, c.ttl); err != nil {
		c.log.Warn().Err(err).Msg("cache set falló")
	}
}

// Invalidate borra el snapshot. Se invoca después de que la escritura en la
// base fue confirmada y antes de reportar éxito al llamador; ese orden evita
// que un listado posterior sirva un snapshot anterior a la fila nueva.
// Un fallo aquí se registra y no aborta la operación: la entrada envejecida
// expira sola por TTL.
func (c *ListCache[T]) Invalidate(ctx context.Context) {
	if err := c.store.Invalidate(ctx, c.key); err != nil {
		c.log.Warn().Err(err).Msg("cache invalidate falló, el snapshot expira por TTL")
	}
}
