package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/club-api/internal/application/usecase"
	"github.com/tu-usuario/club-api/internal/domain"
	"github.com/tu-usuario/club-api/internal/domain/entity"
	apphttp "github.com/tu-usuario/club-api/internal/interfaces/http"
)

const testJWTSecret = "test-secret-key-for-unit-tests"

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria para montar la app completa sin PostgreSQL ni Redis
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	data map[string][]byte
}

func newMemStore() *memStore { return &memStore{data: map[string][]byte{}} }

func (s *memStore) Get(_ context.Context, key string) ([]byte, error) { return s.data[key], nil }

func (s *memStore) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	s.data[key] = value
	return nil
}

func (s *memStore) Invalidate(_ context.Context, key string) error {
	delete(s.data, key)
	return nil
}

type memUserRepo struct {
	seq   int64
	users map[int64]*entity.User
}

func newMemUserRepo() *memUserRepo { return &memUserRepo{users: map[int64]*entity.User{}} }

func (r *memUserRepo) Create(u *entity.User) error {
	for _, e := range r.users {
		if e.Email == u.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	r.seq++
	u.ID = r.seq
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *memUserRepo) GetByID(id int64) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *memUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) Update(u *entity.User) error {
	if _, ok := r.users[u.ID]; !ok {
		return errors.New("fila inexistente")
	}
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *memUserRepo) List() ([]*entity.User, error) {
	ids := make([]int64, 0, len(r.users))
	for id := range r.users {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]*entity.User, 0, len(ids))
	for _, id := range ids {
		cp := *r.users[id]
		out = append(out, &cp)
	}
	return out, nil
}

type memEventRepo struct {
	seq    int64
	events map[int64]*entity.Event
}

func newMemEventRepo() *memEventRepo { return &memEventRepo{events: map[int64]*entity.Event{}} }

func (r *memEventRepo) Create(e *entity.Event) error {
	r.seq++
	e.ID = r.seq
	cp := *e
	r.events[e.ID] = &cp
	return nil
}

func (r *memEventRepo) GetByID(id int64) (*entity.Event, error) {
	e, ok := r.events[id]
	if !ok {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}

func (r *memEventRepo) List() ([]*entity.Event, error) {
	ids := make([]int64, 0, len(r.events))
	for id := range r.events {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]*entity.Event, 0, len(ids))
	for _, id := range ids {
		cp := *r.events[id]
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memEventRepo) Delete(id int64) error {
	delete(r.events, id)
	return nil
}

func (r *memEventRepo) DeactivateEnded(now time.Time) (int64, error) {
	var n int64
	for _, e := range r.events {
		if e.IsActive && e.EndDate.Before(now) {
			e.IsActive = false
			n++
		}
	}
	return n, nil
}

type memAnnouncementRepo struct {
	seq           int64
	announcements map[int64]*entity.Announcement
}

func newMemAnnouncementRepo() *memAnnouncementRepo {
	return &memAnnouncementRepo{announcements: map[int64]*entity.Announcement{}}
}

func (r *memAnnouncementRepo) Create(a *entity.Announcement) error {
	r.seq++
	a.ID = r.seq
	cp := *a
	r.announcements[a.ID] = &cp
	return nil
}

func (r *memAnnouncementRepo) GetByID(id int64) (*entity.Announcement, error) {
	a, ok := r.announcements[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (r *memAnnouncementRepo) List() ([]*entity.Announcement, error) {
	ids := make([]int64, 0, len(r.announcements))
	for id := range r.announcements {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]*entity.Announcement, 0, len(ids))
	for _, id := range ids {
		cp := *r.announcements[id]
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memAnnouncementRepo) Delete(id int64) error {
	delete(r.announcements, id)
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// buildApp monta la app Fiber completa (router + middlewares) sobre los fakes.
func buildApp() *fiber.App {
	store := newMemStore()
	ttl := 60 * time.Second
	jwtCfg := usecase.JWTConfig{Secret: testJWTSecret, ExpMinutes: 60, Issuer: "club-api-test"}

	userUC := usecase.NewUserUseCase(newMemUserRepo(), store, ttl, jwtCfg, zerolog.Nop())
	eventUC := usecase.NewEventUseCase(newMemEventRepo(), store, ttl, zerolog.Nop())
	announcementUC := usecase.NewAnnouncementUseCase(newMemAnnouncementRepo(), store, ttl, nil, zerolog.Nop())

	app := fiber.New()
	app.Use(apphttp.CORSHeaders())
	apphttp.Router(app, apphttp.RouterDeps{
		UserUC:         userUC,
		EventUC:        eventUC,
		AnnouncementUC: announcementUC,
		JWTSecret:      testJWTSecret,
	})
	return app
}

// doJSON lanza una petición con cuerpo JSON opcional y devuelve la respuesta.
func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// decodeBody parsea el cuerpo JSON en un mapa genérico.
func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// registerUser registra un usuario válido y verifica el 201.
func registerUser(t *testing.T, app *fiber.App, email string) {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/users/register", map[string]any{
		"first_name": "Ada",
		"last_name":  "Lovelace",
		"email":      email,
		"password":   "secreto123",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()
}
