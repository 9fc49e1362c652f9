package usecase_test

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/tu-usuario/club-api/internal/application/dto"
	"github.com/tu-usuario/club-api/internal/domain"
	"github.com/tu-usuario/club-api/internal/domain/entity"
)

// memStore implementación en memoria del puerto cache.Store.
type memStore struct {
	data        map[string][]byte
	failAll     bool
	invalidated []string // claves invalidadas, en orden
}

func newMemStore() *memStore {
	return &memStore{data: map[string][]byte{}}
}

func (s *memStore) Get(_ context.Context, key string) ([]byte, error) {
	if s.failAll {
		return nil, errors.New("cache no disponible")
	}
	return s.data[key], nil
}

func (s *memStore) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	if s.failAll {
		return errors.New("cache no disponible")
	}
	s.data[key] = value
	return nil
}

func (s *memStore) Invalidate(_ context.Context, key string) error {
	if s.failAll {
		return errors.New("cache no disponible")
	}
	delete(s.data, key)
	s.invalidated = append(s.invalidated, key)
	return nil
}

func (s *memStore) has(key string) bool {
	_, ok := s.data[key]
	return ok
}

// memUserRepo implementación en memoria del puerto UserRepository.
type memUserRepo struct {
	seq   int64
	users map[int64]*entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[int64]*entity.User{}}
}

func (r *memUserRepo) Create(u *entity.User) error {
	for _, existing := range r.users {
		if existing.Email == u.Email {
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
	for id, existing := range r.users {
		if id != u.ID && existing.Email == u.Email {
			return domain.ErrEmailAlreadyExists
		}
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
	list := make([]*entity.User, 0, len(ids))
	for _, id := range ids {
		cp := *r.users[id]
		list = append(list, &cp)
	}
	return list, nil
}

// userFromRegister construye una entidad mínima para sembrar el repo por
// fuera del caso de uso.
func userFromRegister(in dto.RegisterRequest) *entity.User {
	return &entity.User{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		PasswordHash: "$2a$10$hashfalsoparaelrepositorio",
		Role:         entity.RoleUser,
		IsActive:     true,
		CreatedAt:    time.Now(),
	}
}

// memEventRepo implementación en memoria del puerto EventRepository.
type memEventRepo struct {
	seq    int64
	events map[int64]*entity.Event
}

func newMemEventRepo() *memEventRepo {
	return &memEventRepo{events: map[int64]*entity.Event{}}
}

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
	list := make([]*entity.Event, 0, len(ids))
	for _, id := range ids {
		cp := *r.events[id]
		list = append(list, &cp)
	}
	return list, nil
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

// memAnnouncementRepo implementación en memoria del puerto AnnouncementRepository.
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
	list := make([]*entity.Announcement, 0, len(ids))
	for _, id := range ids {
		cp := *r.announcements[id]
		list = append(list, &cp)
	}
	return list, nil
}

func (r *memAnnouncementRepo) Delete(id int64) error {
	delete(r.announcements, id)
	return nil
}
