package usecase

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/tu-usuario/club-api/internal/application/cache"
	"github.com/tu-usuario/club-api/internal/application/dto"
	"github.com/tu-usuario/club-api/internal/domain"
	"github.com/tu-usuario/club-api/internal/domain/entity"
	"github.com/tu-usuario/club-api/internal/domain/repository"
	"github.com/tu-usuario/club-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens en login.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UserUseCase casos de uso para usuarios: listado cacheado, registro, login,
// actualización y desactivación.
type UserUseCase struct {
	repo   repository.UserRepository
	list   *cache.ListCache[dto.UserResponse]
	jwtCfg JWTConfig
}

// NewUserUseCase construye el caso de uso con sus dependencias explícitas.
func NewUserUseCase(repo repository.UserRepository, store cache.Store, ttl time.Duration, jwtCfg JWTConfig, log zerolog.Logger) *UserUseCase {
	return &UserUseCase{
		repo:   repo,
		list:   cache.NewListCache[dto.UserResponse](store, "users", ttl, log),
		jwtCfg: jwtCfg,
	}
}

// List devuelve todos los usuarios, sirviendo desde el cache si hay snapshot
// vigente; en miss consulta la base y rellena el cache con el TTL configurado.
func (uc *UserUseCase) List(ctx context.Context) ([]dto.UserResponse, error) {
	if items, ok := uc.list.Lookup(ctx); ok {
		return items, nil
	}
	rows, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(rows))
	for _, u := range rows {
		items = append(items, *dto.ToUserResponse(u))
	}
	uc.list.Fill(ctx, items)
	return items, nil
}

// GetByID obtiene un usuario por ID, siempre directo a la base (las lecturas
// por ID nunca consultan el cache). Devuelve (nil, nil) si no existe.
func (uc *UserUseCase) GetByID(id int64) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return dto.ToUserResponse(user), nil
}

// Register crea un usuario: valida presencia de campos, verifica unicidad del
// email, hashea el password con bcrypt, persiste e invalida el snapshot de
// listado antes de reportar éxito.
func (uc *UserUseCase) Register(ctx context.Context, in dto.RegisterRequest) error {
	var missing []string
	if in.FirstName == "" {
		missing = append(missing, "first_name")
	}
	if in.LastName == "" {
		missing = append(missing, "last_name")
	}
	if in.Email == "" {
		missing = append(missing, "email")
	}
	if in.Password == "" {
		missing = append(missing, "password")
	}
	if len(missing) > 0 {
		return domain.NewValidationError(missing...)
	}

	existing, err := uc.repo.GetByEmail(in.Email)
	if err != nil {
		return err
	}
	if existing != nil {
		return domain.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	role := in.Role
	if role == "" {
		role = entity.RoleUser
	}
	isActive := true
	if in.IsActive != nil {
		isActive = *in.IsActive
	}
	user := &entity.User{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         role,
		IsActive:     isActive,
		CreatedAt:    time.Now(),
	}
	if err := uc.repo.Create(user); err != nil {
		return err
	}
	uc.list.Invalidate(ctx)
	return nil
}

// Login verifica email/password. Devuelve la proyección pública y, si hay
// secret configurado, un JWT. Falla con ErrInvalidCredentials tanto si el
// email no existe como si el hash no coincide.
func (uc *UserUseCase) Login(in dto.LoginRequest) (*dto.UserResponse, string, error) {
	var missing []string
	if in.Email == "" {
		missing = append(missing, "email")
	}
	if in.Password == "" {
		missing = append(missing, "password")
	}
	if len(missing) > 0 {
		return nil, "", domain.NewValidationError(missing...)
	}
	user, err := uc.repo.GetByEmail(in.Email)
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		return nil, "", domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, "", domain.ErrInvalidCredentials
	}
	var token string
	if uc.jwtCfg.Secret != "" {
		token, err = jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
		if err != nil {
			return nil, "", err
		}
	}
	return dto.ToUserResponse(user), token, nil
}

// Update aplica una actualización parcial. El cambio de password exige el
// password actual y lo verifica contra el hash almacenado antes de
// reemplazarlo. Invalida el snapshot de listado tras persistir.
func (uc *UserUseCase) Update(ctx context.Context, id int64, in dto.UpdateUserRequest) error {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrNotFound
	}

	if in.FirstName != nil {
		user.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		user.LastName = *in.LastName
	}
	if in.Email != nil {
		user.Email = *in.Email
	}
	if in.IsActive != nil {
		user.IsActive = *in.IsActive
	}
	if in.NewPassword != "" {
		if in.CurrentPassword == "" {
			return domain.NewValidationError("current_password")
		}
		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.CurrentPassword)); err != nil {
			return domain.ErrInvalidCredentials
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		user.PasswordHash = string(hash)
	}

	if err := uc.repo.Update(user); err != nil {
		return err
	}
	uc.list.Invalidate(ctx)
	return nil
}

// Deactivate apaga el flag is_active del usuario (soft-disable, la fila no se
// borra). No hay operación inversa de reactivación.
//
// No se invalida el snapshot de listado: la entrada envejecida expira sola
// por TTL, así que el listado puede servir al usuario como activo hasta 60s.
func (uc *UserUseCase) Deactivate(id int64) error {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrNotFound
	}
	user.IsActive = false
	return uc.repo.Update(user)
}
