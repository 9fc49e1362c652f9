package dto

import "github.com/tu-usuario/club-api/internal/domain/entity"

// RegisterRequest entrada para registro (password en texto, se hashea en el
// use case). Role e IsActive son opcionales con defaults "user" / true.
type RegisterRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Role      string `json:"role"`
	IsActive  *bool  `json:"is_active"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateUserRequest entrada para actualización parcial: los campos nil no se
// tocan. El cambio de password exige CurrentPassword.
type UpdateUserRequest struct {
	FirstName       *string `json:"first_name"`
	LastName        *string `json:"last_name"`
	Email           *string `json:"email"`
	IsActive        *bool   `json:"is_active"`
	NewPassword     string  `json:"new_password"`
	CurrentPassword string  `json:"current_password"`
}

// UserResponse proyección pública de un usuario. El hash de password no tiene
// campo aquí: queda excluido por contrato, no por redacción posterior.
type UserResponse struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	IsActive  bool   `json:"is_active"`
	CreatedAt string `json:"created_at"`
}

// LoginResponse salida de login: proyección del usuario más un JWT.
type LoginResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
	Token   string       `json:"token,omitempty"`
}

// ToUserResponse convierte la entidad a su proyección pública.
func ToUserResponse(u *entity.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Role:      u.Role,
		IsActive:  u.IsActive,
		CreatedAt: FormatTime(u.CreatedAt),
	}
}
