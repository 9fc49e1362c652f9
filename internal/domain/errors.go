package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrInvalidInput       = errors.New("entrada inválida")
)

// ValidationError indica campos requeridos ausentes en la petición.
type ValidationError struct {
	Missing []string
}

// NewValidationError construye el error con la lista de campos faltantes.
func NewValidationError(missing ...string) *ValidationError {
	return &ValidationError{Missing: missing}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("faltan campos requeridos: %s", strings.Join(e.Missing, ", "))
}

// AsValidation extrae un *ValidationError de la cadena de errores, si existe.
func AsValidation(err error) (*ValidationError, bool) {
	var v *ValidationError
	if errors.As(err, &v) {
		return v, true
	}
	return nil, false
}
