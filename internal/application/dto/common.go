package dto

import "time"

// TimeLayout es el formato de fecha-hora del contrato JSON (sin zona horaria),
// p.ej. "2024-05-01T00:00:00".
const TimeLayout = "2006-01-02T15:04:05"

// FormatTime serializa un time.Time al formato del contrato.
func FormatTime(t time.Time) string {
	return t.Format(TimeLayout)
}

// ParseTime acepta el formato del contrato, RFC3339 o fecha sola.
func ParseTime(s string) (time.Time, error) {
	layouts := []string{TimeLayout, time.RFC3339, "2006-01-02"}
	var lastErr error
	for _, layout := range layouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// MessageResponse cuerpo genérico {"message": "..."} usado por el contrato
// tanto en éxitos como en errores.
type MessageResponse struct {
	Message string `json:"message"`
}
