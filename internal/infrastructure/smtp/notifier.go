package smtp

import (
	"fmt"
	"net/smtp"

	"github.com/jordan-wright/email"
	"github.com/rs/zerolog"
	"github.com/tu-usuario/club-api/internal/application/ports"
	"github.com/tu-usuario/club-api/internal/domain/repository"
	"github.com/tu-usuario/club-api/pkg/config"
)

var _ ports.Notifier = (*Notifier)(nil)

// Notifier envía correos a los miembros activos cuando se publica un anuncio.
// Best-effort: un fallo se registra y no afecta la operación que lo disparó.
type Notifier struct {
	cfg   config.SMTPConfig
	users repository.UserRepository
	log   zerolog.Logger
}

// NewNotifier construye el notificador SMTP.
func NewNotifier(cfg config.SMTPConfig, users repository.UserRepository, log zerolog.Logger) *Notifier {
	return &Notifier{cfg: cfg, users: users, log: log}
}

// AnnouncementCreated envía el anuncio por correo a todos los usuarios activos.
func (n *Notifier) AnnouncementCreated(title, content string) {
	users, err := n.users.List()
	if err != nil {
		n.log.Error().Err(err).Msg("listar destinatarios para el anuncio")
		return
	}
	var recipients []string
	for _, u := range users {
		if u.IsActive {
			recipients = append(recipients, u.Email)
		}
	}
	if len(recipients) == 0 {
		return
	}

	e := email.NewEmail()
	e.From = n.cfg.From
	e.Bcc = recipients
	e.Subject = fmt.Sprintf("Nuevo anuncio: %s", title)
	e.Text = []byte(content)

	addr := fmt.Sprintf("%s:%d", n.cfg.Host, n.cfg.Port)
	auth := smtp.PlainAuth("", n.cfg.Username, n.cfg.Password, n.cfg.Host)
	if err := e.Send(addr, auth); err != nil {
		n.log.Error().Err(err).Str("title", title).Msg("enviar correo de anuncio")
		return
	}
	n.log.Info().Int("recipients", len(recipients)).Str("title", title).Msg("anuncio notificado por correo")
}
