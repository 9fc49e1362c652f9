package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/club-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	UserUC         *usecase.UserUseCase
	EventUC        *usecase.EventUseCase
	AnnouncementUC *usecase.AnnouncementUseCase
	JWTSecret      string
}

// Router registra las rutas de la API, agrupadas por tipo de entidad.
func Router(app *fiber.App, deps RouterDeps) {
	// Users
	users := app.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/getall", userHandler.GetAll)
	users.Post("/register", userHandler.Register)
	users.Post("/login", userHandler.Login)
	users.Get("/me", AuthMiddleware(deps.JWTSecret), userHandler.Me)
	users.Put("/deactivate/:id", userHandler.Deactivate)
	users.Put("/update/:id", userHandler.Update)
	// El comodín va al final para no capturar /getall ni /me.
	users.Get("/:id", userHandler.GetByID)

	// Events
	events := app.Group("/events")
	eventHandler := NewEventHandler(deps.EventUC)
	events.Get("/getall", eventHandler.GetAll)
	events.Post("/create", eventHandler.Create)
	events.Delete("/delete/:id", eventHandler.Delete)

	// Announcements
	announcements := app.Group("/announcements")
	announcementHandler := NewAnnouncementHandler(deps.AnnouncementUC)
	announcements.Get("/getall", announcementHandler.GetAll)
	announcements.Post("/create", announcementHandler.Create)
	announcements.Delete("/delete/:id", announcementHandler.Delete)
}
