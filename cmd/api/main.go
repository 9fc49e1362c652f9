package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/robfig/cron/v3"
	"github.com/tu-usuario/club-api/internal/application/ports"
	"github.com/tu-usuario/club-api/internal/application/usecase"
	"github.com/tu-usuario/club-api/internal/infrastructure/postgres"
	infraredis "github.com/tu-usuario/club-api/internal/infrastructure/redis"
	infrasmtp "github.com/tu-usuario/club-api/internal/infrastructure/smtp"
	httpRouter "github.com/tu-usuario/club-api/internal/interfaces/http"
	"github.com/tu-usuario/club-api/pkg/config"
	"github.com/tu-usuario/club-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Bootstrap(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("bootstrap del esquema")
	}

	redisClient, err := infraredis.NewClient(ctx, cfg.Redis)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a Redis")
	}
	defer redisClient.Close()
	store := infraredis.NewStore(redisClient)

	userRepo := postgres.NewUserRepository(pool)
	eventRepo := postgres.NewEventRepository(pool)
	announcementRepo := postgres.NewAnnouncementRepository(pool)

	// Notificación de anuncios por correo: solo si hay SMTP configurado.
	var notifier ports.Notifier
	if cfg.SMTP.Enabled() {
		notifier = infrasmtp.NewNotifier(cfg.SMTP, userRepo, log.Zerolog())
		log.Info().Str("host", cfg.SMTP.Host).Msg("notificación de anuncios por correo habilitada")
	}

	ttl := cfg.Cache.TTL()
	jwtCfg := usecase.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}
	userUC := usecase.NewUserUseCase(userRepo, store, ttl, jwtCfg, log.Zerolog())
	eventUC := usecase.NewEventUseCase(eventRepo, store, ttl, log.Zerolog())
	announcementUC := usecase.NewAnnouncementUseCase(announcementRepo, store, ttl, notifier, log.Zerolog())

	// Barrido periódico de eventos terminados (opcional).
	var sweeper *cron.Cron
	if cfg.Sweep.Enabled {
		sweeper = cron.New()
		_, err := sweeper.AddFunc(cfg.Sweep.Schedule, func() {
			if err := eventUC.DeactivateEnded(context.Background()); err != nil {
				log.Error().Err(err).Msg("barrido de eventos terminados")
			}
		})
		if err != nil {
			log.Fatal().Err(err).Str("schedule", cfg.Sweep.Schedule).Msg("programar barrido de eventos")
		}
		sweeper.Start()
		log.Info().Str("schedule", cfg.Sweep.Schedule).Msg("barrido de eventos habilitado")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))
	app.Use(httpRouter.CORSHeaders())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Club API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		UserUC:         userUC,
		EventUC:        eventUC,
		AnnouncementUC: announcementUC,
		JWTSecret:      cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	if sweeper != nil {
		sweeper.Stop()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
