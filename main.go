package main

import (
	"log"

	"github.com/eventosapp/eventos/config"
	"github.com/eventosapp/eventos/internal/handler"
	"github.com/eventosapp/eventos/internal/middleware"
	"github.com/eventosapp/eventos/internal/repository"
	"github.com/eventosapp/eventos/internal/service"
	"github.com/eventosapp/eventos/internal/session"
	"github.com/eventosapp/eventos/pkg/database"
	"github.com/eventosapp/eventos/pkg/rabbitmq"
	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
)

func main() {
	cfg := config.Load()

	db := database.NewPostgresDB(cfg.DSN())

	// Notifications are optional: without a broker URL the app runs and
	// simply skips publishing.
	var publisher *rabbitmq.Publisher
	if cfg.RabbitURL != "" {
		var err error
		publisher, err = rabbitmq.NewPublisher(cfg.RabbitURL)
		if err != nil {
			log.Fatalf("failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
	}

	sessions := session.New(cfg.IsDevelopment())

	eventoRepo := repository.NewEventoRepository(db)
	registroRepo := repository.NewRegistroRepository(db)
	comentarioRepo := repository.NewComentarioRepository(db)
	categoriaRepo := repository.NewCategoriaRepository(db)
	usuarioRepo := repository.NewUsuarioRepository(db)

	eventoSvc := service.NewEventoService(eventoRepo, registroRepo, comentarioRepo, categoriaRepo, publisher)
	registroSvc := service.NewRegistroService(registroRepo, eventoRepo, publisher)
	comentarioSvc := service.NewComentarioService(comentarioRepo, eventoRepo)
	authSvc := service.NewAuthService(usuarioRepo)

	e := echo.New()
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Use(echoMw.RequestLoggerWithConfig(echoMw.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echoMw.RequestLoggerValues) error {
			log.Printf("%s %s %d", v.Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(echoMw.Recover())
	e.Use(echo.WrapMiddleware(sessions.LoadAndSave))

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok", "service": "eventos"})
	})

	handler.NewEventoHandler(eventoSvc, sessions).RegisterRoutes(e)
	handler.NewRegistroHandler(registroSvc, eventoRepo, sessions).RegisterRoutes(e)
	handler.NewComentarioHandler(comentarioSvc, sessions).RegisterRoutes(e)
	handler.NewAuthHandler(authSvc, sessions).RegisterRoutes(e)

	admin := e.Group("/admin", middleware.RequireAdmin(sessions, authSvc))
	handler.NewAdminHandler(eventoSvc).RegisterRoutes(admin)

	log.Printf("Eventos starting on :%s", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
