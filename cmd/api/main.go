package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/nomascartera/proyectos-api/internal/application/auth"
	"github.com/nomascartera/proyectos-api/internal/application/usecase"
	"github.com/nomascartera/proyectos-api/internal/infrastructure/postgres"
	httpRouter "github.com/nomascartera/proyectos-api/internal/interfaces/http"
	"github.com/nomascartera/proyectos-api/pkg/config"
	"github.com/nomascartera/proyectos-api/pkg/jwt"
	"github.com/nomascartera/proyectos-api/pkg/logger"
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

	empresaRepo := postgres.NewEmpresaRepository(pool)
	usuarioRepo := postgres.NewUsuarioRepository(pool)
	proyectoRepo := postgres.NewProyectoRepository(pool)
	historiaRepo := postgres.NewHistoriaRepository(pool)
	ticketRepo := postgres.NewTicketRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	jwtCfg := jwt.Config{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}
	authUC := auth.NewUseCase(empresaRepo, usuarioRepo, jwtCfg)
	resolver := auth.NewResolver(empresaRepo, usuarioRepo)
	empresaUC := usecase.NewEmpresaUseCase(empresaRepo)
	proyectoUC := usecase.NewProyectoUseCase(proyectoRepo, txRunner)
	historiaUC := usecase.NewHistoriaUseCase(historiaRepo, proyectoRepo, txRunner)
	ticketUC := usecase.NewTicketUseCase(ticketRepo, historiaRepo, txRunner)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(httpRouter.RequestID())
	app.Use(httpRouter.MetricsMiddleware())
	app.Use(httpRouter.RequestLogger(log))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		Resolver:   resolver,
		EmpresaUC:  empresaUC,
		ProyectoUC: proyectoUC,
		HistoriaUC: historiaUC,
		TicketUC:   ticketUC,
		JWTSecret:  cfg.JWT.Secret,
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
