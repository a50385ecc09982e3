package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nomascartera/proyectos-api/internal/application/auth"
	"github.com/nomascartera/proyectos-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.UseCase
	Resolver   *auth.Resolver
	EmpresaUC  *usecase.EmpresaUseCase
	ProyectoUC *usecase.ProyectoUseCase
	HistoriaUC *usecase.HistoriaUseCase
	TicketUC   *usecase.TicketUseCase
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	app.Get("/metrics", MetricsHandler())

	authHandler := NewAuthHandler(deps.AuthUC, deps.EmpresaUC)
	usuarioHandler := NewUsuarioHandler(deps.AuthUC)

	// Auth de empresas (público)
	authGroup := app.Group("/auth")
	authGroup.Post("/registro", authHandler.Registro)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/listado-empresas", authHandler.ListadoEmpresas)
	authGroup.Get("/resumen", authHandler.Resumen)

	// Usuarios (público: alta y login)
	usuarios := app.Group("/usuarios")
	usuarios.Post("/", usuarioHandler.Create)
	usuarios.Post("/login", usuarioHandler.Login)

	// Rutas protegidas: token válido y actor resuelto contra la base
	authn := AuthMiddleware(deps.JWTSecret)
	actor := ActorMiddleware(deps.Resolver)

	// Gestión de la empresa propia (protegido)
	authGroup.Put("/empresa", authn, actor, authHandler.ActualizarEmpresa)
	authGroup.Delete("/empresa", authn, actor, authHandler.EliminarEmpresa)

	// Proyectos (protegido)
	proyectos := app.Group("/proyectos", authn, actor)
	proyectoHandler := NewProyectoHandler(deps.ProyectoUC)
	proyectos.Post("/", proyectoHandler.Create)
	proyectos.Get("/", proyectoHandler.List)
	proyectos.Get("/:id", proyectoHandler.GetByID)
	proyectos.Put("/:id", proyectoHandler.Update)
	proyectos.Delete("/:id", proyectoHandler.Delete)

	// Historias de usuario (protegido)
	historias := app.Group("/historias-usuario", authn, actor)
	historiaHandler := NewHistoriaHandler(deps.HistoriaUC)
	historias.Post("/", historiaHandler.Create)
	historias.Get("/proyecto/:proyecto_id", historiaHandler.ListByProyecto)
	historias.Get("/:id", historiaHandler.GetByID)
	historias.Put("/:id", historiaHandler.Update)
	historias.Delete("/:id", historiaHandler.Delete)

	// Tickets (protegido)
	tickets := app.Group("/tickets", authn, actor)
	ticketHandler := NewTicketHandler(deps.TicketUC)
	tickets.Post("/", ticketHandler.Create)
	tickets.Get("/historia/:historia_usuario_id", ticketHandler.ListByHistoria)
	tickets.Get("/:id", ticketHandler.GetByID)
	tickets.Put("/:id", ticketHandler.Update)
	tickets.Patch("/:id/estado", ticketHandler.UpdateEstado)
	tickets.Delete("/:id", ticketHandler.Delete)
}
