package router

import (
	"time"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/Simoleans/profit/internal/config"
	"github.com/Simoleans/profit/internal/handler"
	"github.com/Simoleans/profit/internal/infra"
	"github.com/Simoleans/profit/internal/middleware"
	"github.com/Simoleans/profit/internal/model"
	"github.com/Simoleans/profit/internal/repository"
	"github.com/Simoleans/profit/internal/service"
	"github.com/Simoleans/profit/internal/worker"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← erpDB / usersDB / Redis
func New(cfg *config.Config, erpDB, usersDB *gorm.DB, rdb *redis.Client, docs *infra.DocStore) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	// ERP schema (SQL Server)
	pedidoRepo := repository.NewPedidoRepository(erpDB)
	clienteRepo := repository.NewClienteRepository(erpDB)
	articuloRepo := repository.NewArticuloRepository(erpDB)
	documRepo := repository.NewDocumCCRepository(erpDB)
	vendedorRepo := repository.NewVendedorRepository(erpDB)
	// Application store (MySQL)
	usuarioRepo := repository.NewUsuarioRepository(usersDB)
	mediaRepo := repository.NewMediaRepository(usersDB)

	// ── Services ─────────────────────────────────────────────────────────────
	// Worker dispatcher — injected into services that enqueue async jobs
	dispatcher := worker.NewDispatcher(rdb)
	notificacionSvc := service.NewNotificacionService(dispatcher)

	authSvc := service.NewAuthService(usuarioRepo, vendedorRepo, cfg)
	pedidoSvc := service.NewPedidoService(pedidoRepo, clienteRepo, articuloRepo, usuarioRepo, notificacionSvc)
	cxcSvc := service.NewCxCService(documRepo, clienteRepo)
	clienteSvc := service.NewClienteService(clienteRepo, mediaRepo, docs)
	articuloSvc := service.NewArticuloService(articuloRepo)
	dashboardSvc := service.NewDashboardService(clienteRepo, documRepo, articuloRepo, pedidoRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	pedidosH := handler.NewPedidosHandler(pedidoSvc)
	cxcH := handler.NewCxCHandler(cxcSvc)
	clientesH := handler.NewClientesHandler(clienteSvc)
	articulosH := handler.NewArticulosHandler(articuloSvc)
	dashboardH := handler.NewDashboardHandler(dashboardSvc)
	jobsH := handler.NewJobsHandler(rdb)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(erpDB, usersDB, rdb))

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh", authH.Refresh)
	}

	todos := []model.Rol{model.RolVendedor, model.RolAdministrador, model.RolSupervisor}
	gestores := []model.Rol{model.RolAdministrador, model.RolSupervisor}

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	v1 := r.Group("/v1", jwtMW)
	{
		v1.GET("/auth/me", authH.Me)

		pedidos := v1.Group("/pedidos", middleware.RequireRole(todos...))
		{
			pedidos.POST("", pedidosH.CrearPedido)
			pedidos.GET("", pedidosH.ListarPedidos)
			pedidos.GET("/:fact_num", pedidosH.ObtenerPedido)
			pedidos.PUT("/:fact_num", pedidosH.ActualizarPedido)
			pedidos.DELETE("/:fact_num", pedidosH.AnularPedido)
			pedidos.POST("/:fact_num/reenviar-correo", pedidosH.ReenviarCorreo)
		}
		// Status transitions are a back-office decision
		v1.POST("/pedidos/:fact_num/aprobar", middleware.RequireRole(gestores...), pedidosH.AprobarPedido)
		v1.POST("/pedidos/:fact_num/rechazar", middleware.RequireRole(gestores...), pedidosH.RechazarPedido)

		cxc := v1.Group("/cxc", middleware.RequireRole(todos...))
		{
			cxc.GET("", cxcH.Resumen)
			cxc.GET("/totales", cxcH.Totales)
			cxc.GET("/:co_cli", cxcH.Detalle)
		}

		clientes := v1.Group("/clientes", middleware.RequireRole(todos...))
		{
			clientes.GET("", clientesH.ListarClientes)
			clientes.POST("", clientesH.RegistrarCliente)
			clientes.GET("/autocomplete", clientesH.AutocompleteClientes)
			clientes.GET("/:co_cli/existe", clientesH.ExisteCliente)
			clientes.PUT("/:rif", clientesH.ActualizarCliente)
			clientes.POST("/:rif/documentos", clientesH.SubirDocumento)
			clientes.GET("/:rif/documentos", clientesH.ListarDocumentos)
		}
		v1.DELETE("/clientes/:co_cli", middleware.RequireRole(model.RolAdministrador), clientesH.DesactivarCliente)
		v1.GET("/documentos/:id", middleware.RequireRole(todos...), clientesH.DescargarDocumento)

		articulos := v1.Group("/articulos", middleware.RequireRole(todos...))
		{
			articulos.GET("", articulosH.ListarArticulos)
			articulos.GET("/autocomplete", articulosH.AutocompleteArticulos)
			articulos.GET("/promociones", articulosH.Promociones)
			articulos.GET("/categorias", articulosH.Categorias)
			articulos.GET("/lineas", articulosH.Lineas)
			articulos.GET("/sublineas", articulosH.Sublineas)
			articulos.GET("/:co_art", articulosH.ObtenerArticulo)
		}

		dashboard := v1.Group("/dashboard", middleware.RequireRole(todos...))
		{
			dashboard.GET("/stats", dashboardH.Stats)
			dashboard.GET("/clientes-sin-pedidos", dashboardH.ClientesSinPedidos)
			dashboard.GET("/clientes-sin-ventas", dashboardH.ClientesSinVentas)
		}

		usuarios := v1.Group("/usuarios", middleware.RequireRole(model.RolAdministrador))
		{
			usuarios.POST("", authH.CrearUsuario)
			usuarios.GET("", authH.ListarUsuarios)
			usuarios.PUT("/:id", authH.ActualizarUsuario)
			usuarios.DELETE("/:id", authH.DesactivarUsuario)
		}

		jobs := v1.Group("/jobs", middleware.RequireRole(model.RolAdministrador))
		{
			jobs.GET("/dlq", jobsH.DLQStatus)
			jobs.POST("/dlq/redrive", jobsH.RedriveDLQ)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
