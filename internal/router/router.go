package router

import (
	"time"

	"superganaderia/internal/config"
	"superganaderia/internal/handler"
	"superganaderia/internal/middleware"
	"superganaderia/internal/model"
	"superganaderia/internal/repository"
	"superganaderia/internal/service"
	"superganaderia/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Deps son las piezas que main comparte con el router y el worker pool.
type Deps struct {
	PuntajeSvc service.PuntajeService
	Dispatcher *worker.Dispatcher
}

// New wires all dependencies and returns a configured Gin engine plus the
// pieces main needs to start the worker pool and the reconciliation cron.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) (*gin.Engine, Deps) {
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
	perfilRepo := repository.NewPerfilRepository(db)
	zonaRepo := repository.NewZonaRepository(db)
	distribuidorRepo := repository.NewDistribuidorRepository(db)
	equipoRepo := repository.NewEquipoRepository(db)
	productoRepo := repository.NewProductoRepository(db)
	ventaRepo := repository.NewVentaRepository(db)
	clienteRepo := repository.NewClienteCompetenciaRepository(db)
	penalRepo := repository.NewPenalRepository(db)
	ajusteRepo := repository.NewAjusteGolesRepository(db)
	configRepo := repository.NewConfigRepository(db)

	// Worker dispatcher — injected into services that enqueue async jobs
	dispatcher := worker.NewDispatcher(rdb)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(perfilRepo, cfg)
	configSvc := service.NewConfigService(configRepo)
	catalogoSvc := service.NewCatalogoService(zonaRepo, distribuidorRepo, equipoRepo, productoRepo)
	puntajeSvc := service.NewPuntajeService(ventaRepo, clienteRepo, productoRepo, perfilRepo, equipoRepo, ajusteRepo, configSvc, dispatcher, rdb)
	rankingSvc := service.NewRankingService(equipoRepo, ventaRepo, clienteRepo, configSvc, rdb)
	penalSvc := service.NewPenalService(penalRepo, equipoRepo, ajusteRepo, dispatcher, cfg.AdminEmail)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	perfilesH := handler.NewPerfilesHandler(authSvc)
	catalogoH := handler.NewCatalogoHandler(catalogoSvc)
	ventasH := handler.NewVentasHandler(puntajeSvc)
	clientesH := handler.NewClientesHandler(puntajeSvc)
	rankingH := handler.NewRankingHandler(rankingSvc)
	penalesH := handler.NewPenalesHandler(penalSvc)
	configH := handler.NewConfigHandler(configSvc)
	mantenimientoH := handler.NewMantenimientoHandler(puntajeSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh", authH.Refresh)
	}

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	v1 := r.Group("/v1", jwtMW)
	{
		// Eventos del ledger — quienes suman puntos
		v1.POST("/ventas", middleware.RequireRole(model.RolRepresentante, model.RolCapitan, model.RolAdministrador), ventasH.RegistrarVenta)
		v1.GET("/ventas", ventasH.ListarVentas)
		v1.POST("/clientes-competencia", middleware.RequireRole(model.RolRepresentante, model.RolCapitan, model.RolAdministrador), clientesH.RegistrarCliente)
		v1.GET("/clientes-competencia", clientesH.ListarClientes)

		// Ranking — lectura para todo autenticado, PDF para roles de reporte
		v1.GET("/ranking", rankingH.Ranking)
		v1.GET("/ranking/equipo/:id", rankingH.PosicionEquipo)
		v1.GET("/ranking/pdf",
			middleware.RequireRole(model.RolSupervisor, model.RolDirectorTecnico, model.RolAdministrador, model.RolArbitro),
			rankingH.ReportePDF)

		// Penales
		v1.POST("/penales/usar", middleware.RequireRole(model.RolCapitan, model.RolAdministrador), penalesH.Usar)
		v1.POST("/penales/otorgar", middleware.RequireRole(model.RolAdministrador, model.RolArbitro), penalesH.Otorgar)
		v1.GET("/penales/:id/historial", penalesH.Historial)

		// Catálogo — administrador can write, all authenticated can read
		v1.GET("/zonas", catalogoH.ListarZonas)
		v1.GET("/distribuidores", catalogoH.ListarDistribuidores)
		v1.GET("/equipos", catalogoH.ListarEquipos)
		v1.GET("/equipos/:id", catalogoH.ObtenerEquipo)
		v1.GET("/productos", catalogoH.ListarProductos)

		admin := middleware.RequireRole(model.RolAdministrador)
		v1.POST("/zonas", admin, catalogoH.CrearZona)
		v1.POST("/distribuidores", admin, catalogoH.CrearDistribuidor)
		v1.POST("/equipos", admin, catalogoH.CrearEquipo)
		v1.PUT("/equipos/:id", admin, catalogoH.ActualizarEquipo)
		prods := v1.Group("/productos", admin)
		{
			prods.POST("", catalogoH.CrearProducto)
			prods.PUT("/:id", catalogoH.ActualizarProducto)
			prods.DELETE("/:id", catalogoH.DesactivarProducto)
		}

		// Perfiles
		perfiles := v1.Group("/perfiles", admin)
		{
			perfiles.POST("", perfilesH.Crear)
			perfiles.GET("", perfilesH.Listar)
			perfiles.PUT("/:id", perfilesH.Actualizar)
			perfiles.DELETE("/:id", perfilesH.Desactivar)
			perfiles.PATCH("/:id/reactivar", perfilesH.Reactivar)
		}

		// Config del concurso
		v1.GET("/config", admin, configH.Listar)
		v1.GET("/config/:clave", admin, configH.Obtener)
		v1.PUT("/config/:clave", admin, configH.Actualizar)

		// Mantenimiento
		v1.POST("/mantenimiento/recalcular-puntos", admin, mantenimientoH.RecalcularTodos)
		v1.POST("/mantenimiento/recalcular-puntos/:id", admin, mantenimientoH.RecalcularEquipo)
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r, Deps{PuntajeSvc: puntajeSvc, Dispatcher: dispatcher}
}
