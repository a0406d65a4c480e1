package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/mapa-clientes/internal/audit"
	"github.com/BruksfildServices01/mapa-clientes/internal/config"
	"github.com/BruksfildServices01/mapa-clientes/internal/db"
	"github.com/BruksfildServices01/mapa-clientes/internal/handlers"
	"github.com/BruksfildServices01/mapa-clientes/internal/infra/cache"
	infraRepo "github.com/BruksfildServices01/mapa-clientes/internal/infra/repository"
	"github.com/BruksfildServices01/mapa-clientes/internal/middleware"
	ucClient "github.com/BruksfildServices01/mapa-clientes/internal/usecase/client"
	"github.com/BruksfildServices01/mapa-clientes/internal/web"
)

// Deps are the long-lived collaborators built by main. Redis may be nil.
type Deps struct {
	DB    *gorm.DB
	Redis *redis.Client
	Audit *audit.Dispatcher
}

func RegisterRoutes(r *gin.Engine, deps Deps, cfg *config.Config) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(
		middleware.Recovery(),
		middleware.RequestLogger(),
		middleware.CORSMiddleware(cfg.CORSOrigins...),
		middleware.BodyLimit(cfg.BodyLimitBytes),
	)

	// ======================================================
	// INFRA
	// ======================================================
	partitionedRepo := infraRepo.NewClientGormRepository(deps.DB)
	legacyRepo := infraRepo.NewLegacyClientGormRepository(deps.DB)

	var lookupCache ucClient.LookupCache
	if deps.Redis != nil {
		lookupCache = cache.NewRedisLookupCache(deps.Redis, time.Duration(cfg.Redis.TTLSeconds)*time.Second)
	}

	var events ucClient.EventSink
	if deps.Audit != nil {
		events = deps.Audit
	}

	// ======================================================
	// USE CASES
	// ======================================================
	findPartitionedUC := ucClient.NewFindClient(partitionedRepo, lookupCache, events)
	bulkPartitionedUC := ucClient.NewFindClients(partitionedRepo, events)
	findLegacyUC := ucClient.NewFindClient(legacyRepo, lookupCache, events)
	bulkLegacyUC := ucClient.NewFindClients(legacyRepo, events)

	// ======================================================
	// HANDLERS
	// ======================================================
	healthHandler := handlers.NewHealthHandler(db.NewProbe(deps.DB), cfg.Timezone)
	clientHandler := handlers.NewClientHandler(
		findPartitionedUC,
		bulkPartitionedUC,
		findLegacyUC,
		bulkLegacyUC,
	)
	webHandler := handlers.NewWebHandler(findPartitionedUC, bulkPartitionedUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(audit.New(deps.DB), cfg.Timezone)

	// ======================================================
	// WEB (HTML)
	// ======================================================
	r.SetHTMLTemplate(web.Templates())
	r.StaticFS("/static", web.Static())

	r.GET("/", webHandler.Page)
	webGroup := r.Group("/web")
	{
		webGroup.POST("/tema", webHandler.ToggleTheme)
		webGroup.POST("/marcadores", webHandler.Marcadores)
		webGroup.GET("/cliente", webHandler.Cliente)
	}

	// ======================================================
	// API (JSON)
	// ======================================================
	r.GET("/health", healthHandler.Health)
	r.GET("/debug/store", healthHandler.Store)
	r.GET("/debug/auditoria", auditLogsHandler.List)
	r.GET("/api/cds", healthHandler.ListCDs)

	clientes := r.Group("/clientes")
	{
		clientes.GET("/buscar", clientHandler.Buscar)
		clientes.GET("/:codigo", clientHandler.ByCodigo)
		clientes.POST("/por-clientes", clientHandler.PorClientes)
		clientes.POST("/por-codigos", clientHandler.PorCodigos)
	}
}
