package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pawsitiveapps/pet-scheduler/internal/audit"
	"github.com/pawsitiveapps/pet-scheduler/internal/cache"
	"github.com/pawsitiveapps/pet-scheduler/internal/config"
	"github.com/pawsitiveapps/pet-scheduler/internal/handlers"
	infraRepo "github.com/pawsitiveapps/pet-scheduler/internal/infra/repository"
	"github.com/pawsitiveapps/pet-scheduler/internal/middleware"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ---------- infra (singletons) ----------
	serviceRepo := infraRepo.NewServiceGormRepository(db)
	listingCache := cache.NewServiceListing(cfg.RedisURL)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ---------- handlers ----------
	catalogHandler := handlers.NewCatalogHandler(serviceRepo, listingCache, auditDispatcher)
	bookingHandler := handlers.NewBookingHandler()
	availabilityHandler := handlers.NewAvailabilityHandler()
	sessionHandler := handlers.NewSessionHandler(cfg, auditDispatcher)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ---------- public ----------
	r.GET("/services", catalogHandler.ListPublic)
	r.GET("/availability", availabilityHandler.List)
	r.POST("/appointments", bookingHandler.Create)

	// unlock happens before any session exists, so it sits outside the gate
	r.POST("/admin/session", sessionHandler.Unlock)

	// ---------- admin (gated) ----------
	admin := r.Group("/admin")
	admin.Use(middleware.AdminGate(cfg))
	{
		admin.GET("/services", catalogHandler.ListAdmin)
		admin.POST("/services", catalogHandler.Create)
		admin.PATCH("/services/:id", catalogHandler.Update)
		admin.DELETE("/services/:id", catalogHandler.Delete)

		admin.GET("/audit-logs", auditLogsHandler.List)
		admin.DELETE("/session", sessionHandler.Lock)
	}
}
