package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/barbearia-app/booking-api/internal/audit"
	"github.com/barbearia-app/booking-api/internal/cache"
	"github.com/barbearia-app/booking-api/internal/config"
	"github.com/barbearia-app/booking-api/internal/handlers"
	infraRepo "github.com/barbearia-app/booking-api/internal/infra/repository"
	"github.com/barbearia-app/booking-api/internal/metrics"
	"github.com/barbearia-app/booking-api/internal/middleware"
	ucAppointment "github.com/barbearia-app/booking-api/internal/usecase/appointment"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	m *metrics.Metrics,
	limiter *cache.LoginLimiter,
	log zerolog.Logger,
) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	// ======================================================
	// USE CASES
	// ======================================================
	availabilityUC := ucAppointment.NewGetAvailability(
		appointmentRepo,
		cfg.Schedule,
		m,
		cfg.Timezone,
	)

	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		cfg.Schedule,
		auditDispatcher,
		m,
		cfg.Timezone,
	)

	cancelAppointmentUC := ucAppointment.NewCancelAppointment(
		appointmentRepo,
		auditDispatcher,
		m,
		cfg.Timezone,
	)

	confirmAppointmentUC := ucAppointment.NewConfirmAppointment(
		appointmentRepo,
		auditDispatcher,
		m,
		cfg.Timezone,
	)

	listMineUC := ucAppointment.NewListMyAppointments(appointmentRepo, cfg.Timezone)
	listAdminUC := ucAppointment.NewListAppointments(appointmentRepo, cfg.Timezone)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg, limiter)
	meHandler := handlers.NewMeHandler(db)
	barberHandler := handlers.NewBarberHandler(appointmentRepo)

	appointmentHandler := handlers.NewAppointmentHandler(
		availabilityUC,
		createAppointmentUC,
		cancelAppointmentUC,
		listMineUC,
	)

	adminHandler := handlers.NewAdminHandler(db, listAdminUC, confirmAppointmentUC)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		api.GET("/barbers", barberHandler.List)
		api.GET("/availability", appointmentHandler.Availability)

		// ------------------------------
		// PRIVATE
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.PATCH("/me", meHandler.UpdateMe)

			secured.POST("/me/appointments", appointmentHandler.Create)
			secured.GET("/me/appointments", appointmentHandler.ListMine)
			secured.PATCH("/me/appointments/:id/cancel", appointmentHandler.Cancel)
		}

		// ------------------------------
		// ADMIN
		// ------------------------------
		admin := api.Group("/admin")
		admin.Use(middleware.AuthMiddleware(cfg), middleware.AdminOnly())
		{
			admin.GET("/appointments", adminHandler.ListAppointments)
			admin.PATCH("/appointments/:id/confirm", adminHandler.ConfirmAppointment)

			admin.GET("/barbers", adminHandler.ListBarbers)
			admin.POST("/barbers", adminHandler.CreateBarber)
			admin.PATCH("/barbers/:id", adminHandler.UpdateBarber)

			admin.GET("/audit-logs", adminHandler.ListAuditLogs)
		}
	}
}
