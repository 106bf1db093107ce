package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/campusmind/guidance-scheduler/internal/audit"
	"github.com/campusmind/guidance-scheduler/internal/config"
	domain "github.com/campusmind/guidance-scheduler/internal/domain/schedule"
	"github.com/campusmind/guidance-scheduler/internal/handlers"
	infraRepo "github.com/campusmind/guidance-scheduler/internal/infra/repository"
	"github.com/campusmind/guidance-scheduler/internal/lock"
	"github.com/campusmind/guidance-scheduler/internal/middleware"
	"github.com/campusmind/guidance-scheduler/internal/timezone"
	ucSchedule "github.com/campusmind/guidance-scheduler/internal/usecase/schedule"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	scheduleRepo := infraRepo.NewScheduleGormRepository(db)

	clock := timezone.SystemClock{}
	resolver := domain.NewResolver(clock)
	locker := lock.NewOwnerLocker(rdb)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES — SCHEDULING
	// ======================================================
	createAppointmentUC := ucSchedule.NewCreateAppointment(scheduleRepo, resolver, locker, auditDispatcher)
	approveAppointmentUC := ucSchedule.NewApproveAppointment(scheduleRepo, auditDispatcher)
	cancelAppointmentUC := ucSchedule.NewCancelAppointment(scheduleRepo, clock, auditDispatcher)
	requestRescheduleUC := ucSchedule.NewRequestReschedule(scheduleRepo, auditDispatcher)
	rescheduleUC := ucSchedule.NewRescheduleAppointment(scheduleRepo, resolver, locker, auditDispatcher)
	listByDateUC := ucSchedule.NewListAppointmentsByDate(scheduleRepo, clock)
	listByMonthUC := ucSchedule.NewListAppointmentsByMonth(scheduleRepo)
	availabilityUC := ucSchedule.NewGetAvailability(scheduleRepo)

	createBlockUC := ucSchedule.NewCreateBlock(scheduleRepo, resolver, locker, auditDispatcher)
	bulkBlockUC := ucSchedule.NewBulkBlock(scheduleRepo, resolver, locker, auditDispatcher)
	monthLeaveUC := ucSchedule.NewMonthLeave(scheduleRepo, resolver, locker, auditDispatcher)
	listBlocksUC := ucSchedule.NewListBlocks(scheduleRepo, clock)
	deleteBlockUC := ucSchedule.NewDeleteBlock(scheduleRepo, auditDispatcher)
	deleteBlockGroupUC := ucSchedule.NewDeleteBlockGroup(scheduleRepo, auditDispatcher)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	studentHandler := handlers.NewStudentHandler(db)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		approveAppointmentUC,
		cancelAppointmentUC,
		requestRescheduleUC,
		rescheduleUC,
		listByDateUC,
		listByMonthUC,
		availabilityUC,
	)

	blockHandler := handlers.NewBlockHandler(
		createBlockUC,
		bulkBlockUC,
		monthLeaveUC,
		listBlocksUC,
		deleteBlockUC,
		deleteBlockGroupUC,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PRIVATE API
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/me/students", studentHandler.List)
			secured.GET("/me/students/:id", studentHandler.Get)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.POST("/me/appointments", appointmentHandler.Create)
			secured.GET("/me/appointments", appointmentHandler.ListByDate)
			secured.GET("/me/appointments/month", appointmentHandler.ListByMonth)
			secured.GET("/me/availability", appointmentHandler.Availability)
			secured.PATCH("/me/appointments/:id/approve", appointmentHandler.Approve)
			secured.PATCH("/me/appointments/:id/cancel", appointmentHandler.Cancel)
			secured.PATCH("/me/appointments/:id/request-reschedule", appointmentHandler.RequestReschedule)
			secured.PATCH("/me/appointments/:id/reschedule", appointmentHandler.Reschedule)

			// ------------------------------
			// BLOCKS
			// ------------------------------
			secured.POST("/me/blocks", blockHandler.Create)
			secured.POST("/me/blocks/bulk", blockHandler.BulkCreate)
			secured.POST("/me/blocks/month-leave", blockHandler.MonthLeave)
			secured.GET("/me/blocks", blockHandler.List)
			secured.DELETE("/me/blocks/:id", blockHandler.Delete)
			secured.DELETE("/me/blocks/group/:tag", blockHandler.DeleteGroup)

			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}
