package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/TrainFitServices/training-scheduler/internal/audit"
	"github.com/TrainFitServices/training-scheduler/internal/cache"
	"github.com/TrainFitServices/training-scheduler/internal/config"
	"github.com/TrainFitServices/training-scheduler/internal/handlers"
	infraRepo "github.com/TrainFitServices/training-scheduler/internal/infra/repository"
	"github.com/TrainFitServices/training-scheduler/internal/middleware"
	"github.com/TrainFitServices/training-scheduler/internal/notify"
	"github.com/TrainFitServices/training-scheduler/internal/reminder"
	"github.com/TrainFitServices/training-scheduler/internal/timezone"
	ucBooking "github.com/TrainFitServices/training-scheduler/internal/usecase/booking"
	ucClient "github.com/TrainFitServices/training-scheduler/internal/usecase/client"
	ucSession "github.com/TrainFitServices/training-scheduler/internal/usecase/session"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	notifier *notify.Dispatcher,
	scheduler *reminder.Scheduler,
	availability *cache.AvailabilityCache,
) {

	loc := timezone.Location(cfg.Timezone)

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)
	clientRepo := infraRepo.NewClientGormRepository(db)
	sessionRepo := infraRepo.NewSessionGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES
	// ======================================================
	admitBookingUC := ucBooking.NewAdmitBooking(
		bookingRepo,
		clientRepo,
		notifier,
		auditDispatcher,
		loc,
	)

	cancelBookingUC := ucBooking.NewCancelBooking(
		bookingRepo,
		clientRepo,
		notifier,
		auditDispatcher,
		loc,
	)

	createSessionUC := ucSession.NewCreateSession(
		sessionRepo,
		auditDispatcher,
		loc,
	)

	removeSessionUC := ucSession.NewRemoveSession(
		sessionRepo,
		clientRepo,
		notifier,
		auditDispatcher,
	)

	listScheduleUC := ucSession.NewListSchedule(
		sessionRepo,
		loc,
	)

	managePackageUC := ucClient.NewManagePackage(
		clientRepo,
		auditDispatcher,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)

	sessionHandler := handlers.NewSessionHandler(
		createSessionUC,
		removeSessionUC,
		listScheduleUC,
		cfg,
	)

	bookingHandler := handlers.NewBookingHandler(
		admitBookingUC,
		cancelBookingUC,
		bookingRepo,
	)

	clientHandler := handlers.NewClientHandler(db, managePackageUC)
	reminderHandler := handlers.NewReminderHandler(scheduler)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	publicHandler := handlers.NewPublicHandler(
		listScheduleUC,
		admitBookingUC,
		availability,
		cfg,
	)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/sessions", publicHandler.Availability)
			publicAPI.POST("/bookings", publicHandler.CreateBooking)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PRIVATE
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			// ------------------------------
			// SESSIONS
			// ------------------------------
			secured.POST("/me/sessions", sessionHandler.Create)
			secured.GET("/me/sessions", sessionHandler.ListByDate)
			secured.GET("/me/sessions/:id/bookings", bookingHandler.ListBySession)

			// ------------------------------
			// BOOKINGS
			// ------------------------------
			secured.POST("/me/bookings", bookingHandler.Create)
			secured.DELETE("/me/bookings/:id", bookingHandler.Cancel)

			// ------------------------------
			// CLIENTS
			// ------------------------------
			secured.GET("/me/clients", clientHandler.List)
			secured.POST("/me/clients", clientHandler.Create)
			secured.GET("/me/clients/:id", clientHandler.Get)

			// ------------------------------
			// ADMIN
			// ------------------------------
			admin := secured.Group("/")
			admin.Use(middleware.RequireAdmin())
			{
				admin.PATCH("/me/sessions/:id/deactivate", sessionHandler.Deactivate)
				admin.DELETE("/me/sessions/:id", sessionHandler.Delete)

				admin.POST("/me/clients/:id/package", clientHandler.AddPackage)
				admin.DELETE("/me/clients/:id/package", clientHandler.ResetPackage)

				admin.POST("/me/reminders/run", reminderHandler.RunTick)
				admin.POST("/me/bookings/:id/reminder/reset", reminderHandler.ResetFlag)

				admin.GET("/me/audit-logs", auditLogsHandler.List)
			}
		}
	}
}
