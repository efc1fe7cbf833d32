package routes

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/eztechpal/eztech-portal/internal/audit"
	"github.com/eztechpal/eztech-portal/internal/auth"
	"github.com/eztechpal/eztech-portal/internal/backup"
	"github.com/eztechpal/eztech-portal/internal/blob"
	"github.com/eztechpal/eztech-portal/internal/config"
	"github.com/eztechpal/eztech-portal/internal/handlers"
	"github.com/eztechpal/eztech-portal/internal/ids"
	infraRepo "github.com/eztechpal/eztech-portal/internal/infra/repository"
	"github.com/eztechpal/eztech-portal/internal/middleware"
	"github.com/eztechpal/eztech-portal/internal/models"
	"github.com/eztechpal/eztech-portal/internal/session"
	"github.com/eztechpal/eztech-portal/internal/store"
	ucAttendance "github.com/eztechpal/eztech-portal/internal/usecase/attendance"
	ucAuth "github.com/eztechpal/eztech-portal/internal/usecase/auth"
	ucService "github.com/eztechpal/eztech-portal/internal/usecase/servicerequest"
)

// RegisterRoutes wires repositories, use cases and handlers onto the engine.
// The returned dispatcher must be closed on shutdown so queued audit events
// reach the store.
func RegisterRoutes(
	r *gin.Engine,
	s store.Store,
	blobs blob.Store,
	cfg *config.Config,
	log *zap.Logger,
) *audit.Dispatcher {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	serviceRepo := infraRepo.NewServiceRequestStoreRepository(s)
	attendanceRepo := infraRepo.NewAttendanceStoreRepository(s)
	employees := infraRepo.NewEmployeeDirectory(s)
	customers := infraRepo.NewCustomerDirectory(s)

	sess := session.NewManager(s)
	idGen := ids.NewGenerator()
	verifier := auth.FromMode(cfg.AuthMode, s)

	// Employees have no self-registration, so bcrypt mode needs the admin
	// credential seeded or nobody can reach the employee dashboard.
	if cfg.AuthMode == "bcrypt" && cfg.AdminPassword != "" {
		ctx := context.Background()
		if verifier.Verify(ctx, cfg.AdminEmail, cfg.AdminPassword) != nil {
			if err := verifier.Register(ctx, cfg.AdminEmail, cfg.AdminPassword); err != nil {
				log.Warn("failed to seed admin credentials", zap.Error(err))
			}
		}
	}

	auditLogger := audit.New(s)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	exporter := backup.NewExporter(s, blobs)

	// ======================================================
	// USE CASES
	// ======================================================
	submitUC := ucService.NewSubmit(serviceRepo, idGen, auditDispatcher, cfg.ShopTimezone)
	listServicesUC := ucService.NewListForCustomer(serviceRepo)

	clockInUC := ucAttendance.NewClockIn(attendanceRepo, idGen, auditDispatcher, cfg.ShopTimezone)
	clockOutUC := ucAttendance.NewClockOut(attendanceRepo, auditDispatcher, cfg.ShopTimezone)
	historyUC := ucAttendance.NewHistory(attendanceRepo)

	employeeLoginUC := ucAuth.NewEmployeeLogin(
		employees, verifier, sess, auditDispatcher, cfg.AdminEmail, cfg.AdminName,
	)
	customerLoginUC := ucAuth.NewCustomerLogin(customers, verifier, sess, auditDispatcher)
	customerRegisterUC := ucAuth.NewCustomerRegister(customers, verifier, idGen, sess, auditDispatcher)
	logoutUC := ucAuth.NewLogout(sess, auditDispatcher)

	// ======================================================
	// HANDLERS
	// ======================================================
	publicHandler := handlers.NewPublicHandler(submitUC)
	authHandler := handlers.NewAuthHandler(
		employeeLoginUC, customerLoginUC, customerRegisterUC, logoutUC, cfg,
	)
	meHandler := handlers.NewMeHandler(sess)
	attendanceHandler := handlers.NewAttendanceHandler(clockInUC, clockOutUC, historyUC, cfg.ShopTimezone)
	servicesHandler := handlers.NewServicesHandler(listServicesUC, sess)
	auditLogsHandler := handlers.NewAuditLogsHandler(auditLogger)
	backupHandler := handlers.NewBackupHandler(exporter, blobs)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC API
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/schedule", publicHandler.GetSchedule)
			publicAPI.GET("/info", publicHandler.GetInfo)
			publicAPI.POST("/service-requests", publicHandler.CreateServiceRequest)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/employee/login", authHandler.EmployeeLogin)
		api.POST("/auth/customer/login", authHandler.CustomerLogin)
		api.POST("/auth/customer/register", authHandler.CustomerRegister)

		// ------------------------------
		// PRIVATE API
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.POST("/auth/logout", authHandler.Logout)

			secured.GET("/me/services", middleware.RequireRole(models.RoleCustomer), servicesHandler.GetMyServices)

			attendanceAPI := secured.Group("/me/attendance")
			attendanceAPI.Use(middleware.RequireRole(models.RoleEmployee))
			{
				attendanceAPI.POST("/clock-in", attendanceHandler.ClockIn)
				attendanceAPI.POST("/clock-out", attendanceHandler.ClockOut)
				attendanceAPI.GET("", attendanceHandler.GetHistory)
			}

			adminAPI := secured.Group("/")
			adminAPI.Use(middleware.RequireRole(models.RoleEmployee))
			{
				adminAPI.GET("/me/audit-logs", auditLogsHandler.GetLogs)
				adminAPI.POST("/backups", backupHandler.Create)
				adminAPI.GET("/backups", backupHandler.List)
			}
		}
	}

	return auditDispatcher
}
