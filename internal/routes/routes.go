package routes

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/6laercio/saude-integrada-api/internal/audit"
	"github.com/6laercio/saude-integrada-api/internal/config"
	"github.com/6laercio/saude-integrada-api/internal/handlers"
	infraRepo "github.com/6laercio/saude-integrada-api/internal/infra/repository"
	"github.com/6laercio/saude-integrada-api/internal/middleware"
	"github.com/6laercio/saude-integrada-api/internal/timezone"
	ucAppointment "github.com/6laercio/saude-integrada-api/internal/usecase/appointment"
)

// Deps are the process-wide collaborators the HTTP layer needs.
// Audit and Reminders may be nil.
type Deps struct {
	DB        *gorm.DB
	Config    *config.Config
	Log       zerolog.Logger
	Audit     *audit.Dispatcher
	Reminders ucAppointment.ReminderQueue
}

func RegisterRoutes(r *gin.Engine, d Deps) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(
		middleware.RequestID(),
		middleware.Logger(d.Log),
		middleware.Recovery(d.Log),
		middleware.CORS(d.Config),
		gzip.Gzip(gzip.DefaultCompression),
	)

	loc := timezone.Location(d.Config.ClinicTimezone)

	// ======================================================
	// 🔧 INFRA
	// ======================================================
	doctorRepo := infraRepo.NewDoctorGormRepository(d.DB)
	patientRepo := infraRepo.NewPatientGormRepository(d.DB)
	appointmentRepo := infraRepo.NewAppointmentGormRepository(d.DB)
	examRepo := infraRepo.NewExamGormRepository(d.DB)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	doctorHandler := handlers.NewDoctorHandler(doctorRepo, d.Audit)
	patientHandler := handlers.NewPatientHandler(patientRepo, d.Audit)
	appointmentHandler := handlers.NewAppointmentHandler(appointmentRepo, d.Audit, d.Reminders, loc)
	examHandler := handlers.NewExamHandler(examRepo, d.Audit)
	auditLogsHandler := handlers.NewAuditLogsHandler(audit.New(d.DB), loc)

	// ======================================================
	// ❤️ HEALTH
	// ======================================================
	r.GET("/health", health(d.DB))

	// ======================================================
	// 🏥 API
	// ======================================================
	api := r.Group("/api")

	doctorHandler.Register(api.Group("/medicos"))
	patientHandler.Register(api.Group("/pacientes"))
	appointmentHandler.Register(api.Group("/agendamentos"))
	examHandler.Register(api.Group("/exames"))

	api.GET("/auditoria", auditLogsHandler.List)
}

func health(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			err = sqlDB.PingContext(ctx)
		}

		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "database": "down"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "database": "up"})
	}
}
