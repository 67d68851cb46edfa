package main

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/rs/zerolog/log"

	"github.com/seanyjeong/academy-web-sub001/app/config"
	"github.com/seanyjeong/academy-web-sub001/app/database"
	"github.com/seanyjeong/academy-web-sub001/app/logger"
	"github.com/seanyjeong/academy-web-sub001/app/routes/attendance"
	"github.com/seanyjeong/academy-web-sub001/app/routes/auth"
	"github.com/seanyjeong/academy-web-sub001/app/routes/consultations"
	"github.com/seanyjeong/academy-web-sub001/app/routes/dashboard"
	"github.com/seanyjeong/academy-web-sub001/app/routes/exports"
	"github.com/seanyjeong/academy-web-sub001/app/routes/instructors"
	"github.com/seanyjeong/academy-web-sub001/app/routes/payments"
	"github.com/seanyjeong/academy-web-sub001/app/routes/public"
	"github.com/seanyjeong/academy-web-sub001/app/routes/schedules"
	"github.com/seanyjeong/academy-web-sub001/app/routes/seasons"
	"github.com/seanyjeong/academy-web-sub001/app/routes/settings"
	"github.com/seanyjeong/academy-web-sub001/app/routes/staff"
	"github.com/seanyjeong/academy-web-sub001/app/routes/students"
	"github.com/seanyjeong/academy-web-sub001/app/routes/training"
	"github.com/seanyjeong/academy-web-sub001/app/services"
)

// errorHandler keeps every error response JSON-shaped, including the
// ones fiber raises itself (404 on unknown routes, body limits).
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}
	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   err.Error(),
		"code":    code,
	})
}

func main() {
	cfg, err := config.Load("config.yaml")
	if err != nil {
		panic(err)
	}
	logger.Init(cfg.Logging.Level, cfg.Logging.Format)

	if loc, err := time.LoadLocation(cfg.App.Timezone); err == nil {
		time.Local = loc
	} else {
		log.Warn().Str("timezone", cfg.App.Timezone).Msg("failed to load timezone, using system default")
	}

	if err := cfg.InitDB(); err != nil {
		log.Fatal().Err(err).Msg("database init failed")
	}
	defer config.GetDB().Close()

	cfg.InitRedis()

	if err := database.RunMigrations(config.GetDB()); err != nil {
		log.Fatal().Err(err).Msg("migrations failed")
	}

	services.StartScheduler(config.GetDB(), config.GetCache())

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		ErrorHandler: errorHandler,
	})

	app.Use(fiberlogger.New())
	app.Use(cors.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		if err := config.GetDB().Ping(); err != nil {
			return c.Status(503).JSON(fiber.Map{"status": "degraded"})
		}
		return c.JSON(fiber.Map{"status": "ok"})
	})

	auth.SetupAuthRoutes(app)
	dashboard.SetupDashboardRoutes(app)
	students.SetupStudentsRoutes(app)
	instructors.SetupInstructorsRoutes(app)
	schedules.SetupSchedulesRoutes(app)
	seasons.SetupSeasonsRoutes(app)
	attendance.SetupAttendanceRoutes(app)
	payments.SetupPaymentsRoutes(app)
	consultations.SetupConsultationsRoutes(app)
	training.SetupTrainingRoutes(app)
	staff.SetupStaffRoutes(app)
	settings.SetupSettingsRoutes(app)
	exports.SetupExportRoutes(app)
	public.SetupPublicRoutes(app)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Info().Str("addr", addr).Msg("server starting")
	if err := app.Listen(addr); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
