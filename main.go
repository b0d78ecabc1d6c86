package main

import (
	"log"
	"mecda-academy/app/config"
	"mecda-academy/app/database"
	"mecda-academy/app/routes/attendance"
	"mecda-academy/app/routes/auth"
	"mecda-academy/app/routes/dashboard"
	"mecda-academy/app/routes/payments"
	"mecda-academy/app/routes/reports"
	"mecda-academy/app/routes/salaryslips"
	"mecda-academy/app/routes/schedules"
	"mecda-academy/app/routes/settings"
	"mecda-academy/app/routes/students"
	"mecda-academy/app/routes/teachers"
	"mecda-academy/app/sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

// customErrorHandler shapes every error as the standard API envelope
func customErrorHandler(c *fiber.Ctx, err error) error {
	// Status code defaults to 500
	code := fiber.StatusInternalServerError

	// Retrieve the custom status code if it's a *fiber.Error
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
	// Set global time zone to Sri Lanka time
	loc, err := time.LoadLocation("Asia/Colombo")
	if err != nil {
		log.Printf("Warning: Failed to load Asia/Colombo location, falling back to UTC+5:30: %v", err)
		time.Local = time.FixedZone("IST", 5*60*60+30*60)
	} else {
		time.Local = loc
	}
	log.Printf("Application time zone set to: %s", time.Local.String())

	// Initialize database
	config.Init()
	defer config.GetDB().Close()

	// Run database migrations
	if err := database.RunMigrations(config.GetDB()); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Change-notification bus shared by every mutating route
	bus := sync.NewBus()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "MECDA Academy",
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	// Setup auth routes
	auth.SetupAuthRoutes(app)

	// Setup dashboard routes
	dashboard.SetupDashboardRoutes(app)

	// Setup teachers routes
	teachers.SetupTeachersRoutes(app, bus)

	// Setup students routes
	students.SetupStudentsRoutes(app, bus)

	// Setup schedules routes
	schedules.SetupSchedulesRoutes(app, bus)

	// Setup attendance routes
	attendance.SetupAttendanceRoutes(app, bus)

	// Setup payments routes
	payments.SetupPaymentsRoutes(app, bus)

	// Setup salary slip routes
	salaryslips.SetupSalarySlipsRoutes(app)

	// Setup reports routes
	reports.SetupReportsRoutes(app)

	// Setup settings routes
	settings.SetupSettingsRoutes(app, bus)

	// Change stream for other open dashboard tabs
	app.Get("/api/sync/stream", auth.AuthMiddleware, sync.StreamHandler(bus))

	// Catch-all route for 404 errors (must be last)
	app.Use("*", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Not found")
	})

	// Start server
	log.Println("Server starting on :" + config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
