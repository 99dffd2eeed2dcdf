package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/derya/campusreg/docs" // Import generated swagger docs
	appControllers "github.com/derya/campusreg/internal/app/controllers"
	appMigrations "github.com/derya/campusreg/internal/app/migrations"
	appRepos "github.com/derya/campusreg/internal/app/repositories"
	"github.com/derya/campusreg/internal/app/repositories/memory"
	appRoutes "github.com/derya/campusreg/internal/app/routes"
	appServices "github.com/derya/campusreg/internal/app/services"
	"github.com/derya/campusreg/internal/config"
	"github.com/derya/campusreg/internal/db"
	appMiddleware "github.com/derya/campusreg/internal/middleware"
	"github.com/derya/campusreg/internal/pkg/logger"
	"github.com/derya/campusreg/internal/seed"
)

// Storage holds the selected storage backend behind the service-layer
// repository interfaces. Pool is nil for the in-memory backend.
type Storage struct {
	Students      appServices.StudentRepository
	Instructors   appServices.InstructorRepository
	Courses       appServices.CourseRepository
	ScheduleSlots appServices.ScheduleSlotRepository
	Assignments   appServices.AssignmentRepository
	Pool          *pgxpool.Pool
}

// Dependencies holds all the application dependencies
type Dependencies struct {
	StudentService         *appServices.StudentService
	InstructorService      *appServices.InstructorService
	CourseService          *appServices.CourseService
	ScheduleSlotService    *appServices.ScheduleSlotService
	AssignmentService      *appServices.AssignmentService
	StudentController      *appControllers.StudentController
	InstructorController   *appControllers.InstructorController
	CourseController       *appControllers.CourseController
	ScheduleSlotController *appControllers.ScheduleSlotController
	AssignmentController   *appControllers.AssignmentController
	Logger                 zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger // Get the configured global logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupStorage selects the storage backend from the configuration. For
// postgres it connects, pings and runs migrations; for memory it builds
// an empty in-process backend.
func SetupStorage(cfg *config.Config, lgr zerolog.Logger) (*Storage, error) {
	if cfg.Database.Driver == config.DriverMemory {
		lgr.Info().Msg("Using in-memory storage backend")
		repos := memory.NewRepositories()
		return &Storage{
			Students:      repos.Students,
			Instructors:   repos.Instructors,
			Courses:       repos.Courses,
			ScheduleSlots: repos.ScheduleSlots,
			Assignments:   repos.Assignments,
		}, nil
	}

	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		dbPool.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		dbPool.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	repos := appRepos.NewRepositories(dbPool)
	return &Storage{
		Students:      repos.Students,
		Instructors:   repos.Instructors,
		Courses:       repos.Courses,
		ScheduleSlots: repos.ScheduleSlots,
		Assignments:   repos.Assignments,
		Pool:          dbPool,
	}, nil
}

// BuildDependencies initializes application services and controllers
// over the selected storage backend, then seeds demo data when enabled.
func BuildDependencies(cfg *config.Config, storage *Storage, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.StudentService = appServices.NewStudentService(storage.Students)
	deps.InstructorService = appServices.NewInstructorService(storage.Instructors)
	deps.CourseService = appServices.NewCourseService(storage.Courses)
	deps.ScheduleSlotService = appServices.NewScheduleSlotService(storage.ScheduleSlots)
	deps.AssignmentService = appServices.NewAssignmentService(storage.Assignments)

	deps.StudentController = appControllers.NewStudentController(deps.StudentService)
	deps.InstructorController = appControllers.NewInstructorController(deps.InstructorService)
	deps.CourseController = appControllers.NewCourseController(deps.CourseService)
	deps.ScheduleSlotController = appControllers.NewScheduleSlotController(deps.ScheduleSlotService)
	deps.AssignmentController = appControllers.NewAssignmentController(deps.AssignmentService)

	if cfg.Database.Seed {
		err := seed.CreateDemoData(context.Background(), seed.Services{
			Students:      deps.StudentService,
			Instructors:   deps.InstructorService,
			Courses:       deps.CourseService,
			ScheduleSlots: deps.ScheduleSlotService,
			Assignments:   deps.AssignmentService,
		}, lgr)
		if err != nil {
			// Log the error but don't fail the startup
			lgr.Error().Err(err).Msg("Failed to create demo data, proceeding anyway...")
		}
	}

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger(lgr))

	// Setup Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json"), ginSwagger.DefaultModelsExpandDepth(1)))

	// Setup API routes using the dependencies
	appRoutes.SetupRouter(router,
		deps.StudentController,
		deps.InstructorController,
		deps.CourseController,
		deps.ScheduleSlotController,
		deps.AssignmentController,
	)

	return router
}
