package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"staffdesk/internal/config"
	"staffdesk/internal/dates"
	"staffdesk/internal/handler"
	"staffdesk/internal/repository"
	"staffdesk/migrations"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	swaggerfiles "github.com/swaggo/files"
	ginswagger "github.com/swaggo/gin-swagger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Server struct {
	Engine *gin.Engine
	DB     *gorm.DB
	Config *config.Config
}

func Init(cfg *config.Config) (*Server, error) {
	// Setup GORM
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName,
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("❌ failed to connect to DB: %w", err)
	}
	log.Println("✅ Connected to database")

	if err := runMigrations(db, cfg.DBName); err != nil {
		return nil, fmt.Errorf("❌ failed to apply migrations: %w", err)
	}
	log.Println("✅ Schema migrations applied")

	// Setup Gin
	r := gin.Default()
	r.Use(cors.Default())

	normalizer := dates.NewNormalizer()

	// Initialize repositories
	employeeRepo := repository.NewEmployeeRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	assignmentRepo := repository.NewAssignmentRepository(db)
	eventRepo := repository.NewEventRepository(db)

	// Initialize handlers
	employeeHandler := handler.NewEmployeeHandler(employeeRepo)
	projectHandler := handler.NewProjectHandler(projectRepo, normalizer)
	taskHandler := handler.NewTaskHandler(taskRepo, normalizer)
	assignmentHandler := handler.NewAssignmentHandler(assignmentRepo)
	eventHandler := handler.NewEventHandler(eventRepo, normalizer)

	// Employee routes
	r.GET("/employees", employeeHandler.GetAll)
	r.POST("/employees", employeeHandler.Create)
	r.POST("/employees/lookup", employeeHandler.Lookup)
	r.GET("/employees/:rowguid", employeeHandler.GetByID)
	r.PUT("/employees/:rowguid", employeeHandler.Update)
	r.DELETE("/employees/:rowguid", employeeHandler.Delete)
	r.GET("/employees/:rowguid/tasks", taskHandler.ListByEmployee)
	r.POST("/employees/:rowguid/tasks", taskHandler.CreateUnderEmployee)

	// Project routes
	r.GET("/projects", projectHandler.GetAll)
	r.POST("/projects", projectHandler.Create)
	r.PUT("/projects/:rowguid", projectHandler.Update)
	r.DELETE("/projects/:rowguid", projectHandler.Delete)
	r.GET("/projects/:rowguid/tasks", taskHandler.ListByProject)
	r.POST("/projects/:rowguid/tasks", taskHandler.CreateUnderProject)

	// Task routes
	r.PUT("/tasks/:rowguid", taskHandler.Update)
	r.DELETE("/tasks/:rowguid", taskHandler.Delete)

	// Assignment routes
	r.POST("/assignments", assignmentHandler.Add)
	r.DELETE("/assignments", assignmentHandler.Remove)

	// Calendar event routes
	r.GET("/events", eventHandler.GetAll)
	r.POST("/events", eventHandler.Create)
	r.PUT("/events/:rowguid", eventHandler.Update)
	r.DELETE("/events/:rowguid", eventHandler.Delete)

	r.GET("/swagger/*any", ginswagger.WrapHandler(swaggerfiles.Handler))

	return &Server{
		Engine: r,
		DB:     db,
		Config: cfg,
	}, nil
}

func runMigrations(db *gorm.DB, dbName string) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	driver, err := migratepg.WithInstance(sqlDB, &migratepg.Config{})
	if err != nil {
		return err
	}

	source, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return err
	}

	m, err := migrate.NewWithInstance("iofs", source, dbName, driver)
	if err != nil {
		return err
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

func (s *Server) Run() {
	srv := &http.Server{
		Addr:    ":" + s.Config.ServerPort,
		Handler: s.Engine,
	}

	go func() {
		log.Printf("🚀 Server running on port %s\n", s.Config.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Failed to listen: %s\n", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %s", err)
	}

	log.Println("✅ Server exited properly")
}
