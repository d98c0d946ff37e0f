package main

import (
	"context"
	"database/sql"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	eventsHttp "event-trends-service/internal/events/adapters/http/fiber"
	eventsRepoPg "event-trends-service/internal/events/adapters/postgres"
	eventsUsecase "event-trends-service/internal/events/core/usecase"

	trendsHttp "event-trends-service/internal/trends/adapters/http/fiber"
	trendsRepoPg "event-trends-service/internal/trends/adapters/postgres"
	trendsUsecase "event-trends-service/internal/trends/core/usecase"

	"github.com/gofiber/fiber/v2"
	_ "github.com/lib/pq"
	fiberSwagger "github.com/swaggo/fiber-swagger"

	_ "event-trends-service/docs"
)

func main() {
	// Config
	dsn := os.Getenv("POSTGRES_DSN")
	if dsn == "" {
		log.Fatal("POSTGRES_DSN is not set")
	}

	// DB connection
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("failed to open postgres: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.Ping(); err != nil {
		log.Fatalf("failed to ping postgres: %v", err)
	}

	// Adapter-level DB wrappers
	eventsDB := eventsRepoPg.NewSQLDB(db)
	trendsDB := trendsRepoPg.NewSQLDB(db)

	// Repositories
	eventRepository := eventsRepoPg.NewEventRepository(eventsDB)
	actionRulesRepository := eventsRepoPg.NewActionRulesRepository(eventsDB)
	eventStore := trendsRepoPg.NewEventStore(trendsDB)
	actionStore := trendsRepoPg.NewActionStore(trendsDB)
	peopleStore := trendsRepoPg.NewPeopleStore(trendsDB)

	// Usecases
	captureEventUC := eventsUsecase.NewCaptureEventUseCase(eventRepository, actionRulesRepository)
	trendsUC := trendsUsecase.NewTrendsUseCase(eventStore, actionStore)
	peopleUC := trendsUsecase.NewPeopleUseCase(eventStore, actionStore, peopleStore)

	// HTTP (Fiber) app + handlers
	app := fiber.New()

	// events endpoints
	eventsHandler := eventsHttp.NewEventHandler(captureEventUC)
	app.Post("/events", eventsHandler.CreateEvent)
	app.Post("/events/bulk", eventsHandler.BulkCreateEvents)

	// trends endpoints
	trendsHandler := trendsHttp.NewTrendsHandler(trendsUC, peopleUC)
	app.Get("/trends", trendsHandler.GetTrends)
	app.Get("/people", trendsHandler.GetPeople)

	// Swagger
	app.Get("/docs/*", fiberSwagger.WrapHandler)

	// Graceful shutdown
	go func() {
		if err := app.Listen(":8080"); err != nil {
			log.Printf("fiber stopped: %v", err)
		}
	}()

	log.Println("server started on :8080")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit

	log.Println("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("fiber shutdown error: %v", err)
	}

	log.Println("server exiting")
}
