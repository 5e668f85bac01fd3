package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"waterflow/cmd"
	httpin "waterflow/internal/adapters/in/http"
	postgresout "waterflow/internal/adapters/out/postgres"
	"waterflow/internal/jobs"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	// TranslateError surfaces unique constraint violations as
	// gorm.ErrDuplicatedKey, which the repositories rely on for
	// conflict detection.
	gormDB, err := gorm.Open(postgres.Open(configs.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	if err := postgresout.MigrateSchema(gormDB); err != nil {
		log.Fatalf("Error migrating database schema: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, gormDB)

	sessions, err := httpin.NewSessionManager(configs.SessionSecret, configs.SessionTTL)
	if err != nil {
		log.Fatalf("Error creating session manager: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := jobs.NewJobManager(app.CreateInventoryUoWFactory(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, sessions, configs.HTTPPort)
}

func startWebServer(app *cmd.CompositionRoot, sessions *httpin.SessionManager, port string) {
	server := httpin.NewServer(sessions, httpin.Handlers{
		RegisterCustomer: app.CreateRegisterCustomerCommandHandler(),
		CreateOrder:      app.CreateCreateOrderCommandHandler(),
		UpdateOrder:      app.CreateUpdateOrderCommandHandler(),
		AssignOrder:      app.CreateAssignOrderCommandHandler(),
		CreateCustomer:   app.CreateCreateCustomerCommandHandler(),
		CreateAgent:      app.CreateCreateAgentCommandHandler(),
		CreateFeedback:   app.CreateCreateFeedbackCommandHandler(),
		UpdateStock:      app.CreateUpdateStockCommandHandler(),

		Authenticate:   app.CreateAuthenticateQueryHandler(),
		UserProfile:    app.CreateGetUserProfileQueryHandler(),
		Orders:         app.CreateGetOrdersQueryHandler(),
		DashboardStats: app.CreateGetDashboardStatsQueryHandler(),
		Customers:      app.CreateGetCustomersQueryHandler(),
		Agents:         app.CreateGetAgentsQueryHandler(),
		Inventory:      app.CreateGetInventoryQueryHandler(),
	})

	e := echo.New()
	server.RegisterRoutes(e)

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil &&
			!errors.Is(err, nethttp.ErrServerClosed) {
			e.Logger.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		e.Logger.Fatal(err)
	}
}
