package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/JL1365/hr3-backoffice-go/internal/config"
	handler "github.com/JL1365/hr3-backoffice-go/internal/handler/http"
	"github.com/JL1365/hr3-backoffice-go/internal/pkg/database"
	"github.com/JL1365/hr3-backoffice-go/internal/pkg/gateway"
	"github.com/JL1365/hr3-backoffice-go/internal/pkg/jwt"
	"github.com/JL1365/hr3-backoffice-go/internal/repository/postgresql"
	adjustmentSvc "github.com/JL1365/hr3-backoffice-go/internal/service/adjustment"
	attendanceSvc "github.com/JL1365/hr3-backoffice-go/internal/service/attendance"
	notificationSvc "github.com/JL1365/hr3-backoffice-go/internal/service/notification"
	planSvc "github.com/JL1365/hr3-backoffice-go/internal/service/plan"
	salarySvc "github.com/JL1365/hr3-backoffice-go/internal/service/salary"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.ServiceExpiration)
	accountsClient := gateway.NewAccountsClient(cfg.Gateway, jwtService)

	attendanceRepo := postgresql.NewAttendanceRepository(db)
	batchRepo := postgresql.NewBatchRepository(db)
	planRepo := postgresql.NewPlanRepository(db)
	adjustmentRepo := postgresql.NewAdjustmentRepository(db)
	historyRepo := postgresql.NewPayrollHistoryRepository(db)
	notificationRepo := postgresql.NewNotificationRepository(db)

	salaryService := salarySvc.NewSalaryService(
		db,
		attendanceRepo,
		batchRepo,
		planRepo,
		adjustmentRepo,
		historyRepo,
		notificationRepo,
		accountsClient,
	)
	attendanceService := attendanceSvc.NewAttendanceService(attendanceRepo, batchRepo, accountsClient)
	adjustmentService := adjustmentSvc.NewAdjustmentService(adjustmentRepo)
	planService := planSvc.NewPlanService(planRepo)
	notificationService := notificationSvc.NewNotificationService(notificationRepo)

	router := handler.NewRouter(
		cfg,
		jwtService,
		handler.NewSalaryHandler(salaryService),
		handler.NewAttendanceHandler(attendanceService),
		handler.NewAdjustmentHandler(adjustmentService),
		handler.NewPlanHandler(planService),
		handler.NewNotificationHandler(notificationService),
	)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "addr", addr, "env", cfg.App.Env)
	if err := http.ListenAndServe(addr, router); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
