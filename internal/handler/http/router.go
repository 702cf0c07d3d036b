package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/JL1365/hr3-backoffice-go/internal/config"
	"github.com/JL1365/hr3-backoffice-go/internal/handler/http/middleware"
	"github.com/JL1365/hr3-backoffice-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	cfg *config.Config,
	jwtService jwt.Service,
	salaryHandler SalaryHandler,
	attendanceHandler AttendanceHandler,
	adjustmentHandler AdjustmentHandler,
	planHandler PlanHandler,
	notificationHandler NotificationHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hr3-backoffice"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok\n"))
	})

	r.Route("/api", func(r chi.Router) {

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/salaryRequest", func(r chi.Router) {
				r.Get("/get-my-payroll-history", salaryHandler.MyHistory)
				r.Get("/payslip/{batchId}/{employeeId}", salaryHandler.Payslip)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/calculate-gross-salary", salaryHandler.CalculateGross)
					r.Get("/calculate-net-salary", salaryHandler.CalculateNet)
					r.Post("/finalize-payroll", salaryHandler.Finalize)
					r.Get("/get-all-payroll-history", salaryHandler.AllHistory)
				})
			})

			r.Route("/thirteenMonth", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Get("/calculate-13-month", salaryHandler.ThirteenthMonth)
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Post("/", attendanceHandler.Ingest)
				r.Get("/", attendanceHandler.ListOpen)
				r.Get("/batch/{batchId}", attendanceHandler.ListByBatch)
			})

			r.Route("/benefitDeduction", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Post("/", adjustmentHandler.AddDeduction)
				r.Get("/", adjustmentHandler.ListDeductions)
			})

			r.Route("/incentiveTracking", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Post("/", adjustmentHandler.AddIncentive)
				r.Get("/", adjustmentHandler.ListIncentives)
			})

			r.Route("/employeeCompensation", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Post("/", adjustmentHandler.AddCompensation)
				r.Get("/", adjustmentHandler.ListCompensations)
			})

			r.Route("/compensationPlan", func(r chi.Router) {
				r.Get("/", planHandler.List)
				r.Get("/by-position", planHandler.GetByPosition)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", planHandler.Create)
					r.Put("/{id}", planHandler.Update)
				})
			})

			r.Route("/notification", func(r chi.Router) {
				r.Get("/my", notificationHandler.My)
				r.Patch("/{id}/read", notificationHandler.MarkAsRead)
			})
		})
	})
	return r
}
