package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	api "github.com/pathlight/courseware/internal/api/http"
	"github.com/pathlight/courseware/internal/auth"
	"github.com/pathlight/courseware/internal/billing"
	"github.com/pathlight/courseware/internal/catalog"
	"github.com/pathlight/courseware/internal/config"
	"github.com/pathlight/courseware/internal/db"
	"github.com/pathlight/courseware/internal/identity"
	"github.com/pathlight/courseware/internal/logging"
	"github.com/pathlight/courseware/internal/notes"
	"github.com/pathlight/courseware/internal/progress"
	"github.com/pathlight/courseware/internal/rbac"
)

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := logging.New(cfg.Env)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	// --- DB (identity, orders, purchasers) ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbh, err := db.Open(ctx, db.Driver(cfg.DBDriver), cfg.DBDSN)
	if err != nil {
		logger.Fatalw("db open failed", "driver", cfg.DBDriver, "err", err)
	}

	// --- Catalog and per-learner stores ---
	cat := catalog.Default()

	progStore, err := progress.NewFileStore(cfg.DataDir, logger)
	if err != nil {
		logger.Fatalw("progress store", "dir", cfg.DataDir, "err", err)
	}
	noteStore, err := notes.NewFileStore(cfg.DataDir, logger)
	if err != nil {
		logger.Fatalw("note store", "dir", cfg.DataDir, "err", err)
	}

	// --- Services ---
	billingStore := billing.NewSQLStore(dbh)
	idSvc := identity.NewService(identity.NewSQLStore(dbh), billingStore, logger)
	progSvc := progress.NewService(progStore, cat.Size(), logger)
	noteSvc := notes.NewService(noteStore, cat, logger)

	tokens := auth.NewService(cfg.AuthSecret)

	checkout := billing.NewCheckoutClient(cfg.PaymentAPIBase, cfg.PaymentSecretKey)
	provisioner := billing.NewProvisioner(billingStore, billingStore, idSvc, billing.NewEventLog(dbh), logger)

	if !cfg.BillingEnabled() {
		logger.Warnw("billing not fully configured, purchase flow disabled")
	}

	// --- Router ---
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if err := dbh.PingContext(r.Context()); err != nil {
			http.Error(w, "db unavailable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})

	// Public: sign-in and the purchase flow. Everything else needs a token.
	r.Post("/auth/login", api.LoginHandler(idSvc, tokens, logger))
	r.Post("/auth/logout", api.LogoutHandler())
	r.Post("/billing/checkout", api.CreateCheckoutHandler(checkout, api.CheckoutConfig{
		Enabled:    cfg.BillingEnabled(),
		PriceID:    cfg.PriceID,
		SuccessURL: cfg.CheckoutSuccessURL,
		CancelURL:  cfg.CheckoutCancelURL,
	}, logger))
	r.Post("/billing/webhook", api.WebhookHandler(provisioner, cfg.PaymentWebhookSecret, logger))

	// Protected API (JWT → role in context → RBAC)
	r.Group(func(pr chi.Router) {
		pr.Use(auth.JWTMiddleware(tokens))

		pr.Get("/auth/me", api.MeHandler(idSvc, logger))

		pr.With(rbac.Require("catalog:view")).
			Get("/modules", api.ListModulesHandler(cat, progSvc))
		pr.With(rbac.Require("catalog:view")).
			Get("/modules/{moduleID}", api.GetModuleHandler(cat, progSvc))

		pr.With(rbac.Require("progress:read")).
			Get("/progress", api.ProgressOverviewHandler(progSvc))
		pr.With(rbac.Require("progress:read")).
			Get("/progress/{moduleID}", api.GetModuleProgressHandler(progSvc, logger))
		pr.With(rbac.Require("progress:write")).
			Patch("/progress/{moduleID}", api.UpdateModuleProgressHandler(progSvc, logger))
		pr.With(rbac.Require("progress:write")).
			Post("/progress/{moduleID}/lesson", api.MarkLessonHandler(progSvc, logger))

		pr.With(rbac.Require("notes:write")).
			Post("/modules/{moduleID}/reflections", api.SaveReflectionsHandler(noteSvc, progSvc, logger))
		pr.With(rbac.Require("notes:write")).
			Post("/modules/{moduleID}/quiz", api.SubmitQuizHandler(noteSvc, progSvc, logger))
		pr.With(rbac.Require("notes:read")).
			Get("/modules/{moduleID}/notes", api.ListNotesHandler(noteSvc, logger))
		pr.With(rbac.Require("notes:write")).
			Patch("/notes/{noteID}", api.UpdateNoteHandler(noteSvc, logger))
		pr.With(rbac.Require("notes:write")).
			Delete("/notes/{noteID}", api.DeleteNoteHandler(noteSvc, logger))

		pr.With(rbac.Require("profile:view")).
			Get("/profile", api.GetProfileHandler(idSvc, logger))
		pr.With(rbac.Require("profile:edit")).
			Patch("/profile", api.UpdateProfileHandler(idSvc, logger))

		pr.With(rbac.RequireAny("orders:view-own", "orders:view-all")).
			Get("/billing/orders", api.ListOrdersHandler(billingStore, logger))
		pr.With(rbac.Require("orders:refund")).
			Post("/billing/orders/{orderID}/refund", api.RefundOrderHandler(billingStore, logger))
	})

	logger.Infow("gateway listening", "addr", cfg.HTTPAddr, "env", cfg.Env)
	if err := http.ListenAndServe(cfg.HTTPAddr, r); err != nil {
		logger.Fatalw("server stopped", "err", err)
	}
}
