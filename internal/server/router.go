package server

import (
	"time"

	"github.com/cyberme/apiserver/internal/handlers"
	"github.com/cyberme/apiserver/internal/services"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter wires every operation onto its store-backed handler. Kept
// separate from New so tests can mount the full route table over fake
// repositories without a database.
func NewRouter(
	auth *services.AuthService,
	tasks *services.TaskService,
	journal *services.JournalService,
	dashboard *services.DashboardService,
) *chi.Mux {
	authHandler := handlers.NewAuthHandler(auth)
	taskHandler := handlers.NewTaskHandler(tasks)
	journalHandler := handlers.NewJournalHandler(journal)
	dashboardHandler := handlers.NewDashboardHandler(dashboard)

	router := chi.NewRouter()
	router.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		middleware.Timeout(60*time.Second),
	)

	router.Get("/", handlers.Health)
	router.Post("/register", authHandler.Register)
	router.Post("/login", authHandler.Login)
	router.Get("/dashboard/summary", dashboardHandler.GetSummary)
	router.Post("/tasks", taskHandler.CreateTask)
	router.Post("/tasks/{taskID}", taskHandler.ToggleTask)
	router.Post("/logs", journalHandler.CreateLog)
	router.Get("/logs", journalHandler.ListLogs)

	return router
}
