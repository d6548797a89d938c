package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withRealIP, h.withTraceID, h.withLogging, middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   h.allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", traceIDHeader},
		ExposedHeaders:   []string{"Authorization", traceIDHeader},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	if h.gate != nil {
		router.Use(h.withGate)
	}
	router.Use(middleware.Compress(5, "application/json"))

	router.Route("/api", func(r chi.Router) {
		// routes without authorization
		r.Post("/register", h.register)
		r.Post("/login", h.login)
		r.Get("/heartbeat", h.getServerVersion)

		r.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Get("/me", h.me)
			r.Post("/chat", h.chat)

			r.Get("/records", h.listRecords)
			r.Delete("/records/{id}", h.deleteRecord)
			r.Get("/income", h.listIncome)
			r.Delete("/income/{id}", h.deleteIncome)

			r.Get("/categories", h.listCategories)
			r.Post("/categories", h.createCategory)
			r.Delete("/categories/{name}", h.deleteCategory)

			r.Get("/budgets", h.listBudgets)
			r.Post("/budgets", h.setBudget)

			r.Get("/stats/monthly", h.monthlyStats)
			r.Get("/stats/by-category", h.categoryStats)

			r.Get("/llm_config", h.getLLMConfig)
			r.Put("/llm_config", h.saveLLMConfig)

			r.With(h.adminOnly).Get("/admin/users", h.listUsers)
		})
	})

	router.NotFound(h.notFound)
	router.MethodNotAllowed(h.methodNotAllowed)

	return router
}
