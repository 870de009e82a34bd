package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/signup", h.signUp)
		r.Post("/api/auth/signin", h.signIn)
		r.Post("/api/auth/refresh", h.refresh)
		r.Post("/api/auth/confirm", h.confirmEmail)
	})

	// routes behind bearer-token authentication
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/auth/signout", h.signOut)

		r.Get("/api/profiles/{id}", h.getProfile)
		r.Patch("/api/profiles/{id}/role", h.updateRole)

		r.Post("/api/tasks", h.createTask)
		r.Get("/api/tasks", h.listTasks)
		r.Patch("/api/tasks/{id}/status", h.updateTaskStatus)
		r.Delete("/api/tasks/{id}", h.deleteTask)

		r.Post("/api/chat/{department}/messages", h.postMessage)
		r.Get("/api/chat/{department}/messages", h.listMessages)
	})

	return router
}
