package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip, h.withSession)

	// routes without a session
	router.Group(func(r chi.Router) {
		r.Get("/session-status", h.sessionStatus)
		r.Post("/register", h.register)
		r.Post("/login", h.login)
		r.Post("/logout", h.logout)
		r.Get("/version", h.getServerVersion)
	})

	// routes that need a live session
	router.Group(func(r chi.Router) {
		r.Use(h.requireSession)
		r.Post("/chat", h.chat)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
