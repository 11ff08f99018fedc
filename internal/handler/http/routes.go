package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(
		middleware.Recoverer,
		h.withTraceID,
		h.withLogging,
		withGZip,
		middleware.Timeout(h.requestTimeout),
	)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/version", h.getServerVersion)
		r.Post("/api/user/register", h.register)
		r.Post("/api/user/login", h.login)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/user/me", h.me)
		r.Patch("/api/user/profile", h.updateProfile)
		r.Put("/api/user/profile/avatar", h.setAvatar)

		r.Get("/api/users", h.listUsers)
		r.Get("/api/users/by-username/{username}", h.getUserByUsername)
		r.Get("/api/users/{userID}", h.getUser)
		r.Get("/api/users/{userID}/connections", h.listUserConnections)

		r.Get("/api/connections", h.listMyConnections)
		r.Get("/api/connections/requests", h.listPendingRequests)
		r.Post("/api/connections/requests", h.sendRequest)
		r.Post("/api/connections/requests/accept", h.acceptRequest)
		r.Post("/api/connections/requests/decline", h.declineRequest)
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
