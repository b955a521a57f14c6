package http

import (
	"github.com/MKhiriev/go-autonav/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/token", h.issueToken)
		r.Get("/version", h.getServerVersion)
		r.With(h.withPositionSignature).Post("/position", h.reportPosition)
	})

	// any authenticated, enabled account
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/users/me", h.getMe)
		r.Patch("/users/me", h.updateMe)
		r.Post("/users/me/password", h.changeOwnPassword)

		r.Get("/tags/all", h.listTags)
		r.Get("/tags/{id}", h.getTag)
		r.Get("/anchors/all", h.listAnchors)
		r.Get("/anchors/{id}", h.getAnchor)
		r.Get("/waypoints/all", h.listWaypoints)
		r.Get("/waypoints/{id}", h.getWaypoint)

		// administrators only
		r.Group(func(r chi.Router) {
			r.Use(h.requireRole(models.RoleAdministrator))

			r.Get("/users/all", h.listUsers)
			r.Get("/users/{id}", h.getUser)
			r.Post("/users", h.createUser)
			r.Patch("/users/{id}", h.updateUser)
			r.Post("/users/{id}/password", h.setUserPassword)
			r.Delete("/users/{id}", h.deleteUser)

			r.Post("/tags", h.createTag)
			r.Patch("/tags/{id}", h.updateTag)
			r.Delete("/tags/{id}", h.deleteTag)

			r.Post("/anchors", h.createAnchor)
			r.Patch("/anchors/{id}", h.updateAnchor)
			r.Patch("/anchors/{id}/position", h.updateAnchorPosition)
			r.Delete("/anchors/{id}", h.deleteAnchor)

			r.Post("/waypoints", h.createWaypoint)
			r.Patch("/waypoints/{id}", h.updateWaypoint)
			r.Patch("/waypoints/{id}/position", h.updateWaypointPosition)
			r.Delete("/waypoints/{id}", h.deleteWaypoint)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
