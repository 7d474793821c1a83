package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, middleware.RealIP)
	router.Use(h.withTraceID, h.withLogging, withGZip)

	router.Get("/api/version/", h.serverVersion)

	router.Group(func(r chi.Router) {
		r.Use(h.withRateLimit, h.auth)

		r.Route("/api/fhe", func(r chi.Router) {
			r.Get("/", h.fheStatus)
			r.Post("/", h.fheOperation)
			r.Post("/encrypt", h.encrypt)
			r.Post("/decrypt", h.decrypt)
			r.Post("/compute", h.compute)
		})
		r.Get("/api/keys", h.keys)

		r.Route("/api/fhevm", func(r chi.Router) {
			r.Get("/status", h.status)
			r.Get("/info", h.info)
			r.Post("/encrypt", h.fhevmEncrypt)
			r.Post("/decrypt", h.fhevmDecrypt)
			r.Post("/batch-encrypt", h.batchEncrypt)
			r.Post("/verify", h.verify)
			r.Get("/operations", h.operations)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
