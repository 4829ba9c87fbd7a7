package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	environmentPath = "/environment.json"
	versionPath     = "/api/version/"
	buildInfoPath   = "/api/version/build"
	providerPath    = "/api/provider/"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging, withGZip)

	router.Get(environmentPath, h.getEnvironment)
	router.Get(versionPath, h.getServerVersion)
	router.Get(buildInfoPath, h.getBuildInfo)
	router.Get(providerPath, h.checkProvider)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
