package web

import (
	"log/slog"
	"net/http"

	"github.com/UnknownOlympus/ems/internal/views"
	"github.com/gorilla/mux"
)

const (
	patternView   = "/view-employee/{id}"
	patternUpdate = "/update-employee/{id}"
	patternDelete = "/delete-employee/{id}"
)

// NewRouter maps the six screen paths to their views.
func NewRouter(log *slog.Logger, handler *Handler) *mux.Router {
	router := mux.NewRouter().UseEncodedPath()
	router.Use(RequestLogger(log))

	router.HandleFunc(views.PathRoot, handler.List).Methods(http.MethodGet)
	router.HandleFunc(views.PathList, handler.List).Methods(http.MethodGet)

	for _, pattern := range []string{views.PathAdd, patternView, patternUpdate} {
		router.HandleFunc(pattern, handler.Form).Methods(http.MethodGet)
		router.HandleFunc(pattern, handler.SubmitForm).Methods(http.MethodPost)
	}

	router.HandleFunc(patternDelete, handler.Delete).Methods(http.MethodGet)

	router.NotFoundHandler = RequestLogger(log)(http.HandlerFunc(handler.NotFound))

	return router
}
