package web

import (
	"log/slog"
	"net/http"
	"net/url"

	"github.com/UnknownOlympus/ems/internal/lib/logger/sl"
	"github.com/UnknownOlympus/ems/internal/lib/requestid"
	"github.com/UnknownOlympus/ems/internal/metrics"
	"github.com/UnknownOlympus/ems/internal/models"
	"github.com/UnknownOlympus/ems/internal/views"
	"github.com/a-h/templ"
	"github.com/go-playground/form"
	"github.com/gorilla/mux"
)

// Handler mounts one view per request and turns its navigation into a redirect.
type Handler struct {
	log     *slog.Logger
	service views.EmployeeService
	metrics *metrics.Metrics
	decoder *form.Decoder
}

func NewHandler(log *slog.Logger, service views.EmployeeService, metrics *metrics.Metrics) *Handler {
	return &Handler{
		log:     log,
		service: service,
		metrics: metrics,
		decoder: form.NewDecoder(),
	}
}

// navigation records the target a view navigated to during the request.
type navigation struct {
	target string
}

func (n *navigation) navigate(target string) {
	n.target = target
}

func (h *Handler) requestLogger(r *http.Request) *slog.Logger {
	return h.log.With(slog.String("request_id", requestid.FromContext(r.Context())))
}

// List serves `/` and `/employees`.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	view := views.NewListView(h.requestLogger(r), h.service)
	view.Mount(r.Context())

	h.render(w, r, http.StatusOK, "list", Page("Employees", EmployeeTable(view.Rows())))
}

// Form serves the add, view and update screens.
func (h *Handler) Form(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	view := views.NewFormView(h.requestLogger(r), h.service, (&navigation{}).navigate, id)
	view.Mount(r.Context())

	h.render(w, r, http.StatusOK, "form", Page(view.Title(), EmployeeForm(view, r.URL.EscapedPath())))
}

// SubmitForm handles the form submission of the add, view and update screens.
func (h *Handler) SubmitForm(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	if err := r.ParseForm(); err != nil {
		h.requestLogger(r).WarnContext(r.Context(), "Failed to parse submitted form", sl.Err(err))
		http.Error(w, "invalid form submission", http.StatusBadRequest)
		return
	}

	var fields views.Fields
	if err := h.decoder.Decode(&fields, r.PostForm); err != nil {
		h.requestLogger(r).WarnContext(r.Context(), "Failed to decode submitted form", sl.Err(err))
		http.Error(w, "invalid form submission", http.StatusBadRequest)
		return
	}

	nav := &navigation{}
	view := views.NewFormView(h.requestLogger(r), h.service, nav.navigate, id)
	view.Fields = fields
	view.Submit(r.Context())

	if nav.target != "" {
		http.Redirect(w, r, nav.target, http.StatusSeeOther)
		return
	}

	h.countBlocked(view.Errors)
	h.render(w, r, http.StatusOK, "form", Page(view.Title(), EmployeeForm(view, r.URL.EscapedPath())))
}

// Delete serves `/delete-employee/{id}`: it deletes and redirects to the list in the same request.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	nav := &navigation{}
	views.NewDeleteView(h.requestLogger(r), h.service, nav.navigate, id).Mount(r.Context())

	w.Header().Set("Location", nav.target)
	h.render(w, r, http.StatusSeeOther, "delete", Page("Employees", Deleting()))
}

// NotFound renders the bare shell for paths no view is mapped to.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusNotFound, "not_found", Page("Employee Management System", Empty()))
}

func (h *Handler) pathID(w http.ResponseWriter, r *http.Request) (models.ID, bool) {
	raw := mux.Vars(r)["id"]

	id, err := url.PathUnescape(raw)
	if err != nil {
		http.Error(w, "invalid employee identifier", http.StatusBadRequest)
		return "", false
	}

	return models.ID(id), true
}

func (h *Handler) countBlocked(errs views.FieldErrors) {
	if errs.FirstName != "" {
		h.metrics.BlockedSubmissions.WithLabelValues("firstName").Inc()
	}
	if errs.LastName != "" {
		h.metrics.BlockedSubmissions.WithLabelValues("lastName").Inc()
	}
	if errs.Email != "" {
		h.metrics.BlockedSubmissions.WithLabelValues("email").Inc()
	}
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, view string, page templ.Component) {
	h.metrics.PageRenders.WithLabelValues(view).Inc()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := page.Render(r.Context(), w); err != nil {
		h.requestLogger(r).ErrorContext(r.Context(), "Failed to render page", slog.String("view", view), sl.Err(err))
	}
}
