package orders

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"brewline/pkg/handlers"
	"brewline/pkg/routes"
)

// Handler provides HTTP endpoints for order operations.
type Handler struct {
	sys     System
	logger  *slog.Logger
	advisor Advisor
}

// NewHandler creates a Handler with the given system, logger, and optional
// advisor. A nil advisor disables the advisory analysis hook on listings.
func NewHandler(sys System, logger *slog.Logger, advisor Advisor) *Handler {
	return &Handler{
		sys:     sys,
		logger:  logger.With("handler", "orders"),
		advisor: advisor,
	}
}

// Routes returns the route group definition for order endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/orders",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.List},
			{Method: "GET", Pattern: "/{id}", Handler: h.Find},
			{Method: "POST", Pattern: "", Handler: h.Create},
		},
	}
}

// List returns the full hydrated order collection. When a question query
// parameter is present, the advisory analysis pipeline runs against the
// collection before responding; the listing is returned regardless of the
// advisory outcome.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.sys.List(r.Context())
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	if question := r.URL.Query().Get("question"); question != "" && h.advisor != nil {
		h.advisor.Advise(r.Context(), *result, question)
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Find returns a single order by its integer id path parameter.
func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidOrder)
		return
	}

	o, err := h.sys.Find(r.Context(), id)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, o)
}

// Create validates, prices, and appends a new order, echoing back the stored
// record with its computed cost and defaulted timestamp.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var cmd CreateCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	o, err := h.sys.Create(r.Context(), cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, o)
}
