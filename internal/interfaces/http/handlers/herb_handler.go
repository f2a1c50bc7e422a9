package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/turtacn/AyurChem-Intelligence/internal/application/catalog"
	"github.com/turtacn/AyurChem-Intelligence/internal/domain/herb"
	"github.com/turtacn/AyurChem-Intelligence/internal/infrastructure/monitoring/logging"
)

// HerbHandler serves the read-only knowledge endpoints.
type HerbHandler struct {
	svc    catalog.Service
	logger logging.Logger
}

func NewHerbHandler(svc catalog.Service, logger logging.Logger) *HerbHandler {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &HerbHandler{svc: svc, logger: logger}
}

// List handles GET /api/herbs.  It reads the graph store.
func (h *HerbHandler) List(w http.ResponseWriter, r *http.Request) {
	names, err := h.svc.ListHerbs(r.Context())
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, herbs(names))
}

// CatalogList handles GET /api/catalog/herbs.
func (h *HerbHandler) CatalogList(w http.ResponseWriter, r *http.Request) {
	names, err := h.svc.CatalogHerbs(r.Context())
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, herbs(names))
}

// Get handles GET /api/herbs/{herb}.
func (h *HerbHandler) Get(w http.ResponseWriter, r *http.Request) {
	detail, err := h.svc.Herb(r.Context(), chi.URLParam(r, "herb"))
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

// Synergistic handles GET /api/herbs/{herb}/synergistic[?limit=n].
func (h *HerbHandler) Synergistic(w http.ResponseWriter, r *http.Request) {
	limit := herb.DefaultSynergyLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	names, err := h.svc.Synergistic(r.Context(), chi.URLParam(r, "herb"), limit)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, herbs(names))
}

// Search handles GET /api/search?property_type=&property_value=.
func (h *HerbHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	names, err := h.svc.Search(r.Context(), q.Get("property_type"), q.Get("property_value"))
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, herbs(names))
}

// CatalogSearch handles GET /api/catalog/search?property_type=&property_value=.
func (h *HerbHandler) CatalogSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	names, err := h.svc.SearchCatalog(r.Context(), q.Get("property_type"), q.Get("property_value"))
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, herbs(names))
}

// ByDosha handles GET /api/dosha/{dosha}.
func (h *HerbHandler) ByDosha(w http.ResponseWriter, r *http.Request) {
	names, err := h.svc.ByDosha(r.Context(), chi.URLParam(r, "dosha"))
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, herbs(names))
}

// Graph handles GET /api/graph/{herb}.
func (h *HerbHandler) Graph(w http.ResponseWriter, r *http.Request) {
	g, err := h.svc.Graph(r.Context(), chi.URLParam(r, "herb"))
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, g)
}

// Compound handles GET /api/compounds/{name}.
func (h *HerbHandler) Compound(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.Compound(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// CompoundSearchResponse lists PubChem identifiers.
type CompoundSearchResponse struct {
	CIDs []int64 `json:"cids"`
}

// CompoundSearch handles GET /api/compounds/search?property=&value=.
func (h *HerbHandler) CompoundSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	cids, err := h.svc.SearchCompounds(r.Context(), q.Get("property"), q.Get("value"))
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	if cids == nil {
		cids = []int64{}
	}
	writeJSON(w, http.StatusOK, CompoundSearchResponse{CIDs: cids})
}

//Personal.AI order the ending
