package storefront

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/appetiteclub/apt"
	"github.com/appetiteclub/apt/events"
	"github.com/appetiteclub/apt/telemetry"
	"github.com/appetiteclub/storefront/internal/catalog"
	"github.com/appetiteclub/storefront/internal/selection"
	"github.com/appetiteclub/storefront/pkg/event"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

const MaxBodyBytes = 1 << 20

// Handler handles HTTP requests for the Storefront service
type Handler struct {
	groupRepo catalog.GroupRepo
	cache     *LookupCache
	collector *selection.Collector
	publisher events.Publisher
	logger    apt.Logger
	config    *apt.Config
	tlm       *telemetry.HTTP
}

type HandlerDeps struct {
	GroupRepo catalog.GroupRepo
	Cache     *LookupCache
	Publisher events.Publisher
}

// NewHandler creates a new Handler for storefront operations
func NewHandler(hd HandlerDeps, config *apt.Config, logger apt.Logger) *Handler {
	if logger == nil {
		logger = apt.NewNoopLogger()
	}
	cache := hd.Cache
	if cache == nil {
		cache = NewLookupCache(hd.GroupRepo, logger)
	}
	return &Handler{
		groupRepo: hd.GroupRepo,
		cache:     cache,
		collector: selection.NewCollector(NewDiagnostics(logger)),
		publisher: hd.Publisher,
		logger:    logger,
		config:    config,
		tlm:       telemetry.NewHTTP(),
	}
}

// RegisterRoutes registers all routes for the storefront service
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/storefront", func(r chi.Router) {
		r.Route("/catalog", func(r chi.Router) {
			r.Route("/groups", func(r chi.Router) {
				r.Post("/", h.CreateGroup)
				r.Get("/", h.ListGroups)
				r.Get("/{id}", h.GetGroup)
				r.Put("/{id}", h.UpdateGroup)
				r.Delete("/{id}", h.DeleteGroup)
			})
			r.Get("/images/{category}", h.GetImages)
		})
		r.Post("/cart/selections", h.CollectCartSelections)
	})
}

// ListGroups handles GET /storefront/catalog/groups
func (h *Handler) ListGroups(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.ListGroups")
	defer finish()
	log := h.log(r)
	ctx := r.Context()

	groups, err := h.groupRepo.List(ctx)
	if err != nil {
		log.Error("error listing option groups", "error", err)
		apt.RespondError(w, http.StatusInternalServerError, "Could not list option groups")
		return
	}

	apt.RespondSuccess(w, groups)
}

// GetGroup handles GET /storefront/catalog/groups/{id}. An optional product
// query parameter applies per-product display ordering to extras groups.
func (h *Handler) GetGroup(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.GetGroup")
	defer finish()
	log := h.log(r)
	ctx := r.Context()

	id, ok := h.parseIDParam(w, r, log)
	if !ok {
		return
	}

	group, err := h.groupRepo.Get(ctx, id)
	if err != nil {
		log.Error("error loading option group", "error", err, "id", id)
		apt.RespondError(w, http.StatusNotFound, "Option group not found")
		return
	}

	if productName := r.URL.Query().Get("product"); productName != "" && group.Type == catalog.OptionTypes.Extra.Code() {
		group.Options = catalog.SortExtrasForProduct(productName, group.Options)
	}

	apt.RespondSuccess(w, group)
}

// CreateGroup handles POST /storefront/catalog/groups
func (h *Handler) CreateGroup(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.CreateGroup")
	defer finish()
	log := h.log(r)
	ctx := r.Context()

	group, ok := h.decodeGroupPayload(w, r, log)
	if !ok {
		return
	}

	if validationErrors := catalog.ValidateOptionGroup(group); len(validationErrors) > 0 {
		log.Debug("validation failed", "errors", validationErrors)
		h.respondValidationErrors(w, validationErrors)
		return
	}

	if err := h.groupRepo.Create(ctx, group); err != nil {
		log.Error("cannot create option group", "error", err)
		apt.RespondError(w, http.StatusInternalServerError, "Could not create option group")
		return
	}

	h.afterCatalogChange(r, event.EventCatalogGroupCreated, group)

	w.WriteHeader(http.StatusCreated)
	apt.RespondSuccess(w, group)
}

// UpdateGroup handles PUT /storefront/catalog/groups/{id}
func (h *Handler) UpdateGroup(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.UpdateGroup")
	defer finish()
	log := h.log(r)
	ctx := r.Context()

	id, ok := h.parseIDParam(w, r, log)
	if !ok {
		return
	}

	group, ok := h.decodeGroupPayload(w, r, log)
	if !ok {
		return
	}
	group.ID = id

	if validationErrors := catalog.ValidateOptionGroup(group); len(validationErrors) > 0 {
		log.Debug("validation failed", "errors", validationErrors)
		h.respondValidationErrors(w, validationErrors)
		return
	}

	if err := h.groupRepo.Save(ctx, group); err != nil {
		log.Error("cannot save option group", "error", err, "id", id)
		apt.RespondError(w, http.StatusInternalServerError, "Could not save option group")
		return
	}

	h.afterCatalogChange(r, event.EventCatalogGroupUpdated, group)

	apt.RespondSuccess(w, group)
}

// DeleteGroup handles DELETE /storefront/catalog/groups/{id}
func (h *Handler) DeleteGroup(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.DeleteGroup")
	defer finish()
	log := h.log(r)
	ctx := r.Context()

	id, ok := h.parseIDParam(w, r, log)
	if !ok {
		return
	}

	if err := h.groupRepo.Delete(ctx, id); err != nil {
		log.Error("cannot delete option group", "error", err, "id", id)
		apt.RespondError(w, http.StatusInternalServerError, "Could not delete option group")
		return
	}

	h.afterCatalogChange(r, event.EventCatalogGroupDeleted, &catalog.OptionGroup{ID: id})

	apt.RespondSuccess(w, map[string]string{"deleted": id})
}

// GetImages handles GET /storefront/catalog/images/{category}
func (h *Handler) GetImages(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.GetImages")
	defer finish()
	log := h.log(r)

	category := chi.URLParam(r, "category")
	registry, ok := catalog.ImageRegistries[category]
	if !ok {
		log.Debug("unknown image category", "category", category)
		apt.RespondError(w, http.StatusNotFound, "Unknown image category")
		return
	}

	apt.RespondSuccess(w, registry)
}

type cartSelectionsRequest struct {
	Product       catalog.ProductRef        `json:"product"`
	Selections    []selection.CartSelection `json:"selections,omitempty"`
	Sources       []selection.NamedSource   `json:"sources"`
	NameOverrides map[string]string         `json:"name_overrides,omitempty"`
}

// CollectCartSelections handles POST /storefront/cart/selections. It extends
// the submitted selection list with every id present in the raw sources,
// resolving display names through per-product overrides first and the catalog
// lookup second.
func (h *Handler) CollectCartSelections(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.CollectCartSelections")
	defer finish()
	log := h.log(r)

	req, ok := h.decodeSelectionsPayload(w, r, log)
	if !ok {
		return
	}

	lookup := h.cache.Current()
	resolve := lookup.Resolver()
	if len(req.NameOverrides) > 0 {
		base := resolve
		overrides := req.NameOverrides
		resolve = func(id string) string {
			if name, ok := overrides[id]; ok && name != "" {
				return name
			}
			return base(id)
		}
	}

	selections := req.Selections
	h.collector.CompleteFromRawSources(&selections, req.Sources, lookup, resolve, req.Product)

	if selections == nil {
		selections = []selection.CartSelection{}
	}
	apt.RespondSuccess(w, selections)
}

// afterCatalogChange rebuilds the lookup snapshot and notifies other
// consumers that the catalog changed.
func (h *Handler) afterCatalogChange(r *http.Request, eventType string, group *catalog.OptionGroup) {
	ctx := r.Context()
	log := h.log(r)

	if err := h.cache.Rebuild(ctx); err != nil {
		log.Error("cannot rebuild selection lookup", "error", err)
	}

	if h.publisher == nil {
		return
	}

	payload := event.CatalogChangedEvent{
		EventType:  eventType,
		OccurredAt: time.Now().UTC(),
		GroupID:    group.ID,
		Revision:   uuid.New().String(),
		GroupTitle: group.Title,
		GroupType:  group.Type,
	}

	msg, _ := json.Marshal(payload)
	if err := h.publisher.Publish(ctx, event.CatalogTopic, msg); err != nil {
		log.Error("cannot publish catalog change event", "error", err, "group_id", group.ID)
	}
}

func (h *Handler) log(r *http.Request) apt.Logger {
	return h.logger.With("request_id", r.Context().Value("request_id"))
}

func (h *Handler) parseIDParam(w http.ResponseWriter, r *http.Request, log apt.Logger) (string, bool) {
	id := chi.URLParam(r, "id")
	if id == "" {
		log.Debug("missing id parameter")
		apt.RespondError(w, http.StatusBadRequest, "Missing id parameter")
		return "", false
	}
	return id, true
}

func (h *Handler) decodeGroupPayload(w http.ResponseWriter, r *http.Request, log apt.Logger) (*catalog.OptionGroup, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)
	defer r.Body.Close()

	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Debug("error reading request body", "error", err)
		apt.RespondError(w, http.StatusBadRequest, "Could not read request body")
		return nil, false
	}

	var group catalog.OptionGroup
	if err := json.Unmarshal(body, &group); err != nil {
		log.Debug("error decoding JSON", "error", err)
		apt.RespondError(w, http.StatusBadRequest, "Invalid JSON payload")
		return nil, false
	}

	return &group, true
}

func (h *Handler) decodeSelectionsPayload(w http.ResponseWriter, r *http.Request, log apt.Logger) (*cartSelectionsRequest, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)
	defer r.Body.Close()

	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Debug("error reading request body", "error", err)
		apt.RespondError(w, http.StatusBadRequest, "Could not read request body")
		return nil, false
	}

	var req cartSelectionsRequest
	if err := json.Unmarshal(body, &req); err != nil {
		log.Debug("error decoding JSON", "error", err)
		apt.RespondError(w, http.StatusBadRequest, "Invalid JSON payload")
		return nil, false
	}

	return &req, true
}

func (h *Handler) respondValidationErrors(w http.ResponseWriter, errors []catalog.ValidationError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"error":  "Validation failed",
		"errors": errors,
	})
}
