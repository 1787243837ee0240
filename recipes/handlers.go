package recipes

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"forkful/cache"
	"forkful/models"
	"forkful/pantry"
	"forkful/provider"
	"forkful/utils"

	"github.com/julienschmidt/httprouter"
)

// Handler serves the recipe proxy endpoints. Every response that reaches
// the client goes cache → upstream → cache; only by-ingredients reshapes
// the payload before storing it.
type Handler struct {
	Provider *provider.Client
	Cache    cache.Store
}

func NewHandler(p *provider.Client, store cache.Store) *Handler {
	return &Handler{Provider: p, Cache: store}
}

// Search proxies complex search straight through. All parameters are
// optional; an empty term is allowed here.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	q := r.URL.Query()
	maxReady, _ := strconv.Atoi(q.Get("maxReadyTime"))

	req := h.Provider.Search(models.SearchQuery{
		Term:         q.Get("q"),
		Diet:         q.Get("diet"),
		Cuisine:      q.Get("cuisine"),
		MaxReadyTime: maxReady,
	})
	h.serveCached(w, r, req, cache.DefaultTTL)
}

// GetByID proxies single-recipe detail.
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := strings.TrimSpace(ps.ByName("id"))
	if id == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "id required")
		return
	}
	h.serveCached(w, r, h.Provider.GetByID(id), cache.DefaultTTL)
}

// ByIngredients runs the pantry ranking over the raw upstream payload and
// caches the normalized result, keyed by the resolved parameters.
func (h *Handler) ByIngredients(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	q := r.URL.Query()

	ingredients := splitIngredients(q.Get("ingredients"))
	if len(ingredients) == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "ingredients required")
		return
	}
	limit, _ := strconv.Atoi(q.Get("limit"))
	ranking, _ := strconv.Atoi(q.Get("ranking"))

	req := h.Provider.FindByIngredients(ingredients, limit, ranking)

	ctx := r.Context()
	if payload, ok := h.Cache.Get(ctx, req.Signature); ok {
		writeJSONBytes(w, http.StatusOK, payload)
		return
	}

	raw, err := req.Fetch(ctx)
	if err != nil {
		respondFetchError(w, err)
		return
	}

	var results []models.RawMatchResult
	if err := json.Unmarshal(raw, &results); err != nil {
		utils.RespondWithError(w, http.StatusBadGateway, "invalid upstream payload")
		return
	}

	payload, err := json.Marshal(utils.M{"results": pantry.Normalize(results)})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}
	h.Cache.Set(ctx, req.Signature, payload, cache.PantryTTL)
	writeJSONBytes(w, http.StatusOK, payload)
}

// serveCached answers from the cache when the signature is fresh,
// otherwise fetches upstream and stores the raw payload unmodified.
func (h *Handler) serveCached(w http.ResponseWriter, r *http.Request, req provider.Request, ttl time.Duration) {
	ctx := r.Context()
	if payload, ok := h.Cache.Get(ctx, req.Signature); ok {
		writeJSONBytes(w, http.StatusOK, payload)
		return
	}

	payload, err := req.Fetch(ctx)
	if err != nil {
		respondFetchError(w, err)
		return
	}
	h.Cache.Set(ctx, req.Signature, payload, ttl)
	writeJSONBytes(w, http.StatusOK, payload)
}

// splitIngredients turns a comma-joined list into lowercase, trimmed
// names. Duplicates are the caller's responsibility.
func splitIngredients(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if name := strings.ToLower(strings.TrimSpace(p)); name != "" {
			out = append(out, name)
		}
	}
	return out
}

func respondFetchError(w http.ResponseWriter, err error) {
	var ue *provider.UpstreamError
	if errors.As(err, &ue) {
		utils.RespondWithJSON(w, ue.Status, utils.M{"error": "Upstream error", "details": ue.Body})
		return
	}
	utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
}

func writeJSONBytes(w http.ResponseWriter, status int, payload []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(payload)
}
