package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/avoronkov/maxcalories/internal/catalog"
	"github.com/avoronkov/maxcalories/internal/knapsack"
)

type contextKey string

const requestIDContextKey contextKey = "requestID"

// Strategy names accepted by the solve endpoint.
const (
	strategyGreedy     = "greedy"
	strategyExhaustive = "exhaustive"
)

// Handler wires solver and catalog dependencies into HTTP handlers.
type Handler struct {
	greedy     knapsack.Solver
	exhaustive knapsack.Solver
	store      catalog.Store

	solveTimeout time.Duration
	clock        func() time.Time

	mu               sync.RWMutex
	catalogUpdatedAt time.Time
}

// HandlerOption configures Handler behaviour.
type HandlerOption func(*Handler)

// WithClock overrides the time source, primarily for tests.
func WithClock(clock func() time.Time) HandlerOption {
	return func(h *Handler) {
		h.clock = clock
	}
}

// WithSolveTimeout bounds the wall-clock time of a single solve call.
// Exhaustive search near the size bound can run for an exponential time, so
// the handler aborts it cooperatively once the timeout elapses. Zero
// disables the bound.
func WithSolveTimeout(timeout time.Duration) HandlerOption {
	return func(h *Handler) {
		h.solveTimeout = timeout
	}
}

// NewHandler constructs a Handler with the provided dependencies.
func NewHandler(greedy, exhaustive knapsack.Solver, store catalog.Store, opts ...HandlerOption) *Handler {
	h := &Handler{
		greedy:     greedy,
		exhaustive: exhaustive,
		store:      store,
		clock: func() time.Time {
			return time.Now().UTC()
		},
	}
	for _, opt := range opts {
		opt(h)
	}
	h.catalogUpdatedAt = h.clock()
	return h
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	_ = r
	resp := healthResponse{
		Status:    "ok",
		Timestamp: h.clock(),
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleGetCatalog(w http.ResponseWriter, r *http.Request) {
	_ = r
	menu, err := h.store.Menu()
	if err != nil {
		writeInternalError(w, err)
		return
	}

	weight, calories := menu.Totals()
	resp := catalogResponse{
		Items:         menu,
		TotalWeight:   weight,
		TotalCalories: calories,
		UpdatedAt:     h.currentCatalogUpdatedAt(),
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handlePutCatalog(w http.ResponseWriter, r *http.Request) {
	var req catalogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request", "unable to parse JSON payload")
		return
	}

	if len(req.Items) == 0 {
		writeError(w, http.StatusBadRequest, "Invalid catalog", "items must contain at least one entry")
		return
	}

	if err := h.store.Replace(req.Items); err != nil {
		if errors.Is(err, catalog.ErrEmptyCatalog) || errors.Is(err, knapsack.ErrInvalidItem) {
			writeError(w, http.StatusBadRequest, "Invalid catalog", err.Error())
			return
		}
		writeInternalError(w, err)
		return
	}

	h.markCatalogUpdated()

	menu, err := h.store.Menu()
	if err != nil {
		writeInternalError(w, err)
		return
	}

	weight, calories := menu.Totals()
	resp := catalogResponse{
		Items:         menu,
		TotalWeight:   weight,
		TotalCalories: calories,
		UpdatedAt:     h.currentCatalogUpdatedAt(),
		Message:       "Catalog updated successfully",
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req solveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request", "unable to parse JSON payload")
		return
	}

	var solver knapsack.Solver
	strategy := strings.ToLower(strings.TrimSpace(req.Strategy))
	switch strategy {
	case strategyGreedy:
		solver = h.greedy
	case strategyExhaustive:
		solver = h.exhaustive
	default:
		writeError(w, http.StatusBadRequest, "Invalid strategy", `strategy must be "greedy" or "exhaustive"`)
		return
	}

	menu, err := h.store.Menu()
	if err != nil {
		writeInternalError(w, err)
		return
	}
	if req.Filter != nil {
		menu = applyFilter(menu, req.Filter)
	}

	ctx := r.Context()
	if h.solveTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.solveTimeout)
		defer cancel()
	}

	start := time.Now()
	sel, solveErr := solver.Solve(ctx, menu, req.Capacity)
	elapsed := time.Since(start)

	if solveErr != nil {
		switch {
		case errors.Is(solveErr, knapsack.ErrMenuTooLarge):
			suggestion := fmt.Sprintf("Filter the catalog below %d items or use the greedy strategy", knapsack.ExhaustiveSizeBound)
			writeError(w, http.StatusUnprocessableEntity, "Catalog too large for exhaustive search", solveErr.Error(), suggestion)
		case errors.Is(solveErr, context.DeadlineExceeded):
			writeError(w, http.StatusUnprocessableEntity, "Solve timed out", solveErr.Error(),
				"Reduce the catalog with a filter or use the greedy strategy")
		default:
			writeInternalError(w, solveErr)
		}
		return
	}

	resp := solveResponse{
		Strategy:          strategy,
		Capacity:          req.Capacity,
		Items:             sel.Items,
		TotalWeight:       sel.TotalWeight,
		TotalCalories:     sel.TotalCalories,
		ItemsConsidered:   len(menu),
		CalculationTimeMs: elapsed.Milliseconds(),
	}
	writeJSON(w, http.StatusOK, resp)
}

// applyFilter maps the optional request fields onto the catalog pre-filter,
// with absent bounds meaning unbounded.
func applyFilter(menu knapsack.Menu, f *filterRequest) knapsack.Menu {
	minCalories := math.Inf(-1)
	if f.MinCalories != nil {
		minCalories = *f.MinCalories
	}
	maxCalories := math.Inf(1)
	if f.MaxCalories != nil {
		maxCalories = *f.MaxCalories
	}
	maxItems := len(menu)
	if f.MaxItems != nil {
		maxItems = *f.MaxItems
	}
	return catalog.Filter(menu, minCalories, maxCalories, maxItems)
}

func (h *Handler) currentCatalogUpdatedAt() time.Time {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.catalogUpdatedAt
}

func (h *Handler) markCatalogUpdated() {
	h.mu.Lock()
	h.catalogUpdatedAt = h.clock()
	h.mu.Unlock()
}

func requestIDFromContext(ctx context.Context) string {
	if v := ctx.Value(requestIDContextKey); v != nil {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}

type catalogRequest struct {
	Items []knapsack.Item `json:"items"`
}

type filterRequest struct {
	MinCalories *float64 `json:"minCalories"`
	MaxCalories *float64 `json:"maxCalories"`
	MaxItems    *int     `json:"maxItems"`
}

type solveRequest struct {
	Capacity float64        `json:"capacity"`
	Strategy string         `json:"strategy"`
	Filter   *filterRequest `json:"filter,omitempty"`
}

type solveResponse struct {
	Strategy          string          `json:"strategy"`
	Capacity          float64         `json:"capacity"`
	Items             []knapsack.Item `json:"items"`
	TotalWeight       float64         `json:"totalWeight"`
	TotalCalories     float64         `json:"totalCalories"`
	ItemsConsidered   int             `json:"itemsConsidered"`
	CalculationTimeMs int64           `json:"calculationTimeMs"`
}

type catalogResponse struct {
	Items         []knapsack.Item `json:"items"`
	TotalWeight   float64         `json:"totalWeight"`
	TotalCalories float64         `json:"totalCalories"`
	UpdatedAt     time.Time       `json:"updatedAt"`
	Message       string          `json:"message,omitempty"`
}

type healthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

type errorResponse struct {
	Error      string `json:"error"`
	Details    string `json:"details,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if status != 0 {
		w.WriteHeader(status)
	}
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message, details string, suggestion ...string) {
	resp := errorResponse{
		Error:   message,
		Details: details,
	}
	if len(suggestion) > 0 {
		resp.Suggestion = suggestion[0]
	}
	writeJSON(w, status, resp)
}

func writeInternalError(w http.ResponseWriter, err error) {
	writeError(w, http.StatusInternalServerError, "Internal error", err.Error())
}
