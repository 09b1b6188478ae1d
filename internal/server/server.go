// Package server exposes the simulator and proforma engine over HTTP for the
// editing UI. The core stays pure; this layer owns request decoding, cache
// lookups, and the substitution of display fallbacks for non-finite values.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/iwvelando/property-proforma/internal/cache"
	"github.com/iwvelando/property-proforma/internal/config"
	"github.com/iwvelando/property-proforma/internal/proforma"
	"github.com/iwvelando/property-proforma/internal/simulate"
	"github.com/iwvelando/property-proforma/pkg/constants"
	"github.com/iwvelando/property-proforma/pkg/format"
	"github.com/iwvelando/property-proforma/pkg/validation"
	"go.uber.org/zap"
)

type handler struct {
	logger      *zap.Logger
	maxBodySize int64
	version     string
	simulator   *simulate.Simulator
	cache       *cache.ProformaCache
}

// NewHandler constructs the HTTP handler that serves the analysis API. A nil
// store falls back to an in-memory cache.
func NewHandler(logger *zap.Logger, maxBodySize int64, version string, store cache.Store) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	if maxBodySize <= 0 {
		maxBodySize = constants.DefaultMaxBodySizeBytes
	}

	if store == nil {
		store = cache.NewMemoryStore()
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{
		logger:      logger,
		maxBodySize: maxBodySize,
		version:     trimmedVersion,
		simulator:   simulate.NewSimulator(),
		cache:       cache.New(store),
	}

	mux := http.NewServeMux()

	// Synthesize market assumptions for a submitted property
	mux.HandleFunc("/api/simulate", h.handleSimulate)

	// Compute one proforma from explicit assumptions
	mux.HandleFunc("/api/proforma", h.handleProforma)

	// Simulate and compute all requested scenarios in one shot
	mux.HandleFunc("/api/analyze", h.handleAnalyze)

	// Version endpoint for UI metadata
	mux.HandleFunc("/api/version", h.handleVersion)

	return mux
}

type propertyPayload struct {
	Address   string  `json:"address"`
	Bedrooms  int     `json:"bedrooms"`
	Bathrooms float64 `json:"bathrooms"`
	YearBuilt int     `json:"yearBuilt"`
}

func (p propertyPayload) toProperty() config.Property {
	return config.Property{
		Address:   p.Address,
		Bedrooms:  p.Bedrooms,
		Bathrooms: p.Bathrooms,
		YearBuilt: p.YearBuilt,
	}
}

type simulateResponse struct {
	Assumptions proforma.AssumptionSet `json:"assumptions"`
	Warnings    []string               `json:"warnings,omitempty"`
	Duration    string                 `json:"duration"`
}

type proformaRequest struct {
	Assumptions proforma.AssumptionSet   `json:"assumptions"`
	Personal    proforma.PersonalProfile `json:"personal"`
	Scenario    proforma.Scenario        `json:"scenario"`
}

type proformaResponse struct {
	Result   proforma.Proforma `json:"result"`
	Cached   bool              `json:"cached"`
	Warnings []string          `json:"warnings,omitempty"`
	Duration string            `json:"duration"`
}

type analyzeRequest struct {
	Property  propertyPayload           `json:"property"`
	Personal  *proforma.PersonalProfile `json:"personal,omitempty"`
	Scenarios []proforma.Scenario       `json:"scenarios,omitempty"`
}

type analyzeResponse struct {
	Assumptions proforma.AssumptionSet `json:"assumptions"`
	Results     []proforma.Proforma    `json:"results"`
	Warnings    []string               `json:"warnings,omitempty"`
	Duration    string                 `json:"duration"`
}

func (h *handler) handleSimulate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()
	var payload propertyPayload
	if !h.decodeBody(w, r, &payload, "server.handleSimulate") {
		return
	}

	property := payload.toProperty()
	warnings := validation.ValidateProperty(property)
	assumptions := h.simulator.Simulate(property)

	h.logger.Debug("simulated assumptions for property",
		zap.String("op", "server.handleSimulate"),
		zap.String("address", property.Address),
	)

	h.writeJSON(w, http.StatusOK, simulateResponse{
		Assumptions: assumptions,
		Warnings:    warnings,
		Duration:    time.Since(start).String(),
	})
}

func (h *handler) handleProforma(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()
	var payload proformaRequest
	if !h.decodeBody(w, r, &payload, "server.handleProforma") {
		return
	}

	if !payload.Scenario.Valid() {
		h.respondErrorWithOp(w, http.StatusBadRequest,
			fmt.Sprintf("unknown scenario %q", payload.Scenario), "server.handleProforma")
		return
	}

	warnings := validation.ValidateAssumptions(payload.Assumptions)
	warnings = append(warnings, validation.ValidateProfile(payload.Personal)...)

	result, cached := h.computeCached(payload.Assumptions, payload.Personal, payload.Scenario)

	h.writeJSON(w, http.StatusOK, proformaResponse{
		Result:   finiteProforma(result),
		Cached:   cached,
		Warnings: warnings,
		Duration: time.Since(start).String(),
	})
}

func (h *handler) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()
	var payload analyzeRequest
	if !h.decodeBody(w, r, &payload, "server.handleAnalyze") {
		return
	}

	scenarios := payload.Scenarios
	if len(scenarios) == 0 {
		scenarios = []proforma.Scenario{proforma.ScenarioRental, proforma.ScenarioAirbnb, proforma.ScenarioOwner}
	}
	if err := validation.ValidateScenarios(scenarios); err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, err.Error(), "server.handleAnalyze")
		return
	}

	personal := config.DefaultProfile()
	if payload.Personal != nil {
		personal = *payload.Personal
	}

	property := payload.Property.toProperty()
	warnings := validation.ValidateProperty(property)
	warnings = append(warnings, validation.ValidateProfile(personal)...)

	assumptions := h.simulator.Simulate(property)

	results := make([]proforma.Proforma, 0, len(scenarios))
	for _, scenario := range scenarios {
		result, _ := h.computeCached(assumptions, personal, scenario)
		results = append(results, finiteProforma(result))
	}

	h.writeJSON(w, http.StatusOK, analyzeResponse{
		Assumptions: assumptions,
		Results:     results,
		Warnings:    warnings,
		Duration:    time.Since(start).String(),
	})
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

// computeCached serves a proforma from the cache when the exact inputs have
// been computed before, recomputing otherwise. Caching is purely an
// optimization; any cache failure degrades to recomputation.
func (h *handler) computeCached(assumptions proforma.AssumptionSet, personal proforma.PersonalProfile, scenario proforma.Scenario) (proforma.Proforma, bool) {
	if result, ok := h.cache.Get(assumptions, personal, scenario); ok {
		return result, true
	}

	result := proforma.Compute(assumptions, personal, scenario)
	if err := h.cache.Put(assumptions, personal, scenario, result); err != nil {
		h.logger.Debug("skipping proforma cache store",
			zap.String("op", "server.computeCached"),
			zap.Error(err),
		)
	}
	return result, false
}

// decodeBody applies the body size limit and decodes a JSON payload,
// responding with the appropriate error on failure.
func (h *handler) decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}, op string) bool {
	if h.maxBodySize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)
	}

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondErrorWithOp(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request exceeds limit of %d bytes", h.maxBodySize), op)
			return false
		}
		h.respondErrorWithOp(w, http.StatusBadRequest, fmt.Sprintf("failed to decode request: %v", err), op)
		return false
	}
	return true
}

// finiteProforma substitutes zero for non-finite figures so the result can be
// JSON-encoded. This is the display boundary the core defers to.
func finiteProforma(result proforma.Proforma) proforma.Proforma {
	sanitizeFloats(reflect.ValueOf(&result.Base).Elem())
	if result.Rental != nil {
		rental := *result.Rental
		sanitizeFloats(reflect.ValueOf(&rental).Elem())
		result.Rental = &rental
	}
	if result.Owner != nil {
		owner := *result.Owner
		sanitizeFloats(reflect.ValueOf(&owner).Elem())
		result.Owner = &owner
	}
	return result
}

func sanitizeFloats(v reflect.Value) {
	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		if field.Kind() == reflect.Float64 {
			field.SetFloat(format.Finite(field.Float()))
		}
	}
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Warn("failed to encode response",
			zap.String("op", "server.writeJSON"),
			zap.Error(err),
		)
	}
}

func (h *handler) respondErrorWithOp(w http.ResponseWriter, status int, message, op string) {
	h.logger.Warn(message,
		zap.String("op", op),
		zap.Int("status", status),
	)
	h.writeJSON(w, status, map[string]string{"error": message})
}
