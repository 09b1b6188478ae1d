// Package cache provides an optional result cache for proforma computations.
// Because the engine is a pure function of (assumptions, profile, scenario),
// identical inputs always yield identical results and caching is purely an
// optimization; a miss or a failed backend simply means recomputation.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/iwvelando/property-proforma/internal/proforma"
)

// Store is the backend contract: a flat string key/value store.
type Store interface {
	Get(key string) (string, bool)
	Set(key string, value string) error
}

// Key derives the deterministic cache key for one computation from the exact
// JSON encoding of its inputs.
func Key(assumptions proforma.AssumptionSet, personal proforma.PersonalProfile, scenario proforma.Scenario) (string, error) {
	payload, err := json.Marshal(struct {
		Assumptions proforma.AssumptionSet   `json:"assumptions"`
		Personal    proforma.PersonalProfile `json:"personal"`
		Scenario    proforma.Scenario        `json:"scenario"`
	}{assumptions, personal, scenario})
	if err != nil {
		return "", fmt.Errorf("failed to encode cache key inputs: %w", err)
	}

	sum := sha256.Sum256(payload)
	return "proforma:" + hex.EncodeToString(sum[:]), nil
}

// ProformaCache caches computed proformas keyed on their inputs.
type ProformaCache struct {
	store Store
}

// New creates a ProformaCache over the given backend.
func New(store Store) *ProformaCache {
	return &ProformaCache{store: store}
}

// Get returns the cached proforma for the inputs, if present. Any key or
// decode failure reads as a miss.
func (c *ProformaCache) Get(assumptions proforma.AssumptionSet, personal proforma.PersonalProfile, scenario proforma.Scenario) (proforma.Proforma, bool) {
	key, err := Key(assumptions, personal, scenario)
	if err != nil {
		return proforma.Proforma{}, false
	}

	raw, ok := c.store.Get(key)
	if !ok {
		return proforma.Proforma{}, false
	}

	var result proforma.Proforma
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return proforma.Proforma{}, false
	}
	return result, true
}

// Put stores a computed proforma. Results carrying non-finite values cannot
// be JSON-encoded and are skipped; recomputing them is as cheap as a lookup.
func (c *ProformaCache) Put(assumptions proforma.AssumptionSet, personal proforma.PersonalProfile, scenario proforma.Scenario, result proforma.Proforma) error {
	key, err := Key(assumptions, personal, scenario)
	if err != nil {
		return err
	}

	raw, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to encode proforma for caching: %w", err)
	}

	return c.store.Set(key, string(raw))
}
