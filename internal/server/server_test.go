package server

import (
	"bytes"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/iwvelando/property-proforma/internal/cache"
	"github.com/iwvelando/property-proforma/internal/proforma"
	"github.com/iwvelando/property-proforma/pkg/constants"
	"go.uber.org/zap"
)

func testHandler() http.Handler {
	return NewHandler(zap.NewNop(), constants.DefaultMaxBodySizeBytes, "test", cache.NewMemoryStore())
}

func postJSON(t *testing.T, handler http.Handler, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("failed to marshal request payload: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func testProformaRequest() proformaRequest {
	return proformaRequest{
		Assumptions: proforma.AssumptionSet{
			PurchasePrice:        500000,
			DownPaymentPercent:   0.20,
			InterestRate:         0.065,
			LoanTermYears:        30,
			ClosingCostsPercent:  0.03,
			LandValuePercent:     0.20,
			MonthlyRent:          3000,
			AvgNightlyRate:       250,
			OccupancyRate:        0.65,
			EquivalentRent:       3200,
			PropertyTaxPercent:   0.012,
			HomeInsurancePercent: 0.004,
			MonthlyHOA:           50,
			UtilitiesMonthly:     200,
			MaintenancePercent:   0.08,
			VacancyPercent:       0.05,
			ManagementFeePercent: 0.10,
			PlatformFeePercent:   0.04,
		},
		Personal: proforma.PersonalProfile{FederalTaxRate: 0.24, StateTaxRate: 0.05, OpportunityCostRate: 0.07},
		Scenario: proforma.ScenarioRental,
	}
}

func TestHandleVersion(t *testing.T) {
	handler := testHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, expected %d", rec.Code, http.StatusOK)
	}

	var payload map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if payload["version"] != "test" {
		t.Errorf("version = %q, expected %q", payload["version"], "test")
	}
}

func TestHandleVersionMethodNotAllowed(t *testing.T) {
	handler := testHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/version", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, expected %d", rec.Code, http.StatusMethodNotAllowed)
	}
}

func TestHandleSimulate(t *testing.T) {
	handler := testHandler()

	rec := postJSON(t, handler, "/api/simulate", propertyPayload{
		Address:   "123 Main St",
		Bedrooms:  3,
		Bathrooms: 2,
		YearBuilt: 1995,
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, expected %d: %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	var payload simulateResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if payload.Assumptions.PurchasePrice <= 0 {
		t.Errorf("simulated price = %v, expected positive", payload.Assumptions.PurchasePrice)
	}
	if len(payload.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", payload.Warnings)
	}
}

func TestHandleSimulateDeterministic(t *testing.T) {
	handler := testHandler()
	property := propertyPayload{Address: "77 Elm Ave", Bedrooms: 2, Bathrooms: 1.5, YearBuilt: 1978}

	first := postJSON(t, handler, "/api/simulate", property)
	second := postJSON(t, handler, "/api/simulate", property)

	var a, b simulateResponse
	if err := json.Unmarshal(first.Body.Bytes(), &a); err != nil {
		t.Fatalf("failed to decode first response: %v", err)
	}
	if err := json.Unmarshal(second.Body.Bytes(), &b); err != nil {
		t.Fatalf("failed to decode second response: %v", err)
	}
	if a.Assumptions != b.Assumptions {
		t.Error("repeated simulation of the same property returned different assumptions")
	}
}

func TestHandleSimulateWarnsOnImplausibleProperty(t *testing.T) {
	handler := testHandler()

	rec := postJSON(t, handler, "/api/simulate", propertyPayload{
		Address:   "",
		Bedrooms:  3,
		Bathrooms: 2,
		YearBuilt: 1995,
	})

	var payload simulateResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(payload.Warnings) == 0 {
		t.Error("expected a warning for the empty address")
	}
}

func TestHandleProforma(t *testing.T) {
	handler := testHandler()

	rec := postJSON(t, handler, "/api/proforma", testProformaRequest())
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, expected %d: %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	var payload proformaResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if payload.Cached {
		t.Error("first computation should not be served from cache")
	}
	if payload.Result.Rental == nil {
		t.Fatal("rental variant missing from response")
	}
	if math.Abs(payload.Result.Rental.EffectiveGrossIncome-34200) > 1e-6 {
		t.Errorf("EffectiveGrossIncome = %v, expected 34200", payload.Result.Rental.EffectiveGrossIncome)
	}
}

func TestHandleProformaCacheHit(t *testing.T) {
	handler := testHandler()
	request := testProformaRequest()

	first := postJSON(t, handler, "/api/proforma", request)
	second := postJSON(t, handler, "/api/proforma", request)

	var a, b proformaResponse
	if err := json.Unmarshal(first.Body.Bytes(), &a); err != nil {
		t.Fatalf("failed to decode first response: %v", err)
	}
	if err := json.Unmarshal(second.Body.Bytes(), &b); err != nil {
		t.Fatalf("failed to decode second response: %v", err)
	}

	if a.Cached {
		t.Error("first request should miss the cache")
	}
	if !b.Cached {
		t.Error("second identical request should hit the cache")
	}
	if !bytes.Equal(mustMarshal(t, a.Result), mustMarshal(t, b.Result)) {
		t.Error("cached result differs from computed result")
	}
}

func TestHandleProformaUnknownScenario(t *testing.T) {
	handler := testHandler()
	request := testProformaRequest()
	request.Scenario = "flip"

	rec := postJSON(t, handler, "/api/proforma", request)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, expected %d", rec.Code, http.StatusBadRequest)
	}
}

func TestHandleProformaDegenerateInput(t *testing.T) {
	// Degenerate input is not an error; the non-finite figures come back as
	// zeroes at the response boundary.
	handler := testHandler()

	rec := postJSON(t, handler, "/api/proforma", proformaRequest{
		Scenario: proforma.ScenarioRental,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, expected %d: %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	var payload proformaResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if payload.Result.Rental.CapRate != 0 {
		t.Errorf("CapRate = %v, expected 0 fallback", payload.Result.Rental.CapRate)
	}
	if len(payload.Warnings) == 0 {
		t.Error("expected warnings for degenerate assumptions")
	}
}

func TestHandleProformaFractionWarnings(t *testing.T) {
	handler := testHandler()
	request := testProformaRequest()
	request.Assumptions.InterestRate = 6.5

	rec := postJSON(t, handler, "/api/proforma", request)
	var payload proformaResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	found := false
	for _, warning := range payload.Warnings {
		if strings.Contains(warning, "interestRate") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected an interestRate fraction warning, got %v", payload.Warnings)
	}
}

func TestHandleAnalyze(t *testing.T) {
	handler := testHandler()

	rec := postJSON(t, handler, "/api/analyze", analyzeRequest{
		Property: propertyPayload{Address: "123 Main St", Bedrooms: 3, Bathrooms: 2, YearBuilt: 1995},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, expected %d: %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	var payload analyzeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if len(payload.Results) != 3 {
		t.Fatalf("got %d results, expected all 3 scenarios by default", len(payload.Results))
	}
	seen := make(map[proforma.Scenario]bool)
	for _, result := range payload.Results {
		seen[result.Scenario] = true
	}
	for _, scenario := range []proforma.Scenario{proforma.ScenarioRental, proforma.ScenarioAirbnb, proforma.ScenarioOwner} {
		if !seen[scenario] {
			t.Errorf("missing scenario %s in results", scenario)
		}
	}
}

func TestHandleAnalyzeScenarioSubset(t *testing.T) {
	handler := testHandler()

	rec := postJSON(t, handler, "/api/analyze", analyzeRequest{
		Property:  propertyPayload{Address: "123 Main St", Bedrooms: 3, Bathrooms: 2, YearBuilt: 1995},
		Scenarios: []proforma.Scenario{proforma.ScenarioOwner},
	})

	var payload analyzeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(payload.Results) != 1 || payload.Results[0].Scenario != proforma.ScenarioOwner {
		t.Errorf("expected exactly the owner scenario, got %+v", payload.Results)
	}
	if payload.Results[0].Owner == nil {
		t.Error("owner variant missing")
	}
}

func TestHandleAnalyzeUnknownScenario(t *testing.T) {
	handler := testHandler()

	rec := postJSON(t, handler, "/api/analyze", analyzeRequest{
		Property:  propertyPayload{Address: "123 Main St", Bedrooms: 3, Bathrooms: 2, YearBuilt: 1995},
		Scenarios: []proforma.Scenario{"flip"},
	})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, expected %d", rec.Code, http.StatusBadRequest)
	}
}

func TestHandleBodyTooLarge(t *testing.T) {
	handler := NewHandler(zap.NewNop(), 64, "test", cache.NewMemoryStore())

	oversized := proformaRequest{
		Assumptions: proforma.AssumptionSet{PurchasePrice: 500000},
		Scenario:    proforma.ScenarioRental,
	}
	rec := postJSON(t, handler, "/api/proforma", oversized)
	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("status = %d, expected %d", rec.Code, http.StatusRequestEntityTooLarge)
	}
}

func TestHandleMalformedJSON(t *testing.T) {
	handler := testHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/proforma", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, expected %d", rec.Code, http.StatusBadRequest)
	}
}

func mustMarshal(t *testing.T, v interface{}) []byte {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("failed to marshal: %v", err)
	}
	return data
}
