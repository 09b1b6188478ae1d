package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/iwvelando/property-proforma/internal/proforma"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoadConfiguration(t *testing.T) {
	path := writeConfig(t, `
property:
  address: 123 Main St
  bedrooms: 3
  bathrooms: 2
  yearBuilt: 1995
scenarios:
  - rental
  - owner
profile:
  federalTaxRate: 0.24
  stateTaxRate: 0.05
  opportunityCostRate: 0.07
logging:
  level: debug
  format: console
output:
  format: csv
`)

	conf, err := LoadConfiguration(path)
	if err != nil {
		t.Fatalf("LoadConfiguration failed: %v", err)
	}

	if conf.Property == nil {
		t.Fatal("Property missing")
	}
	if conf.Property.Address != "123 Main St" {
		t.Errorf("Address = %q", conf.Property.Address)
	}
	if conf.Property.Bedrooms != 3 || conf.Property.Bathrooms != 2 || conf.Property.YearBuilt != 1995 {
		t.Errorf("Property attributes = %+v", conf.Property)
	}

	if len(conf.Scenarios) != 2 {
		t.Fatalf("Scenarios = %v", conf.Scenarios)
	}
	scenarios := conf.ScenarioList()
	if scenarios[0] != proforma.ScenarioRental || scenarios[1] != proforma.ScenarioOwner {
		t.Errorf("ScenarioList = %v", scenarios)
	}

	if conf.Profile == nil || conf.Profile.FederalTaxRate != 0.24 {
		t.Errorf("Profile = %+v", conf.Profile)
	}
	if conf.Logging.Level != "debug" || conf.Logging.Format != "console" {
		t.Errorf("Logging = %+v", conf.Logging)
	}
	if conf.Output.Format != "csv" {
		t.Errorf("Output = %+v", conf.Output)
	}
}

func TestLoadConfigurationWithAssumptions(t *testing.T) {
	path := writeConfig(t, `
assumptions:
  purchasePrice: 500000
  downPaymentPercent: 0.20
  interestRate: 0.065
  loanTermYears: 30
  closingCostsPercent: 0.03
  landValuePercent: 0.20
  monthlyRent: 3000
  monthlyHOA: 50
  utilitiesMonthly: 200
`)

	conf, err := LoadConfiguration(path)
	if err != nil {
		t.Fatalf("LoadConfiguration failed: %v", err)
	}

	if conf.Assumptions == nil {
		t.Fatal("Assumptions missing")
	}
	resolved := conf.ResolveAssumptions()
	if resolved.PurchasePrice != 500000 {
		t.Errorf("PurchasePrice = %v", resolved.PurchasePrice)
	}
	if resolved.MonthlyHOA != 50 {
		t.Errorf("MonthlyHOA = %v", resolved.MonthlyHOA)
	}
}

func TestLoadConfigurationMissingFile(t *testing.T) {
	if _, err := LoadConfiguration(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestScenarioListDefaultsToAll(t *testing.T) {
	conf := &Configuration{}
	scenarios := conf.ScenarioList()
	if len(scenarios) != 3 {
		t.Fatalf("ScenarioList = %v, expected all three scenarios", scenarios)
	}
}

func TestResolveDefaults(t *testing.T) {
	conf := &Configuration{}

	assumptions := conf.ResolveAssumptions()
	if assumptions != DefaultAssumptions() {
		t.Error("ResolveAssumptions should fall back to defaults")
	}

	personal := conf.ResolveProfile()
	if personal != DefaultProfile() {
		t.Error("ResolveProfile should fall back to defaults")
	}
}

func TestDefaultAssumptionsInvariants(t *testing.T) {
	assumptions := DefaultAssumptions()

	fractions := []struct {
		name string
		val  float64
	}{
		{"DownPaymentPercent", assumptions.DownPaymentPercent},
		{"InterestRate", assumptions.InterestRate},
		{"ClosingCostsPercent", assumptions.ClosingCostsPercent},
		{"LandValuePercent", assumptions.LandValuePercent},
		{"OccupancyRate", assumptions.OccupancyRate},
		{"PropertyTaxPercent", assumptions.PropertyTaxPercent},
		{"HomeInsurancePercent", assumptions.HomeInsurancePercent},
		{"MaintenancePercent", assumptions.MaintenancePercent},
		{"VacancyPercent", assumptions.VacancyPercent},
		{"ManagementFeePercent", assumptions.ManagementFeePercent},
		{"PlatformFeePercent", assumptions.PlatformFeePercent},
	}
	for _, f := range fractions {
		if f.val < 0 || f.val > 1 {
			t.Errorf("default %s = %v, violates the decimal-fraction invariant", f.name, f.val)
		}
	}

	if assumptions.PurchasePrice <= 0 || assumptions.MonthlyRent <= 0 {
		t.Error("default purchase price and rent should be positive")
	}

	profile := DefaultProfile()
	if profile.FederalTaxRate < 0 || profile.FederalTaxRate > 1 {
		t.Errorf("default FederalTaxRate = %v", profile.FederalTaxRate)
	}
}
