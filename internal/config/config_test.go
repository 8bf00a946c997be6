package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultMarketTables(t *testing.T) {
	market := DefaultMarket()

	if factor := market.QualityFactor("A+ (Luxury)"); factor != 1.60 {
		t.Errorf("QualityFactor(A+) = %.2f, expected 1.60", factor)
	}
	if factor := market.QualityFactor("C (Basic)"); factor != 0.85 {
		t.Errorf("QualityFactor(C) = %.2f, expected 0.85", factor)
	}
	if factor := market.RoadFactor("Main Boulevard (100ft+)"); factor != 1.15 {
		t.Errorf("RoadFactor(Main Boulevard) = %.2f, expected 1.15", factor)
	}
	if factor := market.RoadFactor("Narrow Lane (<30ft)"); factor != 0.95 {
		t.Errorf("RoadFactor(Narrow Lane) = %.2f, expected 0.95", factor)
	}
	if market.CommercialMultiplier != 1.60 {
		t.Errorf("CommercialMultiplier = %.2f, expected 1.60", market.CommercialMultiplier)
	}
	if market.RoomPremium != 1200000 {
		t.Errorf("RoomPremium = %.0f, expected 1200000", market.RoomPremium)
	}
}

func TestLookupsAreTotal(t *testing.T) {
	market := DefaultMarket()

	// Unknown keys degrade to the neutral factor; no error path exists.
	if factor := market.QualityFactor("S (Imaginary)"); factor != 1.0 {
		t.Errorf("QualityFactor(unknown) = %.2f, expected 1.00", factor)
	}
	if factor := market.RoadFactor("Gravel Path"); factor != 1.0 {
		t.Errorf("RoadFactor(unknown) = %.2f, expected 1.00", factor)
	}
}

func TestLabelOrdering(t *testing.T) {
	market := DefaultMarket()

	tiers := market.QualityTiers()
	if len(tiers) != 4 || tiers[0] != "A+ (Luxury)" || tiers[3] != "C (Basic)" {
		t.Errorf("QualityTiers() = %v, expected best-to-basic order", tiers)
	}

	roads := market.RoadCategories()
	if len(roads) != 4 || roads[0] != "Main Boulevard (100ft+)" || roads[3] != "Narrow Lane (<30ft)" {
		t.Errorf("RoadCategories() = %v, expected widest-to-narrowest order", roads)
	}
}

func TestLoadConfigurationMissingDefaultFile(t *testing.T) {
	conf, err := LoadConfiguration("config.yaml")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	if conf.Market.RoomPremium != 1200000 {
		t.Errorf("RoomPremium = %.0f, expected built-in default", conf.Market.RoomPremium)
	}
}

func TestLoadConfigurationExplicitMissingFile(t *testing.T) {
	if _, err := LoadConfiguration(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("LoadConfiguration() expected error for explicit missing file")
	}
}

func TestLoadConfigurationOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
market:
  commercialMultiplier: 1.75
  roomPremium: 1500000
logging:
  level: debug
  format: console
output:
  format: csv
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	conf, err := LoadConfiguration(path)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	if conf.Market.CommercialMultiplier != 1.75 {
		t.Errorf("CommercialMultiplier = %.2f, expected 1.75", conf.Market.CommercialMultiplier)
	}
	if conf.Market.RoomPremium != 1500000 {
		t.Errorf("RoomPremium = %.0f, expected 1500000", conf.Market.RoomPremium)
	}
	// Tables the override file left unset are backfilled from the defaults.
	if factor := conf.Market.QualityFactor("A (Premium)"); factor != 1.30 {
		t.Errorf("QualityFactor(A) = %.2f, expected backfilled 1.30", factor)
	}
	if conf.Logging.Level != "debug" || conf.Logging.Format != "console" {
		t.Errorf("Logging = %+v, expected debug/console", conf.Logging)
	}
	if conf.Output.Format != "csv" {
		t.Errorf("Output.Format = %s, expected csv", conf.Output.Format)
	}
}
