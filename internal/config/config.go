// Package config defines the data structures related to configuration and
// includes functions for loading and querying the market configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/cyberweblabs/propdata/pkg/constants"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for propdata.
type Configuration struct {
	Market  Market        `yaml:"market,omitempty"`
	Logging LoggingConfig `yaml:"logging,omitempty"`
	Output  OutputConfig  `yaml:"output,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// Market holds the hand-tuned multiplier tables and constants applied by the
// valuation engine. It is constructed once and treated as read-only for the
// lifetime of a valuation request.
type Market struct {
	QualityMultipliers   map[string]float64 `yaml:"qualityMultipliers,omitempty"`
	RoadWidthFactors     map[string]float64 `yaml:"roadWidthFactors,omitempty"`
	CommercialMultiplier float64            `yaml:"commercialMultiplier,omitempty"`
	RoomPremium          float64            `yaml:"roomPremium,omitempty"`
}

// DefaultMarket returns the built-in market configuration.
func DefaultMarket() Market {
	return Market{
		QualityMultipliers: map[string]float64{
			"A+ (Luxury)":  1.60,
			"A (Premium)":  1.30,
			"B (Standard)": 1.00,
			"C (Basic)":    0.85,
		},
		RoadWidthFactors: map[string]float64{
			"Main Boulevard (100ft+)":  1.15,
			"Wide Road (60-80ft)":      1.08,
			"Standard Street (30-40ft)": 1.00,
			"Narrow Lane (<30ft)":      0.95,
		},
		CommercialMultiplier: 1.60,
		RoomPremium:          1200000,
	}
}

// QualityFactor returns the structure multiplier for a construction quality
// tier, defaulting to neutral for unknown tiers. This is a total function;
// no error path exists.
func (m *Market) QualityFactor(tier string) float64 {
	if factor, ok := m.QualityMultipliers[tier]; ok {
		return factor
	}
	return constants.NeutralFactor
}

// RoadFactor returns the land multiplier for a road-width category,
// defaulting to neutral for unknown categories.
func (m *Market) RoadFactor(category string) float64 {
	if factor, ok := m.RoadWidthFactors[category]; ok {
		return factor
	}
	return constants.NeutralFactor
}

// QualityTiers returns the configured quality tiers ordered from best to
// most basic per the built-in table, followed by any custom tiers.
func (m *Market) QualityTiers() []string {
	return orderedKeys(m.QualityMultipliers, []string{
		"A+ (Luxury)", "A (Premium)", "B (Standard)", "C (Basic)",
	})
}

// RoadCategories returns the configured road-width categories from widest to
// narrowest per the built-in table, followed by any custom categories.
func (m *Market) RoadCategories() []string {
	return orderedKeys(m.RoadWidthFactors, []string{
		"Main Boulevard (100ft+)", "Wide Road (60-80ft)",
		"Standard Street (30-40ft)", "Narrow Lane (<30ft)",
	})
}

func orderedKeys(table map[string]float64, preferred []string) []string {
	keys := make([]string, 0, len(table))
	seen := make(map[string]struct{}, len(table))
	for _, key := range preferred {
		if _, ok := table[key]; ok {
			keys = append(keys, key)
			seen[key] = struct{}{}
		}
	}
	for key := range table {
		if _, ok := seen[key]; !ok {
			keys = append(keys, key)
		}
	}
	return keys
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there, merged over the built-in defaults. A missing file is
// not an error; the defaults are returned unchanged.
func LoadConfiguration(configPath string) (*Configuration, error) {
	configuration := Configuration{Market: DefaultMarket()}

	if configPath == "" {
		return &configuration, nil
	}
	if _, err := os.Stat(configPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) && configPath == constants.DefaultConfigFile {
			return &configuration, nil
		}
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	v := viper.New()
	v.SetConfigFile(configPath)
	v.AutomaticEnv()

	v.SetConfigType("yml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	err := v.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	configuration.Market.applyDefaults()
	return &configuration, nil
}

// applyDefaults backfills any table or constant the override file left unset.
func (m *Market) applyDefaults() {
	defaults := DefaultMarket()
	if len(m.QualityMultipliers) == 0 {
		m.QualityMultipliers = defaults.QualityMultipliers
	}
	if len(m.RoadWidthFactors) == 0 {
		m.RoadWidthFactors = defaults.RoadWidthFactors
	}
	if m.CommercialMultiplier == 0 {
		m.CommercialMultiplier = defaults.CommercialMultiplier
	}
	if m.RoomPremium == 0 {
		m.RoomPremium = defaults.RoomPremium
	}
}
