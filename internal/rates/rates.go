// Package rates defines the static market rate tables: base unit land rates
// grouped into market-tier clusters, plus geographic coordinates per location.
// The tables are built once at startup and are read-only afterwards.
package rates

import (
	"sort"

	"github.com/cyberweblabs/propdata/pkg/constants"
)

// Coordinates is a latitude/longitude pair for a location.
type Coordinates struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
}

// clusterOrder fixes the tier presentation order from most to least expensive.
var clusterOrder = []string{
	"Elite / Premium",
	"Upper Mid-Range",
	"Mid-Range",
	"Affordable",
}

var marketClusters = map[string]map[string]float64{
	"Elite / Premium": {
		"DHA Phase 8": 190000, "DHA Phase 6": 165000, "DHA Phase 5": 160000, "DHA Phase 2": 145000,
		"Clifton Block 2": 170000, "Clifton Block 5": 165000, "KDA Scheme 1": 150000,
		"Navy Housing (Karsaz)": 155000, "Askari 4": 125000, "Askari 5": 120000,
		"PECHS Block 2": 130000, "PECHS Block 6": 140000,
	},
	"Upper Mid-Range": {
		"Bahadurabad": 110000, "Mohammad Ali Society": 115000, "Al-Hilal Society": 105000,
		"Gulshan Block 13D": 95000, "Gulshan Block 10": 90000, "North Nazimabad (Hyderi)": 100000,
		"North Nazimabad Block H": 95000, "Garden West": 95000, "Federal B Area": 90000,
	},
	"Mid-Range": {
		"Gulistan-e-Jauhar Blk 1": 80000, "Gulistan-e-Jauhar Blk 15": 75000,
		"Scheme 33 (Saadi Town)": 65000, "Scheme 33 (Metrovil)": 60000,
		"Bahria Town (Precinct 1)": 110000, "Bahria Town (Precinct 10)": 85000,
		"Malir Cantt": 95000, "Bufferzone": 70000, "North Karachi": 60000,
	},
	"Affordable": {
		"New Karachi": 45000, "Surjani Town": 35000, "Korangi Crossing": 55000,
		"Korangi Industrial": 60000, "Orangi Town": 30000, "Lyari": 35000,
		"Taiser Town": 25000, "Baldia Town": 30000,
	},
}

// areaCoordinates may cover fewer locations than the rate tables; absence is
// a handled state, not an error.
var areaCoordinates = map[string]Coordinates{
	"DHA Phase 8":              {24.7933, 67.0654},
	"DHA Phase 6":              {24.8066, 67.0555},
	"DHA Phase 5":              {24.8150, 67.0450},
	"DHA Phase 2":              {24.8300, 67.0700},
	"Clifton Block 2":          {24.8214, 67.0312},
	"Clifton Block 5":          {24.8250, 67.0350},
	"KDA Scheme 1":             {24.8615, 67.0944},
	"Navy Housing (Karsaz)":    {24.8766, 67.0940},
	"Askari 4":                 {24.9150, 67.1250},
	"Askari 5":                 {24.9012, 67.1156},
	"PECHS Block 2":            {24.8650, 67.0560},
	"PECHS Block 6":            {24.8590, 67.0680},
	"Bahadurabad":              {24.8825, 67.0694},
	"Mohammad Ali Society":     {24.8760, 67.0850},
	"Al-Hilal Society":         {24.8850, 67.0750},
	"Gulshan Block 13D":        {24.9180, 67.0970},
	"Gulshan Block 10":         {24.9300, 67.1050},
	"North Nazimabad (Hyderi)": {24.9380, 67.0450},
	"North Nazimabad Block H":  {24.9450, 67.0400},
	"Garden West":              {24.8750, 67.0250},
	"Federal B Area":           {24.9450, 67.0750},
	"Gulistan-e-Jauhar Blk 1":  {24.9250, 67.1350},
	"Gulistan-e-Jauhar Blk 15": {24.9150, 67.1450},
	"Scheme 33 (Saadi Town)":   {24.9850, 67.1650},
	"Scheme 33 (Metrovil)":     {24.9750, 67.1150},
	"Bahria Town (Precinct 1)": {25.0400, 67.3000},
	"Bahria Town (Precinct 10)": {25.0500, 67.3200},
	"Malir Cantt":              {24.9500, 67.1900},
	"Bufferzone":               {24.9650, 67.0650},
	"North Karachi":            {24.9850, 67.0550},
	"New Karachi":              {24.9950, 67.0650},
	"Surjani Town":             {25.0250, 67.0550},
	"Korangi Crossing":         {24.8350, 67.1350},
	"Korangi Industrial":       {24.8250, 67.1250},
	"Orangi Town":              {24.9450, 66.9950},
	"Lyari":                    {24.8650, 66.9950},
	"Taiser Town":              {25.0550, 67.0850},
	"Baldia Town":              {24.9100, 66.9700},
}

// Table holds the flattened lookup maps built from the cluster tables.
type Table struct {
	baseRates   map[string]float64
	clusters    map[string]string
	coordinates map[string]Coordinates
}

// NewTable builds the flat location lookups from the static cluster tables.
func NewTable() *Table {
	t := &Table{
		baseRates:   make(map[string]float64),
		clusters:    make(map[string]string),
		coordinates: areaCoordinates,
	}
	for cluster, locations := range marketClusters {
		for location, rate := range locations {
			t.baseRates[location] = rate
			t.clusters[location] = cluster
		}
	}
	return t
}

// BaseRate returns the base land rate for a location in PKR per square yard.
// Unknown locations fall back to the default rate; the bool reports whether
// the location was found in the tables.
func (t *Table) BaseRate(location string) (float64, bool) {
	if rate, ok := t.baseRates[location]; ok {
		return rate, true
	}
	return constants.DefaultBaseRate, false
}

// ClusterName returns the market tier a location belongs to, or an empty
// string for unknown locations.
func (t *Table) ClusterName(location string) string {
	return t.clusters[location]
}

// Coordinates returns the lat/lon pair for a location. The coordinate table
// may cover fewer locations than the rate tables.
func (t *Table) Coordinates(location string) (Coordinates, bool) {
	coords, ok := t.coordinates[location]
	return coords, ok
}

// ClusterNames returns the market tiers from most to least expensive.
func (t *Table) ClusterNames() []string {
	names := make([]string, len(clusterOrder))
	copy(names, clusterOrder)
	return names
}

// ClusterLocations returns the locations in a cluster, sorted by name.
func (t *Table) ClusterLocations(cluster string) []string {
	rates, ok := marketClusters[cluster]
	if !ok {
		return nil
	}
	locations := make([]string, 0, len(rates))
	for location := range rates {
		locations = append(locations, location)
	}
	sort.Strings(locations)
	return locations
}

// Locations returns every known location, sorted by name.
func (t *Table) Locations() []string {
	locations := make([]string, 0, len(t.baseRates))
	for location := range t.baseRates {
		locations = append(locations, location)
	}
	sort.Strings(locations)
	return locations
}
