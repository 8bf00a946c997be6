// Package validation provides the boundary checks applied to user input
// before it reaches the valuation engine. The engine itself performs no
// range validation.
package validation

import (
	"fmt"

	"github.com/cyberweblabs/propdata/internal/config"
	"github.com/cyberweblabs/propdata/internal/valuation"
	"github.com/cyberweblabs/propdata/pkg/constants"
)

// Input range constraints.
const (
	MinArea     = 50
	MaxArea     = 4000
	AreaStep    = 10
	MinYear     = 1950
	MaxYear     = 2025
	MinBedrooms = 1
	MaxBedrooms = 12
)

// ValidateRequest checks the range and enumeration constraints on a
// valuation request. Structure fields are only checked for residential
// properties.
func ValidateRequest(req valuation.Request, market *config.Market) error {
	if req.Location == "" {
		return fmt.Errorf("location is required")
	}
	if req.Area < MinArea || req.Area > MaxArea {
		return fmt.Errorf("area must be between %d and %d square yards, got %d", MinArea, MaxArea, req.Area)
	}
	if req.Area%AreaStep != 0 {
		return fmt.Errorf("area must be a multiple of %d square yards, got %d", AreaStep, req.Area)
	}
	if req.Type != valuation.Residential && req.Type != valuation.Commercial {
		return fmt.Errorf("property type must be %s or %s, got %q", valuation.Residential, valuation.Commercial, req.Type)
	}
	if _, ok := market.RoadWidthFactors[req.RoadWidth]; !ok {
		return fmt.Errorf("unknown road width category %q", req.RoadWidth)
	}
	if req.YearBuilt < MinYear || req.YearBuilt > MaxYear {
		return fmt.Errorf("construction year must be between %d and %d, got %d", MinYear, MaxYear, req.YearBuilt)
	}
	if req.Type == valuation.Residential {
		if req.Bedrooms < MinBedrooms || req.Bedrooms > MaxBedrooms {
			return fmt.Errorf("bedrooms must be between %d and %d, got %d", MinBedrooms, MaxBedrooms, req.Bedrooms)
		}
		if _, ok := market.QualityMultipliers[req.Quality]; !ok {
			return fmt.Errorf("unknown quality tier %q", req.Quality)
		}
	}
	return nil
}

// ValidateOutputFormat checks if the output format is one of the supported formats.
func ValidateOutputFormat(format string) error {
	if format != constants.OutputFormatPretty && format != constants.OutputFormatCSV {
		return fmt.Errorf("expected output format of %s or %s, got %s",
			constants.OutputFormatPretty, constants.OutputFormatCSV, format)
	}
	return nil
}
