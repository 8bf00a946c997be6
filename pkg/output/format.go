// Package output provides utilities for formatting and displaying estimate
// and forecast results on the command line.
package output

import (
	"fmt"

	"github.com/cyberweblabs/propdata/internal/forecast"
	"github.com/cyberweblabs/propdata/internal/valuation"
	"github.com/cyberweblabs/propdata/pkg/constants"
	"github.com/cyberweblabs/propdata/pkg/format"
	"github.com/cyberweblabs/propdata/pkg/mathutil"
)

// PrettyFormat outputs a human-readable rather than machine-readable summary
// of an estimate and its forecast.
func PrettyFormat(req valuation.Request, res valuation.Result, points []forecast.Point) {
	crore, lakh := format.CroreLakh(res.Price)
	fmt.Printf("--- Valuation for %s (%s) ---\n", req.Location, req.Type)
	fmt.Printf("Estimated Market Value: %s\n", format.Currency(res.Price))
	fmt.Printf("%.2f Crore  |  %.0f Lakh\n\n", crore, lakh)

	bd := res.Breakdown
	fmt.Printf("Base Land Rate:   %s / sqyd\n", format.Currency(bd.BaseRate))
	fmt.Printf("Land Value:       %s\n", format.Currency(bd.Land))
	if req.Type == valuation.Residential {
		fmt.Printf("Structure Value:  %s (depreciation factor %.2f)\n",
			format.Currency(bd.Structure), bd.DepreciationFactor)
	}
	if mathutil.IsPositive(bd.Features) {
		fmt.Printf("Feature Premiums: %s\n", format.Currency(bd.Features))
	}
	fmt.Printf("Subtotal:         %s\n", format.Currency(bd.Subtotal))

	if len(points) > 0 {
		fmt.Printf("\nDate       | Projected Value\n")
		fmt.Printf("____       | _______________\n")
		for _, point := range points {
			fmt.Printf("%s | %s\n", point.Date.Format(constants.DateTimeLayout), format.Currency(point.Value))
		}
	}
}

// CsvFormat outputs the forecast series in comma-separated value format.
func CsvFormat(points []forecast.Point) {
	fmt.Printf("\"date\",\"value\"\n")
	for _, point := range points {
		fmt.Printf("\"%s\",\"%.2f\"\n", point.Date.Format(constants.DateTimeLayout), point.Value)
	}
}
