// Package report renders the one-page PDF valuation summary offered for
// download after an estimate.
package report

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/cyberweblabs/propdata/internal/valuation"
	"github.com/cyberweblabs/propdata/pkg/constants"
	"github.com/cyberweblabs/propdata/pkg/format"
	"github.com/cyberweblabs/propdata/pkg/mathutil"
	"github.com/jung-kurt/gofpdf"
	"go.uber.org/zap"
)

// DefaultLogoPath is the branding image embedded in the report header when
// present on disk.
const DefaultLogoPath = "logo_black.png"

const disclaimer = "Disclaimer: This is an algorithmic estimate for informational purposes only."

// Builder renders valuation reports.
type Builder struct {
	logger   *zap.Logger
	logoPath string
}

// NewBuilder creates a report builder using the default logo path. If logger
// is nil, it will use a no-op logger to prevent panics.
func NewBuilder(logger *zap.Logger) *Builder {
	return NewBuilderWithLogo(logger, DefaultLogoPath)
}

// NewBuilderWithLogo creates a report builder with a custom branding image
// path. A missing image is tolerated silently at build time.
func NewBuilderWithLogo(logger *zap.Logger, logoPath string) *Builder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Builder{logger: logger, logoPath: logoPath}
}

// Build renders the report for one estimate and returns the PDF bytes. The
// document contains, in order: date stamp, location and property type, the
// headline price, plot specs, residential-only structure details, the
// financial breakdown, and the disclaimer.
func (b *Builder) Build(req valuation.Request, res valuation.Result, now time.Time) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")

	pdf.SetHeaderFunc(func() {
		if _, err := os.Stat(b.logoPath); err == nil {
			pdf.ImageOptions(b.logoPath, 10, 8, 25, 0, false, gofpdf.ImageOptions{ReadDpi: true}, 0, "")
		}
		pdf.SetFont("Arial", "B", 14)
		pdf.Cell(80, 10, "")
		pdf.CellFormat(30, 10, "PropData - Valuation Report", "", 0, "C", false, 0, "")
		pdf.Ln(20)
	})
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Arial", "I", 8)
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d | CyberWeb Labs PropData", pdf.PageNo()), "", 0, "C", false, 0, "")
	})

	pdf.AddPage()
	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(0, 8, fmt.Sprintf("Date: %s", now.Format(constants.ReportDateLayout)), "", 1, "", false, 0, "")
	pdf.CellFormat(0, 8, fmt.Sprintf("Location: %s (%s)", req.Location, req.Type), "", 1, "", false, 0, "")
	pdf.Ln(6)

	pdf.SetFillColor(230, 230, 230)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 10, fmt.Sprintf("Estimated Value: %s", format.Currency(res.Price)), "", 1, "", true, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Arial", "", 11)
	pdf.MultiCell(0, 7, fmt.Sprintf("Plot Area: %d sq. yards\nRoad Category: %s", req.Area, req.RoadWidth), "", "", false)
	if req.Type == valuation.Residential {
		pdf.MultiCell(0, 7, fmt.Sprintf("Bedrooms: %d\nQuality: %s", req.Bedrooms, req.Quality), "", "", false)
	}
	pdf.Ln(6)

	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(0, 8, "Financial Breakdown", "", 1, "", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	b.breakdownRow(pdf, "Land Value:", res.Breakdown.Land)
	if req.Type == valuation.Residential {
		b.breakdownRow(pdf, "Structure Value:", res.Breakdown.Structure)
	}
	if mathutil.IsPositive(res.Breakdown.Features) {
		b.breakdownRow(pdf, "Feature Premiums:", res.Breakdown.Features)
	}
	pdf.Ln(8)

	pdf.SetFont("Arial", "I", 9)
	pdf.MultiCell(0, 6, disclaimer, "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		b.logger.Error("failed to render report",
			zap.String("op", "report.Build"),
			zap.Error(err),
		)
		return nil, fmt.Errorf("failed to render report: %w", err)
	}
	return buf.Bytes(), nil
}

func (b *Builder) breakdownRow(pdf *gofpdf.Fpdf, label string, amount float64) {
	pdf.CellFormat(120, 7, label, "", 0, "", false, 0, "")
	pdf.CellFormat(0, 7, format.Currency(amount), "", 1, "", false, 0, "")
}
