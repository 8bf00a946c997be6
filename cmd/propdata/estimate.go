package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/cyberweblabs/propdata/internal/forecast"
	"github.com/cyberweblabs/propdata/internal/rates"
	"github.com/cyberweblabs/propdata/internal/valuation"
	"github.com/cyberweblabs/propdata/pkg/constants"
	"github.com/cyberweblabs/propdata/pkg/output"
	"github.com/cyberweblabs/propdata/pkg/report"
	"github.com/cyberweblabs/propdata/pkg/validation"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// estimateCommand runs one valuation from flags and prints the breakdown
// with a market projection, optionally writing the PDF report.
func estimateCommand() *cobra.Command {
	var (
		req          valuation.Request
		propertyType string
		months       int
		outputFormat string
		seed         int64
		pdfPath      string
	)

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate the market value of a property",
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, logger, err := setup()
			if err != nil {
				return err
			}
			defer func() {
				_ = logger.Sync()
			}()

			req.Type = valuation.PropertyType(propertyType)

			// Determine output format (CLI override takes precedence over config)
			if outputFormat == "" {
				outputFormat = conf.Output.Format
			}
			if outputFormat == "" {
				outputFormat = constants.OutputFormatPretty
			}
			if err := validation.ValidateOutputFormat(outputFormat); err != nil {
				return err
			}

			if err := validation.ValidateRequest(req, &conf.Market); err != nil {
				return err
			}

			table := rates.NewTable()
			engine := valuation.NewEngine(logger, &conf.Market, table)
			forecaster := forecast.NewGenerator(logger)
			if cmd.Flags().Changed("seed") {
				rng := rand.New(rand.NewSource(seed))
				engine = valuation.NewEngineWithSource(logger, &conf.Market, table, rng, time.Now)
				forecaster = forecast.NewGeneratorWithSource(logger, rng, time.Now)
			}

			result, err := engine.Estimate(req)
			if err != nil {
				logger.Fatal("failed to compute estimate",
					zap.String("op", "main.estimate"),
					zap.Error(err),
				)
			}

			points := forecaster.Project(result.Price, months)

			switch outputFormat {
			case constants.OutputFormatPretty:
				output.PrettyFormat(req, result, points)
			case constants.OutputFormatCSV:
				output.CsvFormat(points)
			}

			if pdfPath != "" {
				builder := report.NewBuilder(logger)
				pdfBytes, err := builder.Build(req, result, time.Now())
				if err != nil {
					logger.Fatal("failed to build report",
						zap.String("op", "main.estimate"),
						zap.Error(err),
					)
				}
				if err := os.WriteFile(pdfPath, pdfBytes, 0644); err != nil {
					logger.Fatal("failed to write report",
						zap.String("op", "main.estimate"),
						zap.String("path", pdfPath),
						zap.Error(err),
					)
				}
				fmt.Printf("\nReport written to %s\n", pdfPath)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&req.Location, "location", "", "area / sector name")
	cmd.Flags().IntVar(&req.Area, "area", 240, "plot area in square yards")
	cmd.Flags().StringVar(&propertyType, "type", string(valuation.Residential), "property type (Residential or Commercial)")
	cmd.Flags().StringVar(&req.RoadWidth, "road", "Standard Street (30-40ft)", "road width category")
	cmd.Flags().IntVar(&req.YearBuilt, "year", 2020, "construction year")
	cmd.Flags().IntVar(&req.Bedrooms, "bedrooms", 3, "bedroom count (residential only)")
	cmd.Flags().StringVar(&req.Quality, "quality", "B (Standard)", "construction quality tier (residential only)")
	cmd.Flags().BoolVar(&req.Corner, "corner", false, "corner plot")
	cmd.Flags().BoolVar(&req.ParkFacing, "park", false, "park-facing plot")
	cmd.Flags().BoolVar(&req.WestOpen, "west", false, "west-open plot")
	cmd.Flags().IntVar(&months, "months", constants.DefaultForecastMonths, "forecast length in months")
	cmd.Flags().StringVar(&outputFormat, "output-format", "", "type of output override: pretty, csv")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed for reproducible output")
	cmd.Flags().StringVar(&pdfPath, "pdf", "", "write the PDF report to this path")
	_ = cmd.MarkFlagRequired("location")

	return cmd
}
