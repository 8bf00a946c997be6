package validation

import (
	"testing"

	"github.com/cyberweblabs/propdata/internal/config"
	"github.com/cyberweblabs/propdata/internal/valuation"
)

func validRequest() valuation.Request {
	return valuation.Request{
		Location:  "DHA Phase 8",
		Area:      240,
		Type:      valuation.Residential,
		RoadWidth: "Standard Street (30-40ft)",
		YearBuilt: 2020,
		Bedrooms:  3,
		Quality:   "B (Standard)",
	}
}

func TestValidateRequest(t *testing.T) {
	market := config.DefaultMarket()

	tests := []struct {
		name    string
		mutate  func(*valuation.Request)
		wantErr bool
	}{
		{name: "valid residential", mutate: func(r *valuation.Request) {}, wantErr: false},
		{name: "valid commercial ignores structure fields", mutate: func(r *valuation.Request) {
			r.Type = valuation.Commercial
			r.Bedrooms = 0
			r.Quality = ""
		}, wantErr: false},
		{name: "area at lower bound", mutate: func(r *valuation.Request) { r.Area = 50 }, wantErr: false},
		{name: "area at upper bound", mutate: func(r *valuation.Request) { r.Area = 4000 }, wantErr: false},
		{name: "missing location", mutate: func(r *valuation.Request) { r.Location = "" }, wantErr: true},
		{name: "area below range", mutate: func(r *valuation.Request) { r.Area = 40 }, wantErr: true},
		{name: "area above range", mutate: func(r *valuation.Request) { r.Area = 4010 }, wantErr: true},
		{name: "area off step", mutate: func(r *valuation.Request) { r.Area = 245 }, wantErr: true},
		{name: "bad property type", mutate: func(r *valuation.Request) { r.Type = "Industrial" }, wantErr: true},
		{name: "unknown road category", mutate: func(r *valuation.Request) { r.RoadWidth = "Motorway" }, wantErr: true},
		{name: "year below range", mutate: func(r *valuation.Request) { r.YearBuilt = 1949 }, wantErr: true},
		{name: "year above range", mutate: func(r *valuation.Request) { r.YearBuilt = 2026 }, wantErr: true},
		{name: "bedrooms below range", mutate: func(r *valuation.Request) { r.Bedrooms = 0 }, wantErr: true},
		{name: "bedrooms above range", mutate: func(r *valuation.Request) { r.Bedrooms = 13 }, wantErr: true},
		{name: "unknown quality tier", mutate: func(r *valuation.Request) { r.Quality = "D (Derelict)" }, wantErr: true},
		{name: "commercial skips bedroom check", mutate: func(r *valuation.Request) {
			r.Type = valuation.Commercial
			r.Bedrooms = 99
		}, wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)
			err := ValidateRequest(req, &market)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRequest() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateOutputFormat(t *testing.T) {
	if err := ValidateOutputFormat("pretty"); err != nil {
		t.Errorf("ValidateOutputFormat(pretty) error = %v", err)
	}
	if err := ValidateOutputFormat("csv"); err != nil {
		t.Errorf("ValidateOutputFormat(csv) error = %v", err)
	}
	if err := ValidateOutputFormat("xml"); err == nil {
		t.Error("ValidateOutputFormat(xml) expected error")
	}
}
