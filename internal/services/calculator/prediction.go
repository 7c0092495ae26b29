package calculator

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var (
	ErrInvalidHorizon = errors.New("horizon must be between 1 and 10 years")
)

// defaultGrowthRate annual price growth (%) assumed for communities without
// published figures.
const defaultGrowthRate = 4.5

// offPlanUplift extra annual growth (%) assumed while a project is under
// construction.
const offPlanUplift = 1.5

// growthRates observed annual price growth (%) by community.
var growthRates = map[string]float64{
	"palm jumeirah":           6.5,
	"downtown dubai":          5.0,
	"dubai marina":            4.8,
	"business bay":            5.2,
	"jumeirah village circle": 6.0,
	"dubai hills estate":      5.5,
	"arabian ranches":         4.2,
	"dubai creek harbour":     6.2,
}

// PredictionInput parameters of a price projection.
type PredictionInput struct {
	CurrentPrice int64
	Community    string
	// OffPlan applies the construction-phase uplift.
	OffPlan bool
	// HorizonYears is the projection length, 1..10.
	HorizonYears int
}

// PredictionResult compound-growth price projection.
type PredictionResult struct {
	AnnualGrowthPct float64
	ProjectedPrice  float64
	TotalGrowthPct  float64
	// YearlyPrices is the projected value at the end of each year.
	YearlyPrices []float64
}

// PredictPrice projects a property's value with compound annual growth.
// This is a marketing heuristic, not a valuation: it is deterministic and
// driven entirely by the published rate table.
func PredictPrice(in PredictionInput) (PredictionResult, error) {
	const op = "calculator.PredictPrice"

	if in.CurrentPrice <= 0 {
		return PredictionResult{}, fmt.Errorf("%s: %w", op, ErrInvalidPrice)
	}
	if in.HorizonYears < 1 || in.HorizonYears > 10 {
		return PredictionResult{}, fmt.Errorf("%s: %w", op, ErrInvalidHorizon)
	}

	rate, ok := growthRates[strings.ToLower(strings.TrimSpace(in.Community))]
	if !ok {
		rate = defaultGrowthRate
	}
	if in.OffPlan {
		rate += offPlanUplift
	}

	price := float64(in.CurrentPrice)
	yearly := make([]float64, 0, in.HorizonYears)
	for y := 1; y <= in.HorizonYears; y++ {
		yearly = append(yearly, price*math.Pow(1+rate/100, float64(y)))
	}
	projected := yearly[len(yearly)-1]

	return PredictionResult{
		AnnualGrowthPct: rate,
		ProjectedPrice:  projected,
		TotalGrowthPct:  (projected - price) / price * 100,
		YearlyPrices:    yearly,
	}, nil
}
