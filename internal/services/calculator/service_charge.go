package calculator

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidArea = errors.New("area must be positive")
)

// DefaultServiceChargeRate AED per sqft per year for communities not in the
// rate table.
const DefaultServiceChargeRate = 18.0

// serviceChargeRates AED/sqft/yr by community, as published by the owners
// associations.
var serviceChargeRates = map[string]float64{
	"palm jumeirah":           28.5,
	"downtown dubai":          24.0,
	"dubai marina":            20.5,
	"business bay":            19.0,
	"jumeirah village circle": 12.5,
	"dubai hills estate":      15.0,
	"arabian ranches":         10.5,
	"dubai creek harbour":     17.5,
}

// ServiceChargeInput parameters of a service-charge quote.
type ServiceChargeInput struct {
	Community string
	AreaSqft  float64
}

// ServiceChargeResult annual owners-association fee quote.
type ServiceChargeResult struct {
	RatePerSqft   float64
	AnnualCharge  float64
	MonthlyCharge float64
	// KnownCommunity is false when the default rate was applied.
	KnownCommunity bool
}

// ServiceCharge estimates the annual owners-association fee for a unit.
// Unknown communities fall back to the default rate rather than failing.
func ServiceCharge(in ServiceChargeInput) (ServiceChargeResult, error) {
	const op = "calculator.ServiceCharge"

	if in.AreaSqft <= 0 {
		return ServiceChargeResult{}, fmt.Errorf("%s: %w", op, ErrInvalidArea)
	}

	key := strings.ToLower(strings.TrimSpace(in.Community))
	rate, known := serviceChargeRates[key]
	if !known {
		rate = DefaultServiceChargeRate
	}

	annual := rate * in.AreaSqft
	return ServiceChargeResult{
		RatePerSqft:    rate,
		AnnualCharge:   annual,
		MonthlyCharge:  annual / 12,
		KnownCommunity: known,
	}, nil
}
