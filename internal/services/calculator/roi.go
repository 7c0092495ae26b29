package calculator

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidRent = errors.New("annual rent must be positive")
)

// ROIInput parameters of a rental-return quote.
type ROIInput struct {
	// PurchasePrice in AED.
	PurchasePrice int64
	// AnnualRent in AED.
	AnnualRent int64
	// ServiceChargeAnnual in AED (see ServiceCharge).
	ServiceChargeAnnual float64
	// OtherCostsAnnual covers management fees, insurance, maintenance.
	OtherCostsAnnual float64
}

// ROIResult rental-return summary.
type ROIResult struct {
	GrossYieldPct  float64
	NetYieldPct    float64
	AnnualNet      float64
	MonthlyNet     float64
	// PaybackYears is how long net income takes to repay the purchase.
	// Zero when net income is not positive.
	PaybackYears float64
}

// ROI computes gross and net rental yields for a cash purchase.
func ROI(in ROIInput) (ROIResult, error) {
	const op = "calculator.ROI"

	if in.PurchasePrice <= 0 {
		return ROIResult{}, fmt.Errorf("%s: %w", op, ErrInvalidPrice)
	}
	if in.AnnualRent <= 0 {
		return ROIResult{}, fmt.Errorf("%s: %w", op, ErrInvalidRent)
	}

	price := float64(in.PurchasePrice)
	rent := float64(in.AnnualRent)
	net := rent - in.ServiceChargeAnnual - in.OtherCostsAnnual

	res := ROIResult{
		GrossYieldPct: rent / price * 100,
		NetYieldPct:   net / price * 100,
		AnnualNet:     net,
		MonthlyNet:    net / 12,
	}
	if net > 0 {
		res.PaybackYears = price / net
	}
	return res, nil
}
