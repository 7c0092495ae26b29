package calculator

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrInvalidPrice       = errors.New("price must be positive")
	ErrInvalidDownPayment = errors.New("down payment must be between 0 and 100 percent")
	ErrInvalidRate        = errors.New("interest rate must not be negative")
	ErrInvalidTerm        = errors.New("term must be between 1 and 30 years")
)

// MortgageInput parameters of a mortgage quote.
type MortgageInput struct {
	// Price is the purchase price in AED.
	Price int64
	// DownPaymentPct is the down payment share, e.g. 20 for 20%.
	DownPaymentPct float64
	// AnnualRatePct is the nominal annual interest rate, e.g. 4.5.
	AnnualRatePct float64
	TermYears     int
}

// MortgageResult amortization summary for the quote.
type MortgageResult struct {
	LoanAmount     float64
	DownPayment    float64
	MonthlyPayment float64
	TotalPayment   float64
	TotalInterest  float64
	// YearlyBalances is the outstanding principal at the end of each year.
	YearlyBalances []float64
}

// Mortgage computes the standard fixed-rate amortization quote.
func Mortgage(in MortgageInput) (MortgageResult, error) {
	const op = "calculator.Mortgage"

	if in.Price <= 0 {
		return MortgageResult{}, fmt.Errorf("%s: %w", op, ErrInvalidPrice)
	}
	if in.DownPaymentPct < 0 || in.DownPaymentPct >= 100 {
		return MortgageResult{}, fmt.Errorf("%s: %w", op, ErrInvalidDownPayment)
	}
	if in.AnnualRatePct < 0 {
		return MortgageResult{}, fmt.Errorf("%s: %w", op, ErrInvalidRate)
	}
	if in.TermYears < 1 || in.TermYears > 30 {
		return MortgageResult{}, fmt.Errorf("%s: %w", op, ErrInvalidTerm)
	}

	price := float64(in.Price)
	down := price * in.DownPaymentPct / 100
	principal := price - down
	months := in.TermYears * 12
	monthlyRate := in.AnnualRatePct / 100 / 12

	var monthly float64
	if monthlyRate == 0 {
		monthly = principal / float64(months)
	} else {
		factor := math.Pow(1+monthlyRate, float64(months))
		monthly = principal * monthlyRate * factor / (factor - 1)
	}

	total := monthly * float64(months)

	// Walk the schedule once to produce year-end balances.
	balances := make([]float64, 0, in.TermYears)
	balance := principal
	for m := 1; m <= months; m++ {
		interest := balance * monthlyRate
		balance -= monthly - interest
		if m%12 == 0 {
			if balance < 0 {
				balance = 0
			}
			balances = append(balances, balance)
		}
	}

	return MortgageResult{
		LoanAmount:     principal,
		DownPayment:    down,
		MonthlyPayment: monthly,
		TotalPayment:   total,
		TotalInterest:  total - principal,
		YearlyBalances: balances,
	}, nil
}
