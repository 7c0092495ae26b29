package httpapi

import (
	"net/http"

	"property_hub/internal/services/calculator"
)

type mortgageRequest struct {
	Price          int64   `json:"price"`
	DownPaymentPct float64 `json:"down_payment_pct"`
	AnnualRatePct  float64 `json:"annual_rate_pct"`
	TermYears      int     `json:"term_years"`
}

type mortgageResponse struct {
	LoanAmount     float64   `json:"loan_amount"`
	DownPayment    float64   `json:"down_payment"`
	MonthlyPayment float64   `json:"monthly_payment"`
	TotalPayment   float64   `json:"total_payment"`
	TotalInterest  float64   `json:"total_interest"`
	YearlyBalances []float64 `json:"yearly_balances"`
}

func (s *Server) handleMortgage(w http.ResponseWriter, r *http.Request) {
	var req mortgageRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	res, err := calculator.Mortgage(calculator.MortgageInput{
		Price:          req.Price,
		DownPaymentPct: req.DownPaymentPct,
		AnnualRatePct:  req.AnnualRatePct,
		TermYears:      req.TermYears,
	})
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, mortgageResponse{
		LoanAmount:     res.LoanAmount,
		DownPayment:    res.DownPayment,
		MonthlyPayment: res.MonthlyPayment,
		TotalPayment:   res.TotalPayment,
		TotalInterest:  res.TotalInterest,
		YearlyBalances: res.YearlyBalances,
	})
}

type roiRequest struct {
	PurchasePrice       int64   `json:"purchase_price"`
	AnnualRent          int64   `json:"annual_rent"`
	ServiceChargeAnnual float64 `json:"service_charge_annual"`
	OtherCostsAnnual    float64 `json:"other_costs_annual"`
}

type roiResponse struct {
	GrossYieldPct float64 `json:"gross_yield_pct"`
	NetYieldPct   float64 `json:"net_yield_pct"`
	AnnualNet     float64 `json:"annual_net"`
	MonthlyNet    float64 `json:"monthly_net"`
	PaybackYears  float64 `json:"payback_years"`
}

func (s *Server) handleROI(w http.ResponseWriter, r *http.Request) {
	var req roiRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	res, err := calculator.ROI(calculator.ROIInput{
		PurchasePrice:       req.PurchasePrice,
		AnnualRent:          req.AnnualRent,
		ServiceChargeAnnual: req.ServiceChargeAnnual,
		OtherCostsAnnual:    req.OtherCostsAnnual,
	})
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, roiResponse{
		GrossYieldPct: res.GrossYieldPct,
		NetYieldPct:   res.NetYieldPct,
		AnnualNet:     res.AnnualNet,
		MonthlyNet:    res.MonthlyNet,
		PaybackYears:  res.PaybackYears,
	})
}

type serviceChargeRequest struct {
	Community string  `json:"community"`
	AreaSqft  float64 `json:"area_sqft"`
}

type serviceChargeResponse struct {
	RatePerSqft    float64 `json:"rate_per_sqft"`
	AnnualCharge   float64 `json:"annual_charge"`
	MonthlyCharge  float64 `json:"monthly_charge"`
	KnownCommunity bool    `json:"known_community"`
}

func (s *Server) handleServiceCharge(w http.ResponseWriter, r *http.Request) {
	var req serviceChargeRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	res, err := calculator.ServiceCharge(calculator.ServiceChargeInput{
		Community: req.Community,
		AreaSqft:  req.AreaSqft,
	})
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, serviceChargeResponse{
		RatePerSqft:    res.RatePerSqft,
		AnnualCharge:   res.AnnualCharge,
		MonthlyCharge:  res.MonthlyCharge,
		KnownCommunity: res.KnownCommunity,
	})
}

type predictionRequest struct {
	CurrentPrice int64  `json:"current_price"`
	Community    string `json:"community"`
	OffPlan      bool   `json:"off_plan"`
	HorizonYears int    `json:"horizon_years"`
}

type predictionResponse struct {
	AnnualGrowthPct float64   `json:"annual_growth_pct"`
	ProjectedPrice  float64   `json:"projected_price"`
	TotalGrowthPct  float64   `json:"total_growth_pct"`
	YearlyPrices    []float64 `json:"yearly_prices"`
}

func (s *Server) handlePrediction(w http.ResponseWriter, r *http.Request) {
	var req predictionRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	res, err := calculator.PredictPrice(calculator.PredictionInput{
		CurrentPrice: req.CurrentPrice,
		Community:    req.Community,
		OffPlan:      req.OffPlan,
		HorizonYears: req.HorizonYears,
	})
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, predictionResponse{
		AnnualGrowthPct: res.AnnualGrowthPct,
		ProjectedPrice:  res.ProjectedPrice,
		TotalGrowthPct:  res.TotalGrowthPct,
		YearlyPrices:    res.YearlyPrices,
	})
}
