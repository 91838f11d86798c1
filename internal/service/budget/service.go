package budget

import (
	"math"

	"buildease/internal/domain"
)

// Service computes material cost estimates from the injected rate table. The
// table is resolved once at startup; the service never mutates it.
type Service interface {
	Estimate(input domain.EstimateInput) (*domain.Estimate, error)
	Quote(input domain.QuotationInput) (*domain.Quotation, error)
	Predict(input domain.PredictionInput) (*domain.Prediction, error)
	Rates() domain.RateTable
}

// defaultMarkupPercent applies to quotations and predictions when the caller
// omits a margin or contingency.
const defaultMarkupPercent = 15

type service struct {
	rates domain.RateTable
}

func NewService(rates domain.RateTable) Service {
	return &service{rates: rates}
}

func (s *service) Estimate(input domain.EstimateInput) (*domain.Estimate, error) {
	cityRates, ok := s.rates.Cities[input.City]
	if !ok {
		return nil, domain.ErrCityNotSupported
	}

	baseRate, ok := cityRates.ForQuality(input.Quality)
	if !ok {
		return nil, domain.ErrCityNotSupported
	}

	if input.Materials == "foreign" {
		baseRate *= s.rates.ForeignMultiplier
	}

	totalCost := input.Area * baseRate

	// Fixed display split for the calculator; unrelated to project milestones.
	breakdown := domain.EstimateBreakdown{
		Foundation: math.Round(totalCost * 0.30),
		Finishing:  math.Round(totalCost * 0.45),
		Plumbing:   math.Round(totalCost * 0.25),
	}

	return &domain.Estimate{
		TotalCost:   totalCost,
		Breakdown:   breakdown,
		Tip:         adviseTip(input),
		RatePerSqFt: baseRate,
	}, nil
}

// Quote adds a profit margin on top of the base market cost. Quotations price
// the job as quoted to a customer, so the foreign-materials multiplier never
// applies.
func (s *service) Quote(input domain.QuotationInput) (*domain.Quotation, error) {
	baseCost, err := s.baseCost(input.City, input.Area, input.Quality)
	if err != nil {
		return nil, err
	}

	margin := input.Margin
	if margin == 0 {
		margin = defaultMarkupPercent
	}
	profit := baseCost * margin / 100

	return &domain.Quotation{
		BaseCost:   baseCost,
		Profit:     profit,
		TotalQuote: baseCost + profit,
		Margin:     margin,
	}, nil
}

func (s *service) Predict(input domain.PredictionInput) (*domain.Prediction, error) {
	baseCost, err := s.baseCost(input.City, input.Area, input.Quality)
	if err != nil {
		return nil, err
	}

	contingency := input.Contingency
	if contingency == 0 {
		contingency = defaultMarkupPercent
	}
	amount := baseCost * contingency / 100

	return &domain.Prediction{
		BaseCost:          baseCost,
		ContingencyAmount: amount,
		TotalPrediction:   baseCost + amount,
		Contingency:       contingency,
	}, nil
}

func (s *service) Rates() domain.RateTable {
	return s.rates
}

func (s *service) baseCost(city string, area float64, quality string) (float64, error) {
	cityRates, ok := s.rates.Cities[city]
	if !ok {
		return 0, domain.ErrCityNotSupported
	}
	rate, ok := cityRates.ForQuality(quality)
	if !ok {
		return 0, domain.ErrCityNotSupported
	}
	return area * rate, nil
}

func adviseTip(input domain.EstimateInput) string {
	switch {
	case input.Quality == "premium" && input.Materials == "indian":
		return "For a premium finish, consider pairing high-quality Indian structural materials with select items from our Foreign Brands section."
	case input.City == "mumbai" && input.Quality != "basic":
		return "Construction costs in Mumbai are higher. Ensure your foundation planning is robust to handle local soil conditions."
	case input.Materials == "foreign":
		return "Using foreign brands increases quality but also import duties and shipping times. Plan procurement at least 45 days in advance."
	default:
		return "A mid-range finish offers the best balance of quality and cost-effectiveness for most residential projects in this area."
	}
}
