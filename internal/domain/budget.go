package domain

// CityRates is the per-square-foot market rate for each finish quality, in INR.
type CityRates struct {
	Basic   float64 `json:"basic"`
	Mid     float64 `json:"mid"`
	Premium float64 `json:"premium"`
}

func (r CityRates) ForQuality(quality string) (float64, bool) {
	switch quality {
	case "basic":
		return r.Basic, true
	case "mid":
		return r.Mid, true
	case "premium":
		return r.Premium, true
	}
	return 0, false
}

// RateTable is the immutable market-rate configuration loaded once at startup
// and injected into the budget service.
type RateTable struct {
	Cities            map[string]CityRates `json:"cities"`
	ForeignMultiplier float64              `json:"foreign_multiplier"`
}

type EstimateInput struct {
	City      string  `json:"city" validate:"required"`
	Area      float64 `json:"area" validate:"required,gt=0"`
	Quality   string  `json:"quality" validate:"required,oneof=basic mid premium"`
	Materials string  `json:"materials"`
}

type Estimate struct {
	TotalCost   float64           `json:"total_cost"`
	Breakdown   EstimateBreakdown `json:"breakdown"`
	Tip         string            `json:"tip"`
	RatePerSqFt float64           `json:"rate_per_sq_ft"`
}

// EstimateBreakdown is the fixed 30/45/25 cost split used by the budget
// calculator. It is display arithmetic only and has no relation to project
// milestone statuses.
type EstimateBreakdown struct {
	Foundation float64 `json:"foundation"`
	Finishing  float64 `json:"finishing"`
	Plumbing   float64 `json:"plumbing"`
}

// QuotationInput prices a job from the contractor's side: base cost plus a
// profit margin. Materials never factor in here.
type QuotationInput struct {
	City    string  `json:"city" validate:"required"`
	Area    float64 `json:"area" validate:"required,gt=0"`
	Quality string  `json:"quality" validate:"required,oneof=basic mid premium"`
	Margin  float64 `json:"margin"`
}

type Quotation struct {
	BaseCost   float64 `json:"base_cost"`
	Profit     float64 `json:"profit"`
	TotalQuote float64 `json:"total_quote"`
	Margin     float64 `json:"margin"`
}

type PredictionInput struct {
	City        string  `json:"city" validate:"required"`
	Area        float64 `json:"area" validate:"required,gt=0"`
	Quality     string  `json:"quality" validate:"required,oneof=basic mid premium"`
	Contingency float64 `json:"contingency"`
}

type Prediction struct {
	BaseCost          float64 `json:"base_cost"`
	ContingencyAmount float64 `json:"contingency_amount"`
	TotalPrediction   float64 `json:"total_prediction"`
	Contingency       float64 `json:"contingency"`
}
