package allocation

import (
	"gonum.org/v1/gonum/stat"

	"github.com/bobmcallan/consilio/internal/models"
)

// WeightedRisk computes the weighting-weighted average risk factor across
// the selected funds. Shown only for a balanced allocation, so it returns
// ok=false when the total is off target, when none of the selected funds
// carries a risk factor, or when the risk-rated funds hold no weight.
// Funds without a risk factor are excluded from numerator and denominator.
func WeightedRisk(s State, funds []models.Fund, tolerance float64) (float64, bool) {
	if !Validate(s, tolerance).Balanced() {
		return 0, false
	}

	riskByFund := make(map[int64]float64, len(funds))
	for _, f := range funds {
		if f.RiskFactor != nil {
			riskByFund[f.ID] = *f.RiskFactor
		}
	}

	var risks, weights []float64
	for _, e := range s.Entries() {
		risk, ok := riskByFund[e.FundID]
		if !ok {
			continue
		}
		risks = append(risks, risk)
		weights = append(weights, e.Raw.Value())
	}

	if len(risks) == 0 {
		return 0, false
	}

	var weightSum float64
	for _, w := range weights {
		weightSum += w
	}
	if weightSum == 0 {
		return 0, false
	}

	return stat.Mean(risks, weights), true
}
