// Excess-demand price adjustment, display smoothing, and CPI. A
// per-country, per-commodity clamp applied against this tick's aggregated
// country demand/supply ratio, bounded to a maximum per-tick change.
package engine

import (
	"github.com/talgya/econsim/internal/commodity"
	"github.com/talgya/econsim/internal/simerr"
	"github.com/talgya/econsim/internal/worldstate"
)

const supplyEpsilon = 1e-4

// RunPrice updates a country's price array, smoothed display prices, and
// CPI from aggregated per-commodity demand and supply. Demand and supply
// are the country-wide totals accumulated by the caller (region supply
// aggregation plus cohort/trade demand).
func RunPrice(s *worldstate.State, countryID worldstate.CountryID, demand, supply commodity.Array) error {
	country, err := s.Country(countryID)
	if err != nil {
		return err
	}

	deltaMax := s.Config.PriceMaxChange
	beta := s.Config.PriceDisplaySmoothing

	for _, c := range commodity.All {
		sigma := s.PriceSensitivities[c]
		p0 := country.InitialPrice[c]
		if p0 <= 0 {
			continue
		}

		excess := (demand[c] - supply[c]) / maxf(supply[c], supplyEpsilon)
		excess = clamp(excess, -deltaMax, deltaMax)

		p := country.Price[c] * (1 + sigma*excess)
		p = clamp(p, 0.1*p0, 10*p0)
		if nonFinite(p) {
			return simerr.Numeric("non-finite price", map[string]any{
				"country": country.ID, "commodity": c.String(),
			})
		}
		country.Price[c] = p
		country.DisplayPrice[c] = beta*p + (1-beta)*country.DisplayPrice[c]
	}

	country.CPI = computeCPI(country.Price, country.InitialPrice, country.BasketWeights)
	return nil
}

// computeCPI is the consumption-weighted price index:
// CPI = sum(w_c * P_c/P0_c) / sum(w_c), skipping non-positive basis prices,
// and defaulting to 1 if the total weight is zero.
func computeCPI(price, initialPrice, weights commodity.Array) float64 {
	num, den := 0.0, 0.0
	for _, c := range commodity.All {
		if initialPrice[c] <= 0 || weights[c] <= 0 {
			continue
		}
		num += weights[c] * (price[c] / initialPrice[c])
		den += weights[c]
	}
	if den == 0 {
		return 1
	}
	return num / den
}

// RotateCPIHistory stores the current CPI into CPIYearAgo for every
// country. Called once per simulated year.
func RotateCPIHistory(s *worldstate.State) {
	for i := range s.Countries {
		s.Countries[i].CPIYearAgo = s.Countries[i].CPI
	}
}
