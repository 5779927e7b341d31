// Bilateral trade flow computation with elasticity, tariffs, and sanctions;
// FX updates. Evaluates a fixed directed trade-relation graph every tick,
// rather than opportunistic merchant routing.
package engine

import (
	"github.com/talgya/econsim/internal/commodity"
	"github.com/talgya/econsim/internal/simerr"
	"github.com/talgya/econsim/internal/worldstate"
)

const effectivePriceEpsilon = 1e-4

// deltaTradeYear is Δt in the FX update: one tick is 1/52 of a simulated
// year.
const deltaTradeYear = 1.0 / 52.0

// ResetTradeBalances zeroes every country's this-tick trade balance and
// tariff revenue at the start of a trade tick.
func ResetTradeBalances(s *worldstate.State) {
	for i := range s.Countries {
		s.Countries[i].TradeBalanceThisTick = 0
		s.Countries[i].TariffRevenueThisTick = 0
	}
}

// RunTrade resolves every directed trade relation's per-commodity flow and
// updates both countries' trade balance, FX reserves, and the importer's
// tariff revenue. Relations are processed in
// insertion order for determinism.
func RunTrade(s *worldstate.State, elasticity float64) error {
	for i := range s.Relations {
		rel := &s.Relations[i]
		exporter, err := s.Country(rel.From)
		if err != nil {
			return err
		}
		importer, err := s.Country(rel.To)
		if err != nil {
			return err
		}

		for _, c := range commodity.All {
			flow := bilateralFlow(rel.BaseVolume[c], exporter.Price[c], importer.Price[c], rel.Tariff[c], rel.SanctionSeverity, elasticity)
			if nonFinite(flow) {
				return simerr.Numeric("non-finite trade flow", map[string]any{
					"from": rel.From, "to": rel.To, "commodity": c.String(),
				})
			}
			rel.CurrentVolume[c] = flow

			px := exporter.Price[c]
			tariff := rel.Tariff[c]
			exporter.TradeBalanceThisTick += px * flow
			importer.TradeBalanceThisTick -= px * (1 + tariff) * flow
			tariffRevenue := tariff * px * flow
			importer.TariffRevenueThisTick += tariffRevenue
		}
	}

	for i := range s.Countries {
		s.Countries[i].FXReserves += s.Countries[i].TradeBalanceThisTick * deltaTradeYear
	}

	return nil
}

// bilateralFlow computes one commodity's bilateral trade volume, shrunk by
// a tariff/sanction-adjusted price ratio raised to the elasticity.
func bilateralFlow(baseVolume, px, pm, tariff, sanction, elasticity float64) float64 {
	if sanction >= 1 {
		return 0
	}
	effectiveX := maxf(px*(1+tariff), effectivePriceEpsilon)
	ratio := pm / effectiveX
	multiplier := clamp(pow(ratio, elasticity), 0.01, 10)
	return baseVolume * multiplier * (1 - sanction)
}
