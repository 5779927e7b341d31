// The fixed per-tick subsystem pipeline: this simulation has no
// wall-clock-driven layers, only a single ordered sequence of
// economic/political subsystems run once per logical tick.
package engine

import (
	"fmt"
	"log/slog"

	"github.com/talgya/econsim/internal/commodity"
	"github.com/talgya/econsim/internal/simerr"
	"github.com/talgya/econsim/internal/worldstate"
)

// RunTick advances the world by exactly one tick, in the fixed subsystem
// order: production, trade, labor, price, then (on gated ticks) fiscal,
// political, military, spoilage, facility decay, and CPI history rotation.
// Countries and relations are always processed in ascending id / insertion
// order for determinism.
func RunTick(s *worldstate.State, log *slog.Logger) error {
	tick := s.Tick

	for i := range s.Countries {
		if err := RunProduction(s, s.Countries[i].ID); err != nil {
			return err
		}
	}

	ResetTradeBalances(s)
	if err := RunTrade(s, s.Config.TradeElasticity); err != nil {
		return err
	}

	for i := range s.Countries {
		if err := RunLabor(s, s.Countries[i].ID); err != nil {
			return err
		}
	}
	if s.Config.LaborMobility > 0 {
		ApplyLaborMobility(s, s.Config.LaborMobility)
	}

	for i := range s.Countries {
		countryID := s.Countries[i].ID
		demand, supply := aggregateDemandSupply(s, countryID)
		if err := RunPrice(s, countryID, demand, supply); err != nil {
			return err
		}
	}

	if tick%s.Config.GatingPeriodTicks == 0 {
		for i := range s.Countries {
			if err := RunFiscal(s, s.Countries[i].ID); err != nil {
				return err
			}
		}
		for i := range s.Countries {
			if err := RunPolitical(s, s.Countries[i].ID, importedFoodShare(s, s.Countries[i].ID)); err != nil {
				return err
			}
		}
		for i := range s.Countries {
			if err := RunMilitary(s, s.Countries[i].ID); err != nil {
				return err
			}
		}
	}

	applySpoilage(s)
	DegradeFacilities(s)

	if tick%s.TicksPerYear == 0 {
		RotateCPIHistory(s)
	}

	for _, v := range s.CheckInvariants() {
		if simerr.Fatal(v) {
			return v
		}
		log.Warn("invariant check flagged a condition", "tick", tick, "detail", v.Error())
		s.Diagnostics.Add(tick, v)
	}

	s.Tick = tick + 1
	s.Reseed()
	return nil
}

// Advance runs the scheduler for n ticks in order, stopping at the first
// error. onTick, if non-nil, runs after each successful tick (the caller's
// hook for metrics and periodic snapshotting); an error from onTick also
// aborts the run.
func Advance(s *worldstate.State, n uint64, log *slog.Logger, onTick func(*worldstate.State) error) error {
	for i := uint64(0); i < n; i++ {
		if err := RunTick(s, log); err != nil {
			return fmt.Errorf("tick %d: %w", s.Tick, err)
		}
		if onTick != nil {
			if err := onTick(s); err != nil {
				return err
			}
		}
	}
	return nil
}

// aggregateDemandSupply sums cohort consumption demand and region
// production supply across a country's regions.
func aggregateDemandSupply(s *worldstate.State, countryID worldstate.CountryID) (commodity.Array, commodity.Array) {
	var demand, supply commodity.Array
	for _, region := range s.RegionsOf(countryID) {
		for _, c := range commodity.All {
			supply[c] += region.Supply[c]
		}
		for _, cohort := range s.CohortsOf(region.ID) {
			for _, c := range commodity.All {
				demand[c] += cohort.Demand(c)
			}
		}
	}
	return demand, supply
}

// importedFoodShare returns the Agriculture commodity's imported fraction
// of total supply for a country, the input the FoodImportsAbove red line
// checks.
func importedFoodShare(s *worldstate.State, countryID worldstate.CountryID) float64 {
	imported, total := 0.0, 0.0
	for i := range s.Relations {
		rel := &s.Relations[i]
		if rel.To != countryID {
			continue
		}
		imported += rel.CurrentVolume[commodity.Agriculture]
	}
	for _, region := range s.RegionsOf(countryID) {
		total += region.Supply[commodity.Agriculture]
	}
	total += imported
	if total <= 0 {
		return 0
	}
	return imported / total
}

// applySpoilage decays stockpileable commodities by their configured rate;
// non-stockpileable ones (Electricity, Services) zero out entirely every
// tick.
func applySpoilage(s *worldstate.State) {
	for i := range s.Regions {
		region := &s.Regions[i]
		for _, c := range commodity.All {
			if !c.Stockpileable() {
				region.Inventory[c] = 0
				continue
			}
			region.Inventory[c] = maxf(0, region.Inventory[c]*(1-s.SpoilageRates[c]))
		}
	}
}
