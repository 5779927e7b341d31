// Labor demand, allocation, and wage adjustment from market tightness:
// per-sector worker allocation driven by surplus/demand bookkeeping.
package engine

import (
	"github.com/talgya/econsim/internal/commodity"
	"github.com/talgya/econsim/internal/worldstate"
)

// RunLabor allocates a country's regional labor forces across sectors and
// adjusts wages from tightness.
func RunLabor(s *worldstate.State, countryID worldstate.CountryID) error {
	country, err := s.Country(countryID)
	if err != nil {
		return err
	}

	omega := s.Config.WageTightness
	wageFloor := float64(s.Config.WageFloorCents)

	var totalEmployed, totalWages float64

	for _, region := range s.RegionsOf(countryID) {
		var demand commodity.Array
		totalDemand := 0.0
		for _, c := range commodity.All {
			sector := &region.Sectors[c]
			d := sector.LaborCoeff * sector.Capacity
			demand[c] = d
			totalDemand += d
		}

		factor := 0.0
		if totalDemand > 0 {
			factor = minf(1, region.LaborForce/totalDemand)
		}

		regionEmployed := 0.0
		for _, c := range commodity.All {
			sector := &region.Sectors[c]
			employed := demand[c] * factor
			sector.LaborEmployed = employed
			regionEmployed += employed

			prevWage := region.SectorWage[c]
			newWage := adjustWage(prevWage, demand[c], employed, omega, wageFloor)
			region.SectorWage[c] = newWage
			totalWages += newWage * employed
		}

		region.Employed = regionEmployed
		totalEmployed += regionEmployed

		if regionEmployed > 0 {
			sum := 0.0
			for _, c := range commodity.All {
				sum += region.SectorWage[c] * region.Sectors[c].LaborEmployed
			}
			region.AvgWage = sum / regionEmployed
		}

		for _, cohort := range s.CohortsOf(region.ID) {
			wage := region.SectorWage[cohort.PrimarySector]
			cohort.IncomeThisTick = cohort.Population * wage
		}
	}

	country.Employed = totalEmployed
	country.WagesPaid = totalWages
	return nil
}

// adjustWage applies the wage update rule: extreme tightness when supply
// (employed) is zero but demand is positive, otherwise a tightness-clamped
// adjustment, always floored.
func adjustWage(prevWage, demand, employed, omega, wageFloor float64) float64 {
	var w float64
	if employed <= 0 && demand > 0 {
		w = prevWage * (1 + 0.5*omega)
	} else if employed <= 0 {
		w = prevWage
	} else {
		tightness := demand / employed
		adj := clamp(omega*(tightness-1), -0.1, 0.1)
		w = prevWage * (1 + adj)
	}
	return maxf(wageFloor, w)
}

// ApplyLaborMobility optionally shifts workers toward above-average-wage
// sectors at rate mu, with a conservation correction so total region
// employment is preserved to within 0.01 worker.
func ApplyLaborMobility(s *worldstate.State, mu float64) {
	if mu <= 0 {
		return
	}
	for ri := range s.Regions {
		region := &s.Regions[ri]
		if region.Employed <= 0 {
			continue
		}
		avgWage := region.AvgWage

		var shifted commodity.Array
		total := 0.0
		for _, c := range commodity.All {
			sector := &region.Sectors[c]
			delta := mu * sector.LaborEmployed * (region.SectorWage[c] - avgWage) / maxf(avgWage, 1)
			shifted[c] = delta
			total += delta
		}

		// Conservation correction: residual redistributed uniformly.
		correction := -total / float64(commodity.Count)
		for _, c := range commodity.All {
			sector := &region.Sectors[c]
			sector.LaborEmployed = maxf(0, sector.LaborEmployed+shifted[c]+correction)
		}
	}
}
