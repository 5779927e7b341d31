package worldstate

import "github.com/talgya/econsim/internal/commodity"

// CohortID is a dense, non-negative integer identifier assigned at
// scenario load.
type CohortID uint32

// WealthLevel buckets a population cohort for base-consumption lookup.
type WealthLevel uint8

const (
	Subsistence WealthLevel = iota
	Poor
	Middle
	Wealthy
	Rich
)

// PopulationCohort is an aggregated population slice within a region,
// sharing a primary sector and wealth bracket.
type PopulationCohort struct {
	ID             CohortID
	RegionID       RegionID
	PrimarySector  commodity.Tag
	Wealth         WealthLevel

	Population        float64
	AccumulatedWealth Cents
	IncomeThisTick    Cents
	CostOfLiving      Cents
	SavingsRate       float64 // [0, 1]

	ConsumptionMultiplier commodity.Array
}

// baseConsumptionPerCapita is the fixed lookup table keyed by (wealth,
// commodity), giving the baseline number of units a single member of a
// cohort at that wealth level consumes per tick before applying the
// cohort's own multipliers. Values are illustrative weekly quantities;
// Services and ConsumerGoods dominate as wealth rises, Agriculture
// dominates at subsistence level.
var baseConsumptionPerCapita = [5]commodity.Array{
	Subsistence: {
		commodity.Agriculture: 1.4, commodity.ConsumerGoods: 0.05, commodity.Services: 0.02,
	},
	Poor: {
		commodity.Agriculture: 1.2, commodity.ConsumerGoods: 0.15, commodity.Services: 0.08,
		commodity.Electricity: 0.1,
	},
	Middle: {
		commodity.Agriculture: 1.0, commodity.ConsumerGoods: 0.35, commodity.Services: 0.3,
		commodity.Electricity: 0.4, commodity.Electronics: 0.05,
	},
	Wealthy: {
		commodity.Agriculture: 0.9, commodity.ConsumerGoods: 0.6, commodity.Services: 0.7,
		commodity.Electricity: 0.8, commodity.Electronics: 0.2,
	},
	Rich: {
		commodity.Agriculture: 0.8, commodity.ConsumerGoods: 1.0, commodity.Services: 1.5,
		commodity.Electricity: 1.2, commodity.Electronics: 0.5,
	},
}

// BaseConsumptionPerCapita returns the fixed per-capita lookup value for a
// wealth level and commodity.
func BaseConsumptionPerCapita(w WealthLevel, c commodity.Tag) float64 {
	return baseConsumptionPerCapita[w][c]
}

// DefaultWealthShares is the fraction of a region's population assigned to
// each wealth level when a scenario does not specify its own distribution:
// a mass-market pyramid, skewed toward Subsistence/Poor.
var DefaultWealthShares = [5]float64{
	Subsistence: 0.35,
	Poor:        0.30,
	Middle:      0.25,
	Wealthy:     0.08,
	Rich:        0.02,
}

// defaultSavingsRate is the per-wealth-level savings rate a spawned cohort
// starts at: subsistence cohorts save nothing, richer cohorts save more.
var defaultSavingsRate = [5]float64{
	Subsistence: 0.00,
	Poor:        0.05,
	Middle:      0.12,
	Wealthy:     0.25,
	Rich:        0.40,
}

// SpawnCohorts splits a region's population into one cohort per non-empty
// wealth level. Each cohort's primary sector is assigned round-robin
// across the region's capacity-bearing sectors (the commodities the region
// actually produces), falling back to Services if the region produces
// nothing yet. Entirely deterministic: the same region and shares always
// produce the same cohorts, no RNG draw needed. Caller assigns IDs.
func SpawnCohorts(region *Region, shares [5]float64) []PopulationCohort {
	var sectors []commodity.Tag
	for _, c := range commodity.All {
		if region.Sectors[c].Capacity > 0 {
			sectors = append(sectors, c)
		}
	}

	var cohorts []PopulationCohort
	for w := Subsistence; w <= Rich; w++ {
		pop := region.Population * shares[w]
		if pop <= 0 {
			continue
		}

		sector := commodity.Services
		if len(sectors) > 0 {
			sector = sectors[int(w)%len(sectors)]
		}

		var mult commodity.Array
		for _, c := range commodity.All {
			mult[c] = 1
		}

		cohorts = append(cohorts, PopulationCohort{
			RegionID:              region.ID,
			PrimarySector:         sector,
			Wealth:                w,
			Population:            pop,
			SavingsRate:           defaultSavingsRate[w],
			ConsumptionMultiplier: mult,
		})
	}
	return cohorts
}

// Demand returns the cohort's total demand for a commodity this tick:
// population * base-per-capita * cohort multiplier.
func (p *PopulationCohort) Demand(c commodity.Tag) float64 {
	return p.Population * BaseConsumptionPerCapita(p.Wealth, c) * p.ConsumptionMultiplier[c]
}
