package worldstate

import (
	"testing"

	"github.com/talgya/econsim/internal/commodity"
)

func TestSpawnCohortsSplitsPopulationByShares(t *testing.T) {
	region := Region{ID: 1, Population: 1000}
	region.Sectors[commodity.Agriculture].Capacity = 1

	cohorts := SpawnCohorts(&region, DefaultWealthShares)

	var total float64
	for _, c := range cohorts {
		if c.RegionID != region.ID {
			t.Errorf("cohort region = %d, want %d", c.RegionID, region.ID)
		}
		total += c.Population
	}
	if total < 999 || total > 1001 {
		t.Errorf("total spawned population = %v, want ~1000", total)
	}
	if len(cohorts) != 5 {
		t.Errorf("got %d cohorts, want 5 (one per wealth level)", len(cohorts))
	}
}

func TestSpawnCohortsSkipsZeroShareLevels(t *testing.T) {
	region := Region{ID: 1, Population: 100}
	region.Sectors[commodity.Agriculture].Capacity = 1

	shares := [5]float64{Subsistence: 1}
	cohorts := SpawnCohorts(&region, shares)

	if len(cohorts) != 1 {
		t.Fatalf("got %d cohorts, want 1", len(cohorts))
	}
	if cohorts[0].Wealth != Subsistence {
		t.Errorf("wealth = %v, want Subsistence", cohorts[0].Wealth)
	}
	if cohorts[0].Population != 100 {
		t.Errorf("population = %v, want 100", cohorts[0].Population)
	}
}

func TestSpawnCohortsAssignsSectorRoundRobin(t *testing.T) {
	region := Region{ID: 1, Population: 500}
	region.Sectors[commodity.Agriculture].Capacity = 1
	region.Sectors[commodity.Services].Capacity = 1

	cohorts := SpawnCohorts(&region, DefaultWealthShares)
	for _, c := range cohorts {
		if c.PrimarySector != commodity.Agriculture && c.PrimarySector != commodity.Services {
			t.Errorf("cohort %v assigned sector %v outside capacity-bearing set", c.Wealth, c.PrimarySector)
		}
	}
}

func TestSpawnCohortsFallsBackToServicesWithNoCapacity(t *testing.T) {
	region := Region{ID: 1, Population: 50}
	cohorts := SpawnCohorts(&region, [5]float64{Subsistence: 1})
	if cohorts[0].PrimarySector != commodity.Services {
		t.Errorf("sector = %v, want Services fallback", cohorts[0].PrimarySector)
	}
}
