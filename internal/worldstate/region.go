package worldstate

import (
	"github.com/talgya/econsim/internal/commodity"
	"github.com/talgya/econsim/internal/world"
)

// RegionID is a dense, non-negative integer identifier assigned at
// scenario load.
type RegionID uint32

// Region is a sub-national production and population unit. Per-commodity
// arrays are length K, indexed by commodity.Tag.
type Region struct {
	ID        RegionID
	CountryID CountryID
	Name      string

	Sectors [commodity.Count]Sector

	InfraFactor float64 // [0.5, 1.5]
	Population  float64
	LaborForce  float64
	Employed    float64

	AvgWage     Cents
	SectorWage  [commodity.Count]Cents

	Unrest          float64 // [0, 100]
	FoodInsecurity  float64
	Inequality      float64

	Inventory commodity.Array
	Demand    commodity.Array
	Supply    commodity.Array

	// Hex position of the region. No subsystem reads it; trade and deposit
	// siting do not depend on it. Not required to be unique or contiguous
	// across regions.
	Position world.HexCoord

	DepositIDs              []DepositID
	ExtractionFacilityIDs   []ExtractionFacilityID
	ManufacturingFacilityIDs []ManufacturingFacilityID
	CohortIDs               []CohortID
}

// Sector is a per-region, per-commodity production unit.
type Sector struct {
	Capacity        float64 // capital-determined upper bound on output
	LaborEmployed   float64
	LaborCoeff      float64 // workers per unit output
	Output          float64 // this tick
	Inventory       float64 // per-sector pipe-through view
	Price           float64
	InitialPrice    float64
	Efficiency      float64 // [0.5, 2.0]
	ValueAdded      float64 // this tick
}

// RegionUnrest computes a region's composite unrest score:
// unrest = clamp(100*u + 150*food_insecurity + 50*inequality + 30*corruption, 0, 100).
func RegionUnrest(unemployment, foodInsecurity, inequality, corruption float64) float64 {
	u := 100*unemployment + 150*foodInsecurity + 50*inequality + 30*corruption
	if u < 0 {
		return 0
	}
	if u > 100 {
		return 100
	}
	return u
}
