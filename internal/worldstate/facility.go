package worldstate

import "github.com/talgya/econsim/internal/commodity"

// CostBundle is a build or maintenance cost: a set of per-commodity
// quantities plus a money cost.
type CostBundle struct {
	Commodities commodity.Array
	Money       Cents
}

// ExtractionFacilityID is a dense, non-negative integer identifier assigned
// at scenario load.
type ExtractionFacilityID uint32

// ExtractionFacility draws down a ResourceDeposit's reserves into raw
// commodity supply.
type ExtractionFacility struct {
	ID         ExtractionFacilityID
	RegionID   RegionID
	DepositID  DepositID

	Level     int     // [0, 5]; 0 = not built
	Condition float64 // [0, 1]

	Workers         float64
	WorkersRequired float64

	UnderConstruction bool
	Progress          float64
	BaseBuildTicks    float64

	DegradationRate float64
	RepairRate      float64

	Maintenance CostBundle
	Build       CostBundle

	TechModifier float64 // τ

	OutputThisTick float64
}

// ManufacturingFacilityID is a dense, non-negative integer identifier
// assigned at scenario load.
type ManufacturingFacilityID uint32

// ManufacturingFacility converts region inventory into manufactured output.
type ManufacturingFacility struct {
	ID       ManufacturingFacilityID
	RegionID RegionID

	OutputCommodity  commodity.Tag
	BaseCapacityPerLevel float64

	Level     int
	Condition float64

	Workers         float64
	WorkersRequired float64

	UnderConstruction bool
	Progress          float64
	BaseBuildTicks    float64

	DegradationRate float64
	RepairRate      float64

	Maintenance CostBundle
	Build       CostBundle

	TechModifier float64

	OutputThisTick float64
}

// FacilityDestroyed reports whether condition has reached zero (rebuild
// required).
func FacilityDestroyed(condition float64) bool {
	return condition <= 0
}

// DegradeCondition applies one tick's condition decay/repair:
// condition <- clamp(condition - degradationRate +
// maintenanceSatisfaction*repairRate, 0, 1).
func DegradeCondition(condition, degradationRate, maintenanceSatisfaction, repairRate float64) float64 {
	c := condition - degradationRate + maintenanceSatisfaction*repairRate
	if c < 0 {
		return 0
	}
	if c > 1 {
		return 1
	}
	return c
}
