package worldstate

import "github.com/talgya/econsim/internal/world"

// MilitaryFormationID is a dense, non-negative integer identifier assigned
// at scenario load.
type MilitaryFormationID uint32

// FormationType tags the kind of military unit. The
// military subsystem itself is a placeholder; these
// fields exist so equipment/condition bookkeeping and procurement demand
// can be exercised without combat resolution.
type FormationType uint8

const (
	FormationInfantry FormationType = iota
	FormationArmor
	FormationAirDefense
	FormationNaval
	FormationLogistics
)

// MilitaryFormation is a country's military unit.
type MilitaryFormation struct {
	ID        MilitaryFormationID
	CountryID CountryID
	Type      FormationType

	BaseStrength    float64
	CurrentStrength float64
	Personnel       float64

	Training   float64 // [0, 1]
	Maintenance float64 // [0, 1]
	Morale      float64 // [0, 1]

	// BaseEquipmentQuality is the quality at acquisition (1 = new),
	// immutable once the formation is re-equipped. EquipmentQuality is
	// derived from it every tick, never the other way around.
	BaseEquipmentQuality float64
	EquipmentQuality     float64
	EquipmentAge         uint64

	MaintenanceSupplyCost float64
	CombatSupplyCost      float64
	SupplyStatus          float64 // [0, 1]

	Deployed  bool
	Hex       world.HexCoord
	InCombat  bool
}

// EquipmentDepreciationRate is the fixed per-tick quality decay coefficient
// applied as base * max(0, 1 - rate*age).
const EquipmentDepreciationRate = 0.001

// UpdateEquipment ages equipment by one tick and recomputes quality from
// BaseEquipmentQuality: quality = base * max(0, 1 - rate*age). Age always
// measures ticks since acquisition, so re-equipping (resetting
// BaseEquipmentQuality and EquipmentAge) is the only way quality goes up.
func (m *MilitaryFormation) UpdateEquipment() {
	m.EquipmentAge++
	factor := 1 - EquipmentDepreciationRate*float64(m.EquipmentAge)
	if factor < 0 {
		factor = 0
	}
	m.EquipmentQuality = m.BaseEquipmentQuality * factor
}
