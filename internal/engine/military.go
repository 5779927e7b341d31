// Military goods consumption and procurement satisfaction. A placeholder
// subsystem: no combat resolution, only equipment aging
// (handled in production.go's DegradeFacilities) and the goods draw military
// upkeep places on a country's MilitaryGoods supply. Grounded on the
// teacher's internal/economy upkeep-cost bookkeeping, narrowed from
// per-settlement garrison supply to a single national aggregate.
package engine

import (
	"github.com/talgya/econsim/internal/commodity"
	"github.com/talgya/econsim/internal/worldstate"
)

// RunMilitary aggregates a country's formations' supply costs into
// MilitaryGoodsRequired, draws what is available from regional
// MilitaryGoods inventory (in region id order, for determinism), and
// records ProcurementSatisfaction and MilitaryPower.
func RunMilitary(s *worldstate.State, countryID worldstate.CountryID) error {
	country, err := s.Country(countryID)
	if err != nil {
		return err
	}

	required, power := 0.0, 0.0
	for i := range s.Military {
		m := &s.Military[i]
		if m.CountryID != countryID {
			continue
		}
		required += m.MaintenanceSupplyCost + m.CombatSupplyCost
		power += m.CurrentStrength * m.EquipmentQuality * m.Morale
	}
	country.MilitaryGoodsRequired = required
	country.MilitaryPower = power

	if required <= 0 {
		country.ProcurementSatisfaction = 1
		return nil
	}

	available := 0.0
	regions := s.RegionsOf(countryID)
	for _, r := range regions {
		available += r.Inventory[commodity.MilitaryGoods]
	}

	satisfaction := minf(1, available/required)
	country.ProcurementSatisfaction = satisfaction

	consumed := satisfaction * required
	for _, r := range regions {
		if available <= 0 {
			break
		}
		share := r.Inventory[commodity.MilitaryGoods] / available
		draw := minf(r.Inventory[commodity.MilitaryGoods], consumed*share)
		r.Inventory[commodity.MilitaryGoods] -= draw
	}

	for i := range s.Military {
		m := &s.Military[i]
		if m.CountryID != countryID {
			continue
		}
		m.SupplyStatus = satisfaction
	}

	return nil
}
