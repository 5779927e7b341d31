package engine

import (
	"testing"

	"github.com/talgya/econsim/internal/commodity"
	"github.com/talgya/econsim/internal/config"
	"github.com/talgya/econsim/internal/worldstate"
)

func TestRunMilitarySatisfiesFromAvailableGoods(t *testing.T) {
	cfg := config.Default()
	s := worldstate.New(cfg, 1, 2024)
	s.Countries = append(s.Countries, worldstate.Country{ID: 0})
	region := worldstate.Region{ID: 0, CountryID: 0}
	region.Inventory[commodity.MilitaryGoods] = 50
	s.Regions = append(s.Regions, region)
	s.Military = append(s.Military, worldstate.MilitaryFormation{
		ID: 0, CountryID: 0,
		MaintenanceSupplyCost: 60, CombatSupplyCost: 40,
		CurrentStrength: 100, EquipmentQuality: 1, Morale: 1,
	})

	if err := RunMilitary(s, 0); err != nil {
		t.Fatalf("RunMilitary: %v", err)
	}

	country := s.Countries[0]
	if !almostEqual(country.MilitaryGoodsRequired, 100, 1e-9) {
		t.Errorf("required = %v, want 100", country.MilitaryGoodsRequired)
	}
	if !almostEqual(country.ProcurementSatisfaction, 0.5, 1e-9) {
		t.Errorf("satisfaction = %v, want 0.5 (50/100)", country.ProcurementSatisfaction)
	}
	if s.Regions[0].Inventory[commodity.MilitaryGoods] != 0 {
		t.Errorf("inventory = %v, want fully drawn down to 0", s.Regions[0].Inventory[commodity.MilitaryGoods])
	}
	if s.Military[0].SupplyStatus != 0.5 {
		t.Errorf("formation supply status = %v, want 0.5", s.Military[0].SupplyStatus)
	}
}

func TestRunMilitaryNoRequirementFullySatisfied(t *testing.T) {
	cfg := config.Default()
	s := worldstate.New(cfg, 1, 2024)
	s.Countries = append(s.Countries, worldstate.Country{ID: 0})

	if err := RunMilitary(s, 0); err != nil {
		t.Fatalf("RunMilitary: %v", err)
	}
	if s.Countries[0].ProcurementSatisfaction != 1 {
		t.Errorf("satisfaction = %v, want 1 with no formations", s.Countries[0].ProcurementSatisfaction)
	}
}
