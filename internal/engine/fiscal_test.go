package engine

import (
	"testing"

	"github.com/talgya/econsim/internal/commodity"
	"github.com/talgya/econsim/internal/config"
	"github.com/talgya/econsim/internal/worldstate"
)

// buildFiscalState returns a one-country, one-region state whose recomputed
// annualized GDP lands on wantGDP, with tariff revenue set so this tick's
// revenue exactly equals spending. That keeps Debt unchanged by RunFiscal,
// so the risk premium is computed against exactly debt/wantGDP.
func buildFiscalState(debt, wantGDP float64) *worldstate.State {
	cfg := config.Default()
	s := worldstate.New(cfg, 1, 2024)
	s.Countries = append(s.Countries, worldstate.Country{
		ID:                0,
		Code:              "ZZZ",
		Debt:              debt,
		BaseInterestRate:  0.02,
		EffectiveInterest: 0.02,
	})
	region := worldstate.Region{ID: 0, CountryID: 0}
	region.Sectors[commodity.ConsumerGoods].ValueAdded = wantGDP / float64(s.TicksPerYear)
	s.Regions = append(s.Regions, region)

	delta := 1.0 / 52.0
	totalSpending := 0.35*wantGDP*delta + 0.02*debt*delta
	s.Countries[0].TariffRevenueThisTick = totalSpending
	return s
}

func TestFiscalRiskPremiumScenario5HighDebt(t *testing.T) {
	s := buildFiscalState(800, 1000) // D/GDP = 0.80
	if err := RunFiscal(s, 0); err != nil {
		t.Fatalf("RunFiscal: %v", err)
	}
	got := s.Countries[0].EffectiveInterest
	if !almostEqual(got, 0.024, 1e-9) {
		t.Errorf("effective interest = %v, want 0.024", got)
	}
}

func TestFiscalRiskPremiumScenario5BelowThreshold(t *testing.T) {
	s := buildFiscalState(500, 1000) // D/GDP = 0.50, below the 0.60 threshold
	if err := RunFiscal(s, 0); err != nil {
		t.Fatalf("RunFiscal: %v", err)
	}
	got := s.Countries[0].EffectiveInterest
	if !almostEqual(got, 0.02, 1e-9) {
		t.Errorf("effective interest = %v, want 0.02 (no premium below threshold)", got)
	}
}

func TestAllocateSpendingSharesSplitsByCategory(t *testing.T) {
	shares := worldstate.SpendingShares{Welfare: 0.4, Education: 0.2, Defense: 0.2, Infrastructure: 0.1, Healthcare: 0.1}
	got := allocateSpendingShares(shares, 1000)
	want := worldstate.SpendingShares{Welfare: 400, Education: 200, Defense: 200, Infrastructure: 100, Healthcare: 100}
	if got != want {
		t.Errorf("allocateSpendingShares = %+v, want %+v", got, want)
	}
}

func TestRunFiscalRecordsSpendingByCategory(t *testing.T) {
	s := buildFiscalState(500, 1000)
	s.Countries[0].SpendingShares = worldstate.SpendingShares{Welfare: 1}
	if err := RunFiscal(s, 0); err != nil {
		t.Fatalf("RunFiscal: %v", err)
	}
	got := s.Countries[0].SpendingByCategory
	if got.Welfare <= 0 {
		t.Errorf("SpendingByCategory.Welfare = %v, want > 0", got.Welfare)
	}
	if got.Education != 0 || got.Defense != 0 {
		t.Errorf("SpendingByCategory = %+v, want only Welfare nonzero", got)
	}
}
