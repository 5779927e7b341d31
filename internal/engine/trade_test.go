package engine

import (
	"testing"

	"github.com/talgya/econsim/internal/commodity"
	"github.com/talgya/econsim/internal/config"
	"github.com/talgya/econsim/internal/worldstate"
)

func TestBilateralFlowScenario4(t *testing.T) {
	got := bilateralFlow(100, 10, 10, 0.20, 0, 2)
	if !almostEqual(got, 69.4, 0.05) {
		t.Errorf("flow = %v, want ~69.4", got)
	}
}

func TestBilateralFlowFullSanctionStopsTrade(t *testing.T) {
	got := bilateralFlow(100, 10, 10, 0.20, 1, 2)
	if got != 0 {
		t.Errorf("flow = %v, want 0 under full sanction", got)
	}
}

func TestRunTradeTariffRevenueIdentity(t *testing.T) {
	cfg := config.Default()
	s := worldstate.New(cfg, 1, 2024)
	s.Countries = append(s.Countries,
		worldstate.Country{ID: 0, Code: "EXP"},
		worldstate.Country{ID: 1, Code: "IMP"},
	)
	s.Countries[0].Price[commodity.Petroleum] = 10
	s.Countries[1].Price[commodity.Petroleum] = 10

	var tariff commodity.Array
	tariff[commodity.Petroleum] = 0.20
	var base commodity.Array
	base[commodity.Petroleum] = 100

	s.Relations = append(s.Relations, worldstate.TradeRelation{
		From: 0, To: 1, BaseVolume: base, Tariff: tariff,
	})

	ResetTradeBalances(s)
	if err := RunTrade(s, 2); err != nil {
		t.Fatalf("RunTrade: %v", err)
	}

	rel := s.Relations[0]
	flow := rel.CurrentVolume[commodity.Petroleum]
	px := s.Countries[0].Price[commodity.Petroleum]
	wantRevenue := tariff[commodity.Petroleum] * px * flow

	if !almostEqual(s.Countries[1].TariffRevenueThisTick, wantRevenue, 1e-9) {
		t.Errorf("tariff revenue = %v, want %v", s.Countries[1].TariffRevenueThisTick, wantRevenue)
	}
	if !almostEqual(flow, 69.4, 0.05) {
		t.Errorf("flow = %v, want ~69.4", flow)
	}
}
