package worldstate

import (
	"github.com/talgya/econsim/internal/commodity"
	"github.com/talgya/econsim/internal/world"
)

// DepositID is a dense, non-negative integer identifier assigned at
// scenario load.
type DepositID uint32

// DiscoveryState tracks how much a player/operator knows about a deposit's
// true reserves.
type DiscoveryState uint8

const (
	Unknown DiscoveryState = iota
	Surveyed
	Proven
)

// ResourceDeposit is a sited, depletable raw-resource stock.
type ResourceDeposit struct {
	ID       DepositID
	Hex      world.HexCoord
	RegionID RegionID

	Resource commodity.Tag // must be a raw commodity
	Subtype  string

	TotalReserves     float64
	RemainingReserves float64 // monotonically non-increasing

	BaseYield  float64
	Difficulty float64 // [0.5, 2.0]

	Discovery         DiscoveryState
	EstimatedReserves float64 // what the player sees; accuracy depends on Discovery
}

// Exhausted reports whether the deposit has nothing left to extract.
func (d *ResourceDeposit) Exhausted() bool {
	return d.RemainingReserves <= 0
}

// EstimateReserves recomputes EstimatedReserves from RemainingReserves
// given the deposit's discovery state: Unknown yields no information,
// Surveyed yields a coarse (50%-accurate) estimate, Proven yields the
// exact figure.
func (d *ResourceDeposit) EstimateReserves() {
	switch d.Discovery {
	case Unknown:
		d.EstimatedReserves = 0
	case Surveyed:
		d.EstimatedReserves = d.RemainingReserves * 0.5
	case Proven:
		d.EstimatedReserves = d.RemainingReserves
	}
}
