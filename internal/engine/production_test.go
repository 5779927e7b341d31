package engine

import (
	"testing"

	"github.com/talgya/econsim/internal/commodity"
	"github.com/talgya/econsim/internal/worldstate"
)

func TestSoftLeontiefOutputScenario1(t *testing.T) {
	sector := &worldstate.Sector{
		Capacity:      100,
		LaborEmployed: 50,
		LaborCoeff:    0.5,
		Efficiency:    1,
	}
	var matrix worldstate.Matrix
	matrix.Set(commodity.Petroleum, commodity.ConsumerGoods, 0.10)
	matrix.Set(commodity.Ore, commodity.ConsumerGoods, 0.15)

	var inventory commodity.Array
	inventory[commodity.Petroleum] = 5
	inventory[commodity.Ore] = 1000

	got := softLeontiefOutput(sector, inventory, &matrix, commodity.ConsumerGoods, 0.6, 1)
	if !almostEqual(got, 60, 1e-9) {
		t.Errorf("output = %v, want 60", got)
	}
}

func TestSoftLeontiefOutputScenario2ZeroPetroleum(t *testing.T) {
	sector := &worldstate.Sector{
		Capacity:      100,
		LaborEmployed: 50,
		LaborCoeff:    0.5,
		Efficiency:    1,
	}
	var matrix worldstate.Matrix
	matrix.Set(commodity.Petroleum, commodity.ConsumerGoods, 0.10)
	matrix.Set(commodity.Ore, commodity.ConsumerGoods, 0.15)

	var inventory commodity.Array
	inventory[commodity.Petroleum] = 0
	inventory[commodity.Ore] = 1000

	got := softLeontiefOutput(sector, inventory, &matrix, commodity.ConsumerGoods, 0.6, 1)
	if !almostEqual(got, 20, 1e-9) {
		t.Errorf("output = %v, want 20 (softened, not zero)", got)
	}
}

func TestSoftLeontiefOutputCappedByLabor(t *testing.T) {
	sector := &worldstate.Sector{
		Capacity:      100,
		LaborEmployed: 10,
		LaborCoeff:    0.5,
		Efficiency:    1,
	}
	var matrix worldstate.Matrix
	got := softLeontiefOutput(sector, commodity.Array{}, &matrix, commodity.ConsumerGoods, 0.6, 1)
	if !almostEqual(got, 20, 1e-9) {
		t.Errorf("output = %v, want 20 (labor-constrained: 10/0.5)", got)
	}
}

func almostEqual(a, b, eps float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= eps
}
