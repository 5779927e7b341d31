package worldstate

import (
	"math"

	"github.com/talgya/econsim/internal/commodity"
	"github.com/talgya/econsim/internal/simerr"
)

// CheckInvariants verifies the state's global invariants after a tick.
// Violations are recorded as InvariantViolation diagnostics and clamped in
// place (the release-mode policy); the caller decides whether to treat any
// violation as fatal (debug mode).
func (s *State) CheckInvariants() []error {
	var violations []error

	for ri := range s.Regions {
		r := &s.Regions[ri]
		for _, c := range commodity.All {
			if r.Inventory[c] < 0 {
				violations = append(violations, simerr.Invariant("negative inventory", map[string]any{
					"region": r.ID, "commodity": c.String(), "value": r.Inventory[c],
				}))
				r.Inventory[c] = 0
			}
			if math.IsNaN(r.Inventory[c]) || math.IsInf(r.Inventory[c], 0) {
				violations = append(violations, simerr.Numeric("non-finite inventory", map[string]any{
					"region": r.ID, "commodity": c.String(),
				}))
			}
		}
	}

	for ci := range s.Countries {
		country := &s.Countries[ci]
		for _, c := range commodity.All {
			lo := 0.1 * country.InitialPrice[c]
			hi := 10 * country.InitialPrice[c]
			if country.InitialPrice[c] <= 0 {
				continue
			}
			if country.Price[c] < lo || country.Price[c] > hi {
				violations = append(violations, simerr.Invariant("price out of bounds", map[string]any{
					"country": country.ID, "commodity": c.String(), "value": country.Price[c], "lo": lo, "hi": hi,
				}))
				if country.Price[c] < lo {
					country.Price[c] = lo
				} else {
					country.Price[c] = hi
				}
			}
		}
		if country.Debt < 0 {
			violations = append(violations, simerr.Invariant("negative debt", map[string]any{
				"country": country.ID, "value": country.Debt,
			}))
			country.Debt = 0
		}
		if country.Legitimacy < 0 || country.Legitimacy > 100 {
			violations = append(violations, simerr.Invariant("legitimacy out of range", map[string]any{
				"country": country.ID, "value": country.Legitimacy,
			}))
			country.Legitimacy = clamp(country.Legitimacy, 0, 100)
		}
		if country.Corruption < 0 || country.Corruption > 1 {
			violations = append(violations, simerr.Invariant("corruption out of range", map[string]any{
				"country": country.ID, "value": country.Corruption,
			}))
			country.Corruption = clamp(country.Corruption, 0, 1)
		}
	}

	for ci := range s.Countries {
		country := &s.Countries[ci]
		factions := s.FactionsOf(country.ID)
		if len(factions) == 0 {
			continue
		}
		sum := 0.0
		for _, f := range factions {
			sum += f.PowerShare
		}
		if math.Abs(sum-1) > 1e-9 {
			violations = append(violations, simerr.Invariant("faction power shares do not sum to 1", map[string]any{
				"country": country.ID, "sum": sum,
			}))
			if sum > 0 {
				for _, f := range factions {
					f.PowerShare /= sum
				}
			}
		}
	}

	for di := range s.Deposits {
		d := &s.Deposits[di]
		if d.RemainingReserves > d.TotalReserves {
			violations = append(violations, simerr.Invariant("remaining reserves exceed total", map[string]any{
				"deposit": d.ID, "remaining": d.RemainingReserves, "total": d.TotalReserves,
			}))
			d.RemainingReserves = d.TotalReserves
		}
		if d.RemainingReserves < 0 {
			violations = append(violations, simerr.Invariant("negative remaining reserves", map[string]any{
				"deposit": d.ID, "value": d.RemainingReserves,
			}))
			d.RemainingReserves = 0
		}
	}

	return violations
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
