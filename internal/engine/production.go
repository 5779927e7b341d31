// Soft-Leontief production, input consumption, value added, and facility
// output. Runs as an aggregate-then-settle two-pass shape: compute every
// sector's output before any sector consumes its inputs, so consumption
// order within a tick never affects the result.
package engine

import (
	"github.com/talgya/econsim/internal/commodity"
	"github.com/talgya/econsim/internal/rng"
	"github.com/talgya/econsim/internal/simerr"
	"github.com/talgya/econsim/internal/worldstate"
)

const inputEpsilon = 1e-4

// RunProduction executes the production subsystem for a single country:
// for every region, compute each sector's output from current inventory
// (a single pass, so input consumption never influences same-tick output),
// then consume inputs, then run extraction and manufacturing facilities,
// then aggregate per-commodity supply.
func RunProduction(s *worldstate.State, countryID worldstate.CountryID) error {
	matrix, err := s.Matrix(countryID)
	if err != nil {
		return err
	}

	alpha := s.Config.SoftLeontiefAlpha

	for _, region := range s.RegionsOf(countryID) {
		var outputs commodity.Array

		// Pass 1: compute every sector's output from the inventory snapshot
		// at the start of the tick.
		for _, out := range commodity.All {
			sector := &region.Sectors[out]
			q := softLeontiefOutput(sector, region.Inventory, matrix, out, alpha, region.InfraFactor)
			outputs[out] = q
			sector.Output = q
		}

		// Pass 2: consume inputs, in commodity index order (stable,
		// deterministic).
		for _, out := range commodity.All {
			for _, in := range matrix.RequiredInputs(out) {
				coeff := matrix.Get(in, out)
				need := coeff * outputs[out]
				consumed := minf(need, region.Inventory[in])
				region.Inventory[in] -= consumed
			}
		}

		// Value added per sector: VA_s = output*P_s - sum_i A[i,s]*output*P_i.
		for _, out := range commodity.All {
			sector := &region.Sectors[out]
			revenue := sector.Output * sector.Price
			cost := 0.0
			for _, in := range matrix.RequiredInputs(out) {
				cost += matrix.Get(in, out) * sector.Output * region.Sectors[in].Price
			}
			sector.ValueAdded = revenue - cost
		}

		// Extraction facility output.
		var extracted commodity.Array
		for _, fac := range s.ExtractionFacilitiesOf(region.ID) {
			deposit, err := s.DepositByID(fac.DepositID)
			if err != nil {
				return err
			}
			out := extractionOutput(fac, deposit, region.InfraFactor)
			fac.OutputThisTick = out
			deposit.RemainingReserves -= out
			if deposit.RemainingReserves < 0 {
				deposit.RemainingReserves = 0
			}
			extracted[deposit.Resource] += out
		}

		// Manufacturing facility output.
		var manufactured commodity.Array
		for _, fac := range s.ManufacturingFacilitiesOf(region.ID) {
			out := manufacturingOutput(fac, region.Inventory, matrix, region.InfraFactor)
			fac.OutputThisTick = out
			manufactured[fac.OutputCommodity] += out
		}

		// Supply aggregation:
		// supply[c] = sector_output[c] + extraction[c] + manufacturing[c] + inventory_carried[c].
		for _, c := range commodity.All {
			region.Supply[c] = outputs[c] + extracted[c] + manufactured[c] + region.Inventory[c]
			if nonFinite(region.Supply[c]) {
				return simerr.Numeric("non-finite supply", map[string]any{
					"region": region.ID, "commodity": c.String(),
				})
			}
		}
	}

	return nil
}

// softLeontiefOutput computes one sector's output: capacity-constrained,
// labor-constrained, and input-constrained candidate quantities blended
// through an alpha-weighted min/mean, then scaled by efficiency and
// infrastructure.
func softLeontiefOutput(sector *worldstate.Sector, inventory commodity.Array, matrix *worldstate.Matrix, out commodity.Tag, alpha, infra float64) float64 {
	qCap := sector.Capacity

	qLab := qCap // labor coefficient 0 => no constraint
	if sector.LaborCoeff > 0 {
		qLab = sector.LaborEmployed / sector.LaborCoeff
	}

	inputs := matrix.RequiredInputs(out)
	sigmaMin, sigmaAvg := 1.0, 1.0
	if len(inputs) > 0 {
		sigmaMin = 1.0
		sum := 0.0
		for _, in := range inputs {
			coeff := matrix.Get(in, out)
			denom := coeff * qCap
			sigma := 1.0
			if denom > 0 {
				sigma = minf(1, inventory[in]/denom)
			}
			if sigma < sigmaMin {
				sigmaMin = sigma
			}
			sum += sigma
		}
		sigmaAvg = sum / float64(len(inputs))
	}
	qIn := qCap * (alpha*sigmaMin + (1-alpha)*sigmaAvg)

	q := minf(qCap, minf(qLab, qIn))
	output := q * infra * sector.Efficiency
	return maxf(0, output)
}

// extractionOutput computes one tick's extraction facility output.
func extractionOutput(fac *worldstate.ExtractionFacility, deposit *worldstate.ResourceDeposit, infra float64) float64 {
	if fac.Level == 0 || fac.UnderConstruction || deposit.Exhausted() {
		return 0
	}
	workforce := 1.0
	if fac.WorkersRequired > 0 {
		workforce = minf(1, fac.Workers/fac.WorkersRequired)
	}
	conditionFactor := sqrtClamped(fac.Condition)
	out := fac.BaseYield * float64(fac.Level) * workforce * conditionFactor * infra * fac.TechModifier
	return minf(out, deposit.RemainingReserves)
}

// manufacturingOutput computes one tick's manufacturing facility output
//: same formula as extraction but driven by
// base capacity per level and an input-satisfaction factor drawn from
// region inventory (no separate input accounting of its own).
func manufacturingOutput(fac *worldstate.ManufacturingFacility, inventory commodity.Array, matrix *worldstate.Matrix, infra float64) float64 {
	if fac.Level == 0 || fac.UnderConstruction {
		return 0
	}
	workforce := 1.0
	if fac.WorkersRequired > 0 {
		workforce = minf(1, fac.Workers/fac.WorkersRequired)
	}
	conditionFactor := sqrtClamped(fac.Condition)

	inputSat := 1.0
	inputs := matrix.RequiredInputs(fac.OutputCommodity)
	if len(inputs) > 0 {
		sum := 0.0
		baseCapacity := fac.BaseCapacityPerLevel * float64(fac.Level)
		for _, in := range inputs {
			coeff := matrix.Get(in, fac.OutputCommodity)
			denom := coeff * baseCapacity
			sigma := 1.0
			if denom > 0 {
				sigma = minf(1, inventory[in]/denom)
			}
			sum += sigma
		}
		inputSat = sum / float64(len(inputs))
	}

	out := fac.BaseCapacityPerLevel * float64(fac.Level) * workforce * conditionFactor * infra * fac.TechModifier * inputSat
	return maxf(0, out)
}

func sqrtClamped(v float64) float64 {
	if v <= 0 {
		return 0
	}
	return sqrt(v)
}

// DegradeFacilities applies one tick of condition decay/repair to every
// facility and ages military equipment. Maintenance crews don't always
// achieve full repair effectiveness, so maintenance satisfaction is drawn
// from the tick's facility-phase RNG stream rather than assumed perfect.
func DegradeFacilities(s *worldstate.State) {
	stream := s.Stream(rng.PhaseFacility)
	for i := range s.Extraction {
		f := &s.Extraction[i]
		f.Condition = worldstate.DegradeCondition(f.Condition, f.DegradationRate, stream.Float(), f.RepairRate)
	}
	for i := range s.Manufacturing {
		f := &s.Manufacturing[i]
		f.Condition = worldstate.DegradeCondition(f.Condition, f.DegradationRate, stream.Float(), f.RepairRate)
	}
	for i := range s.Military {
		s.Military[i].UpdateEquipment()
	}
}
