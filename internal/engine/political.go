// Faction satisfaction, red lines, legitimacy convergence, power-share
// dynamics, and unrest, computed for national factions with explicit
// red-line predicates.
package engine

import (
	"github.com/talgya/econsim/internal/worldstate"
)

const factionPowerFloor = 0.01

// axisUtility sums a faction's preference-weighted utility across the
// policy/outcome axes corporate tax, income tax, welfare spending, defense
// spending, unemployment, corruption, and GDP growth. The TradeOpenness and
// WageGrowth weights are not read; no prior-wage state is tracked to
// derive wage growth.
func axisUtility(country *worldstate.Country, weights worldstate.PreferenceWeights) float64 {
	u := 0.0
	u += weights.CorporateTax * (0.20 - country.TaxRateCorporate) * 100
	u += weights.IncomeTax * (0.20 - country.TaxRateIncome) * 100
	u += weights.WelfareSpending * (country.SpendingShares.Welfare - 0.10) * 100
	u += weights.MilitarySpending * (country.SpendingShares.Defense - 0.10) * 100
	u += weights.LowUnemployment * (0.05 - country.Unemployment()) * 200
	u += weights.LowCorruption * (0.2 - country.Corruption) * 100
	u += weights.GDPGrowth * country.GDPGrowth() * 100
	return u
}

// redLineViolated evaluates a faction's red-line predicate against current
// country state. importedFoodShare is the Agriculture
// commodity's imported fraction of total supply, supplied by the caller
// (the trade subsystem knows import volumes; this subsystem does not).
func redLineViolated(rl worldstate.RedLine, country *worldstate.Country, importedFoodShare float64) bool {
	switch rl.Tag {
	case worldstate.RedLineNone:
		return false
	case worldstate.RedLineCorporateTaxAbove:
		return country.TaxRateCorporate > rl.Threshold
	case worldstate.RedLineUnemploymentAbove:
		return country.Unemployment() > rl.Threshold
	case worldstate.RedLineDefenseSpendingBelow:
		return country.SpendingShares.Defense < rl.Threshold
	case worldstate.RedLineCorruptionAbove:
		return country.Corruption > rl.Threshold
	case worldstate.RedLineFoodImportsAbove:
		return importedFoodShare > rl.Threshold
	case worldstate.RedLineDefenseBudgetCutAbove:
		return false // requires a prior-tick defense budget snapshot; not yet tracked
	default:
		return false
	}
}

// legitimacyPenalty returns the one-off legitimacy hit on a red-line's
// rising edge, scaled by the faction's power share.
func legitimacyPenalty(power float64) float64 {
	switch {
	case power >= 0.5:
		return 20
	case power >= 0.3:
		return 10
	default:
		return 0
	}
}

// RunPolitical executes the political subsystem for one country: faction
// satisfaction, red-line checks, legitimacy convergence, power-share
// dynamics, and unrest. importedFoodShare is the Agriculture red-line
// input (0 if unknown).
func RunPolitical(s *worldstate.State, countryID worldstate.CountryID, importedFoodShare float64) error {
	country, err := s.Country(countryID)
	if err != nil {
		return err
	}

	factions := s.FactionsOf(countryID)

	weightedSum, powerSum := 0.0, 0.0
	for _, f := range factions {
		satisfaction := clamp(f.BaseSatisfaction+axisUtility(country, f.Preferences), 0, 100)

		violated := redLineViolated(f.RedLine, country, importedFoodShare)
		if violated && !f.RedLine.Violated {
			satisfaction = clamp(satisfaction-f.RedLine.Penalty, 0, 100)
			country.Legitimacy = clamp(country.Legitimacy-legitimacyPenalty(f.PowerShare), 0, 100)
		}
		f.RedLine.Violated = violated

		f.CurrentSatisfaction = satisfaction
		weightedSum += f.PowerShare * satisfaction
		powerSum += f.PowerShare
	}

	avgSatisfaction := 50.0
	if powerSum > 0 {
		avgSatisfaction = weightedSum / powerSum
	}

	lambda := s.Config.LegitimacyConvergence
	country.Legitimacy = clamp(country.Legitimacy+lambda*(avgSatisfaction-country.Legitimacy), 0, 100)

	mu := s.Config.FactionPowerMu
	newPowerSum := 0.0
	for _, f := range factions {
		f.PowerShare = maxf(factionPowerFloor, f.PowerShare+mu*f.PowerShare*(f.CurrentSatisfaction-avgSatisfaction)/100)
		newPowerSum += f.PowerShare
	}
	if newPowerSum > 0 {
		for _, f := range factions {
			f.PowerShare /= newPowerSum
		}
	}

	updateUnrest(s, countryID, country)
	return nil
}

// updateUnrest recomputes every region's unrest and the country-level
// average.
func updateUnrest(s *worldstate.State, countryID worldstate.CountryID, country *worldstate.Country) {
	regions := s.RegionsOf(countryID)
	if len(regions) == 0 {
		return
	}
	total := 0.0
	for _, r := range regions {
		unemployment := 0.0
		if r.LaborForce > 0 {
			unemployment = maxf(0, 1-r.Employed/r.LaborForce)
		}
		r.Unrest = worldstate.RegionUnrest(unemployment, r.FoodInsecurity, r.Inequality, country.Corruption)
		total += r.Unrest
	}
	country.AvgUnrest = total / float64(len(regions))
}

// Stability returns the composite stability score.
func Stability(country *worldstate.Country) float64 {
	return 0.6*country.Legitimacy + 0.4*(100-country.AvgUnrest)
}

// AtRisk reports the instability flag.
func AtRisk(country *worldstate.Country) bool {
	return country.Legitimacy < 30 || country.AvgUnrest > 70
}
