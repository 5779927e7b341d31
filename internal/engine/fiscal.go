// Tax collection, spending, debt, and risk-premium interest. Runs every
// GatingPeriodTicks ticks: rate-times-taxable-base revenue across the four
// national revenue streams (income, corporate, VAT, tariff), with no
// tax-free threshold applied.
package engine

import (
	"github.com/talgya/econsim/internal/simerr"
	"github.com/talgya/econsim/internal/worldstate"
)

// deltaFiscalYear is Δt: one gated fiscal tick still represents 1/52 of a
// simulated year of flow (the gating period changes how often fiscal runs,
// not the per-tick flow scale).
const deltaFiscalYear = 1.0 / 52.0

// RunFiscal executes the fiscal subsystem for one country: tax revenue,
// spending, budget balance, debt, interest rate, and GDP update.
func RunFiscal(s *worldstate.State, countryID worldstate.CountryID) error {
	country, err := s.Country(countryID)
	if err != nil {
		return err
	}

	incomeTax := country.TaxRateIncome * country.WagesPaid

	var corporateBase float64
	var gdpAnnualized float64
	for _, region := range s.RegionsOf(countryID) {
		for c := range region.Sectors {
			sector := &region.Sectors[c]
			wageBill := region.SectorWage[c] * sector.LaborEmployed
			net := sector.ValueAdded - wageBill
			if net > 0 {
				corporateBase += net
			}
			gdpAnnualized += sector.ValueAdded
		}
	}
	corporateTax := country.TaxRateCorporate * corporateBase

	vatBase := vatBaseForCountry(s, countryID)
	vatTax := country.TaxRateVAT * vatBase

	revenue := incomeTax + corporateTax + vatTax + country.TariffRevenueThisTick
	if nonFinite(revenue) {
		return simerr.Numeric("non-finite tax revenue", map[string]any{"country": country.ID})
	}

	gdpAnnualized *= float64(s.TicksPerYear)
	country.PrevGDP = country.GDP
	country.GDP = gdpAnnualized

	base := 0.35 * country.GDP * deltaFiscalYear
	interest := country.EffectiveInterest * country.Debt * deltaFiscalYear
	totalSpending := base + interest
	discretionary := maxf(0, totalSpending-interest)
	country.SpendingByCategory = allocateSpendingShares(country.SpendingShares, discretionary)

	balance := revenue - totalSpending
	country.Debt = maxf(0, country.Debt-balance)

	kappa := s.Config.FiscalInterestKappa
	dThresh := s.Config.FiscalDebtThreshold
	premium := maxf(0, kappa*(country.DebtToGDP()-dThresh))
	country.EffectiveInterest = country.BaseInterestRate + premium

	country.TaxRevenueThisTick = revenue
	country.SpendingThisTick = totalSpending

	return nil
}

// vatBaseForCountry sums cohort income*(1-savingsRate) across every
// region belonging to the country, the VAT revenue base.
func vatBaseForCountry(s *worldstate.State, countryID worldstate.CountryID) float64 {
	base := 0.0
	for _, region := range s.RegionsOf(countryID) {
		for _, cohort := range s.CohortsOf(region.ID) {
			base += cohort.IncomeThisTick * (1 - cohort.SavingsRate)
		}
	}
	return base
}

// allocateSpendingShares splits discretionary spending by the country's
// category shares. The shares are policy knobs (not required to sum to 1);
// the split is recorded on Country.SpendingByCategory so snapshots and
// reporting surfaces can break spending down by category.
func allocateSpendingShares(shares worldstate.SpendingShares, discretionary float64) worldstate.SpendingShares {
	return worldstate.SpendingShares{
		Welfare:        shares.Welfare * discretionary,
		Education:      shares.Education * discretionary,
		Defense:        shares.Defense * discretionary,
		Infrastructure: shares.Infrastructure * discretionary,
		Healthcare:     shares.Healthcare * discretionary,
	}
}
