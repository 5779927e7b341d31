package worldstate

import "github.com/talgya/econsim/internal/commodity"

// CountryID is a dense, non-negative integer identifier assigned at
// scenario load.
type CountryID uint32

// Country holds a nation's economic, fiscal, trade, political, and military
// aggregates. Per-commodity arrays are always length K
// and indexed by commodity.Tag.
type Country struct {
	ID   CountryID
	Code string // ISO-like code, unique
	Name string

	// Economic aggregates.
	GDP         Cents // current tick, annualized
	PrevGDP     Cents
	CPI         float64 // current tick
	CPIYearAgo  float64 // value 52 ticks back
	LaborForce  float64
	Employed    float64
	WagesPaid   Cents // total wages paid this tick

	// Fiscal.
	Debt                Cents
	BaseInterestRate    float64
	EffectiveInterest   float64
	FXReserves          Cents
	TaxRateIncome       float64
	TaxRateCorporate    float64
	TaxRateVAT          float64
	TaxRevenueThisTick  Cents
	SpendingThisTick    Cents
	TariffRevenueThisTick Cents
	SpendingShares      SpendingShares
	SpendingByCategory  SpendingShares // this tick's discretionary spend, in Cents per category

	// Trade.
	TradeBalanceThisTick Cents
	ImportPropensity     commodity.Array
	ExportPropensity     commodity.Array

	// Political.
	Legitimacy   float64 // [0, 100]
	Corruption   float64 // [0, 1]
	AvgUnrest    float64 // [0, 100]
	WarWeariness float64
	AtWar        bool

	// Military (placeholder subsystem).
	MilitaryPower                float64
	MilitaryGoodsRequired         float64
	ProcurementSatisfaction       float64

	// Cross-references.
	RegionIDs  []RegionID
	FactionIDs []FactionID

	// Market state, per commodity.
	Price           commodity.Array
	DisplayPrice    commodity.Array
	InitialPrice    commodity.Array
	BasketWeights   commodity.Array // non-negative, normalized at load
}

// SpendingShares are policy knobs on government spending composition.
// Not required to sum to 1.
type SpendingShares struct {
	Welfare        float64
	Education      float64
	Defense        float64
	Infrastructure float64
	Healthcare     float64
}

// GDPGrowth returns the fractional change in GDP since the previous tick,
// or 0 if the previous GDP was non-positive.
func (c *Country) GDPGrowth() float64 {
	if c.PrevGDP <= 0 {
		return 0
	}
	return (c.GDP - c.PrevGDP) / c.PrevGDP
}

// Unemployment returns 1 - employed/laborForce, or 0 if the labor force is
// empty.
func (c *Country) Unemployment() float64 {
	if c.LaborForce <= 0 {
		return 0
	}
	u := 1 - c.Employed/c.LaborForce
	if u < 0 {
		return 0
	}
	return u
}

// DebtToGDP returns debt / GDP, or 0 if GDP is non-positive.
func (c *Country) DebtToGDP() float64 {
	if c.GDP <= 0 {
		return 0
	}
	return c.Debt / c.GDP
}

// DebtSustainable reports whether D/GDP is below the 1.5 sustainability
// cutoff.
func (c *Country) DebtSustainable() bool {
	return c.DebtToGDP() < 1.5
}

// AnnualInflation returns CPI / CPIYearAgo - 1, or 0 if CPIYearAgo is
// non-positive (e.g. during a country's first simulated year).
func (c *Country) AnnualInflation() float64 {
	if c.CPIYearAgo <= 0 {
		return 0
	}
	return c.CPI/c.CPIYearAgo - 1
}
