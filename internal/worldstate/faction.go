package worldstate

// FactionID is a dense, non-negative integer identifier assigned at
// scenario load.
type FactionID uint32

// RedLineType is a faction's veto policy threshold tag.
// The zero value, RedLineNone, means the faction has no red line.
type RedLineType uint8

const (
	RedLineNone RedLineType = iota
	RedLineCorporateTaxAbove
	RedLineUnemploymentAbove
	RedLineDefenseSpendingBelow
	RedLineCorruptionAbove
	RedLineFoodImportsAbove
	RedLineDefenseBudgetCutAbove
)

// PreferenceWeights are a faction's signed weights on each policy/outcome
// axis. Positive means the faction prefers higher utility on that axis.
type PreferenceWeights struct {
	CorporateTax     float64
	IncomeTax        float64
	WelfareSpending   float64
	MilitarySpending  float64
	TradeOpenness     float64
	GDPGrowth         float64
	LowUnemployment   float64
	WageGrowth        float64
	LowCorruption     float64
}

// RedLine is a faction's veto condition: if Tag != RedLineNone and the
// threshold is crossed, Violated becomes true and a penalty/legitimacy hit
// applies on the rising edge.
type RedLine struct {
	Tag       RedLineType
	Threshold float64
	Violated  bool
	Penalty   float64
}

// Faction is a political organization with satisfaction, power share, and
// policy preferences.
type Faction struct {
	ID        FactionID
	CountryID CountryID
	Name      string

	PowerShare float64 // [0.01, 1]; all factions in a country sum to 1

	BaseSatisfaction    float64 // [0, 100]
	CurrentSatisfaction float64 // [0, 100]

	Preferences PreferenceWeights
	RedLine     RedLine
}
