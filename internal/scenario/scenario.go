// Package scenario defines the JSON scenario wire format and loads it
// into a worldstate.State: a fully data-driven scenario document validated
// with github.com/go-playground/validator/v10, the way internal/config
// validates its own fields.
package scenario

// Document is the top-level scenario schema. Unknown
// fields are rejected by the decoder (see Load).
type Document struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Author      string `json:"author"`
	Version     string `json:"version" validate:"required"`

	StartYear  int   `json:"startYear" validate:"required"`
	RandomSeed int64 `json:"randomSeed"`

	PriceSensitivities []float64 `json:"priceSensitivities" validate:"required"`
	LaborCoefficients  []float64 `json:"laborCoefficients" validate:"required"`
	SpoilageRates      []float64 `json:"spoilageRates" validate:"required"`

	BaseInterestRate float64 `json:"baseInterestRate"`

	Countries []CountryDoc `json:"countries" validate:"required,dive"`
}

// CountryDoc is one country entry in the scenario document.
type CountryDoc struct {
	Code string `json:"code" validate:"required"`
	Name string `json:"name" validate:"required"`

	InitialGDP float64 `json:"initialGDP"`
	Debt       float64 `json:"debt"`
	LaborForce float64 `json:"laborForce"`
	Population float64 `json:"population"`

	TaxRateIncome    float64 `json:"taxRateIncome"`
	TaxRateCorporate float64 `json:"taxRateCorporate"`
	TaxRateVAT       float64 `json:"taxRateVAT"`

	ImportPropensity []float64 `json:"importPropensity" validate:"required"`
	ExportPropensity []float64 `json:"exportPropensity" validate:"required"`
	InitialPrices    []float64 `json:"initialPrices" validate:"required"`
	BasketWeights    []float64 `json:"basketWeights" validate:"required"`

	// TechnicalCoefficients is the flattened K×K matrix, entry [i*K+j]
	// giving the input of commodity i required per unit output of commodity j.
	TechnicalCoefficients []float64 `json:"technicalCoefficients" validate:"required"`

	Regions  []RegionDoc  `json:"regions" validate:"required,dive"`
	Factions []FactionDoc `json:"factions" validate:"dive"`
}

// RegionDoc is one region entry under a country.
type RegionDoc struct {
	Name              string      `json:"name" validate:"required"`
	Population        float64     `json:"population"`
	LaborForce        float64     `json:"laborForce"`
	InfraFactor       float64     `json:"infraFactor"`
	InitialCapacities []float64   `json:"initialCapacities" validate:"required"`
	Deposits          []DepositDoc `json:"deposits"`

	// WealthShares splits Population across the five worldstate.WealthLevel
	// buckets (Subsistence..Rich), in that order, at scenario load. Must sum
	// to 1 when given; omitted entirely falls back to
	// worldstate.DefaultWealthShares.
	WealthShares []float64 `json:"wealthShares" validate:"omitempty,len=5"`
}

// DepositDoc is one resource deposit entry under a region.
type DepositDoc struct {
	Subtype          string  `json:"subtype"`
	Resource         string  `json:"resource" validate:"required"`
	TotalReserves    float64 `json:"totalReserves"`
	BaseYield        float64 `json:"baseYield"`
	Difficulty       float64 `json:"difficulty"`
	DiscoveryState   string  `json:"discoveryState"`
}

// FactionDoc is one faction entry under a country.
type FactionDoc struct {
	Name                string             `json:"name" validate:"required"`
	BasePower           float64            `json:"basePower"`
	BaseSatisfaction    float64            `json:"baseSatisfaction"`
	RedLineTag          string             `json:"redLineTag"`
	RedLineThreshold    float64            `json:"redLineThreshold"`
	Preferences         PreferenceWeightsDoc `json:"preferences"`
}

// PreferenceWeightsDoc mirrors worldstate.PreferenceWeights in wire form.
type PreferenceWeightsDoc struct {
	CorporateTax    float64 `json:"corporateTax"`
	IncomeTax       float64 `json:"incomeTax"`
	WelfareSpending float64 `json:"welfareSpending"`
	MilitarySpending float64 `json:"militarySpending"`
	TradeOpenness   float64 `json:"tradeOpenness"`
	GDPGrowth       float64 `json:"gdpGrowth"`
	LowUnemployment float64 `json:"lowUnemployment"`
	WageGrowth      float64 `json:"wageGrowth"`
	LowCorruption   float64 `json:"lowCorruption"`
}
