package worldstate

import "github.com/talgya/econsim/internal/commodity"

// TradeRelation is a directed ordered pair (from, to): from is the exporter,
// to is the importer.
type TradeRelation struct {
	From CountryID
	To   CountryID

	// Per-commodity arrays, indexed by commodity.Tag.
	Tariff           commodity.Array // [0,1], imposed by `to` on imports from `from`
	BaseVolume       commodity.Array // loaded from MRIO
	CurrentVolume    commodity.Array // last tick's resolved flow

	DiplomaticScore   float64 // [-100, 100]
	Reliability       float64 // [0, 1]
	DistancePenalty   float64
	TreatyBonus       float64
	SanctionSeverity  float64 // [0, 1], 1 = full embargo
	TransportCostUnit float64
}
