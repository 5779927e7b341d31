package mrio

import "github.com/talgya/econsim/internal/commodity"

// SectorMapping assigns each ISIC Rev 4 sector code to one of the
// simulation's twelve commodities, a fixed many-to-one mapping for
// aggregating the OECD ICIO's 50 ISIC sectors down to K=12.
type SectorMapping map[string]commodity.Tag

// DefaultSectorMapping is the simulation's ISIC-to-commodity aggregation
// table. ISIC codes follow the OECD ICIO convention (e.g. "A01" crop and
// animal production, "B05" mining of coal). Sectors not listed fall back
// to Services, the catch-all tertiary aggregate.
func DefaultSectorMapping() SectorMapping {
	return SectorMapping{
		"A01": commodity.Agriculture,
		"A02": commodity.Agriculture,
		"A03": commodity.Agriculture,
		"B05": commodity.Coal,
		"B06": commodity.Petroleum,
		"B07": commodity.RareEarths,
		"B08": commodity.Ore,
		"B09": commodity.Ore,
		"C19": commodity.Petroleum,
		"C20": commodity.IndustrialGoods,
		"C24": commodity.Ore,
		"C25": commodity.IndustrialGoods,
		"C26": commodity.Electronics,
		"C27": commodity.Electronics,
		"C28": commodity.IndustrialGoods,
		"C29": commodity.IndustrialGoods,
		"C30": commodity.IndustrialGoods,
		"C25X": commodity.MilitaryGoods,
		"D35": commodity.Electricity,
		"C10T12": commodity.ConsumerGoods,
		"C13T15": commodity.ConsumerGoods,
		"C31T33": commodity.ConsumerGoods,
	}
}

// Resolve maps an ISIC sector suffix (the part of a COUNTRY_SECTOR row
// label after the underscore) to a commodity, defaulting to Services.
func (m SectorMapping) Resolve(sectorCode string) commodity.Tag {
	if tag, ok := m[sectorCode]; ok {
		return tag
	}
	return commodity.Services
}
