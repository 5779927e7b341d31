package mrio

import (
	"strings"

	"github.com/talgya/econsim/internal/commodity"
	"github.com/talgya/econsim/internal/worldstate"
)

// ComputeCountryMatrix builds one country's K×K technical coefficient
// matrix from the ICIO table: for every pair of ISIC
// sectors within the country, A[i,j] = Z[i,j]/X[j] (zero if X[j] = 0), then
// the 50 sectors are summed down into the 12 simulation commodities by
// mapping.
func ComputeCountryMatrix(t *Table, mapping SectorMapping, countryCode string) worldstate.Matrix {
	sectors := t.CountrySectors(countryCode)

	var outputByCommodity commodity.Array
	var aggregated [commodity.Count * commodity.Count]float64

	for _, j := range sectors {
		outputByCommodity[sectorCommodity(mapping, j)] += t.Output(j)
	}

	for _, i := range sectors {
		ci := sectorCommodity(mapping, i)
		for _, j := range sectors {
			cj := sectorCommodity(mapping, j)
			aggregated[int(ci)*commodity.Count+int(cj)] += t.Z(i, j)
		}
	}

	m := worldstate.NewMatrix()
	for ci := commodity.Tag(0); int(ci) < commodity.Count; ci++ {
		for cj := commodity.Tag(0); int(cj) < commodity.Count; cj++ {
			x := outputByCommodity[cj]
			if x <= 0 {
				continue
			}
			z := aggregated[int(ci)*commodity.Count+int(cj)]
			m.Set(ci, cj, z/x)
		}
	}
	return m
}

// sectorCommodity extracts the ISIC sector suffix from a COUNTRY_SECTOR
// row label and resolves it through the mapping.
func sectorCommodity(mapping SectorMapping, label string) commodity.Tag {
	parts := strings.SplitN(label, "_", 2)
	if len(parts) != 2 {
		return commodity.Services
	}
	return mapping.Resolve(parts[1])
}
