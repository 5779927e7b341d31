package scenario

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/go-playground/validator/v10"

	"github.com/talgya/econsim/internal/commodity"
	"github.com/talgya/econsim/internal/config"
	"github.com/talgya/econsim/internal/simerr"
	"github.com/talgya/econsim/internal/worldstate"
)

// Load decodes, validates, and materializes a scenario document into a
// fresh worldstate.State. Every failure is a SchemaError: array length
// mismatches, unknown commodity/red-line tags, and duplicate country codes
// all abort before tick 0.
func Load(r io.Reader, cfg config.Config) (*worldstate.State, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, simerr.Schema("failed to read scenario", map[string]any{"error": err.Error()})
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, simerr.Schema("malformed scenario document", map[string]any{"error": err.Error()})
	}

	v := validator.New()
	if err := v.Struct(doc); err != nil {
		return nil, simerr.Schema("scenario failed structural validation", map[string]any{"error": err.Error()})
	}

	if err := requireLenK("priceSensitivities", doc.PriceSensitivities); err != nil {
		return nil, err
	}
	if err := requireLenK("laborCoefficients", doc.LaborCoefficients); err != nil {
		return nil, err
	}
	if err := requireLenK("spoilageRates", doc.SpoilageRates); err != nil {
		return nil, err
	}

	st := worldstate.New(cfg, doc.RandomSeed, doc.StartYear)
	st.LaborCoefficients = toArray(doc.LaborCoefficients)
	st.PriceSensitivities = toArray(doc.PriceSensitivities)
	st.SpoilageRates = toArray(doc.SpoilageRates)

	seenCodes := make(map[string]bool, len(doc.Countries))

	for ci, cd := range doc.Countries {
		if seenCodes[cd.Code] {
			return nil, simerr.Schema("duplicate country code", map[string]any{"code": cd.Code})
		}
		seenCodes[cd.Code] = true

		if err := requireLenK(fmt.Sprintf("countries[%d].importPropensity", ci), cd.ImportPropensity); err != nil {
			return nil, err
		}
		if err := requireLenK(fmt.Sprintf("countries[%d].exportPropensity", ci), cd.ExportPropensity); err != nil {
			return nil, err
		}
		if err := requireLenK(fmt.Sprintf("countries[%d].initialPrices", ci), cd.InitialPrices); err != nil {
			return nil, err
		}
		if err := requireLenK(fmt.Sprintf("countries[%d].basketWeights", ci), cd.BasketWeights); err != nil {
			return nil, err
		}
		if len(cd.TechnicalCoefficients) != commodity.Count*commodity.Count {
			return nil, simerr.Schema("technical coefficient matrix has wrong length", map[string]any{
				"country": cd.Code, "length": len(cd.TechnicalCoefficients), "expected": commodity.Count * commodity.Count,
			})
		}

		basketWeights := toArray(cd.BasketWeights)
		basketTotal := 0.0
		for _, w := range basketWeights {
			basketTotal += w
		}
		if basketTotal > 0 {
			for i := range basketWeights {
				basketWeights[i] /= basketTotal
			}
		}

		countryID := worldstate.CountryID(len(st.Countries))
		country := worldstate.Country{
			ID:                countryID,
			Code:              cd.Code,
			Name:              cd.Name,
			GDP:               cd.InitialGDP,
			PrevGDP:           cd.InitialGDP,
			CPI:               1,
			CPIYearAgo:        1,
			LaborForce:        cd.LaborForce,
			Debt:              cd.Debt,
			BaseInterestRate:  doc.BaseInterestRate,
			EffectiveInterest: doc.BaseInterestRate,
			TaxRateIncome:     cd.TaxRateIncome,
			TaxRateCorporate:  cd.TaxRateCorporate,
			TaxRateVAT:        cd.TaxRateVAT,
			Legitimacy:        70,
			ImportPropensity:  toArray(cd.ImportPropensity),
			ExportPropensity:  toArray(cd.ExportPropensity),
			Price:             toArray(cd.InitialPrices),
			DisplayPrice:      toArray(cd.InitialPrices),
			InitialPrice:      toArray(cd.InitialPrices),
			BasketWeights:     basketWeights,
		}

		matrix, ok := worldstate.NewMatrixFromRowMajor(cd.TechnicalCoefficients)
		if !ok {
			return nil, simerr.Schema("technical coefficient matrix has wrong length", map[string]any{"country": cd.Code})
		}

		for ri, rd := range cd.Regions {
			if err := requireLenK(fmt.Sprintf("countries[%d].regions[%d].initialCapacities", ci, ri), rd.InitialCapacities); err != nil {
				return nil, err
			}

			regionID := worldstate.RegionID(len(st.Regions))
			region := worldstate.Region{
				ID:          regionID,
				CountryID:   countryID,
				Name:        rd.Name,
				Population:  rd.Population,
				LaborForce:  rd.LaborForce,
				InfraFactor: rd.InfraFactor,
			}
			for _, c := range commodity.All {
				region.Sectors[c] = worldstate.Sector{
					Capacity:     rd.InitialCapacities[c],
					LaborCoeff:   st.LaborCoefficients[c],
					Price:        cd.InitialPrices[c],
					InitialPrice: cd.InitialPrices[c],
					Efficiency:   1,
				}
			}

			for _, dd := range rd.Deposits {
				tag, ok := commodity.Parse(dd.Resource)
				if !ok {
					return nil, simerr.Schema("unknown commodity tag in deposit", map[string]any{"resource": dd.Resource})
				}
				discovery, ok := parseDiscoveryState(dd.DiscoveryState)
				if !ok {
					return nil, simerr.Schema("unknown discovery state", map[string]any{"state": dd.DiscoveryState})
				}

				depositID := worldstate.DepositID(len(st.Deposits))
				st.Deposits = append(st.Deposits, worldstate.ResourceDeposit{
					ID:                depositID,
					RegionID:          regionID,
					Resource:          tag,
					Subtype:           dd.Subtype,
					TotalReserves:     dd.TotalReserves,
					RemainingReserves: dd.TotalReserves,
					BaseYield:         dd.BaseYield,
					Difficulty:        dd.Difficulty,
					Discovery:         discovery,
				})
				region.DepositIDs = append(region.DepositIDs, depositID)

				facilityID := worldstate.ExtractionFacilityID(len(st.Extraction))
				st.Extraction = append(st.Extraction, worldstate.ExtractionFacility{
					ID:              facilityID,
					RegionID:        regionID,
					DepositID:       depositID,
					Level:           1,
					Condition:       1,
					TechModifier:    1,
					WorkersRequired: 1,
				})
				region.ExtractionFacilityIDs = append(region.ExtractionFacilityIDs, facilityID)
			}

			shares := worldstate.DefaultWealthShares
			if len(rd.WealthShares) == 5 {
				copy(shares[:], rd.WealthShares)
			}
			for _, cohort := range worldstate.SpawnCohorts(&region, shares) {
				cohort.ID = worldstate.CohortID(len(st.Cohorts))
				st.Cohorts = append(st.Cohorts, cohort)
				region.CohortIDs = append(region.CohortIDs, cohort.ID)
			}

			st.Regions = append(st.Regions, region)
			country.RegionIDs = append(country.RegionIDs, regionID)
		}

		for fi, fd := range cd.Factions {
			redLineTag, ok := parseRedLineTag(fd.RedLineTag)
			if !ok {
				return nil, simerr.Schema(fmt.Sprintf("unknown red line tag at countries[%d].factions[%d]", ci, fi),
					map[string]any{"tag": fd.RedLineTag})
			}

			factionID := worldstate.FactionID(len(st.Factions))
			st.Factions = append(st.Factions, worldstate.Faction{
				ID:                  factionID,
				CountryID:           countryID,
				Name:                fd.Name,
				PowerShare:          fd.BasePower,
				BaseSatisfaction:    fd.BaseSatisfaction,
				CurrentSatisfaction: fd.BaseSatisfaction,
				Preferences: worldstate.PreferenceWeights{
					CorporateTax:     fd.Preferences.CorporateTax,
					IncomeTax:        fd.Preferences.IncomeTax,
					WelfareSpending:  fd.Preferences.WelfareSpending,
					MilitarySpending: fd.Preferences.MilitarySpending,
					TradeOpenness:    fd.Preferences.TradeOpenness,
					GDPGrowth:        fd.Preferences.GDPGrowth,
					LowUnemployment:  fd.Preferences.LowUnemployment,
					WageGrowth:       fd.Preferences.WageGrowth,
					LowCorruption:    fd.Preferences.LowCorruption,
				},
				RedLine: worldstate.RedLine{
					Tag:       redLineTag,
					Threshold: fd.RedLineThreshold,
				},
			})
			country.FactionIDs = append(country.FactionIDs, factionID)
		}

		st.Countries = append(st.Countries, country)
		st.Matrices = append(st.Matrices, matrix)
	}

	return st, nil
}

func requireLenK(field string, values []float64) error {
	if len(values) != commodity.Count {
		return simerr.Schema("array field has wrong length", map[string]any{
			"field": field, "length": len(values), "expected": commodity.Count,
		})
	}
	return nil
}

func toArray(values []float64) commodity.Array {
	var a commodity.Array
	copy(a[:], values)
	return a
}

func parseDiscoveryState(s string) (worldstate.DiscoveryState, bool) {
	switch s {
	case "", "unknown":
		return worldstate.Unknown, true
	case "surveyed":
		return worldstate.Surveyed, true
	case "proven":
		return worldstate.Proven, true
	default:
		return 0, false
	}
}

func parseRedLineTag(s string) (worldstate.RedLineType, bool) {
	switch s {
	case "", "none":
		return worldstate.RedLineNone, true
	case "corporateTaxAbove":
		return worldstate.RedLineCorporateTaxAbove, true
	case "unemploymentAbove":
		return worldstate.RedLineUnemploymentAbove, true
	case "defenseSpendingBelow":
		return worldstate.RedLineDefenseSpendingBelow, true
	case "corruptionAbove":
		return worldstate.RedLineCorruptionAbove, true
	case "foodImportsAbove":
		return worldstate.RedLineFoodImportsAbove, true
	case "defenseBudgetCutAbove":
		return worldstate.RedLineDefenseBudgetCutAbove, true
	default:
		return 0, false
	}
}
