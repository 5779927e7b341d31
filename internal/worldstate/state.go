package worldstate

import (
	"github.com/talgya/econsim/internal/commodity"
	"github.com/talgya/econsim/internal/config"
	"github.com/talgya/econsim/internal/rng"
	"github.com/talgya/econsim/internal/simerr"
	"github.com/talgya/econsim/internal/world"
)

// State is the single mutable world.
// Every entity kind lives in a dense slice indexed by its id; all
// cross-references are ids, never pointers.
type State struct {
	Tick         uint64
	TicksPerYear uint64
	StartYear    int
	Seed         int64
	// RNGState is the run's current RNG state: reseeded every tick as
	// Seed XOR Tick. Phase-scoped draws (Stream) derive their own stream
	// from (Seed, Tick, phase) rather than from this value directly; it is
	// tracked on State mainly so snapshots capture it for inspection.
	RNGState int64

	Config config.Config

	Countries   []Country
	Regions     []Region
	Factions    []Faction
	Relations   []TradeRelation
	Deposits    []ResourceDeposit
	Extraction  []ExtractionFacility
	Manufacturing []ManufacturingFacility
	Cohorts     []PopulationCohort
	Military    []MilitaryFormation

	Matrices []Matrix // parallel to Countries, indexed by CountryID

	LaborCoefficients  commodity.Array // process-wide, length K
	PriceSensitivities commodity.Array
	SpoilageRates      commodity.Array

	WorldExtent world.Extent

	Diagnostics simerr.Diagnostics
}

// New returns an empty State ready for a scenario to populate.
func New(cfg config.Config, seed int64, startYear int) *State {
	return &State{
		TicksPerYear: cfg.TicksPerYear,
		StartYear:    startYear,
		Seed:         seed,
		RNGState:     seed,
		Config:       cfg,
	}
}

// Stream returns a deterministic RNG stream scoped to the current tick and
// the given phase. Two states with identical Seed and Tick always produce
// identical draws for the same phase.
func (s *State) Stream(phase rng.Phase) *rng.Stream {
	return rng.NewStream(s.Seed, s.Tick, phase)
}

// Reseed updates RNGState for the tick just completed, per the scheduler's
// final step: seed XOR tick.
func (s *State) Reseed() {
	s.RNGState = s.Seed ^ int64(s.Tick)
}

// Country returns a pointer to the country with the given id, or a
// LookupError if out of range.
func (s *State) Country(id CountryID) (*Country, error) {
	if int(id) < 0 || int(id) >= len(s.Countries) {
		return nil, simerr.Lookup("country id out of range", map[string]any{"id": id})
	}
	return &s.Countries[id], nil
}

// Region returns a pointer to the region with the given id, or a
// LookupError if out of range.
func (s *State) Region(id RegionID) (*Region, error) {
	if int(id) < 0 || int(id) >= len(s.Regions) {
		return nil, simerr.Lookup("region id out of range", map[string]any{"id": id})
	}
	return &s.Regions[id], nil
}

// Faction returns a pointer to the faction with the given id, or a
// LookupError if out of range.
func (s *State) Faction(id FactionID) (*Faction, error) {
	if int(id) < 0 || int(id) >= len(s.Factions) {
		return nil, simerr.Lookup("faction id out of range", map[string]any{"id": id})
	}
	return &s.Factions[id], nil
}

// Matrix returns a pointer to a country's technical coefficient matrix.
func (s *State) Matrix(id CountryID) (*Matrix, error) {
	if int(id) < 0 || int(id) >= len(s.Matrices) {
		return nil, simerr.Lookup("country id out of range for matrix lookup", map[string]any{"id": id})
	}
	return &s.Matrices[id], nil
}

// RegionsOf returns every region belonging to a country, in ascending id
// order (dense id order is the deterministic iteration order the
// reproducibility guarantee requires).
func (s *State) RegionsOf(countryID CountryID) []*Region {
	var out []*Region
	for i := range s.Regions {
		if s.Regions[i].CountryID == countryID {
			out = append(out, &s.Regions[i])
		}
	}
	return out
}

// FactionsOf returns every faction belonging to a country, in ascending
// id order.
func (s *State) FactionsOf(countryID CountryID) []*Faction {
	var out []*Faction
	for i := range s.Factions {
		if s.Factions[i].CountryID == countryID {
			out = append(out, &s.Factions[i])
		}
	}
	return out
}

// CohortsOf returns every population cohort belonging to a region.
func (s *State) CohortsOf(regionID RegionID) []*PopulationCohort {
	var out []*PopulationCohort
	for i := range s.Cohorts {
		if s.Cohorts[i].RegionID == regionID {
			out = append(out, &s.Cohorts[i])
		}
	}
	return out
}

// ExtractionFacilitiesOf returns every extraction facility in a region.
func (s *State) ExtractionFacilitiesOf(regionID RegionID) []*ExtractionFacility {
	var out []*ExtractionFacility
	for i := range s.Extraction {
		if s.Extraction[i].RegionID == regionID {
			out = append(out, &s.Extraction[i])
		}
	}
	return out
}

// ManufacturingFacilitiesOf returns every manufacturing facility in a
// region.
func (s *State) ManufacturingFacilitiesOf(regionID RegionID) []*ManufacturingFacility {
	var out []*ManufacturingFacility
	for i := range s.Manufacturing {
		if s.Manufacturing[i].RegionID == regionID {
			out = append(out, &s.Manufacturing[i])
		}
	}
	return out
}

// DepositByID returns the deposit with the given id, or a LookupError.
func (s *State) DepositByID(id DepositID) (*ResourceDeposit, error) {
	if int(id) < 0 || int(id) >= len(s.Deposits) {
		return nil, simerr.Lookup("deposit id out of range", map[string]any{"id": id})
	}
	return &s.Deposits[id], nil
}

// RelationsFrom returns every trade relation where the given country is
// the exporter, in insertion order (the deterministic trade iteration
// order the scheduler requires).
func (s *State) RelationsFrom(from CountryID) []*TradeRelation {
	var out []*TradeRelation
	for i := range s.Relations {
		if s.Relations[i].From == from {
			out = append(out, &s.Relations[i])
		}
	}
	return out
}
