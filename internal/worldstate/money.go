// Package worldstate is the single mutable world: dense arenas of every
// entity kind, indexed by compact integer id. All cross-entity references
// are ids, never pointers, which sidesteps country/region/faction/trade-
// relation cycles and gives O(1) lookup plus contiguous iteration for the
// hot per-tick loops.
package worldstate

// Cents represents a monetary amount denominated in the "cents" minor unit.
// It is carried as float64 rather than int64: every monetary equation (tax
// revenue, wage adjustment, debt interest, GDP) is continuous-valued, with
// no rounding rule needed for intermediate results. The "cents" scale is a
// convention for callers (format with 2 decimals of a major unit, or round
// before displaying), not an enforced integer type. See DESIGN.md.
type Cents = float64
