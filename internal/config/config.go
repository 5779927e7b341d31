// Package config holds the process-wide tunable parameters every subsystem
// reads from the simulation state. There is no package-level mutable state:
// a Config is built once (the CLI uses Default; scenario files and flags do
// not override it), validated, and threaded through SimulationState. Mirrors the validator
// wrapper pattern from the spacetraders example's infrastructure/config
// package, swapped from an HTTP-agent config to the simulation's own knobs.
package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Config collects every cross-subsystem coefficient the simulation reads.
// Defaults match the worked scenarios cited in DESIGN.md.
type Config struct {
	// SoftLeontiefAlpha is α, the bottleneck/average blend weight in the
	// soft-Leontief production function. Configurable in [0.6, 0.9].
	SoftLeontiefAlpha float64 `validate:"gte=0.6,lte=0.9"`

	// PriceMaxChange is δ_max, the per-tick excess-demand clamp, configurable
	// in (0, 1] (see DESIGN.md Open Questions for the default chosen).
	PriceMaxChange float64 `validate:"gt=0,lte=1"`

	// PriceDisplaySmoothing is β, the display-price EMA weight.
	PriceDisplaySmoothing float64 `validate:"gt=0,lte=1"`

	// TradeElasticity is γ, the default bilateral trade elasticity.
	TradeElasticity float64 `validate:"gt=0"`

	// WageTightness is ω, the labor wage-adjustment rate.
	WageTightness float64 `validate:"gte=0.01,lte=0.05"`

	// WageFloorCents is the minimum wage in integer minor units.
	WageFloorCents int64 `validate:"gte=0"`

	// LaborMobility is μ, the optional cross-sector labor mobility rate.
	LaborMobility float64 `validate:"gte=0,lte=0.1"`

	// LegitimacyConvergence is λ, the legitimacy EMA rate toward weighted
	// faction satisfaction.
	LegitimacyConvergence float64 `validate:"gte=0.05,lte=0.2"`

	// FactionPowerMu is μ, the faction power-share adjustment rate.
	FactionPowerMu float64 `validate:"gt=0"`

	// FiscalInterestKappa is κ, the slope of the debt/GDP risk premium added
	// to a country's base interest rate above FiscalDebtThreshold.
	FiscalInterestKappa float64 `validate:"gt=0"`

	// FiscalDebtThreshold is d_thresh, the debt/GDP ratio above which the
	// risk premium kicks in.
	FiscalDebtThreshold float64 `validate:"gt=0"`

	// GatingPeriodTicks is how often fiscal and political subsystems run
	// (tick mod GatingPeriodTicks == 0). Default 4.
	GatingPeriodTicks uint64 `validate:"gte=1"`

	// TicksPerYear is the number of ticks in a simulated year, used for CPI
	// history rotation and GDP annualization. Default 52.
	TicksPerYear uint64 `validate:"gte=1"`

	// TaxFreeThresholdCents is a tax-free income threshold. It is validated
	// but no subsystem reads it: fiscal revenue is taxed from the first cent.
	TaxFreeThresholdCents int64 `validate:"gte=0"`
}

// Default returns the configuration used by the worked scenarios in
// DESIGN.md: α=0.6, δ_max=0.5, β=0.7, γ=2.0, ω=0.02, λ=0.1, μ=0.02,
// κ=0.02, d_thresh=0.6, gating every 4 ticks, 52 ticks/year.
func Default() Config {
	return Config{
		SoftLeontiefAlpha:     0.6,
		PriceMaxChange:        0.5,
		PriceDisplaySmoothing: 0.7,
		TradeElasticity:       2.0,
		WageTightness:         0.02,
		WageFloorCents:        100,
		LaborMobility:         0.0,
		LegitimacyConvergence: 0.1,
		FactionPowerMu:        0.02,
		FiscalInterestKappa:   0.02,
		FiscalDebtThreshold:   0.6,
		GatingPeriodTicks:     4,
		TicksPerYear:          52,
		TaxFreeThresholdCents: 0,
	}
}

// Validate checks every field against its declared bounds, returning a
// formatted error listing every violation (mirrors the spacetraders
// validator wrapper's multi-message formatting).
func Validate(c Config) error {
	v := validator.New()
	if err := v.Struct(c); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok {
			msg := "invalid configuration:"
			for _, e := range verrs {
				msg += fmt.Sprintf("\n  field %q failed %q (value: %v)", e.Field(), e.Tag(), e.Value())
			}
			return fmt.Errorf("%s", msg)
		}
		return err
	}
	return nil
}
