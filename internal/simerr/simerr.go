// Package simerr defines the simulation core's error taxonomy:
// SchemaError, InvariantViolation, NumericError, and LookupError. Errors
// are plain wrapped values (errors.Is/errors.As compatible), never
// exceptions: a tick never panics on account of domain state.
package simerr

import (
	"errors"
	"fmt"
)

// Kind identifies which of the four error taxonomies an error belongs to.
type Kind uint8

const (
	KindSchema Kind = iota
	KindInvariant
	KindNumeric
	KindLookup
)

func (k Kind) String() string {
	switch k {
	case KindSchema:
		return "SchemaError"
	case KindInvariant:
		return "InvariantViolation"
	case KindNumeric:
		return "NumericError"
	case KindLookup:
		return "LookupError"
	default:
		return "UnknownError"
	}
}

// Error is the concrete structured error value for every kind. Fatal kinds
// (Numeric, Lookup) are returned immediately by the subsystem that produced
// them; Schema errors abort the run before tick 0; Invariant violations are
// collected into a Diagnostics log and do not abort a running tick.
type Error struct {
	Kind    Kind
	Message string
	// Fields carries structured context: country id, region id, commodity
	// tag, etc. Keyed by name with arbitrary values, so callers don't need a
	// shared schema.
	Fields map[string]any
}

func (e *Error) Error() string {
	if len(e.Fields) == 0 {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("%s: %s %v", e.Kind, e.Message, e.Fields)
}

// Is supports errors.Is comparisons against the sentinel Kind markers below.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

func newErr(k Kind, msg string, fields map[string]any) *Error {
	return &Error{Kind: k, Message: msg, Fields: fields}
}

// Schema constructs a SchemaError: the loaded scenario is structurally
// invalid (array length != K, unknown tag, duplicate country code, ...).
func Schema(msg string, fields map[string]any) error {
	return newErr(KindSchema, msg, fields)
}

// Invariant constructs an InvariantViolation: a post-tick invariant failed.
// Non-fatal: the scheduler clamps the value, records it in Diagnostics, and
// continues the tick. There is no debug mode in which it aborts the tick.
func Invariant(msg string, fields map[string]any) error {
	return newErr(KindInvariant, msg, fields)
}

// Numeric constructs a NumericError: a non-finite value (NaN, ±Inf) was
// produced. Always fatal.
func Numeric(msg string, fields map[string]any) error {
	return newErr(KindNumeric, msg, fields)
}

// Lookup constructs a LookupError: an id was out of range. Always fatal.
func Lookup(msg string, fields map[string]any) error {
	return newErr(KindLookup, msg, fields)
}

// IsKind reports whether err is a *Error of the given kind.
func IsKind(err error, k Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == k
	}
	return false
}

// Fatal reports whether an error kind must abort the tick immediately
// (Numeric, Lookup) as opposed to being recorded and clamped (Invariant).
func Fatal(err error) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == KindNumeric || e.Kind == KindLookup
}

// Diagnostics accumulates non-fatal InvariantViolation records across a
// run, attached to State, collected into a log rather than aborting it.
type Diagnostics struct {
	Records []Record
}

// Record is one diagnostic entry: the tick it occurred on and the error.
// Err is the concrete *Error type (not the error interface) so Diagnostics
// round-trips through JSON snapshots.
type Record struct {
	Tick uint64
	Err  *Error
}

// Add appends a diagnostic record for the given tick. Non-*Error values
// are wrapped as an Invariant so the record always carries a Kind.
func (d *Diagnostics) Add(tick uint64, err error) {
	var e *Error
	if !errors.As(err, &e) {
		e = newErr(KindInvariant, err.Error(), nil)
	}
	d.Records = append(d.Records, Record{Tick: tick, Err: e})
}

// Count returns the number of recorded diagnostics of the given kind.
func (d *Diagnostics) Count(k Kind) int {
	n := 0
	for _, r := range d.Records {
		if r.Err != nil && r.Err.Kind == k {
			n++
		}
	}
	return n
}
