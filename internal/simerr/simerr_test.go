package simerr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsKind(t *testing.T) {
	err := Numeric("non-finite price", map[string]any{"commodity": "Ore"})
	assert.True(t, IsKind(err, KindNumeric))
	assert.False(t, IsKind(err, KindLookup))
}

func TestFatalKinds(t *testing.T) {
	cases := []struct {
		err   error
		fatal bool
	}{
		{Numeric("x", nil), true},
		{Lookup("x", nil), true},
		{Invariant("x", nil), false},
		{Schema("x", nil), false},
	}
	for _, c := range cases {
		assert.Equal(t, c.fatal, Fatal(c.err))
	}
}

func TestErrorsIsComparesKindOnly(t *testing.T) {
	a := Invariant("negative inventory", map[string]any{"region": 1})
	b := Invariant("price out of bounds", map[string]any{"region": 2})
	assert.True(t, errors.Is(a, b), "two Invariant errors should compare equal under errors.Is")
	assert.False(t, errors.Is(a, Numeric("x", nil)), "an Invariant error should not match a Numeric error")
}

func TestDiagnosticsAddAndCount(t *testing.T) {
	var d Diagnostics
	d.Add(1, Invariant("a", nil))
	d.Add(2, Invariant("b", nil))
	d.Add(3, Numeric("c", nil))

	assert.Equal(t, 2, d.Count(KindInvariant))
	assert.Equal(t, 1, d.Count(KindNumeric))
	assert.Equal(t, 0, d.Count(KindLookup))
}

func TestDiagnosticsAddWrapsPlainErrors(t *testing.T) {
	var d Diagnostics
	d.Add(1, errors.New("boom"))
	require.Len(t, d.Records, 1)
	assert.Equal(t, KindInvariant, d.Records[0].Err.Kind)
}
