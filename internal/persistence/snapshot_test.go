package persistence

import (
	"testing"

	"github.com/talgya/econsim/internal/commodity"
	"github.com/talgya/econsim/internal/config"
	"github.com/talgya/econsim/internal/simerr"
	"github.com/talgya/econsim/internal/worldstate"
)

func buildSampleState() *worldstate.State {
	s := worldstate.New(config.Default(), 7, 2024)
	s.Tick = 12
	s.Countries = append(s.Countries, worldstate.Country{ID: 0, Code: "ZZZ", GDP: 1000})
	s.Countries[0].Price[commodity.Agriculture] = 105
	s.Matrices = append(s.Matrices, worldstate.NewMatrix())
	s.Matrices[0].Set(commodity.Petroleum, commodity.ConsumerGoods, 0.1)
	s.Diagnostics.Add(5, simerr.Invariant("negative inventory", map[string]any{"region": 1}))
	return s
}

func TestSnapshotRestoreRoundTrip(t *testing.T) {
	s := buildSampleState()

	data, err := Snapshot(s)
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}

	restored, err := Restore(data)
	if err != nil {
		t.Fatalf("Restore: %v", err)
	}

	if restored.Tick != s.Tick {
		t.Errorf("Tick = %d, want %d", restored.Tick, s.Tick)
	}
	if len(restored.Countries) != 1 || restored.Countries[0].Code != "ZZZ" {
		t.Fatalf("countries did not round-trip: %+v", restored.Countries)
	}
	if restored.Countries[0].Price[commodity.Agriculture] != 105 {
		t.Errorf("price did not round-trip: %v", restored.Countries[0].Price[commodity.Agriculture])
	}
	if got := restored.Matrices[0].Get(commodity.Petroleum, commodity.ConsumerGoods); got != 0.1 {
		t.Errorf("matrix entry did not round-trip: %v", got)
	}
	if len(restored.Diagnostics.Records) != 1 {
		t.Fatalf("got %d diagnostic records, want 1", len(restored.Diagnostics.Records))
	}
	if restored.Diagnostics.Records[0].Err.Kind != simerr.KindInvariant {
		t.Errorf("diagnostic kind = %v, want KindInvariant", restored.Diagnostics.Records[0].Err.Kind)
	}
}

func TestRestoreRejectsMalformedJSON(t *testing.T) {
	if _, err := Restore([]byte("not json")); err == nil {
		t.Fatal("expected an error for malformed snapshot data")
	}
}
