package worldstate

import (
	"encoding/json"
	"testing"

	"github.com/talgya/econsim/internal/commodity"
)

func TestMatrixRowMajorLayout(t *testing.T) {
	flat := make([]float64, commodity.Count*commodity.Count)
	flat[int(commodity.Petroleum)*commodity.Count+int(commodity.ConsumerGoods)] = 0.1

	m, ok := NewMatrixFromRowMajor(flat)
	if !ok {
		t.Fatal("expected a valid K*K matrix")
	}
	if got := m.Get(commodity.Petroleum, commodity.ConsumerGoods); got != 0.1 {
		t.Errorf("Get(Petroleum, ConsumerGoods) = %v, want 0.1", got)
	}
	if got := m.Get(commodity.ConsumerGoods, commodity.Petroleum); got != 0 {
		t.Errorf("Get(ConsumerGoods, Petroleum) = %v, want 0 (matrix is directional)", got)
	}
}

func TestMatrixRejectsWrongLength(t *testing.T) {
	if _, ok := NewMatrixFromRowMajor(make([]float64, 10)); ok {
		t.Fatal("expected rejection of a non-K*K-length slice")
	}
}

func TestMatrixJSONRoundTrip(t *testing.T) {
	flat := make([]float64, commodity.Count*commodity.Count)
	flat[5] = 0.42
	m, _ := NewMatrixFromRowMajor(flat)

	data, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var restored Matrix
	if err := json.Unmarshal(data, &restored); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if restored.Get(commodity.Agriculture, commodity.Uranium) != 0.42 {
		t.Fatalf("round-tripped matrix lost its entry")
	}
}

func TestColumnSumAndRequiredInputs(t *testing.T) {
	flat := make([]float64, commodity.Count*commodity.Count)
	flat[int(commodity.Petroleum)*commodity.Count+int(commodity.ConsumerGoods)] = 0.1
	flat[int(commodity.Ore)*commodity.Count+int(commodity.ConsumerGoods)] = 0.15
	m, _ := NewMatrixFromRowMajor(flat)

	if got := m.ColumnSum(commodity.ConsumerGoods); got != 0.25 {
		t.Errorf("ColumnSum = %v, want 0.25", got)
	}
	inputs := m.RequiredInputs(commodity.ConsumerGoods)
	if len(inputs) != 2 || inputs[0] != commodity.Petroleum || inputs[1] != commodity.Ore {
		t.Errorf("RequiredInputs = %v, want [Petroleum Ore]", inputs)
	}
}
