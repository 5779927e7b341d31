package commodity

import "testing"

func TestAllCoversEveryTagInOrder(t *testing.T) {
	if len(All) != Count {
		t.Fatalf("All has %d entries, want %d", len(All), Count)
	}
	for i, tag := range All {
		if int(tag) != i {
			t.Errorf("All[%d] = %v, want tag %d", i, tag, i)
		}
	}
}

func TestParseRoundTrips(t *testing.T) {
	for _, tag := range All {
		name := tag.String()
		got, ok := Parse(name)
		if !ok {
			t.Fatalf("Parse(%q) failed", name)
		}
		if got != tag {
			t.Errorf("Parse(%q) = %v, want %v", name, got, tag)
		}
	}
}

func TestParseUnknown(t *testing.T) {
	if _, ok := Parse("Bananas"); ok {
		t.Fatal("Parse(\"Bananas\") should fail")
	}
}

func TestStockpileable(t *testing.T) {
	if Electricity.Stockpileable() || Services.Stockpileable() {
		t.Fatal("Electricity and Services must not be stockpileable")
	}
	if !Agriculture.Stockpileable() {
		t.Fatal("Agriculture should be stockpileable")
	}
}

func TestRaw(t *testing.T) {
	raw := map[Tag]bool{
		Agriculture: true, RareEarths: true, Petroleum: true,
		Coal: true, Ore: true, Uranium: true,
	}
	for _, tag := range All {
		if tag.Raw() != raw[tag] {
			t.Errorf("%v.Raw() = %v, want %v", tag, tag.Raw(), raw[tag])
		}
	}
}
