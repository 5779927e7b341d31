package scenario

import (
	"strings"
	"testing"

	"github.com/talgya/econsim/internal/commodity"
	"github.com/talgya/econsim/internal/config"
	"github.com/talgya/econsim/internal/worldstate"
)

func onesArray() string {
	vals := make([]string, commodity.Count)
	for i := range vals {
		vals[i] = "1"
	}
	return "[" + strings.Join(vals, ",") + "]"
}

func zeroMatrix() string {
	vals := make([]string, commodity.Count*commodity.Count)
	for i := range vals {
		vals[i] = "0"
	}
	return "[" + strings.Join(vals, ",") + "]"
}

func countryBlock(code string) string {
	k := onesArray()
	kk := zeroMatrix()
	return `{
		"code": "` + code + `",
		"name": "Zedland",
		"initialGDP": 1000,
		"importPropensity": ` + k + `,
		"exportPropensity": ` + k + `,
		"initialPrices": ` + k + `,
		"basketWeights": ` + k + `,
		"technicalCoefficients": ` + kk + `,
		"regions": [{
			"name": "Capital",
			"population": 100,
			"laborForce": 50,
			"infraFactor": 1,
			"initialCapacities": ` + k + `,
			"deposits": []
		}],
		"factions": []
	}`
}

func scenarioDoc(countries ...string) string {
	k := onesArray()
	return `{
		"name": "test",
		"version": "1",
		"startYear": 2024,
		"randomSeed": 1,
		"priceSensitivities": ` + k + `,
		"laborCoefficients": ` + k + `,
		"spoilageRates": ` + k + `,
		"baseInterestRate": 0.02,
		"countries": [` + strings.Join(countries, ",") + `]
	}`
}

func load(t *testing.T, doc string) (*worldstate.State, error) {
	t.Helper()
	return Load(strings.NewReader(doc), config.Default())
}

func TestLoadValidScenario(t *testing.T) {
	st, err := load(t, scenarioDoc(countryBlock("ZZZ")))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(st.Countries) != 1 {
		t.Fatalf("got %d countries, want 1", len(st.Countries))
	}
	if st.Countries[0].Code != "ZZZ" {
		t.Errorf("country code = %q, want ZZZ", st.Countries[0].Code)
	}
	if len(st.Regions) != 1 {
		t.Fatalf("got %d regions, want 1", len(st.Regions))
	}
	if len(st.Cohorts) == 0 {
		t.Fatal("expected population cohorts to be spawned from region population")
	}
	var total float64
	for _, c := range st.Cohorts {
		if c.RegionID != st.Regions[0].ID {
			t.Errorf("cohort region = %d, want %d", c.RegionID, st.Regions[0].ID)
		}
		total += c.Population
	}
	if total < 99 || total > 101 {
		t.Errorf("cohort population sums to %v, want ~100", total)
	}
	if len(st.Regions[0].CohortIDs) != len(st.Cohorts) {
		t.Errorf("region.CohortIDs has %d entries, want %d", len(st.Regions[0].CohortIDs), len(st.Cohorts))
	}
}

func TestLoadHonorsScenarioWealthShares(t *testing.T) {
	doc := strings.Replace(scenarioDoc(countryBlock("ZZZ")), `"deposits": []`,
		`"deposits": [], "wealthShares": [1,0,0,0,0]`, 1)
	st, err := load(t, doc)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(st.Cohorts) != 1 {
		t.Fatalf("got %d cohorts, want 1 (all-subsistence split)", len(st.Cohorts))
	}
	if st.Cohorts[0].Wealth != worldstate.Subsistence {
		t.Errorf("cohort wealth = %v, want Subsistence", st.Cohorts[0].Wealth)
	}
}

func TestLoadRejectsUnknownField(t *testing.T) {
	doc := strings.Replace(scenarioDoc(countryBlock("ZZZ")), `"baseInterestRate": 0.02,`,
		`"baseInterestRate": 0.02, "bogusField": true,`, 1)
	if _, err := load(t, doc); err == nil {
		t.Fatal("expected an error for an unknown top-level field")
	}
}

func TestLoadRejectsWrongArrayLength(t *testing.T) {
	doc := strings.Replace(scenarioDoc(countryBlock("ZZZ")), `"priceSensitivities": `+onesArray(),
		`"priceSensitivities": [1,2,3]`, 1)
	if _, err := load(t, doc); err == nil {
		t.Fatal("expected an error for a wrongly-sized priceSensitivities array")
	}
}

func TestLoadRejectsDuplicateCountryCode(t *testing.T) {
	doc := scenarioDoc(countryBlock("ZZZ"), countryBlock("ZZZ"))
	if _, err := load(t, doc); err == nil {
		t.Fatal("expected an error for a duplicate country code")
	}
}

func TestLoadRejectsUnknownDepositResource(t *testing.T) {
	doc := strings.Replace(scenarioDoc(countryBlock("ZZZ")), `"deposits": []`,
		`"deposits": [{"resource": "Bananas", "totalReserves": 100, "baseYield": 1}]`, 1)
	if _, err := load(t, doc); err == nil {
		t.Fatal("expected an error for an unknown deposit resource tag")
	}
}

func TestLoadRejectsUnknownRedLineTag(t *testing.T) {
	doc := strings.Replace(scenarioDoc(countryBlock("ZZZ")), `"factions": []`,
		`"factions": [{"name": "Hawks", "basePower": 1, "baseSatisfaction": 50, "redLineTag": "notATag"}]`, 1)
	if _, err := load(t, doc); err == nil {
		t.Fatal("expected an error for an unknown red line tag")
	}
}
