package archive

import (
	"testing"

	"WavePull/internal/domain/models"
	"WavePull/pkg/util"
)

func testSpec(t *testing.T, altnet ...string) models.StationSpec {
	t.Helper()
	spec, err := models.NewStationSpec("XX", "STA", "BH", nil, altnet)
	if err != nil {
		t.Fatalf("spec: %v", err)
	}
	return spec
}

var day001 = util.DayLabel{Year: "2020", Doy: "001"}

// Files matching both conventions must resolve through Convention A; the
// tier order is a contract, not an implementation detail.
func TestResolveConventionPriority(t *testing.T) {
	candidates := []string{
		"/arch/2020.001.XX.STA.00.HHZ.SAC", // convention B only
		"/arch/2020.001.XX.STA.00.BHZ.SAC", // convention A
	}
	res := Resolve("Z", day001, testSpec(t), "SAC", candidates)
	if res.Tier != models.TierPrimaryExact {
		t.Fatalf("expected primary-exact tier, got %s", res.Tier)
	}
	if len(res.Paths) != 1 || res.Paths[0] != "/arch/2020.001.XX.STA.00.BHZ.SAC" {
		t.Fatalf("expected convention A result, got %v", res.Paths)
	}
}

func TestResolveFallsBackToWildcard(t *testing.T) {
	candidates := []string{"/arch/2020.001.XX.STA.00.HHZ.SAC"}
	res := Resolve("Z", day001, testSpec(t), "SAC", candidates)
	if res.Tier != models.TierPrimaryWildcard {
		t.Fatalf("expected primary-wildcard tier, got %s", res.Tier)
	}
}

func TestResolveAlternateNetworkTiers(t *testing.T) {
	// Exact match under an alias outranks a wildcard match under an alias.
	candidates := []string{
		"/arch/2020.001.PO.STA.00.HHZ.SAC",
		"/arch/2020.001.CN.STA.00.BHZ.SAC",
	}
	res := Resolve("Z", day001, testSpec(t, "PO", "CN"), "SAC", candidates)
	if res.Tier != models.TierAltExact {
		t.Fatalf("expected alt-exact tier, got %s", res.Tier)
	}
	if res.Paths[0] != "/arch/2020.001.CN.STA.00.BHZ.SAC" {
		t.Fatalf("unexpected path %v", res.Paths)
	}

	// Wildcard alias matches only when no alias has an exact match.
	res = Resolve("Z", day001, testSpec(t, "PO"), "SAC", []string{"/arch/2020.001.PO.STA.00.HHZ.SAC"})
	if res.Tier != models.TierAltWildcard {
		t.Fatalf("expected alt-wildcard tier, got %s", res.Tier)
	}
}

func TestResolveAliasOrderPreserved(t *testing.T) {
	candidates := []string{
		"/arch/2020.001.CN.STA.00.BHZ.SAC",
		"/arch/2020.001.PO.STA.00.BHZ.SAC",
	}
	res := Resolve("Z", day001, testSpec(t, "PO", "CN"), "SAC", candidates)
	if len(res.Paths) != 2 {
		t.Fatalf("expected both alias matches, got %v", res.Paths)
	}
	// PO listed first, so its match comes first regardless of input order.
	if res.Paths[0] != "/arch/2020.001.PO.STA.00.BHZ.SAC" {
		t.Fatalf("alias order not preserved: %v", res.Paths)
	}
}

func TestResolveNotFoundIsEmptyNotError(t *testing.T) {
	res := Resolve("Z", day001, testSpec(t), "SAC", nil)
	if res.Found() {
		t.Fatalf("expected empty result")
	}
	if res.Tier != models.TierNone {
		t.Fatalf("expected no tier, got %s", res.Tier)
	}
}

func TestResolveIgnoresOtherDays(t *testing.T) {
	candidates := []string{"/arch/2020.002.XX.STA.00.BHZ.SAC"}
	res := Resolve("Z", day001, testSpec(t), "SAC", candidates)
	if res.Found() {
		t.Fatalf("expected no match across days, got %v", res.Paths)
	}
}
