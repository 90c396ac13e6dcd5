package archive

import (
	"WavePull/internal/domain/models"
	"WavePull/pkg/util"
)

// Naming-convention patterns applied by Resolve, in contract order:
//
//	A: */{year}.{doy}.{network}.{station}.*.{channelPrefix}{component}.{dtype}
//	B: */{year}.{doy}.{network}.{station}.*.*{component}.{dtype}
//
// A then B against the primary network, then A then B against each alternate
// network alias in listed order. The first non-empty tier wins and later
// tiers are not attempted.
func patternExact(day util.DayLabel, network string, spec models.StationSpec, comp, dtype string) string {
	return "*/" + day.Year + "." + day.Doy + "." + network + "." + spec.Station +
		".*." + spec.Channel + comp + "." + dtype
}

func patternWildcard(day util.DayLabel, network string, spec models.StationSpec, comp, dtype string) string {
	return "*/" + day.Year + "." + day.Doy + "." + network + "." + spec.Station +
		".*.*" + comp + "." + dtype
}

// Resolve tries the four convention tiers for one component and calendar day
// against an already-located candidate path list. The same tier order applies
// to every calendar day of a request.
func Resolve(comp string, day util.DayLabel, spec models.StationSpec, dtype string, candidates []string) models.SearchResult {
	res := models.SearchResult{Component: comp, Year: day.Year, Doy: day.Doy, Tier: models.TierNone}

	if paths := MatchPaths(candidates, patternExact(day, spec.Network, spec, comp, dtype)); len(paths) > 0 {
		res.Tier, res.Paths = models.TierPrimaryExact, paths
		return res
	}
	if paths := MatchPaths(candidates, patternWildcard(day, spec.Network, spec, comp, dtype)); len(paths) > 0 {
		res.Tier, res.Paths = models.TierPrimaryWildcard, paths
		return res
	}

	var alt []string
	for _, anet := range spec.AltNet {
		alt = append(alt, MatchPaths(candidates, patternExact(day, anet, spec, comp, dtype))...)
	}
	if len(alt) > 0 {
		res.Tier, res.Paths = models.TierAltExact, alt
		return res
	}

	for _, anet := range spec.AltNet {
		alt = append(alt, MatchPaths(candidates, patternWildcard(day, anet, spec, comp, dtype))...)
	}
	if len(alt) > 0 {
		res.Tier, res.Paths = models.TierAltWildcard, alt
		return res
	}

	return res
}
