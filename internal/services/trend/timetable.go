package trend

import "strings"

// Heuristic fallback posting times per platform, most preferred first.
// These are documented defaults, not learned from engagement data; deployments
// tune them through configuration.
var defaultBestTimes = map[string][]string{
	"instagram": {"11:00", "19:00"},
	"facebook":  {"13:00", "20:00"},
	"youtube":   {"15:00", "21:00"},
}

// defaultFallback is returned for platforms without an entry.
var defaultFallback = []string{"12:00", "18:00"}

// TimeTable maps platform identifiers to fallback best-time-of-day lists.
// Built once at construction and never mutated; lookups are case-insensitive
// and never fail.
type TimeTable struct {
	platforms map[string][]string
}

// NewTimeTable builds a table from the built-in defaults merged with
// overrides. Override keys are lowercased; an override for a known platform
// replaces its list entirely.
func NewTimeTable(overrides map[string][]string) TimeTable {
	platforms := make(map[string][]string, len(defaultBestTimes)+len(overrides))
	for platform, times := range defaultBestTimes {
		platforms[platform] = append([]string(nil), times...)
	}
	for platform, times := range overrides {
		platforms[strings.ToLower(platform)] = append([]string(nil), times...)
	}
	return TimeTable{platforms: platforms}
}

// BestTimes returns the preferred posting times for a platform. Unknown
// platforms degrade to the default pair rather than failing.
func (t TimeTable) BestTimes(platform string) []string {
	if times, ok := t.platforms[strings.ToLower(platform)]; ok {
		return append([]string(nil), times...)
	}
	return append([]string(nil), defaultFallback...)
}

// Platforms returns the known platform identifiers.
func (t TimeTable) Platforms() []string {
	out := make([]string, 0, len(t.platforms))
	for p := range t.platforms {
		out = append(out, p)
	}
	return out
}
