package watchdog

// ThresholdConfig holds the three threshold sources consulted for a
// process. A value of 0 (or an absent key) means "not configured" for that
// source; if every source resolves to 0, monitoring is disabled for the
// process.
type ThresholdConfig struct {
	// Programs is keyed by "name" or "group:name"
	Programs map[string]ByteSize
	// Groups is keyed by group name
	Groups map[string]ByteSize
	// Any is the catch-all threshold applied to every process
	Any ByteSize
}

// ResolveThreshold computes the byte limit applicable to a process.
//
// Candidates are the program-level value for the bare name, the
// program-level value for the qualified "group:name" key, the group-level
// value and the catch-all. The largest configured value wins: a program
// configured with a smaller limit than its group or the catch-all is
// overridden by the larger one.
func ResolveThreshold(name, group string, config ThresholdConfig) int64 {
	limit := int64(config.Programs[name])

	candidates := []int64{
		int64(config.Programs[group+":"+name]),
		int64(config.Groups[group]),
		int64(config.Any),
	}
	for _, candidate := range candidates {
		if candidate > limit {
			limit = candidate
		}
	}

	if limit < 0 {
		limit = -limit
	}
	return limit
}
