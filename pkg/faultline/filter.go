// filter.go redacts metadata values whose keys match configured filters.

package faultline

import "strings"

// Filtered replaces the value of every redacted metadata key.
const Filtered = "[FILTERED]"

// Redact returns a copy of metaData in which the value of every key that
// contains one of filters as a case-sensitive substring is replaced by
// Filtered. Matching stops descent at that key. Nested maps, including maps
// held in lists, are walked. With no filters metaData itself is returned.
//
// Matching is by substring, so a filter of "pass" also redacts "passenger".
func Redact(metaData map[string]any, filters []string) map[string]any {
	if len(filters) == 0 {
		return metaData
	}
	return redactMap(metaData, filters)
}

func redactMap(m map[string]any, filters []string) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		if matchesFilter(k, filters) {
			out[k] = Filtered
			continue
		}
		out[k] = redactValue(v, filters)
	}
	return out
}

func redactValue(v any, filters []string) any {
	switch val := v.(type) {
	case map[string]any:
		return redactMap(val, filters)
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = redactValue(item, filters)
		}
		return out
	default:
		return v
	}
}

// matchesFilter skips empty filters, which would otherwise match every key.
func matchesFilter(key string, filters []string) bool {
	for _, f := range filters {
		if f != "" && strings.Contains(key, f) {
			return true
		}
	}
	return false
}
