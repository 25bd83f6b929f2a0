// Package shared provides common utility functions used across multiple
// packages in the oasref codebase.
package shared

// DedupeStrings removes duplicates while preserving the first-seen
// order of the input.
func DedupeStrings(values []string) []string {
	if len(values) == 0 {
		return values
	}
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, value := range values {
		if _, ok := seen[value]; ok {
			continue
		}
		seen[value] = struct{}{}
		out = append(out, value)
	}
	return out
}

// ContainsString reports whether values contains target. Used for the
// small active-path stacks where a map would not pay off.
func ContainsString(values []string, target string) bool {
	for _, value := range values {
		if value == target {
			return true
		}
	}
	return false
}
