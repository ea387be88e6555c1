package prefixtable

import "strings"

// isSeparator reports whether b is a token separator reserved by the chooser's
// line tokenizer: space, tab, CR, LF, or comma.
func isSeparator(b byte) bool {
	switch b {
	case ' ', '\t', '\r', '\n', ',':
		return true
	default:
		return false
	}
}

// IsValidPrefix reports whether prefix could be assigned as a selection
// prefix: it must not start with an ASCII digit (reserved for 1-based index
// selection) or a '-' (reserved for deselection), must not contain any
// token-separator byte, and must not be the single character "*" or "?"
// (both reserved).
func IsValidPrefix(prefix string) bool {
	if prefix == "" {
		return false
	}
	if prefix == "*" || prefix == "?" {
		return false
	}
	first := prefix[0]
	if first >= '0' && first <= '9' {
		return false
	}
	if first == '-' {
		return false
	}
	for i := 0; i < len(prefix); i++ {
		if isSeparator(prefix[i]) {
			return false
		}
	}
	return true
}

// Compute returns, for each name in names, the length of the shortest
// prefix in [min, max] that is valid (IsValidPrefix) and unique among all
// names in the set, or 0 if no such length exists. min must be >= 1 and
// max must be >= min.
func Compute(names []string, min, max int) []int {
	lengths := make([]int, len(names))
	for i, name := range names {
		lengths[i] = shortestUniquePrefix(names, i, min, max)
	}
	return lengths
}

func shortestUniquePrefix(names []string, idx int, min, max int) int {
	name := names[idx]
	upper := max
	if len(name) < upper {
		upper = len(name)
	}
	for length := min; length <= upper; length++ {
		candidate := name[:length]
		if !IsValidPrefix(candidate) {
			continue
		}
		if isUnique(names, idx, candidate) {
			return length
		}
	}
	return 0
}

func isUnique(names []string, idx int, candidate string) bool {
	for j, other := range names {
		if j == idx {
			continue
		}
		if strings.HasPrefix(other, candidate) {
			return false
		}
	}
	return true
}
