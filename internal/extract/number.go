package extract

import (
	"strconv"
	"strings"
)

// ParseNumber converts a statement-formatted numeric string into a float.
// Currency symbols, thousands separators, and surrounding whitespace are
// stripped before conversion. An empty or unparsable string yields 0.
func ParseNumber(s string) float64 {
	cleaned := strings.NewReplacer(
		"₹", "", // rupee sign
		"Rs.", "",
		"Rs", "",
		",", "",
		" ", "",
		"\t", "",
	).Replace(strings.TrimSpace(s))

	if cleaned == "" {
		return 0
	}

	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return v
}
