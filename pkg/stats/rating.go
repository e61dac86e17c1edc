// Package stats holds the derived-metric calculators shared by dashboards
// and exports: overall player rating, attendance percentages and financial
// totals. All of them are defensive about missing or non-numeric input and
// return zero rather than NaN.
package stats

import "math"

// RatingAttributes are the six canonical 0-10 attributes an overall rating
// is computed from.
var RatingAttributes = []string{"Attack", "pace", "Physicality", "Defense", "passing", "Technique"}

// attributeAliases maps the alternate vocabulary some writers use onto the
// canonical attribute names. Both vocabularies live in the stored documents;
// only the rating calculation unifies them.
var attributeAliases = map[string]string{
	"Attack":      "shooting",
	"pace":        "speed",
	"Physicality": "positioning",
	"Defense":     "defense",
	"passing":     "crossing",
	"Technique":   "ballControl",
}

// OverallRating averages the six rating attributes, drops zero or missing
// values from the denominator, and scales the result to 0-100. When every
// attribute is zero or absent it returns 0, never NaN.
func OverallRating(attrs map[string]float64) int {
	if len(attrs) == 0 {
		return 0
	}
	var sum float64
	var count int
	for _, name := range RatingAttributes {
		v := attrs[name]
		if v == 0 {
			v = attrs[attributeAliases[name]]
		}
		if v > 0 {
			sum += v
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return int(math.Round(sum / (float64(count) * 10) * 100))
}

// Round2 rounds to two decimal places. Percentage metrics across the
// dashboards all report at this precision.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
