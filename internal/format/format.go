// Package format renders raw amounts, counts and timestamps into the strings
// shown to supporters, and computes funding progress.
package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DateLayout is the long US date form, e.g. "January 15, 2024".
const DateLayout = "January 2, 2006"

// Currency renders amount as whole US dollars with thousands separators,
// rounding half away from zero: 32500 becomes "$32,500".
func Currency(amount float64) string {
	rounded := math.Round(amount)
	p := message.NewPrinter(language.AmericanEnglish)
	// %.0f keeps magnitudes beyond int64 exact; the printer still groups.
	digits := p.Sprintf("%.0f", math.Abs(rounded))
	if rounded < 0 {
		return "-$" + digits
	}
	return "$" + digits
}

// Number abbreviates large magnitudes with a single decimal place and a K, M
// or B suffix. Values below one thousand are printed as-is.
func Number(n float64) string {
	switch {
	case n >= 1e9:
		return oneDecimal(n/1e9) + "B"
	case n >= 1e6:
		return oneDecimal(n/1e6) + "M"
	case n >= 1e3:
		return oneDecimal(n/1e3) + "K"
	}
	return strconv.FormatFloat(n, 'f', -1, 64)
}

// oneDecimal rounds ties upwards, which is what display counters expect
// ("1.25" reads as "1.3").
func oneDecimal(v float64) string {
	return strconv.FormatFloat(math.Round(v*10)/10, 'f', 1, 64)
}

// Progress returns raised as a percentage of goal, capped at 100. A zero goal
// yields 0. Negative results are not clamped.
func Progress(raised, goal float64) float64 {
	if goal == 0 {
		return 0
	}
	return math.Min(raised/goal*100, 100)
}

// Percent renders a progress value with no decimals, e.g. "65%".
func Percent(progress float64) string {
	return strconv.FormatFloat(math.Round(progress), 'f', 0, 64) + "%"
}

// Date parses an ISO-8601 timestamp (or a bare date) and renders it with
// DateLayout in the timestamp's own zone.
func Date(iso string) (string, error) {
	iso = strings.TrimSpace(iso)
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, iso); err == nil {
			return DateOf(t), nil
		}
	}
	return "", fmt.Errorf("format: invalid date %q", iso)
}

// DateOf renders t with DateLayout.
func DateOf(t time.Time) string {
	return t.Format(DateLayout)
}
