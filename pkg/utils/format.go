package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// departureLayouts are the timestamp shapes the search API is known to
// return: offset timestamps for date queries, bare dates for month queries.
var departureLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// FormatDeparture renders a wire departure stamp as "2006-01-02 15:04".
// Unparseable stamps degrade to a trimmed copy of the raw value, empty ones
// to "?".
func FormatDeparture(departureAt string) string {
	if departureAt == "" {
		return "?"
	}
	for _, layout := range departureLayouts {
		if t, err := time.Parse(layout, departureAt); err == nil {
			return t.Format("2006-01-02 15:04")
		}
	}
	runes := []rune(departureAt)
	if len(runes) > 16 {
		runes = runes[:16]
	}
	return strings.ReplaceAll(string(runes), "T", " ")
}

// FormatFlightDuration renders minutes as "2h05m".
func FormatFlightDuration(minutes int) string {
	return fmt.Sprintf("%dh%02dm", minutes/60, minutes%60)
}

// FormatPrice renders a price without a spurious fraction: whole amounts
// print as integers, everything else keeps its decimals.
func FormatPrice(price float64) string {
	return strconv.FormatFloat(price, 'f', -1, 64)
}

// FormatStops renders a transfer count the way the digest wants it.
func FormatStops(transfers int) string {
	if transfers == 0 {
		return "direct"
	}
	return fmt.Sprintf("%d stop(s)", transfers)
}

// ClampMessage trims text so it fits in maxRunes, marking the cut with an
// ellipsis line. Telegram rejects messages over 4096 characters.
func ClampMessage(text string, maxRunes int) string {
	runes := []rune(text)
	if len(runes) <= maxRunes {
		return text
	}
	keep := maxRunes - 6
	if keep < 0 {
		keep = 0
	}
	return string(runes[:keep]) + "\n…"
}
