package calendar

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func markupWith(total string, cells ...string) string {
	var b strings.Builder
	if total != "" {
		fmt.Fprintf(&b, "<h2>%s contributions in 2025</h2>\n", total)
	}
	for _, cell := range cells {
		b.WriteString(cell)
		b.WriteString("\n")
	}
	return b.String()
}

func cell(date string, level int) string {
	return fmt.Sprintf(`<td tabindex="0" data-date=%q data-level="%d"></td>`, date, level)
}

func TestParse_RedistributesTotalExactly(t *testing.T) {
	markup := markupWith("919",
		cell("2025-01-01", 0),
		cell("2025-01-02", 1),
		cell("2025-01-03", 2),
		cell("2025-01-04", 3),
		cell("2025-01-05", 4),
		cell("2025-01-06", 4),
	)

	cal := Parse(markup)

	require.Equal(t, 919, cal.TotalContributions)
	require.Len(t, cal.Days, 6)

	sum := 0
	for _, d := range cal.Days {
		sum += d.Count
	}
	assert.Equal(t, 919, sum, "redistributed counts must sum exactly to the heading total")

	// Level 0 never receives contributions.
	assert.Equal(t, 0, cal.Days[0].Count)
	// Higher levels receive more.
	assert.Greater(t, cal.Days[4].Count, cal.Days[1].Count)
}

func TestParse_RedistributionExactForAwkwardTotals(t *testing.T) {
	// Totals that do not divide evenly force rounding correction.
	for _, total := range []int{1, 7, 13, 100, 101, 997} {
		markup := markupWith(fmt.Sprint(total),
			cell("2025-02-01", 1),
			cell("2025-02-02", 1),
			cell("2025-02-03", 3),
			cell("2025-02-04", 4),
		)

		cal := Parse(markup)
		sum := 0
		for _, d := range cal.Days {
			sum += d.Count
		}
		assert.Equal(t, total, sum, "total %d", total)
	}
}

func TestParse_ThousandsSeparatorInTotal(t *testing.T) {
	markup := markupWith("1,234", cell("2025-03-01", 2), cell("2025-03-02", 2))

	cal := Parse(markup)

	assert.Equal(t, 1234, cal.TotalContributions)
	assert.Equal(t, 1234, cal.Days[0].Count+cal.Days[1].Count)
}

func TestParse_ZeroWeightFallsBackToLevelLookup(t *testing.T) {
	markup := markupWith("50",
		cell("2025-01-01", 0),
		cell("2025-01-02", 0),
		cell("2025-01-03", 0),
	)

	cal := Parse(markup)

	assert.Equal(t, 0, cal.TotalContributions)
	for _, d := range cal.Days {
		assert.Equal(t, 0, d.Count)
	}
}

func TestParse_NoHeadingUsesLevelEstimates(t *testing.T) {
	markup := markupWith("",
		cell("2025-01-01", 0),
		cell("2025-01-02", 1),
		cell("2025-01-03", 2),
		cell("2025-01-04", 3),
		cell("2025-01-05", 4),
	)

	cal := Parse(markup)

	want := []int{0, 2, 5, 8, 12}
	require.Len(t, cal.Days, 5)
	for i, d := range cal.Days {
		assert.Equal(t, want[i], d.Count)
	}
	assert.Equal(t, 27, cal.TotalContributions)
}

func TestParse_EmptyMarkup(t *testing.T) {
	cal := Parse("<html><body>nothing here</body></html>")

	assert.Zero(t, cal.TotalContributions)
	assert.Empty(t, cal.Days)
}

func TestParse_PreservesDocumentOrderAndLevels(t *testing.T) {
	markup := markupWith("10",
		cell("2025-06-03", 4),
		cell("2025-06-01", 1),
		cell("2025-06-02", 2),
	)

	cal := Parse(markup)

	require.Len(t, cal.Days, 3)
	assert.Equal(t, "2025-06-03", cal.Days[0].Date)
	assert.Equal(t, 4, cal.Days[0].Level)
	assert.Equal(t, "2025-06-01", cal.Days[1].Date)
	assert.Equal(t, "2025-06-02", cal.Days[2].Date)
}
