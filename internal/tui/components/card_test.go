package components

import (
	"strings"
	"testing"

	"payplan/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func init() {
	// Force TrueColor output so ANSI codes are generated in tests
	lipgloss.SetColorProfile(termenv.TrueColor)
}

func TestSplitWidthsSumExactly(t *testing.T) {
	cases := []struct {
		total, n int
	}{
		{120, 3},
		{121, 3},
		{122, 3},
		{80, 2},
		{79, 4},
	}
	for _, c := range cases {
		widths := SplitWidths(c.total, c.n)
		if len(widths) != c.n {
			t.Fatalf("SplitWidths(%d, %d): got %d widths", c.total, c.n, len(widths))
		}
		sum := 0
		for _, w := range widths {
			sum += w
		}
		if sum != c.total {
			t.Errorf("SplitWidths(%d, %d): widths sum to %d", c.total, c.n, sum)
		}
	}
}

func TestMetricRowSpansTotalWidth(t *testing.T) {
	theme.SetActive("flexoki-dark")

	metrics := []Metric{
		{Label: "Total Debt", Value: "$6,200.00", Detail: "2 record(s)"},
		{Label: "Interest Cost", Value: "$560.51", Detail: "until payoff"},
		{Label: "Debt Free", Value: "Feb 15, 2029"},
	}

	for _, total := range []int{90, 101, 133} {
		row := MetricRow(metrics, total)
		for i, line := range strings.Split(row, "\n") {
			if w := lipgloss.Width(line); w != total {
				t.Errorf("total=%d line %d: width %d", total, i, w)
			}
		}
	}
}

func TestContentCardWidth(t *testing.T) {
	theme.SetActive("flexoki-dark")

	for _, outer := range []int{24, 37, 60} {
		card := ContentCard("Budget Split", "Line 1\nLine 2", outer)
		for i, line := range strings.Split(card, "\n") {
			if w := lipgloss.Width(line); w != outer {
				t.Errorf("outer=%d line %d: width %d", outer, i, w)
			}
		}
	}
}
