package diagram

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/guptarohit/asciigraph"
)

// DrawASCIIChart plots values as a terminal line chart. Infinite samples are
// shown as gaps like NaN ones. Width resamples the series when greater than 0.
func DrawASCIIChart(caption string, values []float64, height, width int) string {
	data := make([]float64, len(values))
	finite := 0
	for k, v := range values {
		if math.IsInf(v, 0) {
			v = math.NaN()
		}
		if !math.IsNaN(v) {
			finite++
		}
		data[k] = v
	}
	if finite == 0 {
		return fmt.Sprintf("  %s: no finite values\n", caption)
	}

	opts := []asciigraph.Option{
		asciigraph.Height(height),
		asciigraph.Caption(caption),
		asciigraph.Precision(3),
	}
	if width > 0 {
		opts = append(opts, asciigraph.Width(width))
	}
	return asciigraph.Plot(data, opts...) + "\n"
}

// DrawShaftProfile sketches the stepped diameter profile, one row per section.
func DrawShaftProfile(starts, diameters []float64, length float64) string {
	var sb strings.Builder
	const cols = 40

	maxD := 0.0
	for _, d := range diameters {
		maxD = math.Max(maxD, d)
	}
	if maxD == 0 {
		return ""
	}

	sb.WriteString("\n  SHAFT PROFILE\n")
	sb.WriteString("  ─────────────\n")
	for i, start := range starts {
		end := length
		if i+1 < len(starts) {
			end = starts[i+1]
		}
		bar := int(math.Round(diameters[i] / maxD * cols))
		sb.WriteString(fmt.Sprintf("  %7.1f-%-7.1f mm │%s%s│ Ø %.1f mm\n",
			start*1000, end*1000,
			strings.Repeat("█", bar), strings.Repeat(" ", cols-bar),
			diameters[i]*1000))
	}
	return sb.String()
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := utf8.RuneCountInString(title)
	for _, line := range lines {
		if n := utf8.RuneCountInString(line); n > maxLen {
			maxLen = n
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(title, maxLen-4)))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(line, maxLen-4)))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}

func pad(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}
