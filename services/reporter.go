package services

import (
	"fmt"
	"sort"
	"strings"

	"hotel-revenue-dashboard/models"
)

// PrintRateReport summarizes a ratewatch run on the terminal.
func PrintRateReport(source string, rates []*models.CompetitorRate) {
	border := strings.Repeat("═", 55)
	thin := strings.Repeat("─", 55)

	fmt.Printf("\n╔%s╗\n", border)
	fmt.Printf("║%s║\n", center("COMPETITOR RATE WATCH", 55))
	fmt.Printf("╚%s╝\n", border)

	fmt.Printf("\n OVERVIEW\n%s\n", thin)
	fmt.Printf("  Source                  : %s\n", source)
	fmt.Printf("  Rates Collected         : %d\n", len(rates))

	if len(rates) == 0 {
		fmt.Printf("\n%s\n\n", border)
		return
	}

	min, max := rates[0].NightlyRate, rates[0].NightlyRate
	var sum float64
	for _, r := range rates {
		sum += r.NightlyRate
		if r.NightlyRate < min {
			min = r.NightlyRate
		}
		if r.NightlyRate > max {
			max = r.NightlyRate
		}
	}
	fmt.Printf("  Average Rate/Night      : $%.2f\n", sum/float64(len(rates)))
	fmt.Printf("  Minimum Rate/Night      : $%.2f\n", min)
	fmt.Printf("  Maximum Rate/Night      : $%.2f\n", max)

	sorted := make([]*models.CompetitorRate, len(rates))
	copy(sorted, rates)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].NightlyRate > sorted[j].NightlyRate
	})
	top := 5
	if len(sorted) < top {
		top = len(sorted)
	}

	fmt.Printf("\n TOP %d HIGHEST RATES\n%s\n", top, thin)
	for i, r := range sorted[:top] {
		fmt.Printf("  %d. %-35s $%.2f\n", i+1, truncate(r.Title, 35), r.NightlyRate)
	}

	fmt.Printf("\n%s\n\n", border)
}

func center(s string, width int) string {
	runes := []rune(s)
	if len(runes) >= width {
		return s
	}
	pad := (width - len(runes)) / 2
	return strings.Repeat(" ", pad) + s + strings.Repeat(" ", width-len(runes)-pad)
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
