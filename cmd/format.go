package cmd

import (
	"fmt"
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/cargosim/cargosim/sim"
)

// printer groups thousands the way the cost tables expect.
var printer = message.NewPrinter(language.English)

// formatCost renders a cost right-aligned in 20 columns with thousands
// separators and two decimals.
func formatCost(cost float64) string {
	return printer.Sprintf("%20.2f", cost)
}

// printEstimates writes one block per variant listing the mean cost of
// every manifest, in the order the estimates were produced.
func printEstimates(w io.Writer, estimates []*sim.Estimate) {
	var order []sim.Variant
	byVariant := make(map[sim.Variant][]*sim.Estimate)
	for _, est := range estimates {
		if _, seen := byVariant[est.Variant]; !seen {
			order = append(order, est.Variant)
		}
		byVariant[est.Variant] = append(byVariant[est.Variant], est)
	}
	for _, v := range order {
		fmt.Fprintf(w, "Average total cost if %s vehicles are used:\n", v)
		for _, est := range byVariant[v] {
			fmt.Fprintf(w, "%s for %s", formatCost(est.Mean), est.Manifest)
			printer.Fprintf(w, " (trials: %d, vehicles: %d, stderr: %.2f)\n", est.Trials, est.Vehicles, est.StdErr)
		}
	}
}

// printReport writes the outcome of a single trial.
func printReport(w io.Writer, manifest string, v sim.Variant, fleet sim.Fleet, report sim.MissionReport) {
	fmt.Fprintf(w, "=== %s with %s vehicles ===\n", manifest, v)
	fmt.Fprintf(w, "Vehicles loaded      : %d\n", len(fleet))
	fmt.Fprintf(w, "Total cost           : %s\n", formatCost(report.TotalCost))
	fmt.Fprintf(w, "Successful missions  : %d\n", report.Successes)
	fmt.Fprintf(w, "Failures             : %d (%d launch, %d landing)\n",
		report.Failures(), report.LaunchFailures, report.LandingFailures)
}
