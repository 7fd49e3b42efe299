// Package output provides utilities for formatting and displaying projection results.
package output

import (
	"fmt"
	"strings"

	"github.com/iwvelando/hybrid-forecast/internal/projection"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PrettyFormat outputs a human-readable rather than machine-readable table.
func PrettyFormat(result *projection.Result) {
	p := message.NewPrinter(language.English)
	fmt.Printf("--- Hybrid strategy projection ---\n")
	fmt.Printf("Period  | Strategy        | Credit          | Option          | Intrinsic       | Index           | PE proxy        | Bonds\n")
	fmt.Printf("______  | ________        | ______          | ______          | _________       | _____           | ________        | _____\n")
	for i, label := range result.Series.Labels {
		_, _ = p.Printf("%s | $%.2f | $%.2f | $%.2f | $%.2f | $%.2f | $%.2f | $%.2f\n",
			label,
			result.Series.Strategy[i],
			result.Series.CreditSleeve[i],
			result.Series.OptionSleeve[i],
			result.Series.Intrinsic[i],
			result.Series.Index[i],
			result.Series.PrivateEquity[i],
			result.Series.Bonds[i],
		)
	}
	fmt.Printf("\n")
	_, _ = p.Printf("Initial notional: $%.2f\n", result.InitialNotional)
	_, _ = p.Printf("Strategy: final $%.2f | MOIC %.2fx | IRR %.2f%%\n",
		result.FinalStrategyValue, result.StrategyMOIC, result.StrategyIRRPercent)
	_, _ = p.Printf("Index:    final $%.2f | MOIC %.2fx | IRR %.2f%%\n",
		result.FinalIndexValue, result.IndexMOIC, result.IndexIRRPercent)
}

// CsvFormat outputs in comma-separated value format.
func CsvFormat(result *projection.Result) {
	columns := []string{"period", "strategy", "credit", "option", "intrinsic", "index", "privateEquity", "bonds"}
	fmt.Printf("%s\n", `"`+strings.Join(columns, `","`)+`"`)
	for i, label := range result.Series.Labels {
		fmt.Printf(`"%s","%.2f","%.2f","%.2f","%.2f","%.2f","%.2f","%.2f"`,
			label,
			result.Series.Strategy[i],
			result.Series.CreditSleeve[i],
			result.Series.OptionSleeve[i],
			result.Series.Intrinsic[i],
			result.Series.Index[i],
			result.Series.PrivateEquity[i],
			result.Series.Bonds[i],
		)
		fmt.Printf("\n")
	}
}
