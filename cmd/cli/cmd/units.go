// Package cmd - units command
package cmd

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"nutricalc/core/units"
	"nutricalc/internal/config"
	"nutricalc/internal/errors"
)

type unitRow struct {
	Symbol     string  `json:"symbol"`
	Category   string  `json:"category"`
	Multiplier float64 `json:"multiplier"`
	Base       string  `json:"base"`
}

type foodUnits struct {
	Category  string   `json:"category"`
	Default   string   `json:"default"`
	Suggested []string `json:"suggested"`
}

func newUnitsCmd(opts *rootOptions) *cobra.Command {
	var food string

	cmd := &cobra.Command{
		Use:   "units [weight|volume|length]",
		Short: "List recognized units",
		Long: `List the recognized unit symbols and their factor against the
category base unit. With --food, show the default and suggested units for a
food category instead.

Examples:
  nutricalc units
  nutricalc units volume
  nutricalc units --food beverages`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			asJSON := config.Get().Output.Format == "json"
			out := cmd.OutOrStdout()

			if food != "" {
				c := units.ParseFoodCategory(food)
				fu := foodUnits{Category: string(c), Default: units.DefaultUnitFor(c), Suggested: units.SuggestedUnitsFor(c)}
				if asJSON {
					return json.NewEncoder(out).Encode(fu)
				}
				fmt.Fprintf(out, "Category:  %s\n", fu.Category)
				fmt.Fprintf(out, "Default:   %s\n", fu.Default)
				fmt.Fprintf(out, "Suggested: %s\n", strings.Join(fu.Suggested, ", "))
				return nil
			}

			categories := units.Categories()
			if len(args) == 1 {
				c, ok := units.ParseCategory(args[0])
				if !ok {
					return errors.Newf(errors.TypeInput, "unknown unit category %q", args[0])
				}
				categories = []units.Category{c}
			}

			var rows []unitRow
			for _, c := range categories {
				for _, s := range units.Symbols(c) {
					u, _ := units.Lookup(s)
					rows = append(rows, unitRow{Symbol: u.Symbol, Category: c.String(), Multiplier: u.Multiplier, Base: c.BaseUnit()})
				}
			}

			if asJSON {
				return json.NewEncoder(out).Encode(rows)
			}
			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "UNIT\tCATEGORY\tFACTOR")
			for _, r := range rows {
				fmt.Fprintf(tw, "%s\t%s\t%g %s\n", r.Symbol, r.Category, r.Multiplier, r.Base)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&food, "food", "", "food category (beverages, condiments, fruits, ...)")
	return cmd
}
