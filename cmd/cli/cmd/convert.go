// Package cmd - convert command
package cmd

import (
	"math"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"nutricalc/core/output"
	"nutricalc/core/units"
	"nutricalc/internal/config"
	"nutricalc/internal/errors"
	"nutricalc/internal/logging"
)

func newConvertCmd(opts *rootOptions) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "convert VALUE FROM TO",
		Short: "Convert a quantity between units",
		Long: `Convert a quantity between weight (g, kg, oz, lb), volume
(ml, cups, tbsp, tsp, "fl oz") or length (cm, m, ft, in) units.

Unknown units are treated as the base unit and units from different
categories are converted anyway, unless --strict (or units.strict in the
config file) is set.

Examples:
  nutricalc convert 2 kg lb
  nutricalc convert 3 tbsp ml
  nutricalc convert 1 cups "fl oz" --strict`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return errors.Wrapf(errors.TypeInput, err, "invalid value %q", args[0])
			}
			if !isFinite(value) {
				return errors.Newf(errors.TypeInput, "value must be a finite number, got %q", args[0])
			}
			from, to := args[1], args[2]
			cfg := config.Get()

			var result float64
			if strict || cfg.Units.Strict {
				result, err = units.ConvertStrict(value, from, to)
				if err != nil {
					return err
				}
			} else {
				result = units.Convert(value, from, to)
				if _, ok := units.Lookup(from); !ok {
					logging.Warn("unrecognized unit treated as base unit", zap.String("unit", from))
				}
				if _, ok := units.Lookup(to); !ok {
					logging.Warn("unrecognized unit treated as base unit", zap.String("unit", to))
				}
			}

			if !isFinite(result) {
				return errors.Newf(errors.TypeInput, "%s %s is out of range when expressed in %s", args[0], from, to).
					WithContext("value", value)
			}

			logging.Info("converted",
				zap.Float64("value", value),
				zap.String("from", from),
				zap.String("to", to),
				zap.Float64("result", result))

			return opts.render(cmd, output.NewConversionReport(value, from, to, result, cfg.Output.Precision))
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "reject unknown units and cross-category conversions")
	return cmd
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
