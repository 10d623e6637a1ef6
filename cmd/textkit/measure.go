package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"textkit/internal/measure"
)

func newMeasureCommand() *cobra.Command {
	var (
		subject  string
		steps    int
		stepSize int
		metric   string
		exponent float64
	)

	cmd := &cobra.Command{
		Use:   "measure",
		Short: "Time an algorithm over growing input sizes",
		Long: `measure runs a built-in subject at increasing sizes, recording wall
time and allocated bytes per run, then fits the observations: the
empirical log/log growth exponent and, when --exponent names a candidate
class, the averaged scale constant and its residuals.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			subjects := measure.NewSubjects()
			fn, err := subjects.ByName(subject)
			if err != nil {
				return err
			}

			if steps == 0 {
				steps = cfg.Measure.Steps
			}
			if stepSize == 0 {
				stepSize = cfg.Measure.StepSize
			}

			results, err := measure.Investigate(fn, steps, stepSize)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), measure.RenderResults(results))

			m := measure.Metric(metric)
			slope, err := measure.LogLogSlope(results, m)
			if err != nil {
				return err
			}
			if math.IsNaN(slope) {
				color.Yellow("not enough usable points for a log/log fit")
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "log/log slope (%s): %.3f\n", metric, slope)
			}

			if cmd.Flags().Changed("exponent") {
				factor, err := measure.ScaleFactor(results, exponent, m)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "scale factor for n^%.1f: %.6g\n", exponent, factor)

				measured := make([]float64, len(results))
				for i, r := range results {
					measured[i], _ = r.Value(m)
				}
				residuals, err := measure.Residuals(measured, measure.Scaled(results, factor, exponent))
				if err != nil {
					return err
				}
				parts := make([]string, len(residuals))
				for i, r := range residuals {
					parts[i] = fmt.Sprintf("%.3g", r)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "residuals: %s\n", strings.Join(parts, ", "))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "selection-sort",
		"subject to measure: "+strings.Join(measure.Names(), ", "))
	cmd.Flags().IntVar(&steps, "steps", 0, "number of sizes to measure (0 = configured default)")
	cmd.Flags().IntVar(&stepSize, "step-size", 0, "size increment per step (0 = configured default)")
	cmd.Flags().StringVar(&metric, "metric", "time", "metric to fit: time or bytes")
	cmd.Flags().Float64Var(&exponent, "exponent", 2, "candidate growth exponent for the scale fit")
	return cmd
}
