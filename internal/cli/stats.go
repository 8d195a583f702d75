package cli

import (
	"fmt"

	"github.com/DarkSyed/sugari-sub000/internal/glucose"
	"github.com/spf13/cobra"
)

func statsCmd() *cobra.Command {
	var (
		days int
		from string
		to   string
	)
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Summarize blood sugar readings over a period",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			start, end, err := parseRange(from, to, days)
			if err != nil {
				return err
			}

			deps, err := openDependencies()
			if err != nil {
				return err
			}
			defer deps.Close()

			settings := settingsOrDefaults(cmd.Context(), deps.Settings)

			readings, err := deps.BloodSugar.GetReadingsForRange(cmd.Context(), start, end)
			if err != nil {
				return err
			}

			summary := glucose.Summarize(readings)
			if summary.Count == 0 {
				fmt.Println("No readings in the selected period.")
				return nil
			}

			fmt.Printf("Period:         %s to %s\n", fmtWhen(start), fmtWhen(end))
			fmt.Printf("Readings:       %d\n", summary.Count)
			fmt.Printf("Average:        %s\n", glucose.Format(summary.Average, settings.Units))
			fmt.Printf("Lowest:         %s\n", glucose.Format(summary.Min, settings.Units))
			fmt.Printf("Highest:        %s\n", glucose.Format(summary.Max, settings.Units))
			fmt.Printf("In range:       %.1f%%\n", summary.InRangePct)
			fmt.Printf("Estimated A1C:  %.1f%%\n", summary.EstimatedA1C)
			return nil
		},
	}
	cmd.Flags().IntVar(&days, "days", 7, "period length in days when no explicit range is given, 0 for all history")
	cmd.Flags().StringVar(&from, "from", "", "range start (YYYY-MM-DD [HH:MM])")
	cmd.Flags().StringVar(&to, "to", "", "range end (YYYY-MM-DD [HH:MM])")
	return cmd
}
