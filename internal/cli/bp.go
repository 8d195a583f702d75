package cli

import (
	"fmt"

	"github.com/DarkSyed/sugari-sub000/internal/apperrors"
	"github.com/DarkSyed/sugari-sub000/internal/database"
	"github.com/spf13/cobra"
)

func bpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bp",
		Short: "Record and review blood pressure readings",
	}
	cmd.AddCommand(bpAddCmd())
	cmd.AddCommand(bpListCmd())
	cmd.AddCommand(bpUpdateCmd())
	cmd.AddCommand(bpDeleteCmd())
	return cmd
}

func bpAddCmd() *cobra.Command {
	var (
		systolic  int
		diastolic int
		notes     string
		at        string
	)
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a blood pressure reading",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if systolic <= 0 || diastolic <= 0 {
				return apperrors.NewValidationError("systolic and diastolic must be positive")
			}
			if diastolic >= systolic {
				return apperrors.NewValidationError("diastolic must be below systolic")
			}

			deps, err := openDependencies()
			if err != nil {
				return err
			}
			defer deps.Close()

			reading := &database.BloodPressureReading{Systolic: systolic, Diastolic: diastolic}
			if notes != "" {
				reading.Notes = &notes
			}
			if at != "" {
				if reading.Timestamp, err = parseWhen(at); err != nil {
					return err
				}
			}

			saved, err := deps.BloodPressure.AddReading(cmd.Context(), reading)
			if err != nil {
				return err
			}
			fmt.Printf("Recorded blood pressure #%d: %d/%d mmHg at %s\n",
				saved.ID, saved.Systolic, saved.Diastolic, fmtWhen(saved.Timestamp))
			return nil
		},
	}
	cmd.Flags().IntVar(&systolic, "systolic", 0, "systolic pressure in mmHg (required)")
	cmd.Flags().IntVar(&diastolic, "diastolic", 0, "diastolic pressure in mmHg (required)")
	cmd.Flags().StringVar(&notes, "notes", "", "free-form notes")
	cmd.Flags().StringVar(&at, "at", "", "when measured (YYYY-MM-DD [HH:MM], default: now)")
	cmd.MarkFlagRequired("systolic")
	cmd.MarkFlagRequired("diastolic")
	return cmd
}

func bpListCmd() *cobra.Command {
	var (
		limit int
		from  string
		to    string
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List blood pressure readings, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := openDependencies()
			if err != nil {
				return err
			}
			defer deps.Close()

			var readings []database.BloodPressureReading
			if from != "" || to != "" {
				start, end, err := parseRange(from, to, 0)
				if err != nil {
					return err
				}
				readings, err = deps.BloodPressure.GetReadingsForRange(cmd.Context(), start, end)
				if err != nil {
					return err
				}
			} else {
				readings, err = deps.BloodPressure.GetReadings(cmd.Context(), limit)
				if err != nil {
					return err
				}
			}

			if len(readings) == 0 {
				fmt.Println("No blood pressure readings recorded.")
				return nil
			}
			for _, r := range readings {
				fmt.Printf("#%-4d %s  %3d/%-3d mmHg  %s\n",
					r.ID, fmtWhen(r.Timestamp), r.Systolic, r.Diastolic, strOrDash(r.Notes))
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 10, "maximum rows to show, 0 for all")
	cmd.Flags().StringVar(&from, "from", "", "range start (YYYY-MM-DD [HH:MM])")
	cmd.Flags().StringVar(&to, "to", "", "range end (YYYY-MM-DD [HH:MM])")
	return cmd
}

func bpUpdateCmd() *cobra.Command {
	var (
		systolic  int
		diastolic int
		notes     string
		at        string
	)
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update fields of a blood pressure reading",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			deps, err := openDependencies()
			if err != nil {
				return err
			}
			defer deps.Close()

			var patch database.BloodPressurePatch
			if cmd.Flags().Changed("systolic") {
				if systolic <= 0 {
					return apperrors.NewValidationError("systolic must be positive")
				}
				patch.Systolic = &systolic
			}
			if cmd.Flags().Changed("diastolic") {
				if diastolic <= 0 {
					return apperrors.NewValidationError("diastolic must be positive")
				}
				patch.Diastolic = &diastolic
			}
			if cmd.Flags().Changed("notes") {
				patch.Notes = &notes
			}
			if cmd.Flags().Changed("at") {
				ts, err := parseWhen(at)
				if err != nil {
					return err
				}
				patch.Timestamp = &ts
			}

			if err := deps.BloodPressure.UpdateReading(cmd.Context(), id, patch); err != nil {
				return err
			}
			fmt.Printf("Updated blood pressure #%d\n", id)
			return nil
		},
	}
	cmd.Flags().IntVar(&systolic, "systolic", 0, "new systolic pressure in mmHg")
	cmd.Flags().IntVar(&diastolic, "diastolic", 0, "new diastolic pressure in mmHg")
	cmd.Flags().StringVar(&notes, "notes", "", "new notes")
	cmd.Flags().StringVar(&at, "at", "", "new timestamp (YYYY-MM-DD [HH:MM])")
	return cmd
}

func bpDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a blood pressure reading",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			deps, err := openDependencies()
			if err != nil {
				return err
			}
			defer deps.Close()

			if err := deps.BloodPressure.DeleteReading(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Printf("Deleted blood pressure #%d\n", id)
			return nil
		},
	}
}
