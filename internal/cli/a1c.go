package cli

import (
	"fmt"

	"github.com/DarkSyed/sugari-sub000/internal/apperrors"
	"github.com/DarkSyed/sugari-sub000/internal/database"
	"github.com/spf13/cobra"
)

func a1cCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "a1c",
		Short: "Record and review A1C test results",
	}
	cmd.AddCommand(a1cAddCmd())
	cmd.AddCommand(a1cListCmd())
	cmd.AddCommand(a1cUpdateCmd())
	cmd.AddCommand(a1cDeleteCmd())
	return cmd
}

func a1cAddCmd() *cobra.Command {
	var (
		value float64
		notes string
		at    string
	)
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an A1C result",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if value <= 0 {
				return apperrors.NewValidationError("A1C value must be positive")
			}

			deps, err := openDependencies()
			if err != nil {
				return err
			}
			defer deps.Close()

			reading := &database.A1CReading{Value: value}
			if notes != "" {
				reading.Notes = &notes
			}
			if at != "" {
				if reading.Timestamp, err = parseWhen(at); err != nil {
					return err
				}
			}

			saved, err := deps.A1C.AddReading(cmd.Context(), reading)
			if err != nil {
				return err
			}
			fmt.Printf("Recorded A1C #%d: %.1f%% at %s\n", saved.ID, saved.Value, fmtWhen(saved.Timestamp))
			return nil
		},
	}
	cmd.Flags().Float64Var(&value, "value", 0, "A1C percentage (required)")
	cmd.Flags().StringVar(&notes, "notes", "", "free-form notes")
	cmd.Flags().StringVar(&at, "at", "", "test date (YYYY-MM-DD [HH:MM], default: now)")
	cmd.MarkFlagRequired("value")
	return cmd
}

func a1cListCmd() *cobra.Command {
	var (
		limit int
		from  string
		to    string
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List A1C results, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := openDependencies()
			if err != nil {
				return err
			}
			defer deps.Close()

			var readings []database.A1CReading
			if from != "" || to != "" {
				start, end, err := parseRange(from, to, 0)
				if err != nil {
					return err
				}
				readings, err = deps.A1C.GetReadingsForRange(cmd.Context(), start, end)
				if err != nil {
					return err
				}
			} else {
				readings, err = deps.A1C.GetReadings(cmd.Context(), limit)
				if err != nil {
					return err
				}
			}

			if len(readings) == 0 {
				fmt.Println("No A1C results recorded.")
				return nil
			}
			for _, r := range readings {
				fmt.Printf("#%-4d %s  %4.1f%%  %s\n", r.ID, fmtWhen(r.Timestamp), r.Value, strOrDash(r.Notes))
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 10, "maximum rows to show, 0 for all")
	cmd.Flags().StringVar(&from, "from", "", "range start (YYYY-MM-DD [HH:MM])")
	cmd.Flags().StringVar(&to, "to", "", "range end (YYYY-MM-DD [HH:MM])")
	return cmd
}

func a1cUpdateCmd() *cobra.Command {
	var (
		value float64
		notes string
		at    string
	)
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update fields of an A1C result",
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

			var patch database.A1CPatch
			if cmd.Flags().Changed("value") {
				if value <= 0 {
					return apperrors.NewValidationError("A1C value must be positive")
				}
				patch.Value = &value
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

			if err := deps.A1C.UpdateReading(cmd.Context(), id, patch); err != nil {
				return err
			}
			fmt.Printf("Updated A1C #%d\n", id)
			return nil
		},
	}
	cmd.Flags().Float64Var(&value, "value", 0, "new A1C percentage")
	cmd.Flags().StringVar(&notes, "notes", "", "new notes")
	cmd.Flags().StringVar(&at, "at", "", "new timestamp (YYYY-MM-DD [HH:MM])")
	return cmd
}

func a1cDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an A1C result",
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

			if err := deps.A1C.DeleteReading(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Printf("Deleted A1C #%d\n", id)
			return nil
		},
	}
}
