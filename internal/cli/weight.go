package cli

import (
	"fmt"

	"github.com/DarkSyed/sugari-sub000/internal/apperrors"
	"github.com/DarkSyed/sugari-sub000/internal/database"
	"github.com/spf13/cobra"
)

func weightCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "weight",
		Short: "Record and review weight measurements",
	}
	cmd.AddCommand(weightAddCmd())
	cmd.AddCommand(weightListCmd())
	cmd.AddCommand(weightUpdateCmd())
	cmd.AddCommand(weightDeleteCmd())
	return cmd
}

func weightAddCmd() *cobra.Command {
	var (
		value float64
		notes string
		at    string
	)
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a weight measurement",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if value <= 0 {
				return apperrors.NewValidationError("weight must be positive")
			}

			deps, err := openDependencies()
			if err != nil {
				return err
			}
			defer deps.Close()

			m := &database.WeightMeasurement{Value: value}
			if notes != "" {
				m.Notes = &notes
			}
			if at != "" {
				if m.Timestamp, err = parseWhen(at); err != nil {
					return err
				}
			}

			saved, err := deps.Weight.AddMeasurement(cmd.Context(), m)
			if err != nil {
				return err
			}
			fmt.Printf("Recorded weight #%d: %.1f at %s\n", saved.ID, saved.Value, fmtWhen(saved.Timestamp))
			return nil
		},
	}
	cmd.Flags().Float64Var(&value, "value", 0, "body weight (required)")
	cmd.Flags().StringVar(&notes, "notes", "", "free-form notes")
	cmd.Flags().StringVar(&at, "at", "", "when measured (YYYY-MM-DD [HH:MM], default: now)")
	cmd.MarkFlagRequired("value")
	return cmd
}

func weightListCmd() *cobra.Command {
	var (
		limit int
		from  string
		to    string
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List weight measurements, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := openDependencies()
			if err != nil {
				return err
			}
			defer deps.Close()

			var measurements []database.WeightMeasurement
			if from != "" || to != "" {
				start, end, err := parseRange(from, to, 0)
				if err != nil {
					return err
				}
				measurements, err = deps.Weight.GetMeasurementsForRange(cmd.Context(), start, end)
				if err != nil {
					return err
				}
			} else {
				measurements, err = deps.Weight.GetMeasurements(cmd.Context(), limit)
				if err != nil {
					return err
				}
			}

			if len(measurements) == 0 {
				fmt.Println("No weight measurements recorded.")
				return nil
			}
			for _, m := range measurements {
				fmt.Printf("#%-4d %s  %6.1f  %s\n", m.ID, fmtWhen(m.Timestamp), m.Value, strOrDash(m.Notes))
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 10, "maximum rows to show, 0 for all")
	cmd.Flags().StringVar(&from, "from", "", "range start (YYYY-MM-DD [HH:MM])")
	cmd.Flags().StringVar(&to, "to", "", "range end (YYYY-MM-DD [HH:MM])")
	return cmd
}

func weightUpdateCmd() *cobra.Command {
	var (
		value float64
		notes string
		at    string
	)
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update fields of a weight measurement",
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

			var patch database.WeightPatch
			if cmd.Flags().Changed("value") {
				if value <= 0 {
					return apperrors.NewValidationError("weight must be positive")
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

			if err := deps.Weight.UpdateMeasurement(cmd.Context(), id, patch); err != nil {
				return err
			}
			fmt.Printf("Updated weight #%d\n", id)
			return nil
		},
	}
	cmd.Flags().Float64Var(&value, "value", 0, "new body weight")
	cmd.Flags().StringVar(&notes, "notes", "", "new notes")
	cmd.Flags().StringVar(&at, "at", "", "new timestamp (YYYY-MM-DD [HH:MM])")
	return cmd
}

func weightDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a weight measurement",
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

			if err := deps.Weight.DeleteMeasurement(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Printf("Deleted weight #%d\n", id)
			return nil
		},
	}
}
