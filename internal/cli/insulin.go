package cli

import (
	"fmt"

	"github.com/DarkSyed/sugari-sub000/internal/apperrors"
	"github.com/DarkSyed/sugari-sub000/internal/database"
	"github.com/spf13/cobra"
)

func insulinCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "insulin",
		Short: "Record and review insulin doses",
	}
	cmd.AddCommand(insulinAddCmd())
	cmd.AddCommand(insulinListCmd())
	cmd.AddCommand(insulinUpdateCmd())
	cmd.AddCommand(insulinDeleteCmd())
	return cmd
}

func parseInsulinType(s string) (database.InsulinType, error) {
	t := database.InsulinType(s)
	if !t.Valid() {
		return "", apperrors.NewValidationError(fmt.Sprintf("unknown insulin type %q, want rapid, long, mixed or other", s))
	}
	return t, nil
}

func insulinAddCmd() *cobra.Command {
	var (
		units    float64
		doseType string
		notes    string
		at       string
	)
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an insulin dose",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if units <= 0 {
				return apperrors.NewValidationError("dose units must be positive")
			}
			t, err := parseInsulinType(doseType)
			if err != nil {
				return err
			}

			deps, err := openDependencies()
			if err != nil {
				return err
			}
			defer deps.Close()

			dose := &database.InsulinDose{Units: units, Type: t}
			if notes != "" {
				dose.Notes = &notes
			}
			if at != "" {
				if dose.Timestamp, err = parseWhen(at); err != nil {
					return err
				}
			}

			saved, err := deps.Insulin.AddDose(cmd.Context(), dose)
			if err != nil {
				return err
			}
			fmt.Printf("Recorded dose #%d: %.1f units %s at %s\n",
				saved.ID, saved.Units, saved.Type, fmtWhen(saved.Timestamp))
			return nil
		},
	}
	cmd.Flags().Float64Var(&units, "units", 0, "dose size in insulin units (required)")
	cmd.Flags().StringVar(&doseType, "type", "", "insulin type: rapid, long, mixed, other (required)")
	cmd.Flags().StringVar(&notes, "notes", "", "free-form notes")
	cmd.Flags().StringVar(&at, "at", "", "when the dose was taken (YYYY-MM-DD [HH:MM], default: now)")
	cmd.MarkFlagRequired("units")
	cmd.MarkFlagRequired("type")
	return cmd
}

func insulinListCmd() *cobra.Command {
	var (
		limit int
		from  string
		to    string
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List insulin doses, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := openDependencies()
			if err != nil {
				return err
			}
			defer deps.Close()

			var doses []database.InsulinDose
			if from != "" || to != "" {
				start, end, err := parseRange(from, to, 0)
				if err != nil {
					return err
				}
				doses, err = deps.Insulin.GetDosesForRange(cmd.Context(), start, end)
				if err != nil {
					return err
				}
			} else {
				doses, err = deps.Insulin.GetDoses(cmd.Context(), limit)
				if err != nil {
					return err
				}
			}

			if len(doses) == 0 {
				fmt.Println("No insulin doses recorded.")
				return nil
			}
			for _, d := range doses {
				fmt.Printf("#%-4d %s  %5.1f units  %-6s %s\n",
					d.ID, fmtWhen(d.Timestamp), d.Units, d.Type, strOrDash(d.Notes))
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 10, "maximum rows to show, 0 for all")
	cmd.Flags().StringVar(&from, "from", "", "range start (YYYY-MM-DD [HH:MM])")
	cmd.Flags().StringVar(&to, "to", "", "range end (YYYY-MM-DD [HH:MM])")
	return cmd
}

func insulinUpdateCmd() *cobra.Command {
	var (
		units    float64
		doseType string
		notes    string
		at       string
	)
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update fields of an insulin dose",
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

			var patch database.InsulinPatch
			if cmd.Flags().Changed("units") {
				if units <= 0 {
					return apperrors.NewValidationError("dose units must be positive")
				}
				patch.Units = &units
			}
			if cmd.Flags().Changed("type") {
				t, err := parseInsulinType(doseType)
				if err != nil {
					return err
				}
				patch.Type = &t
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

			if err := deps.Insulin.UpdateDose(cmd.Context(), id, patch); err != nil {
				return err
			}
			fmt.Printf("Updated dose #%d\n", id)
			return nil
		},
	}
	cmd.Flags().Float64Var(&units, "units", 0, "new dose size in insulin units")
	cmd.Flags().StringVar(&doseType, "type", "", "new insulin type")
	cmd.Flags().StringVar(&notes, "notes", "", "new notes")
	cmd.Flags().StringVar(&at, "at", "", "new timestamp (YYYY-MM-DD [HH:MM])")
	return cmd
}

func insulinDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an insulin dose",
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

			if err := deps.Insulin.DeleteDose(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Printf("Deleted dose #%d\n", id)
			return nil
		},
	}
}
