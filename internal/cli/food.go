package cli

import (
	"fmt"

	"github.com/DarkSyed/sugari-sub000/internal/apperrors"
	"github.com/DarkSyed/sugari-sub000/internal/database"
	"github.com/spf13/cobra"
)

func foodCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "food",
		Short: "Record and review food entries",
	}
	cmd.AddCommand(foodAddCmd())
	cmd.AddCommand(foodListCmd())
	cmd.AddCommand(foodUpdateCmd())
	cmd.AddCommand(foodDeleteCmd())
	return cmd
}

func foodAddCmd() *cobra.Command {
	var (
		name  string
		carbs float64
		notes string
		at    string
	)
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a food entry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" {
				return apperrors.NewValidationError("food name is required")
			}

			deps, err := openDependencies()
			if err != nil {
				return err
			}
			defer deps.Close()

			entry := &database.FoodEntry{Name: name}
			if cmd.Flags().Changed("carbs") {
				if carbs < 0 {
					return apperrors.NewValidationError("carbs cannot be negative")
				}
				entry.Carbs = &carbs
			}
			if notes != "" {
				entry.Notes = &notes
			}
			if at != "" {
				if entry.Timestamp, err = parseWhen(at); err != nil {
					return err
				}
			}

			saved, err := deps.Food.AddEntry(cmd.Context(), entry)
			if err != nil {
				return err
			}
			fmt.Printf("Recorded food entry #%d: %s at %s\n", saved.ID, saved.Name, fmtWhen(saved.Timestamp))
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "what was eaten (required)")
	cmd.Flags().Float64Var(&carbs, "carbs", 0, "carbohydrates in grams")
	cmd.Flags().StringVar(&notes, "notes", "", "free-form notes")
	cmd.Flags().StringVar(&at, "at", "", "when it was eaten (YYYY-MM-DD [HH:MM], default: now)")
	cmd.MarkFlagRequired("name")
	return cmd
}

func foodListCmd() *cobra.Command {
	var (
		limit int
		from  string
		to    string
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List food entries, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := openDependencies()
			if err != nil {
				return err
			}
			defer deps.Close()

			var entries []database.FoodEntry
			if from != "" || to != "" {
				start, end, err := parseRange(from, to, 0)
				if err != nil {
					return err
				}
				entries, err = deps.Food.GetEntriesForRange(cmd.Context(), start, end)
				if err != nil {
					return err
				}
			} else {
				entries, err = deps.Food.GetEntries(cmd.Context(), limit)
				if err != nil {
					return err
				}
			}

			if len(entries) == 0 {
				fmt.Println("No food entries recorded.")
				return nil
			}
			for _, e := range entries {
				carbsLabel := "-"
				if e.Carbs != nil {
					carbsLabel = fmt.Sprintf("%.0fg", *e.Carbs)
				}
				fmt.Printf("#%-4d %s  %-20s %-6s %s\n",
					e.ID, fmtWhen(e.Timestamp), e.Name, carbsLabel, strOrDash(e.Notes))
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 10, "maximum rows to show, 0 for all")
	cmd.Flags().StringVar(&from, "from", "", "range start (YYYY-MM-DD [HH:MM])")
	cmd.Flags().StringVar(&to, "to", "", "range end (YYYY-MM-DD [HH:MM])")
	return cmd
}

func foodUpdateCmd() *cobra.Command {
	var (
		name  string
		carbs float64
		notes string
		at    string
	)
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update fields of a food entry",
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

			var patch database.FoodPatch
			if cmd.Flags().Changed("name") {
				if name == "" {
					return apperrors.NewValidationError("food name cannot be empty")
				}
				patch.Name = &name
			}
			if cmd.Flags().Changed("carbs") {
				if carbs < 0 {
					return apperrors.NewValidationError("carbs cannot be negative")
				}
				patch.Carbs = &carbs
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

			if err := deps.Food.UpdateEntry(cmd.Context(), id, patch); err != nil {
				return err
			}
			fmt.Printf("Updated food entry #%d\n", id)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "new name")
	cmd.Flags().Float64Var(&carbs, "carbs", 0, "new carbohydrates in grams")
	cmd.Flags().StringVar(&notes, "notes", "", "new notes")
	cmd.Flags().StringVar(&at, "at", "", "new timestamp (YYYY-MM-DD [HH:MM])")
	return cmd
}

func foodDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a food entry",
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

			if err := deps.Food.DeleteEntry(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Printf("Deleted food entry #%d\n", id)
			return nil
		},
	}
}
