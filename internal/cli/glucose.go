package cli

import (
	"fmt"

	"github.com/DarkSyed/sugari-sub000/internal/apperrors"
	"github.com/DarkSyed/sugari-sub000/internal/database"
	"github.com/DarkSyed/sugari-sub000/internal/glucose"
	"github.com/spf13/cobra"
)

func glucoseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "glucose",
		Short: "Record and review blood sugar readings",
	}
	cmd.AddCommand(glucoseAddCmd())
	cmd.AddCommand(glucoseListCmd())
	cmd.AddCommand(glucoseUpdateCmd())
	cmd.AddCommand(glucoseDeleteCmd())
	return cmd
}

// resolveUnit picks the unit a value was entered in: the explicit flag when
// given, the configured display unit otherwise.
func resolveUnit(flag, configured string) (string, error) {
	u := flag
	if u == "" {
		u = configured
	}
	if !database.ValidUnit(u) {
		return "", apperrors.NewValidationError(fmt.Sprintf("unsupported unit %q", u))
	}
	return u, nil
}

func parseReadingContext(s string) (*database.ReadingContext, error) {
	if s == "" {
		return nil, nil
	}
	c := database.ReadingContext(s)
	if !c.Valid() {
		return nil, apperrors.NewValidationError(fmt.Sprintf("unknown reading context %q", s))
	}
	return &c, nil
}

func glucoseAddCmd() *cobra.Command {
	var (
		value      float64
		unit       string
		readingCtx string
		notes      string
		at         string
	)
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a blood sugar reading",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if value <= 0 {
				return apperrors.NewValidationError("reading value must be positive")
			}

			deps, err := openDependencies()
			if err != nil {
				return err
			}
			defer deps.Close()

			settings := settingsOrDefaults(cmd.Context(), deps.Settings)
			u, err := resolveUnit(unit, settings.Units)
			if err != nil {
				return err
			}
			mgdl := value
			if u == database.UnitMmol {
				mgdl = glucose.ToMgdl(value)
			}

			reading := &database.BloodSugarReading{Value: mgdl}
			reading.Context, err = parseReadingContext(readingCtx)
			if err != nil {
				return err
			}
			if notes != "" {
				reading.Notes = &notes
			}
			if at != "" {
				if reading.Timestamp, err = parseWhen(at); err != nil {
					return err
				}
			}

			saved, err := deps.BloodSugar.AddReading(cmd.Context(), reading)
			if err != nil {
				return err
			}

			level := glucose.Classify(saved.Value, saved.Context)
			fmt.Printf("Recorded reading #%d: %s (%s) at %s\n",
				saved.ID, glucose.Format(saved.Value, settings.Units), level, fmtWhen(saved.Timestamp))
			return nil
		},
	}
	cmd.Flags().Float64Var(&value, "value", 0, "reading value (required)")
	cmd.Flags().StringVar(&unit, "unit", "", "unit the value is given in: mg/dL or mmol/L (default: configured unit)")
	cmd.Flags().StringVar(&readingCtx, "context", "", "reading context: before_meal, after_meal, fasting, bedtime, other")
	cmd.Flags().StringVar(&notes, "notes", "", "free-form notes")
	cmd.Flags().StringVar(&at, "at", "", "when the reading was taken (YYYY-MM-DD [HH:MM], default: now)")
	cmd.MarkFlagRequired("value")
	return cmd
}

func glucoseListCmd() *cobra.Command {
	var (
		limit int
		from  string
		to    string
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List blood sugar readings, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := openDependencies()
			if err != nil {
				return err
			}
			defer deps.Close()

			settings := settingsOrDefaults(cmd.Context(), deps.Settings)

			var readings []database.BloodSugarReading
			if from != "" || to != "" {
				start, end, err := parseRange(from, to, 0)
				if err != nil {
					return err
				}
				readings, err = deps.BloodSugar.GetReadingsForRange(cmd.Context(), start, end)
				if err != nil {
					return err
				}
			} else {
				readings, err = deps.BloodSugar.GetReadings(cmd.Context(), limit)
				if err != nil {
					return err
				}
			}

			if len(readings) == 0 {
				fmt.Println("No readings recorded.")
				return nil
			}
			for _, r := range readings {
				ctxLabel := "-"
				if r.Context != nil {
					ctxLabel = string(*r.Context)
				}
				fmt.Printf("#%-4d %s  %-12s %-11s %s\n",
					r.ID, fmtWhen(r.Timestamp), glucose.Format(r.Value, settings.Units),
					ctxLabel, strOrDash(r.Notes))
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 10, "maximum rows to show, 0 for all")
	cmd.Flags().StringVar(&from, "from", "", "range start (YYYY-MM-DD [HH:MM])")
	cmd.Flags().StringVar(&to, "to", "", "range end (YYYY-MM-DD [HH:MM])")
	return cmd
}

func glucoseUpdateCmd() *cobra.Command {
	var (
		value      float64
		unit       string
		readingCtx string
		notes      string
		at         string
	)
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update fields of a blood sugar reading",
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

			var patch database.BloodSugarPatch
			if cmd.Flags().Changed("value") {
				if value <= 0 {
					return apperrors.NewValidationError("reading value must be positive")
				}
				settings := settingsOrDefaults(cmd.Context(), deps.Settings)
				u, err := resolveUnit(unit, settings.Units)
				if err != nil {
					return err
				}
				mgdl := value
				if u == database.UnitMmol {
					mgdl = glucose.ToMgdl(value)
				}
				patch.Value = &mgdl
			}
			if cmd.Flags().Changed("context") {
				c, err := parseReadingContext(readingCtx)
				if err != nil {
					return err
				}
				patch.Context = c
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

			if err := deps.BloodSugar.UpdateReading(cmd.Context(), id, patch); err != nil {
				return err
			}
			fmt.Printf("Updated reading #%d\n", id)
			return nil
		},
	}
	cmd.Flags().Float64Var(&value, "value", 0, "new reading value")
	cmd.Flags().StringVar(&unit, "unit", "", "unit the new value is given in")
	cmd.Flags().StringVar(&readingCtx, "context", "", "new reading context")
	cmd.Flags().StringVar(&notes, "notes", "", "new notes")
	cmd.Flags().StringVar(&at, "at", "", "new timestamp (YYYY-MM-DD [HH:MM])")
	return cmd
}

func glucoseDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a blood sugar reading",
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

			if err := deps.BloodSugar.DeleteReading(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Printf("Deleted reading #%d\n", id)
			return nil
		},
	}
}
