package cli

import (
	"fmt"

	"github.com/DarkSyed/sugari-sub000/internal/apperrors"
	"github.com/DarkSyed/sugari-sub000/internal/database"
	"github.com/spf13/cobra"
)

func medicationCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "med",
		Aliases: []string{"medication"},
		Short:   "Record and review medications",
	}
	cmd.AddCommand(medicationAddCmd())
	cmd.AddCommand(medicationListCmd())
	cmd.AddCommand(medicationUpdateCmd())
	cmd.AddCommand(medicationDeleteCmd())
	return cmd
}

func parseMedicationType(s string) (database.MedicationType, error) {
	t := database.MedicationType(s)
	if !t.Valid() {
		return "", apperrors.NewValidationError(fmt.Sprintf("unknown medication type %q, want pill or injection", s))
	}
	return t, nil
}

func medicationAddCmd() *cobra.Command {
	var (
		name      string
		medType   string
		dosage    string
		frequency string
		notes     string
		image     string
		at        string
	)
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a medication, optionally with a photo",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" {
				return apperrors.NewValidationError("medication name is required")
			}
			if dosage == "" || frequency == "" {
				return apperrors.NewValidationError("dosage and frequency are required")
			}
			t, err := parseMedicationType(medType)
			if err != nil {
				return err
			}

			deps, err := openDependencies()
			if err != nil {
				return err
			}
			defer deps.Close()

			med := &database.Medication{
				Name:      name,
				Type:      t,
				Dosage:    dosage,
				Frequency: frequency,
			}
			if notes != "" {
				med.Notes = &notes
			}
			if at != "" {
				if med.Timestamp, err = parseWhen(at); err != nil {
					return err
				}
			}

			saved, err := deps.Medications.AddMedication(cmd.Context(), med, image)
			if err != nil {
				return err
			}

			fmt.Printf("Recorded medication #%d: %s %s, %s\n", saved.ID, saved.Name, saved.Dosage, saved.Frequency)
			if saved.ImagePath != nil {
				fmt.Printf("Photo stored at %s\n", *saved.ImagePath)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "medication name (required)")
	cmd.Flags().StringVar(&medType, "type", "", "medication type: pill or injection (required)")
	cmd.Flags().StringVar(&dosage, "dosage", "", "dose per intake, e.g. 500mg (required)")
	cmd.Flags().StringVar(&frequency, "frequency", "", "how often it is taken, e.g. twice daily (required)")
	cmd.Flags().StringVar(&notes, "notes", "", "free-form notes")
	cmd.Flags().StringVar(&image, "image", "", "photo file to copy into managed storage")
	cmd.Flags().StringVar(&at, "at", "", "when it was started (YYYY-MM-DD [HH:MM], default: now)")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("type")
	cmd.MarkFlagRequired("dosage")
	cmd.MarkFlagRequired("frequency")
	return cmd
}

func medicationListCmd() *cobra.Command {
	var (
		limit int
		from  string
		to    string
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List medications, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := openDependencies()
			if err != nil {
				return err
			}
			defer deps.Close()

			var meds []database.Medication
			if from != "" || to != "" {
				start, end, err := parseRange(from, to, 0)
				if err != nil {
					return err
				}
				meds, err = deps.Medications.GetMedicationsForRange(cmd.Context(), start, end)
				if err != nil {
					return err
				}
			} else {
				meds, err = deps.Medications.GetMedications(cmd.Context(), limit)
				if err != nil {
					return err
				}
			}

			if len(meds) == 0 {
				fmt.Println("No medications recorded.")
				return nil
			}
			for _, m := range meds {
				photo := ""
				if m.ImagePath != nil && *m.ImagePath != "" {
					photo = "  [photo]"
				}
				fmt.Printf("#%-4d %s  %-20s %-9s %-10s %-14s %s%s\n",
					m.ID, fmtWhen(m.Timestamp), m.Name, m.Type, m.Dosage, m.Frequency,
					strOrDash(m.Notes), photo)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 10, "maximum rows to show, 0 for all")
	cmd.Flags().StringVar(&from, "from", "", "range start (YYYY-MM-DD [HH:MM])")
	cmd.Flags().StringVar(&to, "to", "", "range end (YYYY-MM-DD [HH:MM])")
	return cmd
}

func medicationUpdateCmd() *cobra.Command {
	var (
		name      string
		medType   string
		dosage    string
		frequency string
		notes     string
		at        string
	)
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update fields of a medication",
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

			var patch database.MedicationPatch
			if cmd.Flags().Changed("name") {
				if name == "" {
					return apperrors.NewValidationError("medication name cannot be empty")
				}
				patch.Name = &name
			}
			if cmd.Flags().Changed("type") {
				t, err := parseMedicationType(medType)
				if err != nil {
					return err
				}
				patch.Type = &t
			}
			if cmd.Flags().Changed("dosage") {
				patch.Dosage = &dosage
			}
			if cmd.Flags().Changed("frequency") {
				patch.Frequency = &frequency
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

			if err := deps.Medications.UpdateMedication(cmd.Context(), id, patch); err != nil {
				return err
			}
			fmt.Printf("Updated medication #%d\n", id)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "new name")
	cmd.Flags().StringVar(&medType, "type", "", "new medication type")
	cmd.Flags().StringVar(&dosage, "dosage", "", "new dosage")
	cmd.Flags().StringVar(&frequency, "frequency", "", "new frequency")
	cmd.Flags().StringVar(&notes, "notes", "", "new notes")
	cmd.Flags().StringVar(&at, "at", "", "new timestamp (YYYY-MM-DD [HH:MM])")
	return cmd
}

func medicationDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a medication and its stored photo",
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

			if err := deps.Medications.DeleteMedication(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Printf("Deleted medication #%d\n", id)
			return nil
		},
	}
}
