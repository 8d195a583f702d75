package cli

import (
	"fmt"

	"github.com/DarkSyed/sugari-sub000/internal/apperrors"
	"github.com/DarkSyed/sugari-sub000/internal/database"
	"github.com/spf13/cobra"
)

func settingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change user settings",
	}
	cmd.AddCommand(settingsShowCmd())
	cmd.AddCommand(settingsSetCmd())
	return cmd
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func printSettings(s *database.UserSettings) {
	diabetesType := "-"
	if s.DiabetesType != nil {
		diabetesType = string(*s.DiabetesType)
	}
	fmt.Printf("First name:     %s\n", strOrDash(s.FirstName))
	fmt.Printf("Last name:      %s\n", strOrDash(s.LastName))
	fmt.Printf("Email:          %s\n", strOrDash(s.Email))
	fmt.Printf("Diabetes type:  %s\n", diabetesType)
	fmt.Printf("Units:          %s\n", s.Units)
	fmt.Printf("Dark mode:      %s\n", onOff(s.DarkMode))
	fmt.Printf("Notifications:  %s\n", onOff(s.Notifications))
}

func settingsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := openDependencies()
			if err != nil {
				return err
			}
			defer deps.Close()

			settings, err := deps.Settings.GetSettings(cmd.Context())
			if err != nil {
				return err
			}
			printSettings(settings)
			return nil
		},
	}
}

func settingsSetCmd() *cobra.Command {
	var (
		firstName     string
		lastName      string
		email         string
		diabetesType  string
		units         string
		darkMode      bool
		notifications bool
	)
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change settings fields",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var patch database.SettingsPatch
			if cmd.Flags().Changed("first-name") {
				patch.FirstName = &firstName
			}
			if cmd.Flags().Changed("last-name") {
				patch.LastName = &lastName
			}
			if cmd.Flags().Changed("email") {
				patch.Email = &email
			}
			if cmd.Flags().Changed("diabetes-type") {
				t := database.DiabetesType(diabetesType)
				if !t.Valid() {
					return apperrors.NewValidationError(fmt.Sprintf("unknown diabetes type %q", diabetesType))
				}
				patch.DiabetesType = &t
			}
			if cmd.Flags().Changed("units") {
				if !database.ValidUnit(units) {
					return apperrors.NewValidationError(fmt.Sprintf("unsupported unit %q, want mg/dL or mmol/L", units))
				}
				patch.Units = &units
			}
			if cmd.Flags().Changed("dark-mode") {
				patch.DarkMode = &darkMode
			}
			if cmd.Flags().Changed("notifications") {
				patch.Notifications = &notifications
			}

			deps, err := openDependencies()
			if err != nil {
				return err
			}
			defer deps.Close()

			settings, err := deps.Settings.UpdateSettings(cmd.Context(), patch)
			if err != nil {
				return err
			}
			printSettings(settings)
			return nil
		},
	}
	cmd.Flags().StringVar(&firstName, "first-name", "", "first name")
	cmd.Flags().StringVar(&lastName, "last-name", "", "last name")
	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().StringVar(&diabetesType, "diabetes-type", "", "diagnosis: type1, type2, gestational, prediabetes, other")
	cmd.Flags().StringVar(&units, "units", "", "display unit: mg/dL or mmol/L")
	cmd.Flags().BoolVar(&darkMode, "dark-mode", false, "enable dark mode")
	cmd.Flags().BoolVar(&notifications, "notifications", true, "enable notifications")
	return cmd
}
