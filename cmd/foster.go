package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/instanimals/instanimals-cli/internal/domain"
)

func newFosterCmd(app *app) *cobra.Command {
	var interest domain.FosterInterest

	cmd := &cobra.Command{
		Use:   "foster",
		Short: "Register interest in becoming a foster family",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := interest.Personal.Validate(); err != nil {
				return err
			}

			if err := app.gateway.FosterInterest(cmd.Context(), interest); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Application received!")
			return nil
		},
	}

	flags := cmd.Flags()
	bindApplicantFlags(cmd, &interest.Personal)
	flags.BoolVar(&interest.FosterOptions.ShortTerm, "short-term", false, "Available for short-term fostering")
	flags.BoolVar(&interest.FosterOptions.LongTerm, "long-term", false, "Available for long-term fostering")
	flags.StringVar(&interest.Household.HasYard, "has-yard", "", "Do you have a yard (yes/no)")
	flags.StringVar(&interest.Household.OwnOrRent, "own-or-rent", "", "Own or rent your home")
	flags.StringVar(&interest.Household.HouseholdSize, "household-size", "", "Number of people in the household")
	flags.StringVar(&interest.Household.OtherPets, "other-pets", "", "Other pets in the home")
	flags.StringVar(&interest.Household.LandlordOK, "landlord-ok", "", "Landlord allows pets (yes/no/n-a)")
	flags.StringVar(&interest.Household.ExperienceLevel, "experience", "", "Experience level")
	flags.StringVar(&interest.Household.HoursPerWeek, "hours-per-week", "", "Hours per week available")
	flags.StringVar(&interest.Household.ExperienceNotes, "experience-notes", "", "Notes on prior experience")
	flags.StringVar(&interest.Household.PreferredSpecies, "preferred-species", "", "Preferred species")
	flags.StringVar(&interest.Household.PreferredSize, "preferred-size", "", "Preferred size")
	flags.StringVar(&interest.Household.CanMedicate, "can-medicate", "", "Able to give medication (yes/no)")
	flags.StringVar(&interest.Household.CanTransport, "can-transport", "", "Able to transport pets (yes/no)")
	flags.StringVar(&interest.Household.Notes, "notes", "", "Anything else to add")
	bindCriteriaFlags(cmd, &interest.Criteria)

	return cmd
}
