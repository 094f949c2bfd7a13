package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/instanimals/instanimals-cli/internal/domain"
)

func newApplyCmd(app *app) *cobra.Command {
	var application domain.AdoptionApplication

	cmd := &cobra.Command{
		Use:   "apply <pet-id>",
		Short: "Submit an adoption application for a pet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := application.Step1.Validate(); err != nil {
				return err
			}

			appID, err := app.gateway.Apply(cmd.Context(), args[0], application)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Submitted. Application ID: %s\n", appID)
			return nil
		},
	}

	flags := cmd.Flags()
	bindApplicantFlags(cmd, &application.Step1)
	flags.StringVar(&application.Step2.HasYard, "has-yard", "", "Do you have a yard (yes/no)")
	flags.StringVar(&application.Step2.OwnOrRent, "own-or-rent", "", "Own or rent your home")
	flags.StringVar(&application.Step2.HouseholdSize, "household-size", "", "Number of people in the household")
	flags.StringVar(&application.Step2.OtherPets, "other-pets", "", "Other pets in the home")
	flags.StringVar(&application.Step2.LandlordOK, "landlord-ok", "", "Landlord allows pets (yes/no/n-a)")
	flags.StringVar(&application.Step3.ExperienceLevel, "experience", "", "Experience level")
	flags.StringVar(&application.Step3.HoursPerWeek, "hours-per-week", "", "Hours per week available")
	flags.StringVar(&application.Step3.ExperienceNotes, "experience-notes", "", "Notes on prior experience")
	flags.StringVar(&application.Step4.PreferredSpecies, "preferred-species", "", "Preferred species")
	flags.StringVar(&application.Step4.PreferredSize, "preferred-size", "", "Preferred size")
	flags.StringVar(&application.Step4.CanMedicate, "can-medicate", "", "Able to give medication (yes/no)")
	flags.StringVar(&application.Step4.CanTransport, "can-transport", "", "Able to transport the pet (yes/no)")
	flags.StringVar(&application.Step4.Notes, "notes", "", "Anything else to add")
	bindCriteriaFlags(cmd, &application.Step4.Criteria)

	return cmd
}

func bindApplicantFlags(cmd *cobra.Command, details *domain.ApplicantDetails) {
	flags := cmd.Flags()
	flags.StringVar(&details.FirstName, "first-name", "", "First name")
	flags.StringVar(&details.LastName, "last-name", "", "Last name")
	flags.StringVar(&details.Address, "address", "", "Street address")
	flags.StringVar(&details.City, "city", "", "City")
	flags.StringVar(&details.State, "state", "", "State")
	flags.StringVar(&details.Zip, "zip", "", "ZIP code")
	flags.StringVar(&details.Phone, "phone", "", "Phone number")
	flags.StringVar(&details.Email, "email", "", "Email address")
}

func bindCriteriaFlags(cmd *cobra.Command, criteria *domain.Criteria) {
	flags := cmd.Flags()
	flags.BoolVar(&criteria.Age18, "age-18", false, "Confirm you are 18 or older")
	flags.BoolVar(&criteria.CountyResident, "county-resident", false, "Confirm county residency")
	flags.BoolVar(&criteria.CanTransportClinic, "clinic-transport", false, "Confirm you can transport to a clinic")
	flags.BoolVar(&criteria.CanSeparate, "can-separate", false, "Confirm you can separate animals if needed")
	flags.StringVar(&criteria.Signature, "signature", "", "Type your full name as a signature")
}
