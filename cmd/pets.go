package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/instanimals/instanimals-cli/internal/domain"
)

func newPetsCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pets",
		Short: "Browse adoption-pipeline pets",
	}

	cmd.AddCommand(
		newPetsUrgentCmd(app),
		newPetsExploreCmd(app),
		newPetsShowCmd(app),
		newPetsMatchCmd(app),
	)

	return cmd
}

func newPetsUrgentCmd(app *app) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "urgent",
		Short: "List pets that need placement most urgently",
		RunE: func(cmd *cobra.Command, _ []string) error {
			pets, err := app.gateway.UrgentPets(cmd.Context(), limit)
			if err != nil {
				return err
			}
			printPets(cmd, pets, "URGENT")
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 3, "Maximum number of pets")

	return cmd
}

func newPetsExploreCmd(app *app) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "explore",
		Short: "List pets seeking a home",
		RunE: func(cmd *cobra.Command, _ []string) error {
			pets, err := app.gateway.ExplorePets(cmd.Context(), limit)
			if err != nil {
				return err
			}
			printPets(cmd, pets, "Seeking")
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 5, "Maximum number of pets")

	return cmd
}

func newPetsShowCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <pet-id>",
		Short: "Show one pet's full record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pet, err := app.gateway.Pet(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "%s  [%s]\n", pet.Name, pet.Status)
			_, _ = fmt.Fprintf(out, "%s · %s · %s · %dmo · %s\n",
				pet.Species, pet.Breed, pet.Size, pet.AgeMonths, domain.GenderLabel(pet.Gender))
			_, _ = fmt.Fprintf(out, "Energy: %d/5  Medical needs: %s\n", pet.Energy, yesNo(pet.MedicalNeeds))
			for _, reason := range pet.WhyUrgent {
				_, _ = fmt.Fprintf(out, "Why urgent: %s\n", reason)
			}
			return nil
		},
	}
}

func newPetsMatchCmd(app *app) *cobra.Command {
	var criteria domain.MatchCriteria

	cmd := &cobra.Command{
		Use:   "match <pet-id>",
		Short: "Score how well a pet fits your household",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.gateway.Match(cmd.Context(), args[0], criteria)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "Match score: %d%%\n", result.Score)
			for _, reason := range result.Reasons {
				_, _ = fmt.Fprintf(out, "  + %s\n", reason)
			}
			for _, warning := range result.Warnings {
				_, _ = fmt.Fprintf(out, "  ! %s\n", warning)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&criteria.HasYard, "has-yard", "", "Do you have a yard (yes/no)")
	cmd.Flags().StringVar(&criteria.HoursPerWeek, "hours-per-week", "", "Hours per week available for the pet")
	cmd.Flags().StringVar(&criteria.ExperienceLevel, "experience", "", "Experience level (none/some/experienced)")
	cmd.Flags().StringVar(&criteria.PrefersSize, "prefers-size", "", "Preferred pet size")

	return cmd
}

func printPets(cmd *cobra.Command, pets []domain.Pet, badge string) {
	out := cmd.OutOrStdout()
	if len(pets) == 0 {
		_, _ = fmt.Fprintln(out, "No pets found.")
		return
	}

	for _, p := range pets {
		_, _ = fmt.Fprintf(out, "[%s] %s  (%s)\n", p.ID, p.Name, badge)
		_, _ = fmt.Fprintf(out, "    %s · %s · %s · %dmo · %s\n",
			p.Species, p.Breed, p.Size, p.AgeMonths, domain.GenderLabel(p.Gender))
		if reason := p.UrgentReason(); reason != "" {
			_, _ = fmt.Fprintf(out, "    Why urgent: %s\n", reason)
		}
	}
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}
