package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/instanimals/instanimals-cli/internal/domain"
)

func newAnimalsCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "animals",
		Short: "List adoptable animals",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := restoreSession(cmd, app); err != nil {
				return err
			}

			err := runFetchSpinner(cmd.Context(), cmd.ErrOrStderr(), "Loading adoptable animals...",
				func(ctx context.Context) error {
					app.feed.LoadAnimals(ctx)
					return nil
				})
			if err != nil {
				return err
			}

			if len(app.cache.Animals) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No animals found. Try again later.")
				return nil
			}

			for _, a := range app.cache.Animals {
				printAnimal(cmd, a)
			}
			return nil
		},
	}

	cmd.AddCommand(newAnimalStarCmd(app), newAnimalCommentCmd(app))

	return cmd
}

func newAnimalStarCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "star <animal-id>",
		Short: "Toggle the star on an animal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := restoreSession(cmd, app); err != nil {
				return err
			}

			starred, err := app.feed.ToggleAnimalStar(args[0])
			if err != nil {
				return err
			}
			if starred {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Starred.")
			} else {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Star removed.")
			}
			return nil
		},
	}
}

func newAnimalCommentCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "comment <animal-id> <text>",
		Short: "Comment on an animal card",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := restoreSession(cmd, app); err != nil {
				return err
			}

			if err := app.feed.SubmitAnimalComment(args[0], args[1]); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Comment posted.")
			return nil
		},
	}
}

func printAnimal(cmd *cobra.Command, a domain.Animal) {
	out := cmd.OutOrStdout()

	line := fmt.Sprintf("[%s] %s", a.ID, a.Name)
	if label := a.Urgency.Label(); label != "" {
		line += fmt.Sprintf("  (%s Urgency)", label)
	}
	_, _ = fmt.Fprintln(out, line)

	meta := make([]string, 0, 4)
	for _, v := range []string{a.Breeds, a.Age, a.Size, a.Gender} {
		if v != "" {
			meta = append(meta, v)
		}
	}
	if len(meta) > 0 {
		_, _ = fmt.Fprintf(out, "    %s\n", strings.Join(meta, " · "))
	}
	if a.ShelterName != "" {
		_, _ = fmt.Fprintf(out, "    %s", a.ShelterName)
		if a.Location != "" {
			_, _ = fmt.Fprintf(out, ", %s", a.Location)
		}
		_, _ = fmt.Fprintln(out)
	}
	if a.Description != "" {
		_, _ = fmt.Fprintf(out, "    %s\n", a.Description)
	}
}
