package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/instanimals/instanimals-cli/internal/application"
	"github.com/instanimals/instanimals-cli/internal/domain"
)

func newSheltersCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "shelters <location>",
		Short: "Find animal shelters near a location",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			location := strings.Join(args, " ")

			err := runFetchSpinner(cmd.Context(), cmd.ErrOrStderr(), application.StatusSearching,
				func(ctx context.Context) error {
					return app.shelters.Search(ctx, location)
				})

			out := cmd.OutOrStdout()
			if err != nil {
				// Failed searches still resolve to a user-facing status line.
				if !errors.Is(err, context.Canceled) {
					_, _ = fmt.Fprintln(out, app.cache.ShelterStatus)
				}
				return err
			}

			_, _ = fmt.Fprintln(out, app.cache.ShelterStatus)
			for _, shelter := range app.cache.Shelters {
				printShelter(cmd, shelter)
			}
			return nil
		},
	}
}

func printShelter(cmd *cobra.Command, shelter domain.Shelter) {
	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "%s\n", shelter.Name)
	_, _ = fmt.Fprintf(out, "    %s\n", shelter.Address)
	_, _ = fmt.Fprintf(out, "    Hours: %s\n", shelter.Hours)
	_, _ = fmt.Fprintf(out, "    %s\n", shelter.Phone)
	if shelter.Website != "" {
		_, _ = fmt.Fprintf(out, "    %s\n", shelter.Website)
	}
}
