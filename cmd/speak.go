package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/instanimals/instanimals-cli/internal/adapters/audio/cmdplayer"
	"github.com/instanimals/instanimals-cli/internal/domain"
)

func newSpeakCmd(app *app) *cobra.Command {
	var gender string

	cmd := &cobra.Command{
		Use:   "speak <animal-id>",
		Short: "Read an animal's description aloud",
		Long:  "Synthesizes the animal's description (or a fallback sentence built from its basic facts) and plays it through a local audio player. The voice follows the animal's gender unless overridden.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			player, err := cmdplayer.NewPlayer(app.playerBinary, app.logger)
			if err != nil {
				return err
			}

			err = runFetchSpinner(cmd.Context(), cmd.ErrOrStderr(), "Loading adoptable animals...",
				func(ctx context.Context) error {
					app.feed.LoadAnimals(ctx)
					return nil
				})
			if err != nil {
				return err
			}

			animal, ok := findAnimal(app, args[0])
			if !ok {
				return fmt.Errorf("animal %s: %w", args[0], domain.ErrAnimalNotFound)
			}

			if gender == "" {
				gender = strings.ToLower(animal.Gender)
			}

			speech := app.speech(player)
			started, err := speech.Toggle(cmd.Context(), animal.SpeechText(), gender)
			if err != nil {
				return err
			}
			if !started {
				return nil
			}

			select {
			case <-speech.Done():
			case <-cmd.Context().Done():
				speech.Stop()
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&gender, "voice", "", "Voice gender (male/female); defaults to the animal's gender")

	return cmd
}

func findAnimal(app *app, id string) (domain.Animal, bool) {
	for _, a := range app.cache.Animals {
		if a.ID == id {
			return a, true
		}
	}
	return domain.Animal{}, false
}
