package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "ia",
		Short:         "Instanimals CLI (ia): browse the animal feed and adoption listings",
		Long:          "ia (Instanimals CLI) is a terminal client for the Instanimals service: sign in, browse the feed and adoptable animals, search shelters near a location, chat with shelters, and submit adoption or foster applications.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newLoginCmd(app),
		newSignupCmd(app),
		newLogoutCmd(app),
		newProfileCmd(app),
		newBrowseCmd(app),
		newFeedCmd(app),
		newAnimalsCmd(app),
		newPetsCmd(app),
		newApplyCmd(app),
		newFosterCmd(app),
		newSheltersCmd(app),
		newSpeakCmd(app),
	)

	return rootCmd
}
