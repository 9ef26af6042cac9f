package cmd

import "github.com/spf13/cobra"

var continueFlag bool

func addContinueFlag(cmd *cobra.Command) {
	usage := "Go on to the next stage after every clear, until a stage is lost or the last one is cleared."
	cmd.Flags().BoolVar(&continueFlag, "continue", false, usage)
}

var muteFlag bool

func addMuteFlag(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&muteFlag, "mute", false, "Play without sound effects, whatever the settings say.")
}
