package cmd

import (
	"fmt"

	"github.com/ortenszky/Habit-Tracker-Application/internal/version"
	"github.com/spf13/cobra"
)

var versionShort bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print habit version",
	Args:  cobra.NoArgs,
	Run:   runVersion,
}

func runVersion(_ *cobra.Command, _ []string) {
	if versionShort {
		fmt.Println(version.Short())
		return
	}
	fmt.Printf("habit %s\n", version.Full())
}

func init() {
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Print only the version number")
}
