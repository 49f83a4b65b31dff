package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matthewcarlsonhome-cmd/AIGovernance-sub006/pkg/terminal/commands"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "govcalc",
		Short: "AI adoption governance calculators",
	}

	rootCmd.AddCommand(
		commands.NewAssessCmd(),
		commands.NewRisksCmd(),
		commands.NewMaturityCmd(),
		commands.NewPrioritizeCmd(),
		commands.NewRoiCmd(),
		commands.NewBriefCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
