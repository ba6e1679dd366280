package cmd

import (
	"github.com/spf13/cobra"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "elastisched",
	Short: "Constrained calendar scheduling via simulated annealing",
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "config.yaml", "configuration file")
	rootCmd.AddCommand(scheduleCmd)
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }
