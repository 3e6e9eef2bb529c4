package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "kociemba",
	Short: "A two-phase Rubik's cube solver",
	Long: `Kociemba is a 3x3x3 Rubik's cube solver built on Kociemba's two-phase
algorithm: scrambles are first reduced to the <U,D,F2,B2,R2,L2> subgroup,
then solved within it, using precomputed coordinate tables.`,
	Version: "1.0.0",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(twistCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(scrambleCmd)
	rootCmd.AddCommand(serveCmd)
}
