package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ehrlich-b/kociemba/internal/cube"
)

var verifyCmd = &cobra.Command{
	Use:   "verify <algorithm>",
	Short: "Verify an algorithm solves a scramble",
	Long: `Verify that an algorithm returns a scrambled cube to the solved state.
The scramble defaults to none, so a bare invocation checks that the
algorithm is an identity.

Examples:
  kociemba verify "R U R' U' U R U' R'"
  kociemba verify "U' F U F' U R" --scramble "R' U' F U' F' U"`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		algorithm := args[0]
		scramble, _ := cmd.Flags().GetString("scramble")
		headless, _ := cmd.Flags().GetBool("headless")

		scrambleMoves, err := cube.ParseMoves(scramble)
		if err != nil {
			if !headless {
				fmt.Printf("Error parsing scramble: %v\n", err)
			}
			os.Exit(1)
		}
		algorithmMoves, err := cube.ParseMoves(algorithm)
		if err != nil {
			if !headless {
				fmt.Printf("Error parsing algorithm: %v\n", err)
			}
			os.Exit(1)
		}

		c := cube.Solved().ApplyMoves(scrambleMoves).ApplyMoves(algorithmMoves)

		if c.IsSolved() {
			if !headless {
				fmt.Printf("PASS: algorithm solves the scramble in %d moves\n", len(algorithmMoves))
			}
			os.Exit(0)
		}
		if !headless {
			fmt.Printf("FAIL: algorithm does not solve the scramble\n")
			fmt.Printf("Resulting state:\n%s\n", c)
		}
		os.Exit(1)
	},
}

func init() {
	verifyCmd.Flags().String("scramble", "", "Scramble applied before the algorithm (defaults to none)")
	verifyCmd.Flags().Bool("headless", false, "Exit with code 0 for pass, 1 for fail (no output)")
}
