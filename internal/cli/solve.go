package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ehrlich-b/kociemba/internal/cube"
	"github.com/ehrlich-b/kociemba/internal/kociemba"
)

var solveCmd = &cobra.Command{
	Use:   "solve [scramble]",
	Short: "Solve a scrambled cube",
	Long: `Solve a scrambled cube. The scramble is a string of face turns
("R U2 F' ...") applied to a solved cube.

Use --headless for programmatic output (space-separated moves only).`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		scramble := args[0]
		headless, _ := cmd.Flags().GetBool("headless")

		moves, err := cube.ParseMoves(scramble)
		if err != nil {
			if !headless {
				fmt.Printf("Error parsing scramble: %v\n", err)
			}
			os.Exit(1)
		}
		c := cube.Solved().ApplyMoves(moves)

		if !headless {
			fmt.Printf("Solving scramble: %s\n", scramble)
			fmt.Printf("Building tables...\n")
		}

		solver := kociemba.NewSolver()
		result, err := solver.Solve(c)
		if err != nil {
			if !headless {
				fmt.Printf("Error solving cube: %v\n", err)
			}
			os.Exit(1)
		}

		if headless {
			fmt.Print(cube.FormatMoves(result.Solution))
		} else {
			fmt.Printf("Solution: %s\n", cube.FormatMoves(result.Solution))
			fmt.Printf("Steps: %d\n", result.Steps)
			fmt.Printf("Time: %v\n", result.Duration)
		}
	},
}

func init() {
	solveCmd.Flags().Bool("headless", false, "Output only space-separated moves for programmatic use")
}
