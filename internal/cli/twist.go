package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ehrlich-b/kociemba/internal/cube"
)

var twistCmd = &cobra.Command{
	Use:   "twist [moves]",
	Short: "Apply moves to a cube and display the result",
	Long: `Apply a sequence of moves to a solved cube and display the resulting
permutations and orientations. This command does not solve the cube.

Examples:
  kociemba twist "R U R' U'"
  kociemba twist "F2 B2 R2 L2"`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		moves, err := cube.ParseMoves(args[0])
		if err != nil {
			fmt.Printf("Error parsing moves: %v\n", err)
			os.Exit(1)
		}

		c := cube.Solved().ApplyMoves(moves)

		fmt.Printf("Cube state after %d moves:\n%s\n", len(moves), c)
		if c.IsSolved() {
			fmt.Println("Status: solved")
		} else {
			fmt.Println("Status: scrambled")
		}
	},
}
