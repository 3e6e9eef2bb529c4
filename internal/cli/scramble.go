package cli

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ehrlich-b/kociemba/internal/cube"
)

var scrambleCmd = &cobra.Command{
	Use:   "scramble",
	Short: "Generate a random scramble",
	Long: `Generate a random scramble as a sequence of face turns. Pass --seed
for a reproducible scramble.`,
	Run: func(cmd *cobra.Command, args []string) {
		moves, _ := cmd.Flags().GetInt("moves")
		seed, _ := cmd.Flags().GetInt64("seed")

		if moves < 1 {
			fmt.Printf("Error: scramble length must be positive, got %d\n", moves)
			os.Exit(1)
		}
		if seed == 0 {
			seed = time.Now().UnixNano()
		}

		rng := rand.New(rand.NewSource(seed))
		fmt.Println(cube.FormatMoves(cube.NewScramble(rng, moves)))
	},
}

func init() {
	scrambleCmd.Flags().IntP("moves", "m", 25, "Number of moves in the scramble")
	scrambleCmd.Flags().Int64("seed", 0, "Random seed (0 uses the current time)")
}
