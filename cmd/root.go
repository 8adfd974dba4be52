package cmd

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"golang.org/x/exp/rand"
)

var (
	episodes  int
	horizon   int
	seed      int64
	storePath string
	agentName string
)

func GetRootCommand() *cobra.Command {
	_ = godotenv.Load()

	rootCommand := &cobra.Command{
		Use:   "blackjack",
		Short: "Train and replay a tabular Q-learning blackjack agent",
	}
	rootCommand.PersistentFlags().IntVarP(&episodes, "episodes", "e", envInt("BLACKJACK_EPISODES", 100000), "Number of training episodes")
	rootCommand.PersistentFlags().IntVar(&horizon, "horizon", 0, "Max decisions per round (0 uses the default)")
	rootCommand.PersistentFlags().Int64Var(&seed, "seed", envInt64("BLACKJACK_SEED", 0), "Random seed (0 seeds from the clock)")
	rootCommand.PersistentFlags().StringVarP(&storePath, "store", "s", envString("BLACKJACK_STORE", "agents.db"), "Path to the agent store")
	rootCommand.PersistentFlags().StringVar(&agentName, "agent", envString("BLACKJACK_AGENT", "default"), "Agent name in the store")
	// adding the subcommands here
	rootCommand.AddCommand(TrainCommand())
	rootCommand.AddCommand(PlayCommand())
	return rootCommand
}

func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(uint64(seed)))
}

func envString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func envInt64(key string, def int64) int64 {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.ParseInt(v, 10, 64); err == nil {
			return i
		}
	}
	return def
}

func envFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}
