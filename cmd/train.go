package cmd

import (
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"

	"github.com/Styx-mls/BlackJack-q-learning/blackjack"
	"github.com/Styx-mls/BlackJack-q-learning/rl"
	"github.com/Styx-mls/BlackJack-q-learning/store"
)

func Train(episodes, horizon int, seed int64, alpha, gamma, epsilon, decay float64, window int, plotFile, storePath, agentName string) error {
	rng := newRand(seed)
	policy := rl.NewQPolicy(alpha, gamma, epsilon, decay, rng)
	trainer := rl.NewTrainer(&rl.TrainerConfig{
		Episodes:    episodes,
		Horizon:     horizon,
		Policy:      policy,
		Environment: blackjack.NewRoundEnv(rng),
	})

	log.Printf("training agent %q for %d episodes", agentName, episodes)
	start := time.Now()
	if err := trainer.Run(); err != nil {
		return err
	}
	log.Printf("training finished in %s", time.Since(start).Round(time.Millisecond))

	analyzer := rl.WinRateAnalyzer(window, func(trace *rl.Trace) bool {
		return blackjack.TraceOutcome(trace) == blackjack.OutcomeWin
	})
	rates, _ := analyzer(trainer.Traces()).([]float64)

	if plotFile != "" && len(rates) > 0 {
		plotCurve := rl.LearningCurvePlotter(plotFile, window)
		if err := plotCurve([]string{agentName}, []rl.DataSet{rates}); err != nil {
			return fmt.Errorf("plot learning curve: %w", err)
		}
		log.Printf("learning curve saved to %s", plotFile)
	}

	finalRate := 0.0
	if len(rates) > 0 {
		finalRate = rates[len(rates)-1]
	}
	fmt.Printf("Episodes: %d, Q-states: %d, epsilon: %.4f, win rate over last %d: %.3f\n",
		episodes, policy.TableStates(), policy.Epsilon(), window, finalRate)

	data, err := policy.Snapshot()
	if err != nil {
		return fmt.Errorf("snapshot policy: %w", err)
	}
	st, err := store.Open(storePath)
	if err != nil {
		return err
	}
	defer st.Close()
	if err := st.Save(store.Snapshot{
		Name:     agentName,
		Episodes: episodes,
		Epsilon:  policy.Epsilon(),
		WinRate:  finalRate,
		Data:     data,
		SavedAt:  time.Now(),
	}); err != nil {
		return err
	}
	log.Printf("agent %q saved to %s", agentName, storePath)
	return nil
}

func TrainCommand() *cobra.Command {
	var alpha float64
	var gamma float64
	var epsilon float64
	var decay float64
	var window int
	var plotFile string

	cmd := &cobra.Command{
		Use:   "train",
		Short: "Train the agent and save it to the store",
		RunE: func(cmd *cobra.Command, args []string) error {
			return Train(episodes, horizon, seed, alpha, gamma, epsilon, decay, window, plotFile, storePath, agentName)
		},
	}
	cmd.PersistentFlags().Float64Var(&alpha, "alpha", envFloat("BLACKJACK_ALPHA", rl.DefaultAlpha), "Learning rate")
	cmd.PersistentFlags().Float64Var(&gamma, "gamma", envFloat("BLACKJACK_GAMMA", rl.DefaultGamma), "Discount factor")
	cmd.PersistentFlags().Float64Var(&epsilon, "epsilon", envFloat("BLACKJACK_EPSILON", 1.0), "Starting exploration rate")
	cmd.PersistentFlags().Float64Var(&decay, "decay", envFloat("BLACKJACK_DECAY", rl.DefaultDecay), "Per-episode exploration decay")
	cmd.PersistentFlags().IntVar(&window, "window", envInt("BLACKJACK_WINDOW", 1000), "Episode window for the win-rate curve")
	cmd.PersistentFlags().StringVar(&plotFile, "plot", envString("BLACKJACK_PLOT", "winrate.png"), "Learning-curve PNG path (empty disables)")
	return cmd
}
