package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Styx-mls/BlackJack-q-learning/blackjack"
	"github.com/Styx-mls/BlackJack-q-learning/rl"
	"github.com/Styx-mls/BlackJack-q-learning/store"
)

// Play loads a trained agent and replays full rounds on the console,
// greedy only, until the viewer declines to continue.
func Play(seed int64, horizon int, storePath, agentName string, in io.Reader, out io.Writer) error {
	st, err := store.Open(storePath)
	if err != nil {
		return err
	}
	defer st.Close()
	snap, err := st.Load(agentName)
	if err != nil {
		return err
	}

	rng := newRand(seed)
	policy, err := rl.RestoreQPolicy(snap.Data, rng)
	if err != nil {
		return err
	}
	policy.SetEpsilon(0)

	env := blackjack.NewRoundEnv(rng)
	reader := bufio.NewReader(in)
	for {
		if err := playRound(env, policy, horizon, out); err != nil {
			return err
		}
		again, err := promptYesNo(reader, out, "Do you wish to watch again? ")
		if err != nil {
			return err
		}
		if !again {
			return nil
		}
	}
}

func playRound(env *blackjack.RoundEnv, policy *rl.QPolicy, horizon int, out io.Writer) error {
	if horizon <= 0 {
		horizon = rl.DefaultHorizon
	}
	state, err := env.Reset()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Agent's cards: %s\n", env.PlayerHand())
	fmt.Fprintf(out, "Dealer shows: %s\n", env.DealerUpcard())

	for i := 0; i < horizon; i++ {
		action, ok := policy.NextAction(i, state, state.Actions())
		if !ok {
			break
		}
		res, err := env.Step(action)
		if err != nil {
			return err
		}
		if action.Hash() == blackjack.Hit.Name {
			fmt.Fprintf(out, "Agent hits: %s\n", env.PlayerHand())
		} else {
			fmt.Fprintf(out, "Agent stands on %d\n", env.PlayerHand().Total())
		}
		if res.Terminal {
			printOutcome(env, out)
			return nil
		}
		state = res.State
	}
	return nil
}

func printOutcome(env *blackjack.RoundEnv, out io.Writer) {
	outcome := env.Outcome()
	if outcome != blackjack.OutcomeBust {
		fmt.Fprintf(out, "Dealer's hand: %s (%d)\n", env.DealerHand(), env.DealerHand().Total())
	}
	switch outcome {
	case blackjack.OutcomeBust:
		fmt.Fprintln(out, "Agent busted out.")
	case blackjack.OutcomeWin:
		fmt.Fprintln(out, "Agent wins.")
	case blackjack.OutcomeLoss:
		fmt.Fprintln(out, "Dealer wins.")
	case blackjack.OutcomePush:
		fmt.Fprintln(out, "Push.")
	}
}

// promptYesNo re-prompts locally on invalid input, it never fails the
// round for it.
func promptYesNo(reader *bufio.Reader, out io.Writer, prompt string) (bool, error) {
	for {
		fmt.Fprint(out, prompt)
		line, err := reader.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				return false, nil
			}
			return false, err
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "yes", "y":
			return true, nil
		case "no", "n":
			return false, nil
		}
		fmt.Fprintln(out, "Invalid input. Please enter 'yes' or 'no'.")
	}
}

func PlayCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Watch a trained agent play round by round",
		RunE: func(cmd *cobra.Command, args []string) error {
			return Play(seed, horizon, storePath, agentName, os.Stdin, os.Stdout)
		},
	}
	return cmd
}
