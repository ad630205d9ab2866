package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/geofduf/tagsim/post"
	"github.com/spf13/cobra"
)

var (
	flagInput string
	flagSteps int
	flagImpl  string
	flagShow  bool
	flagEvery int
)

func main() {
	root := &cobra.Command{
		Use:           "tagsim",
		Short:         "Simulate the evolution of a fixed two-symbol tag system",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&flagInput, "input", "", "compressed initial string, e.g. 1011 (each digit expands to the block d00)")
	root.PersistentFlags().IntVar(&flagSteps, "steps", 1000, "number of steps to apply")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Evolve a system and report the outcome",
		RunE:  runRun,
	}
	runCmd.Flags().StringVar(&flagImpl, "impl", "packed", "representation to use (packed or naive)")
	runCmd.Flags().BoolVar(&flagShow, "show", false, "print the final string")

	verifyCmd := &cobra.Command{
		Use:   "verify",
		Short: "Evolve both representations and cross-check them",
		RunE:  runVerify,
	}
	verifyCmd.Flags().IntVar(&flagEvery, "every", 64, "steps between cross-checks")

	root.AddCommand(runCmd, verifyCmd)

	if err := root.Execute(); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}

func runRun(cmd *cobra.Command, _ []string) error {
	compressed, err := parseInput(flagInput)
	if err != nil {
		return err
	}
	if flagSteps < 0 {
		return fmt.Errorf("steps must be non-negative, got %d", flagSteps)
	}
	s, err := newSystem(flagImpl, compressed)
	if err != nil {
		return err
	}

	steps, halted := post.EvolveN(s, flagSteps)
	if halted {
		fmt.Printf("halted after %d steps, final length %d\n", steps, s.Length())
	} else {
		fmt.Printf("still evolving after %d steps, length %d\n", steps, s.Length())
	}
	if flagShow {
		fmt.Println(formatList(s.List()))
	}
	return nil
}

func runVerify(cmd *cobra.Command, _ []string) error {
	compressed, err := parseInput(flagInput)
	if err != nil {
		return err
	}
	if flagSteps < 0 {
		return fmt.Errorf("steps must be non-negative, got %d", flagSteps)
	}
	if flagEvery < 1 {
		return fmt.Errorf("every must be positive, got %d", flagEvery)
	}

	packed := post.NewBitString(compressed)
	naive := post.NewBoolList(compressed)

	applied := 0
	for applied < flagSteps {
		chunk := flagEvery
		if remaining := flagSteps - applied; remaining < chunk {
			chunk = remaining
		}

		stepsP, haltedP := post.EvolveN(packed, chunk)
		stepsN, haltedN := post.EvolveN(naive, chunk)

		if stepsP != stepsN || haltedP != haltedN {
			slog.Error("representations diverged",
				"step", applied, "packedSteps", stepsP, "naiveSteps", stepsN,
				"packedHalted", haltedP, "naiveHalted", haltedN)
			return fmt.Errorf("halt behavior diverged after %d steps", applied)
		}
		applied += stepsP

		if !post.Equal(packed, naive) {
			slog.Error("representations diverged",
				"step", applied, "packedLength", packed.Length(), "naiveLength", naive.Length())
			return fmt.Errorf("content diverged after %d steps", applied)
		}

		if haltedP {
			fmt.Printf("ok: both representations halted after %d steps\n", applied)
			return nil
		}
	}

	fmt.Printf("ok: representations agree after %d steps, length %d\n", applied, packed.Length())
	return nil
}

// parseInput decodes a string of 0 and 1 digits into a compressed initial
// string.
func parseInput(s string) ([]bool, error) {
	compressed := make([]bool, 0, len(s))
	for _, c := range s {
		switch c {
		case '0':
			compressed = append(compressed, false)
		case '1':
			compressed = append(compressed, true)
		default:
			return nil, fmt.Errorf("invalid symbol %q in input: want 0 or 1", c)
		}
	}
	return compressed, nil
}

func newSystem(impl string, compressed []bool) (post.System, error) {
	switch impl {
	case "packed":
		return post.NewBitString(compressed), nil
	case "naive":
		return post.NewBoolList(compressed), nil
	}
	return nil, fmt.Errorf("unknown implementation %q: want packed or naive", impl)
}

func formatList(list []bool) string {
	buf := make([]byte, len(list))
	for i, b := range list {
		if b {
			buf[i] = '1'
		} else {
			buf[i] = '0'
		}
	}
	return string(buf)
}
