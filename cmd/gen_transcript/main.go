// Generate a random transcript whose answers come from a reference ordered map.
// Usage: go run ./cmd/gen_transcript --questions 5000 --seed 7 -o t.txt
package main

import (
	"BPlusIndex/transcript"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	cfg := transcript.DefaultConfig()
	var output string

	cmd := &cobra.Command{
		Use:           "gen_transcript",
		Short:         "write random questions with their expected answers",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var w io.Writer = os.Stdout
			if output != "" && output != "-" {
				f, err := os.Create(output)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}
			return transcript.Generate(cfg, w)
		},
	}
	cmd.Flags().Uint64Var(&cfg.Seed, "seed", cfg.Seed, "seed for the random number generator")
	cmd.Flags().IntVar(&cfg.Questions, "questions", cfg.Questions, "number of questions")
	cmd.Flags().Int64Var(&cfg.KeySpace, "key-space", cfg.KeySpace, "keys are drawn from [0, key-space)")
	cmd.Flags().IntVar(&cfg.MaxPairs, "max-pairs", cfg.MaxPairs, "most pairs in one insert or keys in one remove")
	cmd.Flags().BoolVar(&cfg.Removes, "removes", cfg.Removes, "emit remove questions")
	cmd.Flags().StringVarP(&output, "output", "o", "-", "output file, - for stdout")

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
