package main

import (
	"encoding/json"
	"fmt"
	"io"

	"buckshot/internal/bot/brain"
	"buckshot/internal/domain"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type chambersOptions struct {
	live   int
	blank  int
	size   int
	known  string
	asJSON bool
}

func newChambersCmd() *cobra.Command {
	opts := &chambersOptions{}
	cmd := &cobra.Command{
		Use:   "chambers",
		Short: "Estimate the live probability of every chamber",
		Long: `Walks the magazine from the front and estimates, for each chamber, the chance
it holds a live shell. Revealed chambers are passed with --known.

Example:
  buckshot chambers --live 3 --blank 2 --known 2=blank`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChambers(cmd.OutOrStdout(), opts)
		},
	}
	cmd.Flags().IntVar(&opts.live, "live", 0, "Live shells remaining")
	cmd.Flags().IntVar(&opts.blank, "blank", 0, "Blank shells remaining")
	cmd.Flags().IntVar(&opts.size, "size", -1, "Timeline length (defaults to live+blank)")
	cmd.Flags().StringVar(&opts.known, "known", "", "Revealed chambers, e.g. 1=live,3=blank")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "Print chambers as JSON")
	return cmd
}

func runChambers(w io.Writer, opts *chambersOptions) error {
	if err := checkShellCounts(opts.live, opts.blank); err != nil {
		return err
	}
	marks, err := parseKnown(opts.known)
	if err != nil {
		return err
	}

	size := opts.size
	if size < 0 {
		size = opts.live + opts.blank
	}
	if maxSize := 2 * limits.MaxShellsPerKind; size > maxSize {
		return fmt.Errorf("--size must be at most %d", maxSize)
	}
	chambers := domain.NewChambers(size)
	for pos, state := range marks {
		idx := domain.FindChamber(chambers, pos)
		if idx < 0 {
			return fmt.Errorf("no chamber at position %d", pos)
		}
		chambers[idx].State = state
	}

	result := brain.CalculateChamberProbabilities(opts.live, opts.blank, chambers)
	logger.Debug("chambers computed",
		zap.Int("live", opts.live),
		zap.Int("blank", opts.blank),
		zap.Int("chambers", len(result)),
		zap.Int("marked", len(marks)))

	if opts.asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}
	renderChambers(w, result)
	return nil
}

func newOddsCmd() *cobra.Command {
	var live, blank int
	cmd := &cobra.Command{
		Use:   "odds",
		Short: "Show the chance the next shell is live or blank",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkShellCounts(live, blank); err != nil {
				return err
			}
			renderOdds(cmd.OutOrStdout(), live, blank, brain.CalculateOdds(live, blank))
			return nil
		},
	}
	cmd.Flags().IntVar(&live, "live", 0, "Live shells remaining")
	cmd.Flags().IntVar(&blank, "blank", 0, "Blank shells remaining")
	return cmd
}
