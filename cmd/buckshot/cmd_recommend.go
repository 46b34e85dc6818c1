package main

import (
	"encoding/json"

	"buckshot/internal/bot"
	"buckshot/internal/domain"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newRecommendCmd() *cobra.Command {
	var (
		live, blank int
		raw         []string
		asJSON      bool
	)
	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Suggest the next move",
		Long: `Suggests whether to shoot yourself or an opponent. Opponents still in play are
given as id:hp:skill[:name]; anyone at 0 hp is ignored.

Example:
  buckshot recommend --live 3 --blank 1 --opponent 2:2:3:dealer --opponent 3:1:4`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkShellCounts(live, blank); err != nil {
				return err
			}
			players := make([]domain.Player, 0, len(raw))
			for _, s := range raw {
				p, err := parseOpponent(s)
				if err != nil {
					return err
				}
				players = append(players, p)
			}

			rec := bot.Recommend(live, blank, domain.LivingOpponents(players))
			logger.Debug("recommendation",
				zap.String("action", string(rec.Action)),
				zap.Int("target", rec.TargetPlayerID),
				zap.Int("opponents", len(players)))

			if asJSON {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(rec)
			}
			renderRecommendation(cmd.OutOrStdout(), rec)
			return nil
		},
	}
	cmd.Flags().IntVar(&live, "live", 0, "Live shells remaining")
	cmd.Flags().IntVar(&blank, "blank", 0, "Blank shells remaining")
	cmd.Flags().StringArrayVar(&raw, "opponent", nil, "Opponent as id:hp:skill[:name] (repeatable)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the recommendation as JSON")
	return cmd
}
