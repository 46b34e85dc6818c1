package nakama

import (
	"context"
	"database/sql"

	"buckshot/internal/bot"
	"buckshot/internal/bot/brain"
	"buckshot/internal/domain"

	"github.com/heroiclabs/nakama-common/runtime"
)

// RpcRecommendMove suggests the user's next move.
//
// Payload: {"live": 3, "blank": 1, "players": [{"id": 2, "name": "dealer", "hp": 2, "skill": 3}, ...]}
// Returns: {"action": "SHOOT_OPPONENT", "target_player_id": 2, "targeted": true, "description": "...", "odds": {...}}
func (h *Handlers) RpcRecommendMove(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	var req RecommendMoveRequest
	if err := decodePayload(payload, &req); err != nil {
		logger.Warn("RpcRecommendMove: %v", err)
		h.metrics.record(nk, RpcRecommendMove, outcomeRejected)
		return "", runtime.NewError(err.Error(), codeInvalidArgument)
	}
	if err := checkCounts(req.Live, req.Blank, h.limits); err != nil {
		h.metrics.record(nk, RpcRecommendMove, outcomeRejected)
		return "", runtime.NewError(err.Error(), codeInvalidArgument)
	}

	opponents := domain.LivingOpponents(playersFromInput(req.Players))
	resp := RecommendMoveResponse{
		Recommendation: bot.Recommend(req.Live, req.Blank, opponents),
		Odds:           brain.CalculateOdds(req.Live, req.Blank),
	}
	out, err := encodeResponse(resp)
	if err != nil {
		logger.Error("RpcRecommendMove: failed to encode response: %v", err)
		h.metrics.record(nk, RpcRecommendMove, outcomeFailed)
		return "", runtime.NewError("Internal error", codeInternal)
	}
	h.metrics.record(nk, RpcRecommendMove, outcomeOK)
	return out, nil
}
