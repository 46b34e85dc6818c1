package nakama

import (
	"context"
	"database/sql"

	"buckshot/internal/bot/brain"
	"buckshot/internal/domain"

	"github.com/heroiclabs/nakama-common/runtime"
)

// RpcChamberProbabilities annotates a chamber timeline with per-chamber live odds.
//
// Payload: {"live": 2, "blank": 2, "chambers": [{"position": 1, "state": "unknown"}, ...]}
// Returns: {"chambers": [...], "odds": {"live": 50, "blank": 50}}
func (h *Handlers) RpcChamberProbabilities(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	var req ChamberProbabilitiesRequest
	if err := decodePayload(payload, &req); err != nil {
		logger.Warn("RpcChamberProbabilities: %v", err)
		h.metrics.record(nk, RpcChamberProbabilities, outcomeRejected)
		return "", runtime.NewError(err.Error(), codeInvalidArgument)
	}
	if err := checkCounts(req.Live, req.Blank, h.limits); err != nil {
		h.metrics.record(nk, RpcChamberProbabilities, outcomeRejected)
		return "", runtime.NewError(err.Error(), codeInvalidArgument)
	}

	chambers := chambersFromInput(req.Chambers)
	if len(chambers) == 0 {
		chambers = domain.NewChambers(req.Live + req.Blank)
	}

	resp := ChamberProbabilitiesResponse{
		Chambers: brain.CalculateChamberProbabilities(req.Live, req.Blank, chambers),
		Odds:     brain.CalculateOdds(req.Live, req.Blank),
	}
	out, err := encodeResponse(resp)
	if err != nil {
		logger.Error("RpcChamberProbabilities: failed to encode response: %v", err)
		h.metrics.record(nk, RpcChamberProbabilities, outcomeFailed)
		return "", runtime.NewError("Internal error", codeInternal)
	}
	h.metrics.record(nk, RpcChamberProbabilities, outcomeOK)
	return out, nil
}
