package nakama

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"buckshot/internal/app"

	"github.com/heroiclabs/nakama-common/runtime"
)

var errMissingField = errors.New("missing field")

// RpcSessionApply runs controller actions, in order, against the session
// snapshot the client sends and returns the updated snapshot. Nothing is kept
// server-side. The first failing action aborts the call.
//
// Payload: {"session": {...} | null, "actions": [{"type": "set_count", "kind": "live", "count": 3}, ...]}
// Returns: {"session": {...}, "events": [...], "analysis": {...}}
func (h *Handlers) RpcSessionApply(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	userID, _ := ctx.Value(runtime.RUNTIME_CTX_USER_ID).(string)

	var req SessionApplyRequest
	if err := decodePayload(payload, &req); err != nil {
		logger.Warn("RpcSessionApply [User:%s]: %v", userID, err)
		h.metrics.record(nk, RpcSessionApply, outcomeRejected)
		return "", runtime.NewError(err.Error(), codeInvalidArgument)
	}

	sess := sessionFromRequest(h.svc, req.Session)
	if err := checkSession(sess, h.limits); err != nil {
		logger.Warn("RpcSessionApply [User:%s]: invalid session: %v", userID, err)
		h.metrics.record(nk, RpcSessionApply, outcomeRejected)
		return "", runtime.NewError(err.Error(), codeInvalidArgument)
	}

	events := []app.Event{}
	for i, action := range req.Actions {
		evs, err := h.applyAction(sess, action)
		if err != nil {
			logger.Warn("RpcSessionApply [User:%s]: action %d (%s) rejected: %v", userID, i, action.Type, err)
			h.metrics.record(nk, RpcSessionApply, outcomeRejected)
			return "", runtime.NewError(fmt.Sprintf("action %d (%s): %v", i, action.Type, err), appErrorCode(err))
		}
		events = append(events, evs...)
	}

	resp := SessionApplyResponse{
		Session:  sess,
		Events:   events,
		Analysis: h.svc.Analyze(sess),
	}
	out, err := encodeResponse(resp)
	if err != nil {
		logger.Error("RpcSessionApply [User:%s]: failed to encode response: %v", userID, err)
		h.metrics.record(nk, RpcSessionApply, outcomeFailed)
		return "", runtime.NewError("Internal error", codeInternal)
	}
	logger.Debug("RpcSessionApply [User:%s]: applied %d actions", userID, len(req.Actions))
	h.metrics.record(nk, RpcSessionApply, outcomeOK)
	return out, nil
}

func (h *Handlers) applyAction(sess *app.Session, a ActionInput) ([]app.Event, error) {
	switch a.Type {
	case ActionSetCount:
		if a.Count == nil {
			return nil, fmt.Errorf("%w: count", errMissingField)
		}
		return h.svc.SetShellCount(sess, a.Kind, *a.Count)
	case ActionSpend:
		return h.svc.SpendShell(sess, a.Kind)
	case ActionStartRound:
		return h.svc.StartRound(sess)
	case ActionEndRound:
		return h.svc.EndRound(sess)
	case ActionReset:
		return h.svc.Reset(sess), nil
	case ActionMark:
		return h.svc.MarkChamber(sess, a.Position, a.State)
	case ActionClearMarks:
		return h.svc.ClearMarks(sess), nil
	case ActionAddPlayer:
		_, evs, err := h.svc.AddPlayer(sess)
		return evs, err
	case ActionRemovePlayer:
		return h.svc.RemovePlayer(sess, a.PlayerID)
	case ActionUpdatePlayer:
		if a.Update == nil {
			return nil, fmt.Errorf("%w: update", errMissingField)
		}
		return h.svc.UpdatePlayer(sess, a.PlayerID, *a.Update)
	default:
		return nil, fmt.Errorf("unknown action type %q", a.Type)
	}
}
