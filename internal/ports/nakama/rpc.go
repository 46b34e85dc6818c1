package nakama

import (
	"encoding/json"
	"errors"
	"fmt"

	"buckshot/internal/app"
	"buckshot/internal/config"

	"github.com/go-playground/validator/v10"
	"github.com/heroiclabs/nakama-common/runtime"
)

// Handlers serves the solver RPCs. It is stateless between calls: every
// request carries the full state it needs.
type Handlers struct {
	limits  config.Limits
	svc     *app.Service
	metrics *rpcMetrics
}

// NewHandlers builds the RPC handlers for the given limits.
func NewHandlers(limits config.Limits, metricsEnabled bool) *Handlers {
	return &Handlers{
		limits:  limits,
		svc:     app.NewService(limits),
		metrics: &rpcMetrics{enabled: metricsEnabled},
	}
}

// RegisterRPCs registers Nakama RPC endpoints.
func (h *Handlers) RegisterRPCs(initializer runtime.Initializer) error {
	if err := initializer.RegisterRpc(RpcChamberProbabilities, h.RpcChamberProbabilities); err != nil {
		return err
	}
	if err := initializer.RegisterRpc(RpcRecommendMove, h.RpcRecommendMove); err != nil {
		return err
	}
	return initializer.RegisterRpc(RpcSessionApply, h.RpcSessionApply)
}

// decodePayload unmarshals and validates an RPC payload into dst.
func decodePayload(payload string, dst any) error {
	if payload == "" {
		payload = "{}"
	}
	if err := json.Unmarshal([]byte(payload), dst); err != nil {
		return fmt.Errorf("invalid payload: %w", err)
	}
	if err := payloadValidate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("invalid field %s: failed %q", verrs[0].Namespace(), verrs[0].Tag())
		}
		return fmt.Errorf("invalid payload: %w", err)
	}
	return nil
}

func encodeResponse(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// appErrorCode maps controller errors to the status code returned to clients.
func appErrorCode(err error) int {
	switch {
	case errors.Is(err, app.ErrUnknownChamber), errors.Is(err, app.ErrUnknownPlayer):
		return codeNotFound
	case errors.Is(err, app.ErrRoundActive),
		errors.Is(err, app.ErrRoundNotActive),
		errors.Is(err, app.ErrEmptyMagazine),
		errors.Is(err, app.ErrNoShellsOfKind),
		errors.Is(err, app.ErrTooManyPlayers),
		errors.Is(err, app.ErrCannotRemoveUser):
		return codeFailedPrecondition
	default:
		return codeInvalidArgument
	}
}
