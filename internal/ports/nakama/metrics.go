package nakama

import "github.com/heroiclabs/nakama-common/runtime"

const metricRPCTotal = "buckshot_rpc_total"

const (
	outcomeOK       = "ok"
	outcomeRejected = "rejected"
	outcomeFailed   = "failed"
)

// rpcMetrics counts RPC outcomes through Nakama's metrics registry.
type rpcMetrics struct {
	enabled bool
}

func (m *rpcMetrics) record(nk runtime.NakamaModule, rpc, outcome string) {
	if m == nil || !m.enabled || nk == nil {
		return
	}
	nk.MetricsCounterAdd(metricRPCTotal, map[string]string{"rpc": rpc, "outcome": outcome}, 1)
}
