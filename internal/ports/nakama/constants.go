package nakama

const (
	// RpcChamberProbabilities annotates a chamber timeline with live odds.
	RpcChamberProbabilities = "chamber_probabilities"

	// RpcRecommendMove suggests the next move for the user.
	RpcRecommendMove = "recommend_move"

	// RpcSessionApply applies controller actions to a client-held session snapshot.
	RpcSessionApply = "session_apply"
)

// gRPC status codes understood by Nakama clients.
const (
	codeInvalidArgument    = 3
	codeNotFound           = 5
	codeFailedPrecondition = 9
	codeInternal           = 13
)

// Session action types accepted by RpcSessionApply.
const (
	ActionSetCount     = "set_count"
	ActionSpend        = "spend"
	ActionStartRound   = "start_round"
	ActionEndRound     = "end_round"
	ActionReset        = "reset"
	ActionMark         = "mark"
	ActionClearMarks   = "clear_marks"
	ActionAddPlayer    = "add_player"
	ActionRemovePlayer = "remove_player"
	ActionUpdatePlayer = "update_player"
)
