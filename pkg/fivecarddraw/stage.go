package fivecarddraw

// stage tracks where the dealer is in the round state machine
type stage int

// constants for stage
const (
	stageSetup stage = iota
	stageBlinds
	stageDeal
	stageFirstBettingRound
	stageExchange
	stageSecondBettingRound
	stageShowdown
	stageRoundEnd
	stageGameOver
)

func (s stage) String() string {
	switch s {
	case stageSetup:
		return "setup"
	case stageBlinds:
		return "blinds"
	case stageDeal:
		return "deal"
	case stageFirstBettingRound:
		return "first-betting-round"
	case stageExchange:
		return "exchange"
	case stageSecondBettingRound:
		return "second-betting-round"
	case stageShowdown:
		return "showdown"
	case stageRoundEnd:
		return "round-end"
	case stageGameOver:
		return "game-over"
	}

	return ""
}
