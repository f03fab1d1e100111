package room

import "fmt"

// ActionType enumerates the player actions the room understands. The zero
// value is deliberately unknown so unparsed wire input fails closed.
type ActionType int

const (
	ActionUnknown ActionType = iota
	ActionReady
	ActionUnready
	ActionFold
	ActionCheck
	ActionCall
	ActionBet
	ActionRaise
	ActionAllIn
)

var actionNames = map[ActionType]string{
	ActionReady:   "READY",
	ActionUnready: "UNREADY",
	ActionFold:    "FOLD",
	ActionCheck:   "CHECK",
	ActionCall:    "CALL",
	ActionBet:     "BET",
	ActionRaise:   "RAISE",
	ActionAllIn:   "ALL_IN",
}

func (t ActionType) String() string {
	if name, ok := actionNames[t]; ok {
		return name
	}
	return "UNKNOWN"
}

// ParseActionType maps a wire action name to its ActionType. Unrecognized
// names return ActionUnknown; the processor rejects those with KindUnknownAction.
func ParseActionType(s string) ActionType {
	for t, name := range actionNames {
		if name == s {
			return t
		}
	}
	return ActionUnknown
}

// Action is a tagged action variant. Amount is meaningful only for BET
// (chips to open with) and RAISE (total street investment to raise to).
type Action struct {
	Type   ActionType
	Amount int
}

// Convenience constructors, mostly for tests and call sites that build
// actions directly rather than parsing them off the wire.

func Ready() Action   { return Action{Type: ActionReady} }
func Unready() Action { return Action{Type: ActionUnready} }
func Fold() Action    { return Action{Type: ActionFold} }
func Check() Action   { return Action{Type: ActionCheck} }
func Call() Action    { return Action{Type: ActionCall} }
func AllIn() Action   { return Action{Type: ActionAllIn} }

func Bet(amount int) Action {
	return Action{Type: ActionBet, Amount: amount}
}

func RaiseTo(amount int) Action {
	return Action{Type: ActionRaise, Amount: amount}
}

// ErrorKind is the machine-readable classification of a rejected action.
type ErrorKind string

const (
	KindNotSeated        ErrorKind = "not_seated"
	KindNotBettingStreet ErrorKind = "not_betting_street"
	KindOutOfTurn        ErrorKind = "out_of_turn"
	KindMustCallOrFold   ErrorKind = "must_call_or_fold"
	KindNothingToCall    ErrorKind = "nothing_to_call"
	KindAlreadyBet       ErrorKind = "already_bet"
	KindNoBetToRaise     ErrorKind = "no_bet_to_raise"
	KindRaiseTooSmall    ErrorKind = "raise_too_small"
	KindNoChips          ErrorKind = "no_chips"
	KindAlreadyStarted   ErrorKind = "already_started"
	KindUnknownAction    ErrorKind = "unknown_action"
)

// Error is a rejected action. Rejections happen before any mutation, so a
// non-nil Error guarantees the room state is unchanged.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return string(e.Kind) + ": " + e.Message
}

func newError(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}
