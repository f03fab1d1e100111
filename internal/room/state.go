// Package room implements a single heads-up no-limit hold'em room: one
// mutable game state, a betting action processor, street advancement, and
// per-viewer projections. The room performs no I/O; callers are expected to
// serialize access (one action at a time).
package room

import (
	"encoding/json"
	rand "math/rand/v2"

	"github.com/lox/headsup/poker"
)

// Seat identifies one of the two fixed seats. NoSeat marks observers and
// "nobody" values (no dealer yet, no acting seat).
type Seat int8

const (
	NoSeat Seat = iota - 1
	SeatA
	SeatB
)

// Other returns the opposite seat.
func (s Seat) Other() Seat {
	switch s {
	case SeatA:
		return SeatB
	case SeatB:
		return SeatA
	default:
		return NoSeat
	}
}

func (s Seat) String() string {
	switch s {
	case SeatA:
		return "A"
	case SeatB:
		return "B"
	default:
		return ""
	}
}

// MarshalJSON encodes SeatA/SeatB as "A"/"B" and NoSeat as null, matching
// the wire contract where absent seats are null rather than a sentinel.
func (s Seat) MarshalJSON() ([]byte, error) {
	if s == NoSeat {
		return []byte("null"), nil
	}
	return json.Marshal(s.String())
}

// UnmarshalJSON is the inverse of MarshalJSON.
func (s *Seat) UnmarshalJSON(data []byte) error {
	var v *string
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch {
	case v == nil:
		*s = NoSeat
	case *v == "A":
		*s = SeatA
	case *v == "B":
		*s = SeatB
	default:
		*s = NoSeat
	}
	return nil
}

// Stage is the hand lifecycle stage. The four middle stages are betting
// streets; WAITING and SHOWDOWN are not.
type Stage int

const (
	StageWaiting Stage = iota
	StagePreflop
	StageFlop
	StageTurn
	StageRiver
	StageShowdown
)

func (s Stage) String() string {
	return [...]string{"WAITING", "PREFLOP", "FLOP", "TURN", "RIVER", "SHOWDOWN"}[s]
}

// Betting reports whether the stage is a betting street.
func (s Stage) Betting() bool {
	return s >= StagePreflop && s <= StageRiver
}

// MarshalJSON encodes the stage as its wire name, e.g. "PREFLOP".
func (s Stage) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// PlayerState is the per-seat state. Stack persists across hands; StreetBet
// holds only the chips committed on the current street and is swept into the
// pot when the street closes.
type PlayerState struct {
	Connected bool
	Token     string
	Stack     int
	Folded    bool
	AllIn     bool
	Ready     bool
	Hole      poker.Hand // two cards during a hand, empty otherwise
	StreetBet int
}

// eligible reports whether the seat can still take betting actions.
func (p *PlayerState) eligible() bool {
	return !p.Folded && !p.AllIn
}

// Config holds the room's fixed parameters.
type Config struct {
	SmallBlind    int
	BigBlind      int
	StartingStack int
}

// Room is the single mutable state of one heads-up table. All operations
// mutate it in place; it is created once and reset hand to hand while stacks
// and the dealer rotation persist.
type Room struct {
	cfg  Config
	rng  *rand.Rand
	eval Evaluator

	stage     Stage
	dealer    Seat // NoSeat until the first hand; dealer posts the small blind
	deck      *poker.Deck
	community []poker.Card
	pot       int // chips from prior streets, already swept out of StreetBet

	currentBet    int  // highest StreetBet to match this street
	minRaiseTo    int  // smallest legal raise-to; 0 means unset (floor is currentBet+bb)
	lastRaiseSize int  // delta of the last full raise, sizes the next minimum raise
	acting        Seat // whose turn it is; NoSeat outside betting streets
	lastAggressor Seat
	acted         [2]bool // voluntary action taken since the street opened or reopened

	players [2]PlayerState

	result *ShowdownResult // set while stage == SHOWDOWN
}

// Option configures a Room.
type Option func(*Room)

// WithEvaluator replaces the hand evaluator. Used by tests to force
// outcomes without stacking decks.
func WithEvaluator(ev Evaluator) Option {
	return func(r *Room) { r.eval = ev }
}

// NewRoom creates a room in WAITING with both stacks at the starting amount.
func NewRoom(cfg Config, rng *rand.Rand, opts ...Option) *Room {
	r := &Room{
		cfg:           cfg,
		rng:           rng,
		eval:          handEvaluator{},
		stage:         StageWaiting,
		dealer:        NoSeat,
		acting:        NoSeat,
		lastAggressor: NoSeat,
	}
	r.players[SeatA].Stack = cfg.StartingStack
	r.players[SeatB].Stack = cfg.StartingStack

	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Stage returns the current lifecycle stage.
func (r *Room) Stage() Stage {
	return r.stage
}

// Claim binds a token to a seat: a token that already owns a seat reclaims
// it (reconnect), otherwise the first empty seat is assigned. A third
// distinct token gets NoSeat and can only observe.
func (r *Room) Claim(token string) Seat {
	for _, seat := range []Seat{SeatA, SeatB} {
		if r.players[seat].Token == token {
			return seat
		}
	}
	for _, seat := range []Seat{SeatA, SeatB} {
		if r.players[seat].Token == "" {
			r.players[seat].Token = token
			return seat
		}
	}
	return NoSeat
}

// SetConnected records connection status for a seat. Connection state never
// affects action legality.
func (r *Room) SetConnected(seat Seat, connected bool) {
	if seat == NoSeat {
		return
	}
	r.players[seat].Connected = connected
}

// toCall is the amount the seat must add to match the current bet.
func (r *Room) toCall(seat Seat) int {
	if d := r.currentBet - r.players[seat].StreetBet; d > 0 {
		return d
	}
	return 0
}

// raiseFloor is the smallest legal raise-to target. minRaiseTo == 0 means no
// full raise has happened this street, in which case the floor is one big
// blind above the current bet.
func (r *Room) raiseFloor() int {
	if r.minRaiseTo > 0 {
		return r.minRaiseTo
	}
	return r.currentBet + r.cfg.BigBlind
}
