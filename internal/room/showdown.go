package room

import "github.com/lox/headsup/poker"

// HandResult is what the hand evaluator reports for one seat: a category
// name for display, the five cards that made it, and a totally ordered
// strength where higher wins.
type HandResult struct {
	Name     string
	BestFive []poker.Card
	Strength int
}

// Evaluator ranks two hole cards against the community board. The room only
// ever compares strengths and forwards the rest to viewers.
type Evaluator interface {
	Evaluate(hole, community []poker.Card) HandResult
}

// ShowdownResult records the settled outcome while the stage sits at
// SHOWDOWN. Winner is NoSeat for a split pot.
type ShowdownResult struct {
	Results [2]HandResult
	Winner  Seat
}

// settle asks the evaluator for both seats' results and awards the pot:
// strictly higher strength takes it all, a tie splits it with the odd chip
// going to the big blind (non-dealer) seat. The stage stays at SHOWDOWN so
// both players can see the result before readying up.
func (r *Room) settle() {
	resA := r.eval.Evaluate(r.players[SeatA].Hole.Cards(), r.community)
	resB := r.eval.Evaluate(r.players[SeatB].Hole.Cards(), r.community)

	winner := NoSeat
	switch {
	case resA.Strength > resB.Strength:
		winner = SeatA
	case resB.Strength > resA.Strength:
		winner = SeatB
	}

	switch winner {
	case NoSeat:
		half := r.pot / 2
		bbSeat := r.dealer.Other()
		r.players[bbSeat].Stack += r.pot - half
		r.players[bbSeat.Other()].Stack += half
	default:
		r.players[winner].Stack += r.pot
	}
	r.pot = 0

	r.result = &ShowdownResult{
		Results: [2]HandResult{resA, resB},
		Winner:  winner,
	}
}

// handEvaluator is the built-in evaluator backed by the poker package.
type handEvaluator struct{}

func (handEvaluator) Evaluate(hole, community []poker.Card) HandResult {
	all := poker.NewHand(hole...) | poker.NewHand(community...)
	best, rank := poker.BestFive(all)
	return HandResult{
		Name:     rank.String(),
		BestFive: best.Cards(),
		Strength: int(rank.Strength()),
	}
}
