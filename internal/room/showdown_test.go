package room

import (
	"testing"

	"github.com/lox/headsup/poker"
)

// scriptEvaluator returns scripted strengths in evaluation order (seat A
// first, then seat B) so tests can force outcomes without stacking decks.
type scriptEvaluator struct {
	strengths []int
	calls     int
}

func (e *scriptEvaluator) Evaluate(hole, community []poker.Card) HandResult {
	s := e.strengths[e.calls%len(e.strengths)]
	e.calls++
	return HandResult{Name: "Scripted", BestFive: community[:0], Strength: s}
}

func TestSettleWinnerTakesPot(t *testing.T) {
	r := newTestRoom(t, WithEvaluator(&scriptEvaluator{strengths: []int{100, 7}}))
	startHand(t, r)

	// Check the hand down to the river.
	mustApply(t, r, SeatA, Call())
	mustApply(t, r, SeatB, Check())
	for range 3 {
		mustApply(t, r, SeatB, Check())
		mustApply(t, r, SeatA, Check())
	}

	if r.stage != StageShowdown {
		t.Fatalf("Expected SHOWDOWN after the river checks, got %s", r.stage)
	}
	if r.result == nil {
		t.Fatal("Expected a showdown result")
	}
	if r.result.Winner != SeatA {
		t.Errorf("Expected winner A, got %s", r.result.Winner)
	}
	if got := r.players[SeatA].Stack; got != 1010 {
		t.Errorf("Expected A stack 1010, got %d", got)
	}
	if got := r.players[SeatB].Stack; got != 990 {
		t.Errorf("Expected B stack 990, got %d", got)
	}
	if r.pot != 0 {
		t.Errorf("Expected pot cleared after settlement, got %d", r.pot)
	}
}

func TestSettleSplitGivesOddChipToBigBlind(t *testing.T) {
	r := newTestRoom(t, WithEvaluator(&scriptEvaluator{strengths: []int{5, 5}}))

	// A settled pot of 101 cannot split evenly; the extra chip goes to the
	// big blind seat, which is the non-dealer.
	r.stage = StageRiver
	r.dealer = SeatA
	r.pot = 101
	r.players[SeatA].Stack = 0
	r.players[SeatB].Stack = 0
	r.settle()

	if r.result.Winner != NoSeat {
		t.Fatalf("Expected a split, got winner %s", r.result.Winner)
	}
	if got := r.players[SeatA].Stack; got != 50 {
		t.Errorf("Expected dealer half 50, got %d", got)
	}
	if got := r.players[SeatB].Stack; got != 51 {
		t.Errorf("Expected big blind half 51, got %d", got)
	}
}

func TestShowdownHoldsUntilReady(t *testing.T) {
	r := newTestRoom(t, WithEvaluator(&scriptEvaluator{strengths: []int{2, 1}}))
	startHand(t, r)
	mustApply(t, r, SeatA, AllIn())
	mustApply(t, r, SeatB, Call())

	// The result stays on display until someone readies up; that READY both
	// finalizes the hand and registers for the next one.
	if r.stage != StageShowdown {
		t.Fatalf("Expected SHOWDOWN, got %s", r.stage)
	}
	mustApply(t, r, SeatA, Ready())
	if r.stage != StageWaiting {
		t.Errorf("Expected WAITING after READY from showdown, got %s", r.stage)
	}
	if !r.players[SeatA].Ready {
		t.Errorf("Expected the READY to carry into the next hand")
	}
	if r.result != nil {
		t.Errorf("Expected the showdown result cleared")
	}
	if r.dealer != SeatB {
		t.Errorf("Expected the button to rotate, dealer is %s", r.dealer)
	}
}

func TestBuiltinEvaluatorRanksHands(t *testing.T) {
	community := []poker.Card{
		poker.MustParseCard("Ah"),
		poker.MustParseCard("Kh"),
		poker.MustParseCard("7h"),
		poker.MustParseCard("2c"),
		poker.MustParseCard("9s"),
	}
	flush := []poker.Card{poker.MustParseCard("Qh"), poker.MustParseCard("3h")}
	pair := []poker.Card{poker.MustParseCard("9c"), poker.MustParseCard("4d")}

	ev := handEvaluator{}
	resFlush := ev.Evaluate(flush, community)
	resPair := ev.Evaluate(pair, community)

	if resFlush.Strength <= resPair.Strength {
		t.Errorf("Expected the flush (%d) to beat the pair (%d)",
			resFlush.Strength, resPair.Strength)
	}
	if resFlush.Name != "Flush" {
		t.Errorf("Expected hand name Flush, got %q", resFlush.Name)
	}
	if resPair.Name != "Pair" {
		t.Errorf("Expected hand name Pair, got %q", resPair.Name)
	}
	if len(resFlush.BestFive) != 5 {
		t.Errorf("Expected five best cards, got %d", len(resFlush.BestFive))
	}
}
