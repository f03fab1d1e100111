package room

import "github.com/lox/headsup/poker"

// tryStartHand deals a new hand once both seats are ready: fresh shuffled
// deck, hole cards, blinds, and the small blind (dealer) to act.
func (r *Room) tryStartHand() {
	if r.stage != StageWaiting {
		return
	}
	if !(r.players[SeatA].Ready && r.players[SeatB].Ready) {
		return
	}

	if r.dealer == NoSeat {
		r.dealer = SeatA
	}
	r.resetHand()
	r.players[SeatA].Ready = false
	r.players[SeatB].Ready = false

	r.deck = poker.NewDeck(r.rng)
	r.dealHole()
	r.stage = StagePreflop
	r.postBlinds()
	r.acting = r.firstToAct(StagePreflop)

	// Posting can consume an entire stack; if no action is owed the hand
	// runs out immediately.
	if r.roundComplete() {
		r.closeRound()
	}
}

// postBlinds posts the small blind from the dealer and the big blind from
// the other seat, clamped to each stack. The big blind counts as the
// opening raise, so the first raise must be to at least two big blinds. A
// short stack can leave either post below the other; the bet to match is
// the larger of the two.
func (r *Room) postBlinds() {
	sbSeat := r.dealer
	bbSeat := sbSeat.Other()

	r.commit(&r.players[sbSeat], r.cfg.SmallBlind)
	r.commit(&r.players[bbSeat], r.cfg.BigBlind)

	r.currentBet = max(r.players[sbSeat].StreetBet, r.players[bbSeat].StreetBet)
	r.lastRaiseSize = r.currentBet
	r.minRaiseTo = r.currentBet + r.lastRaiseSize
	r.lastAggressor = bbSeat
	r.acted = [2]bool{}
}

// firstToAct returns the seat that opens the street: the small blind
// preflop, the big blind postflop. A seat that cannot act passes the
// opening to its opponent.
func (r *Room) firstToAct(stage Stage) Seat {
	first := r.dealer
	if stage != StagePreflop {
		first = r.dealer.Other()
	}
	if r.players[first].eligible() {
		return first
	}
	if r.players[first.Other()].eligible() {
		return first.Other()
	}
	return NoSeat
}

// advanceStreet sweeps street bets into the pot, deals the next tranche of
// community cards, and opens the next betting round. Advancing past the
// river settles the showdown and leaves the stage at SHOWDOWN until both
// seats ready up again.
func (r *Room) advanceStreet() {
	r.sweepStreetBets()

	switch r.stage {
	case StagePreflop:
		r.dealCommunity(3)
		r.stage = StageFlop
	case StageFlop:
		r.dealCommunity(1)
		r.stage = StageTurn
	case StageTurn:
		r.dealCommunity(1)
		r.stage = StageRiver
	case StageRiver:
		r.stage = StageShowdown
		r.acting = NoSeat
		r.settle()
		return
	default:
		return
	}

	// Fresh street: the minimum bet is one big blind.
	r.minRaiseTo = r.cfg.BigBlind
	r.acting = r.firstToAct(r.stage)
}

// sweepStreetBets commits both street bets to the pot and clears the
// per-street betting fields.
func (r *Room) sweepStreetBets() {
	r.pot += r.players[SeatA].StreetBet + r.players[SeatB].StreetBet
	r.players[SeatA].StreetBet = 0
	r.players[SeatB].StreetBet = 0
	r.currentBet = 0
	r.minRaiseTo = 0
	r.lastRaiseSize = 0
	r.lastAggressor = NoSeat
	r.acted = [2]bool{}
}

func (r *Room) dealHole() {
	for seat := range r.players {
		r.players[seat].Hole = poker.NewHand(r.deck.Deal(2)...)
	}
}

func (r *Room) dealCommunity(n int) {
	r.community = append(r.community, r.deck.Deal(n)...)
}

// finishHand returns the room to WAITING for the next hand: the dealer
// button rotates, ready flags clear, and all hand state resets. Stacks are
// untouched.
func (r *Room) finishHand() {
	r.stage = StageWaiting
	r.acting = NoSeat
	if r.dealer == NoSeat {
		r.dealer = SeatA
	} else {
		r.dealer = r.dealer.Other()
	}
	r.players[SeatA].Ready = false
	r.players[SeatB].Ready = false
	r.resetHand()
}

// resetHand clears cards, pot, and street fields. Stacks, tokens, and
// connection flags persist.
func (r *Room) resetHand() {
	r.deck = nil
	r.community = nil
	r.pot = 0
	r.result = nil
	for seat := range r.players {
		p := &r.players[seat]
		p.Folded = false
		p.AllIn = false
		p.Hole = 0
		p.StreetBet = 0
	}
	r.currentBet = 0
	r.minRaiseTo = 0
	r.lastRaiseSize = 0
	r.lastAggressor = NoSeat
	r.acted = [2]bool{}
}
