package room

// Apply validates and applies one action for the given seat (NoSeat for
// observers). It either fully applies — including any cascading street
// advance, all-in runout, and settlement — or returns a typed error with no
// observable change.
func (r *Room) Apply(seat Seat, a Action) *Error {
	if seat == NoSeat {
		return newError(KindNotSeated, "observers cannot act")
	}

	switch a.Type {
	case ActionUnknown:
		return newError(KindUnknownAction, "unknown action")
	case ActionReady:
		return r.applyReady(seat)
	case ActionUnready:
		return r.applyUnready(seat)
	}

	if !r.stage.Betting() {
		return newError(KindNotBettingStreet, "no betting during %s", r.stage)
	}
	if r.acting != seat {
		return newError(KindOutOfTurn, "not seat %s's turn", seat)
	}

	switch a.Type {
	case ActionFold:
		return r.applyFold(seat)
	case ActionCheck:
		return r.applyCheck(seat)
	case ActionCall:
		return r.applyCall(seat)
	case ActionBet:
		return r.applyBet(seat, a.Amount)
	case ActionRaise:
		return r.applyRaise(seat, a.Amount)
	case ActionAllIn:
		return r.applyAllIn(seat)
	default:
		return newError(KindUnknownAction, "unknown action")
	}
}

// applyReady marks readiness. A READY while the previous hand is still on
// display (SHOWDOWN) finalizes it first, so the same click both dismisses
// the result and signs up for the next hand.
func (r *Room) applyReady(seat Seat) *Error {
	if r.stage == StageShowdown {
		r.finishHand()
	}
	r.players[seat].Ready = true
	r.tryStartHand()
	return nil
}

func (r *Room) applyUnready(seat Seat) *Error {
	if r.stage != StageWaiting {
		return newError(KindAlreadyStarted, "hand already started")
	}
	r.players[seat].Ready = false
	return nil
}

// applyFold ends the hand immediately: all committed chips go to the
// opponent and the room returns to WAITING.
func (r *Room) applyFold(seat Seat) *Error {
	me := &r.players[seat]
	opp := &r.players[seat.Other()]

	me.Folded = true
	r.acted[seat] = true
	r.sweepStreetBets()
	opp.Stack += r.pot
	r.pot = 0
	r.finishHand()
	return nil
}

func (r *Room) applyCheck(seat Seat) *Error {
	if r.toCall(seat) != 0 {
		return newError(KindMustCallOrFold, "cannot check facing a bet of %d", r.currentBet)
	}
	r.acted[seat] = true
	r.passTurn(seat)
	return nil
}

func (r *Room) applyCall(seat Seat) *Error {
	toCall := r.toCall(seat)
	if toCall == 0 {
		return newError(KindNothingToCall, "nothing to call, check instead")
	}

	me := &r.players[seat]
	r.commit(me, toCall)
	r.acted[seat] = true
	r.passTurn(seat)
	return nil
}

// applyBet opens the betting on a street. The committed amount is clamped
// to at least one big blind and at most the seat's stack.
func (r *Room) applyBet(seat Seat, amount int) *Error {
	if r.currentBet != 0 {
		return newError(KindAlreadyBet, "already a bet of %d, raise or call", r.currentBet)
	}

	me := &r.players[seat]
	betTo := max(amount, r.cfg.BigBlind)
	r.commit(me, betTo)

	r.currentBet = me.StreetBet
	r.lastRaiseSize = me.StreetBet
	r.minRaiseTo = r.currentBet + r.lastRaiseSize
	r.lastAggressor = seat
	r.reopenAction(seat)
	r.passTurn(seat)
	return nil
}

// applyRaise raises to a total street investment of amount. A raise capped
// by the stack below the floor is a short all-in: the current bet rises but
// the raise window and aggressor stay as they were.
func (r *Room) applyRaise(seat Seat, amount int) *Error {
	if r.currentBet == 0 {
		return newError(KindNoBetToRaise, "no bet to raise, bet or check instead")
	}
	floor := r.raiseFloor()
	if amount < floor {
		return newError(KindRaiseTooSmall, "minimum raise is to %d", floor)
	}

	me := &r.players[seat]
	prev := r.currentBet
	r.commit(me, amount-me.StreetBet)

	if me.StreetBet > r.currentBet {
		r.currentBet = me.StreetBet
	}
	if me.StreetBet >= floor {
		r.lastRaiseSize = r.currentBet - prev
		r.minRaiseTo = r.currentBet + r.lastRaiseSize
		r.lastAggressor = seat
	}
	r.reopenAction(seat)
	r.passTurn(seat)
	return nil
}

// applyAllIn commits the entire stack and reclassifies the move by effect:
// an opening bet, a full raise, a short all-in raise, or a capped call.
func (r *Room) applyAllIn(seat Seat) *Error {
	me := &r.players[seat]
	if me.Stack == 0 {
		return newError(KindNoChips, "no chips left")
	}

	prev := r.currentBet
	floor := r.raiseFloor()
	r.commit(me, me.Stack)

	switch {
	case prev == 0:
		// Opens the betting, same bookkeeping as a bet.
		r.currentBet = me.StreetBet
		r.lastRaiseSize = me.StreetBet
		r.minRaiseTo = r.currentBet + r.lastRaiseSize
		r.lastAggressor = seat
		r.reopenAction(seat)

	case me.StreetBet >= floor:
		// Full raise: reopens the opponent's raising rights.
		r.currentBet = me.StreetBet
		r.lastRaiseSize = r.currentBet - prev
		r.minRaiseTo = r.currentBet + r.lastRaiseSize
		r.lastAggressor = seat
		r.reopenAction(seat)

	case me.StreetBet > prev:
		// Short all-in raise: the bet rises but the raise window and
		// aggressor are unchanged. The opponent re-matches, nothing more.
		r.currentBet = me.StreetBet
		r.reopenAction(seat)

	default:
		// At or below the current bet: a capped call.
		r.acted[seat] = true
	}

	r.passTurn(seat)
	return nil
}

// commit moves up to amount chips from the seat's stack onto the street,
// marking the seat all-in when the stack empties.
func (r *Room) commit(p *PlayerState, amount int) {
	pay := min(amount, p.Stack)
	p.Stack -= pay
	p.StreetBet += pay
	if p.Stack == 0 {
		p.AllIn = true
	}
}

// reopenAction marks the actor as acted and clears the opponent's acted
// flag: aggression always demands a response.
func (r *Room) reopenAction(seat Seat) {
	r.acted[seat] = true
	r.acted[seat.Other()] = false
}

// passTurn hands the action to the opponent, or closes the round when no
// further action is owed. When the round is incomplete the opponent is
// always eligible: a seat that cannot act owes nothing, so its absence
// completes the round instead.
func (r *Room) passTurn(seat Seat) {
	if r.roundComplete() {
		r.closeRound()
		return
	}
	r.acting = seat.Other()
}

// roundComplete reports whether the current betting round is finished: a
// fold or double all-in ends it outright, otherwise every seat still able
// to act must have matched the current bet and acted since the street
// opened or was last reopened. Pure read; calling it twice without an
// intervening action yields the same answer.
func (r *Room) roundComplete() bool {
	a := &r.players[SeatA]
	b := &r.players[SeatB]

	if a.Folded || b.Folded {
		return true
	}
	if a.AllIn && b.AllIn {
		return true
	}

	for _, seat := range []Seat{SeatA, SeatB} {
		p := &r.players[seat]
		if !p.eligible() {
			continue
		}
		if p.StreetBet != r.currentBet || !r.acted[seat] {
			return false
		}
	}
	return true
}

// closeRound advances to the next street. When either seat is all-in no
// further betting is possible, so the remaining streets run out
// automatically to showdown (at most four advances).
func (r *Room) closeRound() {
	if r.players[SeatA].AllIn || r.players[SeatB].AllIn {
		for r.stage != StageShowdown {
			r.advanceStreet()
		}
		return
	}
	r.advanceStreet()
}
