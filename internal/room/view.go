package room

import (
	"fmt"
	"strings"

	"github.com/lox/headsup/poker"
)

// holeMask is what viewers see in place of hidden hole cards.
const holeMask = "XX"

// View is a read-only projection of the room for a single viewer. Hole
// cards other than the viewer's own never appear in it; the one exception
// is the showdown block, which reveals both hands once the pot is settled.
type View struct {
	You       YouView       `json:"you"`
	Stage     Stage         `json:"stage"`
	Dealer    Seat          `json:"dealer"`
	Community []string      `json:"community"`
	Pot       int           `json:"pot"`
	Players   PlayersView   `json:"players"`
	YourHole  []string      `json:"yourHole"`
	OppMask   []string      `json:"oppHoleMask"`
	Showdown  *ShowdownView `json:"showdown,omitempty"`
	Message   string        `json:"message,omitempty"`
	Betting   BettingView   `json:"betting"`
}

type YouView struct {
	Seat Seat `json:"seat"`
}

type PlayersView struct {
	A PlayerView `json:"A"`
	B PlayerView `json:"B"`
}

// PlayerView carries only a seat's public fields.
type PlayerView struct {
	Seat      Seat `json:"seat"`
	Connected bool `json:"connected"`
	Stack     int  `json:"stack"`
	Folded    bool `json:"folded"`
	Ready     bool `json:"ready"`
}

// ShowdownView reveals both hands and their evaluated results. Winner is
// "A", "B", or "TIE".
type ShowdownView struct {
	AHole   []string   `json:"aHole"`
	BHole   []string   `json:"bHole"`
	AResult ResultView `json:"aResult"`
	BResult ResultView `json:"bResult"`
	Winner  string     `json:"winner"`
}

// ResultView is a seat's evaluated hand: higher rankValue is stronger.
type ResultView struct {
	Name      string   `json:"name"`
	BestFive  []string `json:"bestFive"`
	RankValue int      `json:"rankValue"`
}

// BettingView is the per-street betting snapshot.
type BettingView struct {
	Street       Stage          `json:"street"`
	Pot          int            `json:"pot"`
	CurrentBet   int            `json:"currentBet"`
	YourInvested int            `json:"yourInvested"`
	OppInvested  int            `json:"oppInvested"`
	ActingSeat   Seat           `json:"actingSeat"`
	Allowed      AllowedActions `json:"allowed"`
	SmallBlind   int            `json:"sb"`
	BigBlind     int            `json:"bb"`
}

// AllowedActions describes what the acting viewer may legally do, derived
// purely from current state. Non-acting viewers get the zero flags with the
// standing amounts filled in.
type AllowedActions struct {
	CanFold    bool `json:"canFold"`
	CanCheck   bool `json:"canCheck"`
	CanCall    bool `json:"canCall"`
	CanBet     bool `json:"canBet"`
	CanRaise   bool `json:"canRaise"`
	ToCall     int  `json:"toCall"`
	MinBet     int  `json:"minBet"`
	MinRaiseTo int  `json:"minRaiseTo"`
}

// Project builds the view for one seat, or for an observer when NoSeat.
// It never mutates the room.
func (r *Room) Project(forSeat Seat) View {
	v := View{
		You:       YouView{Seat: forSeat},
		Stage:     r.stage,
		Dealer:    r.dealer,
		Community: wireCards(r.community),
		Pot:       r.pot,
		Players: PlayersView{
			A: r.playerView(SeatA),
			B: r.playerView(SeatB),
		},
		YourHole: []string{},
		OppMask:  []string{holeMask, holeMask},
	}

	if forSeat != NoSeat && r.players[forSeat].Hole != 0 {
		v.YourHole = wireCards(r.players[forSeat].Hole.Cards())
	}

	if r.stage == StageShowdown && r.result != nil {
		winner := "TIE"
		if r.result.Winner != NoSeat {
			winner = r.result.Winner.String()
		}
		v.Showdown = &ShowdownView{
			AHole:   wireCards(r.players[SeatA].Hole.Cards()),
			BHole:   wireCards(r.players[SeatB].Hole.Cards()),
			AResult: resultView(r.result.Results[SeatA]),
			BResult: resultView(r.result.Results[SeatB]),
			Winner:  winner,
		}
	}

	if r.stage == StageWaiting {
		ready := 0
		for seat := range r.players {
			if r.players[seat].Ready {
				ready++
			}
		}
		v.Message = fmt.Sprintf("waiting for both players to ready up (%d/2)", ready)
	}

	v.Betting = r.bettingView(forSeat)
	return v
}

func (r *Room) playerView(seat Seat) PlayerView {
	p := &r.players[seat]
	return PlayerView{
		Seat:      seat,
		Connected: p.Connected,
		Stack:     p.Stack,
		Folded:    p.Folded,
		Ready:     p.Ready,
	}
}

func (r *Room) bettingView(forSeat Seat) BettingView {
	bv := BettingView{
		Street:     r.stage,
		Pot:        r.pot,
		CurrentBet: r.currentBet,
		ActingSeat: r.acting,
		Allowed: AllowedActions{
			MinBet:     r.cfg.BigBlind,
			MinRaiseTo: r.raiseFloor(),
		},
		SmallBlind: r.cfg.SmallBlind,
		BigBlind:   r.cfg.BigBlind,
	}

	if forSeat == NoSeat || !r.stage.Betting() {
		return bv
	}

	bv.YourInvested = r.players[forSeat].StreetBet
	bv.OppInvested = r.players[forSeat.Other()].StreetBet

	if r.acting == forSeat {
		toCall := r.toCall(forSeat)
		bv.Allowed = AllowedActions{
			CanFold:    toCall > 0,
			CanCheck:   toCall == 0,
			CanCall:    toCall > 0,
			CanBet:     r.currentBet == 0,
			CanRaise:   r.currentBet > 0,
			ToCall:     toCall,
			MinBet:     r.cfg.BigBlind,
			MinRaiseTo: r.raiseFloor(),
		}
	}
	return bv
}

func resultView(res HandResult) ResultView {
	return ResultView{
		Name:      res.Name,
		BestFive:  wireCards(res.BestFive),
		RankValue: res.Strength,
	}
}

// wireCards renders cards in the client contract's uppercase notation
// ("AS", "TD") rather than the engine's lowercase-suit form.
func wireCards(cards []poker.Card) []string {
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = strings.ToUpper(c.String())
	}
	return out
}
