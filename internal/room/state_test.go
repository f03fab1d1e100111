package room

import (
	"encoding/json"
	"testing"
)

func TestClaimAssignsSeatsThenObserves(t *testing.T) {
	r := newTestRoom(t)

	if seat := r.Claim("tok-a"); seat != SeatA {
		t.Fatalf("Expected the first token to take seat A, got %s", seat)
	}
	if seat := r.Claim("tok-b"); seat != SeatB {
		t.Fatalf("Expected the second token to take seat B, got %s", seat)
	}
	if seat := r.Claim("tok-c"); seat != NoSeat {
		t.Errorf("Expected a third token to observe, got %s", seat)
	}

	// The same token reclaims its seat on reconnect.
	if seat := r.Claim("tok-a"); seat != SeatA {
		t.Errorf("Expected tok-a to reclaim seat A, got %s", seat)
	}
	if seat := r.Claim("tok-b"); seat != SeatB {
		t.Errorf("Expected tok-b to reclaim seat B, got %s", seat)
	}
}

func TestDisconnectDoesNotDisturbTheHand(t *testing.T) {
	r := newTestRoom(t)
	r.Claim("tok-a")
	r.Claim("tok-b")
	r.SetConnected(SeatA, true)
	r.SetConnected(SeatB, true)
	startHand(t, r)

	// A drops mid-hand: the hand stays where it was and A may still act
	// after reconnecting.
	r.SetConnected(SeatA, false)
	if r.stage != StagePreflop || r.acting != SeatA {
		t.Fatalf("Expected the hand untouched by the disconnect, got %s acting %s",
			r.stage, r.acting)
	}
	mustApply(t, r, SeatA, Call())

	r.SetConnected(SeatA, true)
	if !r.Project(NoSeat).Players.A.Connected {
		t.Errorf("Expected seat A shown connected after reconnect")
	}

	// Observers have no connection flag to flip.
	r.SetConnected(NoSeat, false)
}

func TestSeatJSONRoundTrip(t *testing.T) {
	cases := []struct {
		seat Seat
		wire string
	}{
		{SeatA, `"A"`},
		{SeatB, `"B"`},
		{NoSeat, `null`},
	}
	for _, tc := range cases {
		data, err := json.Marshal(tc.seat)
		if err != nil {
			t.Fatalf("Marshal(%d) failed: %v", tc.seat, err)
		}
		if string(data) != tc.wire {
			t.Errorf("Expected %s to encode as %s, got %s", tc.seat, tc.wire, data)
		}

		var back Seat
		if err := json.Unmarshal(data, &back); err != nil {
			t.Fatalf("Unmarshal(%s) failed: %v", data, err)
		}
		if back != tc.seat {
			t.Errorf("Round trip of %s gave %d", tc.wire, back)
		}
	}
}

func TestStageBetting(t *testing.T) {
	betting := map[Stage]bool{
		StageWaiting:  false,
		StagePreflop:  true,
		StageFlop:     true,
		StageTurn:     true,
		StageRiver:    true,
		StageShowdown: false,
	}
	for stage, want := range betting {
		if got := stage.Betting(); got != want {
			t.Errorf("Expected %s.Betting() == %v, got %v", stage, want, got)
		}
	}
}

func TestParseActionType(t *testing.T) {
	for typ, name := range actionNames {
		if got := ParseActionType(name); got != typ {
			t.Errorf("Expected %q to parse as %s, got %s", name, typ, got)
		}
	}
	if got := ParseActionType("JAM"); got != ActionUnknown {
		t.Errorf("Expected an unrecognized name to parse as unknown, got %s", got)
	}
}
