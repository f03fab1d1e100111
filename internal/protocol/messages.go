// Package protocol defines the JSON messages exchanged over the websocket.
// Clients send hello and action messages; the server answers with welcome,
// view, and error events.
package protocol

import (
	"encoding/json"
	"fmt"

	"github.com/lox/headsup/internal/room"
)

const (
	// Client -> Server
	TypeHello  = "hello"
	TypeAction = "action"

	// Server -> Client
	TypeWelcome = "welcome"
	TypeView    = "view"
	TypeError   = "error"
)

// Client -> Server Messages

// Hello is the first message on a fresh connection. An empty token asks the
// server to mint one; a previously issued token reclaims its seat.
type Hello struct {
	Type  string `json:"type"`
	Token string `json:"token"`
}

// Action carries one player action. Amount matters only for BET and RAISE.
type Action struct {
	Type   string `json:"type"`
	Action string `json:"action"`
	Amount int    `json:"amount,omitempty"`
}

// Server -> Client Messages

// Welcome acknowledges a hello with the (possibly minted) token and the
// seat the token holds. Seat is null for observers.
type Welcome struct {
	Type  string    `json:"type"`
	Token string    `json:"token"`
	Seat  room.Seat `json:"seat"`
}

// View wraps a per-viewer game projection.
type View struct {
	Type string    `json:"type"`
	View room.View `json:"view"`
}

// Error reports a rejected action. Code is the machine-readable kind.
type Error struct {
	Type    string `json:"type"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NewWelcome builds a welcome event.
func NewWelcome(token string, seat room.Seat) Welcome {
	return Welcome{Type: TypeWelcome, Token: token, Seat: seat}
}

// NewView builds a view event.
func NewView(v room.View) View {
	return View{Type: TypeView, View: v}
}

// NewError builds an error event from a rejected room action.
func NewError(err *room.Error) Error {
	return Error{Type: TypeError, Code: string(err.Kind), Message: err.Message}
}

// envelope is the minimal decode used to dispatch an incoming message.
type envelope struct {
	Type string `json:"type"`
}

// Incoming is a decoded client message: exactly one of Hello or Action is
// set, according to Type.
type Incoming struct {
	Type   string
	Hello  *Hello
	Action *Action
}

// Decode parses one client message. Unknown or malformed messages return an
// error; the caller decides whether to report or drop them.
func Decode(data []byte) (Incoming, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return Incoming{}, fmt.Errorf("decoding message: %w", err)
	}

	switch env.Type {
	case TypeHello:
		var msg Hello
		if err := json.Unmarshal(data, &msg); err != nil {
			return Incoming{}, fmt.Errorf("decoding hello: %w", err)
		}
		return Incoming{Type: TypeHello, Hello: &msg}, nil
	case TypeAction:
		var msg Action
		if err := json.Unmarshal(data, &msg); err != nil {
			return Incoming{}, fmt.Errorf("decoding action: %w", err)
		}
		return Incoming{Type: TypeAction, Action: &msg}, nil
	default:
		return Incoming{}, fmt.Errorf("unknown message type %q", env.Type)
	}
}

// RoomAction maps a wire action to the engine's variant. Unrecognized names
// map to the unknown action, which the engine rejects.
func (a *Action) RoomAction() room.Action {
	return room.Action{Type: room.ParseActionType(a.Action), Amount: a.Amount}
}
