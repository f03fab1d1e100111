package protocol

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/headsup/internal/room"
)

func TestDecodeHello(t *testing.T) {
	in, err := Decode([]byte(`{"type":"hello","token":"abc123"}`))
	require.NoError(t, err)
	require.Equal(t, TypeHello, in.Type)
	require.NotNil(t, in.Hello)
	assert.Equal(t, "abc123", in.Hello.Token)

	// An empty token is a request for a fresh one.
	in, err = Decode([]byte(`{"type":"hello","token":""}`))
	require.NoError(t, err)
	assert.Empty(t, in.Hello.Token)
}

func TestDecodeAction(t *testing.T) {
	in, err := Decode([]byte(`{"type":"action","action":"RAISE","amount":60}`))
	require.NoError(t, err)
	require.Equal(t, TypeAction, in.Type)
	require.NotNil(t, in.Action)

	a := in.Action.RoomAction()
	assert.Equal(t, room.ActionRaise, a.Type)
	assert.Equal(t, 60, a.Amount)
}

func TestDecodeUnknownActionNameFailsClosed(t *testing.T) {
	in, err := Decode([]byte(`{"type":"action","action":"JAM"}`))
	require.NoError(t, err)

	// The engine rejects the zero action type; decoding never guesses.
	assert.Equal(t, room.ActionUnknown, in.Action.RoomAction().Type)
}

func TestDecodeRejectsGarbage(t *testing.T) {
	_, err := Decode([]byte(`{"type":"teleport"}`))
	assert.Error(t, err)

	_, err = Decode([]byte(`not json`))
	assert.Error(t, err)
}

func TestWelcomeSeatEncoding(t *testing.T) {
	data, err := json.Marshal(NewWelcome("tok", room.NoSeat))
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"welcome","token":"tok","seat":null}`, string(data))

	data, err = json.Marshal(NewWelcome("tok", room.SeatB))
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"welcome","token":"tok","seat":"B"}`, string(data))
}

func TestErrorEventCarriesKind(t *testing.T) {
	ev := NewError(&room.Error{Kind: room.KindOutOfTurn, Message: "not your turn"})
	data, err := json.Marshal(ev)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"error","code":"out_of_turn","message":"not your turn"}`, string(data))
}
