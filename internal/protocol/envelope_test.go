package protocol

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvelopeRoundTrip(t *testing.T) {
	env, err := NewEnvelope(MsgJoin, JoinMsg{PlayerID: "p1", Name: "Zaque"})
	require.NoError(t, err)
	assert.Equal(t, MsgJoin, env.Type)

	data, err := json.Marshal(env)
	require.NoError(t, err)

	var back Envelope
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, MsgJoin, back.Type)

	var msg JoinMsg
	require.NoError(t, back.Decode(&msg))
	assert.Equal(t, "p1", msg.PlayerID)
	assert.Equal(t, "Zaque", msg.Name)
}

func TestEnvelopeDecodeMismatch(t *testing.T) {
	env := MustEnvelope(MsgError, ErrorMsg{Message: "not your turn"})

	var msg ErrorMsg
	require.NoError(t, env.Decode(&msg))
	assert.Equal(t, "not your turn", msg.Message)

	var wrong int
	assert.Error(t, env.Decode(&wrong))
}

func TestEnvelopeDecodeWithoutPayload(t *testing.T) {
	// Parameterless actions arrive as a bare type tag.
	var env Envelope
	require.NoError(t, json.Unmarshal([]byte(`{"type":"end_turn"}`), &env))
	assert.Equal(t, MsgEndTurn, env.Type)

	var msg ReadyMsg
	require.NoError(t, env.Decode(&msg))
	assert.False(t, msg.Ready)

	empty := Envelope{Type: MsgRoll, Payload: []byte{}}
	require.NoError(t, empty.Decode(&msg))
}

func TestMustEnvelopePanicsOnUnmarshalable(t *testing.T) {
	assert.Panics(t, func() {
		MustEnvelope("bad", func() {})
	})
}
