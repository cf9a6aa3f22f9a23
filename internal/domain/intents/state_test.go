package intents

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestState_UnmarshalIntOrTag(t *testing.T) {
	tests := []struct {
		in   string
		want State
	}{
		{`0`, StateReserved},
		{`3`, StateCompleted},
		{`"EmProcesso"`, StateInProcess},
		{`"emvalidacao"`, StateInValidation},
		{`"Rejected"`, StateRejected},
		{`"in-process"`, StateInProcess},
		{`"2"`, StateInValidation},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var s State
			require.NoError(t, json.Unmarshal([]byte(tt.in), &s))
			assert.Equal(t, tt.want, s)
		})
	}

	var s State
	assert.Error(t, json.Unmarshal([]byte(`9`), &s))
	assert.Error(t, json.Unmarshal([]byte(`"Adotado"`), &s))
}

func TestState_MarshalsAsInteger(t *testing.T) {
	b, err := json.Marshal(struct {
		Estado State `json:"estado"`
	}{StateInValidation})
	require.NoError(t, err)
	assert.JSONEq(t, `{"estado":2}`, string(b))
}

func TestState_Transitions(t *testing.T) {
	assert.True(t, StateReserved.CanTransition(StateInProcess))
	assert.True(t, StateInValidation.CanTransition(StateRejected))
	assert.False(t, StateReserved.CanTransition(StateCompleted))
	assert.False(t, StateInProcess.CanTransition(StateInProcess))

	assert.True(t, StateCompleted.Terminal())
	assert.Empty(t, StateCompleted.Next())
	assert.Empty(t, StateRejected.Next())
}

func TestYesNo_JSON(t *testing.T) {
	var v struct {
		Tem YesNo `json:"temAnimais"`
	}
	for in, want := range map[string]YesNo{
		`{"temAnimais":"Sim"}`:   Yes,
		`{"temAnimais":"nao"}`:   No,
		`{"temAnimais":"yes"}`:   Yes,
		`{"temAnimais":true}`:    Yes,
		`{"temAnimais":""}`:      No,
		`{"temAnimais":null}`:    No,
		`{"temAnimais":"false"}`: No,
	} {
		require.NoError(t, json.Unmarshal([]byte(in), &v), in)
		assert.Equal(t, want, v.Tem, in)
	}

	b, err := json.Marshal(Yes)
	require.NoError(t, err)
	assert.Equal(t, `"Sim"`, string(b))

	assert.Error(t, json.Unmarshal([]byte(`{"temAnimais":"talvez"}`), &v))
}
