package intents

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// State es el estado de una intención de adopción.
// En el wire viaja como entero (0..4); al decodificar también se aceptan los
// tags de texto del backend.
// @Enum 0, 1, 2, 3, 4
type State int

const (
	StateReserved State = iota
	StateInProcess
	StateInValidation
	StateCompleted
	StateRejected
)

var stateTags = map[State]string{
	StateReserved:     "Reservado",
	StateInProcess:    "EmProcesso",
	StateInValidation: "EmValidacao",
	StateCompleted:    "Concluido",
	StateRejected:     "Rejeitado",
}

var stateAliases = map[string]State{
	"reservado":    StateReserved,
	"reserved":     StateReserved,
	"emprocesso":   StateInProcess,
	"inprocess":    StateInProcess,
	"emvalidacao":  StateInValidation,
	"invalidation": StateInValidation,
	"concluido":    StateCompleted,
	"completed":    StateCompleted,
	"rejeitado":    StateRejected,
	"rejected":     StateRejected,
}

func (s State) Valid() bool {
	return s >= StateReserved && s <= StateRejected
}

// String devuelve el tag del backend ("EmProcesso").
func (s State) String() string {
	if t, ok := stateTags[s]; ok {
		return t
	}
	return "State(" + strconv.Itoa(int(s)) + ")"
}

// Label es el texto para mostrar.
func (s State) Label() string {
	switch s {
	case StateReserved:
		return "Reserved"
	case StateInProcess:
		return "In process"
	case StateInValidation:
		return "In validation"
	case StateCompleted:
		return "Completed"
	case StateRejected:
		return "Rejected"
	default:
		return s.String()
	}
}

func (s State) Terminal() bool {
	return s == StateCompleted || s == StateRejected
}

// Next lista los estados que se pueden proponer desde s.
func (s State) Next() []State {
	switch s {
	case StateReserved:
		return []State{StateInProcess}
	case StateInProcess:
		return []State{StateInValidation}
	case StateInValidation:
		return []State{StateCompleted, StateRejected}
	default:
		return nil
	}
}

// CanTransition: mantener el mismo estado no es una transición.
func (s State) CanTransition(to State) bool {
	for _, n := range s.Next() {
		if n == to {
			return true
		}
	}
	return false
}

// ParseState acepta el número, el tag del backend o el nombre en inglés,
// sin distinguir mayúsculas, espacios ni guiones.
func ParseState(raw string) (State, error) {
	raw = strings.TrimSpace(raw)
	if n, err := strconv.Atoi(raw); err == nil {
		s := State(n)
		if !s.Valid() {
			return 0, fmt.Errorf("intent state %d out of range", n)
		}
		return s, nil
	}
	key := strings.ToLower(strings.NewReplacer(" ", "", "-", "", "_", "").Replace(raw))
	if s, ok := stateAliases[key]; ok {
		return s, nil
	}
	return 0, fmt.Errorf("unknown intent state %q", raw)
}

func (s State) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Itoa(int(s))), nil
}

func (s *State) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var raw string
		if err := json.Unmarshal(b, &raw); err != nil {
			return err
		}
		parsed, err := ParseState(raw)
		if err != nil {
			return err
		}
		*s = parsed
		return nil
	}

	var n int
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("intent state: %w", err)
	}
	if !State(n).Valid() {
		return fmt.Errorf("intent state %d out of range", n)
	}
	*s = State(n)
	return nil
}
