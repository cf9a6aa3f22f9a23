package intents

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// YesNo es el "temAnimais" del backend: viaja como "Sim" / "Nao".
type YesNo bool

const (
	Yes YesNo = true
	No  YesNo = false
)

func ParseYesNo(raw string) (YesNo, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "sim", "yes", "y", "true", "s":
		return Yes, nil
	case "nao", "não", "no", "n", "false":
		return No, nil
	default:
		return No, fmt.Errorf("expected yes or no, got %q", raw)
	}
}

func (y YesNo) String() string {
	if y {
		return "Sim"
	}
	return "Nao"
}

func (y YesNo) MarshalJSON() ([]byte, error) {
	return json.Marshal(y.String())
}

func (y *YesNo) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if string(b) == "null" {
		*y = No
		return nil
	}
	if string(b) == "true" || string(b) == "false" {
		*y = string(b) == "true"
		return nil
	}
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("temAnimais: %w", err)
	}
	if strings.TrimSpace(raw) == "" {
		*y = No
		return nil
	}
	v, err := ParseYesNo(raw)
	if err != nil {
		return fmt.Errorf("temAnimais: %w", err)
	}
	*y = v
	return nil
}
