package combat

import "encoding/json"

// Record is one entry of the confrontation log. Every entry is a TurnRecord
// except the last, which is always a ResultRecord.
type Record interface{ record() }

type ActionRecord struct {
	Actor  string   `json:"actor"`
	Action string   `json:"action"`
	Target *string  `json:"target"`
	Damage int      `json:"damage"`
	Extra  []string `json:"extra"`
}

type TurnRecord struct {
	TurnNumber    int            `json:"turn_number"`
	Actions       []ActionRecord `json:"actions"`
	StatusEffects []string       `json:"status_effects,omitempty"`
	Events        []string       `json:"events,omitempty"`
}

type ResultRecord struct {
	BattleResult string `json:"battle_result"`
	FinalTurn    int    `json:"final_turn"`
}

func (*TurnRecord) record()   {}
func (*ResultRecord) record() {}

func MarshalPretty(v any) []byte {
	b, _ := json.MarshalIndent(v, "", "  ")
	return b
}
