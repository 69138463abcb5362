package replay

import (
	"bytes"
	"strings"
	"testing"

	"arenasim/internal/combat"
)

func TestWrite(t *testing.T) {
	target := "X"
	log := []combat.Record{
		&combat.TurnRecord{
			TurnNumber: 1,
			Actions: []combat.ActionRecord{
				{Actor: "A", Action: "attack", Target: &target, Damage: 9, Extra: []string{}},
				{Actor: "X", Action: "idle", Extra: []string{}},
			},
			StatusEffects: []string{"A is affected by Poison (2)"},
			Events:        []string{"[1a2b] Critical hit by A on X for extra 6"},
		},
		&combat.ResultRecord{BattleResult: "Team Team_A wins!", FinalTurn: 1},
	}

	var buf bytes.Buffer
	Write(&buf, log)
	out := buf.String()

	for _, want := range []string{
		"--- Turn 1 ---",
		"A is affected by Poison (2)",
		"A performed attack on X causing 9 damage",
		"X performed idle on N/A causing 0 damage",
		"Event: [1a2b] Critical hit by A on X for extra 6",
		"Battle Result: Team Team_A wins! after 1 turns",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("replay output missing %q:\n%s", want, out)
		}
	}
}
