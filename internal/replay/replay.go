// Package replay renders a finished confrontation log for the console.
package replay

import (
	"fmt"
	"io"

	"arenasim/internal/combat"
)

func Write(w io.Writer, log []combat.Record) {
	for _, rec := range log {
		switch r := rec.(type) {
		case *combat.TurnRecord:
			fmt.Fprintf(w, "--- Turn %d ---\n", r.TurnNumber)
			for _, line := range r.StatusEffects {
				fmt.Fprintln(w, line)
			}
			for _, a := range r.Actions {
				target := "N/A"
				if a.Target != nil {
					target = *a.Target
				}
				fmt.Fprintf(w, "%s performed %s on %s causing %d damage\n", a.Actor, a.Action, target, a.Damage)
			}
			for _, ev := range r.Events {
				fmt.Fprintf(w, "Event: %s\n", ev)
			}
		case *combat.ResultRecord:
			fmt.Fprintf(w, "Battle Result: %s after %d turns\n", r.BattleResult, r.FinalTurn)
		}
		fmt.Fprintln(w)
	}
}
