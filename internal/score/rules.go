package score

import "strings"

type ruleFunc func(e *Engine, pts int, log []Entry, teams map[string]TeamInfo) (int, int)

// rules is the closed strategy table; every entry is evaluated exactly once
// per Score call. Several rules intentionally mirror each other (the original
// library priced the same pattern under more than one name).
var rules = []struct {
	id string
	fn ruleFunc
}{
	{"POSITION_BONUS", positionBonus},
	{"FAST_ATTACK_BONUS", firstActorBonus},
	{"CRITICAL_HIT_BONUS", criticalHitBonus},
	{"ABILITY_USAGE_BONUS", actionContains("use ability")},
	{"ITEM_USAGE_BONUS", actionContains("use item")},
	{"FIRST_STRIKE_BONUS", firstActorBonus},
	{"LAST_STAND_BONUS", lastStandBonus},
	{"HEALING_EFFICIENCY_BONUS", actionContains("Heal")},
	{"DEFENSE_SURVIVAL_BONUS", flatBonus},
	{"TEAMWORK_BONUS", flatBonus},
	{"MULTI_HIT_BONUS", multiHitBonus},
	{"DODGE_BONUS", actionContains("missed")},
	{"COUNTER_ATTACK_BONUS", noBonus},
	{"FLEXIBLE_POSITION_BONUS", unsortedFormationBonus},
	{"CRITICAL_DEFENSE_BONUS", criticalHitBonus},
	{"SPEED_ADVANTAGE_BONUS", lowerFormationSumBonus},
	{"LUCKY_HIT_BONUS", attackDamageBonus(func(d int) bool { return d == 1 })},
	{"POWER_SURGE_BONUS", attackDamageBonus(func(d int) bool { return d >= 15 })},
	{"ELEMENTAL_ADVANTAGE_BONUS", actionContains("Fireball")},
	{"SKILL_COMBO_BONUS", skillComboBonus},
	{"PENETRATION_BONUS", attackDamageBonus(func(d int) bool { return d >= 10 })},
	{"ARMOR_BREAK_BONUS", attackDamageBonus(func(d int) bool { return d >= 20 })},
	{"SURPRISE_ATTACK_BONUS", surpriseAttackBonus},
	{"EVADE_BONUS", actionContains("missed")},
	{"COUNTER_MOVE_BONUS", noBonus},
	{"FLOOR_ADVANTAGE_BONUS", lowerFormationSumBonus},
	{"AMBIENT_EFFECT_BONUS", actionIs("idle")},
	{"POSITIONING_ADVANTAGE_BONUS", positionBonus},
	{"MORALE_BOOST_BONUS", moraleBoostBonus},
	{"TACTICAL_RETREAT_BONUS", flatBonus},
	{"RESOURCE_MANAGEMENT_BONUS", flatBonus},
	{"TIME_CRITICAL_BONUS", timeCriticalBonus},
	{"STRATEGIC_OVERTAKE_BONUS", strategicOvertakeBonus},
	{"ULTIMATE_MOVE_BONUS", actionContains("Ultimate")},
	{"ADAPTIVE_STRATEGY_BONUS", unsortedFormationBonus},
}

func sortedAsc(xs []int) bool {
	for i := 1; i < len(xs); i++ {
		if xs[i] < xs[i-1] {
			return false
		}
	}
	return true
}

func sum(xs []int) int {
	total := 0
	for _, x := range xs {
		total += x
	}
	return total
}

func terminal(log []Entry) *Entry {
	if len(log) == 0 {
		return nil
	}
	last := &log[len(log)-1]
	if last.BattleResult == "" {
		return nil
	}
	return last
}

// critActor extracts the attacker name from a critical hit event line.
func critActor(ev string) string {
	const marker = "Critical hit by "
	i := strings.Index(ev, marker)
	if i < 0 {
		return ""
	}
	rest := ev[i+len(marker):]
	if j := strings.Index(rest, " on "); j >= 0 {
		return rest[:j]
	}
	return ""
}

func noBonus(*Engine, int, []Entry, map[string]TeamInfo) (int, int) { return 0, 0 }

func flatBonus(e *Engine, pts int, log []Entry, teams map[string]TeamInfo) (int, int) {
	return pts, pts
}

func positionBonus(e *Engine, pts int, log []Entry, teams map[string]TeamInfo) (int, int) {
	a, b := 0, 0
	if sortedAsc(teams[e.teamA].Formation) {
		a = pts
	}
	if sortedAsc(teams[e.teamB].Formation) {
		b = pts
	}
	return a, b
}

func unsortedFormationBonus(e *Engine, pts int, log []Entry, teams map[string]TeamInfo) (int, int) {
	a, b := 0, 0
	if !sortedAsc(teams[e.teamA].Formation) {
		a = pts
	}
	if !sortedAsc(teams[e.teamB].Formation) {
		b = pts
	}
	return a, b
}

func lowerFormationSumBonus(e *Engine, pts int, log []Entry, teams map[string]TeamInfo) (int, int) {
	sumA := sum(teams[e.teamA].Formation)
	sumB := sum(teams[e.teamB].Formation)
	a, b := 0, 0
	if sumA < sumB {
		a = pts
	}
	if sumB < sumA {
		b = pts
	}
	return a, b
}

func lastStandBonus(e *Engine, pts int, log []Entry, teams map[string]TeamInfo) (int, int) {
	a, b := 0, 0
	if len(teams[e.teamA].Formation) == 1 {
		a = pts
	}
	if len(teams[e.teamB].Formation) == 1 {
		b = pts
	}
	return a, b
}

func firstActorBonus(e *Engine, pts int, log []Entry, teams map[string]TeamInfo) (int, int) {
	if len(log) == 0 || len(log[0].Actions) == 0 {
		return 0, 0
	}
	if e.memberA(log[0].Actions[0].Actor) {
		return pts, 0
	}
	return 0, pts
}

func criticalHitBonus(e *Engine, pts int, log []Entry, teams map[string]TeamInfo) (int, int) {
	a, b := 0, 0
	for _, turn := range log {
		for _, ev := range turn.Events {
			actor := critActor(ev)
			if actor == "" {
				continue
			}
			if e.memberA(actor) {
				a += pts
			} else {
				b += pts
			}
		}
	}
	return a, b
}

func actionContains(substr string) ruleFunc {
	return func(e *Engine, pts int, log []Entry, teams map[string]TeamInfo) (int, int) {
		a, b := 0, 0
		for _, turn := range log {
			for _, act := range turn.Actions {
				if !strings.Contains(act.Action, substr) {
					continue
				}
				if e.memberA(act.Actor) {
					a += pts
				} else {
					b += pts
				}
			}
		}
		return a, b
	}
}

func actionIs(action string) ruleFunc {
	return func(e *Engine, pts int, log []Entry, teams map[string]TeamInfo) (int, int) {
		a, b := 0, 0
		for _, turn := range log {
			for _, act := range turn.Actions {
				if act.Action != action {
					continue
				}
				if e.memberA(act.Actor) {
					a += pts
				} else {
					b += pts
				}
			}
		}
		return a, b
	}
}

func attackDamageBonus(match func(int) bool) ruleFunc {
	return func(e *Engine, pts int, log []Entry, teams map[string]TeamInfo) (int, int) {
		a, b := 0, 0
		for _, turn := range log {
			for _, act := range turn.Actions {
				if !strings.Contains(act.Action, "attack") || !match(act.Damage) {
					continue
				}
				if e.memberA(act.Actor) {
					a += pts
				} else {
					b += pts
				}
			}
		}
		return a, b
	}
}

func multiHitBonus(e *Engine, pts int, log []Entry, teams map[string]TeamInfo) (int, int) {
	a, b := 0, 0
	for _, turn := range log {
		counts := map[string]int{}
		for _, act := range turn.Actions {
			counts[act.Actor]++
		}
		for actor, n := range counts {
			if n <= 1 {
				continue
			}
			if e.memberA(actor) {
				a += pts
			} else {
				b += pts
			}
		}
	}
	return a, b
}

func skillComboBonus(e *Engine, pts int, log []Entry, teams map[string]TeamInfo) (int, int) {
	a, b := 0, 0
	lastTurn := map[string]int{}
	for _, turn := range log {
		for _, act := range turn.Actions {
			if prev, ok := lastTurn[act.Actor]; ok && turn.TurnNumber-prev == 1 {
				if e.memberA(act.Actor) {
					a += pts
				} else {
					b += pts
				}
			}
			lastTurn[act.Actor] = turn.TurnNumber
		}
	}
	return a, b
}

func surpriseAttackBonus(e *Engine, pts int, log []Entry, teams map[string]TeamInfo) (int, int) {
	a, b := 0, 0
	lastActor := ""
	for _, turn := range log {
		if len(turn.Actions) == 0 {
			continue
		}
		first := turn.Actions[0].Actor
		if lastActor != "" && first != lastActor {
			if e.memberA(first) {
				a += pts
			} else {
				b += pts
			}
		}
		lastActor = turn.Actions[len(turn.Actions)-1].Actor
	}
	return a, b
}

func moraleBoostBonus(e *Engine, pts int, log []Entry, teams map[string]TeamInfo) (int, int) {
	diff := sum(teams[e.teamA].Formation) - sum(teams[e.teamB].Formation)
	if diff < 0 {
		diff = -diff
	}
	return pts * diff, pts * diff
}

func timeCriticalBonus(e *Engine, pts int, log []Entry, teams map[string]TeamInfo) (int, int) {
	if t := terminal(log); t != nil && t.FinalTurn < 10 {
		return pts, pts
	}
	return 0, 0
}

func strategicOvertakeBonus(e *Engine, pts int, log []Entry, teams map[string]TeamInfo) (int, int) {
	t := terminal(log)
	if t == nil {
		return 0, 0
	}
	if strings.Contains(t.BattleResult, e.teamA) {
		return pts, 0
	}
	if strings.Contains(t.BattleResult, e.teamB) {
		return 0, pts
	}
	return 0, 0
}
