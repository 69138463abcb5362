// Package score derives per-team point totals from a finished battle log.
// Every rule is an independent, stateless predicate over the recorded text;
// nothing here feeds back into the simulation.
package score

// Entry is one parsed battle log record. Turn records carry TurnNumber and
// Actions; the terminal record carries BattleResult and FinalTurn.
type Entry struct {
	TurnNumber    int      `json:"turn_number"`
	Actions       []Action `json:"actions"`
	StatusEffects []string `json:"status_effects"`
	Events        []string `json:"events"`
	BattleResult  string   `json:"battle_result"`
	FinalTurn     int      `json:"final_turn"`
}

type Action struct {
	Actor  string   `json:"actor"`
	Action string   `json:"action"`
	Target string   `json:"target"`
	Damage int      `json:"damage"`
	Extra  []string `json:"extra"`
}

type TeamInfo struct {
	Formation []int `json:"formation"`
}

// Library maps rule ids to their point values.
type Library struct {
	points map[string]int
}

func NewLibrary() *Library {
	return &Library{points: map[string]int{
		"POSITION_BONUS":              5,
		"FAST_ATTACK_BONUS":           3,
		"CRITICAL_HIT_BONUS":          2,
		"ABILITY_USAGE_BONUS":         4,
		"ITEM_USAGE_BONUS":            3,
		"FIRST_STRIKE_BONUS":          2,
		"LAST_STAND_BONUS":            3,
		"HEALING_EFFICIENCY_BONUS":    4,
		"DEFENSE_SURVIVAL_BONUS":      2,
		"TEAMWORK_BONUS":              5,
		"MULTI_HIT_BONUS":             3,
		"DODGE_BONUS":                 2,
		"COUNTER_ATTACK_BONUS":        3,
		"FLEXIBLE_POSITION_BONUS":     2,
		"CRITICAL_DEFENSE_BONUS":      2,
		"SPEED_ADVANTAGE_BONUS":       3,
		"LUCKY_HIT_BONUS":             1,
		"POWER_SURGE_BONUS":           4,
		"ELEMENTAL_ADVANTAGE_BONUS":   3,
		"SKILL_COMBO_BONUS":           4,
		"PENETRATION_BONUS":           2,
		"ARMOR_BREAK_BONUS":           2,
		"SURPRISE_ATTACK_BONUS":       3,
		"EVADE_BONUS":                 2,
		"COUNTER_MOVE_BONUS":          2,
		"FLOOR_ADVANTAGE_BONUS":       1,
		"AMBIENT_EFFECT_BONUS":        1,
		"POSITIONING_ADVANTAGE_BONUS": 3,
		"MORALE_BOOST_BONUS":          2,
		"TACTICAL_RETREAT_BONUS":      2,
		"RESOURCE_MANAGEMENT_BONUS":   3,
		"TIME_CRITICAL_BONUS":         2,
		"STRATEGIC_OVERTAKE_BONUS":    4,
		"ULTIMATE_MOVE_BONUS":         5,
		"ADAPTIVE_STRATEGY_BONUS":     3,
	}}
}

func (l *Library) Points(id string) int { return l.points[id] }

// Engine applies the rule table to a log plus team info. Actor-to-team
// membership is resolved from the first squad's roster names, supplied at
// construction since the interchange artifacts carry no roster data.
type Engine struct {
	lib     *Library
	teamA   string
	teamB   string
	rosterA map[string]bool
}

func NewEngine(lib *Library, teamA, teamB string, rosterA []string) *Engine {
	members := make(map[string]bool, len(rosterA))
	for _, name := range rosterA {
		members[name] = true
	}
	return &Engine{lib: lib, teamA: teamA, teamB: teamB, rosterA: members}
}

func (e *Engine) memberA(actor string) bool { return e.rosterA[actor] }

// Score runs every rule and returns the per-team totals.
func (e *Engine) Score(log []Entry, teams map[string]TeamInfo) map[string]int {
	totals := map[string]int{e.teamA: 0, e.teamB: 0}
	for _, r := range rules {
		a, b := r.fn(e, e.lib.Points(r.id), log, teams)
		totals[e.teamA] += a
		totals[e.teamB] += b
	}
	return totals
}
