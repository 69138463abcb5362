package combat

import (
	"fmt"
	"math/rand"
	"sort"

	"arenasim/internal/util"
)

const maxTurns = 100

// Engine runs one battle between two squads to completion. It is the sole
// mutator of both squads for the duration of Run, and the only consumer of
// the caller's random source, so identical seeds replay identical battles.
type Engine struct {
	BattleID string

	teamA *Squad
	teamB *Squad
	rng   *rand.Rand
	ids   *rand.Rand
	queue []*Event
	log   []Record
	turn  int
	over  bool
}

func NewEngine(teamA, teamB *Squad, rng *rand.Rand) *Engine {
	ids := util.Derive(rng)
	return &Engine{
		BattleID: newID(ids),
		teamA:    teamA,
		teamB:    teamB,
		rng:      rng,
		ids:      ids,
	}
}

// Run drives the turn loop until one squad is defeated, both are, or the
// turn cap is hit, then appends the terminal result record.
func (e *Engine) Run() {
	for !e.over && e.turn < maxTurns {
		e.turn++
		turn := &TurnRecord{TurnNumber: e.turn, Actions: []ActionRecord{}}
		if lines := e.processStatusEffects(); len(lines) > 0 {
			turn.StatusEffects = lines
		}
		fighters := e.aliveFighters()
		if len(fighters) == 0 {
			// both squads wiped by status effects alone; the turn record
			// is dropped, only the result below is logged
			e.over = true
			break
		}
		sort.SliceStable(fighters, func(i, j int) bool {
			if fighters[i].Speed != fighters[j].Speed {
				return fighters[i].Speed > fighters[j].Speed
			}
			return fighters[i].Position < fighters[j].Position
		})
		for _, f := range fighters {
			if !f.IsAlive() {
				continue
			}
			f.TickAbilities()
			turn.Actions = append(turn.Actions, e.performAction(f))
			if e.teamA.Defeated() || e.teamB.Defeated() {
				e.over = true
				break
			}
		}
		e.log = append(e.log, turn)
		e.flushEvents(turn)
	}
	e.logResult()
}

func (e *Engine) aliveFighters() []*Combatant {
	return append(e.teamA.AliveMembers(), e.teamB.AliveMembers()...)
}

// processStatusEffects runs the status phase: squad A's alive members first,
// then squad B's, each in stored roster order.
func (e *Engine) processStatusEffects() []string {
	var lines []string
	for _, c := range e.aliveFighters() {
		lines = append(lines, c.ProcessStatusEffects()...)
	}
	return lines
}

// performAction resolves one fighter's action. The roll order is fixed: the
// 0.3 ability roll only happens when an ability is available, target choice
// only draws when living enemies exist, and the 0.1 miss roll precedes the
// 0.2 critical roll.
func (e *Engine) performAction(f *Combatant) ActionRecord {
	rec := ActionRecord{Actor: f.Name, Extra: []string{}}

	var available []*Ability
	for _, ab := range f.Abilities {
		if ab.Available() {
			available = append(available, ab)
		}
	}

	if len(available) > 0 && e.rng.Float64() < 0.3 {
		ab := available[e.rng.Intn(len(available))]
		target := e.chooseTarget(f)
		if target == nil {
			rec.Action = "idle"
			return rec
		}
		ab.Use()
		e.queue = append(e.queue, newAbilityUsed(e.ids, f, ab, target))
		damage := f.Attack + ab.Power - target.Defense
		if damage < 1 {
			damage = 1
		}
		target.TakeDamage(damage)
		name := target.Name
		rec.Action = "use ability " + ab.Name
		rec.Target = &name
		rec.Damage = damage
		rec.Extra = append(rec.Extra, "ability event logged")
		return rec
	}

	target := e.chooseTarget(f)
	if target == nil {
		rec.Action = "idle"
		return rec
	}
	name := target.Name
	if e.rng.Float64() < 0.1 {
		e.queue = append(e.queue, newMiss(e.ids, f, target))
		rec.Action = "attack (missed)"
		rec.Target = &name
		return rec
	}
	extra := 0
	if e.rng.Float64() < 0.2 {
		extra = f.Attack / 2
		e.queue = append(e.queue, newCriticalHit(e.ids, f, target, extra))
	}
	base := f.Attack - target.Defense
	if base < 1 {
		base = 1
	}
	// only the base lands now; the critical extra is deferred to the flush,
	// but the recorded damage anticipates it
	target.TakeDamage(base)
	rec.Action = "attack"
	rec.Target = &name
	rec.Damage = base + extra
	return rec
}

func (e *Engine) chooseTarget(f *Combatant) *Combatant {
	enemy := e.teamB
	if f.TeamID != e.teamA.TeamID {
		enemy = e.teamA
	}
	living := enemy.AliveMembers()
	if len(living) == 0 {
		return nil
	}
	return living[e.rng.Intn(len(living))]
}

// flushEvents drains the queue in FIFO order, applying each deferred effect
// and appending its description to the turn record.
func (e *Engine) flushEvents(turn *TurnRecord) {
	for len(e.queue) > 0 {
		ev := e.queue[0]
		e.queue = e.queue[1:]
		ev.apply()
		turn.Events = append(turn.Events, ev.String())
	}
}

func (e *Engine) logResult() {
	var result string
	switch {
	case e.teamA.Defeated() && e.teamB.Defeated():
		result = "Draw: Both teams defeated."
	case e.teamA.Defeated():
		result = fmt.Sprintf("Team %s wins!", e.teamB.TeamID)
	case e.teamB.Defeated():
		result = fmt.Sprintf("Team %s wins!", e.teamA.TeamID)
	default:
		result = "Turn limit reached. Possibly a draw."
	}
	e.over = true
	e.log = append(e.log, &ResultRecord{BattleResult: result, FinalTurn: e.turn})
}

// Log hands the finished confrontation log to the caller.
func (e *Engine) Log() []Record { return e.log }

func (e *Engine) FinalTurn() int { return e.turn }

func (e *Engine) Over() bool { return e.over }

// Result returns the terminal record's text, or "" before the run finished.
func (e *Engine) Result() string {
	if len(e.log) == 0 {
		return ""
	}
	if r, ok := e.log[len(e.log)-1].(*ResultRecord); ok {
		return r.BattleResult
	}
	return ""
}
