package combat

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"
)

type EventKind int

const (
	EventCriticalHit EventKind = iota
	EventMiss
	EventAbilityUsed
)

// Event is a deferred mutation queued during action resolution and applied
// once per turn at flush time, in FIFO order. The variant set is closed.
type Event struct {
	ID       string
	Kind     EventKind
	Attacker *Combatant
	Target   *Combatant
	Ability  *Ability
	Extra    int
}

// newID draws a uuid from the dedicated id stream, keeping runs with the
// same seed byte-identical.
func newID(ids *rand.Rand) string {
	id, err := uuid.NewRandomFromReader(ids)
	if err != nil {
		return uuid.Nil.String()
	}
	return id.String()
}

func newCriticalHit(ids *rand.Rand, attacker, target *Combatant, extra int) *Event {
	return &Event{ID: newID(ids), Kind: EventCriticalHit, Attacker: attacker, Target: target, Extra: extra}
}

func newMiss(ids *rand.Rand, attacker, target *Combatant) *Event {
	return &Event{ID: newID(ids), Kind: EventMiss, Attacker: attacker, Target: target}
}

func newAbilityUsed(ids *rand.Rand, user *Combatant, ability *Ability, target *Combatant) *Event {
	return &Event{ID: newID(ids), Kind: EventAbilityUsed, Attacker: user, Target: target, Ability: ability}
}

// apply performs the event's deferred effect. Exhaustive over the variants:
// critical hits land their extra damage here, misses do nothing, ability
// events grant the ability's status effect to the target.
func (e *Event) apply() {
	switch e.Kind {
	case EventCriticalHit:
		e.Target.TakeDamage(e.Extra)
	case EventMiss:
	case EventAbilityUsed:
		if e.Ability.Effect != nil && e.Target != nil {
			e.Target.AddStatusEffect(*e.Ability.Effect)
		}
	}
}

func (e *Event) String() string {
	var desc string
	switch e.Kind {
	case EventCriticalHit:
		desc = fmt.Sprintf("Critical hit by %s on %s for extra %d", e.Attacker.Name, e.Target.Name, e.Extra)
	case EventMiss:
		desc = fmt.Sprintf("%s's attack missed %s", e.Attacker.Name, e.Target.Name)
	case EventAbilityUsed:
		targetName := "None"
		if e.Target != nil {
			targetName = e.Target.Name
		}
		desc = fmt.Sprintf("%s used ability %s on %s", e.Attacker.Name, e.Ability.Name, targetName)
	}
	return fmt.Sprintf("[%s] %s", e.ID, desc)
}
