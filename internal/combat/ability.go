package combat

// Ability is an actionable move with a per-combatant cooldown. Effect, when
// set, is a template granted to the target via the deferred AbilityUsed event.
type Ability struct {
	Name            string
	Power           int // negative for heal-type moves
	Cooldown        int
	CurrentCooldown int
	Effect          *StatusEffect
}

func (a *Ability) Available() bool { return a.CurrentCooldown == 0 }

// Use starts the cooldown. Callers are expected to check Available first.
func (a *Ability) Use() { a.CurrentCooldown = a.Cooldown }

func (a *Ability) TickCooldown() {
	if a.CurrentCooldown > 0 {
		a.CurrentCooldown--
	}
}
