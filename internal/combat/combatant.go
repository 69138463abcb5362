package combat

import "fmt"

type Combatant struct {
	Name     string
	MaxHP    int
	HP       int
	Attack   int
	Defense  int
	Speed    int
	TeamID   string
	Position int
	Alive    bool

	Abilities     []*Ability
	Inventory     []*Item
	StatusEffects []StatusEffect
}

func NewCombatant(name string, hp, attack, defense, speed int, teamID string, position int) *Combatant {
	return &Combatant{
		Name:     name,
		MaxHP:    hp,
		HP:       hp,
		Attack:   attack,
		Defense:  defense,
		Speed:    speed,
		TeamID:   teamID,
		Position: position,
		Alive:    true,
	}
}

func (c *Combatant) IsAlive() bool { return c.Alive }

func (c *Combatant) TakeDamage(amount int) {
	c.HP -= amount
	if c.HP <= 0 {
		c.HP = 0
		c.Alive = false
	}
}

// Heal restores HP up to MaxHP and marks the combatant alive whenever the
// result is above zero. Normal targeting never picks dead combatants, so a
// direct Heal on a downed combatant revives it; that behavior is kept.
func (c *Combatant) Heal(amount int) {
	c.HP += amount
	if c.HP > c.MaxHP {
		c.HP = c.MaxHP
	}
	if c.HP > 0 {
		c.Alive = true
	}
}

func (c *Combatant) AddStatusEffect(effect StatusEffect) {
	c.StatusEffects = append(c.StatusEffects, effect)
}

// ProcessStatusEffects applies every held effect once, in insertion order,
// ticks them, and drops the expired ones. Returns one line per effect.
func (c *Combatant) ProcessStatusEffects() []string {
	var logs []string
	for i := range c.StatusEffects {
		ef := &c.StatusEffects[i]
		ef.Apply(c)
		logs = append(logs, fmt.Sprintf("%s is affected by %s (%d)", c.Name, ef.Name, ef.Value))
		ef.Tick()
	}
	kept := c.StatusEffects[:0]
	for _, ef := range c.StatusEffects {
		if !ef.Expired() {
			kept = append(kept, ef)
		}
	}
	c.StatusEffects = kept
	return logs
}

func (c *Combatant) TickAbilities() {
	for _, ab := range c.Abilities {
		ab.TickCooldown()
	}
}
