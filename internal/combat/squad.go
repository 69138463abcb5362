package combat

// Squad is an ordered roster plus its formation, the position list mirroring
// insertion order.
type Squad struct {
	TeamID    string
	Members   []*Combatant
	Formation []int
}

func NewSquad(teamID string) *Squad { return &Squad{TeamID: teamID} }

func (s *Squad) AddMember(c *Combatant) {
	s.Members = append(s.Members, c)
	s.Formation = append(s.Formation, c.Position)
}

func (s *Squad) AliveMembers() []*Combatant {
	var out []*Combatant
	for _, c := range s.Members {
		if c.IsAlive() {
			out = append(out, c)
		}
	}
	return out
}

func (s *Squad) Defeated() bool {
	for _, c := range s.Members {
		if c.IsAlive() {
			return false
		}
	}
	return true
}

// RearrangeFormation relabels member positions in roster order. An order of
// the wrong length is ignored.
func (s *Squad) RearrangeFormation(order []int) {
	if len(order) != len(s.Members) {
		return
	}
	for i, pos := range order {
		s.Members[i].Position = pos
	}
	s.Formation = append([]int(nil), order...)
}

// TeamInfo is the external-facing squad summary handed to the scorer: the
// final formation only, no stats.
type TeamInfo struct {
	Formation []int `json:"formation"`
}

func TeamInfos(squads ...*Squad) map[string]TeamInfo {
	out := make(map[string]TeamInfo, len(squads))
	for _, s := range squads {
		out[s.TeamID] = TeamInfo{Formation: append([]int(nil), s.Formation...)}
	}
	return out
}
