package config

type SquadsConfig struct {
	Squads []SquadDef `yaml:"squads"`
}

type SquadDef struct {
	ID        string      `yaml:"id"`
	Members   []MemberDef `yaml:"members"`
	Rearrange []int       `yaml:"rearrange"` // optional final position relabeling
	Note      string      `yaml:"note"`
}

type MemberDef struct {
	Name      string   `yaml:"name"`
	MaxHP     int      `yaml:"hp"`
	Attack    int      `yaml:"attack"`
	Defense   int      `yaml:"defense"`
	Speed     int      `yaml:"speed"`
	Position  int      `yaml:"position"`
	Abilities []string `yaml:"abilities"`
	Items     []string `yaml:"items"`
	Note      string   `yaml:"note"`
}
