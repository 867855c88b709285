// Package plan 把"哪些王国用什么颜色画"整理成有序的 (名字, 颜色) 列表。
package plan

// 分组名，同时也是调色板配置里的 key。
const (
	GroupUs       = "us"
	GroupAllies   = "allies"
	GroupFriends  = "friends"
	GroupHostiles = "hostiles"
	GroupEnemies  = "enemies"
	GroupNeutrals = "neutrals"
)

// DefaultPalette 各分组的默认颜色。
var DefaultPalette = map[string]Color{
	GroupUs:       {R: 40, G: 46, B: 8},
	GroupAllies:   {R: 16, G: 82, B: 106},
	GroupFriends:  {R: 28, G: 153, B: 197},
	GroupHostiles: {R: 242, G: 147, B: 21},
	GroupEnemies:  {R: 160, G: 18, B: 16},
	GroupNeutrals: {R: 125, G: 127, B: 116},
}

// Groups 是配置里的王国分组。
type Groups struct {
	Us       string   `yaml:"us" mapstructure:"us"`
	Allies   []string `yaml:"allies" mapstructure:"allies"`
	Friends  []string `yaml:"friends" mapstructure:"friends"`
	Hostiles []string `yaml:"hostiles" mapstructure:"hostiles"`
	Enemies  []string `yaml:"enemies" mapstructure:"enemies"`
	Neutrals []string `yaml:"neutrals" mapstructure:"neutrals"`
}

// Entry 是一个待绘制的王国。
type Entry struct {
	Name  string `yaml:"name"`
	Color Color  `yaml:"color"`
	Group string `yaml:"group,omitempty"`
}

// FromGroups 按 us、allies、friends、hostiles、enemies、neutrals 的顺序展开；
// palette 中出现的分组覆盖默认颜色。us 为空时跳过。
func FromGroups(g Groups, palette map[string]Color) []Entry {
	colorOf := func(group string) Color {
		if c, ok := palette[group]; ok {
			return c
		}
		return DefaultPalette[group]
	}

	var out []Entry
	if g.Us != "" {
		out = append(out, Entry{Name: g.Us, Color: colorOf(GroupUs), Group: GroupUs})
	}
	for _, grp := range []struct {
		name    string
		members []string
	}{
		{GroupAllies, g.Allies},
		{GroupFriends, g.Friends},
		{GroupHostiles, g.Hostiles},
		{GroupEnemies, g.Enemies},
		{GroupNeutrals, g.Neutrals},
	} {
		c := colorOf(grp.name)
		for _, name := range grp.members {
			out = append(out, Entry{Name: name, Color: c, Group: grp.name})
		}
	}
	return out
}
