package plan

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// File 是独立的绘制计划文件：
//
//	entries:
//	  - name: ALPHA
//	    color: "#282e08"
//
// 也可以只写 groups/palette，由 FromGroups 展开。entries 与 groups 同时出现时 entries 在前。
type File struct {
	Entries []Entry          `yaml:"entries"`
	Groups  Groups           `yaml:"groups"`
	Palette map[string]Color `yaml:"palette"`
}

func LoadFile(path string) ([]Entry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(raw)
}

func Parse(raw []byte) ([]Entry, error) {
	var f File
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse plan file: %w", err)
	}
	out := append([]Entry(nil), f.Entries...)
	out = append(out, FromGroups(f.Groups, f.Palette)...)
	for i, e := range out {
		if e.Name == "" {
			return nil, fmt.Errorf("parse plan file: entry %d has empty name", i)
		}
	}
	return out, nil
}
