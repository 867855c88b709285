package entity

import "cmp"

// Named 是"有显示名"的能力，王国/玩家/村庄都实现它。
type Named interface {
	DisplayName() string
}

// FindByName 在一张实体表里按显示名线性查找。
// 同名时返回 id 最小的那个；找不到返回 (零值, false)，由调用方决定如何处理。
func FindByName[K cmp.Ordered, T Named](table map[K]T, name string) (K, bool) {
	for _, id := range sortedKeys(table) {
		if table[id].DisplayName() == name {
			return id, true
		}
	}
	var zero K
	return zero, false
}

// NameIndex 是一次性构建的 名字→id 索引，实体多、查询频繁时替代 FindByName。
type NameIndex[K cmp.Ordered] struct {
	ids map[string]K
}

func NewNameIndex[K cmp.Ordered, T Named](table map[K]T) *NameIndex[K] {
	idx := &NameIndex[K]{ids: make(map[string]K, len(table))}
	for _, id := range sortedKeys(table) {
		name := table[id].DisplayName()
		if _, dup := idx.ids[name]; dup {
			continue
		}
		idx.ids[name] = id
	}
	return idx
}

func (idx *NameIndex[K]) Lookup(name string) (K, bool) {
	id, ok := idx.ids[name]
	return id, ok
}

func (idx *NameIndex[K]) Len() int {
	return len(idx.ids)
}
