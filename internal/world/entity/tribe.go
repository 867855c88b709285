package entity

import "fmt"

// Tribe 玩家部族。
type Tribe uint8

const (
	TribeRoman Tribe = iota + 1
	TribeTeuton
	TribeGaul
)

// ParseTribe 按上游 tribeId 编码解析："1" 罗马、"2" 条顿、"3" 高卢。
func ParseTribe(code string) (Tribe, error) {
	switch code {
	case "1":
		return TribeRoman, nil
	case "2":
		return TribeTeuton, nil
	case "3":
		return TribeGaul, nil
	}
	return 0, ErrUnknownCode.
		WithMsgf("unknown tribe code %s", code).
		WithData("field", "tribeId").
		WithData("code", code)
}

func (t Tribe) String() string {
	switch t {
	case TribeRoman:
		return "roman"
	case TribeTeuton:
		return "teuton"
	case TribeGaul:
		return "gaul"
	}
	return fmt.Sprintf("tribe(%d)", uint8(t))
}
