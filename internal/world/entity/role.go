package entity

import (
	"fmt"
	"strconv"
)

// Role 玩家在王国中的职位。
type Role uint8

const (
	RoleGovernor Role = iota + 1
	RoleKing
	RoleDuke
	RoleViceking
)

// ParseRole 按上游 role 编码解析：0 总督、1 国王、2 公爵、3 副王。
func ParseRole(code int) (Role, error) {
	switch code {
	case 0:
		return RoleGovernor, nil
	case 1:
		return RoleKing, nil
	case 2:
		return RoleDuke, nil
	case 3:
		return RoleViceking, nil
	}
	return 0, ErrUnknownCode.
		WithMsgf("unknown role code %d", code).
		WithData("field", "role").
		WithData("code", strconv.Itoa(code))
}

func (r Role) String() string {
	switch r {
	case RoleGovernor:
		return "governor"
	case RoleKing:
		return "king"
	case RoleDuke:
		return "duke"
	case RoleViceking:
		return "viceking"
	}
	return fmt.Sprintf("role(%d)", uint8(r))
}
