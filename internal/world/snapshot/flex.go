package snapshot

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strconv"
)

var (
	intType  = reflect.TypeOf(0)
	codeType = reflect.TypeOf("")
)

// typeError 交给 encoding/json 补全字段路径。
func typeError(kind string, b []byte, t reflect.Type) error {
	return &json.UnmarshalTypeError{Value: kind + " " + string(b), Type: t}
}

func literalKind(b []byte) string {
	switch {
	case len(b) == 0:
		return "empty"
	case b[0] == '"':
		return "string"
	case b[0] == '-' || (b[0] >= '0' && b[0] <= '9'):
		return "number"
	case b[0] == 'n':
		return "null"
	case b[0] == 't' || b[0] == 'f':
		return "bool"
	case b[0] == '{':
		return "object"
	case b[0] == '[':
		return "array"
	}
	return "value"
}

// FlexInt 兼容上游两种编码：JSON 数字 12 / -12，或数字字符串 "12" / "-12"。
// 其他类型（null、bool、对象、数组）以及带小数/指数的数字都视为格式错误。
type FlexInt int

func (n *FlexInt) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	var text string
	switch kind := literalKind(b); kind {
	case "string":
		if err := json.Unmarshal(b, &text); err != nil {
			return typeError(kind, b, intType)
		}
	case "number":
		text = string(b)
	default:
		return typeError(kind, b, intType)
	}
	v, err := strconv.ParseInt(text, 10, strconv.IntSize)
	if err != nil {
		return typeError(literalKind(b), b, intType)
	}
	*n = FlexInt(v)
	return nil
}

func (n FlexInt) Int() int {
	return int(n)
}

// FlexCode 是编码类字段（tribeId、resType、oasis），上游有时给 "1" 有时给 1，统一成十进制字符串。
type FlexCode string

func (c *FlexCode) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch kind := literalKind(b); kind {
	case "string":
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return typeError(kind, b, codeType)
		}
		*c = FlexCode(s)
		return nil
	case "number":
		v, err := strconv.ParseInt(string(b), 10, 64)
		if err != nil {
			return typeError(kind, b, codeType)
		}
		*c = FlexCode(strconv.FormatInt(v, 10))
		return nil
	default:
		return typeError(kind, b, codeType)
	}
}

func (c FlexCode) String() string {
	return string(c)
}
