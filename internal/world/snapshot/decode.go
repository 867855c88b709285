package snapshot

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Decode 把上游原始文本解析为 MapData。
//
// 两步：先按内嵌 JSON Schema 校验形状（缺字段、类型不符都在这里报出并带上字段路径），
// 再做强类型解码完成数字/字符串到整数的归一。任何一步失败都整体失败，不返回部分结果。
func Decode(raw []byte) (*MapData, error) {
	doc, err := parseDocument(raw)
	if err != nil {
		return nil, decodeError("", "invalid json", err)
	}

	schema, err := compileSchema()
	if err != nil {
		return nil, decodeError("", "schema compile failed", err)
	}
	if err := schema.Validate(doc); err != nil {
		var ve *jsonschema.ValidationError
		if errors.As(err, &ve) {
			field, msg := leafViolation(ve)
			return nil, decodeError(field, msg, err)
		}
		return nil, decodeError("", "", err)
	}

	var resp Response
	if err := json.Unmarshal(raw, &resp); err != nil {
		var te *json.UnmarshalTypeError
		if errors.As(err, &te) {
			return nil, decodeError(fieldPath(te.Field), "type mismatch: "+te.Value, err)
		}
		return nil, decodeError("", "", err)
	}
	return &resp.Response, nil
}

func parseDocument(raw []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected trailing data after snapshot document")
	}
	return doc, nil
}

// fieldPath 把 encoding/json 的 "response.players.villages.x" 转成与 Schema 报错一致的 "/" 分隔形式。
// encoding/json 不记录数组下标，路径里没有序号。
func fieldPath(field string) string {
	if field == "" {
		return ""
	}
	return "/" + strings.ReplaceAll(field, ".", "/")
}
