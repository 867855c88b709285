package snapshot

import (
	_ "embed"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schema.json
var schemaText string

const schemaURL = "snapshot.schema.json"

var compileSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	c := jsonschema.NewCompiler()
	c.Draft = jsonschema.Draft2020
	if err := c.AddResource(schemaURL, strings.NewReader(schemaText)); err != nil {
		return nil, err
	}
	return c.Compile(schemaURL)
})

// leafViolation 找到最深一层的校验失败，返回它的 JSON pointer 和描述。
func leafViolation(ve *jsonschema.ValidationError) (string, string) {
	leaf := ve
	for len(leaf.Causes) > 0 {
		leaf = leaf.Causes[0]
	}
	loc := leaf.InstanceLocation
	if loc == "" {
		loc = "/"
	}
	return loc, leaf.Message
}
