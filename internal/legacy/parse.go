package legacy

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/tidwall/gjson"
)

// RootKey is the only top-level key of a legacy export.
const RootKey = "lexemes"

// Document is a parsed legacy export.
type Document struct {
	Lexemes []*Object
}

// Load reads and parses the legacy export at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read legacy export %s: %w", path, err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse legacy export %s: %w", path, err)
	}
	return doc, nil
}

// Parse builds a Document from the raw export. The root must be an object
// with exactly one key, RootKey, holding an array of lexeme objects.
func Parse(data []byte) (*Document, error) {
	if err := checkEncoding(data); err != nil {
		return nil, err
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, &FieldError{Path: "$", Want: "object", Got: resultTypeName(root)}
	}

	obj := fromResult(root, "$").(*Object)
	if obj.Len() != 1 {
		return nil, fmt.Errorf("%w: expected root to be an object with one key, got %d keys", ErrShape, obj.Len())
	}
	lexemes, err := obj.GetObjects(RootKey)
	if err != nil {
		return nil, err
	}
	return &Document{Lexemes: lexemes}, nil
}

// ParseObject builds a single Object from raw JSON, located at path.
func ParseObject(data []byte, path string) (*Object, error) {
	if err := checkEncoding(data); err != nil {
		return nil, err
	}
	r := gjson.ParseBytes(data)
	if !r.IsObject() {
		return nil, &FieldError{Path: path, Want: "object", Got: resultTypeName(r)}
	}
	return fromResult(r, path).(*Object), nil
}

// checkEncoding rejects malformed JSON and invalid UTF-8. gjson accepts
// stray bytes inside strings and they would be re-encoded as U+FFFD.
func checkEncoding(data []byte) error {
	if !gjson.ValidBytes(data) {
		return fmt.Errorf("%w: input is not valid JSON", ErrShape)
	}
	if !utf8.Valid(data) {
		return fmt.Errorf("%w: input is not valid UTF-8", ErrShape)
	}
	return nil
}

func fromResult(r gjson.Result, path string) any {
	switch r.Type {
	case gjson.Null:
		return nil
	case gjson.False:
		return false
	case gjson.True:
		return true
	case gjson.Number:
		return json.Number(strings.TrimSpace(r.Raw))
	case gjson.String:
		return r.Str
	}

	if r.IsArray() {
		items := []any{}
		i := 0
		r.ForEach(func(_, v gjson.Result) bool {
			items = append(items, fromResult(v, path+"["+strconv.Itoa(i)+"]"))
			i++
			return true
		})
		return items
	}

	obj := NewObject(path)
	r.ForEach(func(k, v gjson.Result) bool {
		obj.Set(k.Str, fromResult(v, path+"."+k.Str))
		return true
	})
	return obj
}

func resultTypeName(r gjson.Result) string {
	switch {
	case r.IsObject():
		return "object"
	case r.IsArray():
		return "array"
	case r.Type == gjson.String:
		return "string"
	case r.Type == gjson.Number:
		return "number"
	case r.Type == gjson.True, r.Type == gjson.False:
		return "boolean"
	}
	return "null"
}
