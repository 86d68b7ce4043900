// Package legacy models the exported legacy dictionary document as an
// order-preserving tree whose fields are consumed as they are mapped.
// Whatever is left in the tree after conversion is the leftover audit trail.
package legacy

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strconv"
)

// ErrShape reports a document that does not have the expected structure.
var ErrShape = errors.New("unexpected legacy document shape")

// FieldError describes a missing field or a field of the wrong JSON type.
type FieldError struct {
	Path  string
	Field string
	Want  string
	Got   string
}

func (e *FieldError) Error() string {
	loc := e.Path
	if e.Field != "" {
		loc = e.Path + "." + e.Field
	}
	return fmt.Sprintf("legacy: %s: want %s, got %s", loc, e.Want, e.Got)
}

func (e *FieldError) Unwrap() error { return ErrShape }

// Object is a JSON object that remembers key order.
// Values are nil, bool, json.Number, string, []any or *Object.
type Object struct {
	path string
	keys []string
	vals map[string]any
}

// NewObject creates an empty Object located at path.
func NewObject(path string) *Object {
	return &Object{path: path, vals: make(map[string]any)}
}

// Path returns the location of the object in the source document.
func (o *Object) Path() string { return o.path }

// Keys returns the remaining keys in source order.
func (o *Object) Keys() []string { return slices.Clone(o.keys) }

// Len returns the number of remaining keys.
func (o *Object) Len() int { return len(o.keys) }

// Get returns the value for key without consuming it.
func (o *Object) Get(key string) (any, bool) {
	v, ok := o.vals[key]
	return v, ok
}

// Set stores v under key. A new key is appended; an existing key keeps its position.
func (o *Object) Set(key string, v any) {
	if _, ok := o.vals[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.vals[key] = v
}

// Delete removes key if present.
func (o *Object) Delete(key string) {
	if _, ok := o.vals[key]; !ok {
		return
	}
	delete(o.vals, key)
	o.keys = slices.DeleteFunc(o.keys, func(k string) bool { return k == key })
}

// Pop removes key and returns its value. A missing key is a shape error.
func (o *Object) Pop(key string) (any, error) {
	v, ok := o.vals[key]
	if !ok {
		return nil, o.missing(key)
	}
	o.Delete(key)
	return v, nil
}

// PopString consumes a string field. JSON null reads as "".
func (o *Object) PopString(key string) (string, error) {
	v, err := o.Pop(key)
	if err != nil {
		return "", err
	}
	return o.asString(key, v)
}

// GetString reads a string field without consuming it. JSON null reads as "".
func (o *Object) GetString(key string) (string, error) {
	v, ok := o.vals[key]
	if !ok {
		return "", o.missing(key)
	}
	return o.asString(key, v)
}

// PopText consumes a scalar field of any type and renders it as text.
func (o *Object) PopText(key string) (string, error) {
	v, err := o.Pop(key)
	if err != nil {
		return "", err
	}
	return Text(v), nil
}

// PopTruthy consumes a field and reports whether its value is truthy.
func (o *Object) PopTruthy(key string) (bool, error) {
	v, err := o.Pop(key)
	if err != nil {
		return false, err
	}
	return Truthy(v), nil
}

// PopArray consumes an array field. JSON null reads as an empty array.
func (o *Object) PopArray(key string) ([]any, error) {
	v, err := o.Pop(key)
	if err != nil {
		return nil, err
	}
	return o.asArray(key, v)
}

// GetArray reads an array field without consuming it.
func (o *Object) GetArray(key string) ([]any, error) {
	v, ok := o.vals[key]
	if !ok {
		return nil, o.missing(key)
	}
	return o.asArray(key, v)
}

// GetObjects reads an array-of-objects field without consuming it.
func (o *Object) GetObjects(key string) ([]*Object, error) {
	items, err := o.GetArray(key)
	if err != nil {
		return nil, err
	}
	return o.objects(key, items)
}

// PopObjects consumes an array-of-objects field.
func (o *Object) PopObjects(key string) ([]*Object, error) {
	items, err := o.PopArray(key)
	if err != nil {
		return nil, err
	}
	return o.objects(key, items)
}

func (o *Object) objects(key string, items []any) ([]*Object, error) {
	out := make([]*Object, 0, len(items))
	for i, item := range items {
		obj, ok := item.(*Object)
		if !ok {
			return nil, &FieldError{Path: o.path, Field: key + "[" + strconv.Itoa(i) + "]", Want: "object", Got: TypeName(item)}
		}
		out = append(out, obj)
	}
	return out, nil
}

func (o *Object) asString(key string, v any) (string, error) {
	switch s := v.(type) {
	case nil:
		return "", nil
	case string:
		return s, nil
	}
	return "", &FieldError{Path: o.path, Field: key, Want: "string", Got: TypeName(v)}
}

func (o *Object) asArray(key string, v any) ([]any, error) {
	switch a := v.(type) {
	case nil:
		return nil, nil
	case []any:
		return a, nil
	}
	return nil, &FieldError{Path: o.path, Field: key, Want: "array", Got: TypeName(v)}
}

func (o *Object) missing(key string) error {
	return &FieldError{Path: o.path, Field: key, Want: "field", Got: "nothing"}
}

// Truthy follows the legacy exporter's notion of a set value: false, null,
// zero, "" and empty containers are unset.
func Truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case json.Number:
		f, err := x.Float64()
		return err != nil || f != 0
	case string:
		return x != ""
	case []any:
		return len(x) > 0
	case *Object:
		return x.Len() > 0
	}
	return true
}

// Text renders a value as plain text. Containers are rendered as compact JSON.
func Text(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case bool:
		return strconv.FormatBool(x)
	case json.Number:
		return x.String()
	case string:
		return x
	}
	b, err := marshalJSON(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(b)
}

// TypeName names the JSON type of v for diagnostics.
func TypeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case json.Number:
		return "number"
	case string:
		return "string"
	case []any:
		return "array"
	case *Object:
		return "object"
	}
	return fmt.Sprintf("%T", v)
}
