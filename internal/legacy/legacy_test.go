package legacy

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const sampleExport = `{
  "lexemes": [
    {
      "name": "alei",
      "id": "alei",
      "status": "done",
      "rank": 3,
      "explicitSfGloss": false,
      "note": null,
      "subentries": [{"phoneticForm": "a'lei", "partsOfSpeech": []}]
    }
  ]
}`

func TestParse_PreservesKeyOrder(t *testing.T) {
	t.Parallel()

	doc, err := Parse([]byte(sampleExport))
	require.NoError(t, err)
	require.Len(t, doc.Lexemes, 1)

	lex := doc.Lexemes[0]
	assert.Equal(t, []string{"name", "id", "status", "rank", "explicitSfGloss", "note", "subentries"}, lex.Keys())
	assert.Equal(t, "$.lexemes[0]", lex.Path())

	subs, err := lex.GetObjects("subentries")
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Equal(t, "$.lexemes[0].subentries[0]", subs[0].Path())
}

func TestParse_ShapeErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
	}{
		{name: "invalid json", input: `{"lexemes": [`},
		{name: "root array", input: `[]`},
		{name: "two root keys", input: `{"lexemes": [], "other": 1}`},
		{name: "wrong root key", input: `{"words": []}`},
		{name: "lexemes not array", input: `{"lexemes": {}}`},
		{name: "lexeme not object", input: `{"lexemes": ["alei"]}`},
		{name: "invalid utf-8 in value", input: "{\"lexemes\": [{\"name\": \"a\xffb\"}]}"},
		{name: "truncated utf-8 in key", input: "{\"lexemes\": [{\"n\xc3\": \"ab\"}]}"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Parse([]byte(tt.input))
			if !errors.Is(err, ErrShape) {
				t.Fatalf("Parse(%s) error = %v, want ErrShape", tt.input, err)
			}
		})
	}
}

func TestParseObject_RejectsInvalidUTF8(t *testing.T) {
	t.Parallel()

	_, err := ParseObject([]byte("{\"filename\": \"media/\xfe.wav\"}"), "$")
	require.ErrorIs(t, err, ErrShape)
	assert.Contains(t, err.Error(), "UTF-8")

	obj, err := ParseObject([]byte(`{"filename": "media/ma'qamigeg é.wav"}`), "$")
	require.NoError(t, err)
	got, err := obj.GetString("filename")
	require.NoError(t, err)
	assert.Equal(t, "media/ma'qamigeg é.wav", got)
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "legacy.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleExport), 0o644))

	doc, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, doc.Lexemes, 1)

	_, err = Load(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestObject_PopConsumes(t *testing.T) {
	t.Parallel()

	doc, err := Parse([]byte(sampleExport))
	require.NoError(t, err)
	lex := doc.Lexemes[0]

	name, err := lex.PopString("name")
	require.NoError(t, err)
	assert.Equal(t, "alei", name)
	_, present := lex.Get("name")
	assert.False(t, present)

	note, err := lex.PopString("note")
	require.NoError(t, err)
	assert.Equal(t, "", note, "null reads as empty string")

	flag, err := lex.PopTruthy("explicitSfGloss")
	require.NoError(t, err)
	assert.False(t, flag)

	rank, err := lex.PopText("rank")
	require.NoError(t, err)
	assert.Equal(t, "3", rank)

	assert.Equal(t, []string{"id", "status", "subentries"}, lex.Keys())
}

func TestObject_PopErrors(t *testing.T) {
	t.Parallel()

	doc, err := Parse([]byte(sampleExport))
	require.NoError(t, err)
	lex := doc.Lexemes[0]

	_, err = lex.PopString("missing")
	var fe *FieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "missing", fe.Field)
	assert.ErrorIs(t, err, ErrShape)

	_, err = lex.PopString("rank")
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "string", fe.Want)
	assert.Equal(t, "number", fe.Got)

	_, err = lex.PopArray("status")
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "array", fe.Want)
}

func TestObject_SetKeepsPosition(t *testing.T) {
	t.Parallel()

	o := NewObject("x")
	o.Set("a", "1")
	o.Set("b", "2")
	o.Set("a", "3")
	assert.Equal(t, []string{"a", "b"}, o.Keys())
	v, _ := o.Get("a")
	assert.Equal(t, "3", v)

	o.Delete("a")
	o.Delete("nope")
	assert.Equal(t, []string{"b"}, o.Keys())
}

func TestObject_MarshalJSON(t *testing.T) {
	t.Parallel()

	o, err := ParseObject([]byte(`{"z": 1, "a": "<b>", "m": [{"y": null, "b": true}], "ü": 1.50}`), "$")
	require.NoError(t, err)

	got, err := json.Marshal(o)
	require.NoError(t, err)
	// json.Marshal escapes HTML in Marshaler output; the writer disables that.
	assert.True(t, strings.HasPrefix(string(got), `{"z":1,"a":`))
	assert.Contains(t, string(got), `"m":[{"y":null,"b":true}],"ü":1.50}`)

	raw, err := o.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"z":1,"a":"<b>","m":[{"y":null,"b":true}],"ü":1.50}`, string(raw))
}

func TestObject_MarshalYAML(t *testing.T) {
	t.Parallel()

	o, err := ParseObject([]byte(`{"z": 1, "a": "text", "list": [true, null, 2.5]}`), "$")
	require.NoError(t, err)

	out, err := yaml.Marshal([]*Object{o})
	require.NoError(t, err)

	s := string(out)
	assert.Less(t, strings.Index(s, "z: 1"), strings.Index(s, "a: text"))
	assert.Contains(t, s, "- true")
	assert.Contains(t, s, "- null")
	assert.Contains(t, s, "- 2.5")
}

func TestTruthy(t *testing.T) {
	t.Parallel()

	obj := NewObject("x")
	full := NewObject("y")
	full.Set("k", "v")

	tests := []struct {
		name string
		v    any
		want bool
	}{
		{name: "nil", v: nil, want: false},
		{name: "false", v: false, want: false},
		{name: "true", v: true, want: true},
		{name: "zero", v: json.Number("0"), want: false},
		{name: "zero float", v: json.Number("0.0"), want: false},
		{name: "number", v: json.Number("2"), want: true},
		{name: "empty string", v: "", want: false},
		{name: "string", v: "x", want: true},
		{name: "empty array", v: []any{}, want: false},
		{name: "array", v: []any{"x"}, want: true},
		{name: "empty object", v: obj, want: false},
		{name: "object", v: full, want: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Truthy(tt.v); got != tt.want {
				t.Errorf("Truthy(%v) = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}

func TestText(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", Text(nil))
	assert.Equal(t, "true", Text(true))
	assert.Equal(t, "12", Text(json.Number("12")))
	assert.Equal(t, "abc", Text("abc"))
	assert.Equal(t, `["a",1]`, Text([]any{"a", json.Number("1")}))
}
