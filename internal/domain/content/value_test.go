package content

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestValue_Equal(t *testing.T) {
	tests := []struct {
		name string
		a, b Value
		want bool
	}{
		{name: "null equals null", a: Null(), b: Value{}, want: true},
		{name: "same text", a: Text("hay"), b: Text("hay"), want: true},
		{name: "different text", a: Text("hay"), b: Text("straw"), want: false},
		{name: "number", a: Number(5), b: Number(5), want: true},
		{name: "named by id and name", a: Named("care", "Animal Care"), b: Named("care", "Animal Care"), want: true},
		{name: "named differs by name", a: Named("care", "Animal Care"), b: Named("care", "Care"), want: false},
		{name: "same list same order", a: List("pigs", "goats"), b: List("pigs", "goats"), want: true},
		{name: "same list different order", a: List("pigs", "goats"), b: List("goats", "pigs"), want: false},
		{name: "kind mismatch", a: Text("5"), b: Number(5), want: false},
		{name: "null vs empty text", a: Null(), b: Text(""), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Equal(tt.b))
			assert.Equal(t, tt.want, tt.b.Equal(tt.a))
		})
	}
}

func TestValue_String(t *testing.T) {
	assert.Equal(t, "None", Null().String())
	assert.Equal(t, "pigs, goats", List("pigs", "goats").String())
	assert.Equal(t, "Animal Care", Named("care", "Animal Care").String())
	assert.Equal(t, "5", Number(5).String())
	assert.Equal(t, "4.5", Number(4.5).String())
	assert.Equal(t, "Old Q?", Text("Old Q?").String())
}

func TestValue_ListIsCopied(t *testing.T) {
	items := []string{"a", "b"}
	v := List(items...)
	items[0] = "z"

	assert.Equal(t, []string{"a", "b"}, v.Items())

	got := v.Items()
	got[1] = "y"
	assert.Equal(t, []string{"a", "b"}, v.Items())
}

func TestValue_JSON(t *testing.T) {
	fields := map[string]Value{
		"question": Text("Can I visit?"),
		"priority": Number(3),
		"category": Named("visiting", "Visiting"),
		"tags":     List("tours", "weekends"),
		"summary":  Null(),
	}

	data, err := json.Marshal(fields)
	require.NoError(t, err)

	var decoded map[string]Value
	require.NoError(t, json.Unmarshal(data, &decoded))

	for name, want := range fields {
		assert.True(t, want.Equal(decoded[name]), "field %s: want %v got %v", name, want, decoded[name])
	}
}

func TestValue_UnmarshalJSON_Invalid(t *testing.T) {
	var v Value
	err := json.Unmarshal([]byte(`[1, 2]`), &v)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode list value")
}

func TestValue_YAML(t *testing.T) {
	doc := `
question: How do I donate?
priority: 7
category:
  name: Getting Involved
named:
  id: gi
  name: Getting Involved
tags: [donations, support]
summary: null
`
	var decoded map[string]Value
	require.NoError(t, yaml.Unmarshal([]byte(doc), &decoded))

	assert.True(t, Text("How do I donate?").Equal(decoded["question"]))
	assert.True(t, Number(7).Equal(decoded["priority"]))
	assert.True(t, Named("getting-involved", "Getting Involved").Equal(decoded["category"]))
	assert.True(t, Named("gi", "Getting Involved").Equal(decoded["named"]))
	assert.True(t, List("donations", "support").Equal(decoded["tags"]))
	assert.True(t, decoded["summary"].IsNull())
}

func TestValue_ID(t *testing.T) {
	assert.Equal(t, "care", Named("care", "Animal Care").ID())
	assert.Equal(t, "care", Text("care").ID())
	assert.Equal(t, "", List("care").ID())
}
