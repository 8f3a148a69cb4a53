package content

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ValueKind is the shape of a field value as declared by a Schema
type ValueKind string

const (
	ValueNull   ValueKind = ""
	ValueText   ValueKind = "text"
	ValueObject ValueKind = "object"
	ValueArray  ValueKind = "array"
	ValueNumber ValueKind = "number"
)

// Value is a single field value of a content record.
// It is one of: null, text, number, a named object ({id, name}) or an
// ordered list of strings. The zero Value is null. Values are immutable.
type Value struct {
	kind ValueKind
	text string
	num  float64
	id   string
	list []string
}

// Null returns the absent value
func Null() Value { return Value{} }

func Text(s string) Value { return Value{kind: ValueText, text: s} }

func Number(n float64) Value { return Value{kind: ValueNumber, num: n} }

// Named builds an object value carrying an identifier and a display name
func Named(id, name string) Value { return Value{kind: ValueObject, id: id, text: name} }

func List(items ...string) Value {
	cp := make([]string, len(items))
	copy(cp, items)
	return Value{kind: ValueArray, list: cp}
}

func (v Value) Kind() ValueKind { return v.kind }

func (v Value) IsNull() bool { return v.kind == ValueNull }

// Text returns the text of a text value or the name of a named object
func (v Value) Text() string {
	switch v.kind {
	case ValueText, ValueObject:
		return v.text
	default:
		return ""
	}
}

func (v Value) Number() float64 {
	if v.kind != ValueNumber {
		return 0
	}
	return v.num
}

// ID returns the identifier of a named object, falling back to the text
// of a text value so that plain category strings can be filtered on too
func (v Value) ID() string {
	switch v.kind {
	case ValueObject:
		return v.id
	case ValueText:
		return v.text
	default:
		return ""
	}
}

// Items returns a copy of the list elements
func (v Value) Items() []string {
	if v.kind != ValueArray {
		return nil
	}
	return slices.Clone(v.list)
}

// Contains reports whether a list value holds item
func (v Value) Contains(item string) bool {
	return v.kind == ValueArray && slices.Contains(v.list, item)
}

// Equal is deep, order-sensitive equality
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case ValueNull:
		return true
	case ValueText:
		return v.text == o.text
	case ValueNumber:
		return v.num == o.num
	case ValueObject:
		return v.id == o.id && v.text == o.text
	case ValueArray:
		return slices.Equal(v.list, o.list)
	}
	return false
}

// String renders the value for display: null is "None", lists are
// comma-joined, named objects render their name.
func (v Value) String() string {
	switch v.kind {
	case ValueNull:
		return "None"
	case ValueArray:
		return strings.Join(v.list, ", ")
	case ValueObject, ValueText:
		return v.text
	case ValueNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	}
	return ""
}

type namedJSON struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case ValueText:
		return json.Marshal(v.text)
	case ValueNumber:
		return json.Marshal(v.num)
	case ValueObject:
		return json.Marshal(namedJSON{ID: v.id, Name: v.text})
	case ValueArray:
		if v.list == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(v.list)
	default:
		return []byte("null"), nil
	}
}

func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*v = Null()
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("decode text value: %w", err)
		}
		*v = Text(s)
	case '{':
		var n namedJSON
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("decode object value: %w", err)
		}
		*v = Named(n.ID, n.Name)
	case '[':
		var items []string
		if err := json.Unmarshal(data, &items); err != nil {
			return fmt.Errorf("decode list value: %w", err)
		}
		*v = List(items...)
	default:
		var n float64
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("decode number value: %w", err)
		}
		*v = Number(n)
	}
	return nil
}

func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		switch node.Tag {
		case "!!null":
			*v = Null()
		case "!!int", "!!float":
			n, err := strconv.ParseFloat(node.Value, 64)
			if err != nil {
				return fmt.Errorf("line %d: invalid number %q: %w", node.Line, node.Value, err)
			}
			*v = Number(n)
		default:
			*v = Text(node.Value)
		}
	case yaml.MappingNode:
		var n namedJSON
		if err := node.Decode(&n); err != nil {
			return fmt.Errorf("line %d: invalid object value: %w", node.Line, err)
		}
		if n.ID == "" {
			n.ID = Slug(n.Name)
		}
		*v = Named(n.ID, n.Name)
	case yaml.SequenceNode:
		var items []string
		if err := node.Decode(&items); err != nil {
			return fmt.Errorf("line %d: invalid list value: %w", node.Line, err)
		}
		*v = List(items...)
	default:
		return fmt.Errorf("line %d: unsupported value node", node.Line)
	}
	return nil
}

// Slug lower-cases s and joins its words with dashes
func Slug(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), "-")
}
