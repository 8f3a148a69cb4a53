package content

import (
	"fmt"
	"slices"
)

const (
	FieldQuestion       = "question"
	FieldAnswer         = "answer"
	FieldCategory       = "category"
	FieldTags           = "tags"
	FieldDifficulty     = "difficulty"
	FieldKeywords       = "keywords"
	FieldPriority       = "priority"
	FieldTitle          = "title"
	FieldDescription    = "description"
	FieldSummary        = "summary"
	FieldType           = "type"
	FieldTargetAudience = "targetAudience"
	FieldURL            = "url"
)

// FieldSpec declares one tracked attribute of a content kind
type FieldSpec struct {
	Name      string    `json:"name"`
	Label     string    `json:"label"`
	Kind      ValueKind `json:"valueKind"`
	Important bool      `json:"important"`
}

// Schema is the ordered field declaration of a content kind.
// Declaration order drives diff output order.
type Schema struct {
	kind   Kind
	fields []FieldSpec
	index  map[string]int
}

func NewSchema(kind Kind, fields ...FieldSpec) Schema {
	index := make(map[string]int, len(fields))
	for i, f := range fields {
		index[f.Name] = i
	}
	return Schema{
		kind:   kind,
		fields: slices.Clone(fields),
		index:  index,
	}
}

func (s Schema) Kind() Kind { return s.kind }

func (s Schema) Fields() []FieldSpec { return slices.Clone(s.fields) }

func (s Schema) Lookup(name string) (FieldSpec, bool) {
	i, ok := s.index[name]
	if !ok {
		return FieldSpec{}, false
	}
	return s.fields[i], true
}

// Normalize returns a field map holding every schema key, with absent
// fields set to null. Keys unknown to the schema are dropped.
func (s Schema) Normalize(fields map[string]Value) map[string]Value {
	out := make(map[string]Value, len(s.fields))
	for _, f := range s.fields {
		out[f.Name] = fields[f.Name]
	}
	return out
}

// Validate checks that every provided field is declared and holds a
// value of the declared kind (or null)
func (s Schema) Validate(fields map[string]Value) error {
	for name, v := range fields {
		spec, ok := s.Lookup(name)
		if !ok {
			return fmt.Errorf("unknown %s field %q", s.kind, name)
		}
		if v.IsNull() {
			continue
		}
		if v.Kind() != spec.Kind && !(spec.Kind == ValueObject && v.Kind() == ValueText) {
			return fmt.Errorf("field %q expects %s, got %s", name, spec.Kind, v.Kind())
		}
	}
	return nil
}

var FAQSchema = NewSchema(FAQ,
	FieldSpec{Name: FieldQuestion, Label: "Question", Kind: ValueText, Important: true},
	FieldSpec{Name: FieldAnswer, Label: "Answer", Kind: ValueText, Important: true},
	FieldSpec{Name: FieldCategory, Label: "Category", Kind: ValueObject, Important: true},
	FieldSpec{Name: FieldTags, Label: "Tags", Kind: ValueArray},
	FieldSpec{Name: FieldDifficulty, Label: "Difficulty", Kind: ValueText},
	FieldSpec{Name: FieldKeywords, Label: "Keywords", Kind: ValueArray},
	FieldSpec{Name: FieldPriority, Label: "Priority", Kind: ValueNumber},
)

var ResourceSchema = NewSchema(Resource,
	FieldSpec{Name: FieldTitle, Label: "Title", Kind: ValueText, Important: true},
	FieldSpec{Name: FieldDescription, Label: "Description", Kind: ValueText, Important: true},
	FieldSpec{Name: FieldSummary, Label: "Summary", Kind: ValueText},
	FieldSpec{Name: FieldCategory, Label: "Category", Kind: ValueObject, Important: true},
	FieldSpec{Name: FieldTags, Label: "Tags", Kind: ValueArray},
	FieldSpec{Name: FieldType, Label: "Resource Type", Kind: ValueText, Important: true},
	FieldSpec{Name: FieldDifficulty, Label: "Difficulty", Kind: ValueText},
	FieldSpec{Name: FieldTargetAudience, Label: "Target Audience", Kind: ValueArray},
	FieldSpec{Name: FieldURL, Label: "URL", Kind: ValueText, Important: true},
	FieldSpec{Name: FieldKeywords, Label: "Keywords", Kind: ValueArray},
)

func SchemaFor(kind Kind) (Schema, bool) {
	switch kind {
	case FAQ:
		return FAQSchema, true
	case Resource:
		return ResourceSchema, true
	default:
		return Schema{}, false
	}
}
