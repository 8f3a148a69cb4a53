package content

import "cmp"

// Accessors maps the logical concepts used by search, ranking and
// analytics onto the concrete fields of one content kind. An empty field
// name means the kind has no such concept.
type Accessors struct {
	Kind            Kind
	Schema          Schema
	TitleField      string
	TextFields      []string
	KeywordsField   string
	TagsField       string
	CategoryField   string
	TypeField       string
	DifficultyField string
	AudienceField   string

	// Popularity is views for FAQs and downloads for resources
	Popularity func(Record) float64
	// Rating is the average rating, or the helpfulness ratio for FAQs
	Rating func(Record) float64
	// Relevance orders records most relevant first
	Relevance func(a, b Record) int
}

func (a Accessors) Title(r Record) string {
	return r.Field(a.TitleField).Text()
}

var faqAccessors = Accessors{
	Kind:            FAQ,
	Schema:          FAQSchema,
	TitleField:      FieldQuestion,
	TextFields:      []string{FieldQuestion, FieldAnswer},
	KeywordsField:   FieldKeywords,
	TagsField:       FieldTags,
	CategoryField:   FieldCategory,
	DifficultyField: FieldDifficulty,
	Popularity: func(r Record) float64 {
		return float64(r.Metrics.Views)
	},
	Rating: func(r Record) float64 {
		return r.Metrics.HelpfulnessRatio
	},
	Relevance: func(a, b Record) int {
		return cmp.Compare(b.Field(FieldPriority).Number(), a.Field(FieldPriority).Number())
	},
}

var resourceAccessors = Accessors{
	Kind:            Resource,
	Schema:          ResourceSchema,
	TitleField:      FieldTitle,
	TextFields:      []string{FieldTitle, FieldDescription, FieldSummary},
	KeywordsField:   FieldKeywords,
	TagsField:       FieldTags,
	CategoryField:   FieldCategory,
	TypeField:       FieldType,
	DifficultyField: FieldDifficulty,
	AudienceField:   FieldTargetAudience,
	Popularity: func(r Record) float64 {
		return float64(r.Metrics.Downloads)
	},
	Rating: func(r Record) float64 {
		return r.Metrics.Rating
	},
	Relevance: func(a, b Record) int {
		if c := cmp.Compare(featuredRank(b), featuredRank(a)); c != 0 {
			return c
		}
		return cmp.Compare(b.Metrics.Rating, a.Metrics.Rating)
	},
}

func featuredRank(r Record) int {
	if r.Featured {
		return 1
	}
	return 0
}

func AccessorsFor(kind Kind) (Accessors, bool) {
	switch kind {
	case FAQ:
		return faqAccessors, true
	case Resource:
		return resourceAccessors, true
	default:
		return Accessors{}, false
	}
}
