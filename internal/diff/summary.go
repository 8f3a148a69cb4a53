package diff

import "github.com/DjordjeVuckovic/sanctuary-hub/internal/domain/content"

type Importance string

const (
	High   Importance = "high"
	Medium Importance = "medium"
)

// ClassifyImportance is high for fields the schema marks important and
// medium for everything else, including fields the schema does not know.
func ClassifyImportance(field string, schema content.Schema) Importance {
	spec, ok := schema.Lookup(field)
	if ok && spec.Important {
		return High
	}
	return Medium
}

type Summary struct {
	Total        int `json:"total"`
	Added        int `json:"added"`
	Removed      int `json:"removed"`
	Modified     int `json:"modified"`
	MajorChanges int `json:"majorChanges"`
}

func Summarize(changes []Change, schema content.Schema) Summary {
	s := Summary{Total: len(changes)}
	for _, c := range changes {
		switch c.ChangeType {
		case Added:
			s.Added++
		case Removed:
			s.Removed++
		case Modified:
			s.Modified++
		}
		if ClassifyImportance(c.Field, schema) == High {
			s.MajorChanges++
		}
	}
	return s
}
