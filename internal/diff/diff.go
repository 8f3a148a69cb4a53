// Package diff computes field-level changes between two versions of a
// content record and classifies them by importance.
package diff

import (
	"github.com/DjordjeVuckovic/sanctuary-hub/internal/domain/content"
)

type ChangeType string

const (
	Added    ChangeType = "added"
	Removed  ChangeType = "removed"
	Modified ChangeType = "modified"
)

// Change is one field-level difference between two record versions
type Change struct {
	Field      string        `json:"field"`
	FieldLabel string        `json:"field_label"`
	OldValue   content.Value `json:"old_value"`
	NewValue   content.Value `json:"new_value"`
	ChangeType ChangeType    `json:"change_type"`
}

type Options struct {
	// TreatMissingPreviousAsAllAdded reports every non-null field of a
	// record without a prior version as added. When false such a record
	// yields no changes.
	TreatMissingPreviousAsAllAdded bool
}

// Compute walks the schema in declaration order and reports every field
// whose value differs between previous and current. Fields that are not
// declared in the schema never participate.
func Compute(previous *content.Record, current content.Record, schema content.Schema, opts Options) []Change {
	changes := make([]Change, 0)

	if previous == nil && !opts.TreatMissingPreviousAsAllAdded {
		return changes
	}

	for _, spec := range schema.Fields() {
		var oldValue content.Value
		if previous != nil {
			oldValue = previous.Field(spec.Name)
		}
		newValue := current.Field(spec.Name)

		if oldValue.Equal(newValue) {
			continue
		}

		changes = append(changes, Change{
			Field:      spec.Name,
			FieldLabel: spec.Label,
			OldValue:   oldValue,
			NewValue:   newValue,
			ChangeType: classify(oldValue, newValue),
		})
	}

	return changes
}

func classify(oldValue, newValue content.Value) ChangeType {
	switch {
	case oldValue.IsNull() && !newValue.IsNull():
		return Added
	case newValue.IsNull() && !oldValue.IsNull():
		return Removed
	default:
		return Modified
	}
}

// FormatValue renders a value for display in change lists
func FormatValue(v content.Value) string {
	return v.String()
}
