// Package filter provides medication selection criteria: simple field
// comparisons and compiled CEL expressions.
package filter

import (
	"fmt"
	"strings"
)

// ComparisonType defines how a field is compared to the item value.
type ComparisonType string

const (
	Equal     ComparisonType = "eq"       // Exact match
	EqualFold ComparisonType = "ieq"      // Case-insensitive match
	Contains  ComparisonType = "contains" // Case-insensitive substring
)

// Item is a single selection criterion.
type Item struct {
	Field    string         `json:"field"`    // Variable name (see Vars)
	Operator ComparisonType `json:"operator"` // Comparison kind
	Value    string         `json:"value"`
}

// Matches reports whether vars satisfy the criterion.
// Unknown fields and non-string values never match.
func (i Item) Matches(vars Vars) bool {
	raw, ok := vars[i.Field]
	if !ok {
		return false
	}
	s, ok := raw.(string)
	if !ok {
		return false
	}

	switch i.Operator {
	case Equal:
		return s == i.Value
	case EqualFold:
		return strings.EqualFold(s, i.Value)
	case Contains:
		return strings.Contains(strings.ToLower(s), strings.ToLower(i.Value))
	default:
		return false
	}
}

// String renders the criterion for logs.
func (i Item) String() string {
	return fmt.Sprintf("%s %s %q", i.Field, i.Operator, i.Value)
}

// Vars is the set of named values an entity exposes to filters.
type Vars map[string]any
