package applicationinfra

import (
	"strings"

	"github.com/placedly/backend/pkg/kernel"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// The posting reference on application records was written under
// different serialization rules at different times: as the raw id string,
// as a trimmed/re-stringified form, and as a native object id. Resolution
// tries each candidate form in order and stops at the first non-empty
// result, so a later (more expensive or more permissive) form never masks
// a legitimately empty earlier one.

// ReferenceForm is one candidate encoding of a posting reference.
type ReferenceForm struct {
	// Label names the encoding for logs.
	Label string
	// Value is the filter value: a string or a primitive.ObjectID.
	Value any
}

// ReferenceForms returns the ordered candidate encodings for a posting
// id. String forms that collapse to an identical value are emitted once,
// keeping the original order.
func ReferenceForms(id kernel.PostingID) []ReferenceForm {
	raw := id.String()
	forms := []ReferenceForm{{Label: "raw", Value: raw}}

	seen := map[string]bool{raw: true}
	if trimmed := strings.TrimSpace(raw); !seen[trimmed] {
		forms = append(forms, ReferenceForm{Label: "restringified", Value: trimmed})
		seen[trimmed] = true
	}

	if oid, err := primitive.ObjectIDFromHex(strings.TrimSpace(raw)); err == nil {
		forms = append(forms, ReferenceForm{Label: "object_id", Value: oid})
		// The hex serialization is lower-cased, so it can differ from
		// the raw string even when both name the same object id.
		if hex := oid.Hex(); !seen[hex] {
			forms = append(forms, ReferenceForm{Label: "object_id_hex", Value: hex})
			seen[hex] = true
		}
	}

	return forms
}

// ReferenceValues returns just the filter values of every candidate form,
// for use in a single $in match.
func ReferenceValues(id kernel.PostingID) []any {
	forms := ReferenceForms(id)
	values := make([]any, 0, len(forms))
	for _, f := range forms {
		values = append(values, f.Value)
	}
	return values
}

// MatchesReference reports whether a stored reference value (string or
// object id, as decoded from the record) names the same posting as any of
// the candidate forms. This pairwise comparison backs the full-scan
// fallback only.
func MatchesReference(stored any, forms []ReferenceForm) bool {
	for _, s := range normalizedStrings(stored) {
		for _, f := range forms {
			for _, c := range normalizedStrings(f.Value) {
				if s == c {
					return true
				}
			}
		}
	}
	return false
}

// normalizedStrings renders a reference value as comparable strings.
// Object-id-shaped strings also compare under their canonical lower-case
// hex so they meet the native form's serialization.
func normalizedStrings(v any) []string {
	switch ref := v.(type) {
	case string:
		out := []string{ref}
		trimmed := strings.TrimSpace(ref)
		if trimmed != ref {
			out = append(out, trimmed)
		}
		if kernel.IsObjectIDHex(trimmed) {
			if lower := strings.ToLower(trimmed); lower != trimmed {
				out = append(out, lower)
			}
		}
		return out
	case primitive.ObjectID:
		return []string{ref.Hex()}
	default:
		return nil
	}
}
