package applicationinfra_test

import (
	"strings"
	"testing"

	"github.com/placedly/backend/pkg/kernel"
	"github.com/placedly/backend/recruitment/application/applicationinfra"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const hexID = "65f2a1b3c4d5e6f708192a3b"

// ============================================================================
// ReferenceForms
// ============================================================================

func TestReferenceForms_ObjectIDShaped(t *testing.T) {
	forms := applicationinfra.ReferenceForms(kernel.PostingID(hexID))

	labels := make([]string, 0, len(forms))
	for _, f := range forms {
		labels = append(labels, f.Label)
	}
	// raw and hex collapse to the same string, restringified collapses
	// into raw, so only two forms remain.
	want := []string{"raw", "object_id"}
	if strings.Join(labels, ",") != strings.Join(want, ",") {
		t.Fatalf("form labels = %v, want %v", labels, want)
	}

	if forms[0].Value != hexID {
		t.Errorf("raw form = %v, want %q", forms[0].Value, hexID)
	}
	oid, ok := forms[1].Value.(primitive.ObjectID)
	if !ok {
		t.Fatalf("object_id form is %T, want primitive.ObjectID", forms[1].Value)
	}
	if oid.Hex() != hexID {
		t.Errorf("object_id form = %s, want %s", oid.Hex(), hexID)
	}
}

func TestReferenceForms_PaddedID(t *testing.T) {
	forms := applicationinfra.ReferenceForms(kernel.PostingID("  " + hexID + " "))

	labels := make([]string, 0, len(forms))
	for _, f := range forms {
		labels = append(labels, f.Label)
	}
	want := []string{"raw", "restringified", "object_id"}
	if strings.Join(labels, ",") != strings.Join(want, ",") {
		t.Fatalf("form labels = %v, want %v", labels, want)
	}
	if forms[1].Value != hexID {
		t.Errorf("restringified form = %v, want %q", forms[1].Value, hexID)
	}
}

func TestReferenceForms_UppercaseHex(t *testing.T) {
	upper := strings.ToUpper(hexID)
	forms := applicationinfra.ReferenceForms(kernel.PostingID(upper))

	// Hex() lower-cases, so the canonical serialization is a distinct
	// fourth candidate here.
	labels := make([]string, 0, len(forms))
	for _, f := range forms {
		labels = append(labels, f.Label)
	}
	want := []string{"raw", "object_id", "object_id_hex"}
	if strings.Join(labels, ",") != strings.Join(want, ",") {
		t.Fatalf("form labels = %v, want %v", labels, want)
	}
	if forms[2].Value != hexID {
		t.Errorf("object_id_hex form = %v, want %q", forms[2].Value, hexID)
	}
}

func TestReferenceForms_NonObjectID(t *testing.T) {
	forms := applicationinfra.ReferenceForms(kernel.PostingID("posting-42"))
	if len(forms) != 1 {
		t.Fatalf("got %d forms for a non-object-id reference, want 1", len(forms))
	}
	if forms[0].Value != "posting-42" {
		t.Errorf("raw form = %v, want %q", forms[0].Value, "posting-42")
	}
}

func TestReferenceValues_MatchesForms(t *testing.T) {
	id := kernel.PostingID(hexID)
	forms := applicationinfra.ReferenceForms(id)
	values := applicationinfra.ReferenceValues(id)
	if len(values) != len(forms) {
		t.Fatalf("got %d values, want %d", len(values), len(forms))
	}
	for i := range forms {
		if values[i] != forms[i].Value {
			t.Errorf("value %d = %v, want %v", i, values[i], forms[i].Value)
		}
	}
}

// ============================================================================
// MatchesReference
// ============================================================================

func TestMatchesReference(t *testing.T) {
	oid, err := primitive.ObjectIDFromHex(hexID)
	if err != nil {
		t.Fatal(err)
	}

	forms := applicationinfra.ReferenceForms(kernel.PostingID(hexID))
	cases := []struct {
		name   string
		stored any
		want   bool
	}{
		{"stored as string", hexID, true},
		{"stored as native object id", oid, true},
		{"stored with padding", " " + hexID + " ", true},
		{"stored upper-case hex", strings.ToUpper(hexID), true},
		{"different posting", "65f2a1b3c4d5e6f708192a3c", false},
		{"unrelated string", "posting-42", false},
		{"nil reference", nil, false},
		{"numeric reference", int64(7), false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := applicationinfra.MatchesReference(c.stored, forms); got != c.want {
				t.Errorf("MatchesReference(%v) = %v, want %v", c.stored, got, c.want)
			}
		})
	}
}

func TestMatchesReference_NativeFormAgainstStringStore(t *testing.T) {
	// The stored value and the queried id are both strings but only
	// agree after trimming, which the indexed equality match misses.
	forms := applicationinfra.ReferenceForms(kernel.PostingID(hexID + "  "))
	if !applicationinfra.MatchesReference(hexID, forms) {
		t.Error("padded query id should match the clean stored string")
	}
}
