package store

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestIndexFirstMatchWins(t *testing.T) {
	docs := []Document{
		Normalize(Document{"id": "u-1", "name": "First"}),
		Normalize(Document{"id": "u-1", "name": "Second"}),
	}
	idx := Index(docs)
	doc, ok := Lookup(idx, "u-1")
	if !ok {
		t.Fatal("expected a match for u-1")
	}
	if got := doc.Str("name"); got != "First" {
		t.Errorf("Lookup resolved %q, want first-inserted document", got)
	}
}

func TestIndexCoversAllIdentifierFields(t *testing.T) {
	oid := primitive.NewObjectID()
	docs := []Document{
		Normalize(Document{"_id": oid, "userId": "u-9", "name": "Coach"}),
	}
	idx := Index(docs)

	for _, ref := range []string{oid.Hex(), "u-9"} {
		if _, ok := Lookup(idx, ref); !ok {
			t.Errorf("expected document to be reachable via %q", ref)
		}
	}
}

func TestLookupDanglingReference(t *testing.T) {
	idx := Index([]Document{Normalize(Document{"id": "u-1", "name": "A"})})

	if _, ok := Lookup(idx, "u-404"); ok {
		t.Error("dangling reference should not match")
	}
	if _, ok := Lookup(idx, ""); ok {
		t.Error("empty reference should not match")
	}
	if got := LookupStr(idx, "u-404", "name"); got != "" {
		t.Errorf("LookupStr on dangling ref = %q, want empty default", got)
	}
}

func TestResolveAllKeepsPositions(t *testing.T) {
	idx := Index([]Document{
		Normalize(Document{"id": "p-1", "name": "Asha"}),
		Normalize(Document{"id": "p-3", "name": "Kiran"}),
	})
	got := ResolveAll(idx, []string{"p-1", "p-2", "p-3"}, "name")
	want := []string{"Asha", "", "Kiran"}
	if len(got) != len(want) {
		t.Fatalf("ResolveAll returned %d entries, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ResolveAll[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
