package store

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestNormalizeCanonicalID(t *testing.T) {
	oid := primitive.NewObjectID()

	tests := []struct {
		name string
		doc  Document
		want string
	}{
		{"application id wins", Document{"id": "u-1", "_id": oid, "userId": "u-2"}, "u-1"},
		{"falls back to object id hex", Document{"_id": oid, "userId": "u-2"}, oid.Hex()},
		{"falls back to userId", Document{"userId": "u-2"}, "u-2"},
		{"string _id passes through", Document{"_id": "raw-id"}, "raw-id"},
		{"empty id field is skipped", Document{"id": "", "_id": oid}, oid.Hex()},
		{"nothing to normalize", Document{"name": "x"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.doc).ID()
			if got != tt.want {
				t.Errorf("Normalize().ID() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNormalizeNil(t *testing.T) {
	doc := Normalize(nil)
	if doc == nil {
		t.Fatal("Normalize(nil) returned nil document")
	}
	if doc.ID() != "" {
		t.Errorf("Normalize(nil).ID() = %q, want empty", doc.ID())
	}
}

func TestDocumentNum(t *testing.T) {
	doc := Document{
		"f64": float64(7.5),
		"i32": int32(4),
		"i64": int64(9),
		"i":   3,
		"str": "12",
	}
	tests := []struct {
		key  string
		want float64
	}{
		{"f64", 7.5},
		{"i32", 4},
		{"i64", 9},
		{"i", 3},
		{"str", 0},
		{"missing", 0},
	}
	for _, tt := range tests {
		if got := doc.Num(tt.key); got != tt.want {
			t.Errorf("Num(%q) = %v, want %v", tt.key, got, tt.want)
		}
	}
}

func TestDocumentStrs(t *testing.T) {
	doc := Document{
		"plain": []string{"a", "b"},
		"bson":  primitive.A{"c", "d"},
		"mixed": []any{"e", 42, "f"},
	}
	if got := doc.Strs("plain"); len(got) != 2 || got[0] != "a" {
		t.Errorf("Strs(plain) = %v", got)
	}
	if got := doc.Strs("bson"); len(got) != 2 || got[1] != "d" {
		t.Errorf("Strs(bson) = %v", got)
	}
	// Non-string entries are dropped, not stringified.
	if got := doc.Strs("mixed"); len(got) != 2 || got[1] != "f" {
		t.Errorf("Strs(mixed) = %v", got)
	}
	if got := doc.Strs("missing"); got != nil {
		t.Errorf("Strs(missing) = %v, want nil", got)
	}
}

func TestDocumentDocNested(t *testing.T) {
	doc := Document{
		"attrs":  map[string]any{"Attack": 8.0},
		"bsonM":  primitive.M{"pace": 6.0},
		"scalar": "nope",
	}
	if got := doc.Doc("attrs"); got.Num("Attack") != 8 {
		t.Errorf("Doc(attrs).Num(Attack) = %v, want 8", got.Num("Attack"))
	}
	if got := doc.Doc("bsonM"); got.Num("pace") != 6 {
		t.Errorf("Doc(bsonM).Num(pace) = %v, want 6", got.Num("pace"))
	}
	if got := doc.Doc("scalar"); got != nil {
		t.Errorf("Doc(scalar) = %v, want nil", got)
	}
}
