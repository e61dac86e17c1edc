package store

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Document is a schema-less record fetched from a collection. Every document
// returned by the store carries a canonical string "id" field, set by
// Normalize at the fetch boundary, so consumers never have to probe
// id/_id/userId themselves.
type Document map[string]any

// Normalize gives the document its canonical id: an application-assigned "id"
// wins, then the Mongo ObjectID hex, then "userId". Documents with none of
// the three keep an empty id rather than erroring.
func Normalize(doc Document) Document {
	if doc == nil {
		return Document{}
	}
	if id := stringValue(doc["id"]); id != "" {
		doc["id"] = id
		return doc
	}
	if id := stringValue(doc["_id"]); id != "" {
		doc["id"] = id
		return doc
	}
	if id := stringValue(doc["userId"]); id != "" {
		doc["id"] = id
		return doc
	}
	doc["id"] = ""
	return doc
}

func stringValue(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case primitive.ObjectID:
		return t.Hex()
	default:
		return ""
	}
}

// ID returns the canonical document id.
func (d Document) ID() string {
	return d.Str("id")
}

// Str returns the named field as a string, or "" when missing or not a
// string-like value.
func (d Document) Str(key string) string {
	return stringValue(d[key])
}

// Num returns the named field as a float64, tolerating every numeric type
// the BSON decoder may produce. Missing or non-numeric fields are 0.
func (d Document) Num(key string) float64 {
	switch t := d[key].(type) {
	case float64:
		return t
	case float32:
		return float64(t)
	case int:
		return float64(t)
	case int32:
		return float64(t)
	case int64:
		return float64(t)
	default:
		return 0
	}
}

// Bool returns the named field as a bool; missing or non-bool fields are false.
func (d Document) Bool(key string) bool {
	b, _ := d[key].(bool)
	return b
}

// Strs returns the named field as a slice of strings, tolerating both
// []string and the []any the BSON decoder produces for arrays.
func (d Document) Strs(key string) []string {
	switch t := d[key].(type) {
	case []string:
		return t
	case []any:
		out := make([]string, 0, len(t))
		for _, v := range t {
			if s := stringValue(v); s != "" {
				out = append(out, s)
			}
		}
		return out
	case primitive.A:
		out := make([]string, 0, len(t))
		for _, v := range t {
			if s := stringValue(v); s != "" {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

// Time returns the named field as a time.Time when the decoder produced one,
// otherwise the zero time.
func (d Document) Time(key string) time.Time {
	switch t := d[key].(type) {
	case time.Time:
		return t
	case primitive.DateTime:
		return t.Time()
	default:
		return time.Time{}
	}
}

// Doc returns a nested document field, or nil.
func (d Document) Doc(key string) Document {
	switch t := d[key].(type) {
	case Document:
		return t
	case map[string]any:
		return Document(t)
	case primitive.M:
		return Document(t)
	default:
		return nil
	}
}

// Docs returns an array field of nested documents.
func (d Document) Docs(key string) []Document {
	var raw []any
	switch t := d[key].(type) {
	case []any:
		raw = t
	case primitive.A:
		raw = t
	default:
		return nil
	}
	out := make([]Document, 0, len(raw))
	for _, v := range raw {
		switch m := v.(type) {
		case map[string]any:
			out = append(out, Document(m))
		case primitive.M:
			out = append(out, Document(m))
		}
	}
	return out
}
