package store

// In-memory cross-collection joins. Collections reference the same logical
// entity by different fields (application "id", Mongo "_id", sometimes
// "userId"), so an index is built over every candidate key and the first
// match wins. A failed lookup yields nil and consumers substitute zero-value
// defaults instead of erroring.

// joinKeys are the identifier fields a document may be referenced by.
var joinKeys = []string{"id", "_id", "userId"}

// Index builds a lookup table over the documents, keyed by every identifier
// field each document carries. When two documents claim the same key the
// first one wins.
func Index(docs []Document) map[string]Document {
	idx := make(map[string]Document, len(docs))
	for _, doc := range docs {
		for _, key := range joinKeys {
			if v := doc.Str(key); v != "" {
				if _, taken := idx[v]; !taken {
					idx[v] = doc
				}
			}
		}
	}
	return idx
}

// Lookup resolves a reference against an index built by Index. The second
// return reports whether a match was found.
func Lookup(idx map[string]Document, ref string) (Document, bool) {
	if ref == "" {
		return nil, false
	}
	doc, ok := idx[ref]
	return doc, ok
}

// LookupStr resolves a reference and returns the named string field of the
// match, or "" when the reference is dangling. This is the common join shape:
// resolve an id to a display name, defaulting to empty.
func LookupStr(idx map[string]Document, ref, field string) string {
	doc, ok := Lookup(idx, ref)
	if !ok {
		return ""
	}
	return doc.Str(field)
}

// ResolveAll maps a list of references through the index, keeping input order.
// Dangling references contribute an empty string so positions line up with
// the input (exports pair id columns with name columns this way).
func ResolveAll(idx map[string]Document, refs []string, field string) []string {
	out := make([]string, len(refs))
	for i, ref := range refs {
		out[i] = LookupStr(idx, ref, field)
	}
	return out
}
