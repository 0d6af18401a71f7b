package query

import (
	"strings"

	"countries-api/core/value"
)

// ParseFields splits a comma-separated field list, dropping blank entries.
func ParseFields(s string) []string {
	var fields []string
	for field := range strings.SplitSeq(s, ",") {
		if field = strings.TrimSpace(field); field != "" {
			fields = append(fields, field)
		}
	}
	return fields
}

// Project restricts every document to the given field paths, keeping the
// nested shape of each path. Missing values are left out rather than written
// as null.
//
// With flatten set and exactly one field, the result holds the bare value at
// that path per document, null where it is missing. With more fields flatten
// has no effect. Without fields docs is returned as is.
func Project(docs []*value.Value, fields []string, flatten bool) []*value.Value {
	if len(fields) == 0 {
		return docs
	}

	out := make([]*value.Value, len(docs))

	if flatten && len(fields) == 1 {
		for i, doc := range docs {
			v := value.Get(doc, fields[0])
			if v == nil {
				v = value.Null()
			}
			out[i] = v
		}
		return out
	}

	for i, doc := range docs {
		projected := value.Object()
		for _, field := range fields {
			value.Set(projected, field, value.Get(doc, field))
		}
		out[i] = projected
	}
	return out
}
