package query

import (
	"slices"
	"strings"

	"countries-api/core/value"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Direction is the order of a sort criterion.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// Criterion orders documents by the value found at Field.
type Criterion struct {
	Field     string    `json:"field"`
	Direction Direction `json:"direction"`
}

// ParseSortSpec parses a comma-separated list such as "name.common,-population".
// A leading '-' sorts descending, a leading '+' or no prefix ascending.
// Tokens with an empty field or an empty path segment are dropped.
func ParseSortSpec(spec string) []Criterion {
	var criteria []Criterion
	for token := range strings.SplitSeq(spec, ",") {
		token = strings.TrimSpace(token)

		dir := Asc
		switch {
		case strings.HasPrefix(token, "-"):
			dir = Desc
			token = token[1:]
		case strings.HasPrefix(token, "+"):
			token = token[1:]
		}

		field := strings.TrimSpace(token)
		if !validPath(field) {
			continue
		}
		criteria = append(criteria, Criterion{Field: field, Direction: dir})
	}
	return criteria
}

func validPath(path string) bool {
	if path == "" {
		return false
	}
	return !slices.Contains(strings.Split(path, "."), "")
}

// Sort returns a stably sorted copy of docs. docs itself is not reordered.
//
// Per criterion, a missing or null value sorts before present values when
// ascending and after them when descending. Two numbers compare numerically,
// two strings by collation, anything else by collation of its string form.
func Sort(docs []*value.Value, criteria []Criterion) []*value.Value {
	sorted := slices.Clone(docs)
	if len(criteria) == 0 || len(sorted) < 2 {
		return sorted
	}

	// A Collator is not safe for concurrent use.
	col := collate.New(language.Und)

	slices.SortStableFunc(sorted, func(a, b *value.Value) int {
		for _, c := range criteria {
			cmp := compare(col, value.Get(a, c.Field), value.Get(b, c.Field))
			if cmp == 0 {
				continue
			}
			if c.Direction == Desc {
				return -cmp
			}
			return cmp
		}
		return 0
	})
	return sorted
}

func compare(col *collate.Collator, a, b *value.Value) int {
	aMissing, bMissing := a.IsNull(), b.IsNull()
	switch {
	case aMissing && bMissing:
		return 0
	case aMissing:
		return -1
	case bMissing:
		return 1
	}

	if an, ok := a.Num(); ok {
		if bn, ok := b.Num(); ok {
			switch {
			case an < bn:
				return -1
			case an > bn:
				return 1
			default:
				return 0
			}
		}
	}

	return col.CompareString(coerce(a), coerce(b))
}

// coerce renders v the way a loosely typed comparison would see it:
// arrays join their elements with commas and objects collapse to a fixed tag.
func coerce(v *value.Value) string {
	switch v.Kind() {
	case value.KindString:
		s, _ := v.Str()
		return s
	case value.KindNumber:
		n, _ := v.Num()
		return value.FormatNumber(n)
	case value.KindBool:
		b, _ := v.Boolean()
		if b {
			return "true"
		}
		return "false"
	case value.KindArray:
		parts := make([]string, v.Len())
		for i, item := range v.Items() {
			if !item.IsNull() {
				parts[i] = coerce(item)
			}
		}
		return strings.Join(parts, ",")
	case value.KindObject:
		return "[object Object]"
	default:
		return "null"
	}
}
