package query

import "countries-api/core/value"

// Options carries the shaping parameters of one request.
type Options struct {
	Fields  []string
	Sort    []Criterion
	Flatten bool
}

// ParseOptions builds Options from raw query string values.
func ParseOptions(fields, sort string, flatten bool) Options {
	return Options{
		Fields:  ParseFields(fields),
		Sort:    ParseSortSpec(sort),
		Flatten: flatten,
	}
}

// Apply sorts docs and then projects them.
// Sorting runs first so criteria may use fields that the projection drops.
func Apply(docs []*value.Value, opts Options) []*value.Value {
	return Project(Sort(docs, opts.Sort), opts.Fields, opts.Flatten)
}
