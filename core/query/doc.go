// Package query shapes result sets: stable multi-key sorting and field
// projection over country documents.
//
// Both operations address fields with dot paths resolved by value.Get, so a
// criterion and a projection that name the same path always see the same
// value. Neither operation modifies its input documents.
//
//	opts := query.ParseOptions("name.common,population", "-population", false)
//	out := query.Apply(docs, opts)
package query
