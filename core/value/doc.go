// Package value provides a tagged JSON value with ordered objects and dot-path access.
//
// Country records are deeply nested and mostly opaque to the service: the query
// engine only needs to know the path and JSON type of a field in order to project
// or compare it. Value models exactly that (null, boolean, number, string, array,
// object) while keeping object keys in document order so responses mirror the
// source dataset.
//
// # Paths
//
// Get and Set address nested fields with dot-separated paths such as
// "name.common" or "latlng.0". Get never fails: it returns nil (undefined) when
// any segment is missing. Set creates the intermediate objects it needs and
// ignores nil values.
//
//	doc, _ := value.Parse(raw)
//	out := value.Object()
//	value.Set(out, "name.common", value.Get(doc, "name.common"))
package value
