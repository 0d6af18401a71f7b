package value

import (
	"maps"
	"slices"
	"strconv"
	"strings"
)

// Get walks a dot-separated path and returns the value found there.
// It returns nil as soon as a segment is missing or the current value cannot be
// traversed. Numeric segments index into arrays.
//
//	Get(doc, "name.common")   // the common name
//	Get(doc, "latlng.0")      // first coordinate
//	Get(doc, "name.missing")  // nil
func Get(root *Value, path string) *Value {
	current := root
	for segment := range strings.SplitSeq(path, ".") {
		switch current.Kind() {
		case KindObject:
			current = current.Field(segment)
		case KindArray:
			i, err := strconv.Atoi(segment)
			if err != nil {
				return nil
			}
			current = current.Index(i)
		default:
			return nil
		}
		if current == nil {
			return nil
		}
	}
	return current
}

// Set writes v at the dot-separated path inside root, creating intermediate
// objects as needed. An intermediate that exists but is not an object is
// replaced by an empty object. Existing intermediate objects are copied before
// being written to, so subtrees grafted from another document by an earlier
// Set are never modified. Set does nothing when v is nil, so absent fields
// never materialize empty branches. root must be an object.
func Set(root *Value, path string, v *Value) {
	if v == nil || root.Kind() != KindObject {
		return
	}

	segments := strings.Split(path, ".")
	current := root
	for _, segment := range segments[:len(segments)-1] {
		next := current.Field(segment)
		if next.Kind() == KindObject {
			next = next.shallowCopy()
		} else {
			next = Object()
		}
		current.Put(segment, next)
		current = next
	}
	current.Put(segments[len(segments)-1], v)
}

// shallowCopy returns a new object holding the same field pointers.
func (v *Value) shallowCopy() *Value {
	return &Value{kind: KindObject, obj: &object{
		keys:   slices.Clone(v.obj.keys),
		fields: maps.Clone(v.obj.fields),
	}}
}
