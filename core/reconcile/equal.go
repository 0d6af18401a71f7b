package reconcile

import "countries-api/core/value"

// Equal reports whether a and b hold the same JSON value. Object key order is
// ignored, array order is not. An undefined value equals only another
// undefined value.
func Equal(a, b *value.Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() {
		return false
	}

	switch a.Kind() {
	case value.KindNull:
		return true
	case value.KindBool:
		x, _ := a.Boolean()
		y, _ := b.Boolean()
		return x == y
	case value.KindNumber:
		x, _ := a.Num()
		y, _ := b.Num()
		return x == y
	case value.KindString:
		x, _ := a.Str()
		y, _ := b.Str()
		return x == y
	case value.KindArray:
		if a.Len() != b.Len() {
			return false
		}
		for i := range a.Len() {
			if !Equal(a.Index(i), b.Index(i)) {
				return false
			}
		}
		return true
	case value.KindObject:
		if a.Len() != b.Len() {
			return false
		}
		for _, k := range a.Keys() {
			if !Equal(a.Field(k), b.Field(k)) {
				return false
			}
		}
		return true
	}
	return false
}
