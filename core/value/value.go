package value

// Kind identifies the JSON type held by a Value.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// String returns the lowercase JSON name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Value is a tagged JSON value.
// A nil *Value means "undefined" (the field does not exist), which is
// different from a present Value of KindNull.
type Value struct {
	kind Kind
	b    bool
	n    float64
	// lit keeps the original number literal so re-encoding does not
	// change how the dataset wrote it.
	lit string
	s   string
	arr []*Value
	obj *object
}

type object struct {
	keys   []string
	fields map[string]*Value
}

// Null returns a JSON null.
func Null() *Value {
	return &Value{kind: KindNull}
}

// Bool wraps a boolean.
func Bool(b bool) *Value {
	return &Value{kind: KindBool, b: b}
}

// Number wraps a float64.
func Number(n float64) *Value {
	return &Value{kind: KindNumber, n: n}
}

// String wraps a string.
func String(s string) *Value {
	return &Value{kind: KindString, s: s}
}

// Array wraps the given elements.
func Array(items ...*Value) *Value {
	return &Value{kind: KindArray, arr: items}
}

// Object returns an empty object ready for Put.
func Object() *Value {
	return &Value{kind: KindObject, obj: &object{fields: make(map[string]*Value)}}
}

// Kind reports the value's type. Calling Kind on nil returns KindNull.
func (v *Value) Kind() Kind {
	if v == nil {
		return KindNull
	}
	return v.kind
}

// IsNull reports whether v is undefined or JSON null.
func (v *Value) IsNull() bool {
	return v == nil || v.kind == KindNull
}

// Str returns the string payload and whether v is a string.
func (v *Value) Str() (string, bool) {
	if v == nil || v.kind != KindString {
		return "", false
	}
	return v.s, true
}

// Num returns the numeric payload and whether v is a number.
func (v *Value) Num() (float64, bool) {
	if v == nil || v.kind != KindNumber {
		return 0, false
	}
	return v.n, true
}

// Boolean returns the boolean payload and whether v is a boolean.
func (v *Value) Boolean() (bool, bool) {
	if v == nil || v.kind != KindBool {
		return false, false
	}
	return v.b, true
}

// Len returns the number of elements of an array or fields of an object.
func (v *Value) Len() int {
	switch v.Kind() {
	case KindArray:
		return len(v.arr)
	case KindObject:
		return len(v.obj.keys)
	default:
		return 0
	}
}

// Index returns the i-th array element, or nil when out of range or not an array.
func (v *Value) Index(i int) *Value {
	if v.Kind() != KindArray || i < 0 || i >= len(v.arr) {
		return nil
	}
	return v.arr[i]
}

// Items returns the array elements. The slice must not be modified.
func (v *Value) Items() []*Value {
	if v.Kind() != KindArray {
		return nil
	}
	return v.arr
}

// Field returns the named object field, or nil.
func (v *Value) Field(name string) *Value {
	if v.Kind() != KindObject {
		return nil
	}
	return v.obj.fields[name]
}

// Keys returns the object keys in insertion order. The slice must not be modified.
func (v *Value) Keys() []string {
	if v.Kind() != KindObject {
		return nil
	}
	return v.obj.keys
}

// Put sets a field on an object, keeping the original position when the key already exists.
// It is a no-op when v is not an object.
func (v *Value) Put(key string, field *Value) {
	if v.Kind() != KindObject {
		return
	}
	if _, exists := v.obj.fields[key]; !exists {
		v.obj.keys = append(v.obj.keys, key)
	}
	v.obj.fields[key] = field
}
