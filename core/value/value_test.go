package value_test

import (
	"encoding/json"
	"testing"

	"countries-api/core/value"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDoc = `{
  "name": {"common": "Chad", "official": "Republic of Chad"},
  "population": 16425859,
  "area": 1284000.5,
  "independent": true,
  "capital": ["N'Djamena"],
  "latlng": [15, 19],
  "gini": null
}`

func TestParse_PreservesKeyOrder(t *testing.T) {
	doc, err := value.Parse([]byte(`{"b":1,"a":{"z":true,"y":null},"c":[1,"x"]}`))
	require.NoError(t, err)

	assert.Equal(t, []string{"b", "a", "c"}, doc.Keys())

	out, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.Equal(t, `{"b":1,"a":{"z":true,"y":null},"c":[1,"x"]}`, string(out))
}

func TestParse_KeepsNumberLiterals(t *testing.T) {
	doc, err := value.Parse([]byte(`{"population":16425859,"area":1.5e3}`))
	require.NoError(t, err)

	n, ok := value.Get(doc, "area").Num()
	assert.True(t, ok)
	assert.Equal(t, 1500.0, n)

	out, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.Equal(t, `{"population":16425859,"area":1.5e3}`, string(out))
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"Empty", ``},
		{"Truncated", `{"a":`},
		{"Trailing", `{} {}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := value.Parse([]byte(tt.input))
			assert.Error(t, err)
		})
	}
}

func TestGet(t *testing.T) {
	doc, err := value.Parse([]byte(sampleDoc))
	require.NoError(t, err)

	t.Run("NestedString", func(t *testing.T) {
		s, ok := value.Get(doc, "name.common").Str()
		assert.True(t, ok)
		assert.Equal(t, "Chad", s)
	})

	t.Run("ArrayIndex", func(t *testing.T) {
		n, ok := value.Get(doc, "latlng.1").Num()
		assert.True(t, ok)
		assert.Equal(t, 19.0, n)
	})

	t.Run("MissingSegment", func(t *testing.T) {
		assert.Nil(t, value.Get(doc, "name.nope"))
		assert.Nil(t, value.Get(doc, "nope.common"))
	})

	t.Run("NotTraversable", func(t *testing.T) {
		assert.Nil(t, value.Get(doc, "population.value"))
		assert.Nil(t, value.Get(doc, "capital.first"))
		assert.Nil(t, value.Get(doc, "latlng.9"))
	})

	t.Run("NullIsPresent", func(t *testing.T) {
		v := value.Get(doc, "gini")
		require.NotNil(t, v)
		assert.Equal(t, value.KindNull, v.Kind())
		assert.True(t, v.IsNull())
	})

	t.Run("NilRoot", func(t *testing.T) {
		assert.Nil(t, value.Get(nil, "name"))
	})
}

func TestSet(t *testing.T) {
	t.Run("CreatesIntermediates", func(t *testing.T) {
		out := value.Object()
		value.Set(out, "name.native.fra", value.String("Tchad"))

		b, err := json.Marshal(out)
		require.NoError(t, err)
		assert.JSONEq(t, `{"name":{"native":{"fra":"Tchad"}}}`, string(b))
	})

	t.Run("NilValueIsNoop", func(t *testing.T) {
		out := value.Object()
		value.Set(out, "name.common", nil)
		assert.Equal(t, 0, out.Len())
	})

	t.Run("NullIsWritten", func(t *testing.T) {
		out := value.Object()
		value.Set(out, "gini", value.Null())

		b, err := json.Marshal(out)
		require.NoError(t, err)
		assert.Equal(t, `{"gini":null}`, string(b))
	})

	t.Run("ReplacesScalarIntermediate", func(t *testing.T) {
		out := value.Object()
		value.Set(out, "a", value.Number(1))
		value.Set(out, "a.b", value.Bool(true))

		b, err := json.Marshal(out)
		require.NoError(t, err)
		assert.Equal(t, `{"a":{"b":true}}`, string(b))
	})

	t.Run("MergesSiblings", func(t *testing.T) {
		out := value.Object()
		value.Set(out, "name.common", value.String("Chad"))
		value.Set(out, "name.official", value.String("Republic of Chad"))

		b, err := json.Marshal(out)
		require.NoError(t, err)
		assert.Equal(t, `{"name":{"common":"Chad","official":"Republic of Chad"}}`, string(b))
	})

	t.Run("GraftedSubtreeUntouched", func(t *testing.T) {
		doc, err := value.Parse([]byte(`{"name":{"common":"Chad","official":"Republic of Chad"}}`))
		require.NoError(t, err)

		out := value.Object()
		value.Set(out, "name", value.Get(doc, "name"))
		value.Set(out, "name.common", value.String("Tchad"))

		b, err := json.Marshal(doc)
		require.NoError(t, err)
		assert.Equal(t, `{"name":{"common":"Chad","official":"Republic of Chad"}}`, string(b))

		b, err = json.Marshal(out)
		require.NoError(t, err)
		assert.Equal(t, `{"name":{"common":"Tchad","official":"Republic of Chad"}}`, string(b))
	})

	t.Run("GetAfterSetRoundTrips", func(t *testing.T) {
		out := value.Object()
		value.Set(out, "x.y.z", value.String("v"))
		s, ok := value.Get(out, "x.y.z").Str()
		assert.True(t, ok)
		assert.Equal(t, "v", s)
	})
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "string", value.KindString.String())
	assert.Equal(t, "object", value.KindObject.String())
	assert.Equal(t, value.KindNull, (*value.Value)(nil).Kind())
}
