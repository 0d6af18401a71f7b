package query_test

import (
	"encoding/json"
	"testing"

	"countries-api/core/query"
	"countries-api/core/value"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseDocs(t *testing.T, raw string) []*value.Value {
	t.Helper()
	root, err := value.Parse([]byte(raw))
	require.NoError(t, err)
	return root.Items()
}

func toJSON(t *testing.T, docs []*value.Value) string {
	t.Helper()
	out, err := json.Marshal(docs)
	require.NoError(t, err)
	return string(out)
}

func commons(docs []*value.Value) []string {
	names := make([]string, len(docs))
	for i, doc := range docs {
		names[i], _ = value.Get(doc, "name.common").Str()
	}
	return names
}

func TestParseSortSpec(t *testing.T) {
	tests := []struct {
		name string
		spec string
		want []query.Criterion
	}{
		{
			name: "AscAndDesc",
			spec: "name.common,-population",
			want: []query.Criterion{
				{Field: "name.common", Direction: query.Asc},
				{Field: "population", Direction: query.Desc},
			},
		},
		{
			name: "PlusPrefixAndSpaces",
			spec: " +area , -name.official ",
			want: []query.Criterion{
				{Field: "area", Direction: query.Asc},
				{Field: "name.official", Direction: query.Desc},
			},
		},
		{
			name: "DropsMalformedTokens",
			spec: "-,,+,name..common,.area,population.,region",
			want: []query.Criterion{
				{Field: "region", Direction: query.Asc},
			},
		},
		{name: "Empty", spec: "", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, query.ParseSortSpec(tt.spec))
		})
	}
}

func TestSort_Descending(t *testing.T) {
	docs := parseDocs(t, `[
		{"name":{"common":"Chad"},"population":5},
		{"name":{"common":"Aruba"},"population":10}
	]`)

	sorted := query.Sort(docs, []query.Criterion{{Field: "population", Direction: query.Desc}})

	assert.Equal(t, []string{"Aruba", "Chad"}, commons(sorted))
	assert.Equal(t, []string{"Chad", "Aruba"}, commons(docs), "input must keep its order")
}

func TestSort_Stable(t *testing.T) {
	docs := parseDocs(t, `[
		{"name":{"common":"A"},"region":"Europe"},
		{"name":{"common":"B"},"region":"Africa"},
		{"name":{"common":"C"},"region":"Europe"},
		{"name":{"common":"D"},"region":"Africa"}
	]`)

	sorted := query.Sort(docs, query.ParseSortSpec("region"))
	assert.Equal(t, []string{"B", "D", "A", "C"}, commons(sorted))

	sorted = query.Sort(docs, query.ParseSortSpec("-region"))
	assert.Equal(t, []string{"A", "C", "B", "D"}, commons(sorted))
}

func TestSort_MultipleCriteria(t *testing.T) {
	docs := parseDocs(t, `[
		{"name":{"common":"A"},"region":"Europe","area":3},
		{"name":{"common":"B"},"region":"Africa","area":1},
		{"name":{"common":"C"},"region":"Europe","area":7},
		{"name":{"common":"D"},"region":"Africa","area":9}
	]`)

	sorted := query.Sort(docs, query.ParseSortSpec("region,-area"))
	assert.Equal(t, []string{"D", "B", "C", "A"}, commons(sorted))
}

func TestSort_MissingValues(t *testing.T) {
	docs := parseDocs(t, `[
		{"name":{"common":"Big"},"area":9},
		{"name":{"common":"None"}},
		{"name":{"common":"Small"},"area":1},
		{"name":{"common":"Null"},"area":null}
	]`)

	asc := query.Sort(docs, query.ParseSortSpec("area"))
	assert.Equal(t, []string{"None", "Null", "Small", "Big"}, commons(asc))

	desc := query.Sort(docs, query.ParseSortSpec("-area"))
	assert.Equal(t, []string{"Big", "Small", "None", "Null"}, commons(desc))
}

func TestSort_Strings(t *testing.T) {
	docs := parseDocs(t, `[
		{"name":{"common":"Zambia"}},
		{"name":{"common":"Åland Islands"}},
		{"name":{"common":"albania"}},
		{"name":{"common":"Bahamas"}}
	]`)

	sorted := query.Sort(docs, query.ParseSortSpec("name.common"))
	assert.Equal(t, []string{"Åland Islands", "albania", "Bahamas", "Zambia"}, commons(sorted))
}

func TestSort_MixedTypesCompareAsStrings(t *testing.T) {
	docs := parseDocs(t, `[
		{"name":{"common":"Str"},"code":"b"},
		{"name":{"common":"Num"},"code":10},
		{"name":{"common":"Arr"},"code":["a","z"]},
		{"name":{"common":"Bool"},"code":true}
	]`)

	// "10" < "a,z" < "b" < "true"
	sorted := query.Sort(docs, query.ParseSortSpec("code"))
	assert.Equal(t, []string{"Num", "Arr", "Str", "Bool"}, commons(sorted))
}

func TestSort_NoCriteria(t *testing.T) {
	docs := parseDocs(t, `[{"name":{"common":"B"}},{"name":{"common":"A"}}]`)

	sorted := query.Sort(docs, nil)
	assert.Equal(t, []string{"B", "A"}, commons(sorted))
}

func TestParseFields(t *testing.T) {
	assert.Equal(t, []string{"name.common", "population"}, query.ParseFields(" name.common, ,population,"))
	assert.Nil(t, query.ParseFields(""))
	assert.Nil(t, query.ParseFields(" , "))
}

func TestProject(t *testing.T) {
	docs := parseDocs(t, `[
		{"name":{"common":"Chad","official":"Republic of Chad"},"population":16425859,"region":"Africa"},
		{"name":{"common":"Aruba","official":"Aruba"},"region":"Americas"}
	]`)

	t.Run("NoFieldsReturnsDocs", func(t *testing.T) {
		out := query.Project(docs, nil, true)
		assert.Equal(t, docs, out)
	})

	t.Run("KeepsNestedShape", func(t *testing.T) {
		out := query.Project(docs, []string{"name.common", "population"}, false)
		assert.JSONEq(t, `[
			{"name":{"common":"Chad"},"population":16425859},
			{"name":{"common":"Aruba"}}
		]`, toJSON(t, out))
	})

	t.Run("FlattenSingleField", func(t *testing.T) {
		out := query.Project(docs, []string{"name.common"}, true)
		assert.JSONEq(t, `["Chad","Aruba"]`, toJSON(t, out))
	})

	t.Run("FlattenMissingIsNull", func(t *testing.T) {
		out := query.Project(docs, []string{"population"}, true)
		assert.JSONEq(t, `[16425859,null]`, toJSON(t, out))
	})

	t.Run("FlattenNestedValue", func(t *testing.T) {
		out := query.Project(docs, []string{"name"}, true)
		assert.JSONEq(t, `[
			{"common":"Chad","official":"Republic of Chad"},
			{"common":"Aruba","official":"Aruba"}
		]`, toJSON(t, out))
	})

	t.Run("FlattenIgnoredForSeveralFields", func(t *testing.T) {
		out := query.Project(docs, []string{"name.common", "region"}, true)
		assert.JSONEq(t, `[
			{"name":{"common":"Chad"},"region":"Africa"},
			{"name":{"common":"Aruba"},"region":"Americas"}
		]`, toJSON(t, out))
	})

	t.Run("DoesNotModifyInput", func(t *testing.T) {
		before := toJSON(t, docs)
		query.Project(docs, []string{"name.common"}, false)
		assert.Equal(t, before, toJSON(t, docs))
	})
}

func TestApply(t *testing.T) {
	docs := parseDocs(t, `[
		{"name":{"common":"Chad"},"population":5},
		{"name":{"common":"Aruba"},"population":10}
	]`)

	out := query.Apply(docs, query.ParseOptions("name.common", "-population", true))
	assert.JSONEq(t, `["Aruba","Chad"]`, toJSON(t, out))
}
