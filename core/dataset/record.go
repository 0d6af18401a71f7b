package dataset

import (
	"countries-api/core/value"
)

// NameForm is a pair of common and official names in one language.
type NameForm struct {
	Common   string
	Official string
}

// Name is the primary name object of a country.
type Name struct {
	Common     string
	Official   string
	NativeName map[string]NameForm
}

// Record is one country. Doc is the full, immutable source document; the other
// fields are typed views extracted from it at decode time.
// Records are shared by pointer between all indices and must never be modified.
type Record struct {
	Name         Name
	Translations map[string]NameForm
	Region       string
	Subregion    string
	Doc          *value.Value
}

// Name variant kinds.
const (
	VariantCommon              = "common"
	VariantOfficial            = "official"
	VariantNativeCommon        = "native common"
	VariantNativeOfficial      = "native official"
	VariantTranslationCommon   = "translation common"
	VariantTranslationOfficial = "translation official"
)

// NameVariant is one name of a record with its origin.
type NameVariant struct {
	Kind string
	// Lang is the language code for native and translated names.
	Lang string
	Name string
}

// Variants returns every name slot of the record in a stable order: common,
// official, native names, then translations, each map walked in document key
// order. Empty names are included.
func (r *Record) Variants() []NameVariant {
	variants := make([]NameVariant, 0, 2+2*len(r.Name.NativeName)+2*len(r.Translations))
	variants = append(variants,
		NameVariant{Kind: VariantCommon, Name: r.Name.Common},
		NameVariant{Kind: VariantOfficial, Name: r.Name.Official},
	)

	for _, lang := range value.Get(r.Doc, "name.nativeName").Keys() {
		form, ok := r.Name.NativeName[lang]
		if !ok {
			continue
		}
		variants = append(variants,
			NameVariant{Kind: VariantNativeCommon, Lang: lang, Name: form.Common},
			NameVariant{Kind: VariantNativeOfficial, Lang: lang, Name: form.Official},
		)
	}
	for _, lang := range value.Get(r.Doc, "translations").Keys() {
		form, ok := r.Translations[lang]
		if !ok {
			continue
		}
		variants = append(variants,
			NameVariant{Kind: VariantTranslationCommon, Lang: lang, Name: form.Common},
			NameVariant{Kind: VariantTranslationOfficial, Lang: lang, Name: form.Official},
		)
	}
	return variants
}

// NameVariants returns the name strings of Variants in the same order.
func (r *Record) NameVariants() []string {
	variants := r.Variants()
	names := make([]string, len(variants))
	for i, v := range variants {
		names[i] = v.Name
	}
	return names
}

// Documents returns the source documents of records, in order.
func Documents(records []*Record) []*value.Value {
	docs := make([]*value.Value, len(records))
	for i, r := range records {
		docs[i] = r.Doc
	}
	return docs
}
