package dataset

import (
	"fmt"

	"countries-api/core/value"
)

// Decode parses a JSON array of country documents.
// Structural problems abort the whole decode so that no partial index is ever
// built from a broken dataset.
func Decode(data []byte) ([]*Record, error) {
	root, err := value.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDataset, err)
	}
	if root.Kind() != value.KindArray {
		return nil, fmt.Errorf("%w: expected an array of records, got %s", ErrMalformedDataset, root.Kind())
	}

	records := make([]*Record, 0, root.Len())
	for i, doc := range root.Items() {
		rec, err := NewRecord(doc)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// NewRecord validates doc and extracts the typed name and region views.
func NewRecord(doc *value.Value) (*Record, error) {
	if doc.Kind() != value.KindObject {
		return nil, fmt.Errorf("%w: record is %s, not an object", ErrMalformedDataset, doc.Kind())
	}

	nameDoc := doc.Field("name")
	if nameDoc.Kind() != value.KindObject {
		return nil, fmt.Errorf("%w: %q must be an object", ErrMalformedDataset, "name")
	}

	rec := &Record{Doc: doc}
	var err error

	if rec.Name.Common, err = optionalString(nameDoc, "common", "name.common"); err != nil {
		return nil, err
	}
	if rec.Name.Official, err = optionalString(nameDoc, "official", "name.official"); err != nil {
		return nil, err
	}
	if rec.Name.NativeName, err = nameForms(nameDoc.Field("nativeName"), "name.nativeName"); err != nil {
		return nil, err
	}
	if rec.Translations, err = nameForms(doc.Field("translations"), "translations"); err != nil {
		return nil, err
	}
	if rec.Region, err = optionalString(doc, "region", "region"); err != nil {
		return nil, err
	}
	if rec.Subregion, err = optionalString(doc, "subregion", "subregion"); err != nil {
		return nil, err
	}

	return rec, nil
}

// optionalString reads a string field that may be absent or null.
func optionalString(obj *value.Value, key, path string) (string, error) {
	v := obj.Field(key)
	if v.IsNull() {
		return "", nil
	}
	s, ok := v.Str()
	if !ok {
		return "", fmt.Errorf("%w: %q must be a string, got %s", ErrMalformedDataset, path, v.Kind())
	}
	return s, nil
}

// nameForms reads a map of language code to {common, official}.
func nameForms(v *value.Value, path string) (map[string]NameForm, error) {
	if v.IsNull() {
		return nil, nil
	}
	if v.Kind() != value.KindObject {
		return nil, fmt.Errorf("%w: %q must be an object, got %s", ErrMalformedDataset, path, v.Kind())
	}

	forms := make(map[string]NameForm, v.Len())
	for _, lang := range v.Keys() {
		entry := v.Field(lang)
		if entry.IsNull() {
			continue
		}
		if entry.Kind() != value.KindObject {
			return nil, fmt.Errorf("%w: %q must be an object, got %s", ErrMalformedDataset, path+"."+lang, entry.Kind())
		}

		var form NameForm
		var err error
		if form.Common, err = optionalString(entry, "common", path+"."+lang+".common"); err != nil {
			return nil, err
		}
		if form.Official, err = optionalString(entry, "official", path+"."+lang+".official"); err != nil {
			return nil, err
		}
		forms[lang] = form
	}
	return forms, nil
}
