package dataset

import "unicode/utf8"

// LongestName describes the longest name variant found in a dataset.
type LongestName struct {
	// Country is the common name of the record holding the variant.
	Country string
	Variant NameVariant
	// Length counts characters, not bytes.
	Length int
}

// FindLongestName scans every name variant of records with a common name.
// On equal lengths the first variant in dataset order wins. It returns false
// when no record has a non-empty name.
func FindLongestName(records []*Record) (LongestName, bool) {
	var longest LongestName
	for _, rec := range records {
		if rec.Name.Common == "" {
			continue
		}
		for _, v := range rec.Variants() {
			if n := utf8.RuneCountInString(v.Name); n > longest.Length {
				longest = LongestName{Country: rec.Name.Common, Variant: v, Length: n}
			}
		}
	}
	return longest, longest.Length > 0
}
