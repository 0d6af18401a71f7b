// Package index builds the read-only lookup indices of the country catalog.
//
// Build runs once at startup over the full dataset and produces a Catalog with:
//   - a name index: every common, official, native and translated name of a
//     country, normalized, mapped to the countries that carry it;
//   - a region index: normalized region name mapped to its countries, with the
//     set of subregions seen in that region;
//   - region summaries sorted by name.
//
// Within one key a country appears at most once even when several of its name
// variants normalize to the same key. Across keys the same *dataset.Record is
// shared, never copied.
//
// # Lifecycle
//
//	records, err := src.Load(ctx)
//	catalog := index.Build(records)
//	// from here on the catalog is only read
//	recs, ok := catalog.LookupName(normalize.Key("côte d'ivoire"))
package index
