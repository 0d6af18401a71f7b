// Package dataset loads and validates the country records served by the API.
//
// The dataset is a JSON array of country documents. Each document is kept as an
// ordered value.Value so that responses echo the source fields untouched, and a
// few fields the indexer needs (name variants, region, subregion) are extracted
// into typed views at decode time.
//
// # Sources
//
// A Source returns every record at once:
//   - FileSource: a JSON file on local disk (default).
//   - StorageSource: an object in an S3/MinIO bucket.
//   - DatabaseSource: a read-only table with one JSON document per row.
//
// # Validation
//
// Decoding is all-or-nothing. A root that is not an array, a record that is not an
// object, a missing name object, or a name/region field of the wrong JSON type
// fails with ErrMalformedDataset and the record position; the service refuses to
// start rather than serve a partial index. A missing common name is not an error.
package dataset
