// Package region serves the region endpoints.
//
//   - GET /regions: region summaries
//   - GET /region/:name: countries of one region, with fields, sort and flatten
package region
