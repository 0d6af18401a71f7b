// Package countries serves the country listing and name lookup endpoints.
//
// # Endpoints
//
//   - GET /all: every country
//   - GET /name/:name: countries whose common, official, native or
//     translated name matches :name once normalized
//
// Both accept fields, sort and flatten. Results are sorted first and then
// projected, so a sort key does not need to be among the returned fields.
// An unknown name yields a localized 404.
package countries
