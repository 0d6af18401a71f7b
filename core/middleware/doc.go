// Package middleware groups the Fiber middleware of the Countries API.
//
// # Components
//
//   - rayid: assigns each request a ray id, stored in locals and echoed in
//     the X-Ray-ID response header.
//   - requestlog: logs method, path, status and latency with the ray id.
//   - auth: optional X-API-Key check, disabled when no key is configured.
//   - cachecontrol: public Cache-Control and Vary headers on successful GETs.
//   - prettyjson: indents JSON bodies when the query string has ?pretty.
//
// Register rayid first so every later component sees the ray id.
package middleware
