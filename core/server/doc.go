// Package server holds the HTTP server configuration and the shared error
// contract of the API.
//
// Handlers return *Error values carrying a status and a message key. The
// handler built by NewErrorHandler turns them into
//
//	{"error": {"status": 404, "message": "Country with name 'Atlantis' not found"}}
//
// with the message rendered in the caller's negotiated locale. Fiber's own
// errors (unknown route, method not allowed) keep their text.
package server
