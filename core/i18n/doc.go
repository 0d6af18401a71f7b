// Package i18n negotiates the response locale and renders localized messages.
//
// The message catalogue is a YAML document keyed by locale code and then by
// message key. One catalogue is compiled into the binary; a file can replace
// it through Config.CataloguePath.
//
// # Negotiation
//
// ResolveLocale reads an Accept-Language value:
//
//	"fr-CA;q=0.9,en;q=1.0"  -> "en"  (higher weight wins)
//	"de-AT,fr"              -> "de"  (primary subtag, header order on ties)
//	""                      -> default locale
//
// # Rendering
//
// Render falls back from the requested locale to the default locale and then
// to a visible "Missing translation for: <key>" text, logging a warning. It
// never fails.
//
//	r.Render("es", "countryNotFound", map[string]string{"param": "Atlantis"})
//	// "País con nombre 'Atlantis' no encontrado"
package i18n
