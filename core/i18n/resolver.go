package i18n

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// Resolver negotiates locales and renders message templates.
// It is read-only after NewResolver and safe for concurrent use.
type Resolver struct {
	catalogue     Catalogue
	defaultLocale string
	logger        *zap.Logger
	onMissing     func(key string)
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithMissingHook registers fn to be called whenever a key has no template
// in either the requested or the default locale.
func WithMissingHook(fn func(key string)) Option {
	return func(r *Resolver) {
		r.onMissing = fn
	}
}

// NewResolver creates a resolver over catalogue. The default locale must be
// present in the catalogue.
func NewResolver(catalogue Catalogue, defaultLocale string, logger *zap.Logger, opts ...Option) (*Resolver, error) {
	if _, ok := catalogue[defaultLocale]; !ok {
		return nil, fmt.Errorf("%w: default locale %q not in catalogue", ErrInvalidCatalogue, defaultLocale)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	r := &Resolver{
		catalogue:     catalogue,
		defaultLocale: defaultLocale,
		logger:        logger,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// DefaultLocale returns the terminal fallback locale.
func (r *Resolver) DefaultLocale() string {
	return r.defaultLocale
}

// Locales returns the supported locale codes, sorted.
func (r *Resolver) Locales() []string {
	return r.catalogue.Locales()
}

type preference struct {
	code   string
	weight float64
}

// ResolveLocale picks the best supported locale from an Accept-Language value.
// Entries are ranked by q weight (default 1), ties keep header order, and only
// the primary subtag is matched ("fr-CA" matches "fr"). Entries with an
// unreadable weight are ignored. The default locale is returned when nothing
// matches.
func (r *Resolver) ResolveLocale(header string) string {
	if strings.TrimSpace(header) == "" {
		return r.defaultLocale
	}

	var prefs []preference
	for entry := range strings.SplitSeq(header, ",") {
		pref, ok := parsePreference(entry)
		if !ok {
			continue
		}
		prefs = append(prefs, pref)
	}

	slices.SortStableFunc(prefs, func(a, b preference) int {
		switch {
		case a.weight > b.weight:
			return -1
		case a.weight < b.weight:
			return 1
		default:
			return 0
		}
	})

	for _, p := range prefs {
		if _, ok := r.catalogue[p.code]; ok {
			return p.code
		}
	}
	return r.defaultLocale
}

func parsePreference(entry string) (preference, bool) {
	tag, params, _ := strings.Cut(strings.TrimSpace(entry), ";")

	code, _, _ := strings.Cut(strings.TrimSpace(tag), "-")
	code = strings.ToLower(code)
	if code == "" {
		return preference{}, false
	}

	weight := 1.0
	if params != "" {
		q, ok := strings.CutPrefix(strings.TrimSpace(params), "q=")
		if !ok {
			return preference{}, false
		}
		w, err := strconv.ParseFloat(strings.TrimSpace(q), 64)
		if err != nil {
			return preference{}, false
		}
		weight = w
	}
	return preference{code: code, weight: weight}, true
}

// Render returns the template for key in locale with every {name}
// placeholder replaced by params[name]. Placeholders without a param are left
// as written. A key missing from both locale and the default locale renders
// as "Missing translation for: <key>".
func (r *Resolver) Render(locale, key string, params map[string]string) string {
	message, ok := r.catalogue[locale][key]
	if !ok {
		message, ok = r.catalogue[r.defaultLocale][key]
	}
	if !ok {
		r.logger.Warn("Translation key not found",
			zap.String("key", key),
			zap.String("locale", locale),
			zap.String("default_locale", r.defaultLocale))
		if r.onMissing != nil {
			r.onMissing(key)
		}
		message = "Missing translation for: " + key
	}

	for name, v := range params {
		message = strings.ReplaceAll(message, "{"+name+"}", v)
	}
	return message
}

// Translate resolves the locale from an Accept-Language value and renders key.
func (r *Resolver) Translate(header, key string, params map[string]string) string {
	return r.Render(r.ResolveLocale(header), key, params)
}
