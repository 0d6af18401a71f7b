package i18n

// Config defines message catalogue settings.
type Config struct {
	// DefaultLocale is used when no requested locale is supported.
	DefaultLocale string `mapstructure:"default_locale" default:"en"`
	// CataloguePath overrides the embedded catalogue with a YAML file.
	CataloguePath string `mapstructure:"catalogue_path" default:""`
}
