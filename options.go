package hjarta

// Options holds the settings of the configuration module. The env tags are read by
// NewModuleFromEnv only.
type Options struct {
	Path             string `env:"HJARTA_CONFIG_PATH"`
	Environment      string `env:"HJARTA_CONFIG_ENV"`
	Extension        string `env:"HJARTA_CONFIG_EXT"`
	LogLevel         string `env:"HJARTA_LOG_LEVEL"`
	CacheEmptyGroups bool   `env:"HJARTA_CONFIG_CACHE_EMPTY"`
}

// Option defines a function type for applying configuration options.
type Option func(*Options)

// WithPath sets the directory holding the configuration sources.
func WithPath(path string) Option {
	return func(opts *Options) {
		opts.Path = path
	}
}

// WithEnvironment sets the environment, e.g. "prod" or "prod/us-east".
func WithEnvironment(environment string) Option {
	return func(opts *Options) {
		opts.Environment = environment
	}
}

// WithExtension sets the extension of source files. Defaults to "yaml".
func WithExtension(extension string) Option {
	return func(opts *Options) {
		opts.Extension = extension
	}
}

// WithLogLevel sets the level of the logger built when the container has none.
// Valid levels are: "debug", "info", "warn", "error".
// If not set or invalid, defaults to "info".
func WithLogLevel(level string) Option {
	return func(opts *Options) {
		opts.LogLevel = level
	}
}

// WithEmptyGroupCaching makes the store remember groups for which no source exists.
func WithEmptyGroupCaching() Option {
	return func(opts *Options) {
		opts.CacheEmptyGroups = true
	}
}
