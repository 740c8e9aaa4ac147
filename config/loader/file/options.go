package file

import (
	"log/slog"
	"strings"

	"github.com/0xalexb/hjarta-config/config"
)

// Settings holds the configurable parts of a Loader. Zero fields are filled with
// defaults by NewLoader.
type Settings struct {
	Extension string
	Parser    config.Parser
	Logger    *slog.Logger
}

// Option defines a function type for configuring a Loader.
type Option func(*Settings)

// WithExtension sets the extension of source files, with or without the leading dot.
// Unless WithParser is also given, "toml" selects the TOML parser and anything else
// the YAML parser.
func WithExtension(extension string) Option {
	return func(s *Settings) {
		s.Extension = extension
	}
}

// WithParser sets the parser used to decode source files.
func WithParser(parser config.Parser) Option {
	return func(s *Settings) {
		s.Parser = parser
	}
}

// WithLogger sets the logger used to report skipped sources.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Settings) {
		s.Logger = logger
	}
}

func (s *Settings) setDefaults() {
	s.Extension = strings.TrimPrefix(s.Extension, ".")
	if s.Extension == "" {
		s.Extension = DefaultExtension
	}

	if s.Parser == nil {
		s.Parser = parserFor(s.Extension)
	}

	if s.Logger == nil {
		s.Logger = slog.Default()
	}
}
