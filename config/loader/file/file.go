package file

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/0xalexb/hjarta-config/config"
	tomlparser "github.com/0xalexb/hjarta-config/config/parser/toml"
	yamlparser "github.com/0xalexb/hjarta-config/config/parser/yaml"

	"go.uber.org/multierr"
)

// DefaultExtension is the file extension used when none is configured.
const DefaultExtension = "yaml"

// ErrMalformedSource is returned when a source file exists but cannot be parsed.
var ErrMalformedSource = errors.New("malformed source")

// Loader implements config.Loader for environment-layered files below a base path.
type Loader struct {
	path      string
	extension string
	parser    config.Parser
	logger    *slog.Logger
}

var _ config.Loader = (*Loader)(nil)

// NewLoader creates a Loader reading groups below path.
func NewLoader(path string, opts ...Option) *Loader {
	var settings Settings

	for _, apply := range opts {
		apply(&settings)
	}

	settings.setDefaults()

	return &Loader{
		path:      normalizePath(path),
		extension: settings.Extension,
		parser:    settings.Parser,
		logger:    settings.Logger,
	}
}

// Path returns the base path, always ending in a single path separator.
func (l *Loader) Path() string {
	return l.path
}

// SetPath changes the base path.
func (l *Loader) SetPath(path string) *Loader {
	l.path = normalizePath(path)

	return l
}

// Extension returns the file extension, without the leading dot.
func (l *Loader) Extension() string {
	return l.extension
}

// Load returns the merged data of group for environment. Failures other than missing
// files are logged and the layers that could be read are still merged.
func (l *Loader) Load(environment, group string) map[string]any {
	items, err := l.LoadE(environment, group)
	if err != nil {
		for _, layerErr := range multierr.Errors(err) {
			l.logger.Warn("skipping configuration source",
				slog.String("group", group),
				slog.String("environment", environment),
				slog.Any("error", layerErr),
			)
		}
	}

	return items
}

// LoadE is Load with the per-layer failures returned instead of logged. The returned
// map holds every layer that was read successfully and is never nil.
func (l *Loader) LoadE(environment, group string) (map[string]any, error) {
	items := make(map[string]any)

	var (
		errs      error
		namespace string
	)

	for _, segment := range config.ParseEnvironment(environment) {
		if segment != "" {
			namespace += segment + string(filepath.Separator)
		}

		source := l.path + namespace + group + "." + l.extension

		data, err := l.readSource(source)
		if err != nil {
			errs = multierr.Append(errs, err)

			continue
		}

		if data != nil {
			items = config.ReplaceMerge(items, data)
		}
	}

	return items, errs
}

// readSource returns the mapping stored in source, nil when the source contributes
// nothing, or an error for failures other than absence.
func (l *Loader) readSource(source string) (map[string]any, error) {
	stat, err := os.Stat(source)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}

		return nil, fmt.Errorf("stat file %q: %w", source, err)
	}

	if stat.IsDir() {
		return nil, nil
	}

	raw, err := os.ReadFile(source) // #nosec G304 -- path is built from the configured base path
	if err != nil {
		return nil, fmt.Errorf("reading file %q: %w", source, err)
	}

	if len(raw) == 0 {
		return nil, nil
	}

	var document any

	err = l.parser.Parse(raw, &document)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrMalformedSource, source, err)
	}

	mapping, ok := document.(map[string]any)
	if !ok {
		l.logger.Debug("ignoring non-mapping configuration source", slog.String("file", source))

		return nil, nil
	}

	l.logger.Debug("configuration source read", slog.String("file", source))

	return mapping, nil
}

func normalizePath(path string) string {
	return strings.TrimRight(path, `/\`) + string(filepath.Separator)
}

//nolint:ireturn // parsers are selected at runtime.
func parserFor(extension string) config.Parser {
	switch strings.ToLower(extension) {
	case "toml":
		return tomlparser.NewParser()
	default:
		return yamlparser.NewParser()
	}
}
