package config

import (
	"log/slog"
	"strings"
)

// notFound is handed to lookups by Has so that any value a caller could store,
// including nil, stays distinguishable from a missing one.
//
//nolint:gochecknoglobals // identity sentinel.
var notFound any = &struct{ _ byte }{}

// Store resolves dotted keys against lazily loaded configuration groups.
//
// The first segment of a key names a group. A group is loaded through the Loader the
// first time any key inside it is read or written and is then kept for the lifetime
// of the Store; changing the environment or the loader later does not reload it.
//
// A Store is not safe for concurrent use. Callers sharing one between goroutines
// must serialize Get, Set and Has themselves.
type Store struct {
	loader      Loader
	environment string
	items       map[string]any
	cacheEmpty  bool
	logger      *slog.Logger
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithLogger sets the logger used to report group loads.
func WithLogger(logger *slog.Logger) StoreOption {
	return func(s *Store) {
		s.logger = logger
	}
}

// WithEmptyGroupCaching makes a group whose load returned no data count as loaded.
// Without it such a group is asked from the Loader again on every access.
func WithEmptyGroupCaching() StoreOption {
	return func(s *Store) {
		s.cacheEmpty = true
	}
}

// NewStore creates a Store reading groups from loader for the given environment.
func NewStore(loader Loader, environment string, opts ...StoreOption) *Store {
	store := &Store{
		loader:      loader,
		environment: environment,
		items:       make(map[string]any),
		cacheEmpty:  false,
		logger:      nil,
	}

	for _, apply := range opts {
		apply(store)
	}

	if store.logger == nil {
		store.logger = slog.Default()
	}

	return store
}

// Has reports whether key resolves to a non-nil value.
func (s *Store) Has(key string) bool {
	value := s.GetOr(key, notFound)

	return value != notFound && value != nil
}

// Get returns the value for key, or nil when it cannot be resolved.
func (s *Store) Get(key string) any {
	return s.GetOr(key, nil)
}

// GetOr returns the value for key, or def when the group has no data, a segment of
// the path is missing, or the path runs through a value that is not a mapping.
//
// Within a group, a key stored literally with dots in its name wins over the nested
// path of the same spelling: with {"db.host": "a", "db": {"host": "b"}} in group app,
// "app.db.host" resolves to "a".
func (s *Store) GetOr(key string, def any) any {
	group, path, hasPath := parseKey(key)
	s.load(group)

	groupValue, ok := s.items[group]
	if !ok {
		return def
	}

	if !hasPath {
		return groupValue
	}

	return lookup(groupValue, path, def)
}

// Set stores value at key, creating intermediate mappings as needed.
//
// The group is loaded first so that a later read does not replace the written value
// with freshly loaded data. A key without a dot replaces the whole group. Along a
// nested path any value that is not a mapping is overwritten with a new mapping.
func (s *Store) Set(key string, value any) {
	group, path, hasPath := parseKey(key)
	s.load(group)

	if !hasPath {
		s.items[group] = value

		return
	}

	groupMap, ok := s.items[group].(map[string]any)
	if !ok {
		groupMap = make(map[string]any)
		s.items[group] = groupMap
	}

	assign(groupMap, strings.Split(path, "."), value)
}

// Items returns the groups materialized so far. The map is the Store's own cache,
// not a copy.
func (s *Store) Items() map[string]any {
	return s.items
}

// Environment returns the environment passed to the Loader.
func (s *Store) Environment() string {
	return s.environment
}

// SetEnvironment changes the environment used for groups loaded from now on.
func (s *Store) SetEnvironment(environment string) *Store {
	s.environment = environment

	return s
}

// Loader returns the Loader groups are read from.
//
//nolint:ireturn // the store holds whatever Loader it was given.
func (s *Store) Loader() Loader {
	return s.loader
}

// SetLoader changes the Loader used for groups loaded from now on.
func (s *Store) SetLoader(loader Loader) *Store {
	s.loader = loader

	return s
}

func (s *Store) load(group string) {
	if _, loaded := s.items[group]; loaded {
		return
	}

	if s.loader == nil {
		return
	}

	data := s.loader.Load(s.environment, group)

	s.logger.Debug("configuration group loaded",
		slog.String("group", group),
		slog.String("environment", s.environment),
		slog.Bool("found", len(data) > 0),
	)

	if len(data) > 0 || s.cacheEmpty {
		if data == nil {
			data = make(map[string]any)
		}

		s.items[group] = data
	}
}

// parseKey splits key at its first dot into the group and the path inside it.
func parseKey(key string) (group, path string, hasPath bool) {
	return strings.Cut(key, ".")
}

func lookup(value any, path string, def any) any {
	if mapping, ok := value.(map[string]any); ok {
		if literal, found := mapping[path]; found {
			return literal
		}
	}

	current := value

	for _, segment := range strings.Split(path, ".") {
		mapping, ok := current.(map[string]any)
		if !ok {
			return def
		}

		next, found := mapping[segment]
		if !found {
			return def
		}

		current = next
	}

	return current
}

func assign(mapping map[string]any, segments []string, value any) {
	last := len(segments) - 1

	for _, segment := range segments[:last] {
		next, ok := mapping[segment].(map[string]any)
		if !ok {
			next = make(map[string]any)
			mapping[segment] = next
		}

		mapping = next
	}

	mapping[segments[last]] = value
}
