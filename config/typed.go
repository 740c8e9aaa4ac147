package config

import (
	"time"

	"github.com/spf13/cast"
)

// The typed getters convert the raw value at a key with spf13/cast. Each returns def
// when the key is absent, holds nil, or cannot be converted.

// GetString returns the value at key as a string.
func (s *Store) GetString(key, def string) string {
	return getTyped(s, key, def, cast.ToStringE)
}

// GetInt returns the value at key as an int.
func (s *Store) GetInt(key string, def int) int {
	return getTyped(s, key, def, cast.ToIntE)
}

// GetInt64 returns the value at key as an int64.
func (s *Store) GetInt64(key string, def int64) int64 {
	return getTyped(s, key, def, cast.ToInt64E)
}

// GetFloat64 returns the value at key as a float64.
func (s *Store) GetFloat64(key string, def float64) float64 {
	return getTyped(s, key, def, cast.ToFloat64E)
}

// GetBool returns the value at key as a bool.
func (s *Store) GetBool(key string, def bool) bool {
	return getTyped(s, key, def, cast.ToBoolE)
}

// GetDuration returns the value at key as a time.Duration. Strings are parsed with
// time.ParseDuration and bare numbers are taken as nanoseconds.
func (s *Store) GetDuration(key string, def time.Duration) time.Duration {
	return getTyped(s, key, def, cast.ToDurationE)
}

// GetStringSlice returns the value at key as a []string.
func (s *Store) GetStringSlice(key string, def []string) []string {
	return getTyped(s, key, def, cast.ToStringSliceE)
}

// GetStringMap returns the value at key as a map[string]any.
func (s *Store) GetStringMap(key string, def map[string]any) map[string]any {
	return getTyped(s, key, def, cast.ToStringMapE)
}

func getTyped[T any](s *Store, key string, def T, convert func(any) (T, error)) T {
	value := s.GetOr(key, notFound)
	if value == notFound || value == nil {
		return def
	}

	converted, err := convert(value)
	if err != nil {
		return def
	}

	return converted
}
