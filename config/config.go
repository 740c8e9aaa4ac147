package config

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/goccy/go-yaml"
)

// ErrKeyNotFound is returned when a key required for decoding does not resolve.
var ErrKeyNotFound = errors.New("key not found")

// ErrNilTarget is returned when Provider is given a nil target.
var ErrNilTarget = errors.New("target must not be nil")

// Parser defines an interface for decoding raw source data into a target value.
// Loaders decode each source into a map[string]any through a Parser.
type Parser interface {
	Parse(data []byte, target any) error
}

// Validator defines an interface for validating configuration structures.
type Validator interface {
	Validate() error
}

// Defaulter defines an interface for setting default values in configuration structures.
type Defaulter interface {
	SetDefaults() (changed bool)
}

// Provider returns a function that resolves key in a Store, decodes the value found
// there into target, sets defaults and validates the result.
//
// The key follows Store.Get rules, so "app" decodes a whole group and "app.db.local"
// a nested section.
func Provider[T any](target *T, key string) func(*Store) (*T, error) {
	return func(store *Store) (*T, error) {
		if target == nil {
			return nil, ErrNilTarget
		}

		value := store.GetOr(key, notFound)
		if value == notFound || value == nil {
			return nil, fmt.Errorf("%w: %s", ErrKeyNotFound, key)
		}

		err := decode(value, target)
		if err != nil {
			return nil, fmt.Errorf("decoding %q error: %w", key, err)
		}

		targetDefaulter, isDefaulter := any(target).(Defaulter)
		if isDefaulter {
			changed := targetDefaulter.SetDefaults()
			if changed {
				slog.Info("defaults applied", slog.String("key", key))
			}
		}

		targetValidatable, isValidatable := any(target).(Validator)
		if isValidatable {
			err := targetValidatable.Validate()
			if err != nil {
				return nil, fmt.Errorf("validating error: %w", err)
			}
		}

		return target, nil
	}
}

// decode moves a configuration subtree into target by encoding it as YAML and reading
// it back, so struct fields are matched through their yaml tags.
func decode(value, target any) error {
	data, err := yaml.Marshal(value)
	if err != nil {
		return fmt.Errorf("encoding value: %w", err)
	}

	err = yaml.Unmarshal(data, target)
	if err != nil {
		return fmt.Errorf("unmarshal error: %w", err)
	}

	return nil
}
