// Package yaml provides a YAML parser implementation for the config package.
//
// This package uses github.com/goccy/go-yaml. Because JSON is a subset of YAML,
// the same parser serves .json sources.
//
// Usage:
//
//	parser := yaml.NewParser()
//	var data map[string]any
//	err := parser.Parse(raw, &data)
package yaml
