package config

import "strings"

// Loader produces the merged configuration data of one group for an environment.
//
// Load is total: a group or environment path that does not exist yields an empty map,
// never an error. Implementations that can fail for exceptional reasons (permissions,
// malformed sources) are expected to report those on their own and still return
// whatever data they could assemble.
type Loader interface {
	Load(environment, group string) map[string]any
}

// LoaderFunc adapts a plain function to the Loader interface.
type LoaderFunc func(environment, group string) map[string]any

// Load calls f(environment, group).
func (f LoaderFunc) Load(environment, group string) map[string]any {
	return f(environment, group)
}

// ParseEnvironment splits an environment identifier into the ordered namespaces a
// loader looks through. The first namespace is always the empty base namespace,
// followed by every non-empty segment of env split at dots or slashes.
//
//	""              -> [""]
//	"dev"           -> ["", "dev"]
//	"prod/us-east"  -> ["", "prod", "us-east"]
//	"prod.us//east" -> ["", "prod", "us", "east"]
func ParseEnvironment(env string) []string {
	segments := strings.FieldsFunc(env, func(r rune) bool {
		return r == '/' || r == '.'
	})

	return append([]string{""}, segments...)
}
