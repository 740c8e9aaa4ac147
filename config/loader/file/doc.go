// Package file provides a file-based config.Loader.
//
// A Loader looks for one file per group in every namespace of the environment, from
// the least to the most specific, and merges what it finds with config.ReplaceMerge:
//
//	<path>/<group>.<ext>
//	<path>/<env1>/<group>.<ext>
//	<path>/<env1>/<env2>/<group>.<ext>
//
// With the environment "prod/us-east" and the group "app", the files app.yaml,
// prod/app.yaml and prod/us-east/app.yaml are layered in that order.
//
// Usage:
//
//	loader := file.NewLoader("/etc/myapp", file.WithExtension("toml"))
//	data := loader.Load("prod", "database")
//
// Error Handling:
//   - A missing file, a directory in place of the file, an empty file, or a
//     document that is not a mapping contributes nothing and is not an error
//   - Permission errors, read errors and malformed documents are returned by LoadE,
//     aggregated across layers, and logged at WARN by Load
//   - Use errors.Is(err, file.ErrMalformedSource) to check for parse failures
package file
