// Package fileenum lists the regular files contained directly inside a
// directory, with optional case-insensitive extension filtering and
// absolute-path resolution.
package fileenum
