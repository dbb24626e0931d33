// Package foldertree renders directory hierarchies as tree-drawing text, with
// depth limiting, name-based exclusion, and local recovery from unreadable
// directories.
package foldertree
