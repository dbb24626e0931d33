// Package batchload partitions a path list into fixed-size groups and runs a
// caller-supplied loader over each group lazily, one batch at a time.
package batchload
