// Package arrayinfo computes and formats summary statistics (shape, max, min,
// mean, population variance) for gonum matrices, optionally reduced along one
// axis.
package arrayinfo
