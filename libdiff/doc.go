// Package libdiff computes structural differences between value trees
// and character differences between strings.
package libdiff
