// Package libdiff compares and patches encoded parse results.
package libdiff
